package memory

import (
	"time"

	"github.com/axlwolf/task-manager/internal/core/domain"
)

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

func avatar(seed, background string) *string {
	value := avatarBaseURL + seed + "&backgroundColor=" + background
	return &value
}

func date(value string) time.Time {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedUsers returns a fresh copy of the user fixtures.
func SeedUsers() []domain.User {
	return []domain.User{
		{ID: "1", Name: "Jasmine Washington", Avatar: avatar("Jasmine", "b6e3f4")},
		{ID: "2", Name: "Emily Thompson", Avatar: avatar("Emily", "d1d4f9")},
		{ID: "3", Name: "Marcus Johnson", Avatar: avatar("Marcus", "c0aede")},
		{ID: "4", Name: "David Miller", Avatar: avatar("David", "ffdfbf")},
		{ID: "5", Name: "Priya Patel", Avatar: avatar("Priya", "ffd5dc")},
		{ID: "6", Name: "Arjun Singh", Avatar: avatar("Arjun", "c1e1c5")},
	}
}

// SeedTasks returns a fresh copy of the task fixtures.
func SeedTasks() []domain.Task {
	return []domain.Task{
		{
			ID:          "1",
			Title:       "Master Angular",
			Description: "Learn all the basic and advanced features of Angular & how to apply them",
			DueDate:     date("2023-12-31"),
			UserID:      "1",
		},
		{
			ID:          "2",
			Title:       "Complete Project Documentation",
			Description: "Write comprehensive documentation for the EasyTask project",
			DueDate:     date("2023-11-15"),
			UserID:      "1",
			Completed:   true,
		},
		{
			ID:          "3",
			Title:       "Design User Interface",
			Description: "Create wireframes and mockups for the new dashboard",
			DueDate:     date("2023-11-20"),
			UserID:      "2",
		},
		{
			ID:          "4",
			Title:       "Implement Authentication",
			Description: "Add user authentication and authorization to the application",
			DueDate:     date("2023-12-05"),
			UserID:      "3",
		},
		{
			ID:          "5",
			Title:       "Optimize Performance",
			Description: "Identify and fix performance bottlenecks in the application",
			DueDate:     date("2023-11-25"),
			UserID:      "4",
		},
		{
			ID:          "6",
			Title:       "Write Unit Tests",
			Description: "Increase test coverage for core components and services",
			DueDate:     date("2023-12-10"),
			UserID:      "5",
		},
		{
			ID:          "7",
			Title:       "Deploy to Production",
			Description: "Set up CI/CD pipeline and deploy the application to production",
			DueDate:     date("2023-12-15"),
			UserID:      "6",
		},
		{
			ID:          "8",
			Title:       "User Testing",
			Description: "Conduct user testing sessions and gather feedback",
			DueDate:     date("2023-11-30"),
			UserID:      "2",
			Completed:   true,
		},
		{
			ID:          "9",
			Title:       "Fix Accessibility Issues",
			Description: "Ensure the application meets WCAG 2.1 AA standards",
			DueDate:     date("2023-12-01"),
			UserID:      "3",
			Completed:   true,
		},
		{
			ID:          "10",
			Title:       "Implement Dark Mode",
			Description: "Add dark mode support to improve user experience",
			DueDate:     date("2023-12-20"),
			UserID:      "4",
		},
	}
}
