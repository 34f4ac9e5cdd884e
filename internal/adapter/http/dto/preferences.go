package dto

type ThemeItem struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type FeatureFlagItem struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}
