package domain

type User struct {
	ID     string
	Name   string
	Avatar *string
}
