// Package mocks holds testify mocks of the repository ports.
//
// Regenerate with:
//
//	go generate ./internal/core/ports/mocks
//
//go:generate mockery --name TaskRepository --dir .. --output . --outpkg mocks --filename task_repository.go
//go:generate mockery --name UserRepository --dir .. --output . --outpkg mocks --filename user_repository.go
package mocks
