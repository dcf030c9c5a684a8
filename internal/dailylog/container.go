package dailylog

import "github.com/saulo-duarte/habits-lambda/internal/habit"

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(repo Repository, habitRepo habit.Repository) *Container {
	service := NewService(repo, habitRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
