package application_test

import (
	"context"

	"github.com/go-arrower/restapi/contexts/resources/internal/domain"
	"github.com/go-arrower/restapi/repository"
)

var ctx = context.Background()

func newUserRepo() *repository.MemoryRepository[domain.User, domain.ID] {
	return repository.NewMemoryRepository[domain.User, domain.ID](domain.UserSeed())
}

func newOrderRepo() *repository.MemoryRepository[domain.Order, domain.ID] {
	return repository.NewMemoryRepository[domain.Order, domain.ID](domain.OrderSeed())
}

func ptr[T any](v T) *T {
	return &v
}
