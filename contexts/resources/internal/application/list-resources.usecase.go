package application

import (
	"context"

	"github.com/go-arrower/restapi/app"
	"github.com/go-arrower/restapi/contexts/resources/internal/domain"
)

func NewListResourcesQueryHandler[E any](repo domain.Repository[E]) app.Query[ListQuery[E], []E] {
	return &listResourcesQueryHandler[E]{repo: repo}
}

type listResourcesQueryHandler[E any] struct {
	repo domain.Repository[E]
}

// ListQuery returns all records in insertion order.
type ListQuery[E any] struct{}

func (h *listResourcesQueryHandler[E]) H(ctx context.Context, _ ListQuery[E]) ([]E, error) {
	return h.repo.All(ctx), nil
}
