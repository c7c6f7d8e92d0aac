package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/restapi/app"
	"github.com/go-arrower/restapi/contexts/resources/internal/domain"
)

func NewShowResourceQueryHandler[E any](repo domain.Repository[E]) app.Query[ShowQuery[E], E] {
	return &showResourceQueryHandler[E]{repo: repo}
}

type showResourceQueryHandler[E any] struct {
	repo domain.Repository[E]
}

type ShowQuery[E any] struct {
	ID domain.ID `json:"id" validate:"required"`
}

func (h *showResourceQueryHandler[E]) H(ctx context.Context, query ShowQuery[E]) (E, error) { //nolint:ireturn // valid use of generics
	record, found := h.repo.FindByID(ctx, query.ID)
	if !found {
		return record, fmt.Errorf("%w: %s: %w", ErrShowResourceFailed, query.ID, domain.ErrNotFound)
	}

	return record, nil
}
