package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/restapi/app"
	"github.com/go-arrower/restapi/contexts/resources/internal/domain"
)

func NewDeleteResourceCommandHandler[E any](repo domain.Repository[E]) app.Command[DeleteCommand[E]] {
	return &deleteResourceCommandHandler[E]{repo: repo}
}

type deleteResourceCommandHandler[E any] struct {
	repo domain.Repository[E]
}

type DeleteCommand[E any] struct {
	ID domain.ID `json:"id" validate:"required"`
}

func (h *deleteResourceCommandHandler[E]) H(ctx context.Context, cmd DeleteCommand[E]) error {
	if !h.repo.DeleteByID(ctx, cmd.ID) {
		return fmt.Errorf("%w: %s: %w", ErrDeleteResourceFailed, cmd.ID, domain.ErrNotFound)
	}

	return nil
}
