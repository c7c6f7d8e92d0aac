package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/restapi/app"
	"github.com/go-arrower/restapi/contexts/resources/internal/domain"
	"github.com/go-arrower/restapi/repository"
)

func NewUpdateResourceRequestHandler[E any, P repository.Patch[E]](
	repo domain.Repository[E],
) app.Request[UpdateRequest[P], E] {
	return &updateResourceRequestHandler[E, P]{repo: repo}
}

type updateResourceRequestHandler[E any, P repository.Patch[E]] struct {
	repo domain.Repository[E]
}

// UpdateRequest changes the fields of the record with ID that are present in Patch.
type UpdateRequest[P any] struct {
	ID    domain.ID `json:"id"   validate:"required"`
	Patch P         `json:"body"`
}

func (h *updateResourceRequestHandler[E, P]) H(ctx context.Context, req UpdateRequest[P]) (E, error) { //nolint:ireturn,lll // valid use of generics
	record, found := h.repo.Update(ctx, req.ID, req.Patch)
	if !found {
		return record, fmt.Errorf("%w: %s: %w", ErrUpdateResourceFailed, req.ID, domain.ErrNotFound)
	}

	return record, nil
}
