package application

import (
	"context"

	"github.com/go-arrower/restapi/app"
	"github.com/go-arrower/restapi/contexts/resources/internal/domain"
	"github.com/go-arrower/restapi/repository"
)

func NewCreateResourceRequestHandler[E any, C repository.Input[E, domain.ID]](
	repo domain.Repository[E],
) app.Request[CreateRequest[C], E] {
	return &createResourceRequestHandler[E, C]{repo: repo}
}

type createResourceRequestHandler[E any, C repository.Input[E, domain.ID]] struct {
	repo domain.Repository[E]
}

// CreateRequest adds a new record built from Input to the end of the collection.
type CreateRequest[C any] struct {
	Input C `json:"body"`
}

func (h *createResourceRequestHandler[E, C]) H(ctx context.Context, req CreateRequest[C]) (E, error) { //nolint:ireturn,lll // valid use of generics
	return h.repo.Create(ctx, req.Input), nil
}
