// Package application offers the use cases of the resources Context.
// All use cases are generic over the record kind, so each kind gets the same behaviour.
package application

import (
	"errors"

	"github.com/go-arrower/restapi/app"
	"github.com/go-arrower/restapi/contexts/resources/internal/domain"
	"github.com/go-arrower/restapi/repository"
)

// ResourceApplication bundles the use cases for one record kind E,
// created from input C and changed by patch P.
type ResourceApplication[E any, C repository.Input[E, domain.ID], P repository.Patch[E]] struct {
	ListResources  app.Query[ListQuery[E], []E]
	ShowResource   app.Query[ShowQuery[E], E]
	CreateResource app.Request[CreateRequest[C], E]
	UpdateResource app.Request[UpdateRequest[P], E]
	DeleteResource app.Command[DeleteCommand[E]]
}

// NewResourceApplication returns the plain use cases working on repo.
// Decorate them for production use.
func NewResourceApplication[E any, C repository.Input[E, domain.ID], P repository.Patch[E]](
	repo domain.Repository[E],
) ResourceApplication[E, C, P] {
	return ResourceApplication[E, C, P]{
		ListResources:  NewListResourcesQueryHandler(repo),
		ShowResource:   NewShowResourceQueryHandler(repo),
		CreateResource: NewCreateResourceRequestHandler[E, C](repo),
		UpdateResource: NewUpdateResourceRequestHandler[E, P](repo),
		DeleteResource: NewDeleteResourceCommandHandler(repo),
	}
}

var (
	ErrShowResourceFailed   = errors.New("could not show resource")
	ErrUpdateResourceFailed = errors.New("could not update resource")
	ErrDeleteResourceFailed = errors.New("could not delete resource")
)
