// Package init is the context's startup API.
//
// Put all initialisations here.
// For example, setup dependency injection and register routes.
package init

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-arrower/restapi"
	"github.com/go-arrower/restapi/alog"
	"github.com/go-arrower/restapi/app"
	"github.com/go-arrower/restapi/contexts/resources/internal/application"
	"github.com/go-arrower/restapi/contexts/resources/internal/domain"
	"github.com/go-arrower/restapi/contexts/resources/internal/interfaces/web"
	"github.com/go-arrower/restapi/repository"
)

const contextName = "resources"

func NewResourcesContext(ctx context.Context, di *restapi.Container) (*ResourcesContext, error) {
	err := ensureRequiredDependencies(di)
	if err != nil {
		return nil, fmt.Errorf("missing dependencies to initialise context resources: %w", err)
	}

	resources, err := setupResourcesContext(di)
	if err != nil {
		return nil, fmt.Errorf("could not initialise context resources: %w", err)
	}

	di.Logger.DebugContext(ctx, "context resources initialised",
		slog.String("id_strategy", string(di.Config.Repository.IDStrategy)),
		slog.Bool("seed", di.Config.Repository.Seed),
	)

	return resources, nil
}

type ResourcesContext struct {
	globalContainer *restapi.Container

	usersController    *web.ResourceController[domain.User, domain.NewUser, domain.UserPatch, web.UserPayload, web.UserPatchPayload]                //nolint:lll
	carsController     *web.ResourceController[domain.Car, domain.NewCar, domain.CarPatch, web.CarPayload, web.CarPatchPayload]                     //nolint:lll
	productsController *web.ResourceController[domain.Product, domain.NewProduct, domain.ProductPatch, web.ProductPayload, web.ProductPatchPayload] //nolint:lll
	ordersController   *web.ResourceController[domain.Order, domain.NewOrder, domain.OrderPatch, web.OrderPayload, web.OrderPatchPayload]           //nolint:lll
	healthController   *web.HealthController
	openAPIController  *web.OpenAPIController
}

func (c *ResourcesContext) Shutdown(_ context.Context) error {
	return nil
}

func ensureRequiredDependencies(di *restapi.Container) error {
	if di == nil {
		return fmt.Errorf("%w: container", restapi.ErrMissingDependency)
	}

	if di.Config == nil {
		return fmt.Errorf("%w: config", restapi.ErrMissingDependency)
	}

	if di.Logger == nil {
		return fmt.Errorf("%w: logger", restapi.ErrMissingDependency)
	}

	if di.TraceProvider == nil || di.MeterProvider == nil {
		return fmt.Errorf("%w: observability providers", restapi.ErrMissingDependency)
	}

	if di.Validator == nil {
		return fmt.Errorf("%w: validator", restapi.ErrMissingDependency)
	}

	if di.WebRouter == nil {
		return fmt.Errorf("%w: web router", restapi.ErrMissingDependency)
	}

	if di.APIRouter == nil {
		return fmt.Errorf("%w: api router", restapi.ErrMissingDependency)
	}

	return nil
}

func setupResourcesContext(di *restapi.Container) (*ResourcesContext, error) {
	logger := di.Logger.With(slog.String("context", contextName))

	users, err := newRepository(di, domain.UserResource, domain.UserSeed)
	if err != nil {
		return nil, err
	}

	cars, err := newRepository(di, domain.CarResource, domain.CarSeed)
	if err != nil {
		return nil, err
	}

	products, err := newRepository(di, domain.ProductResource, domain.ProductSeed)
	if err != nil {
		return nil, err
	}

	orders, err := newRepository(di, domain.OrderResource, domain.OrderSeed)
	if err != nil {
		return nil, err
	}

	resources := &ResourcesContext{
		globalContainer: di,

		usersController: web.NewUsersController(
			setupApplication[domain.User, domain.NewUser, domain.UserPatch](di, logger, users),
		),
		carsController: web.NewCarsController(
			setupApplication[domain.Car, domain.NewCar, domain.CarPatch](di, logger, cars),
		),
		productsController: web.NewProductsController(
			setupApplication[domain.Product, domain.NewProduct, domain.ProductPatch](di, logger, products),
		),
		ordersController: web.NewOrdersController(
			setupApplication[domain.Order, domain.NewOrder, domain.OrderPatch](di, logger, orders),
		),
		healthController: web.NewHealthController(),
	}

	doc, err := web.NewOpenAPIDocument(apiBasePath,
		resources.usersController,
		resources.carsController,
		resources.productsController,
		resources.ordersController,
	)
	if err != nil {
		return nil, fmt.Errorf("could not describe the api: %w", err)
	}

	resources.openAPIController = web.NewOpenAPIController(doc)

	registerResourcesRoutes(resources)

	return resources, nil
}

// newRepository returns the repository of one resource, seeded if configured.
// Its size is reported on the status endpoint.
func newRepository[E any](
	di *restapi.Container,
	resource domain.Resource,
	seed func() []E,
) (*repository.MemoryRepository[E, domain.ID], error) {
	ids, err := repository.NewIDGenerator(di.Config.Repository.IDStrategy)
	if err != nil {
		return nil, fmt.Errorf("could not create repository for %s: %w", resource.Plural, err)
	}

	var data []E
	if di.Config.Repository.Seed {
		data = seed()
	}

	repo := repository.NewMemoryRepository[E, domain.ID](data, repository.WithIDGenerator(ids))

	di.RegisterCounter(resource.Plural, repo.Count)

	return repo, nil
}

// setupApplication decorates the use cases of one resource.
// Validation runs last, so that invalid calls are traced, metered and logged as well.
func setupApplication[E any, C repository.Input[E, domain.ID], P repository.Patch[E]](
	di *restapi.Container,
	logger alog.Logger,
	repo domain.Repository[E],
) application.ResourceApplication[E, C, P] {
	resources := application.NewResourceApplication[E, C, P](repo)

	return application.ResourceApplication[E, C, P]{
		ListResources: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			resources.ListResources,
		),
		ShowResource: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			app.NewValidatedQuery(di.Validator, resources.ShowResource),
		),
		CreateResource: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			app.NewValidatedRequest(di.Validator, resources.CreateResource),
		),
		UpdateResource: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			app.NewValidatedRequest(di.Validator, resources.UpdateResource),
		),
		DeleteResource: app.NewInstrumentedCommand(di.TraceProvider, di.MeterProvider, logger,
			app.NewValidatedCommand(di.Validator, resources.DeleteResource),
		),
	}
}
