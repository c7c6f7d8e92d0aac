package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/go-arrower/restapi"
	"github.com/go-arrower/restapi/contexts/resources/internal/application"
	"github.com/go-arrower/restapi/contexts/resources/internal/domain"
	"github.com/go-arrower/restapi/repository"
)

// NewResourceController returns a controller serving the records of one kind.
// E is the record, C its input and P its patch.
// B is the create payload binding C, U the update payload binding P.
func NewResourceController[
	E any,
	C repository.Input[E, domain.ID],
	P repository.Patch[E],
	B Payload[C],
	U PatchPayload[P],
](
	resource domain.Resource,
	app application.ResourceApplication[E, C, P],
) *ResourceController[E, C, P, B, U] {
	return &ResourceController[E, C, P, B, U]{
		resource: resource,
		app:      app,
	}
}

type ResourceController[
	E any,
	C repository.Input[E, domain.ID],
	P repository.Patch[E],
	B Payload[C],
	U PatchPayload[P],
] struct {
	resource domain.Resource
	app      application.ResourceApplication[E, C, P]
}

func NewUsersController(
	app application.ResourceApplication[domain.User, domain.NewUser, domain.UserPatch],
) *ResourceController[domain.User, domain.NewUser, domain.UserPatch, UserPayload, UserPatchPayload] {
	return NewResourceController[domain.User, domain.NewUser, domain.UserPatch, UserPayload, UserPatchPayload](
		domain.UserResource, app,
	)
}

func NewCarsController(
	app application.ResourceApplication[domain.Car, domain.NewCar, domain.CarPatch],
) *ResourceController[domain.Car, domain.NewCar, domain.CarPatch, CarPayload, CarPatchPayload] {
	return NewResourceController[domain.Car, domain.NewCar, domain.CarPatch, CarPayload, CarPatchPayload](
		domain.CarResource, app,
	)
}

func NewProductsController(
	app application.ResourceApplication[domain.Product, domain.NewProduct, domain.ProductPatch],
) *ResourceController[domain.Product, domain.NewProduct, domain.ProductPatch, ProductPayload, ProductPatchPayload] {
	return NewResourceController[domain.Product, domain.NewProduct, domain.ProductPatch, ProductPayload, ProductPatchPayload](
		domain.ProductResource, app,
	)
}

func NewOrdersController(
	app application.ResourceApplication[domain.Order, domain.NewOrder, domain.OrderPatch],
) *ResourceController[domain.Order, domain.NewOrder, domain.OrderPatch, OrderPayload, OrderPatchPayload] {
	return NewResourceController[domain.Order, domain.NewOrder, domain.OrderPatch, OrderPayload, OrderPatchPayload](
		domain.OrderResource, app,
	)
}

// RegisterRoutes adds the routes of the controller under /<plural> of router.
// Paths with a trailing slash are served by the router's RemoveTrailingSlash middleware.
func (rc *ResourceController[E, C, P, B, U]) RegisterRoutes(router *echo.Group) {
	group := router.Group("/" + rc.resource.Plural)

	group.GET("", rc.List())
	group.GET("/:id", rc.Show())
	group.POST("", rc.Create())
	group.PUT("/:id", rc.Update())
	group.DELETE("/:id", rc.Delete())
}

func (rc *ResourceController[E, C, P, B, U]) List() func(c echo.Context) error {
	return func(c echo.Context) error {
		records, err := rc.app.ListResources.H(c.Request().Context(), application.ListQuery[E]{})
		if err != nil {
			return rc.httpError(err)
		}

		return c.JSON(http.StatusOK, records)
	}
}

func (rc *ResourceController[E, C, P, B, U]) Show() func(c echo.Context) error {
	return func(c echo.Context) error {
		record, err := rc.app.ShowResource.H(c.Request().Context(), application.ShowQuery[E]{
			ID: domain.ID(c.Param("id")),
		})
		if err != nil {
			return rc.httpError(err)
		}

		return c.JSON(http.StatusOK, record)
	}
}

func (rc *ResourceController[E, C, P, B, U]) Create() func(c echo.Context) error {
	return func(c echo.Context) error {
		var payload B

		if err := c.Bind(&payload); err != nil {
			return bindError(err)
		}

		if err := c.Validate(payload); err != nil {
			return restapi.NewValidationError(err)
		}

		record, err := rc.app.CreateResource.H(c.Request().Context(), application.CreateRequest[C]{
			Input: payload.Input(),
		})
		if err != nil {
			return rc.httpError(err)
		}

		return c.JSON(http.StatusCreated, record)
	}
}

// Update changes the fields present in the body. An empty body leaves the record unchanged.
func (rc *ResourceController[E, C, P, B, U]) Update() func(c echo.Context) error {
	return func(c echo.Context) error {
		var payload U

		if err := c.Bind(&payload); err != nil {
			return bindError(err)
		}

		if err := c.Validate(payload); err != nil {
			return restapi.NewValidationError(err)
		}

		record, err := rc.app.UpdateResource.H(c.Request().Context(), application.UpdateRequest[P]{
			ID:    domain.ID(c.Param("id")),
			Patch: payload.Patch(),
		})
		if err != nil {
			return rc.httpError(err)
		}

		return c.JSON(http.StatusOK, record)
	}
}

func (rc *ResourceController[E, C, P, B, U]) Delete() func(c echo.Context) error {
	return func(c echo.Context) error {
		err := rc.app.DeleteResource.H(c.Request().Context(), application.DeleteCommand[E]{
			ID: domain.ID(c.Param("id")),
		})
		if err != nil {
			return rc.httpError(err)
		}

		return c.JSON(http.StatusOK, echo.Map{"message": rc.resource.Name + " deleted successfully"})
	}
}

func (rc *ResourceController[E, C, P, B, U]) httpError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, rc.resource.Name+" not found").SetInternal(err)
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return restapi.NewValidationError(err)
	}

	return fmt.Errorf("%w", err)
}

// bindError reports malformed bodies as validation errors.
// Other failures, e.g. an unsupported media type, keep their status.
func bindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code != http.StatusBadRequest {
		return httpErr
	}

	return restapi.NewValidationError(err)
}
