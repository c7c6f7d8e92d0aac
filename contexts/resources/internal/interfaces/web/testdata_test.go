package web_test

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/go-arrower/restapi"
	"github.com/go-arrower/restapi/alog"
	"github.com/go-arrower/restapi/app"
	"github.com/go-arrower/restapi/contexts/resources/internal/application"
	"github.com/go-arrower/restapi/contexts/resources/internal/domain"
	"github.com/go-arrower/restapi/contexts/resources/internal/interfaces/web"
	"github.com/go-arrower/restapi/repository"
)

var ctx = context.Background()

// newTestRouter is a helper for unit tests, by returning a valid web router.
func newTestRouter() *echo.Echo {
	e := echo.New()
	e.Validator = restapi.NewCustomValidator(restapi.NewValidator())
	e.Binder = restapi.NewBinder()
	e.HTTPErrorHandler = restapi.NewHTTPErrorHandler(alog.NewNoop())
	e.Pre(middleware.RemoveTrailingSlash())

	return e
}

// newResourceApplication returns the validated use cases working on a repository with the seed.
func newResourceApplication[E any, C repository.Input[E, domain.ID], P repository.Patch[E]](
	seed []E,
) application.ResourceApplication[E, C, P] {
	repo := repository.NewMemoryRepository[E, domain.ID](seed)
	resources := application.NewResourceApplication[E, C, P](repo)
	validate := restapi.NewValidator()

	return application.ResourceApplication[E, C, P]{
		ListResources:  resources.ListResources,
		ShowResource:   app.NewValidatedQuery(validate, resources.ShowResource),
		CreateResource: app.NewValidatedRequest(validate, resources.CreateResource),
		UpdateResource: app.NewValidatedRequest(validate, resources.UpdateResource),
		DeleteResource: app.NewValidatedCommand(validate, resources.DeleteResource),
	}
}

// newAPI returns a router serving all resources with their seed data.
func newAPI() *echo.Echo {
	e := newTestRouter()
	api := e.Group("/api")

	web.NewUsersController(
		newResourceApplication[domain.User, domain.NewUser, domain.UserPatch](domain.UserSeed()),
	).RegisterRoutes(api)
	web.NewCarsController(
		newResourceApplication[domain.Car, domain.NewCar, domain.CarPatch](domain.CarSeed()),
	).RegisterRoutes(api)
	web.NewProductsController(
		newResourceApplication[domain.Product, domain.NewProduct, domain.ProductPatch](domain.ProductSeed()),
	).RegisterRoutes(api)
	web.NewOrdersController(
		newResourceApplication[domain.Order, domain.NewOrder, domain.OrderPatch](domain.OrderSeed()),
	).RegisterRoutes(api)

	return e
}

func serve(e *echo.Echo, method string, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}
