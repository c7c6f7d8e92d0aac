package app_test

import (
	"context"
	"errors"

	"github.com/go-arrower/restapi/app"
)

var (
	ctx = context.Background()

	errUseCaseFails = errors.New("some-error")
)

type (
	request  struct{}
	response struct{ Name string }
)

var (
	requestSuccessHandler = app.TestSuccessRequestHandler[request, response](response{Name: "ok"})
	requestFailureHandler = app.TestRequestHandler(func(_ context.Context, _ request) (response, error) {
		return response{}, errUseCaseFails
	})

	commandSuccessHandler = app.TestSuccessCommandHandler[request]()
	commandFailureHandler = app.TestCommandHandler(func(_ context.Context, _ request) error {
		return errUseCaseFails
	})

	querySuccessHandler = app.TestSuccessQueryHandler[request, response](response{Name: "ok"})
	queryFailureHandler = app.TestQueryHandler(func(_ context.Context, _ request) (response, error) {
		return response{}, errUseCaseFails
	})
)

// generic mimics the use case structs of the application layers, which are generic over their entity.
type generic[E any] struct {
	Value E
}

type structWithValidationTags struct {
	Val0 string `validate:"required"`
	Val1 string `validate:"min=2"`
}

var passingValidationValue = structWithValidationTags{
	Val0: "testValue",
	Val1: "testValue",
}
