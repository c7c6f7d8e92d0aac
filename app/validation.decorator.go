package app

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/go-arrower/restapi/ctx"
)

const CtxValidated ctx.CTXKey = "restapi.validated"

// PassedValidation reports whether the request passed one of the validating decorators.
// Use it in case a use case must not run on unvalidated input, e.g. because of a wrong setup of dependencies.
func PassedValidation(ctx context.Context) bool {
	if v, ok := ctx.Value(CtxValidated).(bool); ok {
		return v
	}

	return false
}

// validate runs the struct validation and marks ctx as validated on success.
func validate(ctx context.Context, v *validator.Validate, s any) (context.Context, error) {
	if err := v.Struct(s); err != nil {
		return ctx, err //nolint:wrapcheck // validation error is returned on purpose
	}

	return context.WithValue(ctx, CtxValidated, true), nil
}

func orDefault(v *validator.Validate) *validator.Validate {
	if v == nil {
		return validator.New(validator.WithRequiredStructEnabled())
	}

	return v
}

func NewValidatedRequest[Req any, Res any](validate *validator.Validate, req Request[Req, Res]) Request[Req, Res] {
	return &requestValidatingDecorator[Req, Res]{
		validate: orDefault(validate),
		base:     req,
	}
}

type requestValidatingDecorator[Req any, Res any] struct {
	validate *validator.Validate
	base     Request[Req, Res]
}

func (d *requestValidatingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn,lll // valid use of generics
	newCtx, err := validate(ctx, d.validate, req)
	if err != nil {
		return *new(Res), err
	}

	return d.base.H(newCtx, req) //nolint:wrapcheck // decorate but not change anything
}

func NewValidatedCommand[C any](validate *validator.Validate, cmd Command[C]) Command[C] {
	return &commandValidatingDecorator[C]{
		validate: orDefault(validate),
		base:     cmd,
	}
}

type commandValidatingDecorator[C any] struct {
	validate *validator.Validate
	base     Command[C]
}

func (d *commandValidatingDecorator[C]) H(ctx context.Context, cmd C) error {
	newCtx, err := validate(ctx, d.validate, cmd)
	if err != nil {
		return err
	}

	return d.base.H(newCtx, cmd) //nolint:wrapcheck // decorate but not change anything
}

func NewValidatedQuery[Q any, Res any](validate *validator.Validate, query Query[Q, Res]) Query[Q, Res] {
	return &queryValidatingDecorator[Q, Res]{
		validate: orDefault(validate),
		base:     query,
	}
}

type queryValidatingDecorator[Q any, Res any] struct {
	validate *validator.Validate
	base     Query[Q, Res]
}

func (d *queryValidatingDecorator[Q, Res]) H(ctx context.Context, query Q) (Res, error) { //nolint:ireturn,lll // valid use of generics
	newCtx, err := validate(ctx, d.validate, query)
	if err != nil {
		return *new(Res), err
	}

	return d.base.H(newCtx, query) //nolint:wrapcheck // decorate but not change anything
}
