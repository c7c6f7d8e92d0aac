package app

import (
	"context"
	"errors"
)

//
// This file contains convenience helpers you can use to easier test
// your calling code relying on this usecase pattern.
//

var ErrUseCaseFailed = errors.New("usecase failed")

// TestRequestHandler turns f into a Request, so a test can define the behaviour inline.
func TestRequestHandler[Req any, Res any](f func(ctx context.Context, req Req) (Res, error)) Request[Req, Res] {
	return requestFunc[Req, Res](f)
}

type requestFunc[Req any, Res any] func(ctx context.Context, req Req) (Res, error)

func (f requestFunc[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	return f(ctx, req)
}

// TestCommandHandler turns f into a Command.
func TestCommandHandler[C any](f func(ctx context.Context, cmd C) error) Command[C] {
	return commandFunc[C](f)
}

type commandFunc[C any] func(ctx context.Context, cmd C) error

func (f commandFunc[C]) H(ctx context.Context, cmd C) error {
	return f(ctx, cmd)
}

// TestQueryHandler turns f into a Query.
func TestQueryHandler[Q any, Res any](f func(ctx context.Context, query Q) (Res, error)) Query[Q, Res] {
	return requestFunc[Q, Res](f)
}

// TestSuccessRequestHandler returns res for every call.
func TestSuccessRequestHandler[Req any, Res any](res ...Res) Request[Req, Res] {
	return requestFunc[Req, Res](func(_ context.Context, _ Req) (Res, error) {
		return first(res), nil
	})
}

func TestFailureRequestHandler[Req any, Res any]() Request[Req, Res] {
	return requestFunc[Req, Res](func(_ context.Context, _ Req) (Res, error) {
		return *new(Res), ErrUseCaseFailed
	})
}

func TestSuccessCommandHandler[C any]() Command[C] {
	return commandFunc[C](func(_ context.Context, _ C) error {
		return nil
	})
}

func TestFailureCommandHandler[C any]() Command[C] {
	return commandFunc[C](func(_ context.Context, _ C) error {
		return ErrUseCaseFailed
	})
}

// TestSuccessQueryHandler returns res for every call.
func TestSuccessQueryHandler[Q any, Res any](res ...Res) Query[Q, Res] {
	return requestFunc[Q, Res](func(_ context.Context, _ Q) (Res, error) {
		return first(res), nil
	})
}

func TestFailureQueryHandler[Q any, Res any]() Query[Q, Res] {
	return requestFunc[Q, Res](func(_ context.Context, _ Q) (Res, error) {
		return *new(Res), ErrUseCaseFailed
	})
}

func first[T any](values []T) T { //nolint:ireturn // valid use of generics
	if len(values) == 0 {
		return *new(T)
	}

	return values[0]
}
