package app

import (
	"context"
	"log/slog"

	"github.com/go-arrower/restapi/alog"
)

// useCaseLogger writes the debug lines shared by all logging decorators.
// kind is one of request, command or query and part of every message.
type useCaseLogger struct {
	logger alog.Logger
	kind   string
}

func (l useCaseLogger) start(ctx context.Context, cmdName string) {
	l.logger.DebugContext(ctx, "executing "+l.kind,
		slog.String("command", cmdName),
	)
}

func (l useCaseLogger) done(ctx context.Context, cmdName string, err error) {
	if err != nil {
		l.logger.DebugContext(ctx, "failed to execute "+l.kind,
			slog.String("command", cmdName),
			slog.String("error", err.Error()),
		)

		return
	}

	l.logger.DebugContext(ctx, l.kind+" executed successfully",
		slog.String("command", cmdName),
	)
}

func NewLoggedRequest[Req any, Res any](logger alog.Logger, handler Request[Req, Res]) Request[Req, Res] {
	return &requestLoggingDecorator[Req, Res]{
		log:  useCaseLogger{logger: logger, kind: "request"},
		base: handler,
	}
}

type requestLoggingDecorator[Req any, Res any] struct {
	log  useCaseLogger
	base Request[Req, Res]
}

func (d *requestLoggingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn,lll // valid use of generics
	cmdName := commandName(req)
	d.log.start(ctx, cmdName)

	res, err := d.base.H(ctx, req)
	d.log.done(ctx, cmdName, err)

	return res, err //nolint:wrapcheck // decorate but not change anything
}

func NewLoggedCommand[C any](logger alog.Logger, handler Command[C]) Command[C] {
	return &commandLoggingDecorator[C]{
		log:  useCaseLogger{logger: logger, kind: "command"},
		base: handler,
	}
}

type commandLoggingDecorator[C any] struct {
	log  useCaseLogger
	base Command[C]
}

func (d *commandLoggingDecorator[C]) H(ctx context.Context, cmd C) error {
	cmdName := commandName(cmd)
	d.log.start(ctx, cmdName)

	err := d.base.H(ctx, cmd)
	d.log.done(ctx, cmdName, err)

	return err //nolint:wrapcheck // decorate but not change anything
}

func NewLoggedQuery[Q any, Res any](logger alog.Logger, handler Query[Q, Res]) Query[Q, Res] {
	return &queryLoggingDecorator[Q, Res]{
		log:  useCaseLogger{logger: logger, kind: "query"},
		base: handler,
	}
}

type queryLoggingDecorator[Q any, Res any] struct {
	log  useCaseLogger
	base Query[Q, Res]
}

func (d *queryLoggingDecorator[Q, Res]) H(ctx context.Context, query Q) (Res, error) { //nolint:ireturn,lll // valid use of generics
	cmdName := commandName(query)
	d.log.start(ctx, cmdName)

	res, err := d.base.H(ctx, query)
	d.log.done(ctx, cmdName, err)

	return res, err //nolint:wrapcheck // decorate but not change anything
}
