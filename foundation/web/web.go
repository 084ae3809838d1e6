// Package web contains a thin layer of support for writing web
// services. It wraps httptreemux's router with the application's own
// Handler signature, a per-request Values context, and an optional
// shutdown channel so a handler that hits an unrecoverable error can
// ask main to shut the process down cleanly.
package web

import (
	"context"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/dimfeld/httptreemux/v5"
	"github.com/google/uuid"
)

// Handler is the signature every application handler and middleware
// must comply with, and it only differs from http.HandlerFunc in that
// it returns an error so centralized error handling (mid.Errors) can
// act on it.
type Handler func(ctx context.Context, w http.ResponseWriter, r *http.Request) error

// Middleware is a function that wraps a Handler, producing a new
// Handler. Middlewares are applied in the order they are listed at
// App construction time, outermost first.
type Middleware func(Handler) Handler

// App is the entrypoint into the application, and what configures our
// context object for each of our http handlers. App wraps an
// httptreemux.ContextMux to handle each mux operation.
type App struct {
	mux      *httptreemux.ContextMux
	shutdown chan os.Signal
	mw       []Middleware
}

// NewApp creates an App value that handles a set of routes for the
// application. The shutdown channel, if non-nil, is signaled by
// SignalShutdown so main's graceful-shutdown goroutine can act on an
// otherwise-unrecoverable handler error.
func NewApp(shutdown chan os.Signal, mw ...Middleware) *App {
	return &App{
		mux:      httptreemux.NewContextMux(),
		shutdown: shutdown,
		mw:       mw,
	}
}

// SignalShutdown is used to gracefully shut down the app when an
// integrity issue is identified.
func (a *App) SignalShutdown() {
	if a.shutdown != nil {
		a.shutdown <- syscall.SIGTERM
	}
}

// ServeHTTP implements the http.Handler interface.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// Handle sets a handler function for a given HTTP method and path
// pair to the application server mux. Middleware specified here is
// applied on top of the App's own middleware stack, with the route's
// middleware closest to the handler.
func (a *App) Handle(method string, group string, path string, handler Handler, mw ...Middleware) {
	handler = wrapMiddleware(mw, handler)
	handler = wrapMiddleware(a.mw, handler)

	h := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		v := Values{
			TraceID: uuid.NewString(),
			Now:     time.Now(),
		}
		ctx = context.WithValue(ctx, valuesKey, &v)

		if err := handler(ctx, w, r); err != nil {
			a.SignalShutdown()
			return
		}
	}

	finalPath := path
	if group != "" {
		finalPath = "/" + group + path
	}

	a.mux.Handle(method, finalPath, h)
}

// wrapMiddleware wraps handler with each middleware in order, last in
// the slice is closest to handler (executes last on the way in,
// innermost in the chain).
func wrapMiddleware(mw []Middleware, handler Handler) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		m := mw[i]
		if m != nil {
			handler = m(handler)
		}
	}
	return handler
}
