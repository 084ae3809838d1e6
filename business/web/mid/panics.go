package mid

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/web"
)

// Panics recovers from panics and converts the panic to an error so
// it is reported in Metrics and handled cleanly by Errors.
func Panics() web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = fmt.Errorf("PANIC [%v] TRACE[%s]", rec, string(debug.Stack()))
				}
			}()

			return handler(ctx, w, r)
		}

		return h
	}

	return m
}
