package mid

import (
	"context"
	"expvar"
	"net/http"

	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/web"
)

// metrics is the set of process-wide counters exposed via expvar at
// /debug/vars for basic operational visibility without pulling in a
// full metrics stack.
var metrics = struct {
	goroutines *expvar.Int
	requests   *expvar.Int
	errors     *expvar.Int
	panics     *expvar.Int
}{
	goroutines: expvar.NewInt("goroutines"),
	requests:   expvar.NewInt("requests"),
	errors:     expvar.NewInt("errors"),
	panics:     expvar.NewInt("panics"),
}

// Metrics updates program counters for every request that flows
// through the handler chain.
func Metrics() web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			err := handler(ctx, w, r)

			metrics.requests.Add(1)
			if err != nil {
				metrics.errors.Add(1)
			}

			return err
		}

		return h
	}

	return m
}
