// Package mid contains the set of middleware functions every request
// passes through: request logging, centralized error handling, basic
// metrics, panic recovery, and CORS.
package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/web"
	"go.uber.org/zap"
)

// Logger writes one structured log entry when a request starts (trace
// id, method, path, remote address) and another when it completes
// (trace id, method, path, status code, elapsed time).
func Logger(log *zap.SugaredLogger) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			v := web.GetValues(ctx)

			log.Infow("request started", "traceid", v.TraceID, "method", r.Method, "path", r.URL.Path, "remoteaddr", r.RemoteAddr)

			err := handler(ctx, w, r)

			log.Infow("request completed", "traceid", v.TraceID, "method", r.Method, "path", r.URL.Path,
				"statuscode", v.StatusCode, "since", time.Since(v.Now).String())

			return err
		}

		return h
	}

	return m
}
