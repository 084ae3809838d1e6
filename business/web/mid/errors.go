package mid

import (
	"context"
	"net/http"

	"github.com/sakthi-1918/P2P-Distributed-blockchain/business/web/errs"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/web"
	"go.uber.org/zap"
)

// Errors handles errors coming out of the call chain. It detects
// normal application errors which are used to respond to the client
// in a uniform way. Unexpected errors (the ones that bubble up
// checked via errors.As) are logged.
func Errors(log *zap.SugaredLogger) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			if err := handler(ctx, w, r); err != nil {
				log.Errorw("ERROR", "traceid", web.GetTraceID(ctx), "ERROR", err)

				if web.IsShutdown(err) {
					return err
				}

				var status int
				var message string

				switch {
				case errs.IsTrusted(err):
					trusted := errs.GetTrusted(err)
					status = trusted.Status
					message = trusted.Err.Error()
				default:
					status = http.StatusInternalServerError
					message = http.StatusText(http.StatusInternalServerError)
				}

				if err := web.RespondError(ctx, w, message, status); err != nil {
					return err
				}

				if web.IsShutdown(err) {
					return err
				}
			}

			return nil
		}

		return h
	}

	return m
}
