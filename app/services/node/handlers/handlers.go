// Package handlers manages the different versions of the API and
// assembles the node's debug mux.
package handlers

import (
	"expvar"
	"net/http"
	"net/http/pprof"
	"os"

	v1 "github.com/sakthi-1918/P2P-Distributed-blockchain/app/services/node/handlers/v1"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/business/web/mid"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/events"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/node"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/web"
	"go.uber.org/zap"
)

// APIMuxConfig contains all the mandatory systems required by handlers
// to be run.
type APIMuxConfig struct {
	Shutdown chan os.Signal
	Log      *zap.SugaredLogger
	Node     *node.Node
	Evts     *events.Events
	Origin   string
}

// APIMux constructs an http.Handler with all application routes bound.
func APIMux(cfg APIMuxConfig) *web.App {
	app := web.NewApp(
		cfg.Shutdown,
		mid.Logger(cfg.Log),
		mid.Errors(cfg.Log),
		mid.Metrics(),
		mid.Panics(),
		mid.Cors(cfg.Origin),
	)

	v1.Routes(app, v1.Config{
		Log:  cfg.Log,
		Node: cfg.Node,
		Evts: cfg.Evts,
	})

	return app
}

// DebugStandardLibraryMux registers the debug endpoints from the
// standard library: /debug/pprof and /debug/vars. This is bound to a
// private listener, never the public one.
func DebugStandardLibraryMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/debug/vars", expvar.Handler())

	return mux
}
