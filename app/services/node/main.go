// This program runs a peer-to-peer blockchain node.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/app/services/node/handlers"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/events"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/logger"
	"github.com/sakthi-1918/P2P-Distributed-blockchain/foundation/node"
	"go.uber.org/zap"
)

// build is the git version of this program, set at build time with
// -ldflags "-X main.build=...".
var build = "develop"

func main() {
	log, err := logger.New("NODE")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// -------------------------------------------------------------------
	// Configuration

	cfg := struct {
		conf.Version
		Web struct {
			PublicHost      string        `conf:"default:0.0.0.0:5000"`
			DebugHost       string        `conf:"default:0.0.0.0:7080"`
			ReadTimeout     time.Duration `conf:"default:5s"`
			WriteTimeout    time.Duration `conf:"default:10s"`
			IdleTimeout     time.Duration `conf:"default:120s"`
			ShutdownTimeout time.Duration `conf:"default:20s"`
			CORSOrigin      string        `conf:"default:*"`
		}
		State struct {
			Difficulty   int     `conf:"default:2"`
			MiningReward float64 `conf:"default:10"`
			KnownPeers   []string
			Debug        bool `conf:"default:false"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "peer-to-peer blockchain node",
		},
	}

	const prefix = "NODE"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) || errors.Is(err, conf.ErrVersionWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.State.Debug {
		log, err = logger.NewDebug("NODE")
		if err != nil {
			return fmt.Errorf("constructing debug logger: %w", err)
		}
		defer log.Sync()
	}

	log.Infow("startup", "version", build, "config", fmt.Sprintf("%+v", cfg))

	// -------------------------------------------------------------------
	// Node startup

	address := "http://" + cfg.Web.PublicHost

	evHandler := func(v string, args ...any) {
		log.Infow(fmt.Sprintf(v, args...))
	}

	n := node.New(node.Config{
		Address:      address,
		Difficulty:   cfg.State.Difficulty,
		MiningReward: cfg.State.MiningReward,
		EvHandler:    evHandler,
	})

	evts := events.New()
	defer evts.Shutdown()

	for _, peer := range cfg.State.KnownPeers {
		if err := n.RegisterWithPeer(peer); err != nil {
			log.Errorw("startup", "peer", peer, "ERROR", err)
		}
	}
	if len(cfg.State.KnownPeers) > 0 {
		n.Sync()
	}

	// -------------------------------------------------------------------
	// Start Debug Service

	log.Infow("startup", "status", "debug router started", "host", cfg.Web.DebugHost)

	debugMux := handlers.DebugStandardLibraryMux()
	go func() {
		if err := http.ListenAndServe(cfg.Web.DebugHost, debugMux); err != nil {
			log.Errorw("shutdown", "status", "debug router closed", "host", cfg.Web.DebugHost, "ERROR", err)
		}
	}()

	// -------------------------------------------------------------------
	// Start API Service

	log.Infow("startup", "status", "initializing API support")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	apiMux := handlers.APIMux(handlers.APIMuxConfig{
		Shutdown: shutdown,
		Log:      log,
		Node:     n,
		Evts:     evts,
		Origin:   cfg.Web.CORSOrigin,
	})

	api := http.Server{
		Addr:         cfg.Web.PublicHost,
		Handler:      apiMux,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// -------------------------------------------------------------------
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
