package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/server"
	"github.com/cleared-dev/ledgerlab/internal/session"
)

func newServeCommand(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve isolated ledger sessions over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			srv, err := a.newServer()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}

func (a *app) newServer() (*server.Server, error) {
	chart, err := a.chart()
	if err != nil {
		return nil, err
	}
	cashFlow := a.cfg.CashFlow.Projection()
	// Fail at startup, not on the first session, if the config is wrong.
	if _, err := session.New(chart, cashFlow, a.log); err != nil {
		return nil, err
	}
	factory := func() (*session.Session, error) {
		return session.New(chart, cashFlow, a.log)
	}
	store := session.NewStore(factory,
		session.WithMaxSessions(a.cfg.Server.MaxSessions),
		session.WithIdleTimeout(a.cfg.Server.SessionIdle),
	)
	return server.New(server.Config{
		Addr:  a.cfg.Server.Addr,
		Log:   a.log,
		Chart: chart,
		Store: store,
	}), nil
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, srv *server.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
