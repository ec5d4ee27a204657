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

	"github.com/gorilla/mux"
	"github.com/josejalvarezm/autoinx-functions/internal/app"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var noScheduler bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the three endpoints on a local HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "do not run the scheduled chat toggle")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, cfg, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if !noScheduler {
		c, err := startScheduler(a, cfg.ScheduleCron)
		if err != nil {
			return err
		}
		defer c.Stop()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("Starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	a.Logger.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

// newRouter mounts the endpoints at the paths the hosting rewrites use
func newRouter(a *app.App) *mux.Router {
	router := mux.NewRouter()

	router.Handle("/public-config", a.PublicConfig)
	router.Handle("/admin-config", a.AdminConfig)
	router.Handle("/toggle-chat-widget", a.ChatToggle)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	return router
}

// startScheduler runs the scheduled evaluation on expr in the reference timezone
func startScheduler(a *app.App, expr string) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(a.Location))
	_, err := c.AddFunc(expr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		msg, err := a.Toggler.RunSchedule(ctx)
		if err != nil {
			a.Logger.Error("scheduled chat toggle failed", err)
			return
		}
		a.Logger.Info("scheduled chat toggle", "result", msg)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_CRON %q: %w", expr, err)
	}
	c.Start()
	a.Logger.Info("Scheduler started", "cron", expr, "timezone", a.Location.String())
	return c, nil
}
