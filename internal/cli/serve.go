package cli

import (
	"context"

	"team-availability/internal/transport/http/middleware"
	handlers_fiber "team-availability/internal/transport/http/server/handlers-fiber"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the availability HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func newServer(a *app) *fiber.App {
	serv := fiber.New(fiber.Config{
		ReadTimeout:           a.cfg.HTTP.RequestTimeout,
		WriteTimeout:          a.cfg.HTTP.RequestTimeout,
		DisableStartupMessage: true,
		Immutable:             true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(a.log.Named("http")))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(a.log, a.uc)
	handlers_fiber.RegisterHandlers(serv, h)
	return serv
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	serv := newServer(a)

	errCh := make(chan error, 1)
	go func() {
		a.log.Infow("http server listening", "addr", a.cfg.ServerAddr())
		errCh <- serv.Listen(a.cfg.ServerAddr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.log.Errorw("failed to start server", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		a.log.Warnw("server shutdown timeout", "timeout", a.cfg.Server.ShutdownTimeout)
	}
	return nil
}
