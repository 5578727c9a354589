package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"github.com/spf13/cobra"

	_ "github.com/artem13815/atsmatch/docs"

	"github.com/artem13815/atsmatch/api/http"
	"github.com/artem13815/atsmatch/api/http/handlers"
	"github.com/artem13815/atsmatch/pkg/logger"
	"github.com/artem13815/atsmatch/pkg/resume"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d, err := wire(ctx, cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	uploads := handlers.Uploads{Dir: cfg.UploadDir, MaxBytes: cfg.MaxUploadBytes}

	app := fiber.New(fiber.Config{
		AppName: "atsmatch",
		// multipart-обёртка сверх размера файла
		BodyLimit: int(cfg.MaxUploadBytes) + 1<<20,
	})
	http.Register(app,
		handlers.NewHealthHandler(d.readiness),
		handlers.NewAnalysisHandler(d.analysis, uploads),
		handlers.NewResumeHandler(resume.NewExtractionService(d.parser), uploads),
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	port := cfg.Port
	if servePort != "" {
		port = servePort
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("port", port).Str("store", cfg.StoreDriver).Msg("HTTP server listening")
	if err := app.Listen(":" + port); err != nil {
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
