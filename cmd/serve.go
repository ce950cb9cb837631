package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/zctpy/paiban/pkg/ai"
	"github.com/zctpy/paiban/pkg/log"
	"github.com/zctpy/paiban/pkg/server"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTPServerAddress = addr
		}
		logger, err := cfg.logger(false)
		if err != nil {
			return err
		}
		defer logger.Close()

		if !cfg.IsDevelopment() {
			gin.SetMode(gin.ReleaseMode)
		}

		var transformer ai.Transformer
		if cfg.APIKey != "" {
			transformer = ai.NewGemini(ai.GeminiConfig{
				APIKey:  cfg.APIKey,
				Model:   cfg.AIModel,
				BaseURL: cfg.AIBaseURL,
			}, logger)
		} else {
			logger.Warning("API_KEY is not set, AI endpoint is disabled")
		}

		// stop() or a signal catch makes context Done
		ctx, stop := signal.NotifyContext(cmd.Context(), interruptSignals...)
		defer stop()

		service := server.NewService(cfg.Config, cfg.Themes, transformer, logger)
		waitGroup, ctx := errgroup.WithContext(ctx)
		runServer(ctx, waitGroup, service, cfg.HTTPServerAddress, logger)
		return waitGroup.Wait()
	},
}

func runServer(ctx context.Context, waitGroup *errgroup.Group, service *server.Service, addr string, logger log.Logger) {
	waitGroup.Go(func() error {
		logger.Info("start HTTP server at %s", addr)

		err := service.Start()
		// returned once the server begins shutting down
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if err != nil {
			logger.Error("cannot start HTTP server: %v", err)
		}
		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		logger.Info("HTTP server: graceful shutdown")

		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)
		if err != nil {
			logger.Error("cannot shutdown HTTP server gracefully: %v", err)
		}
		logger.Info("HTTP server is stopped")
		return err
	})
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default is HTTP_SERVER_ADDRESS)")
}
