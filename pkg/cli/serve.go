package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coldemails/sales-hub/pkg/cli/config"
	controller "github.com/coldemails/sales-hub/pkg/controller/http"
	"github.com/coldemails/sales-hub/pkg/usecase"
	"github.com/coldemails/sales-hub/pkg/utils/metrics"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		policyCfg    config.Policy
		googleCfg    config.GoogleWorkspace
		calendlyCfg  config.Calendly
		zoomCfg      config.Zoom
		twilioCfg    config.Twilio
		crmCfg       config.CRM
		firestoreCfg config.Firestore
		notifyCfg    config.Notify
	)

	flags := joinFlags(
		serverCfg.Flags(),
		policyCfg.Flags(),
		googleCfg.Flags(),
		calendlyCfg.Flags(),
		zoomCfg.Flags(),
		twilioCfg.Flags(),
		crmCfg.Flags(),
		firestoreCfg.Flags(),
		notifyCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the console HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting sales-hub server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("policy", policyCfg),
				slog.Any("google", googleCfg),
				slog.Any("calendly", calendlyCfg),
				slog.Any("zoom", zoomCfg),
				slog.Any("twilio", twilioCfg),
				slog.Any("crm", crmCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("notify", notifyCfg),
			)

			policy, err := policyCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			identity, err := googleCfg.Configure(policy.WorkspaceDomain)
			if err != nil {
				return err
			}
			scheduling := calendlyCfg.Configure()
			video := zoomCfg.Configure()
			telephony := twilioCfg.Configure()
			crm := crmCfg.Configure()

			opts := []usecase.ProvisioningOption{
				usecase.WithMetrics(metrics.New()),
			}
			if notifier := notifyCfg.Configure(); notifier != nil {
				opts = append(opts, usecase.WithNotifier(notifier))
			}

			provisioningUC := usecase.NewProvisioning(
				identity, scheduling, video, telephony, crm, repo, policy, opts...)
			dashboardUC := usecase.NewDashboard(
				identity, scheduling, video, telephony, crm, repo, policy)

			server := controller.NewServer(ctx, serverCfg.Addr, provisioningUC, dashboardUC)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
