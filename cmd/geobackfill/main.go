package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/infra/geocoding"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/infra/storage"
	"marketplace/internal/usecase"
	"marketplace/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var batchSize int

var rootCmd = &cobra.Command{
	Use:   "geobackfill",
	Short: "Geocode listings that have a location but no coordinates",
	Long: `
geobackfill pages through listings whose location is set and whose coordinates
are not, resolves each location with the configured provider and stores the
result. Listings edited while the run is in flight keep their new values. The
run stops at the first provider failure and can simply be started again.
`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func main() {
	rootCmd.Flags().IntVar(&batchSize, "batch-size", 100, "listings fetched per page")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		listingUC usecase.ListingUsecase
		logger    *slog.Logger
	)

	app := fx.New(
		injectInfra(),
		injectRepo(),
		fx.Provide(
			impl.NewGeocodeHook,
			impl.NewListingService,
		),
		fx.Populate(&listingUC, &logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := app.Stop(stopCtx); err != nil {
			logger.Error("Failed to stop gracefully", slog.Any("error", err))
		}
	}()

	if _, err := listingUC.BackfillCoordinates(ctx, batchSize); err != nil {
		logger.Error("Coordinate backfill failed", slog.Any("error", err))

		return err
	}

	return nil
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		geocoding.Module,
		storage.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewListingRepository,
			postgres.NewTransactionManager,
		),
	)
}
