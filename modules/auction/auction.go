package auction

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/core/workers"
	"github.com/gaze-network/auction-network/internal/config"
	"github.com/gaze-network/auction-network/internal/postgres"
	"github.com/gaze-network/auction-network/modules/auction/api/httphandler"
	auctionconfig "github.com/gaze-network/auction-network/modules/auction/config"
	"github.com/gaze-network/auction-network/modules/auction/datagateway"
	"github.com/gaze-network/auction-network/modules/auction/export"
	"github.com/gaze-network/auction-network/modules/auction/notifier"
	"github.com/gaze-network/auction-network/modules/auction/repository/memory"
	pgrepository "github.com/gaze-network/auction-network/modules/auction/repository/postgres"
	"github.com/gaze-network/auction-network/modules/auction/usecase"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gaze-network/auction-network/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
)

const Version = "v0.1.0"

func New(injector do.Injector) (workers.Worker, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector).Modules.Auction

	var cleanupFuncs []func(context.Context) error
	auctionDg, err := newDataGateway(ctx, conf, &cleanupFuncs)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	reg := do.MustInvoke[*metrics.Registry](injector)
	opts := []usecase.Option{
		usecase.WithMetrics(usecase.NewMetrics(reg, metrics.Namespace())),
	}

	webhook, err := notifier.New(conf.Webhook)
	if err != nil {
		return nil, errors.Wrap(err, "can't create webhook notifier")
	}
	opts = append(opts, usecase.WithPublisher(webhook))

	if conf.Export.S3.Enabled() {
		archiver, err := export.NewS3Archiver(ctx, conf.Export.S3)
		if err != nil {
			return nil, errors.Wrap(err, "can't create s3 archiver")
		}
		opts = append(opts, usecase.WithArchiver(archiver))
		logger.InfoContext(ctx, "Posted events will be archived to S3", slog.String("bucket", conf.Export.S3.Bucket))
	}

	uc := usecase.New(auctionDg, conf.Settlement, opts...)

	httpServer := do.MustInvoke[*fiber.App](injector)
	auctionHandler := httphandler.New(uc)
	if err := auctionHandler.Mount(httpServer); err != nil {
		return nil, errors.Wrap(err, "can't mount auction API")
	}
	logger.InfoContext(ctx, "Mounted auction HTTP handler")

	worker := workers.WithCleanup(webhook, func(ctx context.Context) error {
		for _, cleanup := range cleanupFuncs {
			if err := cleanup(ctx); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	})
	logger.InfoContext(ctx, "Auction module started.", slog.String("storage", conf.Storage), slog.String("version", Version))
	return worker, nil
}

func newDataGateway(ctx context.Context, conf auctionconfig.Config, cleanupFuncs *[]func(context.Context) error) (datagateway.AuctionDataGateway, error) {
	switch conf.Storage {
	case auctionconfig.StoragePostgres:
		pg, err := postgres.NewPool(ctx, conf.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "can't create postgres connection pool")
		}
		*cleanupFuncs = append(*cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		return pgrepository.NewRepository(pg), nil
	case auctionconfig.StorageMemory:
		logger.WarnContext(ctx, "Auction data is kept in memory and will be lost on shutdown")
		return memory.NewRepository(), nil
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q storage is not supported", conf.Storage)
	}
}
