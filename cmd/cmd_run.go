package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/core/workers"
	"github.com/gaze-network/auction-network/internal/config"
	"github.com/gaze-network/auction-network/internal/redis"
	"github.com/gaze-network/auction-network/modules/auction"
	"github.com/gaze-network/auction-network/pkg/automaxprocs"
	"github.com/gaze-network/auction-network/pkg/errorhandler"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gaze-network/auction-network/pkg/logger/slogx"
	"github.com/gaze-network/auction-network/pkg/metrics"
	"github.com/gaze-network/auction-network/pkg/middleware/idempotency"
	"github.com/gaze-network/auction-network/pkg/middleware/requestcontext"
	"github.com/gaze-network/auction-network/pkg/middleware/requestlogger"
	"github.com/gaze-network/auction-network/pkg/stacktrace"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Register Modules
var Modules = do.Package(
	do.LazyNamed(common.ModuleAuction.String(), auction.New),
)

func NewRunCommand() *cobra.Command {
	// Create command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start auction-network service",
		RunE: func(cmd *cobra.Command, args []string) error {
			undo, err := automaxprocs.Init(cmd.Context())
			if err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			defer undo()
			return runHandler(cmd, args)
		},
	}

	// Add local flags
	flags := runCmd.Flags()
	flags.Bool("api-only", false, "Run only API server")
	flags.String("modules", "", "Enable specific modules to run. E.g. `auction`")

	// Bind flags to configuration
	config.BindPFlag("api_only", flags.Lookup("api-only"))
	config.BindPFlag("enable_modules", flags.Lookup("modules"))

	return runCmd
}

const (
	shutdownTimeout = 60 * time.Second
)

func runHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()

	// Initialize application process context
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := do.New(Modules)
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)

	// Initialize metrics registry
	do.Provide(injector, func(i do.Injector) (*metrics.Registry, error) {
		return metrics.New(), nil
	})

	// Initialize Redis client
	do.Provide(injector, func(i do.Injector) (*goredis.Client, error) {
		conf := do.MustInvoke[config.Config](i)
		if !conf.Redis.Enabled() {
			return nil, errors.New("redis is not configured")
		}

		start := time.Now()
		logger.InfoContext(ctx, "Connecting to Redis...", slogx.String("addr", conf.Redis.Addr))
		client, err := redis.NewClient(ctx, conf.Redis)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		logger.InfoContext(ctx, "Connected to Redis", slog.Duration("latency", time.Since(start)))
		return client, nil
	})

	// Initialize idempotency store, shared by every instance when redis is configured
	do.Provide(injector, func(i do.Injector) (idempotency.Store, error) {
		conf := do.MustInvoke[config.Config](i)
		if !conf.Redis.Enabled() {
			logger.WarnContext(ctx, "Redis is not configured, idempotency keys are kept in memory of this instance")
			return idempotency.NewMemoryStore(), nil
		}
		client, err := do.Invoke[*goredis.Client](i)
		if err != nil {
			return nil, errors.Wrap(err, "can't create redis client")
		}
		return idempotency.NewRedisStore(client), nil
	})

	// Initialize HTTP server
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		conf := do.MustInvoke[config.Config](i)
		reg := do.MustInvoke[*metrics.Registry](i)

		clientIP, err := requestcontext.WithClientIP(conf.HTTPServer.ClientIP)
		if err != nil {
			return nil, errors.Wrap(err, "invalid client ip config")
		}

		app := fiber.New(fiber.Config{
			AppName:      "Auction Network",
			ErrorHandler: errorhandler.NewHTTPErrorHandler(),
		})
		app.
			Use(favicon.New()).
			Use(cors.New()).
			Use(requestid.New()).
			Use(requestcontext.New(
				requestcontext.WithRequestID(),
				clientIP,
				requestcontext.WithIdempotencyKey(utils.Default(conf.HTTPServer.Idempotency.Header, idempotency.DefaultHeader)),
			)).
			Use(requestlogger.New(conf.HTTPServer.Logger)).
			Use(fiberrecover.New(fiberrecover.Config{
				EnableStackTrace: true,
				StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
					st := stacktrace.Capture(1)
					logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", errors.Newf("panic: %v", e), slog.Any(logger.StackTraceKey, st.Lines()))
				},
			})).
			Use(compress.New(compress.Config{
				Level: compress.LevelDefault,
			}))

		if !conf.Metrics.Disabled {
			app.Use(reg.Middleware())
			app.Get(conf.Metrics.Path, reg.Handler())
		}

		if !conf.HTTPServer.Idempotency.Disabled {
			store, err := do.Invoke[idempotency.Store](i)
			if err != nil {
				return nil, errors.Wrap(err, "can't create idempotency store")
			}
			app.Use(idempotency.New(idempotency.Config{
				Store:    store,
				Header:   conf.HTTPServer.Idempotency.Header,
				TTL:      conf.HTTPServer.Idempotency.TTL,
				OnReplay: reg.ObserveReplay,
			}))
		}

		// Health check
		app.Get("/", func(c *fiber.Ctx) error {
			return errors.WithStack(c.SendStatus(http.StatusOK))
		})

		return app, nil
	})

	// Initialize worker context to separate worker's lifecycle from main process
	ctxWorker, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	// Run modules
	{
		modules := lo.Map(conf.EnableModules, func(item string, _ int) string { return strings.TrimSpace(item) })
		modules = lo.Uniq(lo.Filter(modules, func(item string, _ int) bool { return item != "" }))
		for _, module := range modules {
			ctx := logger.WithContext(ctxWorker, slogx.String("module", module))

			worker, err := do.InvokeNamed[workers.Worker](injector, module)
			if err != nil {
				if errors.Is(err, do.ErrServiceNotFound) {
					return errors.Errorf("Module %q is not supported", module)
				}
				return errors.Wrapf(err, "can't init module %q", module)
			}

			// Run background workers
			if !conf.APIOnly {
				go func() {
					// stop main process if worker stopped
					defer stop()

					logger.InfoContext(ctx, "Starting module worker")
					if err := worker.Run(ctx); err != nil {
						logger.PanicContext(ctx, "Something went wrong, error during running module worker", slogx.Error(err))
					}
				}()
			}
		}
	}

	// Run API server
	httpServer := do.MustInvoke[*fiber.App](injector)
	go func() {
		// stop main process if API stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.PanicContext(ctx, "Something went wrong, error during running HTTP server", slogx.Error(err))
		}
	}()

	logger.InfoContext(ctxWorker, "Auction Network started")

	// Wait for interrupt signal to gracefully stop the server
	<-ctx.Done()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	if err := httpServer.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.ErrorContext(ctx, "Failed to shutdown HTTP server", err)
	}

	// Stop module workers, they release their own resources on return
	stopWorker()

	if err := injector.Shutdown(); err != nil {
		logger.PanicContext(ctx, "Failed while gracefully shutting down", slogx.Error(err))
	}

	return nil
}
