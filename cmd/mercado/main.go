package main

import (
	"context"
	"log/slog"
	"os"

	"mercado/config"
	"mercado/internal/delivery"
	"mercado/internal/delivery/http"
	"mercado/internal/delivery/http/middleware"
	"mercado/internal/delivery/http/router/handler"
	"mercado/internal/domain/service"
	"mercado/internal/infra/auth"
	"mercado/internal/infra/kvstore"
	logs "mercado/internal/infra/log"
	"mercado/internal/infra/persistence/postgres"
	"mercado/internal/infra/pubsub"
	"mercado/internal/infra/qrcode"
	"mercado/internal/usecase"
	"mercado/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			loadCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		kvstore.New,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewSessionService,
			impl.NewStoreConfigService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewViewHandler,
			handler.NewCheckoutHandler,
			handler.NewStoreConfigHandler,
			handler.NewAdminProductHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// loadCatalog warms the product snapshot before the server accepts traffic.
// A failed initial load is logged but not fatal; the admin can reload later.
func loadCatalog(ctx context.Context, catalog usecase.CatalogUsecase, logger *slog.Logger) {
	if err := catalog.Load(ctx); err != nil {
		logger.Warn("Initial catalog load failed, starting with an empty snapshot",
			slog.Any("error", err),
		)
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
