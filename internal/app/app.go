// Package app wires the storefront's dependencies together and runs the HTTP
// server with graceful shutdown.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/harvesthub/storefront/internal/domain/admin"
	"github.com/harvesthub/storefront/internal/domain/bulkorder"
	"github.com/harvesthub/storefront/internal/domain/cart"
	"github.com/harvesthub/storefront/internal/domain/catalog"
	"github.com/harvesthub/storefront/internal/domain/checkout"
	"github.com/harvesthub/storefront/internal/domain/feedback"
	"github.com/harvesthub/storefront/internal/domain/payment"
	"github.com/harvesthub/storefront/internal/handler"
	"github.com/harvesthub/storefront/internal/repository"
	"github.com/harvesthub/storefront/pkg/health"
	"github.com/harvesthub/storefront/pkg/httpmiddleware"
)

// cartActivityLog logs add-to-cart events. It stands in for the toast the
// storefront UI shows on every add.
type cartActivityLog struct {
	lg *zap.Logger
}

var _ cart.Notifier = (*cartActivityLog)(nil)

func (n *cartActivityLog) ItemAdded(_ context.Context, sessionID string, p catalog.Product, quantity int) {
	n.lg.Info("item added to cart",
		zap.String("session_id", sessionID),
		zap.String("product_id", p.ID),
		zap.String("product", p.Name),
		zap.Int("quantity", quantity),
	)
}

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	// PostgreSQL pool + migrations.
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	// Health check service.
	healthSvc := health.New()
	healthSvc.AddReadinessCheck("postgres", 5*time.Second, func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)

	// Repositories.
	productRepo := repository.NewProductRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	bulkRepo := repository.NewBulkOrderRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	apikeyRepo := repository.NewAPIKeyRepository(pool)

	// Domain services.
	cartStore := cart.NewStore(cartRepo, &cartActivityLog{lg: lg})
	gateway := payment.NewSimulated(cfg.PaymentDelay)
	checkoutSvc := checkout.NewService(cartStore, gateway, orderRepo)
	bulkSvc := bulkorder.NewService(bulkRepo)
	feedbackSvc := feedback.NewService(feedbackRepo)
	adminSvc := admin.NewService(customerRepo, orderRepo, feedbackRepo)

	// HTTP handlers.
	h := handler.New(handler.Deps{
		Products:   productRepo,
		Carts:      cartStore,
		Checkout:   checkoutSvc,
		Bulk:       bulkSvc,
		Feedback:   feedbackSvc,
		Dashboard:  adminSvc,
		Orders:     orderRepo,
		Customers:  customerRepo,
		BulkOrders: bulkRepo,
		Entries:    feedbackRepo,
	})
	guard := handler.NewAPIKeyGuard(apikeyRepo, cfg.APIKeyPepper)

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	h.Routes(mux, guard.Wrap)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", "Authorization", handler.APIKeyHeader, handler.SessionHeader},
				ExposeHeaders:    []string{handler.SessionHeader},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.Instrument("storefront-api", m.TracerProvider(), m.MeterProvider()),
			httpmiddleware.LogRequests(),
		),
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}
