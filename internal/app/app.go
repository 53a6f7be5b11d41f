package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tourdesk-backend/internal/adapter/postgres"
	adminrepo "github.com/heartmarshall/tourdesk-backend/internal/adapter/postgres/admin"
	categoryrepo "github.com/heartmarshall/tourdesk-backend/internal/adapter/postgres/category"
	contactrepo "github.com/heartmarshall/tourdesk-backend/internal/adapter/postgres/contact"
	tourrepo "github.com/heartmarshall/tourdesk-backend/internal/adapter/postgres/tour"
	tourformrepo "github.com/heartmarshall/tourdesk-backend/internal/adapter/postgres/tourform"
	"github.com/heartmarshall/tourdesk-backend/internal/adapter/storage"
	"github.com/heartmarshall/tourdesk-backend/internal/auth"
	"github.com/heartmarshall/tourdesk-backend/internal/config"
	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	authsvc "github.com/heartmarshall/tourdesk-backend/internal/service/auth"
	categorysvc "github.com/heartmarshall/tourdesk-backend/internal/service/category"
	"github.com/heartmarshall/tourdesk-backend/internal/service/dashboard"
	"github.com/heartmarshall/tourdesk-backend/internal/service/enquiry"
	"github.com/heartmarshall/tourdesk-backend/internal/service/media"
	"github.com/heartmarshall/tourdesk-backend/internal/service/slug"
	toursvc "github.com/heartmarshall/tourdesk-backend/internal/service/tour"
	"github.com/heartmarshall/tourdesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/tourdesk-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := os.MkdirAll(cfg.Storage.BaseDir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	// Repositories.
	categories := categoryrepo.New(pool)
	tours := tourrepo.New(pool)
	contacts := contactrepo.New(pool)
	tourForms := tourformrepo.New(pool)
	admins := adminrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	store := storage.NewLocalStorage(cfg.Storage.BaseDir, cfg.Storage.PublicURL)
	images := media.NewManager(logger, store)

	// Services.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, admins, jwtManager, cfg.Auth)
	categoryService := categorysvc.NewService(logger, categories,
		slug.NewGenerator(categories, domain.CategorySlugFallback), images, tx)
	tourService := toursvc.NewService(logger, tours, tx,
		slug.NewGenerator(tours, domain.TourSlugFallback), images, cfg.Tours.MaxFeatured)
	enquiryService := enquiry.NewService(logger, contacts, tourForms)
	dashboardService := dashboard.NewService(logger, tours, categories, contacts, tourForms)

	// Transport.
	list := rest.ListConfig{PageSize: cfg.Listing.PageSize, Location: cfg.Listing.Location}
	handlers := Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Component{Name: "database", Pinger: pool},
			rest.Component{Name: "storage", Pinger: store},
		),
		Auth:       rest.NewAuthHandler(authService, logger),
		Categories: rest.NewCategoryHandler(categoryService, list, logger),
		Tours:      rest.NewTourHandler(tourService, list, logger),
		Enquiries:  rest.NewEnquiryHandler(enquiryService, list, logger),
		Uploads:    rest.NewUploadHandler(images, cfg.Storage.MaxUploadBytes, logger),
		Dashboard:  rest.NewDashboardHandler(dashboardService, logger),
	}

	limiter := middleware.NewRateLimiter(cfg.Forms.LimiterCleanup)
	defer limiter.Stop()

	router := NewRouter(handlers, RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		Storage:     cfg.Storage,
		FormsPerMin: cfg.Forms.SubmissionsPerMinute,
		Limiter:     limiter,
		Tokens:      authService,
		Categories:  categories,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests
// within the shutdown timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
