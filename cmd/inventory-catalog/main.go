package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/api/handlers"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/api/middleware"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/cache"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/config"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/docs"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/health"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/metrics"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/migration"
	repository "github.com/aaravmahajanofficial/inventory-catalog/internal/repositories"
	service "github.com/aaravmahajanofficial/inventory-catalog/internal/services"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/tracing"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/utils"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title			Inventory Catalog API
//	@version		1.0
//	@description	Products, categories and the associations between them.
//	@BasePath		/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		slog.Warn("⚠️ Unknown log level, falling back to info", slog.String("level", cfg.LogLevel))
		level = slog.LevelInfo
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Tracing setup
	tp, err := tracing.NewProvider(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error configuring tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := migration.RunMigrations(repos.SQL, logger); err != nil {
			slog.Error("❌ Error migrating the database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Redis setup, optional
	var productCache cache.Cache
	if cfg.RedisConnect.Enabled() {
		client, err := cache.NewRedisClient(ctx, &cfg.RedisConnect)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", "error", err.Error())
			os.Exit(1)
		}

		productCache = cache.NewRedisCache(client, &cfg.Cache)

		defer func() {
			if err := productCache.Close(); err != nil {
				slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
			}
		}()
	} else {
		slog.Info("Product cache disabled, no redis host configured")
	}

	validator := utils.NewValidator()
	productService := service.NewProductService(repos.Store, productCache)
	productHandler := handlers.NewProductHandler(productService, validator)
	categoryService := service.NewCategoryService(repos.Store)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	healthEndpoints := &health.Endpoints{Pool: repos}
	if productCache != nil {
		healthEndpoints.Cache = productCache
	}

	healthHandler, err := health.NewHealthHandler(cfg, healthEndpoints)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized",
		slog.String("env", cfg.Env),
		slog.String("version", docs.SwaggerInfo.Version),
		slog.Bool("auth", authMiddleware.Enabled()),
	)

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /products", productHandler.ListProducts())
	routerMux.HandleFunc("POST /products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /product/id/{id}", productHandler.GetProductByID())
	routerMux.HandleFunc("PUT /product/id/{id}", authMiddleware.Authenticate(productHandler.UpdateProductByID()))
	routerMux.HandleFunc("DELETE /product/id/{id}", authMiddleware.Authenticate(productHandler.DeleteProductByID()))
	routerMux.HandleFunc("GET /product/id/{id}/categories", productHandler.ListProductCategories())
	routerMux.HandleFunc("GET /product/sku/{sku}", productHandler.GetProductBySKU())
	routerMux.HandleFunc("PUT /product/sku/{sku}", authMiddleware.Authenticate(productHandler.UpdateProductBySKU()))
	routerMux.HandleFunc("DELETE /product/sku/{sku}", authMiddleware.Authenticate(productHandler.DeleteProductBySKU()))
	routerMux.HandleFunc("GET /product/name/{name}", productHandler.GetProductByName())
	routerMux.HandleFunc("GET /categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("POST /categories", authMiddleware.Authenticate(categoryHandler.CreateCategory()))
	routerMux.HandleFunc("GET /category/id/{id}", categoryHandler.GetCategoryByID())
	routerMux.HandleFunc("GET /category/name/{name}", categoryHandler.GetCategoryByName())
	routerMux.HandleFunc("DELETE /category/{id}", authMiddleware.Authenticate(categoryHandler.DeleteCategory()))
	routerMux.HandleFunc("PUT /category/{categoryId}/products", authMiddleware.Authenticate(categoryHandler.AddNewProducts()))
	routerMux.HandleFunc("PUT /category/{categoryId}/products/{ids}", authMiddleware.Authenticate(categoryHandler.AddProducts()))
	routerMux.HandleFunc("DELETE /category/{categoryId}/products/{ids}", authMiddleware.Authenticate(categoryHandler.RemoveProducts()))
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining, outermost last
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := tp.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer provider shutdown failed", slog.String("error", err.Error()))
	}
}
