package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/broker"
	"ecommerce-backend/internal/modules/auth"
	"ecommerce-backend/internal/modules/cart"
	"ecommerce-backend/internal/modules/catalog"
	"ecommerce-backend/internal/modules/dashboard"
	"ecommerce-backend/internal/modules/inventory"
	"ecommerce-backend/internal/modules/order"
	"ecommerce-backend/internal/modules/payment"
	"ecommerce-backend/internal/modules/product"
	"ecommerce-backend/internal/modules/upload"
	"ecommerce-backend/internal/modules/user"
	"ecommerce-backend/internal/modules/vendor"
	"ecommerce-backend/internal/util"
)

func main() {
	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		panic(err)
	}
	defer util.SyncLogger()
	logger := util.GetLogger()

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()
	logger.Info("connected to database")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	events := broker.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer events.Close()
	if events != nil {
		logger.Info("kafka publisher enabled", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	authService := auth.NewService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	router.Use(auth.Authenticator(authService))
	auth.NewHandler(authService, userRepo).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	product.NewHandler(productService).RegisterRoutes(router)

	vendorRepo := vendor.NewPostgresRepository(db)
	vendorService := vendor.NewService(vendorRepo)
	vendor.NewHandler(vendorService).RegisterRoutes(router)

	// ── Orders & Inventory ──────────────────────────────────
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, events)
	order.NewHandler(orderService).RegisterRoutes(router)

	inventoryRepo := inventory.NewPostgresRepository(db)
	inventoryService := inventory.NewService(inventoryRepo)
	inventory.NewHandler(inventoryService).RegisterRoutes(router)

	dashboardRepo := dashboard.NewPostgresRepository(db)
	dashboardService := dashboard.NewService(dashboardRepo)
	dashboard.NewHandler(dashboardService).RegisterRoutes(router)

	// ── Cart, Payment & Uploads ─────────────────────────────
	cartStore := cart.NewRedisStore(redisClient)
	cartService := cart.NewService(cartStore, productRepo)
	cart.NewHandler(cartService).RegisterRoutes(router)

	paymentService := payment.NewService(payment.NewStubGateway())
	payment.NewHandler(paymentService).RegisterRoutes(router)

	upload.NewHandler(cfg.Upload).RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())

	// ── Start Server ────────────────────────────────────────
	logger.Info("api server starting", zap.String("port", cfg.Server.Port))
	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
