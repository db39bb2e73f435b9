package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loket-backend/internal/auth"
	"loket-backend/internal/cache"
	"loket-backend/internal/config"
	"loket-backend/internal/database"
	"loket-backend/internal/db"
	"loket-backend/internal/handlers"
	"loket-backend/internal/health"
	httpRouter "loket-backend/internal/http"
	"loket-backend/internal/lock"
	"loket-backend/internal/middleware"
	"loket-backend/internal/monitoring"
	"loket-backend/internal/repositories"
	"loket-backend/internal/repositories/memory"
	"loket-backend/internal/services"
	"loket-backend/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// stores is the set of persistence backends the services run on.
type stores struct {
	ledger     services.LedgerStore
	orders     services.OrderStore
	reports    services.ShiftReportStore
	ppob       services.PPOBStore
	alerts     services.AlertStore
	businesses services.BusinessStore
}

func postgresStores(pool *pgxpool.Pool) stores {
	return stores{
		ledger:     repositories.NewLedgerRepository(pool),
		orders:     repositories.NewOrderRepository(pool),
		reports:    repositories.NewShiftReportRepository(pool),
		ppob:       repositories.NewPPOBRepository(pool),
		alerts:     repositories.NewAlertRepository(pool),
		businesses: repositories.NewBusinessRepository(pool),
	}
}

func memoryStores(m *memory.Store) stores {
	return stores{
		ledger:     m.Ledger,
		orders:     m.Orders,
		reports:    m.Reports,
		ppob:       m.PPOB,
		alerts:     m.Alerts,
		businesses: m.Businesses,
	}
}

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	storeKind := flag.String("store", "postgres", "Persistence backend: postgres or memory")
	devToken := flag.String("dev-token", "", "Print a signed token for the given role (admin, owner, kasir, loket) and exit")
	flag.Parse()

	cfg := config.Load()
	logger := config.GetLogger()

	if *port > 0 {
		cfg.Server.Port = *port
	}

	jwtManager := auth.NewJWTManager(cfg)
	if *devToken != "" {
		token, err := jwtManager.GenerateToken("dev-"+*devToken, "dev "+*devToken, *devToken)
		if err != nil {
			logger.WithField("module", "main").Fatalf("failed to sign token: %v", err)
		}
		fmt.Println(token)
		return
	}
	if cfg.JWT.Secret == "" {
		logger.WithField("module", "main").Fatal("jwt.secret is not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		st   stores
		pool *pgxpool.Pool
	)
	switch *storeKind {
	case "postgres":
		var err error
		pool, err = db.Connect(ctx, cfg)
		if err != nil {
			logger.WithField("module", "main").Fatalf("failed to connect to database: %v", err)
		}
		defer pool.Close()
		logger.WithFields(logrus.Fields{"module": "main", "host": cfg.Database.Host, "db": cfg.Database.Name}).Info("connected to database")

		logger.WithField("module", "main").Info("running database migrations")
		migrator := database.NewMigratorWithFS(pool, migrations.FS, ".")
		if err := migrator.RunMigrations(ctx); err != nil {
			logger.WithField("module", "main").Fatalf("failed to run migrations: %v", err)
		}
		st = postgresStores(pool)
	case "memory":
		logger.WithField("module", "main").Warn("running on the in-memory store, data is lost on exit")
		st = memoryStores(memory.New())
	default:
		logger.WithField("module", "main").Fatalf("unknown -store %q", *storeKind)
	}

	if err := cache.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		logger.WithField("module", "redis").Warnf("cache unavailable, running without dashboard cache and with in-process order locks: %v", err)
	} else {
		logger.WithField("module", "redis").Info("cache connected")
		defer cache.Close()
	}

	// Services
	hub := monitoring.NewAlertHub(logger)
	ledgerService := services.NewLedgerService(st.ledger)
	orderService := services.NewPaymentSyncService(st.orders, lock.New(cache.GetClient()))
	shiftService := services.NewShiftReportService(st.reports, ledgerService)
	ppobService := services.NewPPOBService(st.ppob)
	reconService := services.NewReconciliationService(st.reports, st.ledger, cfg.Accounting)
	verificationService := services.NewVerificationService(st.reports, st.ledger, cfg.Accounting)
	dashboardService := services.NewDashboardService(st.ledger, st.orders, cfg.Accounting)
	alertService := services.NewAlertService(st.alerts, st.ledger, st.orders, st.businesses, st.ppob, st.reports, cfg.Accounting)
	alertService.Publisher = hub

	var checker *health.HealthChecker
	if pool != nil {
		checker = health.NewHealthChecker(pool)
	} else {
		checker = health.NewHealthChecker(nil)
	}

	router := httpRouter.NewRouter(
		handlers.NewOrderHandler(orderService),
		handlers.NewReportHandler(shiftService, ppobService),
		handlers.NewPPOBHandler(ppobService),
		handlers.NewReconciliationHandler(reconService, verificationService),
		handlers.NewDashboardHandler(dashboardService),
		handlers.NewAlertHandler(alertService),
		handlers.NewTransactionHandler(ledgerService),
		handlers.NewHealthHandler(checker),
		hub,
		middleware.NewAuthMiddleware(jwtManager),
	)

	// Request logging runs inside the router so lines carry the route
	// template instead of raw ids.
	apiLogging := middleware.NewAPILoggingMiddleware(logger)
	router.Use(apiLogging.Handler)
	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(corsMiddleware(router))

	go hub.Run(ctx)
	if pool != nil {
		go hub.WatchHealth(ctx, checker, 30*time.Second)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithField("module", "main").Errorf("graceful shutdown failed: %v", err)
		}
	}()

	logger.WithFields(logrus.Fields{"module": "main", "addr": addr, "store": *storeKind}).Info("server running")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithField("module", "main").Fatalf("server failed to start: %v", err)
	}
	// Shutdown returns once in-flight requests finish; only then is the log
	// channel safe to close.
	<-shutdownDone
	apiLogging.Close()
	logger.WithField("module", "main").Info("server stopped")
}
