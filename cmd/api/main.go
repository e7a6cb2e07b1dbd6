package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/VioletaEstudio/salon-scheduler/internal/audit"
	"github.com/VioletaEstudio/salon-scheduler/internal/cache"
	"github.com/VioletaEstudio/salon-scheduler/internal/config"
	dbpkg "github.com/VioletaEstudio/salon-scheduler/internal/db"
	infraRepo "github.com/VioletaEstudio/salon-scheduler/internal/infra/repository"
	"github.com/VioletaEstudio/salon-scheduler/internal/logger"
	"github.com/VioletaEstudio/salon-scheduler/internal/reconciler"
	"github.com/VioletaEstudio/salon-scheduler/internal/routes"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	zl := logger.New(cfg.IsProduction())
	defer zl.Sync()

	db := dbpkg.NewDB(cfg)

	// la caché de huecos es opcional: sin Redis el cálculo sigue
	// funcionando, sólo que sin atajo
	rdb, err := cache.NewClient(cfg)
	if err != nil {
		zl.Warn("redis unavailable, slot cache disabled", zap.Error(err))
	}
	slotCache := cache.NewAvailabilityCache(rdb, zl)

	auditDispatcher := audit.NewDispatcher(audit.NewWriter(db), zl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rec := reconciler.New(
		infraRepo.NewBookingGormRepository(db),
		reconciler.Config{
			Interval:            cfg.ReconcileInterval,
			Warmup:              cfg.ReconcileWarmup,
			AutoRejectThreshold: cfg.AutoRejectThreshold,
			CallTimeout:         cfg.RepoCallTimeout,
		},
		zl,
		auditDispatcher,
	)
	go rec.Run(ctx)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, slotCache, auditDispatcher, rec)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		zl.Info("server listening", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
