package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"market_backend/internal/app/di"
	"market_backend/internal/app/router"
	diradapters "market_backend/internal/feature/directory/adapters"
	dirhandler "market_backend/internal/feature/directory/transport/handler"
	dirusecase "market_backend/internal/feature/directory/usecase"
	pricesadapters "market_backend/internal/feature/prices/adapters"
	priceshandler "market_backend/internal/feature/prices/transport/handler"
	pricesusecase "market_backend/internal/feature/prices/usecase"
	signalsadapters "market_backend/internal/feature/signals/adapters"
	signalshandler "market_backend/internal/feature/signals/transport/handler"
	signalsusecase "market_backend/internal/feature/signals/usecase"
	"market_backend/internal/job"
	"market_backend/internal/platform/db"
	platformredis "market_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	// db
	gormDB, err := db.OpenDB()
	if err != nil {
		slog.Error("db open failed", "error", err)
		os.Exit(1)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		slog.Warn("Redis unavailable, running without cache")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	listingRepo := diradapters.NewListingRepository(gormDB)
	priceRepo := pricesadapters.NewPriceRepository(gormDB)
	signalRepo := signalsadapters.NewSignalRepository(gormDB)

	// 共有コラボレータ
	queryCache := di.NewQueryCache(rdb)
	calendar := di.NewCalendar()

	// Usecase
	directoryUC := dirusecase.NewDirectoryUsecase(listingRepo, nil)
	pricesUC := pricesusecase.NewPricesUsecase(priceRepo, queryCache, directoryUC)
	signalsUC := signalsusecase.NewSignalsUsecase(signalRepo, queryCache, directoryUC, calendar)

	// 起動時に一度ディレクトリを読み込む。失敗してもプロセスは起動を続ける
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := directoryUC.Refresh(startupCtx); err != nil {
		slog.Error("initial directory refresh failed", "error", err)
	}
	cancelStartup()

	// 3時間ごとのバックグラウンド更新
	refresher := job.NewRefreshScheduler(directoryUC, "")
	if err := refresher.Start(); err != nil {
		slog.Error("refresh scheduler start failed", "error", err)
		os.Exit(1)
	}
	defer refresher.Stop()

	// Handler
	directoryH := dirhandler.NewDirectoryHandler(directoryUC)
	pricesH := priceshandler.NewPricesHandler(pricesUC)
	signalsH := signalshandler.NewSignalsHandler(signalsUC)

	// ルータ生成
	r := router.NewRouter(directoryH, pricesH, signalsH, corsOrigins())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: r}

	// SIGINT/SIGTERMで停止
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}

// corsOrigins はCORS_ALLOWED_ORIGINSをカンマ区切りで読み取ります。
// 未設定の場合はnilを返し、全オリジン許可になります。
func corsOrigins() []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
