package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	infrahttp "market_backend/internal/platform/http"
)

// 稼働中のサーバに対してコードテーブルの再読み込みを指示するCLIです。
func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	base := os.Getenv("SERVER_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client := infrahttp.NewHTTPClient(5 * time.Minute)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/update-tables", nil)
	if err != nil {
		slog.Error("build request failed", "error", err)
		os.Exit(1)
	}

	res, err := client.Do(req)
	if err != nil {
		slog.Error("update-tables request failed", "url", base, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK {
		slog.Error("update-tables failed", "status", res.StatusCode, "body", string(body))
		os.Exit(1)
	}
	slog.Info("tables updated", "body", string(body))
}
