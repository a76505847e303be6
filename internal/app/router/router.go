// Package router はGinエンジンの構築とルート定義を行います。
package router

import (
	dirhandler "market_backend/internal/feature/directory/transport/handler"
	priceshandler "market_backend/internal/feature/prices/transport/handler"
	signalshandler "market_backend/internal/feature/signals/transport/handler"
	platformhandler "market_backend/internal/platform/http/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter は全エンドポイントを登録したGinエンジンを生成します。
// allowedOriginsが空の場合はすべてのオリジンを許可します。
func NewRouter(directory *dirhandler.DirectoryHandler, prices *priceshandler.PricesHandler,
	signals *signalshandler.SignalsHandler, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	// ダッシュボードのオリジン向けCORS設定
	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	// コードテーブル
	r.POST("/update-tables", directory.UpdateTables)
	r.GET("/tables", directory.Tables)

	// 株価
	r.GET("/prices", prices.GetPrices)
	r.GET("/latest_prices_ticker", prices.LatestPricesTicker)
	r.GET("/latest_prices", prices.LatestPrices)
	r.GET("/latest_update_date", prices.LatestUpdateDate)

	// シグナル
	r.GET("/signals", signals.GetSignals)
	r.GET("/latest_signals", signals.LatestSignals)
	r.GET("/trade_history", signals.TradeHistory)
	r.GET("/profits", signals.Profits)
	r.GET("/owned", signals.Owned)

	return r
}
