package marketcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"market_backend/internal/feature/signals/usecase"
	"market_backend/internal/platform/externalapi/marketcalendar/dto"
	"market_backend/internal/shared/ratelimiter"
)

// marketCodes は内部のマーケット種別をカレンダーAPI側のマーケットコードに対応付けます。
var marketCodes = map[string]string{
	"krx":  "KRX",
	"usx":  "NYSE",
	"coin": "CRYPTO",
}

// MarketCalendar は外部カレンダーAPIから翌営業日を取得するTradingCalendar実装です。
type MarketCalendar struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// MarketCalendarがTradingCalendarを実装していることをコンパイル時に検証します。
var _ usecase.TradingCalendar = (*MarketCalendar)(nil)

// NewMarketCalendar は指定された設定、HTTPクライアント、レートリミッタで
// MarketCalendarの新しいインスタンスを生成します。
func NewMarketCalendar(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *MarketCalendar {
	return &MarketCalendar{cfg: cfg, client: client, limiter: limiter}
}

// NextTradingDate は指定マーケットにおけるafter以降の翌営業日をYYYY-MM-DD形式で返します。
func (m *MarketCalendar) NextTradingDate(ctx context.Context, marketType, after string) (string, error) {
	code, ok := marketCodes[marketType]
	if !ok {
		return "", fmt.Errorf("no calendar market for %q", marketType)
	}

	m.limiter.WaitIfNeeded()

	q := url.Values{}
	// クエリパラメータを追加
	q.Set("market", code)
	q.Set("date", after)

	// URLを生成
	u := fmt.Sprintf("%s/v1/next-trading-date?%s", m.cfg.BaseURL, q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Api-Key", m.cfg.CalendarAPIKey)

	// リクエストを実行
	res, err := m.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("marketcalendar http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.NextTradingDateResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Status == "error" {
		return "", fmt.Errorf("marketcalendar: %s", body.Message)
	}
	if body.Date == "" {
		return "", fmt.Errorf("marketcalendar: empty date for market %s", code)
	}
	return body.Date, nil
}
