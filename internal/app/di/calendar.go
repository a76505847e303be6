// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"market_backend/internal/platform/externalapi/marketcalendar"
	infrahttp "market_backend/internal/platform/http"
	"market_backend/internal/shared/ratelimiter"
)

// calendarCallsPerMinute is the client-side rate limit for the calendar vendor.
const calendarCallsPerMinute = 60

// NewCalendar creates a fully configured MarketCalendar with HTTP client and rate limiter.
func NewCalendar() *marketcalendar.MarketCalendar {
	cfg := marketcalendar.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(calendarCallsPerMinute, time.Minute)
	return marketcalendar.NewMarketCalendar(cfg, httpClient, limiter)
}
