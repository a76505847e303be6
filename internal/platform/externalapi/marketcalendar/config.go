// Package marketcalendar provides a client for the trading-calendar HTTP API.
package marketcalendar

import (
	"os"
	"time"
)

// Config holds configuration for the calendar API client.
type Config struct {
	CalendarAPIKey string        // API key sent in the X-Api-Key header
	BaseURL        string        // Base URL for the API (e.g., "https://calendar.example.com")
	Timeout        time.Duration // HTTP request timeout
}

// LoadConfig loads calendar API configuration from environment variables.
func LoadConfig() Config {
	return Config{
		CalendarAPIKey: os.Getenv("CALENDAR_API_KEY"),
		BaseURL:        os.Getenv("CALENDAR_BASE_URL"),
		Timeout:        10 * time.Second,
	}
}
