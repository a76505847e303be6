// Package dto defines data transfer objects for the calendar API responses.
package dto

// NextTradingDateResponse represents the JSON response from the next-trading-date endpoint.
type NextTradingDateResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Market  string `json:"market"`
	Date    string `json:"date"`
}
