// Package entity defines the domain models for the prices feature.
package entity

// PriceRecord is one daily bar for an instrument. Dates travel as
// YYYY-MM-DD strings end to end (store boundary excluded), so comparing
// them as strings is comparing them chronologically. The JSON shape is
// shared by cache payloads and API responses.
type PriceRecord struct {
	Code   string  `json:"code"`
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// RangePayload is the cached form of a contiguous stretch of price
// history. Records are ascending by date and unique per date;
// StartDate/EndDate always equal the min/max date actually present,
// which may be wider than what the caller originally asked for.
type RangePayload struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Records   []PriceRecord `json:"data"`
}
