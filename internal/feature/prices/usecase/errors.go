// Package usecase implements the business logic for the prices feature.
package usecase

import "errors"

var (
	// ErrMissingTicker is returned when a request omits the ticker parameter.
	ErrMissingTicker = errors.New("missing required parameter: ticker")

	// ErrTickerNotFound is returned when a ticker is not present in any code table.
	ErrTickerNotFound = errors.New("ticker not found in any table")

	// ErrInvalidDate is returned when a date parameter is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrMissingDate is returned when a request omits a required date parameter.
	ErrMissingDate = errors.New("missing required parameter: date")

	// ErrMissingMarketType is returned when a request omits the market_type parameter.
	ErrMissingMarketType = errors.New("missing required parameter: market_type")

	// ErrUnknownMarketType is returned when market_type is not a configured namespace.
	ErrUnknownMarketType = errors.New("unknown market type")

	// ErrNoData is returned when a query matches no records.
	ErrNoData = errors.New("no data found")
)
