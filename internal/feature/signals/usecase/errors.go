// Package usecase implements the business logic for the signals feature.
package usecase

import "errors"

var (
	// ErrMissingTicker is returned when a request omits the ticker parameter.
	ErrMissingTicker = errors.New("missing required parameter: ticker")

	// ErrTickerNotFound is returned when a ticker is not present in any code table.
	ErrTickerNotFound = errors.New("ticker not found in any table")

	// ErrMissingMarketType is returned when a request omits the type parameter.
	ErrMissingMarketType = errors.New("missing required parameter: type")

	// ErrUnknownMarketType is returned when type is not a configured namespace.
	ErrUnknownMarketType = errors.New("unknown market type")

	// ErrMissingSignalType is returned when a request omits the signal_type parameter.
	ErrMissingSignalType = errors.New("missing required parameter: signal_type")

	// ErrMissingStartDate is returned when a request omits the start_date parameter.
	ErrMissingStartDate = errors.New("missing required parameter: start_date")

	// ErrMissingEndDate is returned when a request omits the end_date parameter.
	ErrMissingEndDate = errors.New("missing required parameter: end_date")

	// ErrMissingUID is returned when a request omits the uid parameter.
	ErrMissingUID = errors.New("missing required parameter: uid")

	// ErrInvalidDate is returned when a date parameter is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrNoData is returned when a query matches no records.
	ErrNoData = errors.New("no data found")
)
