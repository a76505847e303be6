package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	direntity "market_backend/internal/feature/directory/domain/entity"
	"market_backend/internal/feature/prices/domain/entity"
)

// dateLayout is the wire format for every date parameter and field.
const dateLayout = "2006-01-02"

// PriceRepository abstracts the price tables behind the namespaces.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PriceRepository interface {
	// FetchRange returns the bars for code with start <= date <= end, ascending.
	FetchRange(ctx context.Context, table, code, start, end string) ([]entity.PriceRecord, error)

	// OldestDate returns the earliest date on record for code, or "" when
	// the code has no rows.
	OldestDate(ctx context.Context, table, code string) (string, error)

	// LatestDate returns the most recent date on record for code, or "".
	LatestDate(ctx context.Context, table, code string) (string, error)

	// LatestByCode returns the most recent bar for code.
	// Returns ErrNoData when the code has no rows.
	LatestByCode(ctx context.Context, table, code string) (entity.PriceRecord, error)

	// ListByDate returns every bar in the table for one date, ascending by code.
	ListByDate(ctx context.Context, table, date string) ([]entity.PriceRecord, error)

	// MaxDate returns the most recent date present in the whole table, or "".
	MaxDate(ctx context.Context, table string) (string, error)
}

// QueryCache is the time-bounded cache in front of the store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/cache).
type QueryCache interface {
	Key(scope string, parts ...string) string
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any)
}

// TickerDirectory resolves tickers and market types to their namespace.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (directory).
type TickerDirectory interface {
	FindNamespace(code string) (direntity.Namespace, bool)
	NamespaceByName(name string) (direntity.Namespace, bool)
}

// PricesResult is the shaped answer for a price range query.
type PricesResult struct {
	Code      string
	StartDate string
	EndDate   string
	Records   []entity.PriceRecord
}

// UpdateDate reports the freshest date present in one market's price table.
type UpdateDate struct {
	MarketType string `json:"market_type"`
	Date       string `json:"date"`
}

// PricesUsecase serves the price read endpoints: the range-merged history
// query and the various latest-value lookups.
type PricesUsecase struct {
	repo      PriceRepository
	cache     QueryCache
	directory TickerDirectory
}

// NewPricesUsecase creates a PricesUsecase with the given collaborators.
func NewPricesUsecase(repo PriceRepository, cache QueryCache, directory TickerDirectory) *PricesUsecase {
	return &PricesUsecase{repo: repo, cache: cache, directory: directory}
}

// GetPrices answers a date-bounded history query for one ticker.
//
// The cached payload for the ticker covers one contiguous date range.
// Only the sub-range missing from it is fetched from the store; cached
// and fetched records are then merged by date (fetched records win),
// the union is written back with the standard TTL, and the response is
// filtered down to the caller's bounds. Either bound may be absent: an
// absent bound widens the query to the absolute earliest/latest date on
// record, probed from the store.
func (u *PricesUsecase) GetPrices(ctx context.Context, ticker, startDate, endDate string) (PricesResult, error) {
	if ticker == "" {
		return PricesResult{}, ErrMissingTicker
	}
	if err := validateBounds(startDate, endDate); err != nil {
		return PricesResult{}, err
	}

	ns, ok := u.directory.FindNamespace(ticker)
	if !ok {
		return PricesResult{}, ErrTickerNotFound
	}
	table := ns.PricesTable()

	key := u.cache.Key("prices", ticker)
	var cached *entity.RangePayload
	var payload entity.RangePayload
	if u.cache.Get(ctx, key, &payload) && payload.StartDate != "" && payload.EndDate != "" {
		cached = &payload
	}

	merged, err := u.mergeRange(ctx, table, ticker, cached, startDate, endDate)
	if err != nil {
		return PricesResult{}, err
	}
	if len(merged) == 0 {
		// nothing on record: no payload to cache, bounds are undefined
		return PricesResult{}, ErrNoData
	}

	union := entity.RangePayload{
		StartDate: merged[0].Date,
		EndDate:   merged[len(merged)-1].Date,
		Records:   merged,
	}
	u.cache.Set(ctx, key, union)

	records := filterByBounds(merged, startDate, endDate)
	if len(records) == 0 {
		return PricesResult{}, ErrNoData
	}

	result := PricesResult{
		Code:      ticker,
		StartDate: startDate,
		EndDate:   endDate,
		Records:   records,
	}
	// an omitted bound is reported as the true covered bound of the answer
	if result.StartDate == "" {
		result.StartDate = records[0].Date
	}
	if result.EndDate == "" {
		result.EndDate = records[len(records)-1].Date
	}
	return result, nil
}

// mergeRange runs the range-merge algorithm and returns the date-ascending
// union of cached and freshly fetched records.
func (u *PricesUsecase) mergeRange(ctx context.Context, table, code string, cached *entity.RangePayload, startDate, endDate string) ([]entity.PriceRecord, error) {
	var cachedStart, cachedEnd string
	var cachedRecords []entity.PriceRecord
	if cached != nil {
		cachedStart, cachedEnd, cachedRecords = cached.StartDate, cached.EndDate, cached.Records
	}

	// A bound the cache does not cover is "missing". An absent caller bound
	// always resolves through a boundary probe, even over a cache hit: an
	// unbounded request must see the full history on record.
	missingStart := ""
	if startDate != "" {
		if cachedStart == "" || startDate < cachedStart {
			missingStart = startDate
		}
	} else {
		oldest, err := u.repo.OldestDate(ctx, table, code)
		if err != nil {
			return nil, fmt.Errorf("oldest date for %s: %w", code, err)
		}
		missingStart = oldest
	}

	missingEnd := ""
	if endDate != "" {
		if cachedEnd == "" || endDate > cachedEnd {
			missingEnd = endDate
		}
	} else {
		latest, err := u.repo.LatestDate(ctx, table, code)
		if err != nil {
			return nil, fmt.Errorf("latest date for %s: %w", code, err)
		}
		missingEnd = latest
	}

	var fetched []entity.PriceRecord
	if missingStart != "" || missingEnd != "" {
		// One query spanning the gap. When only one side is missing the
		// other bound snaps to the near edge of the cached range, so the
		// already-covered middle is not re-read.
		fetchStart, fetchEnd := missingStart, missingEnd
		if fetchStart == "" {
			fetchStart = cachedEnd
		}
		if fetchEnd == "" {
			fetchEnd = cachedStart
		}
		if fetchStart != "" && fetchEnd != "" {
			var err error
			fetched, err = u.repo.FetchRange(ctx, table, code, fetchStart, fetchEnd)
			if err != nil {
				return nil, fmt.Errorf("fetch range for %s: %w", code, err)
			}
		}
	}

	return mergeByDate(cachedRecords, fetched), nil
}

// mergeByDate unions two record sets keyed by date. Fetched records win
// on collision: they are fresher than what the cache held.
func mergeByDate(cached, fetched []entity.PriceRecord) []entity.PriceRecord {
	if len(cached) == 0 && len(fetched) == 0 {
		return nil
	}

	byDate := make(map[string]entity.PriceRecord, len(cached)+len(fetched))
	for _, r := range cached {
		byDate[r.Date] = r
	}
	for _, r := range fetched {
		byDate[r.Date] = r
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]entity.PriceRecord, 0, len(dates))
	for _, d := range dates {
		out = append(out, byDate[d])
	}
	return out
}

// filterByBounds keeps the records inside the closed interval described
// by whichever bounds are present.
func filterByBounds(records []entity.PriceRecord, startDate, endDate string) []entity.PriceRecord {
	out := make([]entity.PriceRecord, 0, len(records))
	for _, r := range records {
		if startDate != "" && r.Date < startDate {
			continue
		}
		if endDate != "" && r.Date > endDate {
			continue
		}
		out = append(out, r)
	}
	return out
}

// LatestByTicker returns the most recent bar for one ticker.
func (u *PricesUsecase) LatestByTicker(ctx context.Context, ticker string) (entity.PriceRecord, error) {
	if ticker == "" {
		return entity.PriceRecord{}, ErrMissingTicker
	}
	ns, ok := u.directory.FindNamespace(ticker)
	if !ok {
		return entity.PriceRecord{}, ErrTickerNotFound
	}

	key := u.cache.Key("latest", "ticker", ticker)
	var record entity.PriceRecord
	if u.cache.Get(ctx, key, &record) && record.Date != "" {
		return record, nil
	}

	record, err := u.repo.LatestByCode(ctx, ns.PricesTable(), ticker)
	if err != nil {
		return entity.PriceRecord{}, err
	}
	u.cache.Set(ctx, key, record)
	return record, nil
}

// LatestByMarket returns every bar of one market for one date.
func (u *PricesUsecase) LatestByMarket(ctx context.Context, marketType, date string) ([]entity.PriceRecord, error) {
	if marketType == "" {
		return nil, ErrMissingMarketType
	}
	ns, ok := u.directory.NamespaceByName(marketType)
	if !ok {
		return nil, ErrUnknownMarketType
	}
	if date == "" {
		return nil, ErrMissingDate
	}
	if !validDate(date) {
		return nil, ErrInvalidDate
	}

	key := u.cache.Key("latest", "market", marketType, date)
	var records []entity.PriceRecord
	if u.cache.Get(ctx, key, &records) && len(records) > 0 {
		return records, nil
	}

	records, err := u.repo.ListByDate(ctx, ns.PricesTable(), date)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}
	u.cache.Set(ctx, key, records)
	return records, nil
}

// LatestUpdateDate reports how fresh one market's price table is.
func (u *PricesUsecase) LatestUpdateDate(ctx context.Context, marketType string) ([]UpdateDate, error) {
	if marketType == "" {
		return nil, ErrMissingMarketType
	}
	ns, ok := u.directory.NamespaceByName(marketType)
	if !ok {
		return nil, ErrUnknownMarketType
	}

	key := u.cache.Key("latest", "update_date", marketType)
	var out []UpdateDate
	if u.cache.Get(ctx, key, &out) && len(out) > 0 {
		return out, nil
	}

	latest, err := u.repo.MaxDate(ctx, ns.PricesTable())
	if err != nil {
		return nil, err
	}
	if latest == "" {
		return nil, ErrNoData
	}
	out = []UpdateDate{{MarketType: marketType, Date: latest}}
	u.cache.Set(ctx, key, out)
	return out, nil
}

// validateBounds checks the optional date bounds of a history query.
func validateBounds(startDate, endDate string) error {
	if startDate != "" && !validDate(startDate) {
		return ErrInvalidDate
	}
	if endDate != "" && !validDate(endDate) {
		return ErrInvalidDate
	}
	return nil
}

// validDate reports whether s is a well-formed YYYY-MM-DD date.
func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
