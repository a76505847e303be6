package usecase

import (
	"context"
	"fmt"
	"time"

	direntity "market_backend/internal/feature/directory/domain/entity"
	"market_backend/internal/feature/signals/domain/entity"
)

// dateLayout is the wire format for every date parameter and field.
const dateLayout = "2006-01-02"

// SignalRepository abstracts the per-namespace signal, trade, profit and
// holdings tables.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SignalRepository interface {
	// ListByCode returns every signal recorded for code, ascending by date.
	ListByCode(ctx context.Context, table, code string) ([]entity.SignalRecord, error)

	// MaxDateByType returns the most recent signal date recorded for the
	// strategy, or "" when it has emitted nothing.
	MaxDateByType(ctx context.Context, table, signalType string) (string, error)

	// ListByTypeAndDate returns every signal the strategy emitted on one
	// date, ascending by code.
	ListByTypeAndDate(ctx context.Context, table, signalType, date string) ([]entity.SignalRecord, error)

	// ListTrades returns the strategy's round trips closed inside
	// [start, end], ascending by sell date.
	ListTrades(ctx context.Context, table, signalType, start, end string) ([]entity.TradeRecord, error)

	// ListProfits returns the uid's equity curve for the strategy from
	// start onwards, ascending by date.
	ListProfits(ctx context.Context, table, signalType, uid, start string) ([]entity.ProfitPoint, error)

	// ListHoldings returns the strategy's open positions, ascending by code.
	ListHoldings(ctx context.Context, table, signalType string) ([]entity.Holding, error)
}

// QueryCache is the time-bounded cache in front of the store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/cache).
type QueryCache interface {
	Key(scope string, parts ...string) string
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any)
}

// TickerDirectory resolves tickers and market types to their namespace
// and codes to their listed names.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (directory).
type TickerDirectory interface {
	FindNamespace(code string) (direntity.Namespace, bool)
	NamespaceByName(name string) (direntity.Namespace, bool)
	FindListing(code string) (direntity.Listing, bool)
}

// TradingCalendar answers next-trading-day questions per market.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (externalapi).
type TradingCalendar interface {
	NextTradingDate(ctx context.Context, marketType, after string) (string, error)
}

// SignalsResult is the shaped answer for a per-ticker signal query.
type SignalsResult struct {
	Code    string
	Records []entity.SignalRecord
}

// LatestSignalsResult is the freshest signal digest for one strategy:
// the newest signal date, the next trading day, and the buy/sell lists.
// It round-trips through the cache as one value.
type LatestSignalsResult struct {
	Today string              `json:"today"`
	Next  string              `json:"next"`
	Buy   []entity.SignalPick `json:"buy"`
	Sell  []entity.SignalPick `json:"sell"`
}

// SignalsUsecase serves the strategy read endpoints: signals, the latest
// signal digest, trade history, profit curves and open positions.
type SignalsUsecase struct {
	repo      SignalRepository
	cache     QueryCache
	directory TickerDirectory
	calendar  TradingCalendar
}

// NewSignalsUsecase creates a SignalsUsecase with the given collaborators.
func NewSignalsUsecase(repo SignalRepository, cache QueryCache, directory TickerDirectory, calendar TradingCalendar) *SignalsUsecase {
	return &SignalsUsecase{repo: repo, cache: cache, directory: directory, calendar: calendar}
}

// GetSignals returns every signal on record for one ticker.
func (u *SignalsUsecase) GetSignals(ctx context.Context, ticker string) (SignalsResult, error) {
	if ticker == "" {
		return SignalsResult{}, ErrMissingTicker
	}
	ns, ok := u.directory.FindNamespace(ticker)
	if !ok {
		return SignalsResult{}, ErrTickerNotFound
	}

	key := u.cache.Key("signals", ticker)
	var records []entity.SignalRecord
	if u.cache.Get(ctx, key, &records) && len(records) > 0 {
		return SignalsResult{Code: ticker, Records: records}, nil
	}

	records, err := u.repo.ListByCode(ctx, ns.SignalsTable(), ticker)
	if err != nil {
		return SignalsResult{}, err
	}
	if len(records) == 0 {
		return SignalsResult{}, ErrNoData
	}
	u.cache.Set(ctx, key, records)
	return SignalsResult{Code: ticker, Records: records}, nil
}

// LatestSignals builds the digest of the strategy's freshest signal date:
// which codes to buy and sell, and the next trading day those orders
// would execute on. Names come from the routing directory; codes gone
// from the code tables keep an empty name.
func (u *SignalsUsecase) LatestSignals(ctx context.Context, marketType, signalType string) (LatestSignalsResult, error) {
	ns, err := u.resolveMarket(marketType)
	if err != nil {
		return LatestSignalsResult{}, err
	}
	if signalType == "" {
		return LatestSignalsResult{}, ErrMissingSignalType
	}

	key := u.cache.Key("latest", "signals", marketType, signalType)
	var out LatestSignalsResult
	if u.cache.Get(ctx, key, &out) && out.Today != "" {
		return out, nil
	}

	today, err := u.repo.MaxDateByType(ctx, ns.SignalsTable(), signalType)
	if err != nil {
		return LatestSignalsResult{}, err
	}
	if today == "" {
		return LatestSignalsResult{}, ErrNoData
	}

	next, err := u.calendar.NextTradingDate(ctx, marketType, today)
	if err != nil {
		return LatestSignalsResult{}, fmt.Errorf("next trading date for %s: %w", marketType, err)
	}

	records, err := u.repo.ListByTypeAndDate(ctx, ns.SignalsTable(), signalType, today)
	if err != nil {
		return LatestSignalsResult{}, err
	}

	buy := make([]entity.SignalPick, 0, len(records))
	sell := make([]entity.SignalPick, 0, len(records))
	for _, r := range records {
		pick := entity.SignalPick{Code: r.Code, Price: r.Price}
		if l, ok := u.directory.FindListing(r.Code); ok {
			pick.Name = l.Name
		}
		switch r.Action {
		case entity.ActionBuy:
			buy = append(buy, pick)
		case entity.ActionSell:
			sell = append(sell, pick)
		}
	}

	out = LatestSignalsResult{Today: today, Next: next, Buy: buy, Sell: sell}
	u.cache.Set(ctx, key, out)
	return out, nil
}

// TradeHistory returns the strategy's round trips closed inside the
// caller's date window.
func (u *SignalsUsecase) TradeHistory(ctx context.Context, marketType, signalType, start, end string) ([]entity.TradeRecord, error) {
	ns, err := u.resolveMarket(marketType)
	if err != nil {
		return nil, err
	}
	if signalType == "" {
		return nil, ErrMissingSignalType
	}
	if start == "" {
		return nil, ErrMissingStartDate
	}
	if end == "" {
		return nil, ErrMissingEndDate
	}
	if !validDate(start) || !validDate(end) {
		return nil, ErrInvalidDate
	}

	key := u.cache.Key("trades", marketType, signalType, start, end)
	var trades []entity.TradeRecord
	if u.cache.Get(ctx, key, &trades) && len(trades) > 0 {
		return trades, nil
	}

	trades, err = u.repo.ListTrades(ctx, ns.TradesTable(), signalType, start, end)
	if err != nil {
		return nil, err
	}
	if len(trades) == 0 {
		return nil, ErrNoData
	}
	u.cache.Set(ctx, key, trades)
	return trades, nil
}

// Profits returns one uid's simulated equity curve for the strategy,
// from the given date onwards.
func (u *SignalsUsecase) Profits(ctx context.Context, marketType, signalType, start, uid string) ([]entity.ProfitPoint, error) {
	ns, err := u.resolveMarket(marketType)
	if err != nil {
		return nil, err
	}
	if signalType == "" {
		return nil, ErrMissingSignalType
	}
	if start == "" {
		return nil, ErrMissingStartDate
	}
	if !validDate(start) {
		return nil, ErrInvalidDate
	}
	if uid == "" {
		return nil, ErrMissingUID
	}

	key := u.cache.Key("profits", marketType, signalType, start, uid)
	var points []entity.ProfitPoint
	if u.cache.Get(ctx, key, &points) && len(points) > 0 {
		return points, nil
	}

	points, err = u.repo.ListProfits(ctx, ns.ProfitsTable(), signalType, uid, start)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoData
	}
	u.cache.Set(ctx, key, points)
	return points, nil
}

// Owned returns the strategy's open positions.
func (u *SignalsUsecase) Owned(ctx context.Context, marketType, signalType string) ([]entity.Holding, error) {
	ns, err := u.resolveMarket(marketType)
	if err != nil {
		return nil, err
	}
	if signalType == "" {
		return nil, ErrMissingSignalType
	}

	key := u.cache.Key("owned", marketType, signalType)
	var holdings []entity.Holding
	if u.cache.Get(ctx, key, &holdings) && len(holdings) > 0 {
		return holdings, nil
	}

	holdings, err = u.repo.ListHoldings(ctx, ns.HoldingsTable(), signalType)
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		return nil, ErrNoData
	}
	u.cache.Set(ctx, key, holdings)
	return holdings, nil
}

// resolveMarket validates the type parameter and resolves its namespace.
func (u *SignalsUsecase) resolveMarket(marketType string) (direntity.Namespace, error) {
	if marketType == "" {
		return direntity.Namespace{}, ErrMissingMarketType
	}
	ns, ok := u.directory.NamespaceByName(marketType)
	if !ok {
		return direntity.Namespace{}, ErrUnknownMarketType
	}
	return ns, nil
}

// validDate reports whether s is a well-formed YYYY-MM-DD date.
func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
