// Package entity defines the records produced by the trading strategies.
package entity

// Actions a signal can carry.
const (
	ActionBuy  = "buy"
	ActionSell = "sell"
)

// SignalRecord is one buy or sell signal emitted by a strategy for a code.
type SignalRecord struct {
	Code       string  `json:"code"`
	Date       string  `json:"date"`
	SignalType string  `json:"signal_type"`
	Action     string  `json:"action"`
	Price      float64 `json:"price"`
}

// TradeRecord is one closed round trip produced by following a strategy.
type TradeRecord struct {
	Code       string  `json:"code"`
	SignalType string  `json:"signal_type"`
	BuyDate    string  `json:"buy_date"`
	BuyPrice   float64 `json:"buy_price"`
	SellDate   string  `json:"sell_date"`
	SellPrice  float64 `json:"sell_price"`
	ProfitRate float64 `json:"profit_rate"`
}

// ProfitPoint is one day of a simulated account's equity curve.
type ProfitPoint struct {
	UID        string  `json:"uid"`
	SignalType string  `json:"signal_type"`
	Date       string  `json:"date"`
	ProfitRate float64 `json:"profit_rate"`
	Balance    float64 `json:"balance"`
}

// Holding is one position a strategy currently keeps open.
type Holding struct {
	Code       string  `json:"code"`
	SignalType string  `json:"signal_type"`
	BuyDate    string  `json:"buy_date"`
	BuyPrice   float64 `json:"buy_price"`
	Quantity   float64 `json:"quantity"`
}

// SignalPick is one code on the buy or sell list for the freshest signal
// date, enriched with its listed name.
type SignalPick struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
