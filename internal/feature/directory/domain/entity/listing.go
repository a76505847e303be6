// Package entity defines the domain models for the directory feature.
package entity

// Listing represents one tradable instrument as registered in a
// namespace's code table. It is the unit of the routing directory:
// resolving a ticker means finding the listing that carries its code.
type Listing struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Market string `json:"market"`
	Sector string `json:"sector"`
}

// Namespace is one asset-class partition of the code directory.
// Name doubles as the market_type value accepted by the HTTP API and
// as the prefix of the namespace's data tables (e.g. krx -> krx_prices).
type Namespace struct {
	Name       string
	CodesTable string
}

// PricesTable returns the name of the namespace's daily price table.
func (n Namespace) PricesTable() string {
	return n.Name + "_prices"
}

// SignalsTable returns the name of the namespace's signal table.
func (n Namespace) SignalsTable() string {
	return n.Name + "_signals"
}

// TradesTable returns the name of the namespace's completed-trade table.
func (n Namespace) TradesTable() string {
	return n.Name + "_trades"
}

// ProfitsTable returns the name of the namespace's profit-curve table.
func (n Namespace) ProfitsTable() string {
	return n.Name + "_profits"
}

// HoldingsTable returns the name of the namespace's open-position table.
func (n Namespace) HoldingsTable() string {
	return n.Name + "_holdings"
}
