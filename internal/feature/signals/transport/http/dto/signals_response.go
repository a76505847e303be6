package dto

// SignalItem は1件のシグナルレスポンスDTOです。
type SignalItem struct {
	Code       string  `json:"code"`        // 銘柄コード
	Date       string  `json:"date"`        // シグナル日付 (YYYY-MM-DD)
	SignalType string  `json:"signal_type"` // ストラテジー名
	Action     string  `json:"action"`      // buy / sell
	Price      float64 `json:"price"`       // シグナル時点の価格
}

// SignalsResponse は銘柄単位のシグナル照会レスポンスDTOです。
type SignalsResponse struct {
	Code string       `json:"code"`
	Data []SignalItem `json:"data"`
}

// PickItem は最新シグナルの売買リスト1件のレスポンスDTOです。
type PickItem struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// LatestSignalsResponse は最新シグナルダイジェストのレスポンスDTOです。
type LatestSignalsResponse struct {
	Today string     `json:"today"`
	Next  string     `json:"next"`
	Buy   []PickItem `json:"buy"`
	Sell  []PickItem `json:"sell"`
}

// TradeItem は約定履歴1件のレスポンスDTOです。
type TradeItem struct {
	Code       string  `json:"code"`
	SignalType string  `json:"signal_type"`
	BuyDate    string  `json:"buy_date"`
	BuyPrice   float64 `json:"buy_price"`
	SellDate   string  `json:"sell_date"`
	SellPrice  float64 `json:"sell_price"`
	ProfitRate float64 `json:"profit_rate"`
}

// ProfitItem は損益曲線1点のレスポンスDTOです。
type ProfitItem struct {
	UID        string  `json:"uid"`
	SignalType string  `json:"signal_type"`
	Date       string  `json:"date"`
	ProfitRate float64 `json:"profit_rate"`
	Balance    float64 `json:"balance"`
}

// HoldingItem は保有ポジション1件のレスポンスDTOです。
type HoldingItem struct {
	Code       string  `json:"code"`
	SignalType string  `json:"signal_type"`
	BuyDate    string  `json:"buy_date"`
	BuyPrice   float64 `json:"buy_price"`
	Quantity   float64 `json:"quantity"`
}
