package dto

// PriceItem は1営業日分の価格レスポンスDTOです。
type PriceItem struct {
	Code   string  `json:"code"`   // 銘柄コード
	Date   string  `json:"date"`   // 日付 (YYYY-MM-DD)
	Open   float64 `json:"open"`   // 始値
	High   float64 `json:"high"`   // 高値
	Low    float64 `json:"low"`    // 安値
	Close  float64 `json:"close"`  // 終値
	Volume int64   `json:"volume"` // 出来高
}

// PricesResponse は期間指定の価格照会レスポンスDTOです。
// start_date / end_date はリクエストで指定された境界、未指定の場合は
// 実際に返却したデータの境界を返します。
type PricesResponse struct {
	Code      string      `json:"code"`
	Data      []PriceItem `json:"data"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
}

// LatestTickerResponse は銘柄単位の最新価格レスポンスDTOです。
type LatestTickerResponse struct {
	Code string    `json:"code"`
	Data PriceItem `json:"data"`
}

// UpdateDateItem は価格テーブルの最終更新日レスポンスDTOです。
type UpdateDateItem struct {
	MarketType string `json:"market_type"`
	Date       string `json:"date"`
}
