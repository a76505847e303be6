// Package handler はpricesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"market_backend/internal/feature/prices/domain/entity"
	"market_backend/internal/feature/prices/transport/http/dto"
	"market_backend/internal/feature/prices/usecase"

	"github.com/gin-gonic/gin"
)

// PricesUsecase は価格照会のユースケースインターフェースを定義します。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PricesUsecase interface {
	GetPrices(ctx context.Context, ticker, startDate, endDate string) (usecase.PricesResult, error)
	LatestByTicker(ctx context.Context, ticker string) (entity.PriceRecord, error)
	LatestByMarket(ctx context.Context, marketType, date string) ([]entity.PriceRecord, error)
	LatestUpdateDate(ctx context.Context, marketType string) ([]usecase.UpdateDate, error)
}

// PricesHandler は価格照会のHTTPリクエストを処理します。
type PricesHandler struct {
	uc PricesUsecase
}

// NewPricesHandler は指定されたusecaseでPricesHandlerの新しいインスタンスを生成します。
func NewPricesHandler(uc PricesUsecase) *PricesHandler {
	return &PricesHandler{uc: uc}
}

// GetPrices は銘柄コードと期間を受け取り、期間内の日足価格をJSONで返します。
//
// エンドポイント例:
// GET /prices?ticker=005930&t=2024-01-01&end_date=2024-03-31
func (h *PricesHandler) GetPrices(c *gin.Context) {
	ticker := c.Query("ticker")
	start := c.Query("t")
	end := c.Query("end_date")

	result, err := h.uc.GetPrices(c.Request.Context(), ticker, start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PricesResponse{
		Code:      result.Code,
		Data:      toItems(result.Records),
		StartDate: result.StartDate,
		EndDate:   result.EndDate,
	})
}

// LatestPricesTicker は単一銘柄の最新価格レコードをJSONで返します。
//
// エンドポイント例:
// GET /latest_prices_ticker?ticker=AAPL
func (h *PricesHandler) LatestPricesTicker(c *gin.Context) {
	ticker := c.Query("ticker")

	record, err := h.uc.LatestByTicker(c.Request.Context(), ticker)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LatestTickerResponse{
		Code: record.Code,
		Data: toItem(record),
	})
}

// LatestPrices は指定市場・指定日の全銘柄の価格レコードをJSONで返します。
//
// エンドポイント例:
// GET /latest_prices?market_type=krx&date=2024-01-05
func (h *PricesHandler) LatestPrices(c *gin.Context) {
	marketType := c.Query("market_type")
	date := c.Query("date")

	records, err := h.uc.LatestByMarket(c.Request.Context(), marketType, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItems(records))
}

// LatestUpdateDate は指定市場の価格テーブルの最終更新日をJSONで返します。
//
// エンドポイント例:
// GET /latest_update_date?market_type=usx
func (h *PricesHandler) LatestUpdateDate(c *gin.Context) {
	marketType := c.Query("market_type")

	dates, err := h.uc.LatestUpdateDate(c.Request.Context(), marketType)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.UpdateDateItem, 0, len(dates))
	for _, d := range dates {
		out = append(out, dto.UpdateDateItem{MarketType: d.MarketType, Date: d.Date})
	}
	c.JSON(http.StatusOK, out)
}

func toItem(r entity.PriceRecord) dto.PriceItem {
	return dto.PriceItem{
		Code:   r.Code,
		Date:   r.Date,
		Open:   r.Open,
		High:   r.High,
		Low:    r.Low,
		Close:  r.Close,
		Volume: r.Volume,
	}
}

func toItems(records []entity.PriceRecord) []dto.PriceItem {
	out := make([]dto.PriceItem, 0, len(records))
	for _, r := range records {
		out = append(out, toItem(r))
	}
	return out
}

// respondError はユースケースのエラーをHTTPステータスへ変換して返します。
// パラメータ不備は400、データ未存在は404、それ以外は500を返します。
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMissingTicker),
		errors.Is(err, usecase.ErrMissingDate),
		errors.Is(err, usecase.ErrMissingMarketType),
		errors.Is(err, usecase.ErrUnknownMarketType),
		errors.Is(err, usecase.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrTickerNotFound),
		errors.Is(err, usecase.ErrNoData):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		slog.Error("prices query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
