// Package handler はsignalsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"market_backend/internal/feature/signals/domain/entity"
	"market_backend/internal/feature/signals/transport/http/dto"
	"market_backend/internal/feature/signals/usecase"

	"github.com/gin-gonic/gin"
)

// SignalsUsecase はシグナル照会のユースケースインターフェースを定義します。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SignalsUsecase interface {
	GetSignals(ctx context.Context, ticker string) (usecase.SignalsResult, error)
	LatestSignals(ctx context.Context, marketType, signalType string) (usecase.LatestSignalsResult, error)
	TradeHistory(ctx context.Context, marketType, signalType, start, end string) ([]entity.TradeRecord, error)
	Profits(ctx context.Context, marketType, signalType, start, uid string) ([]entity.ProfitPoint, error)
	Owned(ctx context.Context, marketType, signalType string) ([]entity.Holding, error)
}

// SignalsHandler はシグナル照会のHTTPリクエストを処理します。
type SignalsHandler struct {
	uc SignalsUsecase
}

// NewSignalsHandler は指定されたusecaseでSignalsHandlerの新しいインスタンスを生成します。
func NewSignalsHandler(uc SignalsUsecase) *SignalsHandler {
	return &SignalsHandler{uc: uc}
}

// GetSignals は銘柄コードを受け取り、その銘柄の全シグナルをJSONで返します。
//
// エンドポイント例:
// GET /signals?ticker=005930
func (h *SignalsHandler) GetSignals(c *gin.Context) {
	ticker := c.Query("ticker")

	result, err := h.uc.GetSignals(c.Request.Context(), ticker)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.SignalItem, 0, len(result.Records))
	for _, r := range result.Records {
		out = append(out, dto.SignalItem{
			Code:       r.Code,
			Date:       r.Date,
			SignalType: r.SignalType,
			Action:     r.Action,
			Price:      r.Price,
		})
	}
	c.JSON(http.StatusOK, dto.SignalsResponse{Code: result.Code, Data: out})
}

// LatestSignals は最新シグナル日のダイジェスト（売買リストと次営業日）をJSONで返します。
//
// エンドポイント例:
// GET /latest_signals?type=krx&signal_type=golden_cross
func (h *SignalsHandler) LatestSignals(c *gin.Context) {
	marketType := c.Query("type")
	signalType := c.Query("signal_type")

	result, err := h.uc.LatestSignals(c.Request.Context(), marketType, signalType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LatestSignalsResponse{
		Today: result.Today,
		Next:  result.Next,
		Buy:   toPicks(result.Buy),
		Sell:  toPicks(result.Sell),
	})
}

// TradeHistory は指定期間内に決済された約定履歴をJSONで返します。
//
// エンドポイント例:
// GET /trade_history?type=krx&signal_type=golden_cross&start_date=2024-01-01&end_date=2024-03-31
func (h *SignalsHandler) TradeHistory(c *gin.Context) {
	marketType := c.Query("type")
	signalType := c.Query("signal_type")
	start := c.Query("start_date")
	end := c.Query("end_date")

	trades, err := h.uc.TradeHistory(c.Request.Context(), marketType, signalType, start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.TradeItem, 0, len(trades))
	for _, tr := range trades {
		out = append(out, dto.TradeItem{
			Code:       tr.Code,
			SignalType: tr.SignalType,
			BuyDate:    tr.BuyDate,
			BuyPrice:   tr.BuyPrice,
			SellDate:   tr.SellDate,
			SellPrice:  tr.SellPrice,
			ProfitRate: tr.ProfitRate,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Profits は指定uidの損益曲線をJSONで返します。
//
// エンドポイント例:
// GET /profits?type=krx&signal_type=golden_cross&start_date=2024-01-01&uid=u1
func (h *SignalsHandler) Profits(c *gin.Context) {
	marketType := c.Query("type")
	signalType := c.Query("signal_type")
	start := c.Query("start_date")
	uid := c.Query("uid")

	points, err := h.uc.Profits(c.Request.Context(), marketType, signalType, start, uid)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.ProfitItem, 0, len(points))
	for _, p := range points {
		out = append(out, dto.ProfitItem{
			UID:        p.UID,
			SignalType: p.SignalType,
			Date:       p.Date,
			ProfitRate: p.ProfitRate,
			Balance:    p.Balance,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Owned は指定ストラテジーの保有ポジションをJSONで返します。
//
// エンドポイント例:
// GET /owned?type=krx&signal_type=golden_cross
func (h *SignalsHandler) Owned(c *gin.Context) {
	marketType := c.Query("type")
	signalType := c.Query("signal_type")

	holdings, err := h.uc.Owned(c.Request.Context(), marketType, signalType)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.HoldingItem, 0, len(holdings))
	for _, hd := range holdings {
		out = append(out, dto.HoldingItem{
			Code:       hd.Code,
			SignalType: hd.SignalType,
			BuyDate:    hd.BuyDate,
			BuyPrice:   hd.BuyPrice,
			Quantity:   hd.Quantity,
		})
	}
	c.JSON(http.StatusOK, out)
}

func toPicks(picks []entity.SignalPick) []dto.PickItem {
	out := make([]dto.PickItem, 0, len(picks))
	for _, p := range picks {
		out = append(out, dto.PickItem{Code: p.Code, Name: p.Name, Price: p.Price})
	}
	return out
}

// respondError はユースケースのエラーをHTTPステータスへ変換して返します。
// パラメータ不備は400、データ未存在は404、カレンダー障害などは500を返します。
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMissingTicker),
		errors.Is(err, usecase.ErrMissingMarketType),
		errors.Is(err, usecase.ErrUnknownMarketType),
		errors.Is(err, usecase.ErrMissingSignalType),
		errors.Is(err, usecase.ErrMissingStartDate),
		errors.Is(err, usecase.ErrMissingEndDate),
		errors.Is(err, usecase.ErrMissingUID),
		errors.Is(err, usecase.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrTickerNotFound),
		errors.Is(err, usecase.ErrNoData):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		slog.Error("signals query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
