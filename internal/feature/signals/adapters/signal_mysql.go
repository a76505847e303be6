// Package adapters はsignalsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"
	"time"

	"market_backend/internal/feature/signals/domain/entity"
	"market_backend/internal/feature/signals/usecase"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// signalModel はシグナルテーブル1行のGORMモデルです。
// krx_signals / usx_signals / coin_signals は同じ列構成を共有します。
type signalModel struct {
	Code       string    `gorm:"column:code;size:20;primaryKey"`
	Date       time.Time `gorm:"column:date;primaryKey"`
	SignalType string    `gorm:"column:signal_type;size:50;primaryKey"`

	Action string  `gorm:"column:action;size:10;not null"`
	Price  float64 `gorm:"column:price;not null"`
}

// tradeModel は約定履歴テーブル1行のGORMモデルです。
type tradeModel struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	Code       string    `gorm:"column:code;size:20;not null"`
	SignalType string    `gorm:"column:signal_type;size:50;not null"`
	BuyDate    time.Time `gorm:"column:buy_date;not null"`
	BuyPrice   float64   `gorm:"column:buy_price;not null"`
	SellDate   time.Time `gorm:"column:sell_date;not null"`
	SellPrice  float64   `gorm:"column:sell_price;not null"`
	ProfitRate float64   `gorm:"column:profit_rate;not null"`
}

// profitModel は損益曲線テーブル1行のGORMモデルです。
type profitModel struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	UID        string    `gorm:"column:uid;size:50;not null"`
	SignalType string    `gorm:"column:signal_type;size:50;not null"`
	Date       time.Time `gorm:"column:date;not null"`
	ProfitRate float64   `gorm:"column:profit_rate;not null"`
	Balance    float64   `gorm:"column:balance;not null"`
}

// holdingModel は保有ポジションテーブル1行のGORMモデルです。
type holdingModel struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	Code       string    `gorm:"column:code;size:20;not null"`
	SignalType string    `gorm:"column:signal_type;size:50;not null"`
	BuyDate    time.Time `gorm:"column:buy_date;not null"`
	BuyPrice   float64   `gorm:"column:buy_price;not null"`
	Quantity   float64   `gorm:"column:quantity;not null"`
}

// signalMySQL はSignalRepositoryインターフェースのMySQL実装です。
// テーブル名はすべて設定済みネームスペース由来であり、リクエスト値は渡されません。
type signalMySQL struct {
	db *gorm.DB
}

var _ usecase.SignalRepository = (*signalMySQL)(nil)

// NewSignalRepository は指定されたDB接続でsignalMySQLリポジトリの新しいインスタンスを生成します。
func NewSignalRepository(db *gorm.DB) *signalMySQL {
	return &signalMySQL{db: db}
}

// parseDate はYYYY-MM-DD文字列を接続タイムゾーンの日付として解釈します。
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// ListByCode は指定銘柄の全シグナルを日付昇順で返します。
func (r *signalMySQL) ListByCode(ctx context.Context, table, code string) ([]entity.SignalRecord, error) {
	var rows []signalModel
	if err := r.db.WithContext(ctx).
		Table(table).
		Where("code = ?", code).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.SignalRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, toSignal(m))
	}
	return out, nil
}

// MaxDateByType は指定ストラテジーの最新シグナル日付を返します。
// 1件もない場合は空文字列を返します。
func (r *signalMySQL) MaxDateByType(ctx context.Context, table, signalType string) (string, error) {
	var rows []signalModel
	if err := r.db.WithContext(ctx).
		Table(table).
		Where("signal_type = ?", signalType).
		Order("date DESC").
		Limit(1).
		Find(&rows).Error; err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].Date.Format(dateLayout), nil
}

// ListByTypeAndDate は指定ストラテジーが指定日に出した全シグナルをコード順に返します。
func (r *signalMySQL) ListByTypeAndDate(ctx context.Context, table, signalType, date string) ([]entity.SignalRecord, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	var rows []signalModel
	if err := r.db.WithContext(ctx).
		Table(table).
		Where("signal_type = ? AND date = ?", signalType, d).
		Order("code ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.SignalRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, toSignal(m))
	}
	return out, nil
}

// ListTrades は売却日が[start, end]に収まる約定履歴を売却日昇順で返します。
func (r *signalMySQL) ListTrades(ctx context.Context, table, signalType, start, end string) ([]entity.TradeRecord, error) {
	s, err := parseDate(start)
	if err != nil {
		return nil, err
	}
	e, err := parseDate(end)
	if err != nil {
		return nil, err
	}

	var rows []tradeModel
	if err := r.db.WithContext(ctx).
		Table(table).
		Where("signal_type = ? AND sell_date BETWEEN ? AND ?", signalType, s, e).
		Order("sell_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.TradeRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.TradeRecord{
			Code:       m.Code,
			SignalType: m.SignalType,
			BuyDate:    m.BuyDate.Format(dateLayout),
			BuyPrice:   m.BuyPrice,
			SellDate:   m.SellDate.Format(dateLayout),
			SellPrice:  m.SellPrice,
			ProfitRate: m.ProfitRate,
		})
	}
	return out, nil
}

// ListProfits は指定uid・ストラテジーの損益曲線をstart以降、日付昇順で返します。
func (r *signalMySQL) ListProfits(ctx context.Context, table, signalType, uid, start string) ([]entity.ProfitPoint, error) {
	s, err := parseDate(start)
	if err != nil {
		return nil, err
	}

	var rows []profitModel
	if err := r.db.WithContext(ctx).
		Table(table).
		Where("uid = ? AND signal_type = ? AND date >= ?", uid, signalType, s).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.ProfitPoint, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.ProfitPoint{
			UID:        m.UID,
			SignalType: m.SignalType,
			Date:       m.Date.Format(dateLayout),
			ProfitRate: m.ProfitRate,
			Balance:    m.Balance,
		})
	}
	return out, nil
}

// ListHoldings は指定ストラテジーの保有ポジションをコード順に返します。
func (r *signalMySQL) ListHoldings(ctx context.Context, table, signalType string) ([]entity.Holding, error) {
	var rows []holdingModel
	if err := r.db.WithContext(ctx).
		Table(table).
		Where("signal_type = ?", signalType).
		Order("code ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Holding, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Holding{
			Code:       m.Code,
			SignalType: m.SignalType,
			BuyDate:    m.BuyDate.Format(dateLayout),
			BuyPrice:   m.BuyPrice,
			Quantity:   m.Quantity,
		})
	}
	return out, nil
}

func toSignal(m signalModel) entity.SignalRecord {
	return entity.SignalRecord{
		Code:       m.Code,
		Date:       m.Date.Format(dateLayout),
		SignalType: m.SignalType,
		Action:     m.Action,
		Price:      m.Price,
	}
}
