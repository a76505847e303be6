package adapters

import (
	"context"
	"fmt"
	"time"

	"market_backend/internal/feature/prices/domain/entity"
	"market_backend/internal/feature/prices/usecase"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type priceMySQL struct {
	db *gorm.DB
}

var _ usecase.PriceRepository = (*priceMySQL)(nil)

func NewPriceRepository(db *gorm.DB) *priceMySQL {
	return &priceMySQL{db: db}
}

// priceModel is shared by every per-namespace price table; the table
// name is supplied per query and always comes from the configured
// namespace set, never from request input.
type priceModel struct {
	Code string    `gorm:"column:code;size:20;primaryKey"`
	Date time.Time `gorm:"column:date;primaryKey"`

	Open   float64 `gorm:"column:open;not null"`
	High   float64 `gorm:"column:high;not null"`
	Low    float64 `gorm:"column:low;not null"`
	Close  float64 `gorm:"column:close;not null"`
	Volume int64   `gorm:"column:volume;not null;default:0"`
}

func toRecord(m priceModel) entity.PriceRecord {
	return entity.PriceRecord{
		Code:   m.Code,
		Date:   m.Date.Format(dateLayout),
		Open:   m.Open,
		High:   m.High,
		Low:    m.Low,
		Close:  m.Close,
		Volume: m.Volume,
	}
}

func toRecords(rows []priceModel) []entity.PriceRecord {
	out := make([]entity.PriceRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, toRecord(m))
	}
	return out
}

// parseDate binds a YYYY-MM-DD parameter in the connection's timezone so
// that comparisons against DATE columns hit the calendar day exactly.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

func (r *priceMySQL) FetchRange(ctx context.Context, table, code, start, end string) ([]entity.PriceRecord, error) {
	s, err := parseDate(start)
	if err != nil {
		return nil, err
	}
	e, err := parseDate(end)
	if err != nil {
		return nil, err
	}

	var rows []priceModel
	if err := r.db.WithContext(ctx).
		Table(table).
		Where("code = ? AND date BETWEEN ? AND ?", code, s, e).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

func (r *priceMySQL) OldestDate(ctx context.Context, table, code string) (string, error) {
	return r.boundaryDate(ctx, table, code, "date ASC")
}

func (r *priceMySQL) LatestDate(ctx context.Context, table, code string) (string, error) {
	return r.boundaryDate(ctx, table, code, "date DESC")
}

// boundaryDate resolves the earliest or latest date on record for a code.
func (r *priceMySQL) boundaryDate(ctx context.Context, table, code, order string) (string, error) {
	var rows []priceModel
	if err := r.db.WithContext(ctx).
		Table(table).
		Where("code = ?", code).
		Order(order).
		Limit(1).
		Find(&rows).Error; err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].Date.Format(dateLayout), nil
}

func (r *priceMySQL) LatestByCode(ctx context.Context, table, code string) (entity.PriceRecord, error) {
	var rows []priceModel
	if err := r.db.WithContext(ctx).
		Table(table).
		Where("code = ?", code).
		Order("date DESC").
		Limit(1).
		Find(&rows).Error; err != nil {
		return entity.PriceRecord{}, err
	}
	if len(rows) == 0 {
		return entity.PriceRecord{}, usecase.ErrNoData
	}
	return toRecord(rows[0]), nil
}

func (r *priceMySQL) ListByDate(ctx context.Context, table, date string) ([]entity.PriceRecord, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	var rows []priceModel
	if err := r.db.WithContext(ctx).
		Table(table).
		Where("date = ?", d).
		Order("code ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

func (r *priceMySQL) MaxDate(ctx context.Context, table string) (string, error) {
	var rows []priceModel
	if err := r.db.WithContext(ctx).
		Table(table).
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
