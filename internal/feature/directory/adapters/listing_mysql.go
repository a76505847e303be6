// Package adapters はdirectoryフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"market_backend/internal/feature/directory/domain/entity"
	"market_backend/internal/feature/directory/usecase"

	"gorm.io/gorm"
)

// listingModel はコードテーブル1行のGORMモデルです。
// krx_codes / usx_codes / coin_codes は同じ列構成を共有します。
type listingModel struct {
	Code   string `gorm:"column:code;size:20;not null;uniqueIndex"`
	Name   string `gorm:"column:name;size:255;not null"`
	Market string `gorm:"column:market;size:100"`
	Sector string `gorm:"column:sector;size:100"`
}

// listingMySQL はListingRepositoryインターフェースのMySQL実装です。
type listingMySQL struct {
	db *gorm.DB
}

var _ usecase.ListingRepository = (*listingMySQL)(nil)

// NewListingRepository は指定されたDB接続でlistingMySQLリポジトリの新しいインスタンスを生成します。
func NewListingRepository(db *gorm.DB) *listingMySQL {
	return &listingMySQL{db: db}
}

// ListByTable は指定されたコードテーブルの全銘柄をコード順に返します。
// テーブル名は設定済みネームスペース由来であり、リクエスト値は渡されません。
func (r *listingMySQL) ListByTable(ctx context.Context, table string) ([]entity.Listing, error) {
	var rows []listingModel
	if err := r.db.WithContext(ctx).
		Table(table).
		Order("code ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	listings := make([]entity.Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, entity.Listing{
			Code:   row.Code,
			Name:   row.Name,
			Market: row.Market,
			Sector: row.Sector,
		})
	}
	return listings, nil
}
