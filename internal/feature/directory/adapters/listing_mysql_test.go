package adapters

import (
	"context"
	"market_backend/internal/feature/directory/domain/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database with empty code tables.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	for _, table := range []string{"krx_codes", "usx_codes", "coin_codes"} {
		err = db.Table(table).AutoMigrate(&listingModel{})
		require.NoError(t, err, "failed to migrate table %s", table)
	}

	return db
}

// seedListing creates one code table row for testing.
func seedListing(t *testing.T, db *gorm.DB, table, code, name string) {
	t.Helper()

	row := &listingModel{Code: code, Name: name, Market: "TEST", Sector: "Test"}
	err := db.Table(table).Create(row).Error
	require.NoError(t, err, "failed to seed listing")
}

func TestNewListingRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewListingRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestListingMySQL_ListByTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		table        string
		wantErr      bool
		setupFunc    func(t *testing.T, db *gorm.DB)
		validateFunc func(t *testing.T, listings []entity.Listing)
	}{
		{
			name:    "success: returns listings in code order",
			table:   "krx_codes",
			wantErr: false,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedListing(t, db, "krx_codes", "035720", "Kakao")
				seedListing(t, db, "krx_codes", "005930", "Samsung Electronics")
			},
			validateFunc: func(t *testing.T, listings []entity.Listing) {
				require.Len(t, listings, 2, "should return 2 listings")
				assert.Equal(t, "005930", listings[0].Code, "lowest code should come first")
				assert.Equal(t, "035720", listings[1].Code)
			},
		},
		{
			name:    "success: empty table returns empty slice",
			table:   "usx_codes",
			wantErr: false,
			validateFunc: func(t *testing.T, listings []entity.Listing) {
				assert.Empty(t, listings, "should return empty slice")
				assert.NotNil(t, listings, "should not return nil")
			},
		},
		{
			name:    "success: rows from other tables are not mixed in",
			table:   "coin_codes",
			wantErr: false,
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedListing(t, db, "coin_codes", "BTC", "Bitcoin")
				seedListing(t, db, "krx_codes", "005930", "Samsung Electronics")
			},
			validateFunc: func(t *testing.T, listings []entity.Listing) {
				require.Len(t, listings, 1, "should return only coin_codes rows")
				assert.Equal(t, "BTC", listings[0].Code)
			},
		},
		{
			name:    "error: missing table",
			table:   "fx_codes",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewListingRepository(db)

			if tt.setupFunc != nil {
				tt.setupFunc(t, db)
			}

			listings, err := repo.ListByTable(context.Background(), tt.table)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.validateFunc != nil {
					tt.validateFunc(t, listings)
				}
			}
		})
	}
}

func TestListingMySQL_ListByTable_EntityMapping(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewListingRepository(db)

	row := &listingModel{Code: "AAPL", Name: "Apple", Market: "NASDAQ", Sector: "Technology"}
	err := db.Table("usx_codes").Create(row).Error
	require.NoError(t, err)

	result, err := repo.ListByTable(context.Background(), "usx_codes")
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, "AAPL", result[0].Code, "Code does not match")
	assert.Equal(t, "Apple", result[0].Name, "Name does not match")
	assert.Equal(t, "NASDAQ", result[0].Market, "Market does not match")
	assert.Equal(t, "Technology", result[0].Sector, "Sector does not match")
}
