package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"market_backend/internal/feature/directory/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// mockDirectoryUsecase はDirectoryUsecaseインターフェースのモック実装です。
type mockDirectoryUsecase struct {
	RefreshFunc func(ctx context.Context) error
	TablesFunc  func() (map[string][]entity.Listing, error)
}

// Refresh はモックのRefresh関数を呼び出します。
func (m *mockDirectoryUsecase) Refresh(ctx context.Context) error {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return nil
}

// Tables はモックのTables関数を呼び出します。
func (m *mockDirectoryUsecase) Tables() (map[string][]entity.Listing, error) {
	if m.TablesFunc != nil {
		return m.TablesFunc()
	}
	return nil, nil
}

// TestNewDirectoryHandler はNewDirectoryHandlerコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewDirectoryHandler(t *testing.T) {
	t.Parallel()

	handler := NewDirectoryHandler(&mockDirectoryUsecase{})

	assert.NotNil(t, handler, "handler should not be nil")
	assert.NotNil(t, handler.uc, "usecase should not be nil")
}

// TestDirectoryHandler_UpdateTables はUpdateTablesハンドラーの各種シナリオをテーブル駆動テストで検証します。
func TestDirectoryHandler_UpdateTables(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockRefresh    func(ctx context.Context) error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: tables refreshed",
			mockRefresh: func(ctx context.Context) error {
				return nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"tables updated successfully"}`,
		},
		{
			name: "failure: store unreachable",
			mockRefresh: func(ctx context.Context) error {
				return errors.New("load krx_codes: connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to update tables"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewDirectoryHandler(&mockDirectoryUsecase{RefreshFunc: tt.mockRefresh})

			router := gin.New()
			router.POST("/update-tables", handler.UpdateTables)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/update-tables", nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestDirectoryHandler_Tables はTablesハンドラーの各種シナリオをテーブル駆動テストで検証します。
func TestDirectoryHandler_Tables(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockTables     func() (map[string][]entity.Listing, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns directory content",
			mockTables: func() (map[string][]entity.Listing, error) {
				return map[string][]entity.Listing{
					"krx_codes": {
						{Code: "005930", Name: "Samsung Electronics", Market: "KOSPI", Sector: "Tech"},
					},
					"usx_codes": {},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"krx_codes":[{"code":"005930","name":"Samsung Electronics","market":"KOSPI","sector":"Tech"}],
				"usx_codes":[]
			}`,
		},
		{
			name: "failure: directory not loaded yet",
			mockTables: func() (map[string][]entity.Listing, error) {
				return nil, errors.New("code tables not loaded yet")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"tables not loaded yet"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewDirectoryHandler(&mockDirectoryUsecase{TablesFunc: tt.mockTables})

			router := gin.New()
			router.GET("/tables", handler.Tables)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/tables", nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
