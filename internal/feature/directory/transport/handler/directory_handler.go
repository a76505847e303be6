package handler

import (
	"context"
	"log/slog"
	"net/http"

	"market_backend/internal/feature/directory/domain/entity"

	"github.com/gin-gonic/gin"
)

// DirectoryUsecase はルーティングディレクトリに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DirectoryUsecase interface {
	Refresh(ctx context.Context) error
	Tables() (map[string][]entity.Listing, error)
}

// DirectoryHandler はコードテーブルに関するHTTPリクエストを処理します。
type DirectoryHandler struct {
	uc DirectoryUsecase
}

// NewDirectoryHandler は新しい DirectoryHandler を作成します。
func NewDirectoryHandler(uc DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// UpdateTables はコードテーブルを再読み込みするAPIです。
// 再読み込みに失敗した場合は従来のディレクトリを保持したまま500を返します。
func (h *DirectoryHandler) UpdateTables(c *gin.Context) {
	if err := h.uc.Refresh(c.Request.Context()); err != nil {
		slog.Error("table refresh failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update tables"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tables updated successfully"})
}

// Tables は現在のディレクトリ内容をコードテーブル名ごとに返すAPIです。
// 起動後まだ一度も読み込みに成功していない場合は500を返します。
func (h *DirectoryHandler) Tables(c *gin.Context) {
	tables, err := h.uc.Tables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "tables not loaded yet"})
		return
	}
	c.JSON(http.StatusOK, tables)
}
