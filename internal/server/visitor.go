package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/omoide/internal/storage"
)

// registerVisitorRequest は訪問者登録リクエストのJSON構造。
type registerVisitorRequest struct {
	// Name は訪問者の表示名。
	Name string `json:"name" binding:"required"`
	// DeviceID は端末の識別子。
	DeviceID string `json:"deviceId" binding:"required"`
	// Fingerprint はブラウザフィンガープリント。
	Fingerprint string `json:"fingerprint" binding:"required"`
}

// visitorResponse は訪問者のJSONレスポンス構造。
type visitorResponse struct {
	// ID は訪問者の一意識別子。
	ID string `json:"id"`
	// GalleryID は所属するギャラリーのID。
	GalleryID string `json:"galleryId"`
	// Name は訪問者の表示名。
	Name string `json:"name"`
	// DeviceID は端末の識別子。
	DeviceID string `json:"deviceId"`
	// Fingerprint はブラウザフィンガープリント。
	Fingerprint string `json:"fingerprint"`
	// CreatedAt は初回登録日時。
	CreatedAt string `json:"createdAt"`
	// LastActive は最終アクティビティ日時。
	LastActive string `json:"lastActive"`
}

// toVisitorResponse はストアの訪問者をJSONレスポンスに変換する。
func toVisitorResponse(v storage.Visitor) visitorResponse {
	return visitorResponse{
		ID:          v.ID,
		GalleryID:   v.GalleryID,
		Name:        v.Name,
		DeviceID:    v.DeviceID,
		Fingerprint: v.Fingerprint,
		CreatedAt:   v.CreatedAt.Format(timeFormat),
		LastActive:  v.LastActive.Format(timeFormat),
	}
}

// handleRegisterVisitor は訪問者登録を処理するハンドラを返す。
// 同じ端末からの再訪の場合は既存の訪問者を返し、ステータスは200となる。
// 新規登録の場合は201を返す。
func (s *Server) handleRegisterVisitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		galleryID := c.Param("galleryId")

		if _, err := s.store.GetGallery(galleryID); errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ギャラリーが見つかりません"})
			return
		}

		var req registerVisitorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		visitor, created := s.store.RegisterVisitor(storage.CreateVisitorParams{
			GalleryID:   galleryID,
			Name:        req.Name,
			DeviceID:    req.DeviceID,
			Fingerprint: req.Fingerprint,
		})

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, toVisitorResponse(visitor))
	}
}
