package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/omoide/internal/storage"
)

// createTimelineEntryRequest はタイムライン項目作成リクエストのJSON構造。
type createTimelineEntryRequest struct {
	// Title は項目のタイトル。
	Title string `json:"title" binding:"required"`
	// Description は項目の説明。
	Description string `json:"description"`
	// Date は表示用の日付・時刻文字列。
	Date string `json:"date" binding:"required"`
	// Image は項目に添える画像のURL。
	Image string `json:"image"`
	// Order はタイムライン内の表示順。
	Order int `json:"order"`
}

// updateTimelineEntryRequest はタイムライン項目更新リクエストのJSON構造。
// nilのフィールドは変更しない。
type updateTimelineEntryRequest struct {
	// Title は項目のタイトル。
	Title *string `json:"title"`
	// Description は項目の説明。
	Description *string `json:"description"`
	// Date は表示用の日付・時刻文字列。
	Date *string `json:"date"`
	// Image は項目に添える画像のURL。
	Image *string `json:"image"`
	// Order はタイムライン内の表示順。
	Order *int `json:"order"`
}

// timelineEntryResponse はタイムライン項目のJSONレスポンス構造。
type timelineEntryResponse struct {
	// ID は項目の一意識別子。
	ID string `json:"id"`
	// GalleryID は所属するギャラリーのID。
	GalleryID string `json:"galleryId"`
	// Title は項目のタイトル。
	Title string `json:"title"`
	// Description は項目の説明。
	Description string `json:"description,omitempty"`
	// Date は表示用の日付・時刻文字列。
	Date string `json:"date"`
	// Image は項目に添える画像のURL。
	Image string `json:"image,omitempty"`
	// Order はタイムライン内の表示順。
	Order int `json:"order"`
	// CreatedAt は作成日時。
	CreatedAt string `json:"createdAt"`
}

// toTimelineEntryResponse はストアのタイムライン項目をJSONレスポンスに変換する。
func toTimelineEntryResponse(e storage.TimelineEntry) timelineEntryResponse {
	return timelineEntryResponse{
		ID:          e.ID,
		GalleryID:   e.GalleryID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Image:       e.Image,
		Order:       e.Order,
		CreatedAt:   e.CreatedAt.Format(timeFormat),
	}
}

// handleListTimeline はギャラリーのタイムライン取得を処理するハンドラを返す。
// 項目は表示順で返す。
func (s *Server) handleListTimeline() gin.HandlerFunc {
	return func(c *gin.Context) {
		galleryID := c.Param("galleryId")

		if _, err := s.store.GetGallery(galleryID); errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ギャラリーが見つかりません"})
			return
		}

		entries := s.store.GetTimelineByGallery(galleryID)
		responses := make([]timelineEntryResponse, 0, len(entries))
		for _, e := range entries {
			responses = append(responses, toTimelineEntryResponse(e))
		}
		c.JSON(http.StatusOK, responses)
	}
}

// handleCreateTimelineEntry はタイムライン項目作成を処理するハンドラを返す。
// 対象ギャラリーの所有者トークンが必要。
func (s *Server) handleCreateTimelineEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		galleryID := c.Param("galleryId")

		if _, err := s.store.GetGallery(galleryID); errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ギャラリーが見つかりません"})
			return
		}

		if !requireGalleryOwner(c, galleryID) {
			return
		}

		var req createTimelineEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		entry := s.store.CreateTimelineEntry(storage.CreateTimelineEntryParams{
			GalleryID:   galleryID,
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Image:       req.Image,
			Order:       req.Order,
		})
		c.JSON(http.StatusCreated, toTimelineEntryResponse(entry))
	}
}

// handleUpdateTimelineEntry はタイムライン項目更新を処理するハンドラを返す。
// 項目が属するギャラリーの所有者トークンが必要。
func (s *Server) handleUpdateTimelineEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		entryID := c.Param("entryId")

		entry, err := s.store.GetTimelineEntry(entryID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "タイムライン項目が見つかりません"})
			return
		}

		if !requireGalleryOwner(c, entry.GalleryID) {
			return
		}

		var req updateTimelineEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		updated, err := s.store.UpdateTimelineEntry(entryID, storage.UpdateTimelineEntryParams{
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Image:       req.Image,
			Order:       req.Order,
		})
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "タイムライン項目が見つかりません"})
			return
		}
		c.JSON(http.StatusOK, toTimelineEntryResponse(updated))
	}
}

// handleDeleteTimelineEntry はタイムライン項目削除を処理するハンドラを返す。
// 項目が属するギャラリーの所有者トークンが必要。
func (s *Server) handleDeleteTimelineEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		entryID := c.Param("entryId")

		entry, err := s.store.GetTimelineEntry(entryID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "タイムライン項目が見つかりません"})
			return
		}

		if !requireGalleryOwner(c, entry.GalleryID) {
			return
		}

		s.store.DeleteTimelineEntry(entryID)
		c.Status(http.StatusNoContent)
	}
}
