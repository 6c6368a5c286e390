package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/omoide/internal/storage"
)

// likeRequest はいいね操作リクエストのJSON構造。
type likeRequest struct {
	// VisitorID は操作する訪問者のID。
	VisitorID string `json:"visitorId" binding:"required"`
}

// likeResponse はいいねのJSONレスポンス構造。
type likeResponse struct {
	// ID はいいねの一意識別子。
	ID string `json:"id"`
	// MediaID はいいね対象メディアのID。
	MediaID string `json:"mediaId"`
	// GalleryID は所属するギャラリーのID。
	GalleryID string `json:"galleryId"`
	// VisitorID はいいねした訪問者のID。
	VisitorID string `json:"visitorId"`
	// CreatedAt はいいねした日時。
	CreatedAt string `json:"createdAt"`
}

// toLikeResponse はストアのいいねをJSONレスポンスに変換する。
func toLikeResponse(l storage.Like) likeResponse {
	return likeResponse{
		ID:        l.ID,
		MediaID:   l.MediaID,
		GalleryID: l.GalleryID,
		VisitorID: l.VisitorID,
		CreatedAt: l.CreatedAt.Format(timeFormat),
	}
}

// handleCreateLike はいいね作成を処理するハンドラを返す。
// 同じ訪問者が同じメディアに二重にいいねした場合は409を返す。
func (s *Server) handleCreateLike() gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("mediaId")

		media, err := s.store.GetMedia(mediaID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "メディアが見つかりません"})
			return
		}

		var req likeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		if _, err := s.store.FindLike(mediaID, req.VisitorID); err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "すでにいいね済みです"})
			return
		}

		like := s.store.CreateLike(storage.CreateLikeParams{
			MediaID:   mediaID,
			GalleryID: media.GalleryID,
			VisitorID: req.VisitorID,
		})
		c.JSON(http.StatusCreated, toLikeResponse(like))
	}
}

// handleDeleteLike はいいね取り消しを処理するハンドラを返す。
// いいねが存在しなくてもエラーにせず204を返す。
func (s *Server) handleDeleteLike() gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("mediaId")

		if _, err := s.store.GetMedia(mediaID); errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "メディアが見つかりません"})
			return
		}

		var req likeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		s.store.DeleteLike(mediaID, req.VisitorID)
		c.Status(http.StatusNoContent)
	}
}

// handleToggleLike はいいねのトグルを処理するハンドラを返す。
// 存在確認と作成・削除を単一操作で行うため、連打しても状態は
// 高々1件のいいねに収束する。
func (s *Server) handleToggleLike() gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("mediaId")

		media, err := s.store.GetMedia(mediaID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "メディアが見つかりません"})
			return
		}

		var req likeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		like, liked := s.store.ToggleLike(storage.CreateLikeParams{
			MediaID:   mediaID,
			GalleryID: media.GalleryID,
			VisitorID: req.VisitorID,
		})

		if liked {
			c.JSON(http.StatusOK, gin.H{"status": "liked", "like": toLikeResponse(like)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "unliked"})
	}
}
