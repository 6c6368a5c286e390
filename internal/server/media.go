package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/omoide/internal/storage"
)

// createMediaRequest はメディア投稿リクエストのJSON構造。
type createMediaRequest struct {
	// VisitorID は投稿する訪問者のID。
	VisitorID string `json:"visitorId" binding:"required"`
	// URL はメディアファイルのURL。
	URL string `json:"url" binding:"required"`
	// ThumbnailURL はサムネイル画像のURL。
	ThumbnailURL string `json:"thumbnailUrl"`
	// Type はメディアの種類。
	Type string `json:"type" binding:"required,oneof=photo video story"`
	// Caption はキャプション。
	Caption string `json:"caption"`
}

// deleteMediaRequest はメディア削除リクエストのJSON構造。
type deleteMediaRequest struct {
	// VisitorID は削除を要求する訪問者のID。投稿者本人のみ削除できる。
	VisitorID string `json:"visitorId" binding:"required"`
}

// mediaResponse はメディアのJSONレスポンス構造。
type mediaResponse struct {
	// ID はメディアの一意識別子。
	ID string `json:"id"`
	// GalleryID は所属するギャラリーのID。
	GalleryID string `json:"galleryId"`
	// VisitorID は投稿した訪問者のID。
	VisitorID string `json:"visitorId"`
	// URL はメディアファイルのURL。
	URL string `json:"url"`
	// ThumbnailURL はサムネイル画像のURL。
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	// Type はメディアの種類。
	Type string `json:"type"`
	// Caption はキャプション。
	Caption string `json:"caption,omitempty"`
	// CreatedAt は投稿日時。
	CreatedAt string `json:"createdAt"`
	// ExpiresAt は期限切れ日時。ストーリーのみ設定される。
	ExpiresAt string `json:"expiresAt,omitempty"`
	// LikeCount はいいねの数。
	LikeCount int `json:"likeCount"`
}

// toMediaResponse はストアのメディアをJSONレスポンスに変換する。
func (s *Server) toMediaResponse(m storage.Media) mediaResponse {
	resp := mediaResponse{
		ID:           m.ID,
		GalleryID:    m.GalleryID,
		VisitorID:    m.VisitorID,
		URL:          m.URL,
		ThumbnailURL: m.ThumbnailURL,
		Type:         string(m.Type),
		Caption:      m.Caption,
		CreatedAt:    m.CreatedAt.Format(timeFormat),
		LikeCount:    len(s.store.GetLikesByMedia(m.ID)),
	}
	if m.ExpiresAt != nil {
		resp.ExpiresAt = m.ExpiresAt.Format(timeFormat)
	}
	return resp
}

// handleListMedia はギャラリー内のメディア一覧取得を処理するハンドラを返す。
// typeクエリパラメータで種類を絞り込める。期限切れのストーリーは含まれない。
func (s *Server) handleListMedia() gin.HandlerFunc {
	return func(c *gin.Context) {
		galleryID := c.Param("galleryId")

		if _, err := s.store.GetGallery(galleryID); errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ギャラリーが見つかりません"})
			return
		}

		mediaType := storage.MediaType(c.Query("type"))
		media := s.store.GetMediaByGallery(galleryID, mediaType)

		responses := make([]mediaResponse, 0, len(media))
		for _, m := range media {
			responses = append(responses, s.toMediaResponse(m))
		}
		c.JSON(http.StatusOK, responses)
	}
}

// handleCreateMedia はメディア投稿を処理するハンドラを返す。
// ストーリーの場合は期限（投稿から24時間）をここで算出して保存する。
func (s *Server) handleCreateMedia() gin.HandlerFunc {
	return func(c *gin.Context) {
		galleryID := c.Param("galleryId")

		if _, err := s.store.GetGallery(galleryID); errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ギャラリーが見つかりません"})
			return
		}

		var req createMediaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		params := storage.CreateMediaParams{
			GalleryID:    galleryID,
			VisitorID:    req.VisitorID,
			URL:          req.URL,
			ThumbnailURL: req.ThumbnailURL,
			Type:         storage.MediaType(req.Type),
			Caption:      req.Caption,
		}
		if params.Type == storage.MediaTypeStory {
			expiresAt := s.now().UTC().Add(storyTTL)
			params.ExpiresAt = &expiresAt
		}

		media := s.store.CreateMedia(params)
		c.JSON(http.StatusCreated, s.toMediaResponse(media))
	}
}

// handleDeleteMedia はメディア削除を処理するハンドラを返す。
// 投稿者本人以外は削除できない。コメントといいねもあわせて削除される。
func (s *Server) handleDeleteMedia() gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("mediaId")

		media, err := s.store.GetMedia(mediaID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "メディアが見つかりません"})
			return
		}

		var req deleteMediaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		if media.VisitorID != req.VisitorID {
			c.JSON(http.StatusForbidden, gin.H{"error": "このメディアを削除する権限がありません"})
			return
		}

		s.store.DeleteMedia(mediaID)
		c.Status(http.StatusNoContent)
	}
}

// handleListStories はアクティブなストーリー一覧取得を処理するハンドラを返す。
func (s *Server) handleListStories() gin.HandlerFunc {
	return func(c *gin.Context) {
		galleryID := c.Param("galleryId")

		if _, err := s.store.GetGallery(galleryID); errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ギャラリーが見つかりません"})
			return
		}

		stories := s.store.GetActiveStories(galleryID)
		responses := make([]mediaResponse, 0, len(stories))
		for _, m := range stories {
			responses = append(responses, s.toMediaResponse(m))
		}
		c.JSON(http.StatusOK, responses)
	}
}
