package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/omoide/internal/storage"
	"github.com/nao1215/omoide/pkg/middleware"
)

// createGalleryRequest はギャラリー作成リクエストのJSON構造。
type createGalleryRequest struct {
	// ID は呼び出し側が指定するギャラリーID（URLスラッグ）。省略可。
	ID string `json:"id"`
	// Name はギャラリー名。
	Name string `json:"name" binding:"required"`
	// OwnerEmail は所有者のメールアドレス。
	OwnerEmail string `json:"ownerEmail" binding:"required,email"`
	// Theme はギャラリーのテーマ。省略時はwedding。
	Theme string `json:"theme" binding:"omitempty,oneof=wedding birthday vacation custom"`
	// CustomTheme はTheme=customの場合のテーマ名。
	CustomTheme string `json:"customTheme"`
	// ProfileImage はプロフィール画像のURL。
	ProfileImage string `json:"profileImage"`
	// Bio はギャラリーの紹介文。
	Bio string `json:"bio"`
	// SpotifyConfig は音楽連携設定。
	SpotifyConfig *storage.SpotifyConfig `json:"spotifyConfig"`
}

// updateGalleryRequest はギャラリー更新リクエストのJSON構造。
// nilのフィールドは変更しない。
type updateGalleryRequest struct {
	// Name はギャラリー名。
	Name *string `json:"name"`
	// OwnerEmail は所有者のメールアドレス。
	OwnerEmail *string `json:"ownerEmail"`
	// Theme はギャラリーのテーマ。
	Theme *string `json:"theme" binding:"omitempty,oneof=wedding birthday vacation custom"`
	// CustomTheme はTheme=customの場合のテーマ名。
	CustomTheme *string `json:"customTheme"`
	// ProfileImage はプロフィール画像のURL。
	ProfileImage *string `json:"profileImage"`
	// Bio はギャラリーの紹介文。
	Bio *string `json:"bio"`
	// IsLive はギャラリーが公開中かどうか。
	IsLive *bool `json:"isLive"`
	// SpotifyConfig は音楽連携設定。
	SpotifyConfig *storage.SpotifyConfig `json:"spotifyConfig"`
}

// galleryResponse はギャラリーのJSONレスポンス構造。
type galleryResponse struct {
	// ID はギャラリーの一意識別子。
	ID string `json:"id"`
	// Name はギャラリー名。
	Name string `json:"name"`
	// OwnerEmail は所有者のメールアドレス。
	OwnerEmail string `json:"ownerEmail"`
	// Theme はギャラリーのテーマ。
	Theme string `json:"theme"`
	// CustomTheme はTheme=customの場合のテーマ名。
	CustomTheme string `json:"customTheme,omitempty"`
	// ProfileImage はプロフィール画像のURL。
	ProfileImage string `json:"profileImage,omitempty"`
	// Bio はギャラリーの紹介文。
	Bio string `json:"bio,omitempty"`
	// IsLive はギャラリーが公開中かどうか。
	IsLive bool `json:"isLive"`
	// CreatedAt は作成日時。
	CreatedAt string `json:"createdAt"`
	// SpotifyConfig は音楽連携設定。
	SpotifyConfig *storage.SpotifyConfig `json:"spotifyConfig,omitempty"`
}

// toGalleryResponse はストアのギャラリーをJSONレスポンスに変換する。
func toGalleryResponse(g storage.Gallery) galleryResponse {
	return galleryResponse{
		ID:            g.ID,
		Name:          g.Name,
		OwnerEmail:    g.OwnerEmail,
		Theme:         string(g.Theme),
		CustomTheme:   g.CustomTheme,
		ProfileImage:  g.ProfileImage,
		Bio:           g.Bio,
		IsLive:        g.IsLive,
		CreatedAt:     g.CreatedAt.Format(timeFormat),
		SpotifyConfig: g.SpotifyConfig,
	}
}

// handleCreateGallery はギャラリー作成を処理するハンドラを返す。
// 作成したギャラリーと、管理操作に使用する所有者トークンを返す。
func (s *Server) handleCreateGallery() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createGalleryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		theme := storage.GalleryTheme(req.Theme)
		if theme == "" {
			theme = storage.ThemeWedding
		}

		gallery := s.store.CreateGallery(storage.CreateGalleryParams{
			ID:            req.ID,
			Name:          req.Name,
			OwnerEmail:    req.OwnerEmail,
			Theme:         theme,
			CustomTheme:   req.CustomTheme,
			ProfileImage:  req.ProfileImage,
			Bio:           req.Bio,
			SpotifyConfig: req.SpotifyConfig,
		})

		token, err := middleware.GenerateOwnerToken(s.jwtSecret, gallery.ID, gallery.OwnerEmail)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "所有者トークンの発行に失敗しました"})
			log.Printf("所有者トークン発行エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"gallery":    toGalleryResponse(gallery),
			"ownerToken": token,
		})
	}
}

// handleGetGallery はギャラリー取得を処理するハンドラを返す。
func (s *Server) handleGetGallery() gin.HandlerFunc {
	return func(c *gin.Context) {
		gallery, err := s.store.GetGallery(c.Param("galleryId"))
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ギャラリーが見つかりません"})
			return
		}

		c.JSON(http.StatusOK, toGalleryResponse(gallery))
	}
}

// handleUpdateGallery はギャラリー設定の更新を処理するハンドラを返す。
// 所有者トークンが対象ギャラリーのものである場合のみ更新できる。
func (s *Server) handleUpdateGallery() gin.HandlerFunc {
	return func(c *gin.Context) {
		galleryID := c.Param("galleryId")

		if _, err := s.store.GetGallery(galleryID); errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ギャラリーが見つかりません"})
			return
		}

		if !requireGalleryOwner(c, galleryID) {
			return
		}

		var req updateGalleryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		params := storage.UpdateGalleryParams{
			Name:          req.Name,
			OwnerEmail:    req.OwnerEmail,
			CustomTheme:   req.CustomTheme,
			ProfileImage:  req.ProfileImage,
			Bio:           req.Bio,
			IsLive:        req.IsLive,
			SpotifyConfig: req.SpotifyConfig,
		}
		if req.Theme != nil {
			theme := storage.GalleryTheme(*req.Theme)
			params.Theme = &theme
		}

		updated, err := s.store.UpdateGallery(galleryID, params)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ギャラリーが見つかりません"})
			return
		}

		c.JSON(http.StatusOK, toGalleryResponse(updated))
	}
}
