package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/omoide/internal/storage"
)

// createMusicRequestRequest は楽曲リクエスト作成のJSON構造。
type createMusicRequestRequest struct {
	// VisitorID はリクエストする訪問者のID。
	VisitorID string `json:"visitorId" binding:"required"`
	// SpotifyTrackID はSpotify上の楽曲ID。
	SpotifyTrackID string `json:"spotifyTrackId" binding:"required"`
	// TrackName は楽曲名。
	TrackName string `json:"trackName" binding:"required"`
	// ArtistName はアーティスト名。
	ArtistName string `json:"artistName" binding:"required"`
	// AlbumCover はアルバムカバー画像のURL。
	AlbumCover string `json:"albumCover"`
}

// musicRequestResponse は楽曲リクエストのJSONレスポンス構造。
type musicRequestResponse struct {
	// ID はリクエストの一意識別子。
	ID string `json:"id"`
	// GalleryID は所属するギャラリーのID。
	GalleryID string `json:"galleryId"`
	// VisitorID はリクエストした訪問者のID。
	VisitorID string `json:"visitorId"`
	// SpotifyTrackID はSpotify上の楽曲ID。
	SpotifyTrackID string `json:"spotifyTrackId"`
	// TrackName は楽曲名。
	TrackName string `json:"trackName"`
	// ArtistName はアーティスト名。
	ArtistName string `json:"artistName"`
	// AlbumCover はアルバムカバー画像のURL。
	AlbumCover string `json:"albumCover,omitempty"`
	// Approved は所有者が承認済みかどうか。
	Approved bool `json:"approved"`
	// CreatedAt はリクエスト日時。
	CreatedAt string `json:"createdAt"`
}

// toMusicRequestResponse はストアの楽曲リクエストをJSONレスポンスに変換する。
func toMusicRequestResponse(r storage.MusicRequest) musicRequestResponse {
	return musicRequestResponse{
		ID:             r.ID,
		GalleryID:      r.GalleryID,
		VisitorID:      r.VisitorID,
		SpotifyTrackID: r.SpotifyTrackID,
		TrackName:      r.TrackName,
		ArtistName:     r.ArtistName,
		AlbumCover:     r.AlbumCover,
		Approved:       r.Approved,
		CreatedAt:      r.CreatedAt.Format(timeFormat),
	}
}

// handleListMusicRequests は楽曲リクエスト一覧取得を処理するハンドラを返す。
// approved=trueクエリパラメータで承認済みのみに絞り込める。
func (s *Server) handleListMusicRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		galleryID := c.Param("galleryId")

		if _, err := s.store.GetGallery(galleryID); errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ギャラリーが見つかりません"})
			return
		}

		approvedOnly := c.Query("approved") == "true"
		requests := s.store.GetMusicRequestsByGallery(galleryID, approvedOnly)

		responses := make([]musicRequestResponse, 0, len(requests))
		for _, r := range requests {
			responses = append(responses, toMusicRequestResponse(r))
		}
		c.JSON(http.StatusOK, responses)
	}
}

// handleCreateMusicRequest は楽曲リクエスト作成を処理するハンドラを返す。
// リクエストは未承認状態で作成され、所有者の承認を待つ。
func (s *Server) handleCreateMusicRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		galleryID := c.Param("galleryId")

		if _, err := s.store.GetGallery(galleryID); errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ギャラリーが見つかりません"})
			return
		}

		var req createMusicRequestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		request := s.store.CreateMusicRequest(storage.CreateMusicRequestParams{
			GalleryID:      galleryID,
			VisitorID:      req.VisitorID,
			SpotifyTrackID: req.SpotifyTrackID,
			TrackName:      req.TrackName,
			ArtistName:     req.ArtistName,
			AlbumCover:     req.AlbumCover,
		})
		c.JSON(http.StatusCreated, toMusicRequestResponse(request))
	}
}

// handleApproveMusicRequest は楽曲リクエストの承認を処理するハンドラを返す。
// リクエストが属するギャラリーの所有者トークンが必要。
func (s *Server) handleApproveMusicRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Param("requestId")

		request, err := s.store.GetMusicRequest(requestID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "楽曲リクエストが見つかりません"})
			return
		}

		if !requireGalleryOwner(c, request.GalleryID) {
			return
		}

		approved, err := s.store.ApproveMusicRequest(requestID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "楽曲リクエストが見つかりません"})
			return
		}
		c.JSON(http.StatusOK, toMusicRequestResponse(approved))
	}
}

// handleDeleteMusicRequest は楽曲リクエスト削除を処理するハンドラを返す。
// リクエストが属するギャラリーの所有者トークンが必要。
func (s *Server) handleDeleteMusicRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Param("requestId")

		request, err := s.store.GetMusicRequest(requestID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "楽曲リクエストが見つかりません"})
			return
		}

		if !requireGalleryOwner(c, request.GalleryID) {
			return
		}

		s.store.DeleteMusicRequest(requestID)
		c.Status(http.StatusNoContent)
	}
}
