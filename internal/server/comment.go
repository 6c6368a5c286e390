package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/omoide/internal/storage"
)

// createCommentRequest はコメント投稿リクエストのJSON構造。
type createCommentRequest struct {
	// VisitorID はコメントする訪問者のID。
	VisitorID string `json:"visitorId" binding:"required"`
	// Text はコメント本文。
	Text string `json:"text" binding:"required"`
}

// deleteCommentRequest はコメント削除リクエストのJSON構造。
type deleteCommentRequest struct {
	// VisitorID は削除を要求する訪問者のID。投稿者本人のみ削除できる。
	VisitorID string `json:"visitorId" binding:"required"`
}

// commentResponse はコメントのJSONレスポンス構造。
type commentResponse struct {
	// ID はコメントの一意識別子。
	ID string `json:"id"`
	// MediaID はコメント対象メディアのID。
	MediaID string `json:"mediaId"`
	// GalleryID は所属するギャラリーのID。
	GalleryID string `json:"galleryId"`
	// VisitorID はコメントした訪問者のID。
	VisitorID string `json:"visitorId"`
	// Text はコメント本文。
	Text string `json:"text"`
	// CreatedAt は投稿日時。
	CreatedAt string `json:"createdAt"`
}

// toCommentResponse はストアのコメントをJSONレスポンスに変換する。
func toCommentResponse(cm storage.Comment) commentResponse {
	return commentResponse{
		ID:        cm.ID,
		MediaID:   cm.MediaID,
		GalleryID: cm.GalleryID,
		VisitorID: cm.VisitorID,
		Text:      cm.Text,
		CreatedAt: cm.CreatedAt.Format(timeFormat),
	}
}

// handleListComments はメディアへのコメント一覧取得を処理するハンドラを返す。
// コメントは古い順（スレッド順）で返す。
func (s *Server) handleListComments() gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("mediaId")

		if _, err := s.store.GetMedia(mediaID); errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "メディアが見つかりません"})
			return
		}

		comments := s.store.GetCommentsByMedia(mediaID)
		responses := make([]commentResponse, 0, len(comments))
		for _, cm := range comments {
			responses = append(responses, toCommentResponse(cm))
		}
		c.JSON(http.StatusOK, responses)
	}
}

// handleCreateComment はコメント投稿を処理するハンドラを返す。
func (s *Server) handleCreateComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("mediaId")

		media, err := s.store.GetMedia(mediaID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "メディアが見つかりません"})
			return
		}

		var req createCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		comment := s.store.CreateComment(storage.CreateCommentParams{
			MediaID:   mediaID,
			GalleryID: media.GalleryID,
			VisitorID: req.VisitorID,
			Text:      req.Text,
		})
		c.JSON(http.StatusCreated, toCommentResponse(comment))
	}
}

// handleDeleteComment はコメント削除を処理するハンドラを返す。
// 投稿者本人以外は削除できない。
func (s *Server) handleDeleteComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		commentID := c.Param("commentId")

		comment, err := s.store.GetComment(commentID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "コメントが見つかりません"})
			return
		}

		var req deleteCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		if comment.VisitorID != req.VisitorID {
			c.JSON(http.StatusForbidden, gin.H{"error": "このコメントを削除する権限がありません"})
			return
		}

		s.store.DeleteComment(commentID)
		c.Status(http.StatusNoContent)
	}
}
