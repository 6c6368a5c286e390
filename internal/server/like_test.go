package server

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/omoide/internal/storage"
)

// setupLikeTest はいいねテスト用のギャラリー・訪問者・メディアを準備する。
func setupLikeTest(t *testing.T) (*Server, *gin.Engine, storage.Visitor, storage.Media) {
	t.Helper()
	s, router := setupTestServer(t)
	createTestGallery(t, s, "g1", "ギャラリー")
	visitor := createTestVisitor(t, s, "g1", "hanako")
	media := s.store.CreateMedia(storage.CreateMediaParams{
		GalleryID: "g1", VisitorID: visitor.ID,
		URL: "https://cdn.example.com/1.jpg", Type: storage.MediaTypePhoto,
	})
	return s, router, visitor, media
}

// TestCreateLikeAPI はいいね作成APIを検証する。
func TestCreateLikeAPI(t *testing.T) {
	t.Parallel()

	t.Run("いいねが作成できること", func(t *testing.T) {
		t.Parallel()
		_, router, visitor, media := setupLikeTest(t)

		w := doRequest(router, http.MethodPost, "/api/media/"+media.ID+"/likes", "", map[string]any{
			"visitorId": visitor.ID,
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("ステータスコード = %d, want %d, body=%s", w.Code, http.StatusCreated, w.Body.String())
		}
		body := parseJSON(t, w)
		if body["mediaId"] != media.ID {
			t.Errorf("mediaId = %v, want %q", body["mediaId"], media.ID)
		}
		if body["galleryId"] != "g1" {
			t.Errorf("galleryId = %v, want %q", body["galleryId"], "g1")
		}
	})

	t.Run("二重にいいねすると409が返ること", func(t *testing.T) {
		t.Parallel()
		_, router, visitor, media := setupLikeTest(t)

		payload := map[string]any{"visitorId": visitor.ID}
		doRequest(router, http.MethodPost, "/api/media/"+media.ID+"/likes", "", payload)
		w := doRequest(router, http.MethodPost, "/api/media/"+media.ID+"/likes", "", payload)

		if w.Code != http.StatusConflict {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusConflict)
		}
	})

	t.Run("存在しないメディアで404が返ること", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodPost, "/api/media/unknown/likes", "", map[string]any{
			"visitorId": "v1",
		})

		if w.Code != http.StatusNotFound {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

// TestDeleteLikeAPI はいいね取り消しAPIを検証する。
func TestDeleteLikeAPI(t *testing.T) {
	t.Parallel()

	t.Run("いいねが取り消せること", func(t *testing.T) {
		t.Parallel()
		s, router, visitor, media := setupLikeTest(t)
		s.store.CreateLike(storage.CreateLikeParams{
			MediaID: media.ID, GalleryID: "g1", VisitorID: visitor.ID,
		})

		w := doRequest(router, http.MethodDelete, "/api/media/"+media.ID+"/likes", "", map[string]any{
			"visitorId": visitor.ID,
		})

		if w.Code != http.StatusNoContent {
			t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusNoContent)
		}
		if likes := s.store.GetLikesByMedia(media.ID); len(likes) != 0 {
			t.Errorf("いいね数 = %d, want 0", len(likes))
		}
	})

	t.Run("いいねしていない状態で取り消しても204が返ること", func(t *testing.T) {
		t.Parallel()
		_, router, visitor, media := setupLikeTest(t)

		w := doRequest(router, http.MethodDelete, "/api/media/"+media.ID+"/likes", "", map[string]any{
			"visitorId": visitor.ID,
		})

		if w.Code != http.StatusNoContent {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusNoContent)
		}
	})
}

// TestToggleLikeAPI はいいねトグルAPIを検証する。
func TestToggleLikeAPI(t *testing.T) {
	t.Parallel()

	t.Run("トグルでいいねの有無が反転すること", func(t *testing.T) {
		t.Parallel()
		s, router, visitor, media := setupLikeTest(t)

		payload := map[string]any{"visitorId": visitor.ID}
		path := "/api/media/" + media.ID + "/likes/toggle"

		w1 := doRequest(router, http.MethodPost, path, "", payload)
		if w1.Code != http.StatusOK {
			t.Fatalf("1回目のステータスコード = %d, want %d", w1.Code, http.StatusOK)
		}
		if status := parseJSON(t, w1)["status"]; status != "liked" {
			t.Errorf("1回目のstatus = %v, want %q", status, "liked")
		}

		w2 := doRequest(router, http.MethodPost, path, "", payload)
		if status := parseJSON(t, w2)["status"]; status != "unliked" {
			t.Errorf("2回目のstatus = %v, want %q", status, "unliked")
		}

		w3 := doRequest(router, http.MethodPost, path, "", payload)
		if status := parseJSON(t, w3)["status"]; status != "liked" {
			t.Errorf("3回目のstatus = %v, want %q", status, "liked")
		}

		if likes := s.store.GetLikesByMedia(media.ID); len(likes) != 1 {
			t.Errorf("最終的ないいね数 = %d, want 1", len(likes))
		}
	})

	t.Run("存在しないメディアで404が返ること", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodPost, "/api/media/unknown/likes/toggle", "", map[string]any{
			"visitorId": "v1",
		})

		if w.Code != http.StatusNotFound {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}
