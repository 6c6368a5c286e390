package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/omoide/internal/storage"
	"github.com/nao1215/omoide/pkg/middleware"
)

// timeFormat はレスポンスの日時フォーマット。
const timeFormat = "2006-01-02T15:04:05Z"

// storyTTL はストーリーの有効期間。作成からこの時間が経過すると
// フィードとストーリー一覧から除外される。
const storyTTL = 24 * time.Hour

// Server はギャラリーサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// store はインメモリデータストア。
	store *storage.Store
	// jwtSecret は所有者トークンの署名鍵。
	jwtSecret string
	// now は現在時刻の取得関数。テスト時に差し替える。
	now func() time.Time
}

// NewServer は新しいギャラリーサーバーを生成する。
// 所有者トークンの署名鍵はJWT_SECRET、CORSの許可オリジンは
// FRONTEND_URL環境変数から読み込む。
func NewServer(port string, store *storage.Store) *Server {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-key"
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "*"
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{frontendURL}))

	s := &Server{
		router:    router,
		port:      port,
		store:     store,
		jwtSecret: jwtSecret,
		now:       time.Now,
	}
	s.setupRoutes()

	return s
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// SetNowFunc はサーバーとストアの現在時刻取得関数をまとめて差し替える。
// ストーリーの期限算出と期限切れ判定が同じ時計を参照するようにする。
func (s *Server) SetNowFunc(now func() time.Time) {
	s.now = now
	s.store.SetNowFunc(now)
}

// setupRoutes はAPIルーティングを設定する。
// 所有者トークンが必要なのはギャラリー設定の更新、楽曲リクエストの
// 承認・削除、タイムラインの変更のみ。それ以外は訪問者が認証なしで使う。
func (s *Server) setupRoutes() {
	ownerAuth := middleware.OwnerAuth(s.jwtSecret)

	api := s.router.Group("/api")
	{
		galleries := api.Group("/galleries")
		{
			// ギャラリー作成（所有者トークンを発行する）
			galleries.POST("", s.handleCreateGallery())
			// ギャラリー取得
			galleries.GET("/:galleryId", s.handleGetGallery())
			// ギャラリー設定更新
			galleries.PUT("/:galleryId", ownerAuth, s.handleUpdateGallery())
			// 訪問者登録（再訪の場合は既存の訪問者を返す）
			galleries.POST("/:galleryId/visitors", s.handleRegisterVisitor())
			// メディア一覧取得
			galleries.GET("/:galleryId/media", s.handleListMedia())
			// メディア投稿
			galleries.POST("/:galleryId/media", s.handleCreateMedia())
			// アクティブなストーリー一覧取得
			galleries.GET("/:galleryId/stories", s.handleListStories())
			// 楽曲リクエスト一覧取得
			galleries.GET("/:galleryId/music-requests", s.handleListMusicRequests())
			// 楽曲リクエスト作成
			galleries.POST("/:galleryId/music-requests", s.handleCreateMusicRequest())
			// タイムライン取得
			galleries.GET("/:galleryId/timeline", s.handleListTimeline())
			// タイムライン項目作成
			galleries.POST("/:galleryId/timeline", ownerAuth, s.handleCreateTimelineEntry())
		}

		media := api.Group("/media")
		{
			// メディア削除（投稿者本人のみ）
			media.DELETE("/:mediaId", s.handleDeleteMedia())
			// いいね作成
			media.POST("/:mediaId/likes", s.handleCreateLike())
			// いいね取り消し
			media.DELETE("/:mediaId/likes", s.handleDeleteLike())
			// いいねのトグル
			media.POST("/:mediaId/likes/toggle", s.handleToggleLike())
			// コメント一覧取得
			media.GET("/:mediaId/comments", s.handleListComments())
			// コメント投稿
			media.POST("/:mediaId/comments", s.handleCreateComment())
		}

		// コメント削除（投稿者本人のみ）
		api.DELETE("/comments/:commentId", s.handleDeleteComment())

		musicRequests := api.Group("/music-requests")
		{
			// 楽曲リクエスト承認
			musicRequests.POST("/:requestId/approve", ownerAuth, s.handleApproveMusicRequest())
			// 楽曲リクエスト削除
			musicRequests.DELETE("/:requestId", ownerAuth, s.handleDeleteMusicRequest())
		}

		timeline := api.Group("/timeline")
		{
			// タイムライン項目更新
			timeline.PUT("/:entryId", ownerAuth, s.handleUpdateTimelineEntry())
			// タイムライン項目削除
			timeline.DELETE("/:entryId", ownerAuth, s.handleDeleteTimelineEntry())
		}
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "omoide"})
	})
}

// requireGalleryOwner はリクエストの所有者トークンが指定ギャラリーの
// ものであるかを確認する。別のギャラリーのトークンの場合は403を返し、
// falseを返す。OwnerAuthミドルウェアの適用が前提。
func requireGalleryOwner(c *gin.Context, galleryID string) bool {
	if middleware.GetOwnerGalleryID(c) != galleryID {
		c.JSON(http.StatusForbidden, gin.H{"error": "このギャラリーへのアクセス権がありません"})
		return false
	}
	return true
}
