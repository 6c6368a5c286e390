package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// OwnerClaims はギャラリー所有者トークンのクレーム（ペイロード）を表す。
type OwnerClaims struct {
	jwt.RegisteredClaims
	// GalleryID はトークンが管理権限を持つギャラリーのID。
	GalleryID string `json:"gallery_id"`
	// Email はギャラリー所有者のメールアドレス。
	Email string `json:"email"`
}

// ownerTokenTTL は所有者トークンの有効期間。
// イベント後も管理パネルを使えるよう長めに設定している。
const ownerTokenTTL = 30 * 24 * time.Hour

// GenerateOwnerToken はギャラリー所有者トークンを生成する。
// ギャラリー作成時に発行し、管理操作のAuthorizationヘッダーで使用する。
func GenerateOwnerToken(secret, galleryID, email string) (string, error) {
	claims := OwnerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ownerTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "omoide",
		},
		GalleryID: galleryID,
		Email:     email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("所有者トークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// OwnerAuth はギャラリー所有者トークンを検証するGinミドルウェアを返す。
// 検証に成功した場合、コンテキストに "gallery_id" と "owner_email" を設定する。
// トークンがどのギャラリーの所有者かの照合はハンドラ側の責務。
func OwnerAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorizationヘッダーが必要です",
			})
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Bearer トークン形式が不正です",
			})
			return
		}

		claims := &OwnerClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "トークンが無効です",
			})
			return
		}

		c.Set("gallery_id", claims.GalleryID)
		c.Set("owner_email", claims.Email)
		c.Next()
	}
}

// GetOwnerGalleryID はGinコンテキストから所有者トークンのギャラリーIDを取得する。
// OwnerAuthミドルウェアが事前に適用されている必要がある。
func GetOwnerGalleryID(c *gin.Context) string {
	galleryID, _ := c.Get("gallery_id")
	if id, ok := galleryID.(string); ok {
		return id
	}
	return ""
}
