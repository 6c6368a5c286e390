package storage

import "time"

// GalleryTheme はギャラリーのテーマを表す。
type GalleryTheme string

const (
	// ThemeWedding は結婚式テーマを表す。
	ThemeWedding GalleryTheme = "wedding"
	// ThemeBirthday は誕生日テーマを表す。
	ThemeBirthday GalleryTheme = "birthday"
	// ThemeVacation は旅行テーマを表す。
	ThemeVacation GalleryTheme = "vacation"
	// ThemeCustom は自由入力テーマを表す。CustomThemeフィールドと併用する。
	ThemeCustom GalleryTheme = "custom"
)

// MediaType はメディアの種類を表す。
type MediaType string

const (
	// MediaTypePhoto は写真を表す。
	MediaTypePhoto MediaType = "photo"
	// MediaTypeVideo は動画を表す。
	MediaTypeVideo MediaType = "video"
	// MediaTypeStory はストーリー（24時間で期限切れとなる投稿）を表す。
	MediaTypeStory MediaType = "story"
)

// SpotifyConfig はギャラリーの音楽連携設定。
type SpotifyConfig struct {
	// AccessToken はSpotify APIのアクセストークン。
	AccessToken string `json:"accessToken,omitempty"`
	// PlaylistID は連携対象のプレイリストID。
	PlaylistID string `json:"playlistId,omitempty"`
}

// Gallery は1つのイベントに属するメディアの集まりを表す。
type Gallery struct {
	// ID はギャラリーの一意識別子。作成後は不変。
	ID string `json:"id"`
	// Name はギャラリー名。
	Name string `json:"name"`
	// OwnerEmail はギャラリー所有者のメールアドレス。
	OwnerEmail string `json:"ownerEmail"`
	// Theme はギャラリーのテーマ。
	Theme GalleryTheme `json:"theme"`
	// CustomTheme はTheme=customの場合のテーマ名。
	CustomTheme string `json:"customTheme,omitempty"`
	// ProfileImage はプロフィール画像のURL。
	ProfileImage string `json:"profileImage,omitempty"`
	// Bio はギャラリーの紹介文。
	Bio string `json:"bio,omitempty"`
	// IsLive はギャラリーが公開中かどうか。作成時のデフォルトはtrue。
	IsLive bool `json:"isLive"`
	// CreatedAt は作成日時。更新操作で変更されない。
	CreatedAt time.Time `json:"createdAt"`
	// SpotifyConfig は音楽連携設定。未設定の場合はnil。
	SpotifyConfig *SpotifyConfig `json:"spotifyConfig,omitempty"`
}

// Visitor はアカウントを持たないゲストを表す。
// 端末IDとフィンガープリントの組で再訪を識別する。
type Visitor struct {
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
	CreatedAt time.Time `json:"createdAt"`
	// LastActive は最終アクティビティ日時。活動のたびに更新される。
	LastActive time.Time `json:"lastActive"`
}

// Media は訪問者がアップロードした写真・動画・ストーリーを表す。
type Media struct {
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
	Type MediaType `json:"type"`
	// Caption はキャプション。
	Caption string `json:"caption,omitempty"`
	// CreatedAt は投稿日時。
	CreatedAt time.Time `json:"createdAt"`
	// ExpiresAt は期限切れ日時。ストーリーのみ設定され、それ以外はnil。
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Comment はメディアへのコメントを表す。
type Comment struct {
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
	CreatedAt time.Time `json:"createdAt"`
}

// Like はメディアへのいいねを表す。
type Like struct {
	// ID はいいねの一意識別子。
	ID string `json:"id"`
	// MediaID はいいね対象メディアのID。
	MediaID string `json:"mediaId"`
	// GalleryID は所属するギャラリーのID。
	GalleryID string `json:"galleryId"`
	// VisitorID はいいねした訪問者のID。
	VisitorID string `json:"visitorId"`
	// CreatedAt はいいねした日時。
	CreatedAt time.Time `json:"createdAt"`
}

// MusicRequest は訪問者からの楽曲リクエストを表す。
type MusicRequest struct {
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
	// Approved は所有者が承認済みかどうか。作成時はfalse。
	Approved bool `json:"approved"`
	// CreatedAt はリクエスト日時。
	CreatedAt time.Time `json:"createdAt"`
}

// TimelineEntry はイベント当日のタイムライン項目を表す。
type TimelineEntry struct {
	// ID は項目の一意識別子。
	ID string `json:"id"`
	// GalleryID は所属するギャラリーのID。
	GalleryID string `json:"galleryId"`
	// Title は項目のタイトル。
	Title string `json:"title"`
	// Description は項目の説明。
	Description string `json:"description"`
	// Date は表示用の日付・時刻文字列。
	Date string `json:"date"`
	// Image は項目に添える画像のURL。
	Image string `json:"image,omitempty"`
	// Order はタイムライン内の表示順。
	Order int `json:"order"`
	// CreatedAt は作成日時。
	CreatedAt time.Time `json:"createdAt"`
}

// User は旧来のユーザーレコードを表す。
// ギャラリードメインからは参照されないが、互換性のために保持している。
type User struct {
	// ID は自動採番されるユーザーID。
	ID int64 `json:"id"`
	// Username はユーザー名。
	Username string `json:"username"`
	// Email はメールアドレス。
	Email string `json:"email"`
	// CreatedAt は登録日時。
	CreatedAt time.Time `json:"createdAt"`
}
