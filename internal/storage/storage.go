package storage

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound は操作対象のレコードが存在しないことを表す。
// 呼び出し側は errors.Is で判定する。
var ErrNotFound = errors.New("record not found")

// Store はすべてのエンティティコレクションを保持するインメモリリポジトリ。
// 各操作は単一のクリティカルセクションとして実行されるため、
// いいねのトグルや未登録時作成、カスケード削除の途中状態が観測されることはない。
type Store struct {
	// mu は全コレクションへの並行アクセスを保護するミューテックス。
	mu sync.RWMutex
	// now は現在時刻の取得関数。テスト時に差し替える。
	now func() time.Time

	galleries       map[string]Gallery
	visitors        map[string]Visitor
	media           map[string]Media
	comments        map[string]Comment
	likes           map[string]Like
	musicRequests   map[string]MusicRequest
	timelineEntries map[string]TimelineEntry

	// users は旧来のユーザーコレクション。IDは連番で採番する。
	users      map[int64]User
	nextUserID int64
}

// New は空のStoreを生成する。
// サーバー起動時に1度だけ生成し、ルーティング層へ注入して使う。
func New() *Store {
	return &Store{
		now:             time.Now,
		galleries:       make(map[string]Gallery),
		visitors:        make(map[string]Visitor),
		media:           make(map[string]Media),
		comments:        make(map[string]Comment),
		likes:           make(map[string]Like),
		musicRequests:   make(map[string]MusicRequest),
		timelineEntries: make(map[string]TimelineEntry),
		users:           make(map[int64]User),
		nextUserID:      1,
	}
}

// SetNowFunc は現在時刻の取得関数を差し替える。
// ストーリーの期限切れ判定をテストするために使用する。
func (s *Store) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// CreateGalleryParams はギャラリー作成の入力。
type CreateGalleryParams struct {
	// ID は呼び出し側が指定するギャラリーID。空の場合はUUIDを採番する。
	// 既存IDを指定した場合は上書きする（後勝ち）。
	ID string
	// Name はギャラリー名。
	Name string
	// OwnerEmail は所有者のメールアドレス。
	OwnerEmail string
	// Theme はギャラリーのテーマ。
	Theme GalleryTheme
	// CustomTheme はTheme=customの場合のテーマ名。
	CustomTheme string
	// ProfileImage はプロフィール画像のURL。
	ProfileImage string
	// Bio はギャラリーの紹介文。
	Bio string
	// SpotifyConfig は音楽連携設定。
	SpotifyConfig *SpotifyConfig
}

// CreateGallery は新しいギャラリーを作成する。
// IDと作成日時はストア側で確定し、IsLiveはtrueで初期化する。
func (s *Store) CreateGallery(params CreateGalleryParams) Gallery {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := params.ID
	if id == "" {
		id = uuid.New().String()
	}

	gallery := Gallery{
		ID:            id,
		Name:          params.Name,
		OwnerEmail:    params.OwnerEmail,
		Theme:         params.Theme,
		CustomTheme:   params.CustomTheme,
		ProfileImage:  params.ProfileImage,
		Bio:           params.Bio,
		IsLive:        true,
		CreatedAt:     s.now().UTC(),
		SpotifyConfig: params.SpotifyConfig,
	}
	s.galleries[id] = gallery
	return gallery
}

// GetGallery は指定IDのギャラリーを返す。
// 存在しない場合はErrNotFoundを返す。
func (s *Store) GetGallery(id string) (Gallery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gallery, ok := s.galleries[id]
	if !ok {
		return Gallery{}, fmt.Errorf("ギャラリー %s: %w", id, ErrNotFound)
	}
	return gallery, nil
}

// UpdateGalleryParams はギャラリーの部分更新の入力。
// nilのフィールドは変更しない。IDと作成日時は更新できない。
type UpdateGalleryParams struct {
	// Name はギャラリー名。
	Name *string
	// OwnerEmail は所有者のメールアドレス。
	OwnerEmail *string
	// Theme はギャラリーのテーマ。
	Theme *GalleryTheme
	// CustomTheme はTheme=customの場合のテーマ名。
	CustomTheme *string
	// ProfileImage はプロフィール画像のURL。
	ProfileImage *string
	// Bio はギャラリーの紹介文。
	Bio *string
	// IsLive はギャラリーが公開中かどうか。
	IsLive *bool
	// SpotifyConfig は音楽連携設定。
	SpotifyConfig *SpotifyConfig
}

// UpdateGallery は既存ギャラリーへ部分更新をマージして返す。
// 対象が存在しない場合はErrNotFoundを返す。
func (s *Store) UpdateGallery(id string, params UpdateGalleryParams) (Gallery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gallery, ok := s.galleries[id]
	if !ok {
		return Gallery{}, fmt.Errorf("ギャラリー %s: %w", id, ErrNotFound)
	}

	if params.Name != nil {
		gallery.Name = *params.Name
	}
	if params.OwnerEmail != nil {
		gallery.OwnerEmail = *params.OwnerEmail
	}
	if params.Theme != nil {
		gallery.Theme = *params.Theme
	}
	if params.CustomTheme != nil {
		gallery.CustomTheme = *params.CustomTheme
	}
	if params.ProfileImage != nil {
		gallery.ProfileImage = *params.ProfileImage
	}
	if params.Bio != nil {
		gallery.Bio = *params.Bio
	}
	if params.IsLive != nil {
		gallery.IsLive = *params.IsLive
	}
	if params.SpotifyConfig != nil {
		gallery.SpotifyConfig = params.SpotifyConfig
	}

	s.galleries[id] = gallery
	return gallery, nil
}

// CreateVisitorParams は訪問者作成の入力。
type CreateVisitorParams struct {
	// GalleryID は所属するギャラリーのID。
	GalleryID string
	// Name は訪問者の表示名。
	Name string
	// DeviceID は端末の識別子。
	DeviceID string
	// Fingerprint はブラウザフィンガープリント。
	Fingerprint string
}

// CreateVisitor は新しい訪問者を作成する。
// (galleryId, deviceId, fingerprint) の一意性は検証しない。呼び出し側は
// FindVisitorByDeviceで存在確認するか、RegisterVisitorを使うこと。
func (s *Store) CreateVisitor(params CreateVisitorParams) Visitor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createVisitorLocked(params)
}

func (s *Store) createVisitorLocked(params CreateVisitorParams) Visitor {
	now := s.now().UTC()
	visitor := Visitor{
		ID:          uuid.New().String(),
		GalleryID:   params.GalleryID,
		Name:        params.Name,
		DeviceID:    params.DeviceID,
		Fingerprint: params.Fingerprint,
		CreatedAt:   now,
		LastActive:  now,
	}
	s.visitors[visitor.ID] = visitor
	return visitor
}

// FindVisitorByDevice は端末IDとフィンガープリントの組で訪問者を検索する。
// 見つからない場合はErrNotFoundを返す。
func (s *Store) FindVisitorByDevice(galleryID, deviceID, fingerprint string) (Visitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findVisitorByDeviceLocked(galleryID, deviceID, fingerprint)
}

func (s *Store) findVisitorByDeviceLocked(galleryID, deviceID, fingerprint string) (Visitor, error) {
	for _, v := range s.visitors {
		if v.GalleryID == galleryID && v.DeviceID == deviceID && v.Fingerprint == fingerprint {
			return v, nil
		}
	}
	return Visitor{}, fmt.Errorf("訪問者 (gallery=%s, device=%s): %w", galleryID, deviceID, ErrNotFound)
}

// UpdateVisitorActivity は訪問者の最終アクティビティ日時を現在時刻へ更新する。
// 対象が存在しない場合はErrNotFoundを返す。
func (s *Store) UpdateVisitorActivity(id string) (Visitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	visitor, ok := s.visitors[id]
	if !ok {
		return Visitor{}, fmt.Errorf("訪問者 %s: %w", id, ErrNotFound)
	}
	visitor.LastActive = s.now().UTC()
	s.visitors[id] = visitor
	return visitor, nil
}

// RegisterVisitor は端末IDとフィンガープリントで訪問者を照合し、
// 既存なら最終アクティビティを更新して返し、未登録なら新規作成する。
// 照合と作成を単一のクリティカルセクションで行うため、同時登録で
// 重複レコードが生まれることはない。createdは新規作成時にtrue。
func (s *Store) RegisterVisitor(params CreateVisitorParams) (visitor Visitor, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.findVisitorByDeviceLocked(params.GalleryID, params.DeviceID, params.Fingerprint)
	if err == nil {
		existing.LastActive = s.now().UTC()
		s.visitors[existing.ID] = existing
		return existing, false
	}
	return s.createVisitorLocked(params), true
}

// CreateMediaParams はメディア作成の入力。
type CreateMediaParams struct {
	// GalleryID は所属するギャラリーのID。
	GalleryID string
	// VisitorID は投稿した訪問者のID。
	VisitorID string
	// URL はメディアファイルのURL。
	URL string
	// ThumbnailURL はサムネイル画像のURL。
	ThumbnailURL string
	// Type はメディアの種類。
	Type MediaType
	// Caption はキャプション。
	Caption string
	// ExpiresAt は期限切れ日時。ストーリーの場合のみ呼び出し側が設定する。
	ExpiresAt *time.Time
}

// CreateMedia は新しいメディアを作成する。
// ストーリーの期限（作成から24時間）の算出はルーティング層の責務であり、
// ストアはExpiresAtをそのまま保存する。
func (s *Store) CreateMedia(params CreateMediaParams) Media {
	s.mu.Lock()
	defer s.mu.Unlock()

	media := Media{
		ID:           uuid.New().String(),
		GalleryID:    params.GalleryID,
		VisitorID:    params.VisitorID,
		URL:          params.URL,
		ThumbnailURL: params.ThumbnailURL,
		Type:         params.Type,
		Caption:      params.Caption,
		CreatedAt:    s.now().UTC(),
		ExpiresAt:    params.ExpiresAt,
	}
	s.media[media.ID] = media
	return media
}

// GetMedia は指定IDのメディアを返す。
// 存在しない場合はErrNotFoundを返す。期限切れ判定は行わない。
func (s *Store) GetMedia(id string) (Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	media, ok := s.media[id]
	if !ok {
		return Media{}, fmt.Errorf("メディア %s: %w", id, ErrNotFound)
	}
	return media, nil
}

// GetMediaByGallery はギャラリー内のメディアを新しい順で返す。
// mediaTypeが空でない場合は種類で絞り込む。期限切れのストーリーは除外する。
func (s *Store) GetMediaByGallery(galleryID string, mediaType MediaType) []Media {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	result := make([]Media, 0)
	for _, m := range s.media {
		if m.GalleryID != galleryID {
			continue
		}
		if mediaType != "" && m.Type != mediaType {
			continue
		}
		if !isActive(m, now) {
			continue
		}
		result = append(result, m)
	}
	sortMediaNewestFirst(result)
	return result
}

// GetActiveStories はギャラリー内の期限切れでないストーリーを新しい順で返す。
func (s *Store) GetActiveStories(galleryID string) []Media {
	return s.GetMediaByGallery(galleryID, MediaTypeStory)
}

// isActive はメディアが期限切れでないかを判定する。
// 期限を持たないメディアは常にアクティブ。
func isActive(m Media, now time.Time) bool {
	return m.ExpiresAt == nil || m.ExpiresAt.After(now)
}

// sortMediaNewestFirst はメディアを作成日時の降順に並べ替える。
func sortMediaNewestFirst(media []Media) {
	sort.Slice(media, func(i, j int) bool {
		return media[i].CreatedAt.After(media[j].CreatedAt)
	})
}

// DeleteMedia は指定IDのメディアを削除する。
// 参照するコメントといいねもあわせて削除する。対象が存在しなくてもエラーにしない。
// カスケード全体が単一のクリティカルセクションで実行される。
func (s *Store) DeleteMedia(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.media, id)

	for commentID, c := range s.comments {
		if c.MediaID == id {
			delete(s.comments, commentID)
		}
	}
	for likeID, l := range s.likes {
		if l.MediaID == id {
			delete(s.likes, likeID)
		}
	}
}

// CreateCommentParams はコメント作成の入力。
type CreateCommentParams struct {
	// MediaID はコメント対象メディアのID。
	MediaID string
	// GalleryID は所属するギャラリーのID。
	GalleryID string
	// VisitorID はコメントした訪問者のID。
	VisitorID string
	// Text はコメント本文。
	Text string
}

// CreateComment は新しいコメントを作成する。
func (s *Store) CreateComment(params CreateCommentParams) Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := Comment{
		ID:        uuid.New().String(),
		MediaID:   params.MediaID,
		GalleryID: params.GalleryID,
		VisitorID: params.VisitorID,
		Text:      params.Text,
		CreatedAt: s.now().UTC(),
	}
	s.comments[comment.ID] = comment
	return comment
}

// GetComment は指定IDのコメントを返す。
// 存在しない場合はErrNotFoundを返す。
func (s *Store) GetComment(id string) (Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[id]
	if !ok {
		return Comment{}, fmt.Errorf("コメント %s: %w", id, ErrNotFound)
	}
	return comment, nil
}

// GetCommentsByMedia はメディアへのコメントを古い順（スレッド順）で返す。
func (s *Store) GetCommentsByMedia(mediaID string) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Comment, 0)
	for _, c := range s.comments {
		if c.MediaID == mediaID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// DeleteComment は指定IDのコメントを削除する。
// 対象が存在しなくてもエラーにしない。
func (s *Store) DeleteComment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.comments, id)
}

// CreateLikeParams はいいね作成の入力。
type CreateLikeParams struct {
	// MediaID はいいね対象メディアのID。
	MediaID string
	// GalleryID は所属するギャラリーのID。
	GalleryID string
	// VisitorID はいいねした訪問者のID。
	VisitorID string
}

// CreateLike は新しいいいねを作成する。
// (mediaId, visitorId) の一意性は検証しない。呼び出し側はFindLikeで
// 存在確認するか、ToggleLikeを使うこと。
func (s *Store) CreateLike(params CreateLikeParams) Like {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLikeLocked(params)
}

func (s *Store) createLikeLocked(params CreateLikeParams) Like {
	like := Like{
		ID:        uuid.New().String(),
		MediaID:   params.MediaID,
		GalleryID: params.GalleryID,
		VisitorID: params.VisitorID,
		CreatedAt: s.now().UTC(),
	}
	s.likes[like.ID] = like
	return like
}

// FindLike は (mediaId, visitorId) の組でいいねを検索する。
// 見つからない場合はErrNotFoundを返す。
func (s *Store) FindLike(mediaID, visitorID string) (Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLikeLocked(mediaID, visitorID)
}

func (s *Store) findLikeLocked(mediaID, visitorID string) (Like, error) {
	for _, l := range s.likes {
		if l.MediaID == mediaID && l.VisitorID == visitorID {
			return l, nil
		}
	}
	return Like{}, fmt.Errorf("いいね (media=%s, visitor=%s): %w", mediaID, visitorID, ErrNotFound)
}

// DeleteLike は (mediaId, visitorId) の組で特定されるいいねを削除する。
// 対象が存在しなくてもエラーにしない。
func (s *Store) DeleteLike(mediaID, visitorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if like, err := s.findLikeLocked(mediaID, visitorID); err == nil {
		delete(s.likes, like.ID)
	}
}

// GetLikesByMedia はメディアへのいいねを新しい順で返す。
func (s *Store) GetLikesByMedia(mediaID string) []Like {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Like, 0)
	for _, l := range s.likes {
		if l.MediaID == mediaID {
			result = append(result, l)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// ToggleLike はいいねの有無を反転する。
// 既存のいいねがあれば削除してliked=falseを返し、なければ作成して
// liked=trueを返す。判定と反映を単一のクリティカルセクションで行うため、
// 同時トグルで二重にいいねが残ることはない。
func (s *Store) ToggleLike(params CreateLikeParams) (like Like, liked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, err := s.findLikeLocked(params.MediaID, params.VisitorID); err == nil {
		delete(s.likes, existing.ID)
		return Like{}, false
	}
	return s.createLikeLocked(params), true
}

// CreateMusicRequestParams は楽曲リクエスト作成の入力。
type CreateMusicRequestParams struct {
	// GalleryID は所属するギャラリーのID。
	GalleryID string
	// VisitorID はリクエストした訪問者のID。
	VisitorID string
	// SpotifyTrackID はSpotify上の楽曲ID。
	SpotifyTrackID string
	// TrackName は楽曲名。
	TrackName string
	// ArtistName はアーティスト名。
	ArtistName string
	// AlbumCover はアルバムカバー画像のURL。
	AlbumCover string
}

// CreateMusicRequest は新しい楽曲リクエストを未承認状態で作成する。
func (s *Store) CreateMusicRequest(params CreateMusicRequestParams) MusicRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	request := MusicRequest{
		ID:             uuid.New().String(),
		GalleryID:      params.GalleryID,
		VisitorID:      params.VisitorID,
		SpotifyTrackID: params.SpotifyTrackID,
		TrackName:      params.TrackName,
		ArtistName:     params.ArtistName,
		AlbumCover:     params.AlbumCover,
		Approved:       false,
		CreatedAt:      s.now().UTC(),
	}
	s.musicRequests[request.ID] = request
	return request
}

// GetMusicRequestsByGallery はギャラリーへの楽曲リクエストを古い順で返す。
// approvedOnlyがtrueの場合は承認済みのみ返す。
func (s *Store) GetMusicRequestsByGallery(galleryID string, approvedOnly bool) []MusicRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]MusicRequest, 0)
	for _, r := range s.musicRequests {
		if r.GalleryID != galleryID {
			continue
		}
		if approvedOnly && !r.Approved {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// ApproveMusicRequest は楽曲リクエストを承認済みにする。
// 対象が存在しない場合はErrNotFoundを返す。
func (s *Store) ApproveMusicRequest(id string) (MusicRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.musicRequests[id]
	if !ok {
		return MusicRequest{}, fmt.Errorf("楽曲リクエスト %s: %w", id, ErrNotFound)
	}
	request.Approved = true
	s.musicRequests[id] = request
	return request, nil
}

// GetMusicRequest は指定IDの楽曲リクエストを返す。
// 存在しない場合はErrNotFoundを返す。
func (s *Store) GetMusicRequest(id string) (MusicRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.musicRequests[id]
	if !ok {
		return MusicRequest{}, fmt.Errorf("楽曲リクエスト %s: %w", id, ErrNotFound)
	}
	return request, nil
}

// DeleteMusicRequest は指定IDの楽曲リクエストを削除する。
// 対象が存在しなくてもエラーにしない。
func (s *Store) DeleteMusicRequest(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.musicRequests, id)
}

// CreateTimelineEntryParams はタイムライン項目作成の入力。
type CreateTimelineEntryParams struct {
	// GalleryID は所属するギャラリーのID。
	GalleryID string
	// Title は項目のタイトル。
	Title string
	// Description は項目の説明。
	Description string
	// Date は表示用の日付・時刻文字列。
	Date string
	// Image は項目に添える画像のURL。
	Image string
	// Order はタイムライン内の表示順。
	Order int
}

// CreateTimelineEntry は新しいタイムライン項目を作成する。
func (s *Store) CreateTimelineEntry(params CreateTimelineEntryParams) TimelineEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := TimelineEntry{
		ID:          uuid.New().String(),
		GalleryID:   params.GalleryID,
		Title:       params.Title,
		Description: params.Description,
		Date:        params.Date,
		Image:       params.Image,
		Order:       params.Order,
		CreatedAt:   s.now().UTC(),
	}
	s.timelineEntries[entry.ID] = entry
	return entry
}

// GetTimelineEntry は指定IDのタイムライン項目を返す。
// 存在しない場合はErrNotFoundを返す。
func (s *Store) GetTimelineEntry(id string) (TimelineEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.timelineEntries[id]
	if !ok {
		return TimelineEntry{}, fmt.Errorf("タイムライン項目 %s: %w", id, ErrNotFound)
	}
	return entry, nil
}

// GetTimelineByGallery はギャラリーのタイムライン項目を表示順で返す。
// 表示順が同じ場合は作成日時の昇順とする。
func (s *Store) GetTimelineByGallery(galleryID string) []TimelineEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]TimelineEntry, 0)
	for _, e := range s.timelineEntries {
		if e.GalleryID == galleryID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// UpdateTimelineEntryParams はタイムライン項目の部分更新の入力。
// nilのフィールドは変更しない。
type UpdateTimelineEntryParams struct {
	// Title は項目のタイトル。
	Title *string
	// Description は項目の説明。
	Description *string
	// Date は表示用の日付・時刻文字列。
	Date *string
	// Image は項目に添える画像のURL。
	Image *string
	// Order はタイムライン内の表示順。
	Order *int
}

// UpdateTimelineEntry は既存のタイムライン項目へ部分更新をマージして返す。
// 対象が存在しない場合はErrNotFoundを返す。
func (s *Store) UpdateTimelineEntry(id string, params UpdateTimelineEntryParams) (TimelineEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.timelineEntries[id]
	if !ok {
		return TimelineEntry{}, fmt.Errorf("タイムライン項目 %s: %w", id, ErrNotFound)
	}

	if params.Title != nil {
		entry.Title = *params.Title
	}
	if params.Description != nil {
		entry.Description = *params.Description
	}
	if params.Date != nil {
		entry.Date = *params.Date
	}
	if params.Image != nil {
		entry.Image = *params.Image
	}
	if params.Order != nil {
		entry.Order = *params.Order
	}

	s.timelineEntries[id] = entry
	return entry, nil
}

// DeleteTimelineEntry は指定IDのタイムライン項目を削除する。
// 対象が存在しなくてもエラーにしない。
func (s *Store) DeleteTimelineEntry(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.timelineEntries, id)
}

// CreateUserParams は旧来のユーザー作成の入力。
type CreateUserParams struct {
	// Username はユーザー名。
	Username string
	// Email はメールアドレス。
	Email string
}

// CreateUser は旧来のユーザーを作成する。IDは連番で採番する。
func (s *Store) CreateUser(params CreateUserParams) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := User{
		ID:        s.nextUserID,
		Username:  params.Username,
		Email:     params.Email,
		CreatedAt: s.now().UTC(),
	}
	s.nextUserID++
	s.users[user.ID] = user
	return user
}

// GetUser は指定IDの旧来ユーザーを返す。
// 存在しない場合はErrNotFoundを返す。
func (s *Store) GetUser(id int64) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return User{}, fmt.Errorf("ユーザー %d: %w", id, ErrNotFound)
	}
	return user, nil
}

// GetUserByUsername はユーザー名で旧来ユーザーを検索する。
// 見つからない場合はErrNotFoundを返す。
func (s *Store) GetUserByUsername(username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("ユーザー %s: %w", username, ErrNotFound)
}
