package storage

import (
	"errors"
	"testing"
	"time"
)

// fixedClock は固定時刻を返すnow関数を生成するヘルパー。
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// TestCreateAndGetGallery はギャラリーの作成と取得を検証する。
func TestCreateAndGetGallery(t *testing.T) {
	t.Parallel()

	t.Run("作成したギャラリーを同じ内容で取得できる", func(t *testing.T) {
		t.Parallel()
		s := New()

		created := s.CreateGallery(CreateGalleryParams{
			Name:       "Anna & Max Hochzeit",
			OwnerEmail: "anna@example.com",
			Theme:      ThemeWedding,
			Bio:        "Willkommen!",
		})

		if created.ID == "" {
			t.Fatal("IDが採番されていない")
		}
		if !created.IsLive {
			t.Error("IsLiveがtrueで初期化されていない")
		}
		if created.CreatedAt.IsZero() {
			t.Error("CreatedAtが設定されていない")
		}

		got, err := s.GetGallery(created.ID)
		if err != nil {
			t.Fatalf("GetGallery()でエラーが発生: %v", err)
		}
		if got != created {
			t.Errorf("取得結果が作成結果と一致しない: got %+v, want %+v", got, created)
		}
	})

	t.Run("呼び出し側指定のIDがそのまま使われる", func(t *testing.T) {
		t.Parallel()
		s := New()

		created := s.CreateGallery(CreateGalleryParams{
			ID:         "gallery-fixed-id",
			Name:       "共有URL用ギャラリー",
			OwnerEmail: "owner@example.com",
			Theme:      ThemeBirthday,
		})
		if created.ID != "gallery-fixed-id" {
			t.Errorf("ID = %q, want %q", created.ID, "gallery-fixed-id")
		}
	})

	t.Run("同じIDでの再作成は後勝ちで上書きされる", func(t *testing.T) {
		t.Parallel()
		s := New()

		s.CreateGallery(CreateGalleryParams{ID: "dup", Name: "先", OwnerEmail: "a@example.com", Theme: ThemeWedding})
		s.CreateGallery(CreateGalleryParams{ID: "dup", Name: "後", OwnerEmail: "b@example.com", Theme: ThemeVacation})

		got, err := s.GetGallery("dup")
		if err != nil {
			t.Fatalf("GetGallery()でエラーが発生: %v", err)
		}
		if got.Name != "後" {
			t.Errorf("Name = %q, want %q", got.Name, "後")
		}
	})

	t.Run("存在しないIDはErrNotFound", func(t *testing.T) {
		t.Parallel()
		s := New()

		_, err := s.GetGallery("nonexistent")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

// TestUpdateGallery はギャラリーの部分更新を検証する。
func TestUpdateGallery(t *testing.T) {
	t.Parallel()

	t.Run("指定フィールドのみ更新されIDと作成日時は変わらない", func(t *testing.T) {
		t.Parallel()
		s := New()

		created := s.CreateGallery(CreateGalleryParams{
			Name:       "元の名前",
			OwnerEmail: "owner@example.com",
			Theme:      ThemeWedding,
			Bio:        "元の紹介文",
		})

		bio := "x"
		updated, err := s.UpdateGallery(created.ID, UpdateGalleryParams{Bio: &bio})
		if err != nil {
			t.Fatalf("UpdateGallery()でエラーが発生: %v", err)
		}

		if updated.Bio != "x" {
			t.Errorf("Bio = %q, want %q", updated.Bio, "x")
		}
		if updated.Name != "元の名前" {
			t.Errorf("Nameが変更された: %q", updated.Name)
		}
		if updated.ID != created.ID {
			t.Errorf("IDが変更された: %q", updated.ID)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("CreatedAtが変更された: %v", updated.CreatedAt)
		}
	})

	t.Run("公開状態と音楽連携設定を更新できる", func(t *testing.T) {
		t.Parallel()
		s := New()

		created := s.CreateGallery(CreateGalleryParams{Name: "G", OwnerEmail: "o@example.com", Theme: ThemeCustom, CustomTheme: "卒業式"})

		isLive := false
		updated, err := s.UpdateGallery(created.ID, UpdateGalleryParams{
			IsLive:        &isLive,
			SpotifyConfig: &SpotifyConfig{PlaylistID: "playlist-1"},
		})
		if err != nil {
			t.Fatalf("UpdateGallery()でエラーが発生: %v", err)
		}
		if updated.IsLive {
			t.Error("IsLiveがfalseに更新されていない")
		}
		if updated.SpotifyConfig == nil || updated.SpotifyConfig.PlaylistID != "playlist-1" {
			t.Errorf("SpotifyConfig = %+v, want PlaylistID=playlist-1", updated.SpotifyConfig)
		}
	})

	t.Run("存在しないIDの更新はErrNotFound", func(t *testing.T) {
		t.Parallel()
		s := New()

		name := "x"
		_, err := s.UpdateGallery("nonexistent", UpdateGalleryParams{Name: &name})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

// TestVisitorLookup は端末IDとフィンガープリントによる訪問者照合を検証する。
func TestVisitorLookup(t *testing.T) {
	t.Parallel()

	t.Run("作成後に同じ組で検索すると同じ訪問者が返る", func(t *testing.T) {
		t.Parallel()
		s := New()

		created := s.CreateVisitor(CreateVisitorParams{
			GalleryID:   "gallery-1",
			Name:        "Anna Schmidt",
			DeviceID:    "device-1",
			Fingerprint: "fp-1",
		})

		got, err := s.FindVisitorByDevice("gallery-1", "device-1", "fp-1")
		if err != nil {
			t.Fatalf("FindVisitorByDevice()でエラーが発生: %v", err)
		}
		if got.ID != created.ID {
			t.Errorf("ID = %q, want %q", got.ID, created.ID)
		}
	})

	t.Run("別の組では見つからない", func(t *testing.T) {
		t.Parallel()
		s := New()

		s.CreateVisitor(CreateVisitorParams{GalleryID: "gallery-1", Name: "A", DeviceID: "device-1", Fingerprint: "fp-1"})

		if _, err := s.FindVisitorByDevice("gallery-1", "device-1", "fp-other"); !errors.Is(err, ErrNotFound) {
			t.Errorf("フィンガープリント違い: err = %v, want ErrNotFound", err)
		}
		if _, err := s.FindVisitorByDevice("gallery-1", "device-other", "fp-1"); !errors.Is(err, ErrNotFound) {
			t.Errorf("端末ID違い: err = %v, want ErrNotFound", err)
		}
		if _, err := s.FindVisitorByDevice("gallery-other", "device-1", "fp-1"); !errors.Is(err, ErrNotFound) {
			t.Errorf("ギャラリー違い: err = %v, want ErrNotFound", err)
		}
	})
}

// TestUpdateVisitorActivity は最終アクティビティ更新を検証する。
func TestUpdateVisitorActivity(t *testing.T) {
	t.Parallel()

	t.Run("lastActiveが現在時刻へ進む", func(t *testing.T) {
		t.Parallel()
		s := New()

		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		s.SetNowFunc(fixedClock(base))
		created := s.CreateVisitor(CreateVisitorParams{GalleryID: "g", Name: "A", DeviceID: "d", Fingerprint: "f"})

		s.SetNowFunc(fixedClock(base.Add(1 * time.Hour)))
		updated, err := s.UpdateVisitorActivity(created.ID)
		if err != nil {
			t.Fatalf("UpdateVisitorActivity()でエラーが発生: %v", err)
		}
		if !updated.LastActive.Equal(base.Add(1 * time.Hour)) {
			t.Errorf("LastActive = %v, want %v", updated.LastActive, base.Add(1*time.Hour))
		}
		if !updated.CreatedAt.Equal(base) {
			t.Errorf("CreatedAtが変更された: %v", updated.CreatedAt)
		}
	})

	t.Run("存在しない訪問者はErrNotFound", func(t *testing.T) {
		t.Parallel()
		s := New()

		if _, err := s.UpdateVisitorActivity("nonexistent"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

// TestRegisterVisitor は未登録時作成の一括操作を検証する。
func TestRegisterVisitor(t *testing.T) {
	t.Parallel()

	t.Run("未登録の場合は新規作成される", func(t *testing.T) {
		t.Parallel()
		s := New()

		visitor, created := s.RegisterVisitor(CreateVisitorParams{GalleryID: "g", Name: "A", DeviceID: "d", Fingerprint: "f"})
		if !created {
			t.Error("created = false, want true")
		}
		if visitor.ID == "" {
			t.Error("IDが採番されていない")
		}
	})

	t.Run("登録済みの場合は同じ訪問者が返りlastActiveが更新される", func(t *testing.T) {
		t.Parallel()
		s := New()

		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		s.SetNowFunc(fixedClock(base))
		first, _ := s.RegisterVisitor(CreateVisitorParams{GalleryID: "g", Name: "A", DeviceID: "d", Fingerprint: "f"})

		s.SetNowFunc(fixedClock(base.Add(30 * time.Minute)))
		second, created := s.RegisterVisitor(CreateVisitorParams{GalleryID: "g", Name: "A", DeviceID: "d", Fingerprint: "f"})

		if created {
			t.Error("created = true, want false")
		}
		if second.ID != first.ID {
			t.Errorf("ID = %q, want %q", second.ID, first.ID)
		}
		if !second.LastActive.Equal(base.Add(30 * time.Minute)) {
			t.Errorf("LastActive = %v, want %v", second.LastActive, base.Add(30*time.Minute))
		}
	})
}

// TestGetMediaByGallery はメディア一覧の絞り込みと並び順を検証する。
func TestGetMediaByGallery(t *testing.T) {
	t.Parallel()

	t.Run("作成日時の降順で返る", func(t *testing.T) {
		t.Parallel()
		s := New()

		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			s.SetNowFunc(fixedClock(base.Add(time.Duration(i) * time.Hour)))
			s.CreateMedia(CreateMediaParams{GalleryID: "g", VisitorID: "v", URL: "https://example.com/p.jpg", Type: MediaTypePhoto})
		}

		media := s.GetMediaByGallery("g", "")
		if len(media) != 3 {
			t.Fatalf("件数 = %d, want 3", len(media))
		}
		for i := 0; i < len(media)-1; i++ {
			if media[i].CreatedAt.Before(media[i+1].CreatedAt) {
				t.Errorf("降順になっていない: media[%d]=%v, media[%d]=%v", i, media[i].CreatedAt, i+1, media[i+1].CreatedAt)
			}
		}
	})

	t.Run("種類で絞り込める", func(t *testing.T) {
		t.Parallel()
		s := New()

		s.CreateMedia(CreateMediaParams{GalleryID: "g", VisitorID: "v", URL: "u1", Type: MediaTypePhoto})
		s.CreateMedia(CreateMediaParams{GalleryID: "g", VisitorID: "v", URL: "u2", Type: MediaTypeVideo})

		videos := s.GetMediaByGallery("g", MediaTypeVideo)
		if len(videos) != 1 {
			t.Fatalf("件数 = %d, want 1", len(videos))
		}
		if videos[0].Type != MediaTypeVideo {
			t.Errorf("Type = %q, want %q", videos[0].Type, MediaTypeVideo)
		}
	})

	t.Run("他ギャラリーのメディアは含まれない", func(t *testing.T) {
		t.Parallel()
		s := New()

		s.CreateMedia(CreateMediaParams{GalleryID: "g1", VisitorID: "v", URL: "u1", Type: MediaTypePhoto})
		s.CreateMedia(CreateMediaParams{GalleryID: "g2", VisitorID: "v", URL: "u2", Type: MediaTypePhoto})

		if got := len(s.GetMediaByGallery("g1", "")); got != 1 {
			t.Errorf("件数 = %d, want 1", got)
		}
	})
}

// TestStoryExpiry はストーリーの期限切れ除外を検証する。
func TestStoryExpiry(t *testing.T) {
	t.Parallel()

	t.Run("期限内のストーリーはアクティブクエリに含まれる", func(t *testing.T) {
		t.Parallel()
		s := New()

		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		s.SetNowFunc(fixedClock(base))
		expires := base.Add(24 * time.Hour)
		story := s.CreateMedia(CreateMediaParams{
			GalleryID: "g", VisitorID: "v", URL: "u", Type: MediaTypeStory, ExpiresAt: &expires,
		})

		stories := s.GetActiveStories("g")
		if len(stories) != 1 || stories[0].ID != story.ID {
			t.Fatalf("アクティブストーリー = %+v, want 1件(%s)", stories, story.ID)
		}
	})

	t.Run("期限を過ぎるとすべてのアクティブクエリから除外される", func(t *testing.T) {
		t.Parallel()
		s := New()

		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		s.SetNowFunc(fixedClock(base))
		expires := base.Add(24 * time.Hour)
		story := s.CreateMedia(CreateMediaParams{
			GalleryID: "g", VisitorID: "v", URL: "u", Type: MediaTypeStory, ExpiresAt: &expires,
		})

		// 時計を期限の1秒後まで進める
		s.SetNowFunc(fixedClock(expires.Add(1 * time.Second)))

		if got := s.GetActiveStories("g"); len(got) != 0 {
			t.Errorf("GetActiveStories = %d件, want 0", len(got))
		}
		if got := s.GetMediaByGallery("g", ""); len(got) != 0 {
			t.Errorf("GetMediaByGallery = %d件, want 0", len(got))
		}

		// 物理的にはレコードが残っており、直接取得はできる
		if _, err := s.GetMedia(story.ID); err != nil {
			t.Errorf("期限切れ後もGetMediaは成功するべき: %v", err)
		}
	})

	t.Run("期限を持たない写真は除外されない", func(t *testing.T) {
		t.Parallel()
		s := New()

		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		s.SetNowFunc(fixedClock(base))
		s.CreateMedia(CreateMediaParams{GalleryID: "g", VisitorID: "v", URL: "u", Type: MediaTypePhoto})

		s.SetNowFunc(fixedClock(base.Add(100 * 24 * time.Hour)))
		if got := len(s.GetMediaByGallery("g", "")); got != 1 {
			t.Errorf("件数 = %d, want 1", got)
		}
	})
}

// TestDeleteMediaCascade はメディア削除のカスケードを検証する。
func TestDeleteMediaCascade(t *testing.T) {
	t.Parallel()

	t.Run("コメントといいねがあわせて削除される", func(t *testing.T) {
		t.Parallel()
		s := New()

		media := s.CreateMedia(CreateMediaParams{GalleryID: "g", VisitorID: "v1", URL: "u", Type: MediaTypePhoto})
		other := s.CreateMedia(CreateMediaParams{GalleryID: "g", VisitorID: "v1", URL: "u2", Type: MediaTypePhoto})

		c1 := s.CreateComment(CreateCommentParams{MediaID: media.ID, GalleryID: "g", VisitorID: "v2", Text: "すてき！"})
		c2 := s.CreateComment(CreateCommentParams{MediaID: media.ID, GalleryID: "g", VisitorID: "v3", Text: "最高"})
		keep := s.CreateComment(CreateCommentParams{MediaID: other.ID, GalleryID: "g", VisitorID: "v2", Text: "残るコメント"})
		s.CreateLike(CreateLikeParams{MediaID: media.ID, GalleryID: "g", VisitorID: "v2"})
		s.CreateLike(CreateLikeParams{MediaID: other.ID, GalleryID: "g", VisitorID: "v2"})

		s.DeleteMedia(media.ID)

		if _, err := s.GetMedia(media.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("メディアが削除されていない: %v", err)
		}
		for _, id := range []string{c1.ID, c2.ID} {
			if _, err := s.GetComment(id); !errors.Is(err, ErrNotFound) {
				t.Errorf("コメント %s が削除されていない", id)
			}
		}
		if _, err := s.GetComment(keep.ID); err != nil {
			t.Errorf("無関係なコメントが削除された: %v", err)
		}
		if _, err := s.FindLike(media.ID, "v2"); !errors.Is(err, ErrNotFound) {
			t.Error("いいねが削除されていない")
		}
		if _, err := s.FindLike(other.ID, "v2"); err != nil {
			t.Errorf("無関係ないいねが削除された: %v", err)
		}
	})

	t.Run("存在しないIDの削除はエラーにならない", func(t *testing.T) {
		t.Parallel()
		s := New()
		s.DeleteMedia("nonexistent")
	})
}

// TestCommentsOrder はコメントのスレッド順（昇順）を検証する。
func TestCommentsOrder(t *testing.T) {
	t.Parallel()

	s := New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s.SetNowFunc(fixedClock(base.Add(time.Duration(i) * time.Minute)))
		s.CreateComment(CreateCommentParams{MediaID: "m", GalleryID: "g", VisitorID: "v", Text: "c"})
	}

	comments := s.GetCommentsByMedia("m")
	if len(comments) != 3 {
		t.Fatalf("件数 = %d, want 3", len(comments))
	}
	for i := 0; i < len(comments)-1; i++ {
		if comments[i].CreatedAt.After(comments[i+1].CreatedAt) {
			t.Errorf("昇順になっていない: comments[%d]=%v, comments[%d]=%v", i, comments[i].CreatedAt, i+1, comments[i+1].CreatedAt)
		}
	}
}

// TestLikes はいいねの検索・作成・削除を検証する。
func TestLikes(t *testing.T) {
	t.Parallel()

	t.Run("作成後のFindLikeは非空を返す", func(t *testing.T) {
		t.Parallel()
		s := New()

		created := s.CreateLike(CreateLikeParams{MediaID: "m", GalleryID: "g", VisitorID: "v"})
		got, err := s.FindLike("m", "v")
		if err != nil {
			t.Fatalf("FindLike()でエラーが発生: %v", err)
		}
		if got.ID != created.ID {
			t.Errorf("ID = %q, want %q", got.ID, created.ID)
		}
	})

	t.Run("DeleteLikeは組で特定して削除し存在しなくてもエラーにならない", func(t *testing.T) {
		t.Parallel()
		s := New()

		s.CreateLike(CreateLikeParams{MediaID: "m", GalleryID: "g", VisitorID: "v"})
		s.DeleteLike("m", "v")
		if _, err := s.FindLike("m", "v"); !errors.Is(err, ErrNotFound) {
			t.Error("いいねが削除されていない")
		}

		s.DeleteLike("m", "v") // 2度目はno-op
	})
}

// TestToggleLike はいいねのトグル操作を検証する。
func TestToggleLike(t *testing.T) {
	t.Parallel()

	t.Run("トグル列の最終状態がいいね済みなら高々1件しか残らない", func(t *testing.T) {
		t.Parallel()
		s := New()

		params := CreateLikeParams{MediaID: "m", GalleryID: "g", VisitorID: "v"}

		if _, liked := s.ToggleLike(params); !liked {
			t.Error("1回目: liked = false, want true")
		}
		if _, liked := s.ToggleLike(params); liked {
			t.Error("2回目: liked = true, want false")
		}
		if _, liked := s.ToggleLike(params); !liked {
			t.Error("3回目: liked = false, want true")
		}

		// いいね済み状態で終わったら、組に対するいいねは1件のみ
		if _, err := s.FindLike("m", "v"); err != nil {
			t.Fatalf("FindLike()でエラーが発生: %v", err)
		}
		count := 0
		for _, like := range s.GetLikesByMedia("m") {
			if like.VisitorID == "v" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("いいね件数 = %d, want 1", count)
		}
	})

	t.Run("別の訪問者のいいねには影響しない", func(t *testing.T) {
		t.Parallel()
		s := New()

		s.CreateLike(CreateLikeParams{MediaID: "m", GalleryID: "g", VisitorID: "v1"})
		s.ToggleLike(CreateLikeParams{MediaID: "m", GalleryID: "g", VisitorID: "v2"})
		s.ToggleLike(CreateLikeParams{MediaID: "m", GalleryID: "g", VisitorID: "v2"})

		if _, err := s.FindLike("m", "v1"); err != nil {
			t.Errorf("v1のいいねが消えた: %v", err)
		}
		if _, err := s.FindLike("m", "v2"); !errors.Is(err, ErrNotFound) {
			t.Error("v2のいいねが残っている")
		}
	})
}

// TestMusicRequests は楽曲リクエストの操作を検証する。
func TestMusicRequests(t *testing.T) {
	t.Parallel()

	t.Run("作成時は未承認で承認操作で承認済みになる", func(t *testing.T) {
		t.Parallel()
		s := New()

		created := s.CreateMusicRequest(CreateMusicRequestParams{
			GalleryID: "g", VisitorID: "v", SpotifyTrackID: "track-1",
			TrackName: "Perfect", ArtistName: "Ed Sheeran",
		})
		if created.Approved {
			t.Error("作成直後にApproved = true")
		}

		approved, err := s.ApproveMusicRequest(created.ID)
		if err != nil {
			t.Fatalf("ApproveMusicRequest()でエラーが発生: %v", err)
		}
		if !approved.Approved {
			t.Error("承認後もApproved = false")
		}
	})

	t.Run("承認済みフィルタが効く", func(t *testing.T) {
		t.Parallel()
		s := New()

		first := s.CreateMusicRequest(CreateMusicRequestParams{GalleryID: "g", VisitorID: "v", SpotifyTrackID: "t1", TrackName: "A", ArtistName: "X"})
		s.CreateMusicRequest(CreateMusicRequestParams{GalleryID: "g", VisitorID: "v", SpotifyTrackID: "t2", TrackName: "B", ArtistName: "Y"})
		if _, err := s.ApproveMusicRequest(first.ID); err != nil {
			t.Fatalf("承認に失敗: %v", err)
		}

		all := s.GetMusicRequestsByGallery("g", false)
		if len(all) != 2 {
			t.Errorf("全件 = %d, want 2", len(all))
		}
		approved := s.GetMusicRequestsByGallery("g", true)
		if len(approved) != 1 || approved[0].ID != first.ID {
			t.Errorf("承認済み = %+v, want 1件(%s)", approved, first.ID)
		}
	})

	t.Run("存在しないリクエストの承認はErrNotFound", func(t *testing.T) {
		t.Parallel()
		s := New()

		if _, err := s.ApproveMusicRequest("nonexistent"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

// TestTimelineEntries はタイムライン項目の操作を検証する。
func TestTimelineEntries(t *testing.T) {
	t.Parallel()

	t.Run("表示順の昇順で返る", func(t *testing.T) {
		t.Parallel()
		s := New()

		s.CreateTimelineEntry(CreateTimelineEntryParams{GalleryID: "g", Title: "披露宴", Date: "15:00", Order: 2})
		s.CreateTimelineEntry(CreateTimelineEntryParams{GalleryID: "g", Title: "挙式", Date: "13:00", Order: 1})
		s.CreateTimelineEntry(CreateTimelineEntryParams{GalleryID: "g", Title: "二次会", Date: "18:00", Order: 3})

		entries := s.GetTimelineByGallery("g")
		if len(entries) != 3 {
			t.Fatalf("件数 = %d, want 3", len(entries))
		}
		wantTitles := []string{"挙式", "披露宴", "二次会"}
		for i, want := range wantTitles {
			if entries[i].Title != want {
				t.Errorf("entries[%d].Title = %q, want %q", i, entries[i].Title, want)
			}
		}
	})

	t.Run("部分更新できる", func(t *testing.T) {
		t.Parallel()
		s := New()

		created := s.CreateTimelineEntry(CreateTimelineEntryParams{GalleryID: "g", Title: "挙式", Date: "13:00", Order: 1})

		title := "チャペル挙式"
		updated, err := s.UpdateTimelineEntry(created.ID, UpdateTimelineEntryParams{Title: &title})
		if err != nil {
			t.Fatalf("UpdateTimelineEntry()でエラーが発生: %v", err)
		}
		if updated.Title != "チャペル挙式" {
			t.Errorf("Title = %q, want %q", updated.Title, "チャペル挙式")
		}
		if updated.Date != "13:00" {
			t.Errorf("Dateが変更された: %q", updated.Date)
		}
	})

	t.Run("削除は存在しなくてもエラーにならない", func(t *testing.T) {
		t.Parallel()
		s := New()

		created := s.CreateTimelineEntry(CreateTimelineEntryParams{GalleryID: "g", Title: "挙式", Date: "13:00", Order: 1})
		s.DeleteTimelineEntry(created.ID)
		if _, err := s.GetTimelineEntry(created.ID); !errors.Is(err, ErrNotFound) {
			t.Error("項目が削除されていない")
		}
		s.DeleteTimelineEntry(created.ID)
	})
}

// TestLegacyUsers は旧来ユーザーコレクションを検証する。
func TestLegacyUsers(t *testing.T) {
	t.Parallel()

	t.Run("IDが1から連番で採番される", func(t *testing.T) {
		t.Parallel()
		s := New()

		u1 := s.CreateUser(CreateUserParams{Username: "alice", Email: "alice@example.com"})
		u2 := s.CreateUser(CreateUserParams{Username: "bob", Email: "bob@example.com"})

		if u1.ID != 1 || u2.ID != 2 {
			t.Errorf("ID = %d, %d, want 1, 2", u1.ID, u2.ID)
		}
	})

	t.Run("ユーザー名で検索できる", func(t *testing.T) {
		t.Parallel()
		s := New()

		created := s.CreateUser(CreateUserParams{Username: "alice", Email: "alice@example.com"})

		got, err := s.GetUserByUsername("alice")
		if err != nil {
			t.Fatalf("GetUserByUsername()でエラーが発生: %v", err)
		}
		if got.ID != created.ID {
			t.Errorf("ID = %d, want %d", got.ID, created.ID)
		}

		if _, err := s.GetUserByUsername("unknown"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
