// Package storage はギャラリーサービスのインメモリデータストアを提供する。
//
// プロセス内で唯一の正となる状態保持者であり、ギャラリー・訪問者・メディア・
// コメント・いいねの5コレクション（および旧来のユーザーコレクション）に対する
// CRUDとクエリ操作を公開する。永続化は行わず、プロセス再起動で状態は消える。
//
// 主な不変条件:
//   - ストーリーは作成から24時間で期限切れとなり、期限後はすべての
//     アクティブクエリから除外される（遅延フィルタリング、バックグラウンド
//     削除は行わない）
//   - (galleryId, deviceId, fingerprint) の組は高々1人の訪問者を特定する
//   - (mediaId, visitorId) の組に対するいいねは高々1件
//   - メディア削除は参照するコメント・いいねへカスケードする
package storage
