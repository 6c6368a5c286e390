// Package server はギャラリーサービスのHTTP APIを提供する。
//
// ギャラリー・訪問者・メディア・コメント・いいね・楽曲リクエスト・
// タイムラインの各エンドポイントを公開し、内部のインメモリストアへ
// 操作を委譲する。訪問者向けの操作は認証なしで利用でき、所有者向けの
// 管理操作のみギャラリー所有者トークンを要求する。
package server
