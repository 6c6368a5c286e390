// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// ギャラリー所有者トークンの発行・検証、パニックリカバリ、CORS設定を含む。
// 訪問者（ゲスト）は認証を持たないため、トークン検証の対象は
// 所有者向けの管理操作のみとなる。
package middleware
