// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// APIキーによる入場検査、CORS設定、リクエストIDの採番、
// パニックリカバリなど、Gatewayの境界で行う処理を含む。
package middleware
