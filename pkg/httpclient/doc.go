// Package httpclient は上流アプリケーションへのHTTP転送を行うクライアントを提供する。
//
// Gatewayが許可したリクエストを下流のアプリケーションへそのまま中継するために
// 使用する。タイムアウト設定とリクエストIDの伝播を担い、レスポンスの中身には
// 一切手を加えない。
package httpclient
