// Package gateway はGatewayサービスの内部実装を提供する。
//
// 環境変数からの設定読み込み、CORSポリシーの適用、APIキーによる入場検査、
// 上流アプリケーションへのリクエスト中継を担当する。外部からアクセス可能な
// 唯一のプロセスであり、セキュリティの境界線として機能する。リクエストごとの
// 状態は持たず、設定は起動時に一度だけ読み込んで以降は不変として扱う。
package gateway
