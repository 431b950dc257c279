package gateway

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config はGatewayサービスの設定。
// プロセス起動時に環境変数から一度だけ読み込み、以降は不変として扱う。
// ハンドラーやミドルウェアは環境変数を直接参照せず、この構造体を受け取る。
type Config struct {
	// Port はHTTPサーバーのリッスンポート。
	Port int
	// AllowedOrigins はCORSで許可するオリジンの一覧。
	// "*" が含まれる場合はすべてのオリジンを許可する。
	AllowedOrigins []string
	// APIKey はX-API-Keyヘッダーで照合する共有シークレット。
	// 空文字列の場合は認証チェックを行わない（オープンモード）。
	APIKey string
	// UpstreamURL は転送先アプリケーションのベースURL。
	UpstreamURL string
	// UpstreamTimeout は上流への転送リクエストのタイムアウト。
	UpstreamTimeout time.Duration
}

// 各設定のデフォルト値。
const (
	defaultPort            = 8000
	defaultAllowedOrigins  = "*"
	defaultUpstreamURL     = "http://localhost:9000"
	defaultUpstreamTimeout = 30 * time.Second
)

// LoadConfig は環境変数からGateway設定を読み込む。
// 不正な値（数値でないポート、範囲外のポート、不正なURL等）は
// 起動時エラーとして返し、呼び出し側でプロセスを終了させる。
func LoadConfig() (*Config, error) {
	port, err := parsePort(os.Getenv("PORT"))
	if err != nil {
		return nil, err
	}

	upstreamURL := getEnvOr("UPSTREAM_URL", defaultUpstreamURL)
	if u, err := url.Parse(upstreamURL); err != nil ||
		(u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("UPSTREAM_URLが不正です: %q", upstreamURL)
	}

	timeout := defaultUpstreamTimeout
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		timeout, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("UPSTREAM_TIMEOUTの解析に失敗: %w", err)
		}
	}

	// 未設定と空文字列は区別する。未設定はデフォルトの全許可、
	// 明示的に空を設定した場合は空の許可リスト（全オリジン拒否）になる。
	origins := defaultAllowedOrigins
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		origins = v
	}

	return &Config{
		Port:            port,
		AllowedOrigins:  parseOrigins(origins),
		APIKey:          os.Getenv("API_KEY"),
		UpstreamURL:     strings.TrimRight(upstreamURL, "/"),
		UpstreamTimeout: timeout,
	}, nil
}

// parsePort はPORT環境変数の値を検証付きで整数に変換する。
// 未設定の場合はデフォルトの8000を返す。設定されているのに数値でない、
// または1〜65535の範囲外の場合はエラーを返す（誤設定を黙って握り潰さない）。
func parsePort(v string) (int, error) {
	if v == "" {
		return defaultPort, nil
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("PORTが数値ではありません: %q", v)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("PORTが範囲外です（1〜65535）: %d", port)
	}
	return port, nil
}

// parseOrigins はカンマ区切りのオリジン一覧を分割する。
// 前後の空白は取り除き、空の要素は捨てる。
func parseOrigins(v string) []string {
	var origins []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
