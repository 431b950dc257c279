package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client は上流アプリケーションへの転送用HTTPクライアント。
// タイムアウトの設定を持ち、レスポンスは加工せず呼び出し側にそのまま返す。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// baseURL は転送先サービスのベースURL。
	baseURL string
}

// New は新しい上流転送用HTTPクライアントを生成する。
// baseURLには転送先サービスのベースURL（例: "http://app:9000"）を指定する。
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// Forward はメソッド・パス・ヘッダー・ボディをそのまま上流へ送信する。
// pathにはクエリ文字列を含めてよい。レスポンスボディのクローズは呼び出し側の責務。
func (c *Client) Forward(ctx context.Context, method, path string, header http.Header, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("転送リクエストの作成に失敗: %w", err)
	}

	// 元のリクエストヘッダーをすべて引き継ぐ
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	// コンテキストからリクエストIDを伝播する
	if requestID, ok := ctx.Value(contextKeyRequestID).(string); ok {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("上流サービスへの転送に失敗: %w", err)
	}
	return resp, nil
}

// contextKey はコンテキストキーの型。
type contextKey string

// contextKeyRequestID はコンテキストにリクエストIDを格納するためのキー。
const contextKeyRequestID contextKey = "request_id"

// WithRequestID はコンテキストにリクエストIDを設定する。
// 上流への転送時にリクエストIDを伝播するために使用する。
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}
