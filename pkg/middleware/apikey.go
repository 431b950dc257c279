package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// headerKeyAPIKey はクライアントが共有シークレットを提示するHTTPヘッダーキー。
const headerKeyAPIKey = "X-API-Key"

// APIKeyAuth はX-API-Keyヘッダーを検証するGinミドルウェアを返す。
// 比較はタイミング攻撃を避けるため常に定数時間で行う。
//
// apiKeyが空文字列の場合、認証チェックは一切行わない（オープンモード）。
// これは意図した仕様であり、API_KEYを設定しないデプロイでは全リクエストが
// 認証なしで通過する。publicPathsに含まれるパスとOPTIONSリクエスト
// （CORSプリフライトはカスタムヘッダーを持たない）も検証を免除する。
func APIKeyAuth(apiKey string, publicPaths ...string) gin.HandlerFunc {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}

		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		if _, ok := public[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		provided := c.GetHeader(headerKeyAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "X-API-Keyヘッダーが無効または未指定です",
			})
			return
		}

		c.Next()
	}
}
