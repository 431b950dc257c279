package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// corsAllowAll はすべてのオリジンを許可するセンチネル値。
const corsAllowAll = "*"

// CORS は指定されたオリジンからのクロスオリジンリクエストを許可するGinミドルウェアを返す。
// オリジンは完全一致で照合し、部分一致やサブドメインの暗黙的な許可は行わない。
// 許可リストに "*" が含まれる場合のみ、すべてのオリジンを許可する。
//
// 許可されていないオリジンからのリクエストにはCORSヘッダーを付与しないが、
// リクエスト自体の処理は継続する（ブロックはブラウザ側で行われる）。
// 許可リストが空の場合はいかなるオリジンにもCORSヘッダーを付与しない。
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowAll := false
	originsSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == corsAllowAll {
			allowAll = true
		}
		originsSet[o] = struct{}{}
	}

	return func(c *gin.Context) {
		// レスポンスはOriginヘッダーに応じて変わるため、許可の可否に
		// かかわらず共有キャッシュに変動を伝える
		c.Header("Vary", "Origin")

		origin := c.GetHeader("Origin")
		_, allowed := originsSet[origin]
		if origin != "" && (allowAll || allowed) {
			allowOrigin := origin
			if allowAll {
				allowOrigin = corsAllowAll
			}
			c.Header("Access-Control-Allow-Origin", allowOrigin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "X-API-Key, Content-Type")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
