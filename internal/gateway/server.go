package gateway

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/gatekeep/pkg/httpclient"
	"github.com/nao1215/gatekeep/pkg/middleware"
)

// publicPaths は認証なしでアクセスできるパスの一覧。
var publicPaths = []string{"/healthz"}

// Server はGatewayサービスのHTTPサーバー。
// リクエストをアプリケーションロジックに届ける前に、CORSポリシーの適用と
// APIキーによる入場検査を行い、許可したリクエストを上流へ中継する。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// cfg は起動時に読み込んだ不変の設定。
	cfg *Config
	// upstream は上流アプリケーションへの転送クライアント。
	upstream *httpclient.Client
}

// NewServer は新しいGatewayサーバーを生成する。
// 設定はLoadConfigで読み込んだものを渡す。生成後の設定変更は想定しない。
func NewServer(cfg *Config) *Server {
	if cfg.APIKey == "" {
		log.Print("API_KEYが未設定のため認証チェックを行いません（オープンモード）")
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.APIKeyAuth(cfg.APIKey, publicPaths...))

	s := &Server{
		router:   router,
		cfg:      cfg,
		upstream: httpclient.New(cfg.UpstreamURL, cfg.UpstreamTimeout),
	}
	s.setupRoutes()

	return s
}

// Run はHTTPサーバーを起動する。
// ポートが使用中などでバインドに失敗した場合はエラーを返す。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%d", s.cfg.Port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// ヘルスチェック（認証不要）
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "gatekeep"})
	})

	// 上記以外のすべてのパス・メソッドを上流へ中継する
	s.router.NoRoute(s.handleForward())
}

// handleForward は入場検査を通過したリクエストを上流へ中継するハンドラを返す。
// メソッド・パス・クエリ・ヘッダー・ボディを保ったまま転送し、
// 上流のレスポンス（ステータス・ヘッダー・ボディ）を加工せずに返す。
func (s *Server) handleForward() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path += "?" + c.Request.URL.RawQuery
		}

		ctx := httpclient.WithRequestID(c.Request.Context(), middleware.GetRequestID(c))
		resp, err := s.upstream.Forward(ctx, c.Request.Method, path, c.Request.Header, c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "上流サービスとの通信に失敗しました"})
			log.Printf("転送エラー: path=%s, error=%v", path, err)
			return
		}
		defer resp.Body.Close()

		for k, values := range resp.Header {
			// X-Request-IDはミドルウェアが設定済みのため、上流がエコーして
			// きても二重に付与しない
			if strings.EqualFold(k, "X-Request-ID") {
				continue
			}
			for _, v := range values {
				c.Writer.Header().Add(k, v)
			}
		}
		c.Status(resp.StatusCode)
		if _, err := io.Copy(c.Writer, resp.Body); err != nil {
			log.Printf("レスポンス中継エラー: path=%s, error=%v", path, err)
		}
	}
}
