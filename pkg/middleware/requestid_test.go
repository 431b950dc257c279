package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestRequestID はリクエストIDミドルウェアを検証する。
func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("X-Request-IDが無い場合はUUIDが採番されること", func(t *testing.T) {
		t.Parallel()

		var gotID string
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			gotID = GetRequestID(c)
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if gotID == "" {
			t.Fatal("リクエストIDが採番されるべき")
		}
		if _, err := uuid.Parse(gotID); err != nil {
			t.Errorf("リクエストID %q がUUID形式ではない: %v", gotID, err)
		}
		if got := w.Header().Get("X-Request-ID"); got != gotID {
			t.Errorf("レスポンスのX-Request-ID = %q, want %q", got, gotID)
		}
	})

	t.Run("クライアントが提示したX-Request-IDが引き継がれること", func(t *testing.T) {
		t.Parallel()

		var gotID string
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			gotID = GetRequestID(c)
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "client-supplied-id")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if gotID != "client-supplied-id" {
			t.Errorf("リクエストID = %q, want %q", gotID, "client-supplied-id")
		}
		if got := w.Header().Get("X-Request-ID"); got != "client-supplied-id" {
			t.Errorf("レスポンスのX-Request-ID = %q, want %q", got, "client-supplied-id")
		}
	})

	t.Run("ミドルウェア未適用の場合GetRequestIDが空文字列を返すこと", func(t *testing.T) {
		t.Parallel()

		var gotID string
		router := gin.New()
		router.GET("/test", func(c *gin.Context) {
			gotID = GetRequestID(c)
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if gotID != "" {
			t.Errorf("リクエストID = %q, want empty string", gotID)
		}
	})
}
