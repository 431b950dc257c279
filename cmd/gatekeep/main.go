// Gatewayサービスのエントリポイント。
// 設定されたポートでHTTPリクエストを受け付け、CORSポリシーの適用と
// APIキーによる入場検査を行い、許可したリクエストを上流アプリケーションへ中継する。
package main

import (
	"log"

	"github.com/nao1215/gatekeep/internal/gateway"
)

func main() {
	cfg, err := gateway.LoadConfig()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	server := gateway.NewServer(cfg)

	log.Printf("Gatewayサービスを起動します: :%d -> %s", cfg.Port, cfg.UpstreamURL)
	if err := server.Run(); err != nil {
		log.Fatalf("Gatewayサービスの起動に失敗: %v", err)
	}
}
