// ギャラリーサービスのエントリポイント。
// イベントの写真共有ギャラリーを単一バイナリで提供する。
// 状態はインメモリストアに保持され、プロセス再起動で消える。
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/nao1215/omoide/internal/server"
	"github.com/nao1215/omoide/internal/storage"
)

func main() {
	// .envが無いのは通常運用なのでエラーにしない
	if err := godotenv.Load(); err == nil {
		log.Println(".envを読み込みました")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	store := storage.New()
	srv := server.NewServer(port, store)

	log.Printf("ギャラリーサービスを起動します: :%s", port)
	if err := srv.Run(); err != nil {
		log.Fatalf("ギャラリーサービスの起動に失敗: %v", err)
	}
}
