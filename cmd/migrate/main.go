package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/blogly-app/blogly_backend/internal/config"
	"github.com/blogly-app/blogly_backend/internal/models"
	"github.com/blogly-app/blogly_backend/internal/repository"
	"github.com/blogly-app/blogly_backend/internal/seed"
)

func main() {
	// 引数をチェック
	if len(os.Args) < 2 {
		log.Fatal("使用方法: migrate [up|down|seed]")
	}

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "up":
		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("マイグレーションに失敗しました: %v", err)
		}
		fmt.Println("マイグレーションが成功しました")

	case "down":
		// テーブルを削除（逆順）
		if err := models.DropAll(db); err != nil {
			log.Fatalf("テーブル削除に失敗しました: %v", err)
		}
		fmt.Println("テーブルの削除が成功しました")

	case "seed":
		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("マイグレーションに失敗しました: %v", err)
		}
		if err := seed.Run(context.Background(), repository.NewTransactor(db)); err != nil {
			log.Fatalf("サンプルデータの投入に失敗しました: %v", err)
		}
		fmt.Println("サンプルデータの投入が成功しました")

	default:
		log.Fatalf("不明なコマンドです: %s", command)
	}
}
