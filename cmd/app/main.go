package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blogly-app/blogly_backend/internal/config"
	"github.com/blogly-app/blogly_backend/internal/models"
	"github.com/blogly-app/blogly_backend/internal/routes"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("サーバーを起動しています...")

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// Gin モードの設定（環境変数が設定されていない場合はデバッグモード）
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		log.Printf("エンドポイント登録: %s %s -> %s (%d handlers)\n", httpMethod, absolutePath, handlerName, nuHandlers)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// トレースの初期化
	shutdownTracer, err := config.InitTracer(ctx, cfg)
	if err != nil {
		log.Fatalf("トレースの初期化に失敗しました: %v", err)
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracer(c); err != nil {
			log.Printf("トレースの終了処理に失敗しました: %v", err)
		}
	}()

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	if cfg.Database.AutoMigrate {
		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("マイグレーションに失敗しました: %v", err)
		}
		log.Println("マイグレーションが完了しました")
	} else if err := models.SetupJoinTables(db); err != nil {
		log.Fatalf("中間テーブルの設定に失敗しました: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("SQLDBインスタンス取得に失敗しました: %v", err)
	}
	defer sqlDB.Close()
	log.Printf("データベース設定: MaxOpenConns=%d, Idle=%d\n",
		sqlDB.Stats().MaxOpenConnections, sqlDB.Stats().Idle)

	// ルーターをセットアップ
	router := routes.SetupRouter(cfg, db)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           otelhttp.NewHandler(router, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("サーバーを開始しています... PORT: %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("サーバーの起動に失敗しました: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("サーバーを停止しています...")

	c, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(c); err != nil {
		log.Printf("サーバーの停止に失敗しました: %v", err)
	}
}
