package routes

import (
	"log"
	"net/http"

	"github.com/blogly-app/blogly_backend/internal/config"
	"github.com/blogly-app/blogly_backend/internal/controllers"
	"github.com/blogly-app/blogly_backend/internal/middlewares"
	"github.com/blogly-app/blogly_backend/internal/repository"
	"github.com/blogly-app/blogly_backend/internal/services"
	"github.com/blogly-app/blogly_backend/internal/session"
	"github.com/blogly-app/blogly_backend/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// テンプレートを読み込み
	tmpl, err := views.Load()
	if err != nil {
		log.Fatalf("テンプレートの読み込みに失敗しました: %v", err)
	}
	r.SetHTMLTemplate(tmpl)

	render := controllers.NewRenderer(session.NewFlashStore(cfg.Session))

	// ミドルウェアを設定
	r.Use(middlewares.RequestIDMiddleware())
	r.Use(middlewares.MetricsMiddleware())
	r.Use(middlewares.SecurityHeadersMiddleware())
	r.Use(middlewares.ErrorMiddleware(render.ErrorStatus))

	// リポジトリを作成
	repos := repository.NewRepositories(db)
	tx := repository.NewTransactor(db)

	// サービスを作成
	userService := services.NewUserService(repos, tx)
	postService := services.NewPostService(repos, tx)
	tagService := services.NewTagService(repos, tx)
	healthService := services.NewHealthService(db)

	// コントローラーを作成
	userController := controllers.NewUserController(userService, render)
	postController := controllers.NewPostController(postService, userService, tagService, render)
	tagController := controllers.NewTagController(tagService, render)
	healthController := controllers.NewHealthController(healthService)

	r.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/users")
	})
	r.GET("/health", healthController.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ユーザールート
	users := r.Group("/users")
	{
		users.GET("", userController.List)
		users.GET("/new", userController.New)
		users.POST("/new", userController.Create)
		users.GET("/:id", userController.Show)
		users.GET("/:id/edit", userController.Edit)
		users.POST("/:id/edit", userController.Update)
		users.POST("/:id/delete", userController.Delete)

		// ユーザーに紐づく投稿の作成
		users.GET("/:id/posts/new", postController.New)
		users.POST("/:id/posts/new", postController.Create)
	}

	// 投稿ルート
	posts := r.Group("/posts")
	{
		posts.GET("/:id", postController.Show)
		posts.GET("/:id/edit", postController.Edit)
		posts.POST("/:id/edit", postController.Update)
		posts.POST("/:id/delete", postController.Delete)
	}

	// タグルート
	tags := r.Group("/tags")
	{
		tags.GET("", tagController.List)
		tags.GET("/new", tagController.New)
		tags.POST("/new", tagController.Create)
		tags.GET("/:id", tagController.Show)
		tags.GET("/:id/edit", tagController.Edit)
		tags.POST("/:id/edit", tagController.Update)
		tags.POST("/:id/delete", tagController.Delete)
	}

	// 未登録のパスは404画面
	r.NoRoute(render.NotFound)

	return r
}
