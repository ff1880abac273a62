package middlewares

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// ErrorMiddleware パニックを捕捉してエラー画面を返すミドルウェア
func ErrorMiddleware(renderError func(ctx *gin.Context, status int, message string)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("パニックが発生しました: %v\n%s", err, debug.Stack())
				if ctx.Writer.Written() {
					ctx.Abort()
					return
				}
				renderError(ctx, http.StatusInternalServerError, "サーバーエラーが発生しました")
				ctx.Abort()
			}
		}()
		ctx.Next()
	}
}

// SecurityHeadersMiddleware HTMLレスポンス向けのセキュリティヘッダーを設定
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		ctx.Writer.Header().Set("X-Frame-Options", "DENY")
		ctx.Writer.Header().Set("Referrer-Policy", "same-origin")

		ctx.Next()
	}
}
