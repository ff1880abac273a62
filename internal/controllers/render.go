package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/blogly-app/blogly_backend/internal/services"
	"github.com/blogly-app/blogly_backend/internal/session"
	"github.com/blogly-app/blogly_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Renderer 画面の描画・リダイレクト・エラー表示をまとめたもの
type Renderer struct {
	flash *session.FlashStore
}

// NewRenderer Rendererを作成
func NewRenderer(flash *session.FlashStore) *Renderer {
	return &Renderer{flash: flash}
}

// HTML テンプレートを描画（view はテンプレート名から .html を除いたもの）
func (r *Renderer) HTML(ctx *gin.Context, status int, view string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = ""
	}
	data["View"] = view
	data["Flashes"] = r.flash.Pop(ctx.Writer, ctx.Request)

	ctx.HTML(status, view+".html", data)
}

// Redirect フラッシュメッセージを付けて302でリダイレクト
func (r *Renderer) Redirect(ctx *gin.Context, location, message string) {
	if message != "" {
		if err := r.flash.Add(ctx.Writer, ctx.Request, message); err != nil {
			log.Printf("フラッシュメッセージの保存に失敗しました: %v", err)
		}
	}
	ctx.Redirect(http.StatusFound, location)
}

// Error エラーの種類に応じたステータスでエラー画面を描画
func (r *Renderer) Error(ctx *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("サーバーエラー: %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		message = "サーバーエラーが発生しました"
	}
	r.ErrorStatus(ctx, status, message)
}

// ErrorStatus 指定したステータスでエラー画面を描画
func (r *Renderer) ErrorStatus(ctx *gin.Context, status int, message string) {
	r.HTML(ctx, status, "error", gin.H{
		"Title":      http.StatusText(status),
		"Status":     status,
		"StatusText": http.StatusText(status),
		"Message":    message,
	})
}

// NotFound 404画面を描画
func (r *Renderer) NotFound(ctx *gin.Context) {
	r.ErrorStatus(ctx, http.StatusNotFound, "ページが見つかりません")
}

// BadRequest フォームの不備を400で返す
func (r *Renderer) BadRequest(ctx *gin.Context, err error) {
	log.Printf("不正なリクエスト: %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	r.ErrorStatus(ctx, http.StatusBadRequest, "必須項目が入力されていません")
}

// pathID パスの :id を解析、整数でなければ404を描画して false を返す
func (r *Renderer) pathID(ctx *gin.Context) (uint, bool) {
	id, err := utils.ParseID(ctx.Param("id"))
	if err != nil {
		r.NotFound(ctx)
		return 0, false
	}
	return id, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
