package controllers

import (
	"fmt"
	"net/http"

	"github.com/blogly-app/blogly_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// TagController タグに関するコントローラー
type TagController struct {
	tagService services.TagService
	render     *Renderer
}

// NewTagController TagControllerを作成
func NewTagController(tagService services.TagService, render *Renderer) *TagController {
	return &TagController{
		tagService: tagService,
		render:     render,
	}
}

// TagForm タグ作成・編集フォーム
type TagForm struct {
	Name string `form:"name" binding:"required"`
}

// List タグ一覧を取得
func (c *TagController) List(ctx *gin.Context) {
	tags, err := c.tagService.List(ctx.Request.Context())
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.HTML(ctx, http.StatusOK, "tag_listing", gin.H{
		"Title": "Tags",
		"Tags":  tags,
	})
}

// New タグ作成フォーム
func (c *TagController) New(ctx *gin.Context) {
	c.render.HTML(ctx, http.StatusOK, "tag_new", gin.H{"Title": "New tag"})
}

// Create 新しいタグを作成
func (c *TagController) Create(ctx *gin.Context) {
	var form TagForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.render.BadRequest(ctx, err)
		return
	}

	tag, err := c.tagService.Create(ctx.Request.Context(), form.Name)
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.Redirect(ctx, "/tags", fmt.Sprintf("タグ「%s」を作成しました", tag.Name))
}

// Show タグ詳細（タグ付けされた投稿を含む）
func (c *TagController) Show(ctx *gin.Context) {
	id, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	tag, err := c.tagService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.HTML(ctx, http.StatusOK, "tag_detail", gin.H{
		"Title": tag.Name,
		"Tag":   tag,
	})
}

// Edit タグ編集フォーム
func (c *TagController) Edit(ctx *gin.Context) {
	id, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	tag, err := c.tagService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.HTML(ctx, http.StatusOK, "tag_edit", gin.H{
		"Title": "Edit " + tag.Name,
		"Tag":   tag,
	})
}

// Update タグ名を保存
func (c *TagController) Update(ctx *gin.Context) {
	id, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	var form TagForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.render.BadRequest(ctx, err)
		return
	}

	tag, err := c.tagService.Update(ctx.Request.Context(), id, form.Name)
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.Redirect(ctx, "/tags", fmt.Sprintf("タグ「%s」を更新しました", tag.Name))
}

// Delete タグを削除
func (c *TagController) Delete(ctx *gin.Context) {
	id, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	if err := c.tagService.Delete(ctx.Request.Context(), id); err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.Redirect(ctx, "/tags", "タグを削除しました")
}
