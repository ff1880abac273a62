package controllers

import (
	"fmt"
	"net/http"

	"github.com/blogly-app/blogly_backend/internal/models"
	"github.com/blogly-app/blogly_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PostController 投稿に関するコントローラー
type PostController struct {
	postService services.PostService
	userService services.UserService
	tagService  services.TagService
	render      *Renderer
}

// NewPostController PostControllerを作成
func NewPostController(
	postService services.PostService,
	userService services.UserService,
	tagService services.TagService,
	render *Renderer) *PostController {

	return &PostController{
		postService: postService,
		userService: userService,
		tagService:  tagService,
		render:      render,
	}
}

// PostForm 投稿作成・編集フォーム
type PostForm struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
	TagIDs  []uint `form:"tag_ids"`
}

func (f PostForm) input() services.PostInput {
	return services.PostInput{
		Title:   f.Title,
		Content: f.Content,
		TagIDs:  f.TagIDs,
	}
}

// New 投稿作成フォーム（:id はユーザーID）
func (c *PostController) New(ctx *gin.Context) {
	userID, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetByID(ctx.Request.Context(), userID)
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	tags, err := c.tagService.List(ctx.Request.Context())
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.HTML(ctx, http.StatusOK, "post_new", gin.H{
		"Title":    "New post",
		"User":     user,
		"Tags":     tags,
		"Selected": map[uint]bool{},
	})
}

// Create ユーザーの投稿を作成（:id はユーザーID）
func (c *PostController) Create(ctx *gin.Context) {
	userID, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	var form PostForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.render.BadRequest(ctx, err)
		return
	}

	post, err := c.postService.Create(ctx.Request.Context(), userID, form.input())
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.Redirect(ctx, fmt.Sprintf("/users/%d", userID),
		fmt.Sprintf("投稿「%s」を作成しました", post.Title))
}

// Show 投稿詳細
func (c *PostController) Show(ctx *gin.Context) {
	id, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	post, err := c.postService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.HTML(ctx, http.StatusOK, "post_detail", gin.H{
		"Title": post.Title,
		"Post":  post,
		"User":  ownerOf(post),
	})
}

// Edit 投稿編集フォーム
func (c *PostController) Edit(ctx *gin.Context) {
	id, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	post, err := c.postService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	tags, err := c.tagService.List(ctx.Request.Context())
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	selected := make(map[uint]bool, len(post.Tags))
	for _, t := range post.Tags {
		selected[t.ID] = true
	}

	c.render.HTML(ctx, http.StatusOK, "post_edit", gin.H{
		"Title":    "Edit " + post.Title,
		"Post":     post,
		"Tags":     tags,
		"Selected": selected,
	})
}

// Update 投稿を保存し、所有ユーザーの詳細へ戻る
func (c *PostController) Update(ctx *gin.Context) {
	id, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	var form PostForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.render.BadRequest(ctx, err)
		return
	}

	post, err := c.postService.Update(ctx.Request.Context(), id, form.input())
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.Redirect(ctx, fmt.Sprintf("/users/%d", post.OwnerID()),
		fmt.Sprintf("投稿「%s」を更新しました", post.Title))
}

// Delete 投稿を削除し、所有ユーザーの詳細へ戻る
func (c *PostController) Delete(ctx *gin.Context) {
	id, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	post, err := c.postService.Delete(ctx.Request.Context(), id)
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.Redirect(ctx, fmt.Sprintf("/users/%d", post.OwnerID()),
		fmt.Sprintf("投稿「%s」を削除しました", post.Title))
}

// ownerOf 投稿の所有ユーザー（未設定の場合は空のユーザー）
func ownerOf(post *models.Post) *models.User {
	if post.User != nil {
		return post.User
	}
	return &models.User{}
}
