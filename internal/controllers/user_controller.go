package controllers

import (
	"fmt"
	"net/http"

	"github.com/blogly-app/blogly_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController ユーザーに関するコントローラー
type UserController struct {
	userService services.UserService
	render      *Renderer
}

// NewUserController UserControllerを作成
func NewUserController(userService services.UserService, render *Renderer) *UserController {
	return &UserController{
		userService: userService,
		render:      render,
	}
}

// UserForm ユーザー作成・編集フォーム
type UserForm struct {
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	ImageURL  string `form:"image_url"`
}

func (f UserForm) input() services.UserInput {
	return services.UserInput{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		ImageURL:  f.ImageURL,
	}
}

// List ユーザー一覧
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.userService.List(ctx.Request.Context())
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.HTML(ctx, http.StatusOK, "user_listing", gin.H{
		"Title": "Users",
		"Users": users,
	})
}

// New ユーザー作成フォーム
func (c *UserController) New(ctx *gin.Context) {
	c.render.HTML(ctx, http.StatusOK, "user_new", gin.H{"Title": "New user"})
}

// Create 新しいユーザーを作成
func (c *UserController) Create(ctx *gin.Context) {
	var form UserForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.render.BadRequest(ctx, err)
		return
	}

	user, err := c.userService.Create(ctx.Request.Context(), form.input())
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.Redirect(ctx, fmt.Sprintf("/users/%d", user.ID),
		fmt.Sprintf("ユーザー「%s」を作成しました", user.FullName()))
}

// Show ユーザー詳細（投稿一覧を含む）
func (c *UserController) Show(ctx *gin.Context) {
	id, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	user, posts, err := c.userService.GetWithPosts(ctx.Request.Context(), id)
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.HTML(ctx, http.StatusOK, "user_detail", gin.H{
		"Title": user.FullName(),
		"User":  user,
		"Posts": posts,
	})
}

// Edit ユーザー編集フォーム
func (c *UserController) Edit(ctx *gin.Context) {
	id, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.HTML(ctx, http.StatusOK, "user_edit", gin.H{
		"Title": "Edit " + user.FullName(),
		"User":  user,
	})
}

// Update ユーザー情報を保存
func (c *UserController) Update(ctx *gin.Context) {
	id, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	var form UserForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.render.BadRequest(ctx, err)
		return
	}

	user, err := c.userService.Update(ctx.Request.Context(), id, form.input())
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.Redirect(ctx, "/users", fmt.Sprintf("ユーザー「%s」を更新しました", user.FullName()))
}

// Delete ユーザーとその投稿を削除
func (c *UserController) Delete(ctx *gin.Context) {
	id, ok := c.render.pathID(ctx)
	if !ok {
		return
	}

	deletedPosts, err := c.userService.Delete(ctx.Request.Context(), id)
	if err != nil {
		c.render.Error(ctx, err)
		return
	}

	c.render.Redirect(ctx, "/users", fmt.Sprintf("ユーザーを削除しました（投稿%d件）", deletedPosts))
}
