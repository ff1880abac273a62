package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/blogly-app/blogly_backend/internal/models"
	"github.com/blogly-app/blogly_backend/internal/repository"
)

// UserInput ユーザーの作成・更新に使う入力値
type UserInput struct {
	FirstName string
	LastName  string
	ImageURL  string
}

// UserService ユーザーに関するサービスインターフェース
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetWithPosts(ctx context.Context, id uint) (*models.User, []models.Post, error)
	Create(ctx context.Context, in UserInput) (*models.User, error)
	Update(ctx context.Context, id uint, in UserInput) (*models.User, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// userService UserServiceの実装
type userService struct {
	repos repository.Repositories
	tx    repository.Transactor
}

// NewUserService UserServiceを作成
func NewUserService(repos repository.Repositories, tx repository.Transactor) UserService {
	return &userService{
		repos: repos,
		tx:    tx,
	}
}

// List ユーザー一覧を取得
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.repos.Users.List(ctx)
}

// GetByID IDでユーザーを取得
func (s *userService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repos.Users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ユーザーが見つかりません (ID=%d): %w", id, err)
	}
	return user, nil
}

// GetWithPosts ユーザーと投稿一覧を取得
func (s *userService) GetWithPosts(ctx context.Context, id uint) (*models.User, []models.Post, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.repos.Posts.ListByUser(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return user, posts, nil
}

// Create 新しいユーザーを作成
func (s *userService) Create(ctx context.Context, in UserInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		ImageURL:  in.ImageURL, // 空の場合はモデル側で既定値になる
	}

	err := s.tx.Transaction(ctx, func(repos repository.Repositories) error {
		return repos.Users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Update ユーザー情報を上書き更新
func (s *userService) Update(ctx context.Context, id uint, in UserInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var user *models.User
	err := s.tx.Transaction(ctx, func(repos repository.Repositories) error {
		var err error
		user, err = repos.Users.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("ユーザーが見つかりません (ID=%d): %w", id, err)
		}

		user.FirstName = strings.TrimSpace(in.FirstName)
		user.LastName = strings.TrimSpace(in.LastName)
		user.ImageURL = in.ImageURL

		return repos.Users.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Delete ユーザーとその投稿を削除し、削除した投稿数を返す
func (s *userService) Delete(ctx context.Context, id uint) (int64, error) {
	var deletedPosts int64
	err := s.tx.Transaction(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Users.FindByID(ctx, id); err != nil {
			return fmt.Errorf("ユーザーが見つかりません (ID=%d): %w", id, err)
		}

		// 投稿のタグ → 投稿 → ユーザーの順に削除
		if err := repos.Tags.DetachTagsFromUserPosts(ctx, id); err != nil {
			return err
		}

		var err error
		deletedPosts, err = repos.Posts.DeleteByUser(ctx, id)
		if err != nil {
			return err
		}

		return repos.Users.Delete(ctx, id)
	})
	if err != nil {
		return 0, err
	}

	return deletedPosts, nil
}

func (in UserInput) validate() error {
	if strings.TrimSpace(in.FirstName) == "" {
		return fmt.Errorf("名は必須です: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(in.LastName) == "" {
		return fmt.Errorf("姓は必須です: %w", ErrInvalidInput)
	}
	return nil
}
