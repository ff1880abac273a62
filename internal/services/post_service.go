package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/blogly-app/blogly_backend/internal/models"
	"github.com/blogly-app/blogly_backend/internal/repository"
)

// PostInput 投稿の作成・更新に使う入力値
type PostInput struct {
	Title   string
	Content string
	TagIDs  []uint
}

// PostService 投稿に関するサービスインターフェース
type PostService interface {
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Create(ctx context.Context, userID uint, in PostInput) (*models.Post, error)
	Update(ctx context.Context, id uint, in PostInput) (*models.Post, error)
	Delete(ctx context.Context, id uint) (*models.Post, error)
}

// postService PostServiceの実装
type postService struct {
	repos repository.Repositories
	tx    repository.Transactor
}

// NewPostService PostServiceを作成
func NewPostService(repos repository.Repositories, tx repository.Transactor) PostService {
	return &postService{
		repos: repos,
		tx:    tx,
	}
}

// GetByID IDで投稿を取得
func (s *postService) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.repos.Posts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("投稿が見つかりません (ID=%d): %w", id, err)
	}
	return post, nil
}

// Create ユーザーの新しい投稿を作成
func (s *postService) Create(ctx context.Context, userID uint, in PostInput) (*models.Post, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   strings.TrimSpace(in.Title),
		Content: in.Content,
		UserID:  &userID,
	}

	err := s.tx.Transaction(ctx, func(repos repository.Repositories) error {
		// 所有ユーザーが存在するか確認
		if _, err := repos.Users.FindByID(ctx, userID); err != nil {
			return fmt.Errorf("ユーザーが見つかりません (ID=%d): %w", userID, err)
		}

		if err := checkTagsExist(ctx, repos.Tags, in.TagIDs); err != nil {
			return err
		}

		if err := repos.Posts.Create(ctx, post); err != nil {
			return err
		}

		return repos.Tags.AttachTagsToPost(ctx, post.ID, in.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	// タグを含む投稿を再取得
	return s.GetByID(ctx, post.ID)
}

// Update 投稿のタイトル・本文・タグを更新
func (s *postService) Update(ctx context.Context, id uint, in PostInput) (*models.Post, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	err := s.tx.Transaction(ctx, func(repos repository.Repositories) error {
		post, err := repos.Posts.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("投稿が見つかりません (ID=%d): %w", id, err)
		}

		if err := checkTagsExist(ctx, repos.Tags, in.TagIDs); err != nil {
			return err
		}

		post.Title = strings.TrimSpace(in.Title)
		post.Content = in.Content
		if err := repos.Posts.UpdateContent(ctx, post); err != nil {
			return err
		}

		return repos.Tags.AttachTagsToPost(ctx, post.ID, in.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete 投稿を削除し、削除した投稿を返す
func (s *postService) Delete(ctx context.Context, id uint) (*models.Post, error) {
	var post *models.Post
	err := s.tx.Transaction(ctx, func(repos repository.Repositories) error {
		var err error
		post, err = repos.Posts.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("投稿が見つかりません (ID=%d): %w", id, err)
		}

		if err := repos.Tags.DetachTagsFromPost(ctx, id); err != nil {
			return err
		}

		return repos.Posts.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// checkTagsExist 指定されたタグIDがすべて存在するか確認
func checkTagsExist(ctx context.Context, tags repository.TagRepository, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	unique := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	found, err := tags.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(unique) {
		return fmt.Errorf("存在しないタグが指定されました: %w", ErrInvalidInput)
	}
	return nil
}

func (in PostInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("タイトルは必須です: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Content) == "" {
		return fmt.Errorf("本文は必須です: %w", ErrInvalidInput)
	}
	return nil
}
