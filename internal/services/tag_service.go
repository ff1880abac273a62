package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogly-app/blogly_backend/internal/models"
	"github.com/blogly-app/blogly_backend/internal/repository"
)

// TagService タグに関するサービスインターフェース
type TagService interface {
	List(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	Create(ctx context.Context, name string) (*models.Tag, error)
	Update(ctx context.Context, id uint, name string) (*models.Tag, error)
	Delete(ctx context.Context, id uint) error
}

// tagService TagServiceの実装
type tagService struct {
	repos repository.Repositories
	tx    repository.Transactor
}

// NewTagService TagServiceを作成
func NewTagService(repos repository.Repositories, tx repository.Transactor) TagService {
	return &tagService{
		repos: repos,
		tx:    tx,
	}
}

// List タグ一覧を取得
func (s *tagService) List(ctx context.Context) ([]models.Tag, error) {
	return s.repos.Tags.List(ctx)
}

// GetByID IDでタグを取得
func (s *tagService) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	tag, err := s.repos.Tags.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("タグが見つかりません (ID=%d): %w", id, err)
	}
	return tag, nil
}

// Create 新しいタグを作成
func (s *tagService) Create(ctx context.Context, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("タグ名は必須です: %w", ErrInvalidInput)
	}

	tag := &models.Tag{Name: name}
	err := s.tx.Transaction(ctx, func(repos repository.Repositories) error {
		if err := ensureNameAvailable(ctx, repos.Tags, name, 0); err != nil {
			return err
		}
		return repos.Tags.Create(ctx, tag)
	})
	if err != nil {
		return nil, nameConflict(err, name)
	}

	return tag, nil
}

// Update タグ名を変更
func (s *tagService) Update(ctx context.Context, id uint, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("タグ名は必須です: %w", ErrInvalidInput)
	}

	var tag *models.Tag
	err := s.tx.Transaction(ctx, func(repos repository.Repositories) error {
		var err error
		tag, err = repos.Tags.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("タグが見つかりません (ID=%d): %w", id, err)
		}

		if err := ensureNameAvailable(ctx, repos.Tags, name, id); err != nil {
			return err
		}

		tag.Name = name
		return repos.Tags.Update(ctx, tag)
	})
	if err != nil {
		return nil, nameConflict(err, name)
	}

	return tag, nil
}

// Delete タグを削除（投稿との関連付けも解除）
func (s *tagService) Delete(ctx context.Context, id uint) error {
	return s.tx.Transaction(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Tags.FindByID(ctx, id); err != nil {
			return fmt.Errorf("タグが見つかりません (ID=%d): %w", id, err)
		}

		if err := repos.Tags.DetachTagFromPosts(ctx, id); err != nil {
			return err
		}

		return repos.Tags.Delete(ctx, id)
	})
}

// ensureNameAvailable 同名の別タグが存在しないか確認（selfID は自分自身として除外）
func ensureNameAvailable(ctx context.Context, tags repository.TagRepository, name string, selfID uint) error {
	existing, err := tags.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return repository.ErrDuplicate
	}
	return nil
}

// nameConflict 事前確認・一意インデックスどちらの重複もタグ名付きのErrConflictにする
func nameConflict(err error, name string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("タグ「%s」は既に使用されています: %w", name, ErrConflict)
	}
	return err
}
