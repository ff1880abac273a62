package repository

import (
	"context"

	"github.com/blogly-app/blogly_backend/internal/models"

	"gorm.io/gorm"
)

// PostRepository 投稿に関するデータベース操作を行うインターフェース
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id uint) (*models.Post, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Post, error)
	UpdateContent(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	DeleteByUser(ctx context.Context, userID uint) (int64, error)
}

// postRepository PostRepositoryの実装
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository PostRepositoryを作成
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create 新しい投稿を作成
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	// タグの関連付けはTagRepositoryで行う
	return r.db.WithContext(ctx).Omit("Tags", "User").Create(post).Error
}

// FindByID IDで投稿を検索（所有ユーザーとタグを含む）
func (r *postRepository) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		}).
		First(&post, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

// ListByUser ユーザーの投稿一覧を取得
func (r *postRepository) ListByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateContent タイトルと本文のみ更新（created_at と user_id は変更しない）
func (r *postRepository) UpdateContent(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{ID: post.ID}).
		Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
		}).Error
}

// Delete 投稿を削除
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByUser ユーザーの投稿をすべて削除し、削除件数を返す
func (r *postRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Post{})
	return result.RowsAffected, result.Error
}
