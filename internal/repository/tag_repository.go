package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/blogly-app/blogly_backend/internal/models"

	"gorm.io/gorm"
)

// TagRepository タグに関するデータベース操作を行うインターフェース
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	FindOrCreate(ctx context.Context, name string) (*models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
	FindByID(ctx context.Context, id uint) (*models.Tag, error)
	FindByName(ctx context.Context, name string) (*models.Tag, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id uint) error
	AttachTagsToPost(ctx context.Context, postID uint, tagIDs []uint) error
	DetachTagsFromPost(ctx context.Context, postID uint) error
	DetachTagFromPosts(ctx context.Context, tagID uint) error
	DetachTagsFromUserPosts(ctx context.Context, userID uint) error
}

// tagRepository TagRepositoryの実装
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository TagRepositoryを作成
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// Create 新しいタグを作成
func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return duplicate(r.db.WithContext(ctx).Omit("Posts").Create(tag).Error)
}

// FindOrCreate タグを検索または作成
func (r *tagRepository) FindOrCreate(ctx context.Context, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("タグ名は空にできません")
	}

	tag, err := r.FindByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	// タグが見つからない場合は新規作成
	tag = &models.Tag{Name: name}
	if err := r.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// List タグ一覧を名前順に取得
func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByID IDでタグを検索（タグ付けされた投稿を含む）
func (r *tagRepository) FindByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Order("posts.id ASC")
		}).
		First(&tag, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &tag, nil
}

// FindByName 名前でタグを検索
func (r *tagRepository) FindByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, notFound(err)
	}
	return &tag, nil
}

// FindByIDs 複数IDでタグを検索
func (r *tagRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Update タグを更新
func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	return duplicate(r.db.WithContext(ctx).Model(&models.Tag{ID: tag.ID}).Update("name", tag.Name).Error)
}

// Delete タグを削除
func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Tag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachTagsToPost 投稿のタグを指定したタグで置き換える
func (r *tagRepository) AttachTagsToPost(ctx context.Context, postID uint, tagIDs []uint) error {
	// 既存のタグをすべて削除
	if err := r.DetachTagsFromPost(ctx, postID); err != nil {
		return err
	}

	// 新しいタグを追加
	seen := make(map[uint]bool, len(tagIDs))
	for _, tagID := range tagIDs {
		if seen[tagID] {
			continue
		}
		seen[tagID] = true
		if err := r.db.WithContext(ctx).Create(&models.PostTag{PostID: postID, TagID: tagID}).Error; err != nil {
			return err
		}
	}

	return nil
}

// DetachTagsFromPost 投稿からすべてのタグの関連付けを解除
func (r *tagRepository) DetachTagsFromPost(ctx context.Context, postID uint) error {
	return r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.PostTag{}).Error
}

// DetachTagFromPosts タグをすべての投稿から外す
func (r *tagRepository) DetachTagFromPosts(ctx context.Context, tagID uint) error {
	return r.db.WithContext(ctx).Where("tag_id = ?", tagID).Delete(&models.PostTag{}).Error
}

// DetachTagsFromUserPosts ユーザーの全投稿からタグの関連付けを解除
func (r *tagRepository) DetachTagsFromUserPosts(ctx context.Context, userID uint) error {
	db := r.db.WithContext(ctx)
	userPosts := db.Model(&models.Post{}).Select("id").Where("user_id = ?", userID)
	return db.Where("post_id IN (?)", userPosts).Delete(&models.PostTag{}).Error
}
