package models

import (
	"time"
)

// Post 投稿モデル
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UserID    *uint     `json:"user_id" gorm:"index"`

	// リレーション
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Tags []Tag `json:"tags,omitempty" gorm:"many2many:post_tags;"`
}

// OwnerID 所有ユーザーのID（未設定の場合は0）
func (p Post) OwnerID() uint {
	if p.UserID == nil {
		return 0
	}
	return *p.UserID
}

// HasTag 指定したタグが付いているか
func (p Post) HasTag(tagID uint) bool {
	for _, t := range p.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}
