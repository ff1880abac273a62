package models

import (
	"strings"

	"gorm.io/gorm"
)

// DefaultImageURL 画像URLが未入力のユーザーに使うアバター画像
const DefaultImageURL = "https://thumbs.dreamstime.com/b/default-avatar-profile-image-vector-social-media-user-icon-potrait-182347582.jpg"

// User ユーザーモデル
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"size:50;not null"`
	LastName  string `json:"last_name" gorm:"size:50;not null"`
	ImageURL  string `json:"image_url" gorm:"type:text;not null"`

	// リレーション
	Posts []Post `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FullName 表示用の氏名
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// BeforeSave 作成・更新の両方で画像URLの既定値を適用する
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.ImageURL = ImageURLOrDefault(u.ImageURL)
	return nil
}

// ImageURLOrDefault 空白のみの画像URLを既定のアバターに置き換える
func ImageURLOrDefault(imageURL string) string {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return DefaultImageURL
	}
	return imageURL
}
