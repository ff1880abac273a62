package models

// Tag タグモデル
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`

	// リレーション
	Posts []Post `json:"-" gorm:"many2many:post_tags;"`
}

// PostTag 投稿とタグの中間テーブル
type PostTag struct {
	PostID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey"`
}

// TableName テーブル名指定
func (PostTag) TableName() string {
	return "post_tags"
}
