package models

import (
	"gorm.io/gorm"
)

// SetupJoinTables 多対多の中間テーブルとしてPostTagを登録
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Post{}, "Tags", &PostTag{}); err != nil {
		return err
	}
	return db.SetupJoinTable(&Tag{}, "Posts", &PostTag{})
}

// AutoMigrate 全テーブルを作成・更新
func AutoMigrate(db *gorm.DB) error {
	if err := SetupJoinTables(db); err != nil {
		return err
	}
	return db.AutoMigrate(
		&User{},
		&Tag{},
		&Post{},
		&PostTag{},
	)
}

// DropAll 全テーブルを削除（依存関係の逆順）
func DropAll(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&PostTag{},
		&Post{},
		&Tag{},
		&User{},
	)
}
