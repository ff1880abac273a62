package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound レコードが存在しない
	ErrNotFound = errors.New("レコードが見つかりません")
	// ErrDuplicate 一意インデックスに違反した
	ErrDuplicate = errors.New("既に存在します")
)

// Repositories 同じ接続（またはトランザクション）を共有するリポジトリの組
type Repositories struct {
	Users UserRepository
	Posts PostRepository
	Tags  TagRepository
}

// NewRepositories Repositoriesを作成
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users: NewUserRepository(db),
		Posts: NewPostRepository(db),
		Tags:  NewTagRepository(db),
	}
}

// Transactor 複数のリポジトリ操作を1つのトランザクションで実行するインターフェース
type Transactor interface {
	Transaction(ctx context.Context, fn func(repos Repositories) error) error
}

type transactor struct {
	db *gorm.DB
}

// NewTransactor Transactorを作成
func NewTransactor(db *gorm.DB) Transactor {
	return &transactor{db: db}
}

// Transaction fn がエラーを返した場合はすべての書き込みをロールバックする
func (t *transactor) Transaction(ctx context.Context, fn func(repos Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// notFound gorm.ErrRecordNotFound をErrNotFoundに変換
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// duplicate gorm.ErrDuplicatedKey をErrDuplicateに変換（TranslateError が有効な接続のみ）
func duplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
