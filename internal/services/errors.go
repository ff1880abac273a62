package services

import (
	"errors"

	"github.com/blogly-app/blogly_backend/internal/repository"
)

var (
	// ErrNotFound 対象のレコードが存在しない
	ErrNotFound = repository.ErrNotFound
	// ErrInvalidInput 必須項目の欠落など入力が不正
	ErrInvalidInput = errors.New("入力が不正です")
	// ErrConflict 一意制約に反する
	ErrConflict = repository.ErrDuplicate
)
