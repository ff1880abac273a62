package utils

import (
	"errors"
	"strconv"
)

// ErrInvalidID パスパラメータのIDが正の整数ではない
var ErrInvalidID = errors.New("無効なIDです")

// ParseID パスパラメータを正の整数IDとして解析
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
