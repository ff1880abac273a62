package session

import (
	"log"
	"net/http"

	"github.com/blogly-app/blogly_backend/internal/config"
	"github.com/blogly-app/blogly_backend/internal/utils"

	"github.com/gorilla/sessions"
)

// FlashStore リダイレクト後に1度だけ表示するメッセージを保持する
type FlashStore struct {
	store sessions.Store
	name  string
}

// NewFlashStore Cookieベースのセッションストアを作成
func NewFlashStore(cfg config.SessionConfig) *FlashStore {
	secret := cfg.Secret
	if secret == "" {
		// 再起動すると既存のフラッシュは読めなくなる
		log.Println("SESSION_SECRET が未設定のためランダムな鍵を使用します")
		secret = utils.GenerateRandomString(64)
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(cfg.MaxAge)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = cfg.Secure
	store.Options.SameSite = http.SameSiteLaxMode

	name := cfg.CookieName
	if name == "" {
		name = "blogly_session"
	}

	return &FlashStore{store: store, name: name}
}

// Add フラッシュメッセージを追加
func (f *FlashStore) Add(w http.ResponseWriter, r *http.Request, message string) error {
	sess, err := f.store.Get(r, f.name)
	if err != nil {
		// 改ざん・鍵変更されたCookieは破棄して新しいセッションを使う
		sess, err = f.store.New(r, f.name)
		if sess == nil {
			return err
		}
	}
	sess.AddFlash(message)
	return sess.Save(r, w)
}

// Pop フラッシュメッセージを取り出して削除
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []string {
	sess, err := f.store.Get(r, f.name)
	if err != nil {
		return nil
	}

	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil
	}

	messages := make([]string, 0, len(flashes))
	for _, v := range flashes {
		if s, ok := v.(string); ok {
			messages = append(messages, s)
		}
	}

	if err := sess.Save(r, w); err != nil {
		log.Printf("セッションの保存に失敗しました: %v", err)
	}
	return messages
}
