package seed

import (
	"context"
	"log"

	"github.com/blogly-app/blogly_backend/internal/models"
	"github.com/blogly-app/blogly_backend/internal/repository"
)

// サンプルユーザー（ImageURL が空のユーザーは既定のアバターになる）
var Users = []models.User{
	{FirstName: "Alan", LastName: "Alda", ImageURL: ""},
	{FirstName: "Joel", LastName: "Burton", ImageURL: "https://avatars.githubusercontent.com/u/583231"},
	{FirstName: "Jane", LastName: "Smith", ImageURL: ""},
}

// サンプル投稿（UserIndex は Users の添字）
var Posts = []struct {
	UserIndex int
	Title     string
	Content   string
	Tags      []string
}{
	{0, "First Post!", "Oh, hai.", []string{"fun"}},
	{0, "Yet Another Post", "Eureka! I finally understand joins.", []string{"fun", "sql"}},
	{1, "Flask Is Awesome", "Servers rendering HTML never went out of style.", []string{"web"}},
	{2, "Generative art", "Particles, noise and a lot of patience.", nil},
}

// Run サンプルデータを1つのトランザクションで投入
func Run(ctx context.Context, tx repository.Transactor) error {
	return tx.Transaction(ctx, func(repos repository.Repositories) error {
		userIDs := make([]uint, len(Users))
		for i := range Users {
			user := Users[i]
			if err := repos.Users.Create(ctx, &user); err != nil {
				return err
			}
			userIDs[i] = user.ID
		}

		for _, p := range Posts {
			userID := userIDs[p.UserIndex]
			post := &models.Post{Title: p.Title, Content: p.Content, UserID: &userID}
			if err := repos.Posts.Create(ctx, post); err != nil {
				return err
			}

			var tagIDs []uint
			for _, name := range p.Tags {
				tag, err := repos.Tags.FindOrCreate(ctx, name)
				if err != nil {
					return err
				}
				tagIDs = append(tagIDs, tag.ID)
			}
			if err := repos.Tags.AttachTagsToPost(ctx, post.ID, tagIDs); err != nil {
				return err
			}
		}

		log.Printf("サンプルデータを投入しました: ユーザー%d件, 投稿%d件", len(Users), len(Posts))
		return nil
	})
}
