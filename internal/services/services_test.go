package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/blogly-app/blogly_backend/internal/config"
	"github.com/blogly-app/blogly_backend/internal/models"
	"github.com/blogly-app/blogly_backend/internal/repository"
	"github.com/blogly-app/blogly_backend/internal/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.InitDB(&config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", DBName: ":memory:", LogLevel: "silent"},
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestUserService_Delete_RollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewUserService(repository.NewRepositories(db), repository.NewTransactor(db))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "image_url"}).
			AddRow(1, "Alan", "Alda", models.DefaultImageURL))
	mock.ExpectExec(`DELETE FROM "post_tags"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "posts"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "users"`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostService_Create_UnknownTagRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewPostService(repository.NewRepositories(db), repository.NewTransactor(db))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "image_url"}).
			AddRow(1, "Alan", "Alda", models.DefaultImageURL))
	mock.ExpectQuery(`SELECT \* FROM "tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), 1, services.PostInput{
		Title:   "Tagged",
		Content: "Body",
		TagIDs:  []uint{42},
	})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 名前の事前確認の後に別リクエストが同名タグを作成した場合も409になる
func TestTagService_Create_UniqueIndexViolation(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewTagService(repository.NewRepositories(db), repository.NewTransactor(db))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectQuery(`INSERT INTO "tags"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), "fun")
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.Contains(t, err.Error(), "タグ「fun」は既に使用されています")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_ValidatesBeforeQuerying(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewUserService(repository.NewRepositories(db), repository.NewTransactor(db))

	_, err := svc.Create(context.Background(), services.UserInput{FirstName: " ", LastName: "Alda"})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.Update(context.Background(), 1, services.UserInput{FirstName: "Alan"})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Lifecycle(t *testing.T) {
	db := newSQLiteDB(t)
	repos := repository.NewRepositories(db)
	tx := repository.NewTransactor(db)
	users := services.NewUserService(repos, tx)
	posts := services.NewPostService(repos, tx)
	ctx := context.Background()

	user, err := users.Create(ctx, services.UserInput{FirstName: " Alan ", LastName: "Alda"})
	require.NoError(t, err)
	assert.Equal(t, "Alan", user.FirstName)
	assert.Equal(t, models.DefaultImageURL, user.ImageURL)

	for _, title := range []string{"First", "Second"} {
		_, err := posts.Create(ctx, user.ID, services.PostInput{Title: title, Content: "body"})
		require.NoError(t, err)
	}

	got, list, err := users.GetWithPosts(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alan Alda", got.FullName())
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Title)

	deleted, err := users.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = users.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = users.Delete(ctx, user.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPostService_CreateForMissingUser(t *testing.T) {
	db := newSQLiteDB(t)
	svc := services.NewPostService(repository.NewRepositories(db), repository.NewTransactor(db))

	_, err := svc.Create(context.Background(), 99, services.PostInput{Title: "T", Content: "C"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPostService_TagsAndDelete(t *testing.T) {
	db := newSQLiteDB(t)
	repos := repository.NewRepositories(db)
	tx := repository.NewTransactor(db)
	users := services.NewUserService(repos, tx)
	posts := services.NewPostService(repos, tx)
	tags := services.NewTagService(repos, tx)
	ctx := context.Background()

	user, err := users.Create(ctx, services.UserInput{FirstName: "Alan", LastName: "Alda"})
	require.NoError(t, err)
	sql, err := tags.Create(ctx, "sql")
	require.NoError(t, err)
	fun, err := tags.Create(ctx, "fun")
	require.NoError(t, err)

	post, err := posts.Create(ctx, user.ID, services.PostInput{
		Title: "Joins", Content: "Eureka!", TagIDs: []uint{sql.ID, fun.ID},
	})
	require.NoError(t, err)
	require.Len(t, post.Tags, 2)
	assert.Equal(t, "fun", post.Tags[0].Name)
	assert.True(t, post.HasTag(sql.ID))
	require.NotNil(t, post.User)
	assert.Equal(t, "Alan", post.User.FirstName)

	post, err = posts.Update(ctx, post.ID, services.PostInput{
		Title: "Joins", Content: "Edited", TagIDs: []uint{fun.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Edited", post.Content)
	assert.False(t, post.HasTag(sql.ID))
	assert.Equal(t, user.ID, post.OwnerID())

	tag, err := tags.GetByID(ctx, fun.ID)
	require.NoError(t, err)
	require.Len(t, tag.Posts, 1)

	deleted, err := posts.Delete(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, deleted.OwnerID())

	_, err = posts.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	tag, err = tags.GetByID(ctx, fun.ID)
	require.NoError(t, err)
	assert.Empty(t, tag.Posts)
}

func TestTagService_Conflicts(t *testing.T) {
	db := newSQLiteDB(t)
	svc := services.NewTagService(repository.NewRepositories(db), repository.NewTransactor(db))
	ctx := context.Background()

	fun, err := svc.Create(ctx, "fun")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "sql")
	require.NoError(t, err)

	_, err = svc.Create(ctx, " fun ")
	assert.ErrorIs(t, err, services.ErrConflict)

	_, err = svc.Create(ctx, "  ")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.Update(ctx, fun.ID, "sql")
	assert.ErrorIs(t, err, services.ErrConflict)

	renamed, err := svc.Update(ctx, fun.ID, "fun")
	require.NoError(t, err)
	assert.Equal(t, "fun", renamed.Name)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "fun", list[0].Name)

	require.NoError(t, svc.Delete(ctx, fun.ID))
	assert.ErrorIs(t, svc.Delete(ctx, fun.ID), services.ErrNotFound)
}

func TestHealthService_GetStatus(t *testing.T) {
	db := newSQLiteDB(t)
	svc := services.NewHealthService(db)

	status, uptime, timestamp := svc.GetStatus(context.Background())
	assert.Equal(t, "ok", status)
	assert.NotEmpty(t, uptime)
	assert.NotEmpty(t, timestamp)
}
