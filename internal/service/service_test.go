package service

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sharenotes/sharenotes-go/internal/model"
	"github.com/sharenotes/sharenotes-go/internal/repository"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testServices struct {
	db     *sqlx.DB
	auth   *AuthService
	notes  *NoteService
	shares *ShareService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	ctx := context.Background()

	db, err := repository.NewDB(ctx, "sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repository.Migrate(ctx, db))

	noteRepo := repository.NewNoteRepository(db)
	return &testServices{
		db:     db,
		auth:   NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour),
		notes:  NewNoteService(noteRepo),
		shares: NewShareService(noteRepo, repository.NewShareRepository(db)),
	}
}

// registerUser registers and returns the caller identity for name/email.
func (s *testServices) registerUser(t *testing.T, name, email string) model.Identity {
	t.Helper()
	resp, err := s.auth.Register(context.Background(), model.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret",
	})
	require.NoError(t, err)
	return model.Identity{UserID: resp.UserID, Email: email}
}
