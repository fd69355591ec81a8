package repository

import (
	"context"
	"testing"

	"github.com/sharenotes/sharenotes-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shareFixture struct {
	users  *UserRepository
	notes  *NoteRepository
	shares *ShareRepository
	alice  *model.User
	note   *model.Note
}

func newShareFixture(t *testing.T) *shareFixture {
	t.Helper()
	db := newTestDB(t)
	f := &shareFixture{
		users:  NewUserRepository(db),
		notes:  NewNoteRepository(db),
		shares: NewShareRepository(db),
	}
	f.alice = createUser(t, f.users, "Alice", "a@x.io")
	f.note = &model.Note{UserID: f.alice.ID, Title: "Plan", Content: "c", Tags: model.Tags{"t"}}
	require.NoError(t, f.notes.Create(context.Background(), f.note))
	return f
}

func (f *shareFixture) share(t *testing.T, noteID int64, email string) *model.Share {
	t.Helper()
	s := &model.Share{
		NoteID:          noteID,
		SharedByUserID:  f.alice.ID,
		SharedWithEmail: email,
		PermissionLevel: model.DefaultPermissionLevel,
	}
	require.NoError(t, f.shares.Create(context.Background(), s))
	return s
}

func TestShareRepository_CreateAndList(t *testing.T) {
	f := newShareFixture(t)
	s := f.share(t, f.note.ID, "b@x.io")
	assert.Positive(t, s.ID)
	assert.False(t, s.SharedAt.IsZero())

	list, err := f.shares.ListForRecipient(context.Background(), "b@x.io")
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, f.note.ID, got.ID)
	assert.Equal(t, "Plan", got.Title)
	assert.Equal(t, model.Tags{"t"}, got.Tags)
	assert.Equal(t, s.ID, got.ShareID)
	assert.Equal(t, "view", got.PermissionLevel)
	assert.Equal(t, "Alice", got.SharedByName)
	assert.Equal(t, "a@x.io", got.SharedByEmail)
}

func TestShareRepository_ListOnlyMatchingEmail(t *testing.T) {
	f := newShareFixture(t)
	f.share(t, f.note.ID, "b@x.io")

	list, err := f.shares.ListForRecipient(context.Background(), "c@x.io")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestShareRepository_ListNewestGrantFirst(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	second := &model.Note{UserID: f.alice.ID, Title: "Second"}
	require.NoError(t, f.notes.Create(ctx, second))

	first := f.share(t, f.note.ID, "b@x.io")
	latest := f.share(t, second.ID, "b@x.io")

	list, err := f.shares.ListForRecipient(ctx, "b@x.io")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, latest.ID, list[0].ShareID)
	assert.Equal(t, first.ID, list[1].ShareID)
}

func TestShareRepository_DeletedNoteHidden(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	f.share(t, f.note.ID, "b@x.io")

	require.NoError(t, f.notes.Delete(ctx, f.alice.ID, f.note.ID))

	list, err := f.shares.ListForRecipient(ctx, "b@x.io")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestShareRepository_Delete(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	s := f.share(t, f.note.ID, "b@x.io")

	tests := []struct {
		name     string
		sharedBy int64
		noteID   int64
		shareID  int64
	}{
		{"wrong sharer", f.alice.ID + 1, f.note.ID, s.ID},
		{"wrong note", f.alice.ID, f.note.ID + 1, s.ID},
		{"unknown share", f.alice.ID, f.note.ID, s.ID + 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.shares.Delete(ctx, tt.sharedBy, tt.noteID, tt.shareID)
			assert.ErrorIs(t, err, ErrShareNotFound)
		})
	}

	require.NoError(t, f.shares.Delete(ctx, f.alice.ID, f.note.ID, s.ID))
	assert.ErrorIs(t, f.shares.Delete(ctx, f.alice.ID, f.note.ID, s.ID), ErrShareNotFound)

	list, err := f.shares.ListForRecipient(ctx, "b@x.io")
	require.NoError(t, err)
	assert.Empty(t, list)
}
