package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sharenotes/sharenotes-go/internal/model"
)

var ErrShareNotFound = errors.New("share not found")

// ShareRepository handles share grant persistence operations.
type ShareRepository struct {
	db *sqlx.DB
}

// NewShareRepository creates a new ShareRepository.
func NewShareRepository(db *sqlx.DB) *ShareRepository {
	return &ShareRepository{db: db}
}

// Create inserts a share grant and sets the generated ID and SharedAt on it.
func (r *ShareRepository) Create(ctx context.Context, share *model.Share) error {
	query := `INSERT INTO shared_notes (note_id, shared_by_user_id, shared_with_email, permission_level, shared_at)
		VALUES (?, ?, ?, ?, ?)`

	ts := now()
	result, err := r.db.ExecContext(ctx, query,
		share.NoteID, share.SharedByUserID, share.SharedWithEmail, share.PermissionLevel, ts,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	share.ID = id
	share.SharedAt = ts
	return nil
}

type sharedNoteRow struct {
	noteRow
	ShareID         int64     `db:"share_id"`
	PermissionLevel string    `db:"permission_level"`
	SharedAt        time.Time `db:"shared_at"`
	SharedByName    string    `db:"shared_by_name"`
	SharedByEmail   string    `db:"shared_by_email"`
}

// ListForRecipient returns the notes shared with email together with grant and
// sharer details, most recent grant first. Grants whose note is gone are skipped.
func (r *ShareRepository) ListForRecipient(ctx context.Context, email string) ([]model.SharedNote, error) {
	query := `SELECT ` + noteColumns + `,
			s.share_id, s.permission_level, s.shared_at,
			u.name AS shared_by_name, u.email AS shared_by_email
		FROM shared_notes s
		JOIN notes n ON n.note_id = s.note_id
		JOIN users u ON u.user_id = s.shared_by_user_id
		WHERE s.shared_with_email = ?
		ORDER BY s.shared_at DESC, s.share_id DESC`

	var rows []sharedNoteRow
	if err := r.db.SelectContext(ctx, &rows, query, email); err != nil {
		return nil, err
	}

	shared := make([]model.SharedNote, 0, len(rows))
	for _, row := range rows {
		shared = append(shared, model.SharedNote{
			Note:            row.noteRow.toModel(),
			ShareID:         row.ShareID,
			PermissionLevel: row.PermissionLevel,
			SharedAt:        row.SharedAt,
			SharedByName:    row.SharedByName,
			SharedByEmail:   row.SharedByEmail,
		})
	}
	return shared, nil
}

// Delete removes the grant identified by shareID on noteID, but only if sharedBy created it.
func (r *ShareRepository) Delete(ctx context.Context, sharedBy, noteID, shareID int64) error {
	query := `DELETE FROM shared_notes WHERE share_id = ? AND note_id = ? AND shared_by_user_id = ?`

	result, err := r.db.ExecContext(ctx, query, shareID, noteID, sharedBy)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrShareNotFound
	}
	return nil
}
