package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sharenotes/sharenotes-go/internal/model"
)

var ErrNoteNotFound = errors.New("note not found")

const noteColumns = `n.note_id, n.user_id, n.title, n.content, n.tags, n.folder, n.is_pinned, n.created_at, n.updated_at`

// noteRow mirrors the notes table. Tags are stored as a JSON array in a text column.
type noteRow struct {
	ID        int64          `db:"note_id"`
	UserID    int64          `db:"user_id"`
	Title     string         `db:"title"`
	Content   string         `db:"content"`
	Tags      string         `db:"tags"`
	Folder    sql.NullString `db:"folder"`
	IsPinned  bool           `db:"is_pinned"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r noteRow) toModel() model.Note {
	n := model.Note{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		Tags:      decodeTags(r.Tags),
		IsPinned:  r.IsPinned,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Folder.Valid {
		folder := r.Folder.String
		n.Folder = &folder
	}
	return n
}

func encodeTags(tags model.Tags) (string, error) {
	if tags == nil {
		tags = model.Tags{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeTags never fails: a corrupt column reads back as an empty list.
func decodeTags(s string) model.Tags {
	var tags model.Tags
	if err := json.Unmarshal([]byte(s), &tags); err != nil || tags == nil {
		return model.Tags{}
	}
	return tags
}

func nullFolder(folder *string) sql.NullString {
	if folder == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *folder, Valid: true}
}

// NoteRepository handles note persistence operations.
type NoteRepository struct {
	db *sqlx.DB
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts a note and sets the generated ID and timestamps on it.
func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	query := `INSERT INTO notes (user_id, title, content, tags, folder, is_pinned, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}

	ts := now()
	result, err := r.db.ExecContext(ctx, query,
		note.UserID, note.Title, note.Content, tags, nullFolder(note.Folder), note.IsPinned, ts, ts,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	note.ID = id
	note.CreatedAt = ts
	note.UpdatedAt = ts
	return nil
}

// ListByUser returns every note owned by userID, newest first.
func (r *NoteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes n WHERE n.user_id = ?
		ORDER BY n.created_at DESC, n.note_id DESC`

	var rows []noteRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	notes := make([]model.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, row.toModel())
	}
	return notes, nil
}

// GetByID retrieves a note only if it belongs to userID.
func (r *NoteRepository) GetByID(ctx context.Context, userID, noteID int64) (*model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes n WHERE n.note_id = ? AND n.user_id = ?`
	return getNote(ctx, r.db, query, noteID, userID)
}

// BeginTx starts a new database transaction.
func (r *NoteRepository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

// GetForUpdateTx reads an owned note inside tx, locking the row on MySQL.
func (r *NoteRepository) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, userID, noteID int64) (*model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes n WHERE n.note_id = ? AND n.user_id = ?`
	if !isSQLite(r.db) {
		query += ` FOR UPDATE`
	}
	return getNote(ctx, tx, query, noteID, userID)
}

// UpdateTx writes every mutable field of note within tx and refreshes UpdatedAt.
func (r *NoteRepository) UpdateTx(ctx context.Context, tx *sqlx.Tx, note *model.Note) error {
	query := `UPDATE notes SET title = ?, content = ?, tags = ?, folder = ?, is_pinned = ?, updated_at = ?
		WHERE note_id = ? AND user_id = ?`

	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}

	ts := now()
	result, err := tx.ExecContext(ctx, query,
		note.Title, note.Content, tags, nullFolder(note.Folder), note.IsPinned, ts,
		note.ID, note.UserID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNoteNotFound
	}

	note.UpdatedAt = ts
	return nil
}

// Delete removes a note owned by userID. Shares pointing at it are left in place.
func (r *NoteRepository) Delete(ctx context.Context, userID, noteID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE note_id = ? AND user_id = ?`, noteID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func getNote(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (*model.Note, error) {
	var row noteRow
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	note := row.toModel()
	return &note, nil
}
