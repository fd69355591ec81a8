package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sharenotes/sharenotes-go/internal/apperr"
	"github.com/sharenotes/sharenotes-go/internal/model"
	"github.com/sharenotes/sharenotes-go/internal/repository"
)

var (
	ErrTitleRequired = apperr.New(apperr.Validation, "Title is required")
	ErrNoteNotFound  = apperr.New(apperr.NotFound, "Note not found")
	ErrNoteNotOwned  = apperr.New(apperr.NotFound, "Note not found or unauthorized")
)

// NoteService handles owner-scoped note business logic.
type NoteService struct {
	repo *repository.NoteRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(repo *repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// List returns every note owned by the caller, newest first.
func (s *NoteService) List(ctx context.Context, id model.Identity) ([]model.Note, error) {
	notes, err := s.repo.ListByUser(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}

// Create stores a new note for the caller and returns its id.
func (s *NoteService) Create(ctx context.Context, id model.Identity, req model.CreateNoteRequest) (model.CreateNoteResponse, error) {
	if req.Title == "" {
		return model.CreateNoteResponse{}, ErrTitleRequired
	}

	note := &model.Note{
		UserID: id.UserID,
		Title:  req.Title,
		Tags:   req.Tags,
		Folder: req.Folder.Name,
	}
	if note.Tags == nil {
		note.Tags = model.Tags{}
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.IsPinned != nil {
		note.IsPinned = *req.IsPinned
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return model.CreateNoteResponse{}, fmt.Errorf("creating note: %w", err)
	}

	return model.CreateNoteResponse{NoteID: note.ID}, nil
}

// Get returns a single note owned by the caller.
func (s *NoteService) Get(ctx context.Context, id model.Identity, noteID int64) (model.Note, error) {
	note, err := s.repo.GetByID(ctx, id.UserID, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return model.Note{}, ErrNoteNotFound
		}
		return model.Note{}, fmt.Errorf("getting note: %w", err)
	}
	return *note, nil
}

// Update merges req into the caller's note. The read and the write happen in
// one transaction so concurrent updates cannot interleave.
func (s *NoteService) Update(ctx context.Context, id model.Identity, noteID int64, req model.UpdateNoteRequest) error {
	if req.Title != nil && *req.Title == "" {
		return ErrTitleRequired
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	note, err := s.repo.GetForUpdateTx(ctx, tx, id.UserID, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return ErrNoteNotOwned
		}
		return fmt.Errorf("loading note: %w", err)
	}

	req.Apply(note)

	if err := s.repo.UpdateTx(ctx, tx, note); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return ErrNoteNotOwned
		}
		return fmt.Errorf("updating note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Delete removes the caller's note. Shares of the note are not touched.
func (s *NoteService) Delete(ctx context.Context, id model.Identity, noteID int64) error {
	err := s.repo.Delete(ctx, id.UserID, noteID)
	if errors.Is(err, repository.ErrNoteNotFound) {
		return ErrNoteNotOwned
	}
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}
