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
	ErrShareEmailRequired = apperr.New(apperr.Validation, "shared_with_email is required")
	ErrShareNotFound      = apperr.New(apperr.NotFound, "Share not found or unauthorized")
)

// ShareService grants, lists and revokes access to notes by email.
type ShareService struct {
	notes  *repository.NoteRepository
	shares *repository.ShareRepository
}

// NewShareService creates a new ShareService.
func NewShareService(notes *repository.NoteRepository, shares *repository.ShareRepository) *ShareService {
	return &ShareService{notes: notes, shares: shares}
}

// Share grants req.SharedWithEmail access to a note the caller owns.
func (s *ShareService) Share(ctx context.Context, id model.Identity, noteID int64, req model.ShareRequest) (model.ShareResponse, error) {
	if req.SharedWithEmail == "" {
		return model.ShareResponse{}, ErrShareEmailRequired
	}

	if _, err := s.notes.GetByID(ctx, id.UserID, noteID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return model.ShareResponse{}, ErrNoteNotOwned
		}
		return model.ShareResponse{}, fmt.Errorf("checking note owner: %w", err)
	}

	permission := req.PermissionLevel
	if permission == "" {
		permission = model.DefaultPermissionLevel
	}

	share := &model.Share{
		NoteID:          noteID,
		SharedByUserID:  id.UserID,
		SharedWithEmail: req.SharedWithEmail,
		PermissionLevel: permission,
	}
	if err := s.shares.Create(ctx, share); err != nil {
		return model.ShareResponse{}, fmt.Errorf("creating share: %w", err)
	}

	return model.ShareResponse{ShareID: share.ID}, nil
}

// ListSharedWithMe returns the notes shared with the caller's email.
func (s *ShareService) ListSharedWithMe(ctx context.Context, id model.Identity) ([]model.SharedNote, error) {
	shared, err := s.shares.ListForRecipient(ctx, id.Email)
	if err != nil {
		return nil, fmt.Errorf("listing shared notes: %w", err)
	}
	return shared, nil
}

// Revoke deletes a grant the caller created on noteID.
func (s *ShareService) Revoke(ctx context.Context, id model.Identity, noteID, shareID int64) error {
	err := s.shares.Delete(ctx, id.UserID, noteID, shareID)
	if errors.Is(err, repository.ErrShareNotFound) {
		return ErrShareNotFound
	}
	if err != nil {
		return fmt.Errorf("revoking share: %w", err)
	}
	return nil
}
