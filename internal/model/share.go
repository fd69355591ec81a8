package model

import "time"

// DefaultPermissionLevel is applied when a share request omits permission_level.
const DefaultPermissionLevel = "view"

// Share is a grant giving an email address access to a note.
type Share struct {
	ID              int64     `db:"share_id"`
	NoteID          int64     `db:"note_id"`
	SharedByUserID  int64     `db:"shared_by_user_id"`
	SharedWithEmail string    `db:"shared_with_email"`
	PermissionLevel string    `db:"permission_level"`
	SharedAt        time.Time `db:"shared_at"`
}

// SharedNote is a note seen by a recipient, with the grant and sharer attached.
type SharedNote struct {
	Note
	ShareID         int64     `json:"share_id"`
	PermissionLevel string    `json:"permission_level"`
	SharedAt        time.Time `json:"shared_at"`
	SharedByName    string    `json:"shared_by_name"`
	SharedByEmail   string    `json:"shared_by_email"`
}

// ShareRequest is the body of POST /notes/share/{id}.
type ShareRequest struct {
	SharedWithEmail string `json:"shared_with_email"`
	PermissionLevel string `json:"permission_level"`
}

// ShareResponse carries the id of the newly created grant.
type ShareResponse struct {
	ShareID int64 `json:"share_id"`
}
