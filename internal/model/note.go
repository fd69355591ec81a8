package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Tags is an ordered list of note labels. Decoding a JSON value that is not an
// array of strings yields an empty list rather than an error.
type Tags []string

func (t *Tags) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err != nil || list == nil {
		*t = Tags{}
		return nil
	}
	*t = list
	return nil
}

// Folder is a folder label in a request body. JSON false decodes like null,
// meaning no folder.
type Folder struct {
	Name *string
}

func (f *Folder) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "null", "false":
		f.Name = nil
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	f.Name = &name
	return nil
}

// Note is a user's note as exposed by the API.
type Note struct {
	ID        int64     `json:"note_id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      Tags      `json:"tags"`
	Folder    *string   `json:"folder"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateNoteRequest is the body of POST /notes.
type CreateNoteRequest struct {
	Title    string  `json:"title"`
	Content  *string `json:"content"`
	Tags     Tags    `json:"tags"`
	Folder   Folder  `json:"folder"`
	IsPinned *bool   `json:"is_pinned"`
}

// UpdateNoteRequest is the body of PUT /notes/{id}.
// A nil field (absent or JSON null) keeps the stored value. Folder false
// clears the folder.
type UpdateNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Tags     *Tags   `json:"tags"`
	Folder   *Folder `json:"folder"`
	IsPinned *bool   `json:"is_pinned"`
}

// Apply merges the request into n, overwriting only the fields that were supplied.
func (r UpdateNoteRequest) Apply(n *Note) {
	if r.Title != nil {
		n.Title = *r.Title
	}
	if r.Content != nil {
		n.Content = *r.Content
	}
	if r.Tags != nil {
		n.Tags = *r.Tags
	}
	if r.Folder != nil {
		n.Folder = r.Folder.Name
	}
	if r.IsPinned != nil {
		n.IsPinned = *r.IsPinned
	}
}

// CreateNoteResponse carries the id of the newly created note.
type CreateNoteResponse struct {
	NoteID int64 `json:"note_id"`
}
