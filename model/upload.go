package model

import "time"

// UploadTask tracks one simulated file upload.
type UploadTask struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	Status    string    `json:"status"` // uploading, success, error
	Progress  float64   `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Upload status constants
const (
	UploadStatusUploading = "uploading"
	UploadStatusSuccess   = "success"
	UploadStatusError     = "error"
)

// Terminal reports whether the task can no longer change state.
func (t *UploadTask) Terminal() bool {
	return t.Status == UploadStatusSuccess || t.Status == UploadStatusError
}
