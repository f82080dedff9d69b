package gallery

import "time"

// ImageObject is one object in the gallery bucket prefix. The bucket is the
// source of truth; no database row backs an image.
type ImageObject struct {
	URL          string    `json:"url"`
	Key          string    `json:"key"`
	LastModified time.Time `json:"last_modified,omitempty"`
	Size         int64     `json:"size,omitempty"`
}

// UploadResult is returned after a successful upload.
type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
}

// RenamePhase identifies which phase of a two-phase rename failed.
type RenamePhase string

const (
	RenamePhaseCopy   RenamePhase = "copy"
	RenamePhaseDelete RenamePhase = "delete"
)

// RenameResult reports the outcome of each rename phase so callers can
// retry or clean up after a partial failure. Copied && !Deleted means both
// keys exist; !Copied means nothing changed.
type RenameResult struct {
	OldKey  string `json:"old_key"`
	NewKey  string `json:"new_key"`
	Copied  bool   `json:"copied"`
	Deleted bool   `json:"deleted"`
}

// RenameError carries the phase that failed alongside the cause.
type RenameError struct {
	Phase RenamePhase
	Err   error
}

func (e *RenameError) Error() string {
	return "rename " + string(e.Phase) + " phase failed: " + e.Err.Error()
}

func (e *RenameError) Unwrap() error {
	return e.Err
}
