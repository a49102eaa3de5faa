package models

type Video struct {
	ID       int64  `db:"id" json:"id"`
	Filename string `db:"filename" json:"filename"`
	Filepath string `db:"filepath" json:"filepath"`
	Status   string `db:"status" json:"status"` // queued, processing, processed, failed
}

const (
	VideoStatusQueued     = "queued"
	VideoStatusProcessing = "processing"
	VideoStatusProcessed  = "processed"
	VideoStatusFailed     = "failed"
)

// TransitionAllowed reports whether a video status change is legal.
// processed and failed are terminal.
func TransitionAllowed(from, to string) bool {
	switch from {
	case VideoStatusQueued:
		return to == VideoStatusProcessing || to == VideoStatusFailed
	case VideoStatusProcessing:
		return to == VideoStatusProcessed || to == VideoStatusFailed
	default:
		return false
	}
}
