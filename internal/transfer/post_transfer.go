package transfer

type PostCreation struct {
	Title   string
	Content string
	VideoID int64 // pre-uploaded video id, 0 when absent
}

// FileUpload is an in-memory multipart file payload handed from the
// handlers to the services.
type FileUpload struct {
	Data        []byte
	Filename    string
	ContentType string
}

type TranscodeResponse struct {
	MasterPlaylist string `json:"master_playlist"`
}
