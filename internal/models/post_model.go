package models

type Post struct {
	ID           int64  `db:"id" json:"id"`
	Title        string `db:"title" json:"title"`
	Content      string `db:"content" json:"content"`
	Image        string `db:"image" json:"image,omitempty"`
	VideoID      *int64 `db:"video_id" json:"video_id,omitempty"`
	CreatedYear  int    `db:"created_year" json:"created_year"`
	CreatedMonth int    `db:"created_month" json:"created_month"`
	CreatedDay   int    `db:"created_day" json:"created_day"`
	CreatedTime  string `db:"created_time" json:"created_time"`

	// Display-only fields filled in by the service layer.
	Timestamp string `json:"timestamp,omitempty"`
	Video     *Video `json:"video,omitempty"`
}
