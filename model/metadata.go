package model

type SongMetadata struct {
	Artist  string `json:"artist"`
	Release string `json:"release"`
	Title   string `json:"title"`
	Year    uint   `json:"year"`
}
