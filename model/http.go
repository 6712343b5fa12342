package model

type CreateSongRequestBody struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// One result per song block in the submitted text.
type CreateSongResult struct {
	Id          string `json:"id"`
	Key         string `json:"key"`
	NumSections int    `json:"num_sections"`
}

type SongResponse struct {
	Id       string        `json:"id"`
	Title    string        `json:"title"`
	Song     ParsedSong    `json:"song"`
	Metadata *SongMetadata `json:"metadata,omitempty"`
}

type RenderedLine struct {
	Segments []Segment `json:"segments,omitempty"`
	Lyric    string    `json:"lyric"`
}

type RenderedSection struct {
	Label string         `json:"label"`
	Lines []RenderedLine `json:"lines"`
}

type RenderResponse struct {
	ShapeKey string            `json:"shape_key"`
	CapoFret int               `json:"capo_fret"`
	Sections []RenderedSection `json:"sections"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
