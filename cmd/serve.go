package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/chord"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/constants"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/db"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/format"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/model"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/song"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/songbook"
)

var book *songbook.Book

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the songbook over HTTP",
	Long:  `Serves a songbook API: submit chord sheets, fetch the parsed form, and render them transposed to any shape key.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeFiles prepares the handlers' shared state. Exposed so the e2e
// tests can run handlers without a listener.
func LoadServeFiles() {
	book = songbook.LoadOrNew(constants.GetSongbookPath())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleCreateSong(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body")
		return
	}

	var input model.CreateSongRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	var metadata *model.SongMetadata
	if db.Enabled() && input.Title != "" {
		if m, ok := db.GetSongMetadatas([]string{input.Title})[input.Title]; ok {
			metadata = &m
		}
	}

	var results []model.CreateSongResult
	for _, block := range song.SplitBlocks(input.Text) {
		parsed := song.Parse(block)
		entry := book.Add(input.Title, parsed, metadata)
		results = append(results, model.CreateSongResult{
			Id:          entry.Id,
			Key:         parsed.Key,
			NumSections: len(parsed.Sections),
		})
	}

	if err := book.Save(constants.GetSongbookPath()); err != nil {
		fmt.Printf("Could not save songbook: %v\n", err)
	}
	json.NewEncoder(w).Encode(results)
}

func HandleGetSong(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	entry, ok := book.Get(id)
	if !ok {
		writeError(w, 404, "No song with id "+id)
		return
	}
	json.NewEncoder(w).Encode(model.SongResponse{
		Id:       entry.Id,
		Title:    entry.Title,
		Song:     entry.Song,
		Metadata: entry.Metadata,
	})
}

func HandleRenderSong(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	entry, ok := book.Get(id)
	if !ok {
		writeError(w, 404, "No song with id "+id)
		return
	}

	parsed := entry.Song
	shapeKey := r.URL.Query().Get("shape")
	if shapeKey == "" {
		shapeKey = parsed.Key
	}

	transform := func(text string) string {
		return chord.ToShapeKey(text, parsed.Key, shapeKey)
	}

	res := model.RenderResponse{
		ShapeKey: shapeKey,
		CapoFret: chord.CapoOffset(shapeKey, parsed.Key),
	}
	for _, section := range parsed.Sections {
		rendered := model.RenderedSection{Label: section.Label}
		for _, le := range section.Lines {
			line := model.RenderedLine{Lyric: le.LyricLine}
			if len(le.Chords) > 0 {
				line.Segments = format.Line(le.Chords, le.LyricLine, transform)
			}
			rendered.Lines = append(rendered.Lines, line)
		}
		res.Sections = append(res.Sections, rendered)
	}
	json.NewEncoder(w).Encode(res)
}

func HandleListSongs(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(book.Ids())
}

func serve() {
	LoadServeFiles()
	fmt.Printf("Serving %v songs on port %v\n", book.Len(), constants.GetPort())

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/songs", HandleCreateSong).Methods("POST")
	router.HandleFunc("/songs", HandleListSongs).Methods("GET")
	router.HandleFunc("/songs/{id}", HandleGetSong).Methods("GET")
	router.HandleFunc("/songs/{id}/render", HandleRenderSong).Methods("GET")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
