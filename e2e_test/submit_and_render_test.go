//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/cmd"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/model"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "chordsheet-e2e")
	if err != nil {
		panic(err.Error())
	}
	os.Setenv("SONGBOOK_PATH", filepath.Join(dir, "songbook.dat"))
	cmd.LoadServeFiles()

	exitVal := m.Run()

	os.RemoveAll(dir)
	os.Exit(exitVal)
}

const sheet = "Key: A\n\nVERSE\nA            E\nLight of the world\n\n[CHORUS]\nD    A\nShine on us"

func createSongReqBody(title, text string) io.Reader {
	body := model.CreateSongRequestBody{Title: title, Text: text}
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func submitSheet(t *testing.T) model.CreateSongResult {
	req := httptest.NewRequest(http.MethodPost, "/songs", createSongReqBody("Light", sheet))
	w := httptest.NewRecorder()
	cmd.HandleCreateSong(w, req)

	resp := w.Result()
	assert.Equal(t, 200, resp.StatusCode)

	var results []model.CreateSongResult
	respBody, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(respBody, &results); err != nil {
		panic(err.Error())
	}
	assert.Len(t, results, 1)
	return results[0]
}

func TestSubmitAndFetchE2E(t *testing.T) {
	created := submitSheet(t)

	assert := assert.New(t)
	assert.Equal("A", created.Key)
	assert.Equal(2, created.NumSections)

	req := httptest.NewRequest(http.MethodGet, "/songs/"+created.Id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": created.Id})
	w := httptest.NewRecorder()
	cmd.HandleGetSong(w, req)

	resp := w.Result()
	assert.Equal(200, resp.StatusCode)

	var songResp model.SongResponse
	respBody, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(respBody, &songResp); err != nil {
		panic(err.Error())
	}
	assert.Equal("Light", songResp.Title)
	assert.Equal("VERSE", songResp.Song.Sections[0].Label)
	assert.Equal("CHORUS", songResp.Song.Sections[1].Label)
}

func TestRenderInShapeKeyE2E(t *testing.T) {
	created := submitSheet(t)

	req := httptest.NewRequest(http.MethodGet, "/songs/"+created.Id+"/render?shape=G", nil)
	req = mux.SetURLVars(req, map[string]string{"id": created.Id})
	w := httptest.NewRecorder()
	cmd.HandleRenderSong(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var rendered model.RenderResponse
	if err := json.Unmarshal(respBody, &rendered); err != nil {
		panic(err.Error())
	}
	// song in A with G shapes: capo 2, A drops to G
	assert.Equal("G", rendered.ShapeKey)
	assert.Equal(2, rendered.CapoFret)

	verse := rendered.Sections[0]
	assert.Equal("VERSE", verse.Label)
	first := verse.Lines[0]
	assert.Equal("Light of the world", first.Lyric)
	assert.Equal(model.SegmentChord, first.Segments[0].Kind)
	assert.Equal("G", first.Segments[0].Text)
}

func TestGetMissingSongE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/songs/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	w := httptest.NewRecorder()
	cmd.HandleGetSong(w, req)

	assert.Equal(t, 404, w.Result().StatusCode)
}
