package songbook

import (
	"bytes"
	"encoding/gob"
	"os"
	"sync"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/model"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/util"
	"github.com/google/uuid"
)

// Entry is one stored song block.
type Entry struct {
	Id       string
	Title    string
	Song     model.ParsedSong
	Metadata *model.SongMetadata
}

// Book is an in-memory song store keyed by generated ids. Safe for
// concurrent handlers.
type Book struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func New() *Book {
	return &Book{entries: make(map[string]Entry)}
}

func (b *Book) Add(title string, song model.ParsedSong, metadata *model.SongMetadata) Entry {
	entry := Entry{
		Id:       uuid.New().String(),
		Title:    title,
		Song:     song,
		Metadata: metadata,
	}
	b.mu.Lock()
	b.entries[entry.Id] = entry
	b.mu.Unlock()
	return entry
}

func (b *Book) Get(id string) (Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	entry, ok := b.entries[id]
	return entry, ok
}

func (b *Book) Ids() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return util.GetKeys(b.entries)
}

func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Save writes the whole book to disk as gob.
func (b *Book) Save(path string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)
	if err := encoder.Encode(b.entries); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0666)
}

// LoadOrNew restores a book saved by Save. A missing file is not an error;
// it just means an empty book.
func LoadOrNew(path string) *Book {
	f, err := os.Open(path)
	if err != nil {
		return New()
	}
	defer f.Close()

	var entries map[string]Entry
	decoder := gob.NewDecoder(f)
	if err := decoder.Decode(&entries); err != nil {
		panic("Could not decode songbook file: " + err.Error())
	}
	return &Book{entries: entries}
}
