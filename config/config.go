package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional chordsheet.toml: render preferences and the strict
// parsing switch. Everything has a lenient default.
type Config struct {
	// ShapeKey is the default reference key for render/transpose output.
	// Empty means render in the song's own key.
	ShapeKey string `toml:"shape_key"`
	// CapoKeys are the shape keys the capo table is printed for.
	CapoKeys []string `toml:"capo_keys"`
	// Strict makes commands report chord-line text the scanner couldn't
	// parse. Parsing itself stays lenient either way.
	Strict bool `toml:"strict"`
}

func Default() Config {
	return Config{
		// the open-chord keys a guitarist actually capos from
		CapoKeys: []string{"C", "D", "E", "G", "A"},
	}
}

// Load reads a TOML config file, falling back to defaults when the file is
// missing. A file that exists but doesn't parse is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
