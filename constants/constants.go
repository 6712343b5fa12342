package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetSongbookPath() string {
	path := os.Getenv("SONGBOOK_PATH")
	if path != "" {
		return path
	}
	return "./songbook.dat"
}

func GetConfigPath() string {
	path := os.Getenv("CHORDSHEET_CONFIG")
	if path != "" {
		return path
	}
	return "./chordsheet.toml"
}
