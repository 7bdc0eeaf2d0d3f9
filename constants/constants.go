package constants

import "os"

func GetDictPath() string {
	return os.Getenv("CHORD_DICT_PATH")
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// DictCandidates are tried in order when CHORD_DICT_PATH is not set.
var DictCandidates = []string{
	"chords.json",
	"assets/chords.json",
	"data/chords.json",
}

const DefaultSearchLimit = 25

const DefaultSuggestLimit = 8
