package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/chordindex"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/dict"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/voicing"
)

var chordIdx atomic.Pointer[chordindex.Index]
var serveDict string

// reloads in quick succession collapse into one rebuild
var reloadDebounced = debounce.New(500 * time.Millisecond)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveDict, "dict", "", "path to the chord dictionary")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the search and voicing API",
	Long:  `Serves the search and voicing API`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadIndex(serveDict); err != nil {
			return err
		}
		serve()
		return nil
	},
}

// LoadIndex loads the dictionary and swaps in a freshly built index. The
// swap is atomic; in-flight requests keep the index they already loaded.
func LoadIndex(path string) error {
	defs, err := dict.Load(path)
	if err != nil {
		return err
	}
	idx := chordindex.New(defs)
	chordIdx.Store(idx)
	fmt.Printf("Indexed %v chord definitions\n", idx.Size())
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func index(w http.ResponseWriter) *chordindex.Index {
	idx := chordIdx.Load()
	if idx == nil {
		writeError(w, "index not loaded", http.StatusServiceUnavailable)
	}
	return idx
}

func limitParam(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func HandleSearch(w http.ResponseWriter, r *http.Request) {
	idx := index(w)
	if idx == nil {
		return
	}
	q := r.URL.Query().Get("q")
	results := idx.Search(q, limitParam(r, constants.DefaultSearchLimit))
	if results == nil {
		results = []model.ChordDefinition{}
	}
	writeJSON(w, model.SearchResponse{Query: q, Results: results})
}

func HandleSuggest(w http.ResponseWriter, r *http.Request) {
	idx := index(w)
	if idx == nil {
		return
	}
	q := r.URL.Query().Get("q")
	suggestions := idx.Suggest(q, limitParam(r, constants.DefaultSuggestLimit))
	if suggestions == nil {
		suggestions = []model.Suggestion{}
	}
	writeJSON(w, model.SuggestResponse{Query: q, Suggestions: suggestions})
}

func HandleVoicings(w http.ResponseWriter, r *http.Request) {
	root := r.URL.Query().Get("root")
	quality := r.URL.Query().Get("quality")
	if theory.PitchClass(root) == theory.NotFound {
		writeError(w, "unrecognized root: "+root, http.StatusBadRequest)
		return
	}
	shapes := voicing.GenerateVoicings(root, quality)
	if shapes == nil {
		shapes = []model.GuitarChordShape{}
	}
	writeJSON(w, model.VoicingsResponse{Root: root, Quality: quality, Shapes: shapes})
}

func HandleKey(w http.ResponseWriter, r *http.Request) {
	root := r.URL.Query().Get("root")
	view := r.URL.Query().Get("view")
	pack := buildPackForView(root, view)
	if pack.Scale == nil {
		writeError(w, "unrecognized key: "+root+" "+view, http.StatusBadRequest)
		return
	}
	writeJSON(w, pack)
}

func HandleModes(w http.ResponseWriter, r *http.Request) {
	root := r.URL.Query().Get("root")
	modes := theory.BuildModes(root)
	if modes == nil {
		writeError(w, "unrecognized root: "+root, http.StatusBadRequest)
		return
	}
	writeJSON(w, modes)
}

func HandleCircle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, theory.CircleOfFifths())
}

func HandleRoot(w http.ResponseWriter, r *http.Request) {
	idx := index(w)
	if idx == nil {
		return
	}
	root := mux.Vars(r)["root"]
	defs := idx.FindByRoot(root)
	if defs == nil {
		defs = []model.ChordDefinition{}
	}
	writeJSON(w, defs)
}

func HandleCategories(w http.ResponseWriter, r *http.Request) {
	idx := index(w)
	if idx == nil {
		return
	}
	writeJSON(w, idx.Categories())
}

func HandleCategory(w http.ResponseWriter, r *http.Request) {
	idx := index(w)
	if idx == nil {
		return
	}
	defs := idx.ByCategory(mux.Vars(r)["name"])
	if defs == nil {
		defs = []model.ChordDefinition{}
	}
	writeJSON(w, defs)
}

func HandleReload(w http.ResponseWriter, r *http.Request) {
	reloadDebounced(func() {
		if err := LoadIndex(serveDict); err != nil {
			fmt.Printf("Reload failed: %v\n", err)
		}
	})
	w.WriteHeader(http.StatusAccepted)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/search", HandleSearch).Methods("GET")
	router.HandleFunc("/suggest", HandleSuggest).Methods("GET")
	router.HandleFunc("/voicings", HandleVoicings).Methods("GET")
	router.HandleFunc("/key", HandleKey).Methods("GET")
	router.HandleFunc("/modes", HandleModes).Methods("GET")
	router.HandleFunc("/circle", HandleCircle).Methods("GET")
	router.HandleFunc("/chords/roots/{root}", HandleRoot).Methods("GET")
	router.HandleFunc("/categories", HandleCategories).Methods("GET")
	router.HandleFunc("/categories/{name}", HandleCategory).Methods("GET")
	router.HandleFunc("/reload", HandleReload).Methods("POST")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
