//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/fretdex/cmd"
	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
)

const testDict = `[
	{"id": "c", "root": "C", "quality": "maj", "formula": [0, 4, 7],
	 "displayName": "C", "notes": ["C", "E", "G"], "aliases": ["Cmaj"], "category": "triads"},
	{"id": "csharp", "root": "C#", "quality": "maj", "formula": [0, 4, 7],
	 "displayName": "C#", "notes": ["C#", "E#", "G#"], "category": "triads"},
	{"id": "gsharpm", "root": "G#", "quality": "min", "formula": [0, 3, 7],
	 "displayName": "G#m", "notes": ["G#", "B", "D#"], "category": "triads"}
]`

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "fretdex-e2e")
	if err != nil {
		panic(err.Error())
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "chords.json")
	if err := os.WriteFile(path, []byte(testDict), 0644); err != nil {
		panic(err.Error())
	}
	if err := cmd.LoadIndex(path); err != nil {
		panic(err.Error())
	}

	os.Exit(m.Run())
}

func TestSearchEndToEnd(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/search?q=db", nil)
	w := httptest.NewRecorder()
	cmd.HandleSearch(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var searchResponse model.SearchResponse
	err := json.Unmarshal(respBody, &searchResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal("db", searchResponse.Query)
	assert.NotEmpty(searchResponse.Results)
	assert.Equal("csharp", searchResponse.Results[0].ID)
}

func TestSuggestEndToEnd(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/suggest?q=gs", nil)
	w := httptest.NewRecorder()
	cmd.HandleSuggest(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var suggestResponse model.SuggestResponse
	err := json.Unmarshal(respBody, &suggestResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.NotEmpty(suggestResponse.Suggestions)
	assert.Equal("G sharp", suggestResponse.Suggestions[0].Text)
}

func TestVoicingsEndToEnd(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/voicings?root=B&quality=dim", nil)
	w := httptest.NewRecorder()
	cmd.HandleVoicings(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var voicingsResponse model.VoicingsResponse
	err := json.Unmarshal(respBody, &voicingsResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.NotEmpty(voicingsResponse.Shapes)
	for _, s := range voicingsResponse.Shapes {
		assert.True(s.IsTriad, s.Label)
	}
}

func TestVoicingsBadRootEndToEnd(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/voicings?root=H", nil)
	w := httptest.NewRecorder()
	cmd.HandleVoicings(w, req)

	assert := assert.New(t)
	assert.Equal(400, w.Result().StatusCode)

	var errResponse model.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &errResponse)
	if err != nil {
		panic(err.Error())
	}
	assert.Contains(errResponse.Error, "unrecognized root")
}
