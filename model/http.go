package model

type SearchResponse struct {
	Query   string            `json:"query"`
	Results []ChordDefinition `json:"results"`
}

type SuggestResponse struct {
	Query       string       `json:"query"`
	Suggestions []Suggestion `json:"suggestions"`
}

type VoicingsResponse struct {
	Root    string             `json:"root"`
	Quality string             `json:"quality"`
	Shapes  []GuitarChordShape `json:"shapes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
