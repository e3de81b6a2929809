package model

// SearchResult is one normalized encyclopedia hit. Snippet has all inline
// highlighting markup stripped; Link points at the canonical article URL.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
