package service

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/rs/zerolog/log"
)

const searchUserAgent = "Quokka/1.0 (study assistant)"

// SearchService queries the MediaWiki search API and normalizes the hits.
type SearchService interface {
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

type wikipediaSearchService struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewSearchService(cfg *config.Config) SearchService {
	return &wikipediaSearchService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// tagPattern matches any inline markup in a search snippet, including the
// searchmatch highlight spans MediaWiki injects.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

type wikiSearchResponse struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
		} `json:"search"`
	} `json:"query"`
}

func (s *wikipediaSearchService) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("format", "json")
	params.Set("utf8", "")
	params.Set("srlimit", strconv.Itoa(s.cfg.Wikipedia.SearchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.Wikipedia.ApiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamSearch, err)
	}
	req.Header.Set("User-Agent", searchUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("Wikipedia search request failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstreamSearch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("query", query).Msg("Wikipedia search returned non-OK status")
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamSearch, resp.StatusCode)
	}

	var body wikiSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUpstreamSearch, err)
	}

	results := make([]model.SearchResult, 0, len(body.Query.Search))
	for _, hit := range body.Query.Search {
		results = append(results, model.SearchResult{
			Title:   hit.Title,
			Link:    s.articleURL(hit.Title),
			Snippet: cleanSnippet(hit.Snippet),
		})
	}
	log.Info().Str("query", query).Int("hits", len(results)).Msg("Wikipedia search completed")
	return results, nil
}

// articleURL derives the canonical article link from the API endpoint host:
// spaces become underscores and the title is percent-encoded.
func (s *wikipediaSearchService) articleURL(title string) string {
	base := "https://en.wikipedia.org"
	if u, err := url.Parse(s.cfg.Wikipedia.ApiURL); err == nil && u.Host != "" {
		base = u.Scheme + "://" + u.Host
	}
	return base + "/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

func cleanSnippet(snippet string) string {
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(snippet, "")))
}
