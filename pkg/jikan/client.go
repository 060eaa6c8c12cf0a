package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"animebot/pkg/anime"

	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL     = "https://api.jikan.moe/v4"
	DefaultSearchLimit = 5

	// maxLoggedBody bounds how much of an error response ends up in the log.
	maxLoggedBody = 512
)

// Client talks to the Jikan REST API. Every call is a single GET with no retry
// and no cache; the transport's default timeout applies.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(baseURL, userAgent string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{},
		log:        log.With().Str("module", "jikan").Logger(),
	}
}

// SearchAnime returns up to limit hits for query. A limit <= 0 uses DefaultSearchLimit.
func (c *Client) SearchAnime(ctx context.Context, query string, limit int) ([]anime.AnimeSummary, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	var resp searchResponse
	if err := c.get(ctx, "search", "/anime", params, &resp); err != nil {
		return nil, err
	}

	results := make([]anime.AnimeSummary, 0, len(resp.Data))
	for _, a := range resp.Data {
		results = append(results, anime.AnimeSummary{ID: a.MalID, Title: a.Title})
	}
	return results, nil
}

func (c *Client) GetDetails(ctx context.Context, id int) (*anime.AnimeDetail, error) {
	var resp detailsResponse
	if err := c.get(ctx, "details", fmt.Sprintf("/anime/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		err := &Error{Op: "details", Kind: KindDecode, Detail: "missing data object", Err: fmt.Errorf("missing data object")}
		c.log.Error().Int("id", id).Stringer("kind", err.Kind).Msg("Details response had no data")
		return nil, err
	}
	return resp.Data.toDetail(), nil
}

// GetRecommendations returns the recommendation list for id in upstream order.
func (c *Client) GetRecommendations(ctx context.Context, id int) ([]anime.RecommendationEntry, error) {
	var resp recommendationsResponse
	if err := c.get(ctx, "recommendations", fmt.Sprintf("/anime/%d/recommendations", id), nil, &resp); err != nil {
		return nil, err
	}

	entries := make([]anime.RecommendationEntry, 0, len(resp.Data))
	for _, item := range resp.Data {
		entries = append(entries, anime.RecommendationEntry{
			ID:            item.Entry.MalID,
			Title:         item.Entry.Title,
			URL:           item.Entry.URL,
			CoverImageURL: item.Entry.Images.url(),
		})
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values, dest any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	logger := c.log.With().Str("op", op).Str("url", reqURL).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating request")
		return &Error{Op: op, Kind: KindNetwork, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("Error sending request")
		return &Error{Op: op, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error().Err(err).Int("status", resp.StatusCode).Msg("Error reading response body")
		return &Error{Op: op, Kind: KindNetwork, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt := truncateBody(body)
		logger.Error().Int("status", resp.StatusCode).Str("body", excerpt).Msg("Unexpected status from upstream")
		return &Error{
			Op:         op,
			Kind:       KindHTTPStatus,
			StatusCode: resp.StatusCode,
			Detail:     excerpt,
			Err:        fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		excerpt := truncateBody(body)
		logger.Error().Err(err).Str("body", excerpt).Msg("Error decoding response")
		return &Error{Op: op, Kind: KindDecode, Detail: err.Error(), Err: err}
	}

	logger.Debug().Int("status", resp.StatusCode).Msg("Request succeeded")
	return nil
}

func truncateBody(body []byte) string {
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "..."
	}
	return string(body)
}
