package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/matchdeck/matchdeck/internal/matches"
)

const defaultBase = "https://feed.matchdeck.io/v1"

// Client talks to the match feed API. It is safe for concurrent use.
type Client struct {
	apiKey  string
	http    *http.Client
	baseURL string
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBase,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// LiveMatches fetches the matches the feed currently reports as in play.
func (c *Client) LiveMatches(ctx context.Context) ([]matches.Match, error) {
	q := url.Values{}
	q.Set("state", matches.StateLive)

	var dto matchListDTO
	if err := c.doJSON(ctx, http.MethodGet, "/matches", q, &dto); err != nil {
		return nil, err
	}

	out := make([]matches.Match, 0, len(dto.Items))
	for _, it := range dto.Items {
		out = append(out, toMatch(it))
	}
	return out, nil
}

// Match fetches a single match by feed id.
func (c *Client) Match(ctx context.Context, id string) (*matches.Match, error) {
	var dto matchDTO
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/matches/%s", id), nil, &dto); err != nil {
		return nil, err
	}
	m := toMatch(dto)
	return &m, nil
}

func toMatch(d matchDTO) matches.Match {
	return matches.Match{
		ID:          d.MatchID,
		Game:        d.Game,
		Competition: d.Competition,
		HomeTeam:    d.Teams.Home.Name,
		AwayTeam:    d.Teams.Away.Name,
		HomeScore:   d.Teams.Home.Score,
		AwayScore:   d.Teams.Away.Score,
		State:       d.Status,
		StartedAt:   time.Unix(d.StartedAt, 0).UTC(),
	}
}

// doJSON builds the URL, attaches the bearer token and decodes the response.
// A 429 with a Retry-After header gets a single retry; a second 429 surfaces
// as an APIError like any other non-2xx status.
func (c *Client) doJSON(ctx context.Context, method, path string, q url.Values, out any) error {
	return c.do(ctx, method, path, q, out, false)
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, out any, retried bool) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("feed http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests && !retried {
		if ra := res.Header.Get("Retry-After"); ra != "" {
			if sec, _ := strconv.Atoi(ra); sec > 0 {
				select {
				case <-time.After(time.Duration(sec) * time.Second):
				case <-ctx.Done():
					return ctx.Err()
				}
				return c.do(ctx, method, path, q, out, true)
			}
		}
	}

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	return json.NewDecoder(res.Body).Decode(out)
}
