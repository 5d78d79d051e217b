// Package nba fetches games from the NBA's public data endpoints: the live
// scoreboard feed for today's games and the stats game finder for past dates.
// Future dates return an empty schedule since no reliable feed exists.
package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nba-scores-dashboard/internal/domain"
	"nba-scores-dashboard/internal/providers"
	"nba-scores-dashboard/internal/timeutil"
)

// Config controls how the client reaches the upstream endpoints.
type Config struct {
	LiveBaseURL  string
	StatsBaseURL string
	UserAgent    string
	HTTPClient   *http.Client
	// Timezone is the display timezone used for date routing and times.
	Timezone string
}

// Client fetches games from the NBA endpoints and maps them to domain models.
type Client struct {
	liveBaseURL  string
	statsBaseURL string
	userAgent    string
	httpClient   httpDoer
	now          func() time.Time
	loc          *time.Location
}

// NewClient constructs an NBA client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		liveBaseURL:  normalizeBaseURL(cfg.LiveBaseURL, defaultLiveBaseURL),
		statsBaseURL: normalizeBaseURL(cfg.StatsBaseURL, defaultStatsBaseURL),
		userAgent:    cfg.UserAgent,
		httpClient:   resolveHTTPClient(cfg.HTTPClient),
		now:          time.Now,
		loc:          resolveLocation(cfg.Timezone),
	}
}

// FetchGames retrieves the games for a date. Today routes to the live
// scoreboard, past dates to the historical finder, future dates to an empty
// set. An empty date means today in the display timezone.
func (c *Client) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	today := c.now().In(c.loc)
	target := today
	if date != "" {
		parsed, err := timeutil.ParseDate(date)
		if err != nil {
			return nil, &providers.RetrievalError{
				Provider: providerName,
				Err:      fmt.Errorf("invalid date %q: %w", date, err),
			}
		}
		target = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, c.loc)
	}

	switch {
	case timeutil.SameDate(target, today, c.loc):
		return c.fetchLive(ctx)
	case target.Before(today):
		return c.fetchHistorical(ctx, target)
	default:
		// No reliable future schedule feed.
		return []domain.Game{}, nil
	}
}

func (c *Client) fetchLive(ctx context.Context) ([]domain.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.liveBaseURL+scoreboardPath, nil)
	if err != nil {
		return nil, &providers.RetrievalError{Provider: providerName, Endpoint: "scoreboard", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	var payload scoreboardResponse
	if err := c.doJSON(req, "scoreboard", &payload); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(payload.Scoreboard.Games))
	for _, g := range payload.Scoreboard.Games {
		games = append(games, c.mapLiveGame(g))
	}
	return games, nil
}

func (c *Client) fetchHistorical(ctx context.Context, date time.Time) ([]domain.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.statsBaseURL+gameFinderPath, nil)
	if err != nil {
		return nil, &providers.RetrievalError{Provider: providerName, Endpoint: "gamefinder", Err: err}
	}

	day := date.Format(statsDateLayout)
	q := req.URL.Query()
	q.Set("DateFrom", day)
	q.Set("DateTo", day)
	q.Set("LeagueID", "00")
	q.Set("PlayerOrTeam", "T")
	req.URL.RawQuery = q.Encode()
	statsHeaders(req, c.userAgent)

	var payload gameFinderResponse
	if err := c.doJSON(req, "gamefinder", &payload); err != nil {
		return nil, err
	}

	lines, err := extractTeamLines(payload)
	if err != nil {
		return nil, &providers.RetrievalError{Provider: providerName, Endpoint: "gamefinder", Err: err}
	}
	return c.mapHistoricalGames(lines, date), nil
}

func (c *Client) doJSON(req *http.Request, endpoint string, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.RetrievalError{Provider: providerName, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.RetrievalError{
			Provider: providerName,
			Endpoint: endpoint,
			Err:      fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &providers.RetrievalError{Provider: providerName, Endpoint: endpoint, Err: err}
	}
	return nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
