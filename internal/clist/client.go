// Package clist fetches contest listings from the clist.by API and
// translates them into the bot's canonical form. Platform-name translation
// and timezone normalization happen here and nowhere else.
package clist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/contract"
	"github.com/sstlounge/contest-bot/internal/domain/entity"
)

const (
	defaultBaseURL = "https://clist.by/api/v4/contest/"
	fetchTimeout   = 15 * time.Second

	// clist timestamps carry no offset and are UTC.
	timeLayout = "2006-01-02T15:04:05"
)

// resourceByPlatform maps canonical platforms to clist resource identifiers.
var resourceByPlatform = map[domain.Platform]string{
	domain.PlatformCodeforces: "codeforces.com",
	domain.PlatformCodeChef:   "codechef.com",
	domain.PlatformAtCoder:    "atcoder.jp",
	domain.PlatformLeetCode:   "leetcode.com",
}

var platformByResource = func() map[string]domain.Platform {
	m := make(map[string]domain.Platform, len(resourceByPlatform))
	for platform, resource := range resourceByPlatform {
		m[resource] = platform
	}
	return m
}()

type Client struct {
	baseURL    string
	username   string
	apiKey     string
	httpClient *http.Client
}

// New creates a clist client authenticated with the given API credentials.
func New(username, apiKey string) *Client {
	return &Client{
		baseURL:  defaultBaseURL,
		username: username,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// NewWithBaseURL is used by tests to point the client at a local server.
func NewWithBaseURL(username, apiKey, baseURL string) *Client {
	c := New(username, apiKey)
	c.baseURL = baseURL
	return c
}

// compile-time check that Client satisfies the source contract
var _ contract.ContestSource = (*Client)(nil)

type contestResponse struct {
	Objects []contestObject `json:"objects"`
}

type contestObject struct {
	ID       int64  `json:"id"`
	Event    string `json:"event"`
	Resource string `json:"resource"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Href     string `json:"href"`
}

// Fetch returns the platform's contests starting within [start, end),
// normalized to entity.Contest with UTC instants.
func (c *Client) Fetch(ctx context.Context, start, end time.Time, platform domain.Platform) ([]*entity.Contest, error) {
	resource, ok := resourceByPlatform[platform]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPlatform, platform)
	}

	params := url.Values{}
	params.Set("resource", resource)
	params.Set("start__gte", start.UTC().Format(timeLayout))
	params.Set("start__lt", end.UTC().Format(timeLayout))
	params.Set("order_by", "start")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build clist request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("ApiKey %s:%s", c.username, c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clist request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("clist returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded contestResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode clist response: %w", err)
	}

	return c.normalize(decoded.Objects), nil
}

// normalize translates raw clist records to entities. Malformed records are
// skipped with a log line; one bad contest must not sink the batch.
func (c *Client) normalize(objects []contestObject) []*entity.Contest {
	fetchedAt := time.Now().UTC()

	var contests []*entity.Contest
	for _, obj := range objects {
		platform, ok := platformByResource[obj.Resource]
		if !ok {
			log.Printf("Skipping contest %d with unknown resource %q", obj.ID, obj.Resource)
			continue
		}

		startTime, err := parseTime(obj.Start)
		if err != nil {
			log.Printf("Skipping contest %d with invalid start time %q: %v", obj.ID, obj.Start, err)
			continue
		}

		endTime, err := parseTime(obj.End)
		if err != nil {
			log.Printf("Skipping contest %d with invalid end time %q: %v", obj.ID, obj.End, err)
			continue
		}

		if !startTime.Before(endTime) {
			log.Printf("Skipping contest %d: start %s is not before end %s", obj.ID, obj.Start, obj.End)
			continue
		}

		contests = append(contests, &entity.Contest{
			Platform:  platform,
			SourceID:  obj.ID,
			Name:      obj.Event,
			StartTime: startTime,
			EndTime:   endTime,
			URL:       obj.Href,
			FetchedAt: fetchedAt,
		})
	}

	return contests
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
