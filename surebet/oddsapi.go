package surebet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultOddsAPIURL = "https://api.the-odds-api.com/v4"

// OddsAPIClient talks to the-odds-api.com v4 and implements OddsSource.
type OddsAPIClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewOddsAPIClient(baseURL, apiKey string) *OddsAPIClient {
	if baseURL == "" {
		baseURL = defaultOddsAPIURL
	}
	return &OddsAPIClient{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *OddsAPIClient) Sports(ctx context.Context) ([]Sport, error) {
	var sports []Sport
	if err := c.get(ctx, "/sports/", url.Values{}, &sports); err != nil {
		return nil, fmt.Errorf("fetch sports: %w", err)
	}
	return sports, nil
}

func (c *OddsAPIClient) Odds(ctx context.Context, sportKey string) ([]Match, error) {
	params := url.Values{}
	params.Set("regions", "us,uk,eu")
	params.Set("markets", "h2h")
	params.Set("oddsFormat", "decimal")

	var raw []struct {
		ID           string      `json:"id"`
		SportKey     string      `json:"sport_key"`
		SportTitle   string      `json:"sport_title"`
		CommenceTime string      `json:"commence_time"`
		HomeTeam     string      `json:"home_team"`
		AwayTeam     string      `json:"away_team"`
		Bookmakers   []Bookmaker `json:"bookmakers"`
	}
	if err := c.get(ctx, "/sports/"+sportKey+"/odds/", params, &raw); err != nil {
		return nil, fmt.Errorf("fetch odds for %s: %w", sportKey, err)
	}

	matches := make([]Match, 0, len(raw))
	for _, m := range raw {
		commence, _ := time.Parse(time.RFC3339, m.CommenceTime)
		matches = append(matches, Match{
			ID:           m.ID,
			SportKey:     m.SportKey,
			SportTitle:   m.SportTitle,
			CommenceTime: commence,
			HomeTeam:     m.HomeTeam,
			AwayTeam:     m.AwayTeam,
			Bookmakers:   m.Bookmakers,
		})
	}
	return matches, nil
}

func (c *OddsAPIClient) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("apiKey", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("odds api status %d: %s", resp.StatusCode, string(body))
	}
	return json.Unmarshal(body, out)
}
