package cardsite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	searchPath  = "/event_result_detail_search"
	resultsPath = "/event/result/%s"
	deckPath    = "/deck/confirm.html/deckID/%s"
)

// SearchURL is the url of the json results search endpoint.
func (c *Client) SearchURL(eventID, categoryCode string, offset int) string {
	return c.resolve(c.BaseUrl, searchPath, url.Values{
		"event_holding_id": []string{eventID},
		"category":         []string{categoryCode},
		"offset":           []string{strconv.Itoa(offset)},
		"order":            []string{"1"},
	})
}

// ResultsPageURL is the url of the page-th (1-based) human readable results page.
func (c *Client) ResultsPageURL(eventID, categoryCode string, page int) string {
	return c.resolve(c.BaseUrl, fmt.Sprintf(resultsPath, eventID), url.Values{
		"category": []string{categoryCode},
		"page":     []string{strconv.Itoa(page)},
	})
}

// DeckURL is the url of a deck's detail page.
func (c *Client) DeckURL(deckID string) string {
	return c.resolve(c.DeckBaseUrl, fmt.Sprintf(deckPath, deckID), nil)
}

// SearchResults queries a single page of results of an event.
func (c *Client) SearchResults(ctx context.Context, eventID, categoryCode string, offset int) ([]ResultEntry, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("accept", "application/json").
		SetHeader("referer", c.ResultsPageURL(eventID, categoryCode, 1)).
		Get(c.SearchURL(eventID, categoryCode, offset))
	if err != nil {
		c.tel.ReportWarning(report_client_search_results, fmt.Errorf("request: %w", err), eventID, offset)
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("search results: status %d", res.StatusCode())
		c.tel.ReportWarning(report_client_search_results, err, eventID, offset)
		return nil, err
	}

	entries, err := ParseSearchResults(res.Body())
	if err != nil {
		c.tel.ReportWarning(report_client_search_results, err, eventID, offset)
		return nil, err
	}
	for i := range entries {
		if entries[i].DeckURL == "" && entries[i].DeckID != "" {
			entries[i].DeckURL = c.DeckURL(entries[i].DeckID)
		}
	}
	return entries, nil
}

// the search endpoint has changed its shape a few times, so every field is looked up under all
// of the names it has been seen with.
var (
	listKeys        = []string{"results", "result", "data", "items"}
	rankKeys        = []string{"rank", "ranking", "order"}
	playerIdKeys    = []string{"player_id", "playerId", "user_id"}
	playerLabelKeys = []string{"name", "player_name", "playerName", "nickname"}
	pointKeys       = []string{"point", "points"}
	deckIdKeys      = []string{"deck_id", "deckId", "deckID"}
	deckUrlKeys     = []string{"deck_url", "deckUrl"}
)

// ParseSearchResults decodes the body of the results search endpoint. The body may be a bare
// array or an object holding the array under one of a few known keys.
func ParseSearchResults(body []byte) ([]ResultEntry, error) {
	var raw any
	err := json.Unmarshal(body, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}

	var list []any
	switch value := raw.(type) {
	case []any:
		list = value
	case map[string]any:
		for _, key := range listKeys {
			if inner, ok := value[key].([]any); ok {
				list = inner
				break
			}
		}
		if list == nil {
			return nil, fmt.Errorf("search results: no result list in object")
		}
	default:
		return nil, fmt.Errorf("search results: unexpected json %T", raw)
	}

	entries := make([]ResultEntry, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rank, ok := lookupInt(obj, rankKeys)
		if !ok {
			continue
		}
		points, _ := lookupInt(obj, pointKeys)
		entries = append(entries, ResultEntry{
			Rank:        rank,
			PlayerID:    lookupString(obj, playerIdKeys),
			PlayerLabel: lookupString(obj, playerLabelKeys),
			Points:      points,
			DeckID:      lookupString(obj, deckIdKeys),
			DeckURL:     lookupString(obj, deckUrlKeys),
		})
	}
	return entries, nil
}

func lookupString(obj map[string]any, keys []string) string {
	for _, key := range keys {
		switch value := obj[key].(type) {
		case string:
			if v := strings.TrimSpace(value); v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(value, 'f', -1, 64)
		}
	}
	return ""
}

func lookupInt(obj map[string]any, keys []string) (int, bool) {
	for _, key := range keys {
		switch value := obj[key].(type) {
		case float64:
			return int(value), true
		case string:
			// ranks are sometimes shown as "3位"
			digits := strings.TrimRightFunc(strings.TrimSpace(value), func(r rune) bool {
				return r < '0' || r > '9'
			})
			n, err := strconv.Atoi(digits)
			if err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
