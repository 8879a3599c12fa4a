package cardsite

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

var deckThumbnailRegex = regexp.MustCompile(`(https?://[^"'\s]+/deckView\.php/deckID/[A-Za-z0-9-]+(?:\.png)?)`)

var ErrNoThumbnail = fmt.Errorf("no thumbnail found on deck page")

// DeckThumbnail fetches a deck's detail page and returns the link of its thumbnail image.
func (c *Client) DeckThumbnail(ctx context.Context, deckURL string) (string, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(deckURL)
	if err != nil {
		c.tel.ReportWarning(report_client_deck_thumbnail, fmt.Errorf("request: %w", err), deckURL)
		return "", err
	}
	if res.IsError() {
		err := fmt.Errorf("deck page: status %d", res.StatusCode())
		c.tel.ReportWarning(report_client_deck_thumbnail, err, deckURL)
		return "", err
	}
	return ParseDeckThumbnail(res.Body())
}

// ParseDeckThumbnail finds the thumbnail link by pattern first and falls back to the og:image
// meta tag.
func ParseDeckThumbnail(body []byte) (string, error) {
	match := deckThumbnailRegex.FindSubmatch(body)
	if len(match) >= 2 {
		return string(match[1]), nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	og, ok := doc.Find(`meta[property="og:image"]`).Attr("content")
	if ok && og != "" {
		return og, nil
	}
	return "", ErrNoThumbnail
}
