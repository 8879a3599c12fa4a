package cardsite

import (
	"bytes"
	"context"
	"fmt"
	"leaguedecks-backend/internal/components/htmlutil"
	"net/url"
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

const (
	listingPath = "/event/search"

	listingItemSelector      = ".eventList .eventListItem"
	listingDateSelector      = ".date"
	listingTitleSelector     = ".title"
	listingLocationSelector  = ".building"
	listingOrganizerSelector = ".organizer"
)

// ListingPageURL is the url of the page-th (1-based) listing page.
func (c *Client) ListingPageURL(page int) string {
	return c.resolve(c.BaseUrl, listingPath, url.Values{
		"page": []string{strconv.Itoa(page)},
	})
}

// ListingPage fetches and parses the page-th (1-based) page of the event listing.
func (c *Client) ListingPage(ctx context.Context, page int) ([]ListingRow, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(c.ListingPageURL(page))
	if err != nil {
		c.tel.ReportBroken(report_client_listing_page, fmt.Errorf("request: %w", err), page)
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("listing page %d: status %d", page, res.StatusCode())
		c.tel.ReportBroken(report_client_listing_page, err)
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		c.tel.ReportBroken(report_client_listing_page, fmt.Errorf("parse: %w", err), page)
		return nil, err
	}
	return ParseListing(c.BaseUrl, doc), nil
}

// ParseListing extracts every listing row of a listing page, rows without a detail link are
// dropped.
func ParseListing(base *url.URL, doc *goquery.Document) []ListingRow {
	var rows []ListingRow
	doc.Find(listingItemSelector).Each(func(_ int, item *goquery.Selection) {
		links := item.Find("a[href]")
		if goquery.NodeName(item) == "a" {
			links = item
		}
		anchors := htmlutil.GetAnchors(base, links.First())
		if len(anchors) == 0 || anchors[0].Href == "" {
			return
		}

		rows = append(rows, ListingRow{
			DateText:  htmlutil.SelectionText(item.Find(listingDateSelector)),
			Title:     htmlutil.SelectionText(item.Find(listingTitleSelector)),
			Location:  htmlutil.SelectionText(item.Find(listingLocationSelector)),
			Organizer: htmlutil.SelectionText(item.Find(listingOrganizerSelector)),
			DetailURL: anchors[0].Href,
		})
	})
	return rows
}

var detailEventIdRegex = regexp.MustCompile(`/event/detail/(\d+)`)

// ParseEventID extracts the numeric event holding id out of a detail url.
func ParseEventID(detailURL string) (string, error) {
	groups := detailEventIdRegex.FindStringSubmatch(detailURL)
	if len(groups) < 2 {
		return "", fmt.Errorf("no event id in detail url '%s'", detailURL)
	}
	return groups[1], nil
}
