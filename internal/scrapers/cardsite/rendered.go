package cardsite

import (
	"leaguedecks-backend/internal/components/htmlutil"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DeckLinkSelector matches the deck links of a rendered results page.
	DeckLinkSelector   = `a[href*="deckID"]`
	playerLinkSelector = `a[href*="player_id"], a[href*="/player/"]`
	rowSelector        = "tr, li, .resultRow"
)

var (
	deckIdRegex   = regexp.MustCompile(`deckID/([A-Za-z0-9-]+)`)
	playerIdRegex = regexp.MustCompile(`(?:player_id=|/player/)([A-Za-z0-9-]+)`)
)

// DeckIDFromURL extracts the deck id from a deck url.
func DeckIDFromURL(deckURL string) string {
	groups := deckIdRegex.FindStringSubmatch(deckURL)
	if len(groups) < 2 {
		return ""
	}
	return groups[1]
}

// ParseRenderedResults returns an entry for every deck link of a rendered results page in page
// order. Ranks are left as 0 since the rendered page does not carry them in a parsable form, the
// player is taken from a player link in the same row if there is one.
func ParseRenderedResults(base *url.URL, doc *goquery.Document) []ResultEntry {
	var entries []ResultEntry
	doc.Find(DeckLinkSelector).Each(func(_ int, link *goquery.Selection) {
		anchors := htmlutil.GetAnchors(base, link)
		if len(anchors) == 0 {
			return
		}
		deckURL := anchors[0].Href
		deckID := DeckIDFromURL(deckURL)
		if deckID == "" {
			return
		}

		entry := ResultEntry{
			DeckID:  deckID,
			DeckURL: deckURL,
		}

		row := link.Closest(rowSelector)
		if row.Length() > 0 {
			player := row.Find(playerLinkSelector).First()
			if player.Length() > 0 {
				href, _ := player.Attr("href")
				groups := playerIdRegex.FindStringSubmatch(href)
				if len(groups) >= 2 {
					entry.PlayerID = groups[1]
				}
				entry.PlayerLabel = htmlutil.SelectionText(player)
			}
		}
		if entry.PlayerLabel == "" {
			entry.PlayerLabel = strings.TrimSpace(anchors[0].Name)
		}

		entries = append(entries, entry)
	})
	return entries
}
