package probe

import (
	"leaguedecks-backend/internal/model"
	"regexp"
	"strconv"
	"strings"
)

type Config struct {
	// MaxListingPages bounds how many listing pages are fetched per run.
	MaxListingPages int `json:"max_listing_pages"`
	// LeagueMarker must be part of an event title for it to be considered.
	LeagueMarker string `json:"league_marker"`
	// Keywords maps a category name to the title keyword that identifies it.
	Keywords map[string]string `json:"keywords"`
}

func DefaultConfig() Config {
	return Config{
		MaxListingPages: 5,
		LeagueMarker:    "シティリーグ",
		Keywords: map[string]string{
			"Open":   "オープン",
			"Senior": "シニア",
			"Junior": "ジュニア",
		},
	}
}

var dateTextRegex = regexp.MustCompile(`(?:\d{4}\s*[/年]\s*)?(\d{1,2})\s*[/月]\s*(\d{1,2})`)

// normalizeDateText turns "3/7(金)", "03/07 (Fri)", "2025/3/7(金)" or "2025年3月7日" into "3/7",
// the weekday suffix is ignored. An empty string is returned if no date is found.
func normalizeDateText(text string) string {
	if i := strings.IndexAny(text, "(（"); i >= 0 {
		text = text[:i]
	}
	match := dateTextRegex.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	month, _ := strconv.Atoi(match[1])
	day, _ := strconv.Atoi(match[2])
	return strconv.Itoa(month) + "/" + strconv.Itoa(day)
}

// classify returns the category of an event title, CategoryUnknown when the title is not a
// league event or does not match exactly one keyword.
func (c Config) classify(title string) model.Category {
	if c.LeagueMarker != "" && !strings.Contains(title, c.LeagueMarker) {
		return model.CategoryUnknown
	}

	found := model.CategoryUnknown
	for _, category := range model.Categories {
		keyword := c.Keywords[string(category)]
		if keyword == "" || !strings.Contains(title, keyword) {
			continue
		}
		if found != model.CategoryUnknown {
			return model.CategoryUnknown
		}
		found = category
	}
	return found
}
