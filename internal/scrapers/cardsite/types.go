package cardsite

// ListingRow is a single event as displayed on the listing page, every field is the raw text
// shown on the site.
type ListingRow struct {
	DateText  string
	Title     string
	Location  string
	Organizer string
	DetailURL string
}

// ResultEntry is a single placement of an event's results.
type ResultEntry struct {
	Rank        int
	PlayerID    string
	PlayerLabel string
	Points      int
	DeckID      string
	DeckURL     string
}
