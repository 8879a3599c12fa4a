package acquire

type Config struct {
	// PageSize is the amount of results per page of the search endpoint and per rendered page.
	PageSize int `json:"page_size"`
	// Buckets assigns a rank to every link position of a rendered results page, Buckets[0] is
	// page 1. Pages after the first are only read for the Open category.
	Buckets [][]int `json:"buckets"`
	// RescueOnForce re-runs the ladder for the other categories when a forced run finds nothing
	// for the assigned one.
	RescueOnForce bool `json:"rescue_on_force"`
}

// DefaultBuckets mirrors how the site displays ties: the top eight of page 1 are shown as
// 1, 1, 1 and five times 3 and the eight entries of page 2 are all 9th place.
func DefaultBuckets() [][]int {
	return [][]int{
		{1, 1, 1, 3, 3, 3, 3, 3},
		{9, 9, 9, 9, 9, 9, 9, 9},
	}
}

func DefaultConfig() Config {
	return Config{
		PageSize:      8,
		Buckets:       DefaultBuckets(),
		RescueOnForce: true,
	}
}

func (c Config) pageSize() int {
	if c.PageSize <= 0 {
		return 8
	}
	return c.PageSize
}

func (c Config) buckets() [][]int {
	if len(c.Buckets) == 0 {
		return DefaultBuckets()
	}
	return c.Buckets
}
