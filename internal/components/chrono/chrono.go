package chrono

import "time"

// JST is the fixed UTC+9 zone every date key is derived in.
var JST = time.FixedZone("JST", 9*60*60)

type API interface {
	Now() time.Time
	Location() *time.Location
}

type StandardImpl struct {
	location *time.Location
}

func NewStandardImpl() StandardImpl {
	return StandardImpl{location: JST}
}

func (s StandardImpl) Now() time.Time {
	return time.Now().In(s.location)
}

func (s StandardImpl) Location() *time.Location {
	return s.location
}

// FixedImpl always reports the same instant, it is used in tests.
type FixedImpl struct {
	At time.Time
}

func (f FixedImpl) Now() time.Time {
	return f.At.In(JST)
}

func (f FixedImpl) Location() *time.Location {
	return JST
}

// DateKey formats t as YYYYMMDD in the UTC+9 zone.
func DateKey(t time.Time) string {
	return t.In(JST).Format("20060102")
}

// Yesterday returns the date key of the calendar day before now in UTC+9.
func Yesterday(api API) string {
	now := api.Now().In(JST)
	return DateKey(now.AddDate(0, 0, -1))
}

// ParseDateKey parses an 8 digit YYYYMMDD key into midnight of that day in UTC+9.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation("20060102", key, JST)
}
