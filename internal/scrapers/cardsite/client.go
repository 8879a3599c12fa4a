// client.go contains the logic for talking to the card game results site, it does not know
// anything about how results are stored.

package cardsite

import (
	"fmt"
	"leaguedecks-backend/internal/components/assert"
	"leaguedecks-backend/internal/components/telemetry"
	"net/http/cookiejar"
	"net/url"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	report_client_listing_page   = "client.listing-page"
	report_client_search_results = "client.search-results"
	report_client_deck_thumbnail = "client.deck-thumbnail"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Config struct {
	BaseUrl     string `json:"base_url"`
	DeckBaseUrl string `json:"deck_base_url"`
	// RequestsPerSecond also acts as the burst size.
	RequestsPerSecond int `json:"requests_per_second"`
	TimeoutSeconds    int `json:"timeout_seconds"`
	// CategoryCodes maps a category name to the code the search endpoint expects.
	CategoryCodes map[string]string `json:"category_codes"`
	// DumpDir, when set, receives a copy of every http exchange.
	DumpDir string `json:"dump_dir"`
}

func DefaultConfig() Config {
	return Config{
		BaseUrl:           "https://players.pokemon-card.com",
		DeckBaseUrl:       "https://www.pokemon-card.com",
		RequestsPerSecond: 2,
		TimeoutSeconds:    30,
		CategoryCodes: map[string]string{
			"Junior": "1",
			"Senior": "2",
			"Open":   "3",
		},
	}
}

type Client struct {
	BaseUrl     *url.URL
	DeckBaseUrl *url.URL
	Http        *resty.Client

	categoryCodes map[string]string
	tel           telemetry.API
}

func NewClient(config Config, tel telemetry.API) (*Client, error) {
	assert.NotNil(tel, "tel")
	assert.NotEmptyStr(config.BaseUrl, "config.BaseUrl")

	tel = telemetry.NewScopedAPI("cardsite", tel)

	baseUrl, err := url.Parse(config.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	deckBaseUrl := baseUrl
	if config.DeckBaseUrl != "" {
		deckBaseUrl, err = url.Parse(config.DeckBaseUrl)
		if err != nil {
			return nil, fmt.Errorf("parse deck base url: %w", err)
		}
	}

	httpClient := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	httpClient.SetCookieJar(jar)
	httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	httpClient.SetHeader("user-agent", userAgent)

	timeout := config.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	httpClient.SetTimeout(time.Second * time.Duration(timeout))

	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	// max burst >= rps just means that no requests will be dropped
	rateLimiter := rate.NewLimiter(rate.Limit(rps), rps)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return rateLimiter.Wait(req.Context())
	})

	telemetry.InstrumentResty(httpClient, "leaguedecks.cardsite", tel)
	if config.DumpDir != "" {
		err = telemetry.DumpResty(httpClient, config.DumpDir, tel)
		if err != nil {
			return nil, fmt.Errorf("prepare dump dir: %w", err)
		}
	}

	codes := config.CategoryCodes
	if len(codes) == 0 {
		codes = DefaultConfig().CategoryCodes
	}

	return &Client{
		BaseUrl:       baseUrl,
		DeckBaseUrl:   deckBaseUrl,
		Http:          httpClient,
		categoryCodes: codes,
		tel:           tel,
	}, nil
}

// CategoryCode returns the search endpoint code of a category name.
func (c *Client) CategoryCode(category string) (string, error) {
	code, ok := c.categoryCodes[category]
	if !ok {
		return "", fmt.Errorf("no code configured for category '%s'", category)
	}
	return code, nil
}

func (c *Client) resolve(base *url.URL, path string, query url.Values) string {
	ref := &url.URL{Path: path}
	if query != nil {
		ref.RawQuery = query.Encode()
	}
	return base.ResolveReference(ref).String()
}
