package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Default endpoints. Both are free, unauthenticated services returning a
// country code or failing; callers treat every failure as "no opinion".
const (
	DefaultIPAPIURL          = "http://ip-api.com/json"
	DefaultReverseGeocodeURL = "https://api.bigdatacloud.net/data/reverse-geocode-client"
)

const lookupTimeout = 5 * time.Second

// Client resolves visitor countries through two independent strategies:
// reverse geocoding of device coordinates and IP-based lookup. Each lookup is
// bounded by lookupTimeout and never retried; successful results are cached
// so repeat visitors do not burn through the services' rate limits.
type Client struct {
	http       *http.Client
	ipAPIURL   string
	reverseURL string
	limiter    *rate.Limiter
	cache      Cache
}

type Option func(*Client)

// WithBaseURLs overrides the external service endpoints. Empty strings keep
// the defaults.
func WithBaseURLs(ipAPI, reverse string) Option {
	return func(c *Client) {
		if ipAPI != "" {
			c.ipAPIURL = ipAPI
		}
		if reverse != "" {
			c.reverseURL = reverse
		}
	}
}

// WithCache swaps the lookup cache, e.g. for a Redis-backed one shared
// between instances.
func WithCache(cache Cache) Option {
	return func(c *Client) {
		if cache != nil {
			c.cache = cache
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		http:       &http.Client{Timeout: lookupTimeout},
		ipAPIURL:   DefaultIPAPIURL,
		reverseURL: DefaultReverseGeocodeURL,
		// ip-api.com allows 45 requests per minute on the free tier.
		limiter: rate.NewLimiter(rate.Every(time.Minute/45), 45),
		cache:   newMemoryCache(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type ipAPIResponse struct {
	Status      string `json:"status"`
	CountryCode string `json:"countryCode"`
}

// CountryFromIP resolves ip to a two-letter country code via ip-api.com.
// When the rate limiter is exhausted the lookup is skipped rather than
// queued, so the caller can fall through immediately.
func (c *Client) CountryFromIP(ctx context.Context, ip string) (string, error) {
	if ip == "" {
		return "", fmt.Errorf("no client address")
	}
	key := "geo:ip:" + ip
	if cc, ok := c.cache.Get(ctx, key); ok {
		return cc, nil
	}
	if !c.limiter.Allow() {
		return "", fmt.Errorf("ip lookup throttled")
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s/%s?fields=status,countryCode", c.ipAPIURL, url.PathEscape(ip))
	var out ipAPIResponse
	if err := c.getJSON(ctx, reqURL, &out); err != nil {
		return "", fmt.Errorf("ip-api request: %w", err)
	}
	if out.Status != "success" || out.CountryCode == "" {
		return "", fmt.Errorf("ip-api lookup failed for %s", ip)
	}

	c.cache.Set(ctx, key, out.CountryCode, cacheTTL)
	return out.CountryCode, nil
}

type reverseGeocodeResponse struct {
	CountryCode string `json:"countryCode"`
}

// CountryFromCoords reverse-geocodes a device geolocation fix to a country
// code. Coordinates are rounded to two decimals for the cache key; country
// boundaries do not need more precision.
func (c *Client) CountryFromCoords(ctx context.Context, lat, lng float64) (string, error) {
	key := fmt.Sprintf("geo:coords:%.2f,%.2f", lat, lng)
	if cc, ok := c.cache.Get(ctx, key); ok {
		return cc, nil
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s?latitude=%f&longitude=%f&localityLanguage=en", c.reverseURL, lat, lng)
	var out reverseGeocodeResponse
	if err := c.getJSON(ctx, reqURL, &out); err != nil {
		return "", fmt.Errorf("reverse geocode request: %w", err)
	}
	if out.CountryCode == "" {
		return "", fmt.Errorf("reverse geocode returned no country for %.2f,%.2f", lat, lng)
	}

	c.cache.Set(ctx, key, out.CountryCode, cacheTTL)
	return out.CountryCode, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
