// Package geocoding resolves coordinates into postal addresses.
package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "storefront/1.0"
	defaultTimeout   = 10 * time.Second

	// maxResponseBytes bounds the body read from the geocoder.
	maxResponseBytes = 1 << 20
)

// cityKeys lists the address fields Nominatim may use for the locality, most specific first.
var cityKeys = []string{"city", "town", "village", "suburb", "county"}

type nominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGeocoder creates a Geocoder talking to a Nominatim-compatible API.
func NewGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	g := &nominatimGeocoder{
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
	if c := cfg.Geocoding; c != nil {
		if c.BaseURL != "" {
			g.baseURL = strings.TrimRight(c.BaseURL, "/")
		}
		if c.UserAgent != "" {
			g.userAgent = c.UserAgent
		}
		if c.Timeout > 0 {
			g.httpClient.Timeout = c.Timeout
		}
	}

	return g
}

// ReverseGeocode returns the address Nominatim reports for point.
func (g *nominatimGeocoder) ReverseGeocode(ctx context.Context, point orb.Point) (*service.GeoAddress, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("addressdetails", "1")
	query.Set("lat", strconv.FormatFloat(point.Lat(), 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(point.Lon(), 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "reverse geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read geocoder response")
	}

	address, err := parseReverse(body)
	if err != nil {
		return nil, err
	}
	g.logger.DebugContext(ctx, "Reverse geocoded", slog.String("city", address.City))

	return address, nil
}

func parseReverse(body []byte) (*service.GeoAddress, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("geocoder returned invalid JSON")
	}

	result := gjson.ParseBytes(body)
	if msg := result.Get("error"); msg.Exists() {
		return nil, errors.Errorf("geocoder error: %s", msg.String())
	}

	address := result.Get("address")
	geo := &service.GeoAddress{
		Name:       result.Get("name").String(),
		Street:     joinNonEmpty(address.Get("house_number").String(), address.Get("road").String()),
		PostalCode: address.Get("postcode").String(),
		Country:    address.Get("country").String(),
	}
	for _, key := range cityKeys {
		if city := address.Get(key).String(); city != "" {
			geo.City = city

			break
		}
	}

	return geo, nil
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, " ")
}
