package i18n

import (
	"context"
	"log"
)

// GeoClient resolves visitor countries from device coordinates or a network
// address. Both lookups are best-effort and bounded in time.
type GeoClient interface {
	CountryFromCoords(ctx context.Context, lat, lng float64) (string, error)
	CountryFromIP(ctx context.Context, ip string) (string, error)
}

// Coords is a device-reported geolocation fix.
type Coords struct {
	Latitude  float64
	Longitude float64
}

// Visitor is everything known about a visitor when their language is
// resolved. Zero fields simply skip their step in the chain.
type Visitor struct {
	SavedLang      string  // persisted preference, if any
	PageLang       string  // language already applied to the current document
	SavedCountry   string  // persisted detected country, if any
	Coords         *Coords // device geolocation fix, when the client reported one
	IP             string  // client address for IP-based lookup
	AcceptLanguage string  // the browser's declared languages
}

// Resolution is the outcome of one detection pass. Country is set only when
// a fresh geo lookup produced it; the caller persists it so the next pass
// skips the external services.
type Resolution struct {
	Lang    string
	Country string
}

// Resolver decides which supported language to serve a visitor. The decision
// chain is fixed: saved preference, document language, saved country, device
// geolocation, IP lookup, Accept-Language, default. Each step either decides
// or falls through; external lookups swallow their own errors so the chain
// always terminates with a supported language.
type Resolver struct {
	geo GeoClient
}

func NewResolver(geo GeoClient) *Resolver {
	return &Resolver{geo: geo}
}

// Resolve runs the chain over a visitor snapshot and returns the first hit.
func (r *Resolver) Resolve(ctx context.Context, v Visitor) Resolution {
	if IsSupported(v.SavedLang) {
		return Resolution{Lang: v.SavedLang}
	}
	if IsSupported(v.PageLang) {
		return Resolution{Lang: v.PageLang}
	}
	if lang, ok := CountryLanguage(v.SavedCountry); ok {
		return Resolution{Lang: lang}
	}
	if v.Coords != nil && r.geo != nil {
		cc, err := r.geo.CountryFromCoords(ctx, v.Coords.Latitude, v.Coords.Longitude)
		if err != nil {
			log.Printf("i18n: reverse geocode failed: %v", err)
		} else if lang, ok := CountryLanguage(cc); ok {
			return Resolution{Lang: lang, Country: cc}
		}
	}
	if v.IP != "" && r.geo != nil {
		cc, err := r.geo.CountryFromIP(ctx, v.IP)
		if err != nil {
			log.Printf("i18n: ip lookup failed: %v", err)
		} else if lang, ok := CountryLanguage(cc); ok {
			return Resolution{Lang: lang, Country: cc}
		}
	}
	if lang := LanguageFromHeader(v.AcceptLanguage); lang != "" {
		return Resolution{Lang: lang}
	}
	return Resolution{Lang: DefaultLang}
}
