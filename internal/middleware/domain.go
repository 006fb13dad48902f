package middleware

import (
	"context"
	"net/http"

	"nexthomelabs/internal/domains"
)

type contextKey string

const domainKey contextKey = "domain"

// Response headers carrying the matched domain's branding, consumed by page
// metadata and downstream caches.
const (
	HeaderSiteTitle       = "X-Site-Title"
	HeaderSiteDescription = "X-Site-Description"
	HeaderSiteRegion      = "X-Site-Region"
	HeaderSiteLocation    = "X-Site-Location"
)

// DomainBranding matches the request hostname against the domain registry.
// Unknown hosts are corrected with a redirect to the canonical domain,
// preserving path and query, rather than erroring. Known and local hosts get
// branding headers stamped on the response and the matched config stored in
// the request context.
func DomainBranding(reg *domains.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !reg.Known(r.Host) && !reg.IsLocal(r.Host) {
				target := "https://" + reg.Canonical().Host + r.URL.Path
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusPermanentRedirect)
				return
			}

			cfg := reg.Lookup(r.Host)
			w.Header().Set(HeaderSiteTitle, cfg.Title)
			w.Header().Set(HeaderSiteDescription, cfg.Description)
			w.Header().Set(HeaderSiteRegion, cfg.Region)
			w.Header().Set(HeaderSiteLocation, cfg.Location)

			ctx := context.WithValue(r.Context(), domainKey, cfg)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetDomain returns the branding config matched for this request, or the
// zero Config when the middleware did not run.
func GetDomain(ctx context.Context) domains.Config {
	if cfg, ok := ctx.Value(domainKey).(domains.Config); ok {
		return cfg
	}
	return domains.Config{}
}
