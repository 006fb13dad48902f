package middleware

import (
	"net/http"
	"strings"

	"nexthomelabs/internal/i18n"
	"nexthomelabs/internal/prefs"
)

// LocaleRedirect decides, before any page renders, whether a request should
// move to a language-prefixed path. Paths already carrying a supported
// language prefix pass through with that locale in context. Otherwise the
// candidate language is the first of: valid saved preference, platform GeoIP
// country mapped through the country table, Accept-Language negotiation. A
// non-default candidate redirects to /<lang><path>; the default language is
// always served unprefixed. The middleware is stateless and cannot fail the
// request.
func LocaleRedirect(pref *prefs.Preferences, geoIPHeader string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if lang := PathLanguage(r.URL.Path); lang != "" {
				serve(next, w, r, lang)
				return
			}

			lang := pref.Language(r)
			if lang == "" && geoIPHeader != "" {
				if mapped, ok := i18n.CountryLanguage(r.Header.Get(geoIPHeader)); ok {
					lang = mapped
				}
			}
			if lang == "" {
				lang = i18n.LanguageFromHeader(r.Header.Get("Accept-Language"))
			}
			if lang == "" || lang == i18n.DefaultLang {
				serve(next, w, r, i18n.DefaultLang)
				return
			}

			target := "/" + lang + r.URL.Path
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		})
	}
}

func serve(next http.Handler, w http.ResponseWriter, r *http.Request, lang string) {
	w.Header().Set("Content-Language", lang)
	next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), lang)))
}

// PathLanguage returns the supported language prefixing path, or "". An
// unsupported first segment is an ordinary path segment, not an error.
func PathLanguage(path string) string {
	seg := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	if i18n.IsSupported(seg) {
		return seg
	}
	return ""
}
