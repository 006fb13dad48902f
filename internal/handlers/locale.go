package handlers

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"net/url"

	"nexthomelabs/internal/i18n"
	"nexthomelabs/internal/middleware"
	"nexthomelabs/internal/prefs"
)

// LocaleHandler is the server half of the client language provider: it runs
// the resolution chain for a visitor and persists the outcome so future
// loads skip detection.
type LocaleHandler struct {
	resolver *i18n.Resolver
	pref     *prefs.Preferences
}

func NewLocaleHandler(resolver *i18n.Resolver, pref *prefs.Preferences) *LocaleHandler {
	return &LocaleHandler{resolver: resolver, pref: pref}
}

type localeResponse struct {
	Language string `json:"language"`
	Country  string `json:"country,omitempty"`
	Epoch    int64  `json:"epoch"`
}

// Current resolves the visitor's language without device coordinates and
// persists the outcome.
func (h *LocaleHandler) Current(w http.ResponseWriter, r *http.Request) {
	res := h.resolver.Resolve(r.Context(), i18n.Visitor{
		SavedLang:      h.pref.Language(r),
		PageLang:       refererLang(r),
		SavedCountry:   h.pref.Location(r),
		IP:             clientIP(r),
		AcceptLanguage: r.Header.Get("Accept-Language"),
	})
	h.persist(w, r, res)
	writeJSON(w, localeResponse{Language: res.Lang, Country: res.Country, Epoch: h.pref.Epoch(r)})
}

type detectRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Epoch     int64   `json:"epoch"`
}

// Detect runs the device-geolocation leg of the pipeline. The client echoes
// the epoch it read before asking the platform for coordinates; if a manual
// language change bumped the epoch meanwhile, the detection lost the race
// and its result is discarded instead of overwriting the newer choice.
func (h *LocaleHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	epoch := h.pref.Epoch(r)
	if req.Epoch != epoch {
		log.Printf("locale: discarding stale detection (epoch %d, current %d)", req.Epoch, epoch)
		lang := h.pref.Language(r)
		if lang == "" {
			lang = i18n.DefaultLang
		}
		writeJSON(w, localeResponse{Language: lang, Epoch: epoch})
		return
	}

	res := h.resolver.Resolve(r.Context(), i18n.Visitor{
		SavedLang:      h.pref.Language(r),
		PageLang:       refererLang(r),
		SavedCountry:   h.pref.Location(r),
		Coords:         &i18n.Coords{Latitude: req.Latitude, Longitude: req.Longitude},
		IP:             clientIP(r),
		AcceptLanguage: r.Header.Get("Accept-Language"),
	})
	h.persist(w, r, res)
	writeJSON(w, localeResponse{Language: res.Lang, Country: res.Country, Epoch: epoch})
}

// persist saves a freshly detected country and, when no explicit preference
// exists yet, the resolved language. An existing preference is never
// overwritten by detection.
func (h *LocaleHandler) persist(w http.ResponseWriter, r *http.Request, res i18n.Resolution) {
	if res.Country != "" {
		h.pref.SaveLocation(w, res.Country)
	}
	if h.pref.Language(r) == "" {
		h.pref.SaveLanguage(w, res.Lang)
	}
}

// refererLang returns the language already applied to the page this API call
// came from, i.e. the locale prefix of the Referer path.
func refererLang(r *http.Request) string {
	ref, err := url.Parse(r.Header.Get("Referer"))
	if err != nil {
		return ""
	}
	return middleware.PathLanguage(ref.Path)
}

// clientIP returns the request's client address. Behind the proxy-headers
// middleware RemoteAddr is already the forwarded address without a port.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("locale: write response: %v", err)
	}
}
