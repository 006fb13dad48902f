package prefs

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nexthomelabs/internal/i18n"
)

// Cookie names shared with the client shim.
const (
	LanguageCookie = "NEXT_LOCALE"
	LocationCookie = "USER_LOCATION"
	EpochCookie    = "LOCALE_EPOCH"
)

const (
	languageTTL = 365 * 24 * time.Hour
	locationTTL = 7 * 24 * time.Hour
)

// Store is expiring key/value persistence scoped to the visitor's browser.
// Implementations are last-write-wins; reads after a failed or missing write
// simply see nothing.
type Store interface {
	Get(r *http.Request, key string) string
	Set(w http.ResponseWriter, key, value string, ttl time.Duration)
	Delete(w http.ResponseWriter, key string)
}

// CookieStore persists entries as site-wide cookies.
type CookieStore struct{}

func (CookieStore) Get(r *http.Request, key string) string {
	c, err := r.Cookie(key)
	if err != nil {
		return ""
	}
	return c.Value
}

func (CookieStore) Set(w http.ResponseWriter, key, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		Expires:  time.Now().Add(ttl),
		SameSite: http.SameSiteLaxMode,
	})
}

func (CookieStore) Delete(w http.ResponseWriter, key string) {
	http.SetCookie(w, &http.Cookie{
		Name:   key,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// Preferences is the typed layer over a Store. Every read re-validates the
// stored value: a corrupt or unsupported entry is treated as absent, never
// returned to callers.
type Preferences struct {
	store Store
}

func New(store Store) *Preferences {
	return &Preferences{store: store}
}

// SaveLanguage persists the visitor's language for a year. Codes outside the
// supported set are ignored.
func (p *Preferences) SaveLanguage(w http.ResponseWriter, lang string) {
	if !i18n.IsSupported(lang) {
		log.Printf("prefs: not saving unsupported language %q", lang)
		return
	}
	p.store.Set(w, LanguageCookie, lang, languageTTL)
}

// Language returns the persisted language, or "" when absent or invalid.
func (p *Preferences) Language(r *http.Request) string {
	lang := p.store.Get(r, LanguageCookie)
	if !i18n.IsSupported(lang) {
		return ""
	}
	return lang
}

// SaveLocation caches the visitor's detected country for a week, so repeat
// visits skip the external lookups.
func (p *Preferences) SaveLocation(w http.ResponseWriter, cc string) {
	cc = strings.ToUpper(strings.TrimSpace(cc))
	if !validCountry(cc) {
		log.Printf("prefs: not saving malformed country %q", cc)
		return
	}
	p.store.Set(w, LocationCookie, cc, locationTTL)
}

// Location returns the cached detected country, or "" when absent or invalid.
func (p *Preferences) Location(r *http.Request) string {
	cc := p.store.Get(r, LocationCookie)
	if !validCountry(cc) {
		return ""
	}
	return cc
}

func validCountry(cc string) bool {
	if len(cc) != 2 {
		return false
	}
	for _, c := range cc {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// Epoch returns the visitor's resolution epoch, zero when unset. The epoch
// counts manual language changes; a detection pass that started under an
// older epoch lost the race and must be discarded.
func (p *Preferences) Epoch(r *http.Request) int64 {
	n, err := strconv.ParseInt(p.store.Get(r, EpochCookie), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// BumpEpoch advances the resolution epoch after a manual language change.
func (p *Preferences) BumpEpoch(w http.ResponseWriter, r *http.Request) int64 {
	next := p.Epoch(r) + 1
	p.store.Set(w, EpochCookie, strconv.FormatInt(next, 10), languageTTL)
	return next
}
