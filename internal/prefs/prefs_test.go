package prefs

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// replay turns the cookies written to rec into a new request, simulating the
// browser's next page load.
func replay(rec *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestLanguageRoundtrip(t *testing.T) {
	p := New(CookieStore{})
	for _, lang := range []string{"en", "fr", "sw", "lg"} {
		rec := httptest.NewRecorder()
		p.SaveLanguage(rec, lang)
		if got := p.Language(replay(rec)); got != lang {
			t.Errorf("Language() after SaveLanguage(%q) = %q", lang, got)
		}
	}
}

func TestSaveLanguage_UnsupportedIsNoop(t *testing.T) {
	p := New(CookieStore{})
	rec := httptest.NewRecorder()
	p.SaveLanguage(rec, "klingon")
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Errorf("SaveLanguage(klingon) wrote %d cookies, want none", len(cookies))
	}
}

func TestLanguage_CorruptCookieTreatedAsAbsent(t *testing.T) {
	p := New(CookieStore{})
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: LanguageCookie, Value: "zz"})
	if got := p.Language(r); got != "" {
		t.Errorf("Language() with corrupt cookie = %q, want absent", got)
	}
}

func TestLanguage_Absent(t *testing.T) {
	p := New(CookieStore{})
	if got := p.Language(httptest.NewRequest(http.MethodGet, "/", nil)); got != "" {
		t.Errorf("Language() with no cookie = %q, want absent", got)
	}
}

func TestLocationRoundtrip(t *testing.T) {
	p := New(CookieStore{})
	rec := httptest.NewRecorder()
	p.SaveLocation(rec, "ug")
	if got := p.Location(replay(rec)); got != "UG" {
		t.Errorf("Location() = %q, want UG (normalized)", got)
	}
}

func TestSaveLocation_MalformedIsNoop(t *testing.T) {
	p := New(CookieStore{})
	for _, cc := range []string{"", "U", "UGA", "12", "u-"} {
		rec := httptest.NewRecorder()
		p.SaveLocation(rec, cc)
		if cookies := rec.Result().Cookies(); len(cookies) != 0 {
			t.Errorf("SaveLocation(%q) wrote %d cookies, want none", cc, len(cookies))
		}
	}
}

func TestLocation_CorruptCookieTreatedAsAbsent(t *testing.T) {
	p := New(CookieStore{})
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: LocationCookie, Value: "not-a-country"})
	if got := p.Location(r); got != "" {
		t.Errorf("Location() with corrupt cookie = %q, want absent", got)
	}
}

func TestCookieAttributes(t *testing.T) {
	p := New(CookieStore{})
	rec := httptest.NewRecorder()
	p.SaveLanguage(rec, "fr")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Path != "/" {
		t.Errorf("cookie path = %q, want site-wide", c.Path)
	}
	if c.MaxAge != 365*24*60*60 {
		t.Errorf("cookie max-age = %d, want one year", c.MaxAge)
	}
}

func TestEpoch(t *testing.T) {
	p := New(CookieStore{})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := p.Epoch(r); got != 0 {
		t.Errorf("Epoch() with no cookie = %d, want 0", got)
	}

	rec := httptest.NewRecorder()
	if got := p.BumpEpoch(rec, r); got != 1 {
		t.Errorf("first BumpEpoch() = %d, want 1", got)
	}

	rec2 := httptest.NewRecorder()
	if got := p.BumpEpoch(rec2, replay(rec)); got != 2 {
		t.Errorf("second BumpEpoch() = %d, want 2", got)
	}
}

func TestEpoch_CorruptCookie(t *testing.T) {
	p := New(CookieStore{})
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: EpochCookie, Value: "banana"})
	if got := p.Epoch(r); got != 0 {
		t.Errorf("Epoch() with corrupt cookie = %d, want 0", got)
	}
}
