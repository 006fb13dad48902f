package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nexthomelabs/internal/prefs"
)

func cookieValue(t *testing.T, rec *httptest.ResponseRecorder, name string) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func TestSetLang(t *testing.T) {
	h := NewLangHandler(prefs.New(prefs.CookieStore{}))

	r := httptest.NewRequest(http.MethodGet, "/lang?lang=fr", nil)
	r.Header.Set("Referer", "/news")
	rec := httptest.NewRecorder()
	h.SetLang(rec, r)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/news" {
		t.Errorf("Location = %q, want /news", got)
	}
	if got := cookieValue(t, rec, prefs.LanguageCookie); got != "fr" {
		t.Errorf("%s = %q, want fr", prefs.LanguageCookie, got)
	}
	if got := cookieValue(t, rec, prefs.EpochCookie); got != "1" {
		t.Errorf("%s = %q, want 1 (epoch bumped)", prefs.EpochCookie, got)
	}
}

func TestSetLang_InvalidFallsToDefault(t *testing.T) {
	h := NewLangHandler(prefs.New(prefs.CookieStore{}))

	r := httptest.NewRequest(http.MethodGet, "/lang?lang=klingon", nil)
	rec := httptest.NewRecorder()
	h.SetLang(rec, r)

	if got := cookieValue(t, rec, prefs.LanguageCookie); got != "en" {
		t.Errorf("%s = %q, want the default", prefs.LanguageCookie, got)
	}
	if got := rec.Header().Get("Location"); got != "/" {
		t.Errorf("Location = %q, want / with no referer", got)
	}
}

func TestSetLang_EpochAdvances(t *testing.T) {
	h := NewLangHandler(prefs.New(prefs.CookieStore{}))

	r := httptest.NewRequest(http.MethodGet, "/lang?lang=sw", nil)
	r.AddCookie(&http.Cookie{Name: prefs.EpochCookie, Value: "3"})
	rec := httptest.NewRecorder()
	h.SetLang(rec, r)

	if got := cookieValue(t, rec, prefs.EpochCookie); got != "4" {
		t.Errorf("%s = %q, want 4", prefs.EpochCookie, got)
	}
}
