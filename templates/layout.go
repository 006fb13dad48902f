package templates

import (
	"context"
	"fmt"
	"io"

	"nexthomelabs/internal/i18n"
	"nexthomelabs/internal/middleware"

	"github.com/a-h/templ"
)

// errWriter collapses the error handling of sequential writes; the first
// failure sticks and later writes become no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// langPrefix returns the path prefix for lang. The default language is
// served unprefixed.
func langPrefix(lang string) string {
	if lang == i18n.DefaultLang {
		return ""
	}
	return "/" + lang
}

// layout wraps a page body in the HTML shell. The root lang attribute
// mirrors the context locale so server markup and the client shim agree on
// the active language; title and description come from the domain branding
// matched for this request.
func layout(b *i18n.Bundle, titleKey string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := i18n.GetLocale(ctx)
		site := middleware.GetDomain(ctx)
		title := site.Title
		if title == "" {
			title = "NextHome Labs"
		}
		if titleKey != "" {
			title = b.T(ctx, titleKey) + " | " + title
		}
		prefix := langPrefix(lang)

		ew := &errWriter{w: w}
		ew.printf("<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", esc(lang))
		ew.printf("<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		ew.printf("<title>%s</title>\n", esc(title))
		if site.Description != "" {
			ew.printf("<meta name=\"description\" content=\"%s\">\n", esc(site.Description))
		}
		ew.printf("<link rel=\"stylesheet\" href=\"/static/css/site.css\">\n</head>\n<body>\n")

		ew.printf("<header class=\"nav\">\n<a class=\"brand\" href=\"%s/\">NextHome Labs</a>\n<nav>\n", prefix)
		ew.printf("<a href=\"%s/\">%s</a>\n", prefix, esc(b.T(ctx, "nav.home")))
		ew.printf("<a href=\"%s/news\">%s</a>\n", prefix, esc(b.T(ctx, "nav.news")))
		ew.printf("<a href=\"%s/team\">%s</a>\n", prefix, esc(b.T(ctx, "nav.team")))
		ew.printf("</nav>\n%s</header>\n<main>\n", switcher(ctx, b, lang))
		if ew.err != nil {
			return ew.err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		ew.printf("</main>\n<footer>\n<p>%s %s</p>\n", esc(site.Location), esc(b.T(ctx, "footer.rights")))
		ew.printf("<a href=\"%s/privacy\">%s</a> · <a href=\"%s/terms\">%s</a>\n",
			prefix, esc(b.T(ctx, "nav.privacy")), prefix, esc(b.T(ctx, "nav.terms")))
		ew.printf("</footer>\n<script src=\"/static/js/locale.js\" defer></script>\n</body>\n</html>\n")
		return ew.err
	})
}

// switcher renders the language menu. Each entry hits /lang, which persists
// the choice, bumps the resolution epoch and redirects back here.
func switcher(ctx context.Context, b *i18n.Bundle, current string) string {
	out := fmt.Sprintf("<nav class=\"lang\" aria-label=\"%s\">\n", esc(b.T(ctx, "lang.label")))
	for _, lang := range i18n.Languages {
		cls := ""
		if lang == current {
			cls = " class=\"active\""
		}
		out += fmt.Sprintf("<a%s href=\"/lang?lang=%s\">%s</a>\n", cls, lang, esc(b.T(ctx, "lang."+lang)))
	}
	return out + "</nav>\n"
}
