package templates

import (
	"context"
	"io"

	"nexthomelabs/internal/content"
	"nexthomelabs/internal/i18n"

	"github.com/a-h/templ"
)

const dateFormat = "2 January 2006"

func HomePage(b *i18n.Bundle, latest []content.Article) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.printf("<section class=\"hero\">\n<h1>%s</h1>\n<p>%s</p>\n", esc(b.T(ctx, "home.heading")), esc(b.T(ctx, "home.intro")))
		ew.printf("<a class=\"cta\" href=\"%s/news\">%s</a>\n</section>\n", langPrefix(i18n.GetLocale(ctx)), esc(b.T(ctx, "home.cta")))
		ew.printf("<section>\n<h2>%s</h2>\n", esc(b.T(ctx, "home.latest")))
		if len(latest) > 3 {
			latest = latest[:3]
		}
		writeArticleList(ew, ctx, b, latest)
		ew.printf("</section>\n")
		return ew.err
	})
	return layout(b, "", body)
}

func NewsPage(b *i18n.Bundle, articles []content.Article) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.printf("<h1>%s</h1>\n", esc(b.T(ctx, "news.heading")))
		if len(articles) == 0 {
			ew.printf("<p>%s</p>\n", esc(b.T(ctx, "news.empty")))
		} else {
			writeArticleList(ew, ctx, b, articles)
		}
		return ew.err
	})
	return layout(b, "nav.news", body)
}

func writeArticleList(ew *errWriter, ctx context.Context, b *i18n.Bundle, articles []content.Article) {
	prefix := langPrefix(i18n.GetLocale(ctx))
	ew.printf("<ul class=\"articles\">\n")
	for _, a := range articles {
		ew.printf("<li>\n<h3><a href=\"%s/news/%s\">%s</a></h3>\n", prefix, esc(a.Slug), esc(a.Title))
		ew.printf("<time datetime=\"%s\">%s</time>\n", a.Date.Format("2006-01-02"), esc(b.T(ctx, "news.published", a.Date.Format(dateFormat))))
		ew.printf("<p>%s</p>\n<a href=\"%s/news/%s\">%s</a>\n</li>\n", esc(a.Summary), prefix, esc(a.Slug), esc(b.T(ctx, "news.readMore")))
	}
	ew.printf("</ul>\n")
}

func ArticlePage(b *i18n.Bundle, a content.Article) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.printf("<article>\n<h1>%s</h1>\n", esc(a.Title))
		ew.printf("<time datetime=\"%s\">%s</time>\n", a.Date.Format("2006-01-02"), esc(b.T(ctx, "news.published", a.Date.Format(dateFormat))))
		ew.printf("<p>%s</p>\n", esc(a.Body))
		if len(a.Tags) > 0 {
			ew.printf("<ul class=\"tags\">\n")
			for _, t := range a.Tags {
				ew.printf("<li>%s</li>\n", esc(t))
			}
			ew.printf("</ul>\n")
		}
		ew.printf("</article>\n")
		return ew.err
	})
	return layout(b, "nav.news", body)
}

func TeamPage(b *i18n.Bundle, team []content.Member) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.printf("<h1>%s</h1>\n<ul class=\"team\">\n", esc(b.T(ctx, "team.heading")))
		for _, m := range team {
			ew.printf("<li>\n<h3>%s</h3>\n<p class=\"role\">%s</p>\n<p>%s</p>\n</li>\n", esc(m.Name), esc(m.Role), esc(m.Bio))
		}
		ew.printf("</ul>\n")
		return ew.err
	})
	return layout(b, "nav.team", body)
}

// LegalPage renders a legal text addressed by its translation key prefix,
// e.g. "legal.privacy".
func LegalPage(b *i18n.Bundle, keyPrefix string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ew := &errWriter{w: w}
		ew.printf("<h1>%s</h1>\n<p>%s</p>\n", esc(b.T(ctx, keyPrefix+".heading")), esc(b.T(ctx, keyPrefix+".body")))
		return ew.err
	})
	return layout(b, keyPrefix+".heading", body)
}
