package content

import (
	"embed"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed news.yaml team.yaml
var dataFS embed.FS

// Article is one news or research post.
type Article struct {
	Slug    string    `yaml:"slug"`
	Title   string    `yaml:"title"`
	Date    time.Time `yaml:"date"`
	Summary string    `yaml:"summary"`
	Body    string    `yaml:"body"`
	Tags    []string  `yaml:"tags"`
}

// Member is one team bio.
type Member struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
	Bio  string `yaml:"bio"`
}

// Library is the static content registry, parsed once at startup from the
// embedded data files.
type Library struct {
	articles []Article
	bySlug   map[string]Article
	team     []Member
}

// Load parses the embedded content files.
func Load() (*Library, error) {
	lib := &Library{bySlug: make(map[string]Article)}

	news, err := dataFS.ReadFile("news.yaml")
	if err != nil {
		return nil, fmt.Errorf("read news.yaml: %w", err)
	}
	if err := yaml.Unmarshal(news, &lib.articles); err != nil {
		return nil, fmt.Errorf("parse news.yaml: %w", err)
	}
	for _, a := range lib.articles {
		if a.Slug == "" {
			return nil, fmt.Errorf("article %q has no slug", a.Title)
		}
		if _, dup := lib.bySlug[a.Slug]; dup {
			return nil, fmt.Errorf("duplicate article slug %q", a.Slug)
		}
		lib.bySlug[a.Slug] = a
	}
	sort.Slice(lib.articles, func(i, j int) bool {
		return lib.articles[i].Date.After(lib.articles[j].Date)
	})

	team, err := dataFS.ReadFile("team.yaml")
	if err != nil {
		return nil, fmt.Errorf("read team.yaml: %w", err)
	}
	if err := yaml.Unmarshal(team, &lib.team); err != nil {
		return nil, fmt.Errorf("parse team.yaml: %w", err)
	}

	return lib, nil
}

// Articles returns all articles, newest first.
func (l *Library) Articles() []Article {
	return l.articles
}

// Article looks up one article by slug.
func (l *Library) Article(slug string) (Article, bool) {
	a, ok := l.bySlug[slug]
	return a, ok
}

// Team returns the team bios in file order.
func (l *Library) Team() []Member {
	return l.team
}
