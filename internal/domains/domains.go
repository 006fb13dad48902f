package domains

import (
	_ "embed"
	"fmt"
	"net"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed domains.yaml
var rawConfig []byte

// Config is the branding metadata attached to one hostname the site serves.
type Config struct {
	Host        string `yaml:"host"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Region      string `yaml:"region"`
	Location    string `yaml:"location"`
}

// Registry maps hostnames to their branding. The first entry in domains.yaml
// is the canonical domain; unknown hosts are redirected to it.
type Registry struct {
	configs  map[string]Config
	first    Config
	devHosts map[string]bool
}

// Load parses the embedded domain registry. extraDevHosts adds hostnames
// (besides localhost) exempt from the canonical-domain redirect.
func Load(extraDevHosts []string) (*Registry, error) {
	var list []Config
	if err := yaml.Unmarshal(rawConfig, &list); err != nil {
		return nil, fmt.Errorf("parse domains.yaml: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("domains.yaml defines no domains")
	}

	reg := &Registry{
		configs: make(map[string]Config, len(list)),
		first:   list[0],
		devHosts: map[string]bool{
			"localhost": true,
			"127.0.0.1": true,
		},
	}
	for _, c := range list {
		if c.Host == "" {
			return nil, fmt.Errorf("domains.yaml entry %q has no host", c.Title)
		}
		reg.configs[strings.ToLower(c.Host)] = c
	}
	for _, h := range extraDevHosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			reg.devHosts[h] = true
		}
	}
	return reg, nil
}

// Canonical returns the primary domain's config.
func (reg *Registry) Canonical() Config {
	return reg.first
}

// Known reports whether host exactly matches a configured domain.
func (reg *Registry) Known(host string) bool {
	_, ok := reg.configs[strings.ToLower(StripPort(host))]
	return ok
}

// Lookup returns the branding for host, falling back to the canonical entry.
func (reg *Registry) Lookup(host string) Config {
	if c, ok := reg.configs[strings.ToLower(StripPort(host))]; ok {
		return c
	}
	return reg.first
}

// IsLocal reports whether host is a development host exempt from the
// canonical-domain redirect.
func (reg *Registry) IsLocal(host string) bool {
	host = strings.ToLower(StripPort(host))
	if reg.devHosts[host] {
		return true
	}
	return strings.HasSuffix(host, ".local")
}

// StripPort drops a :port suffix from a request host, if present.
func StripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
