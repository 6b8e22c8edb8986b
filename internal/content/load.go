package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/portfolio.yaml
var defaultPortfolio []byte

// contentFile mirrors the YAML layout of a portfolio content file.
type contentFile struct {
	Profile      Profile      `yaml:"profile"`
	Projects     []Project    `yaml:"projects"`
	Work         []WorkRecord `yaml:"work"`
	Fortunes     []string     `yaml:"fortunes"`
	TelnetBanner string       `yaml:"telnet_banner"`
}

// Load returns the built-in content registry.
func Load() (*Registry, error) {
	return parse(defaultPortfolio)
}

// LoadFile loads a user-supplied content file instead of the built-in one.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	reg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}
	return reg, nil
}

func parse(data []byte) (*Registry, error) {
	var file contentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal content: %w", err)
	}

	reg := &Registry{
		profile:      file.Profile,
		projects:     file.Projects,
		work:         file.Work,
		fortunes:     file.Fortunes,
		telnetBanner: file.TelnetBanner,
		projectIndex: make(map[string]int, len(file.Projects)),
		workIndex:    make(map[string]int, len(file.Work)),
	}

	for i, p := range reg.projects {
		key := strings.TrimSpace(p.Key)
		if key == "" {
			return nil, fmt.Errorf("project %d: empty key", i)
		}
		if _, dup := reg.projectIndex[key]; dup {
			return nil, fmt.Errorf("duplicate project key %q", key)
		}
		reg.projectIndex[key] = i
	}
	for i, w := range reg.work {
		key := strings.TrimSpace(w.Key)
		if key == "" {
			return nil, fmt.Errorf("work record %d: empty key", i)
		}
		if _, dup := reg.workIndex[key]; dup {
			return nil, fmt.Errorf("duplicate work key %q", key)
		}
		reg.workIndex[key] = i
	}

	if len(reg.fortunes) == 0 {
		return nil, fmt.Errorf("content has no fortunes")
	}
	return reg, nil
}
