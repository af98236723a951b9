package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/riskibarqy/football-hub/internal/domain/competition"
	"gopkg.in/yaml.v3"
)

//go:embed competitions.yaml
var defaultCatalog []byte

type file struct {
	Competitions []entry `yaml:"competitions"`
}

type entry struct {
	Code    string `yaml:"code"`
	Slug    string `yaml:"slug"`
	Name    string `yaml:"name"`
	Preload bool   `yaml:"preload"`
}

// Load reads the catalog from path, or the built-in one when path is empty.
func Load(path string) (*competition.Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Parse(defaultCatalog)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read competitions file %s: %w", path, err)
	}
	item, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("competitions file %s: %w", path, err)
	}
	return item, nil
}

func Parse(raw []byte) (*competition.Catalog, error) {
	var doc file
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode competitions: %w", err)
	}
	if len(doc.Competitions) == 0 {
		return nil, fmt.Errorf("competitions list is empty")
	}

	items := make([]competition.Competition, 0, len(doc.Competitions))
	for _, e := range doc.Competitions {
		items = append(items, competition.Competition{
			Code:    e.Code,
			Slug:    e.Slug,
			Name:    e.Name,
			Preload: e.Preload,
		})
	}
	return competition.NewCatalog(items)
}
