package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"frictionless/internal/nav"
)

// PagesConfig represents the structure of the optional pages.yaml file.
// Deployments can replace the built-in page registry without a rebuild;
// entry order in the file sets tie-break priority.
type PagesConfig struct {
	Pages []nav.PageDescriptor `yaml:"pages"`
}

// LoadRegistry loads the page registry for the query router. Path is
// determined by the PAGES_FILE env var, defaulting to "pages.yaml". If the
// file does not exist, the built-in registry is returned. Malformed entries
// fail here, at startup, never at query time.
func LoadRegistry() (nav.Registry, error) {
	path := getEnv("PAGES_FILE", "pages.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nav.DefaultRegistry(), nil
		}
		return nil, fmt.Errorf("failed to read pages config: %w", err)
	}

	var pc PagesConfig
	if err := yaml.Unmarshal(data, &pc); err != nil {
		return nil, fmt.Errorf("failed to parse pages config: %w", err)
	}
	if len(pc.Pages) == 0 {
		return nil, fmt.Errorf("pages config %s defines no pages", path)
	}

	reg, err := nav.NewRegistry(pc.Pages)
	if err != nil {
		return nil, fmt.Errorf("invalid pages config %s: %w", path, err)
	}
	return reg, nil
}
