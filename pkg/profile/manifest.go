package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/seqweaver/hintcfg/pkg/logger"
)

// Manifest is the profile.yaml sidecar describing one extrinsic config
// file kept in a workspace directory.
type Manifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	File        string `yaml:"file"`
}

// Discovered pairs a manifest with the resolved location of its config
// file.
type Discovered struct {
	Path     string // directory holding profile.yaml
	CfgPath  string // resolved extrinsic config file
	Manifest Manifest
}

// Discover walks root for profile.yaml manifests. A manifest that
// fails to load is reported and skipped so one broken sidecar does not
// hide the rest of the workspace.
func Discover(root string) ([]Discovered, error) {
	var found []Discovered

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || info.Name() != "profile.yaml" {
			return nil
		}
		d, err := loadManifest(path)
		if err != nil {
			logger.Warnf("skipping %s: %v", path, err)
			return nil
		}
		found = append(found, *d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for profiles: %w", root, err)
	}
	return found, nil
}

func loadManifest(path string) (*Discovered, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse profile manifest: %w", err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("profile manifest has no name")
	}
	if m.File == "" {
		return nil, fmt.Errorf("profile %s names no config file", m.Name)
	}

	dir := filepath.Dir(path)
	cfg := m.File
	if !filepath.IsAbs(cfg) {
		cfg = filepath.Join(dir, cfg)
	}
	if _, err := os.Stat(cfg); err != nil {
		return nil, fmt.Errorf("profile %s: config file %s: %w", m.Name, m.File, err)
	}

	return &Discovered{Path: dir, CfgPath: cfg, Manifest: m}, nil
}
