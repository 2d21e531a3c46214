package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const DefaultResourceDir = "resources"

var (
	ErrAbsoluteAssetPath = errors.New("asset path must be relative to the project root")
	ErrEscapingAssetPath = errors.New("asset path escapes the project root")
	ErrEmptyAssetPath    = errors.New("empty asset path")
)

// Manifest lists what gets staged, in order, and where it lands inside the
// build output directory.
type Manifest struct {
	ResourceDir string
	Assets      []*Asset
}

// DefaultManifest returns the bundle's fixed staging list: the python
// scripts, the templates tree, then requirements.txt.
func DefaultManifest() *Manifest {
	return &Manifest{
		ResourceDir: DefaultResourceDir,
		Assets: []*Asset{
			{Type: AssetFile, Path: "web_lyricstamp.py"},
			{Type: AssetFile, Path: "player_control.py"},
			{Type: AssetFile, Path: "ai_postprocess.py"},
			{Type: AssetDir, Path: "templates"},
			{Type: AssetFile, Path: "requirements.txt"},
		},
	}
}

func (m *Manifest) Validate() error {
	if err := validateRelPath(m.ResourceDir); err != nil {
		return fmt.Errorf("resources '%s': %w", m.ResourceDir, err)
	}
	for i, a := range m.Assets {
		if a.Type != AssetFile && a.Type != AssetDir {
			return fmt.Errorf("asset #%d: unsupported type %d", i+1, int(a.Type))
		}
		if err := validateRelPath(a.Path); err != nil {
			return fmt.Errorf("asset #%d '%s': %w", i+1, a.Path, err)
		}
	}
	return nil
}

func validateRelPath(p string) error {
	if strings.TrimSpace(p) == "" {
		return ErrEmptyAssetPath
	}
	if filepath.IsAbs(p) || strings.HasPrefix(filepath.ToSlash(p), "/") {
		return ErrAbsoluteAssetPath
	}
	c := filepath.ToSlash(filepath.Clean(p))
	if c == "." || c == ".." || strings.HasPrefix(c, "../") {
		return ErrEscapingAssetPath
	}
	return nil
}
