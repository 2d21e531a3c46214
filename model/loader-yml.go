package model

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adnsv/go-utils/fs"
	"gopkg.in/yaml.v3"
)

// LoadManifestYaml reads a staging list that replaces the default one.
//
//	resources: resources
//	assets:
//	  - file: web_lyricstamp.py
//	  - dir: templates
func LoadManifestYaml(fn string) (*Manifest, error) {
	fn, err := filepath.Abs(fn)
	if err != nil {
		return nil, err
	}
	if err := fs.ValidateFileExists(fn); err != nil {
		return nil, err
	}

	log.Printf("loading staging manifest from %s\n", fn)
	buf, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	type assetLoader struct {
		File string `yaml:"file"`
		Dir  string `yaml:"dir"`
	}
	type manifestLoader struct {
		Resources string        `yaml:"resources"`
		Assets    []assetLoader `yaml:"assets"`
	}

	t := manifestLoader{}
	if err = yaml.Unmarshal(buf, &t); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}

	m := &Manifest{ResourceDir: t.Resources}
	if m.ResourceDir == "" {
		m.ResourceDir = DefaultResourceDir
	}
	for i, v := range t.Assets {
		switch {
		case v.File != "" && v.Dir != "":
			return nil, fmt.Errorf("%s: asset #%d sets both file and dir", fn, i+1)
		case v.File != "":
			m.Assets = append(m.Assets, &Asset{Type: AssetFile, Path: v.File})
		case v.Dir != "":
			m.Assets = append(m.Assets, &Asset{Type: AssetDir, Path: v.Dir})
		default:
			return nil, fmt.Errorf("%s: asset #%d sets neither file nor dir", fn, i+1)
		}
	}

	if err = m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return m, nil
}
