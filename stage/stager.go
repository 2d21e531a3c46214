// Package stage copies build-time assets from the project tree into the
// resource directory of the build output.
package stage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shensquared/lyricstamp/model"
)

// Report lists the manifest entries a run staged and the ones it skipped
// because the source was absent.
type Report struct {
	Copied  []string
	Skipped []string
}

type Stager struct {
	Root     string          // project root, sources are resolved against it
	OutDir   string          // build output directory
	Manifest *model.Manifest // nil means model.DefaultManifest()
	Logger   *log.Logger     // nil means log.Default()
}

func NewStager(root, outDir string, m *model.Manifest) *Stager {
	if m == nil {
		m = model.DefaultManifest()
	}
	return &Stager{Root: root, OutDir: outDir, Manifest: m}
}

func (s *Stager) manifest() *model.Manifest {
	if s.Manifest == nil {
		return model.DefaultManifest()
	}
	return s.Manifest
}

func (s *Stager) logf(format string, args ...any) {
	l := s.Logger
	if l == nil {
		l = log.Default()
	}
	l.Printf(format, args...)
}

// ResourceDir is where staged assets land.
func (s *Stager) ResourceDir() string {
	return filepath.Join(s.OutDir, filepath.FromSlash(s.manifest().ResourceDir))
}

// Run stages every manifest entry in order. Absent sources are skipped.
// Any I/O failure stops the run immediately; files staged before it are
// left in place.
func (s *Stager) Run() (*Report, error) {
	if s.Root == "" {
		return nil, errors.New("undefined project root")
	}
	if s.OutDir == "" {
		return nil, errors.New("undefined output directory")
	}

	m := s.manifest()
	if err := m.Validate(); err != nil {
		return nil, err
	}

	resDIR := s.ResourceDir()
	if err := os.MkdirAll(resDIR, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", resDIR, err)
	}

	rep := &Report{}
	for _, a := range m.Assets {
		srcFN := filepath.Join(s.Root, filepath.FromSlash(a.Path))
		dstFN := filepath.Join(resDIR, filepath.FromSlash(a.Path))

		if _, err := os.Stat(srcFN); os.IsNotExist(err) {
			s.logf("skipping %s (not found)\n", srcFN)
			rep.Skipped = append(rep.Skipped, a.Path)
			continue
		} else if err != nil {
			return rep, fmt.Errorf("staging %s: %w", a, err)
		}

		if err := s.stageAsset(a, srcFN, dstFN); err != nil {
			return rep, fmt.Errorf("staging %s: %w", a, err)
		}
		rep.Copied = append(rep.Copied, a.Path)
	}
	return rep, nil
}

func (s *Stager) stageAsset(a *model.Asset, srcFN, dstFN string) error {
	switch a.Type {
	case model.AssetFile:
		s.logf("copying %s -> %s\n", srcFN, dstFN)
		if err := os.MkdirAll(filepath.Dir(dstFN), 0755); err != nil {
			return err
		}
		return CopyFile(srcFN, dstFN)
	case model.AssetDir:
		s.logf("mirroring %s -> %s\n", srcFN, dstFN)
		return CopyDir(srcFN, dstFN)
	}
	return fmt.Errorf("unsupported asset type %d", int(a.Type))
}
