package model

import (
	"errors"
	"path/filepath"
)

// ProjectRootFromManifestDir returns the directory holding the application
// sources. The build tool lives one level below it.
func ProjectRootFromManifestDir(manifestDir string) (string, error) {
	if manifestDir == "" {
		return "", errors.New("undefined manifest directory")
	}
	abs, err := filepath.Abs(manifestDir)
	if err != nil {
		return "", err
	}
	root := filepath.Dir(abs)
	if root == abs {
		return "", errors.New("manifest directory has no parent: " + abs)
	}
	return root, nil
}
