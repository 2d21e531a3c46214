package model

import "fmt"

type AssetType int

const (
	AssetFile = AssetType(iota) // single file, copied byte-for-byte
	AssetDir                    // directory tree, mirrored recursively
)

// Asset is one entry of the staging list. Path is relative to the project
// root and is reused as the destination name under the resource directory.
type Asset struct {
	Type AssetType
	Path string
}

func (t AssetType) String() string {
	switch t {
	case AssetFile:
		return "file"
	case AssetDir:
		return "dir"
	default:
		return "<invalid>"
	}
}

func (a *Asset) String() string {
	return fmt.Sprintf("%s:%s", a.Type, a.Path)
}
