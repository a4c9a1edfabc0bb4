package bbfile

import (
	"path/filepath"

	"github.com/ha1tch/breadboard/pkg/breadboard"
)

// DirStore keeps breadboards as files in one directory.
type DirStore struct {
	Dir string
	// Extension is appended to names saved without one.
	Extension string
}

// NewDirStore returns a store over dir. An empty extension means TOML.
func NewDirStore(dir, ext string) *DirStore {
	if ext == "" {
		ext = DefaultExtension
	}
	return &DirStore{Dir: dir, Extension: ext}
}

// ListFiles lists the documents in the directory in every supported format,
// so a board saved as JSON or YAML can be opened again.
func (s *DirStore) ListFiles() ([]string, error) {
	return ListDocuments(s.Dir)
}

// Load reads a document by name. Absolute names are used as they are.
func (s *DirStore) Load(name string) (*breadboard.Breadboard, error) {
	return ReadFile(s.path(name))
}

// Save writes a document by name.
func (s *DirStore) Save(name string, b *breadboard.Breadboard) error {
	if filepath.Ext(name) == "" {
		name += "." + s.Extension
	}
	return WriteFile(s.path(name), b)
}

func (s *DirStore) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.Dir, name)
}
