package display

import (
	"path"

	"github.com/spf13/afero"
)

// LogoStore resolves team bitmaps from a filesystem laid out as one folder
// per league namespace, one .bmp per team abbreviation.
type LogoStore struct {
	fs afero.Fs
}

// NewLogoStore creates a store over the given filesystem. Tests use
// afero.NewMemMapFs; production uses a base-path OS filesystem rooted at the
// configured logo directory.
func NewLogoStore(fs afero.Fs) *LogoStore {
	return &LogoStore{fs: fs}
}

// Lookup returns the bitmap bytes for a team, or ok=false when the file is
// missing or unreadable. A failed lookup is silent per image: the caller
// renders that slot blank and continues.
func (s *LogoStore) Lookup(namespace, team string) ([]byte, bool) {
	if s == nil || s.fs == nil {
		return nil, false
	}
	data, err := afero.ReadFile(s.fs, path.Join(namespace, team+".bmp"))
	if err != nil {
		return nil, false
	}
	return data, true
}
