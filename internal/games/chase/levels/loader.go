package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/maze-chase/internal/games/chase/levels/formats"
)

//go:embed campaign/*.yaml
var campaignFS embed.FS

// Loader handles loading levels from a file tree.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: "."}
}

// Campaign returns a loader over the built-in campaign levels.
func Campaign() *Loader {
	return &Loader{FS: campaignFS, Root: "campaign"}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by number. Any invalid file fails the whole load.
func (l *Loader) LoadAll() ([]*Level, error) {
	var levels []*Level

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: loading %s: %w", l.Root, err)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].Number < levels[j].Number
	})
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (*Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", p, err)
	}

	level, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	level.FilePath = p
	return level, nil
}

// LoadNumber loads the level with the given number.
func (l *Loader) LoadNumber(n int) (*Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, lvl := range all {
		if lvl.Number == n {
			return lvl, nil
		}
	}
	return nil, fmt.Errorf("levels: level %d not found", n)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
