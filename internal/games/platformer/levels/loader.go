// Package levels loads platformer levels from YAML files and registers the
// built-in set with the level catalog.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// File is a parsed, validated level file.
type File struct {
	Level    *sim.Level
	Metadata map[string]string
	FilePath string
	raw      []byte
	ext      string
}

// Factory returns a registry factory that reparses the file contents,
// so each load gets fresh entities.
func (f File) Factory() registry.Factory {
	return func() (*sim.Level, error) {
		parsed, err := parseByExtension(f.raw, f.ext)
		if err != nil {
			return nil, err
		}
		return parsed.Level, nil
	}
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by id.
func (l *Loader) LoadAll() ([]File, error) {
	var files []File

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		f, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		files = append(files, f)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Level.ID < files[j].Level.ID
	})

	return files, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	f, err := parseFile(data, ext)
	if err != nil {
		return File{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	f.FilePath = path
	return f, nil
}

// LoadByID loads a specific level by id.
func (l *Loader) LoadByID(id int) (File, error) {
	files, err := l.LoadAll()
	if err != nil {
		return File{}, err
	}

	for _, f := range files {
		if f.Level.ID == id {
			return f, nil
		}
	}

	return File{}, fmt.Errorf("level %d in %s: %w", id, l.Root, sim.ErrLevelNotFound)
}

// RegisterAll adds every valid level under Root to the catalog.
// Ids that are already registered are reported and skipped.
func (l *Loader) RegisterAll() (int, error) {
	files, err := l.LoadAll()
	if err != nil {
		return 0, err
	}

	var errs []error
	n := 0
	for _, f := range files {
		info := registry.LevelInfo{ID: f.Level.ID, Name: f.Level.Name, Source: f.FilePath}
		if err := registry.Add(info, f.Factory()); err != nil {
			errs = append(errs, err)
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}

func parseFile(data []byte, ext string) (File, error) {
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return File{}, err
	}
	if err := sim.Validate(parsed.Level); err != nil {
		return File{}, err
	}
	return File{Level: parsed.Level, Metadata: parsed.Metadata, raw: data, ext: ext}, nil
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

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Parsed, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Parsed{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
