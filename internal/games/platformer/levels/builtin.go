package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

//go:embed data/*.yaml
var builtinFS embed.FS

func init() {
	files, err := Builtin()
	if err != nil {
		panic(fmt.Sprintf("levels: %v", err))
	}
	for _, f := range files {
		registry.Register(f.Level.ID, f.Level.Name, f.Factory())
	}
}

// Builtin parses the levels shipped with the binary, sorted by id.
func Builtin() ([]File, error) {
	entries, err := fs.Glob(builtinFS, "data/*.yaml")
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(entries))
	for _, name := range entries {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading embedded %s: %w", name, err)
		}
		f, err := parseFile(data, path.Ext(name))
		if err != nil {
			return nil, fmt.Errorf("parsing embedded %s: %w", name, err)
		}
		f.FilePath = name
		files = append(files, f)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Level.ID < files[j].Level.ID
	})
	return files, nil
}
