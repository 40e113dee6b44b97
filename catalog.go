package locale

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"

	"gopkg.in/yaml.v3"
)

// fsCatalogSource reads message catalogs from an fs.FS.
//
// File convention: {locale}/{name}.yaml, .yml or .json, where {locale} is
// the locale name ("de-DE"), falling back to the bare language ("de") and
// then to the "C" directory. Each file maps set numbers to id-to-message
// tables:
//
//	1:
//	  1: "file not found"
//	  2: "permission denied"
//	2:
//	  1: "yes"
type fsCatalogSource struct {
	fsys fs.FS
}

// NewFSCatalogSource returns a CatalogSource reading catalogs from fsys,
// typically an embed.FS subtree.
func NewFSCatalogSource(fsys fs.FS) CatalogSource {
	return &fsCatalogSource{fsys: fsys}
}

// Load implements CatalogSource.
func (s *fsCatalogSource) Load(name string, loc Locale) (map[int]map[int]string, error) {
	for _, dir := range catalogDirs(loc) {
		for _, ext := range []string{".yaml", ".yml", ".json"} {
			path := dir + "/" + name + ext
			data, err := fs.ReadFile(s.fsys, path)
			if err != nil {
				continue
			}
			sets, err := parseCatalog(path, data, ext)
			if err != nil {
				return nil, err
			}
			return sets, nil
		}
	}
	return nil, fmt.Errorf("%w: %q for locale %q", ErrCatalogNotFound, name, loc.Name())
}

// catalogDirs returns the directories to probe, most specific first.
func catalogDirs(loc Locale) []string {
	dirs := []string{loc.Name()}
	if base, conf := loc.Tag().Base(); conf > 0 {
		if b := base.String(); b != "und" && b != loc.Name() {
			dirs = append(dirs, b)
		}
	}
	if loc.Name() != "C" {
		dirs = append(dirs, "C")
	}
	return dirs
}

func parseCatalog(path string, data []byte, ext string) (map[int]map[int]string, error) {
	if ext == ".json" {
		var raw map[string]map[string]string
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCatalog, path, err)
		}
		sets := make(map[int]map[int]string, len(raw))
		for setKey, msgs := range raw {
			set, err := strconv.Atoi(setKey)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: set key %q is not a number", ErrInvalidCatalog, path, setKey)
			}
			table := make(map[int]string, len(msgs))
			for idKey, msg := range msgs {
				id, err := strconv.Atoi(idKey)
				if err != nil {
					return nil, fmt.Errorf("%w: %q: message id %q is not a number", ErrInvalidCatalog, path, idKey)
				}
				table[id] = msg
			}
			sets[set] = table
		}
		return sets, nil
	}

	var sets map[int]map[int]string
	if err := yaml.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCatalog, path, err)
	}
	return sets, nil
}
