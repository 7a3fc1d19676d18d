package exercise

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// catalogVersion is the catalog schema this build understands.
const catalogVersion = 1

type catalogFile struct {
	Version   int        `yaml:"version"`
	Exercises []Exercise `yaml:"exercises"`
}

// ParseCatalog builds a library from catalog YAML.
func ParseCatalog(data []byte) (*Library, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing exercise catalog: %w", err)
	}
	if cf.Version != catalogVersion {
		return nil, fmt.Errorf("exercise catalog version %d, want %d", cf.Version, catalogVersion)
	}
	lib := NewLibrary()
	for i, e := range cf.Exercises {
		if _, err := lib.GetExercise(e.Name); err == nil {
			return nil, fmt.Errorf("exercise catalog entry %d: duplicate name %q", i+1, e.Name)
		}
		if err := lib.AddExercise(e); err != nil {
			return nil, fmt.Errorf("exercise catalog entry %d: %w", i+1, err)
		}
	}
	return lib, nil
}

// LoadCatalog builds the library from the embedded catalog and logs
// variations whose parent is not part of it.
func LoadCatalog(log *slog.Logger) (*Library, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	lib, err := ParseCatalog(catalogYAML)
	if err != nil {
		return nil, err
	}
	dangling := lib.DanglingVariations()
	for _, parent := range slices.Sorted(maps.Keys(dangling)) {
		log.Warn("variation parent missing from catalog", "parent", parent, "variations", dangling[parent])
	}
	log.Info("exercise catalog loaded", "exercises", lib.Len())
	return lib, nil
}

// Default returns the embedded catalog without logging. It panics if the
// embedded catalog is invalid.
func Default() *Library {
	lib, err := ParseCatalog(catalogYAML)
	if err != nil {
		panic(err)
	}
	return lib
}
