package importers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/scriptorium-fr/scriptorium/internal/services"
)

type entitySeedFile struct {
	Entities []services.EntityInput `yaml:"entities"`
}

// ParseEntitiesYAML reads an entity seed file. Unknown keys are rejected so
// typos in field names do not silently drop data.
func ParseEntitiesYAML(r io.Reader) ([]services.EntityInput, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file entitySeedFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return []services.EntityInput{}, nil
		}
		return nil, fmt.Errorf("failed to parse entity seeds: %w", err)
	}

	for i, e := range file.Entities {
		if e.Name == "" {
			return nil, fmt.Errorf("entity #%d: name is required", i+1)
		}
	}
	return file.Entities, nil
}
