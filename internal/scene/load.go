package scene

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads a scene definition from a YAML or JSON file
func LoadFromFile(filepath string) (*Scene, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a scene from r. JSON documents are accepted as YAML flow mappings.
// Missing viewport dimensions fall back to the default viewport.
func Load(r io.Reader) (*Scene, error) {
	s := Default()
	s.Name = ""
	s.Weight = nil
	s.Theta1 = 0
	s.Theta2 = 0

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		if err == io.EOF {
			return nil, &ValidationError{"scene file is empty"}
		}
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}
