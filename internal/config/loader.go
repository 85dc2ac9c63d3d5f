package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeYAML unmarshals a YAML document, naming its source in errors.
func decodeYAML(data []byte, v interface{}, source string) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", source, err)
	}
	return nil
}
