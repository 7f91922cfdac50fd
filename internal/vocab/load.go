package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Words []Entry `yaml:"words"`
}

// LoadFile reads static vocabulary entries from a YAML seed file.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode vocabulary file: %w", err)
	}
	for i, e := range f.Words {
		if e.Word == "" {
			return nil, fmt.Errorf("vocabulary entry %d: empty word", i)
		}
	}
	return f.Words, nil
}
