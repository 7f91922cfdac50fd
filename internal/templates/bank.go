package templates

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a template bank. JSON files are valid
// YAML, so both go through the YAML decoder.
type document struct {
	Version   int        `json:"version"`
	Templates []Template `json:"templates"`
}

// Parse decodes and validates a template bank document.
func Parse(data []byte) ([]Template, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("decode template bank: %w", err)
	}
	raw, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("normalize template bank: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal template bank: %w", err)
	}
	return doc.Templates, nil
}

// LoadFile reads and parses the template bank at path.
func LoadFile(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template bank: %w", err)
	}
	return Parse(data)
}

// FileBank loads templates from a file exactly once. Load or parse
// failures produce an empty bank rather than an error.
type FileBank struct {
	path string
	log  logrus.FieldLogger

	once      sync.Once
	templates []Template
}

// NewFileBank creates a bank backed by the file at path.
func NewFileBank(path string, log logrus.FieldLogger) *FileBank {
	return &FileBank{path: path, log: log}
}

// LoadTemplates returns the bank's templates, loading them on first call.
func (b *FileBank) LoadTemplates() []Template {
	b.once.Do(func() {
		log := b.log.WithField("path", b.path)
		tmpls, err := LoadFile(b.path)
		if err != nil {
			log.WithError(err).Warn("template bank unavailable, continuing with no templates")
			b.templates = []Template{}
			return
		}
		for _, w := range Validate(tmpls) {
			log.WithField("template_id", w.TemplateID).Warn(w.Message)
		}
		log.WithField("count", len(tmpls)).Debug("template bank loaded")
		b.templates = tmpls
	})
	return b.templates
}
