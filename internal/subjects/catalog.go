package subjects

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/saulo-duarte/quizforge-lambda/internal/aiquiz"
)

//go:embed taxonomy.yaml
var taxonomyYAML []byte

type Subject struct {
	Name      string          `yaml:"name" json:"name"`
	Strategy  aiquiz.Strategy `yaml:"-" json:"strategy"`
	Tones     []string        `yaml:"tones,omitempty" json:"tones,omitempty"`
	Subtopics []string        `yaml:"subtopics" json:"subtopics"`
}

type Catalog struct {
	Subjects []Subject `yaml:"subjects" json:"subjects"`
}

// Load parses the embedded taxonomy.
func Load() (*Catalog, error) {
	return Parse(taxonomyYAML)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse subject taxonomy: %w", err)
	}
	for i := range c.Subjects {
		s := &c.Subjects[i]
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("subject %d has no name", i+1)
		}
		if len(s.Subtopics) == 0 {
			return nil, fmt.Errorf("subject %q has no subtopics", s.Name)
		}
		s.Strategy = aiquiz.SelectTemplate(s.Name).Strategy
	}
	return &c, nil
}

// Find looks a subject up by name, ignoring case and surrounding space.
func (c *Catalog) Find(name string) (Subject, bool) {
	for _, s := range c.Subjects {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return s, true
		}
	}
	return Subject{}, false
}
