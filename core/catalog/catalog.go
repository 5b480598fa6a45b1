// Package catalog owns the question catalog: stable question IDs, option
// codes, grouping into sections, and which questions gate submission.
// The engine itself never depends on the catalog; presentation adapters
// use it to collect answers and to parse answer files.
package catalog

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"freelance-pricing/core/types"
	"freelance-pricing/internal/errors"
)

//go:embed questions.yaml
var rawCatalog []byte

// QuestionType is the input widget family of a question.
type QuestionType string

const (
	// TypeDropdown is a single choice from a list
	TypeDropdown QuestionType = "dropdown"

	// TypeRadio is a single choice with described options
	TypeRadio QuestionType = "radio"

	// TypeMultiple is a set of choices
	TypeMultiple QuestionType = "multiple"

	// TypeNumber is a numeric entry
	TypeNumber QuestionType = "number"

	// TypeTextarea is free-form text
	TypeTextarea QuestionType = "textarea"
)

// Option is one selectable answer.
type Option struct {
	Value       string `yaml:"value"`
	Label       string `yaml:"label"`
	Description string `yaml:"description,omitempty"`
}

// Question is one catalog entry.
type Question struct {
	ID          types.QuestionID `yaml:"id"`
	Section     string           `yaml:"section"`
	Type        QuestionType     `yaml:"type"`
	Prompt      string           `yaml:"prompt"`
	Required    bool             `yaml:"required"`
	Help        string           `yaml:"help,omitempty"`
	Placeholder string           `yaml:"placeholder,omitempty"`
	Options     []Option         `yaml:"options,omitempty"`
	Min         int              `yaml:"min,omitempty"`
	Max         int              `yaml:"max,omitempty"`
	Unit        string           `yaml:"unit,omitempty"`
}

// Section groups questions for display.
type Section struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Catalog is the full question set.
type Catalog struct {
	Sections  []Section  `yaml:"sections"`
	Questions []Question `yaml:"questions"`

	byID map[types.QuestionID]*Question
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(rawCatalog, &c); err != nil {
		return nil, errors.Wrap(errors.TypeCatalog, "parsing embedded question catalog", err)
	}

	c.byID = make(map[types.QuestionID]*Question, len(c.Questions))
	for i := range c.Questions {
		q := &c.Questions[i]
		if _, dup := c.byID[q.ID]; dup {
			return nil, errors.Newf(errors.TypeCatalog, "duplicate question id %q", q.ID)
		}
		c.byID[q.ID] = q
	}
	return &c, nil
}

// Question returns the catalog entry for id.
func (c *Catalog) Question(id types.QuestionID) (*Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// BySection returns the questions of one section, in catalog order.
func (c *Catalog) BySection(sectionID string) []Question {
	var out []Question
	for _, q := range c.Questions {
		if q.Section == sectionID {
			out = append(out, q)
		}
	}
	return out
}

// MissingRequired lists required questions not yet answered. The
// presentation layer gates submission on this being empty.
func (c *Catalog) MissingRequired(answers types.AnswerSet) []types.QuestionID {
	var missing []types.QuestionID
	for _, q := range c.Questions {
		if q.Required && !answers.Has(q.ID) {
			missing = append(missing, q.ID)
		}
	}
	return missing
}
