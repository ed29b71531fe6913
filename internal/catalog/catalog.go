package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"quiz-assign/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var builtinTemplates []byte

// Option is a selectable audience code offered by the picker.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProgrammeOptions and BranchOptions are the audience choices offered to teachers.
var (
	ProgrammeOptions = []Option{
		{Value: "btech", Label: "B.Tech"},
		{Value: "mtech", Label: "M.Tech"},
		{Value: "phd", Label: "PhD"},
	}
	BranchOptions = []Option{
		{Value: "cse", Label: "Computer Science"},
		{Value: "ece", Label: "Electronics"},
		{Value: "me", Label: "Mechanical"},
	}
)

// StaticCatalog is an immutable, ordered template list.
type StaticCatalog struct {
	templates []domain.QuizTemplate
}

// New builds a catalog from templates, keeping their order.
func New(templates []domain.QuizTemplate) (*StaticCatalog, error) {
	out := make([]domain.QuizTemplate, 0, len(templates))
	for i, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("template %d (%q): %w", i, t.Title, err)
		}
		out = append(out, t.Clone())
	}
	return &StaticCatalog{templates: out}, nil
}

// Parse decodes a YAML template list.
func Parse(data []byte) (*StaticCatalog, error) {
	var templates []domain.QuizTemplate
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse template catalog: %w", err)
	}
	return New(templates)
}

// Builtin returns the catalog compiled into the binary.
func Builtin() (*StaticCatalog, error) {
	return Parse(builtinTemplates)
}

// Load reads the catalog from path, or returns the built-in catalog when path is empty.
func Load(path string) (*StaticCatalog, error) {
	if path == "" {
		return Builtin()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template catalog %s: %w", path, err)
	}
	return Parse(data)
}

// All implements domain.TemplateCatalog
func (c *StaticCatalog) All() []domain.QuizTemplate {
	out := make([]domain.QuizTemplate, len(c.templates))
	for i, t := range c.templates {
		out[i] = t.Clone()
	}
	return out
}

// Get implements domain.TemplateCatalog
func (c *StaticCatalog) Get(index int) (domain.QuizTemplate, error) {
	if index < 0 || index >= len(c.templates) {
		return domain.QuizTemplate{}, domain.NewTemplateNotFoundError(index)
	}
	return c.templates[index].Clone(), nil
}

// Len implements domain.TemplateCatalog
func (c *StaticCatalog) Len() int {
	return len(c.templates)
}
