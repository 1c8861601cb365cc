package generator

import (
	"github.com/toyz/autointerface/internal/codewriter"
	"github.com/toyz/autointerface/internal/models"
)

// CodeGenerator turns a frozen interface model into source text
type CodeGenerator interface {
	Generate(m models.InterfaceModel) (string, error)
}

// Generator implements CodeGenerator with a fixed layout
type Generator struct {
	options codewriter.Options
}

// NewGenerator creates a generator using the default layout
func NewGenerator() *Generator {
	return &Generator{}
}

// NewGeneratorWithOptions creates a generator using the given layout
func NewGeneratorWithOptions(opts codewriter.Options) *Generator {
	return &Generator{options: opts}
}

// Generate renders m
func (g *Generator) Generate(m models.InterfaceModel) (string, error) {
	return RenderWithOptions(m, g.options)
}
