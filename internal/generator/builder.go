package generator

import (
	"github.com/toyz/autointerface/internal/models"
)

// Builder accumulates the description of one interface. Every mutation is additive and
// trusted: fragments are stored as given and validated by whoever produced them.
type Builder struct {
	namespace     string
	name          string
	genericSuffix string
	documentation string
	usings        *UsingSet
	properties    []models.Property
	methods       []models.Method
	events        []models.Event
}

// NewBuilder creates a builder for interface name inside namespace
func NewBuilder(namespace, name string) *Builder {
	return &Builder{
		namespace: namespace,
		name:      name,
		usings:    NewUsingSet(models.SeedUsing),
	}
}

// SetGenericSuffix sets the text placed right after the interface name. Last call wins.
func (b *Builder) SetGenericSuffix(suffix string) {
	b.genericSuffix = suffix
}

// SetDocumentation sets the interface documentation block. Last call wins.
func (b *Builder) SetDocumentation(doc string) {
	b.documentation = doc
}

// AddUsings merges using directives into the set
func (b *Builder) AddUsings(usings ...string) {
	b.usings.Add(usings...)
}

// AddProperty appends a property
func (b *Builder) AddProperty(name, typ string, hasGetter, hasSetter bool, doc string) {
	b.properties = append(b.properties, models.Property{
		Name:          name,
		Type:          typ,
		HasGetter:     hasGetter,
		HasSetter:     hasSetter,
		Documentation: doc,
	})
}

// AddMethod appends a method. Parameters keep their order and are not deduplicated.
func (b *Builder) AddMethod(name, returnType, doc string, parameters []string, genericArgs []models.GenericArg) {
	method := models.Method{
		Name:          name,
		ReturnType:    returnType,
		Documentation: doc,
		Parameters:    parameters,
		GenericArgs:   genericArgs,
	}
	b.methods = append(b.methods, method.Clone())
}

// AddEvent appends an event
func (b *Builder) AddEvent(name, typ, doc string) {
	b.events = append(b.events, models.Event{
		Name:          name,
		Type:          typ,
		Documentation: doc,
	})
}

// Model freezes the accumulated state into an independent value
func (b *Builder) Model() models.InterfaceModel {
	m := models.InterfaceModel{
		Name:          b.name,
		Namespace:     b.namespace,
		GenericSuffix: b.genericSuffix,
		Documentation: b.documentation,
		Usings:        b.usings.List(),
		Properties:    b.properties,
		Methods:       b.methods,
		Events:        b.events,
	}
	return m.Clone()
}

// Build renders the accumulated model with the default layout
func (b *Builder) Build() (string, error) {
	return Render(b.Model())
}

// String renders the accumulated model and returns the empty string on failure
func (b *Builder) String() string {
	text, err := b.Build()
	if err != nil {
		return ""
	}
	return text
}
