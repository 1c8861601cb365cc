// Package manifest reads declarative interface descriptions and replays them into a
// generator.Builder.
//
// A manifest describes exactly one interface. YAML, JSON and TOML files share the same keys:
//
//	namespace: MyApp.Models
//	interface: IPerson
//	generic: "<T> where T : class"
//	documentation: |
//	  /// <summary>A person.</summary>
//	usings: ["using System;"]
//	properties:
//	  - {name: Name, type: string, get: true, set: true}
//	methods:
//	  - name: Clone
//	    returns: T
//	    parameters: ["bool deep"]
//	    generics: [{name: T, constraint: "where T : class"}]
//	events:
//	  - {name: Changed, type: EventHandler}
package manifest

import (
	"fmt"

	"github.com/toyz/autointerface/internal/errors"
	"github.com/toyz/autointerface/internal/generator"
	"github.com/toyz/autointerface/internal/models"
	"github.com/toyz/autointerface/internal/utils"
)

// Manifest is the decoded form of a manifest file
type Manifest struct {
	Namespace     string         `yaml:"namespace" toml:"namespace"`
	Interface     string         `yaml:"interface" toml:"interface"`
	Generic       string         `yaml:"generic" toml:"generic"`
	Documentation string         `yaml:"documentation" toml:"documentation"`
	Usings        []string       `yaml:"usings" toml:"usings"`
	Properties    []PropertySpec `yaml:"properties" toml:"properties"`
	Methods       []MethodSpec   `yaml:"methods" toml:"methods"`
	Events        []EventSpec    `yaml:"events" toml:"events"`

	// Path is the file the manifest was loaded from, empty for in-memory manifests
	Path string `yaml:"-" toml:"-"`
}

// PropertySpec describes one property
type PropertySpec struct {
	Name          string `yaml:"name" toml:"name"`
	Type          string `yaml:"type" toml:"type"`
	Get           bool   `yaml:"get" toml:"get"`
	Set           bool   `yaml:"set" toml:"set"`
	Documentation string `yaml:"documentation" toml:"documentation"`
}

// MethodSpec describes one method
type MethodSpec struct {
	Name          string        `yaml:"name" toml:"name"`
	Returns       string        `yaml:"returns" toml:"returns"`
	Documentation string        `yaml:"documentation" toml:"documentation"`
	Parameters    []string      `yaml:"parameters" toml:"parameters"`
	Generics      []GenericSpec `yaml:"generics" toml:"generics"`
}

// GenericSpec describes one method type parameter
type GenericSpec struct {
	Name       string `yaml:"name" toml:"name"`
	Constraint string `yaml:"constraint" toml:"constraint"`
}

// EventSpec describes one event
type EventSpec struct {
	Name          string `yaml:"name" toml:"name"`
	Type          string `yaml:"type" toml:"type"`
	Documentation string `yaml:"documentation" toml:"documentation"`
}

// Validate checks the fields the generator trusts its caller to supply. All problems are
// reported together.
func (m *Manifest) Validate() error {
	errs := errors.NewMultipleErrors()
	loc := errors.SourceLocation{File: m.Path}

	check := func(err error) {
		if err == nil {
			return
		}
		if verr, ok := err.(*errors.ValidationError); ok {
			verr.WithLocation(loc)
		}
		errs.Add(err)
	}
	identifier := func(field, value string) {
		check(utils.IdentifierChain(field).Validate(value))
	}
	required := func(field, value string) {
		check(utils.NotBlank(field)(value))
	}

	check(utils.NewValidatorChain(utils.NotEmpty("namespace"), utils.IsValidNamespace("namespace")).Validate(m.Namespace))
	identifier("interface", m.Interface)

	for i, p := range m.Properties {
		field := fmt.Sprintf("properties[%d]", i)
		identifier(field+".name", p.Name)
		required(field+".type", p.Type)
		if !p.Get && !p.Set {
			check(errors.NewValidationError(field, "at least one of get or set", "neither").
				WithContext("property", p.Name))
		}
	}

	for i, meth := range m.Methods {
		field := fmt.Sprintf("methods[%d]", i)
		identifier(field+".name", meth.Name)
		required(field+".returns", meth.Returns)
		for j, g := range meth.Generics {
			identifier(fmt.Sprintf("%s.generics[%d].name", field, j), g.Name)
		}
	}

	for i, e := range m.Events {
		field := fmt.Sprintf("events[%d]", i)
		identifier(field+".name", e.Name)
		required(field+".type", e.Type)
	}

	return errs.ErrorOrNil()
}

// Builder replays the manifest through the builder mutation API in file order
func (m *Manifest) Builder() *generator.Builder {
	b := generator.NewBuilder(m.Namespace, m.Interface)
	b.AddUsings(m.Usings...)
	b.SetDocumentation(m.Documentation)
	b.SetGenericSuffix(m.Generic)

	for _, p := range m.Properties {
		b.AddProperty(p.Name, p.Type, p.Get, p.Set, p.Documentation)
	}
	for _, meth := range m.Methods {
		var generics []models.GenericArg
		for _, g := range meth.Generics {
			generics = append(generics, models.GenericArg{Name: g.Name, Constraint: g.Constraint})
		}
		b.AddMethod(meth.Name, meth.Returns, meth.Documentation, meth.Parameters, generics)
	}
	for _, e := range m.Events {
		b.AddEvent(e.Name, e.Type, e.Documentation)
	}
	return b
}

// Model validates the manifest and freezes it into an interface model
func (m *Manifest) Model() (models.InterfaceModel, error) {
	if err := m.Validate(); err != nil {
		return models.InterfaceModel{}, err
	}
	return m.Builder().Model(), nil
}
