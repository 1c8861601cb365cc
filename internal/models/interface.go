package models

// SeedUsing is the using directive every generated interface carries. It enables the
// GeneratedCode attribute on the declaration.
const SeedUsing = "using System.CodeDom.Compiler;"

// InterfaceModel is the frozen description of one interface declaration. All type names,
// parameter declarations and constraints are opaque, pre-formatted text.
type InterfaceModel struct {
	Name          string     // interface name, e.g. IPerson
	Namespace     string     // enclosing namespace
	GenericSuffix string     // appended verbatim after Name, e.g. "<T> where T : class"
	Documentation string     // interface documentation comment block
	Usings        []string   // using directives, seed first, unique
	Properties    []Property // properties in declaration order
	Methods       []Method   // methods in declaration order
	Events        []Event    // events in declaration order
}

// Property represents a property signature
type Property struct {
	Name          string
	Type          string
	HasGetter     bool
	HasSetter     bool
	Documentation string
}

// Method represents a method signature for interface generation
type Method struct {
	Name          string
	ReturnType    string // "void" included
	Documentation string
	Parameters    []string     // pre-formatted declarations such as "int count", order kept
	GenericArgs   []GenericArg // generic type parameters in declaration order
}

// GenericArg is one method type parameter with its optional where clause
type GenericArg struct {
	Name       string // e.g. T
	Constraint string // e.g. "where T : class", may be empty
}

// Event represents an event declaration
type Event struct {
	Name          string
	Type          string // delegate type
	Documentation string
}

// MemberCount returns the number of properties, methods and events in the model
func (m InterfaceModel) MemberCount() int {
	return len(m.Properties) + len(m.Methods) + len(m.Events)
}

// Clone returns a deep copy of the model so later changes to either side stay isolated
func (m InterfaceModel) Clone() InterfaceModel {
	out := m
	out.Usings = append([]string(nil), m.Usings...)
	out.Properties = append([]Property(nil), m.Properties...)
	out.Events = append([]Event(nil), m.Events...)
	out.Methods = nil
	for _, method := range m.Methods {
		out.Methods = append(out.Methods, method.Clone())
	}
	return out
}

// Clone returns a deep copy of the method
func (m Method) Clone() Method {
	out := m
	out.Parameters = append([]string(nil), m.Parameters...)
	out.GenericArgs = append([]GenericArg(nil), m.GenericArgs...)
	return out
}

// HasGenerics reports whether the method declares type parameters
func (m Method) HasGenerics() bool {
	return len(m.GenericArgs) > 0
}
