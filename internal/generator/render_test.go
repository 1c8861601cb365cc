package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/autointerface/internal/codewriter"
	"github.com/toyz/autointerface/internal/models"
)

const header = `//--------------------------------------------------------------------------------------------------
// <auto-generated>
//     This code was generated by a tool.
//
//     Changes to this file may cause incorrect behavior and will be lost if the code is regenerated.
// </auto-generated>
//--------------------------------------------------------------------------------------------------

`

func build(t *testing.T, b *Builder) string {
	t.Helper()
	text, err := b.Build()
	require.NoError(t, err)
	return text
}

func TestRender_SingleProperty(t *testing.T) {
	b := NewBuilder("MyApp.Models", "IPerson")
	b.AddProperty("Name", "string", true, true, "")

	expected := header + `using System.CodeDom.Compiler;

namespace MyApp.Models
{
    [GeneratedCode("AutomaticInterface", "")]
    public partial interface IPerson
    {
        string Name { get; set; }

    }
}
`
	assert.Equal(t, expected, build(t, b))
}

func TestRender_FullDeclaration(t *testing.T) {
	b := NewBuilder("Demo", "IRepository")
	b.AddUsings("using System;", "using System.Collections.Generic;")
	b.SetGenericSuffix("<TKey> where TKey : notnull")
	b.SetDocumentation("/// <summary>\n        /// Stores entities.\n/// </summary>")
	b.AddProperty("Count", "int", true, false, "/// <summary>Number of items</summary>")
	b.AddMethod("Find", "TEntity?", "", []string{"TKey key", "bool track = false"},
		[]models.GenericArg{{Name: "TEntity", Constraint: "where TEntity : class"}})
	b.AddMethod("Clear", "void", "   /// Removes everything", nil, nil)
	b.AddEvent("Changed", "EventHandler", "")

	expected := header + `using System.CodeDom.Compiler;
using System;
using System.Collections.Generic;

namespace Demo
{
    /// <summary>
    /// Stores entities.
    /// </summary>
    [GeneratedCode("AutomaticInterface", "")]
    public partial interface IRepository<TKey> where TKey : notnull
    {
        /// <summary>Number of items</summary>
        int Count { get; }

        TEntity? Find<TEntity>(TKey key, bool track = false) where TEntity : class;

        /// Removes everything
        void Clear();

        event EventHandler Changed;

    }
}
`
	assert.Equal(t, expected, build(t, b))
}

func TestRender_Idempotent(t *testing.T) {
	b := NewBuilder("A", "IB")
	b.AddProperty("X", "int", true, true, "/// x")
	b.AddMethod("Do", "void", "", []string{"int a"}, []models.GenericArg{{Name: "T"}})
	b.AddEvent("E", "Action", "")

	first := build(t, b)
	second := build(t, b)
	assert.Equal(t, first, second)

	m := b.Model()
	r1, err := Render(m)
	require.NoError(t, err)
	r2, err := Render(m)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	assert.Equal(t, first, r1)
}

func TestRender_AccessorBlocks(t *testing.T) {
	tests := []struct {
		name     string
		get, set bool
		expected string
	}{
		{"getter only", true, false, "int P { get; }"},
		{"setter only", false, true, "int P { set; }"},
		{"both", true, true, "int P { get; set; }"},
		{"neither", false, false, "int P {  }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder("N", "I")
			b.AddProperty("P", "int", tt.get, tt.set, "")
			assert.Contains(t, build(t, b), "\n        "+tt.expected+"\n\n")
		})
	}
}

func TestRender_PropertyWithoutAccessors(t *testing.T) {
	b := NewBuilder("N", "I")
	b.AddProperty("P", "int", false, false, "")

	line := findLine(t, build(t, b), "int P")
	assert.Equal(t, "        int P {  }", line)
}

func TestRender_Methods(t *testing.T) {
	tests := []struct {
		name     string
		method   models.Method
		expected string
	}{
		{
			name:     "generic with constraint",
			method:   models.Method{Name: "Clone", ReturnType: "T", GenericArgs: []models.GenericArg{{Name: "T", Constraint: "where T : class"}}},
			expected: "T Clone<T>() where T : class;",
		},
		{
			name:     "no generics",
			method:   models.Method{Name: "Save", ReturnType: "void", Parameters: []string{"string path", "int retries"}},
			expected: "void Save(string path, int retries);",
		},
		{
			name: "constraints filtered and ordered",
			method: models.Method{Name: "Map", ReturnType: "TOut", Parameters: []string{"TIn input"}, GenericArgs: []models.GenericArg{
				{Name: "TIn", Constraint: "where TIn : struct"},
				{Name: "TMid", Constraint: ""},
				{Name: "TOut", Constraint: "where TOut : new()"},
			}},
			expected: "TOut Map<TIn, TMid, TOut>(TIn input) where TIn : struct where TOut : new();",
		},
		{
			name:     "generics without constraints",
			method:   models.Method{Name: "Get", ReturnType: "T", GenericArgs: []models.GenericArg{{Name: "T"}, {Name: "U", Constraint: "  "}}},
			expected: "T Get<T, U>();",
		},
		{
			name:     "duplicate parameters kept",
			method:   models.Method{Name: "Pair", ReturnType: "void", Parameters: []string{"int a", "int a"}},
			expected: "void Pair(int a, int a);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder("N", "I")
			b.AddMethod(tt.method.Name, tt.method.ReturnType, "", tt.method.Parameters, tt.method.GenericArgs)
			assert.Contains(t, build(t, b), "\n        "+tt.expected+"\n\n")
		})
	}
}

func TestRender_NoGenericsHasNoAngleBrackets(t *testing.T) {
	b := NewBuilder("N", "I")
	b.AddMethod("Run", "Task", "", []string{"CancellationToken ct"}, nil)

	text := build(t, b)
	line := findLine(t, text, "Task Run")
	assert.NotContains(t, line, "<")
	assert.NotContains(t, line, "where")
	assert.Equal(t, "        Task Run(CancellationToken ct);", line)
}

func TestRender_Event(t *testing.T) {
	b := NewBuilder("N", "I")
	b.AddEvent("Changed", "EventHandler", "")
	assert.Contains(t, build(t, b), "\n        event EventHandler Changed;\n\n")
}

func TestRender_EmptyDocumentationEmitsNothing(t *testing.T) {
	b := NewBuilder("N", "I")
	b.AddProperty("A", "int", true, false, "")
	b.AddEvent("E", "Action", "   ")

	expectedBody := "    {\n        int A { get; }\n\n        event Action E;\n\n    }\n"
	assert.Contains(t, build(t, b), expectedBody)
}

func TestRender_DocumentationFollowsDepth(t *testing.T) {
	b := NewBuilder("N", "I")
	b.SetDocumentation("\t\t/// interface")
	b.AddMethod("M", "void", "/// line one\n\t\t\t\t/// line two", nil, nil)

	text := build(t, b)
	assert.Contains(t, text, "\n    /// interface\n    [GeneratedCode")
	assert.Contains(t, text, "\n        /// line one\n        /// line two\n        void M();\n")
}

func TestRender_WithOptions(t *testing.T) {
	b := NewBuilder("N", "I")
	b.AddEvent("E", "Action", "")

	text, err := RenderWithOptions(b.Model(), codewriter.Options{IndentWidth: 2, LineEnding: "\r\n"})
	require.NoError(t, err)
	assert.Contains(t, text, "namespace N\r\n{\r\n  [GeneratedCode")
	assert.Contains(t, text, "\r\n    event Action E;\r\n\r\n  }\r\n}\r\n")
	assert.NotContains(t, strings.ReplaceAll(text, "\r\n", ""), "\n")
}

func TestGenerator(t *testing.T) {
	b := NewBuilder("N", "I")
	expected, err := Render(b.Model())
	require.NoError(t, err)

	var gen CodeGenerator = NewGenerator()
	text, err := gen.Generate(b.Model())
	require.NoError(t, err)
	assert.Equal(t, expected, text)
}

func findLine(t *testing.T, text, prefix string) string {
	t.Helper()
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			return line
		}
	}
	t.Fatalf("no line starting with %q in:\n%s", prefix, text)
	return ""
}
