package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/autointerface/internal/models"
)

func TestNewBuilder(t *testing.T) {
	b := NewBuilder("MyApp.Models", "IPerson")
	require.NotNil(t, b)

	m := b.Model()
	assert.Equal(t, "IPerson", m.Name)
	assert.Equal(t, "MyApp.Models", m.Namespace)
	assert.Equal(t, []string{models.SeedUsing}, m.Usings)
	assert.Empty(t, m.GenericSuffix)
	assert.Empty(t, m.Documentation)
	assert.Zero(t, m.MemberCount())
}

func TestSeedUsingAlwaysRendered(t *testing.T) {
	text := build(t, NewBuilder("N", "I"))
	assert.Contains(t, text, "\nusing System.CodeDom.Compiler;\n\nnamespace N\n")
}

func TestAddUsings_Deduplicates(t *testing.T) {
	b := NewBuilder("N", "I")
	b.AddUsings("using A;")
	b.AddUsings("using A;", "using B;")
	b.AddUsings(models.SeedUsing)

	assert.Equal(t, []string{models.SeedUsing, "using A;", "using B;"}, b.Model().Usings)

	text := build(t, b)
	assert.Equal(t, 1, strings.Count(text, "using A;\n"))
	assert.Equal(t, 1, strings.Count(text, "using B;\n"))
	assert.Equal(t, 1, strings.Count(text, models.SeedUsing))
}

func TestLastCallWins(t *testing.T) {
	b := NewBuilder("N", "I")
	b.SetGenericSuffix("<T>")
	b.SetGenericSuffix("<TValue>")
	b.SetDocumentation("/// first")
	b.SetDocumentation("/// second")

	m := b.Model()
	assert.Equal(t, "<TValue>", m.GenericSuffix)
	assert.Equal(t, "/// second", m.Documentation)

	text := build(t, b)
	assert.Contains(t, text, "public partial interface I<TValue>\n")
	assert.NotContains(t, text, "first")
}

func TestMembersKeepInsertionOrder(t *testing.T) {
	b := NewBuilder("N", "I")
	b.AddProperty("B", "int", true, false, "")
	b.AddProperty("A", "int", true, false, "")
	b.AddMethod("Second", "void", "", nil, nil)
	b.AddMethod("First", "void", "", nil, nil)

	text := build(t, b)
	assert.Less(t, strings.Index(text, "int B"), strings.Index(text, "int A"))
	assert.Less(t, strings.Index(text, "int A"), strings.Index(text, "void Second"))
	assert.Less(t, strings.Index(text, "void Second"), strings.Index(text, "void First"))
}

func TestModel_IsSnapshot(t *testing.T) {
	params := []string{"int a"}
	generics := []models.GenericArg{{Name: "T", Constraint: "where T : class"}}

	b := NewBuilder("N", "I")
	b.AddMethod("M", "void", "", params, generics)
	params[0] = "string mutated"
	generics[0].Constraint = "mutated"

	frozen := b.Model()
	b.AddProperty("Later", "int", true, true, "")
	b.AddUsings("using Later;")
	frozen.Methods[0].Parameters[0] = "changed after freeze"

	again := b.Model()
	assert.Len(t, frozen.Properties, 0)
	assert.Len(t, again.Properties, 1)
	assert.NotContains(t, frozen.Usings, "using Later;")
	assert.Equal(t, []string{"int a"}, again.Methods[0].Parameters)
	assert.Equal(t, "where T : class", again.Methods[0].GenericArgs[0].Constraint)
}

func TestString(t *testing.T) {
	b := NewBuilder("N", "I")
	expected, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, expected, b.String())
}

func TestUsingSet(t *testing.T) {
	s := NewUsingSet("using Seed;")
	s.Add("using B;", "", "using A;", "using B;")

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("using A;"))
	assert.False(t, s.Contains(""))
	assert.Equal(t, []string{"using Seed;", "using B;", "using A;"}, s.List())
}
