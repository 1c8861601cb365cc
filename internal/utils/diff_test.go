package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedDiff_Identical(t *testing.T) {
	diff, err := UnifiedDiff("a", "x\ny\n", "b", "x\ny\n")
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestUnifiedDiff_Changed(t *testing.T) {
	want := "namespace N\n{\n    int A { get; }\n}\n"
	got := "namespace N\n{\n    int A { get; set; }\n}\n"

	diff, err := UnifiedDiff("IPerson.g.cs", want, "generated", got)
	require.NoError(t, err)
	assert.Contains(t, diff, "--- IPerson.g.cs\n")
	assert.Contains(t, diff, "+++ generated\n")
	assert.Contains(t, diff, "-    int A { get; }\n")
	assert.Contains(t, diff, "+    int A { get; set; }\n")
}
