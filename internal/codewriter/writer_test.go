package codewriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/autointerface/internal/errors"
)

func TestAppendLine_AppliesCurrentIndent(t *testing.T) {
	w := New()
	w.AppendLine("namespace A")
	w.Indent()
	w.AppendLine("x")
	w.Indent()
	w.AppendLine("y")
	w.Dedent()
	w.Dedent()
	w.AppendLine("}")

	text, err := w.Text()
	require.NoError(t, err)
	assert.Equal(t, "namespace A\n    x\n        y\n}\n", text)
}

func TestAppendLine_EmptyTextIsBareTerminator(t *testing.T) {
	w := New()
	w.Indent()
	w.AppendLine("")

	text, err := w.Text()
	require.NoError(t, err)
	assert.Equal(t, "\n", text)
}

func TestComposedLine(t *testing.T) {
	w := New()
	w.Indent()
	w.AppendIndented("T Clone")
	w.AppendRaw("<T>")
	w.AppendRaw("()")
	w.AppendRaw(";")
	w.AppendLineBreak()

	text, err := w.Text()
	require.NoError(t, err)
	assert.Equal(t, "    T Clone<T>();\n", text)
}

func TestDedentBelowZero(t *testing.T) {
	w := New()
	w.AppendLine("before")
	w.Dedent()
	w.AppendLine("after")
	w.Indent()

	text, err := w.Text()
	assert.Empty(t, text)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidIndentState)
	assert.Equal(t, errors.InvalidIndentStateErrorCode, errors.CodeOf(err))
	assert.Equal(t, err, w.Err())
}

func TestDedentBalanced(t *testing.T) {
	w := New()
	w.Indent()
	w.Dedent()
	assert.Equal(t, 0, w.Depth())
	assert.NoError(t, w.Err())
}

func TestAppendReflowed(t *testing.T) {
	tests := []struct {
		name     string
		depth    int
		doc      string
		expected string
	}{
		{
			name:     "empty",
			depth:    1,
			doc:      "",
			expected: "",
		},
		{
			name:     "whitespace only",
			depth:    1,
			doc:      "  \n\t \r\n",
			expected: "",
		},
		{
			name:     "inconsistent leading whitespace",
			depth:    2,
			doc:      "/// <summary>\n\t\t  /// Name of the person\n /// </summary>",
			expected: "        /// <summary>\n        /// Name of the person\n        /// </summary>\n",
		},
		{
			name:     "crlf input and trailing terminator",
			depth:    1,
			doc:      "/// a\r\n      /// b\r\n",
			expected: "    /// a\n    /// b\n",
		},
		{
			name:     "depth zero",
			depth:    0,
			doc:      "    /// top",
			expected: "/// top\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			for i := 0; i < tt.depth; i++ {
				w.Indent()
			}
			w.AppendReflowed(tt.doc)

			text, err := w.Text()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestAppendReflowed_EveryLineStartsWithExactIndent(t *testing.T) {
	w := New()
	w.Indent()
	w.Indent()
	w.AppendReflowed("   /// one\n/// two\n\t\t\t/// three\n        /// four")

	text, err := w.Text()
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "        ///"), "line %q", line)
		assert.False(t, strings.HasPrefix(line, "         "), "line %q", line)
	}
}

func TestOptions(t *testing.T) {
	w := NewWithOptions(Options{IndentWidth: 2, LineEnding: "\r\n"})
	w.AppendLine("{")
	w.Indent()
	w.AppendReflowed("/// doc")
	w.AppendLine("")
	w.Dedent()
	w.AppendLine("}")

	text, err := w.Text()
	require.NoError(t, err)
	assert.Equal(t, "{\r\n  /// doc\r\n\r\n}\r\n", text)
}

func TestText_Repeatable(t *testing.T) {
	w := New()
	w.AppendLine("a")

	first, err := w.Text()
	require.NoError(t, err)
	second, err := w.Text()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\r\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\r\rb"))
	assert.Equal(t, []string{""}, SplitLines(""))
}
