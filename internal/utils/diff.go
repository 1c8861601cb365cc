package utils

import (
	"github.com/pmezard/go-difflib/difflib"
)

// diffContext is the number of unchanged lines shown around each change
const diffContext = 3

// UnifiedDiff returns a unified diff turning want into got. An empty result means the
// texts are identical.
func UnifiedDiff(wantName, want, gotName, got string) (string, error) {
	if want == got {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: wantName,
		ToFile:   gotName,
		Context:  diffContext,
	})
}
