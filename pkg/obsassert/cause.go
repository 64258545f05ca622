package obsassert

import (
	"errors"
	"fmt"
	"strings"
)

// RootCauseString renders an error chain for diagnostics: the root
// cause's dynamic type and message on the first line, followed by one
// indented line per wrapping layer from outermost inward. It is meant
// for test failure messages that report an unrelated captured error,
// where the root cause matters more than the outer wrapping.
//
// A nil error yields the empty string.
func RootCauseString(err error) string {
	if err == nil {
		return ""
	}

	root := err
	for {
		next := errors.Unwrap(root)
		if next == nil {
			break
		}
		root = next
	}

	var sb strings.Builder
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%T: %s\n", root, root.Error())
	for e := err; errors.Unwrap(e) != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(&sb, "\t%s\n", e.Error())
	}
	return sb.String()
}
