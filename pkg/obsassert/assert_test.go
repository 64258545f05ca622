package obsassert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeT records failures instead of stopping the test, so the
// assertion layer's failure path can itself be asserted on.
type fakeT struct {
	failed   bool
	messages []string
}

func (f *fakeT) Errorf(format string, args ...any) {
	f.messages = append(f.messages, fmt.Sprintf(format, args...))
}

func (f *fakeT) FailNow() {
	f.failed = true
}

func TestRequireLoggedOnce(t *testing.T) {
	tests := []struct {
		name       string
		records    RecordList
		attribute  any
		shouldFail bool
	}{
		{
			name:       "exactly one match passes",
			records:    RecordList(recordsWithParams([]any{"foo", "bar"}, []any{"baz"})),
			attribute:  "bar",
			shouldFail: false,
		},
		{
			name:       "zero matches fails",
			records:    RecordList(recordsWithParams([]any{"foo"})),
			attribute:  "bar",
			shouldFail: true,
		},
		{
			name:       "duplicate emission fails",
			records:    RecordList(recordsWithParams([]any{"bar"}, []any{"bar"})),
			attribute:  "bar",
			shouldFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &fakeT{}
			RequireLoggedOnce(ft, tt.records, tt.attribute)
			assert.Equal(t, tt.shouldFail, ft.failed)
		})
	}
}

func TestRequireLoggedOnce_FailureListsMessages(t *testing.T) {
	records := RecordList{
		{Message: "first message", Params: []any{"x"}},
		{Message: "second message", Params: []any{"y"}},
	}

	ft := &fakeT{}
	RequireLoggedOnce(ft, records, "bar")

	require.True(t, ft.failed)
	require.NotEmpty(t, ft.messages)
	assert.Contains(t, ft.messages[0], "first message,second message",
		"failure diagnostics list the captured messages")
}

func TestRequireTagValues(t *testing.T) {
	src := InstrumentList(instrumentsWithURI("/a", "/b"))

	ft := &fakeT{}
	RequireTagValues(ft, src, "uri", "/a", "/b")
	assert.False(t, ft.failed)

	ft = &fakeT{}
	RequireTagValues(ft, src, "uri", "/a", "/c")
	require.True(t, ft.failed)
	require.NotEmpty(t, ft.messages)
	assert.Contains(t, ft.messages[0], "/a,/b", "failure shows the values actually present")
}

func TestRequireTagValues_EmptySource(t *testing.T) {
	ft := &fakeT{}
	RequireTagValues(ft, InstrumentList(nil), "uri")
	assert.False(t, ft.failed, "no expected values and no instruments is a pass")
}
