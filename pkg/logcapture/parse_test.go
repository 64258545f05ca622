package logcapture

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONLines(t *testing.T) {
	dump := strings.Join([]string{
		`{"time":"2026-08-30T10:00:00.5Z","level":"INFO","msg":"token validated","issuer":"https://idp","attempt":2}`,
		``,
		`{"time":"2026-08-30T10:00:01Z","level":"WARN","msg":"token expired","remaining":0.5,"renewable":true}`,
	}, "\n")

	records, err := ParseJSONLines(strings.NewReader(dump))
	require.NoError(t, err)
	require.Len(t, records, 2, "blank lines should be skipped")

	first := records[0]
	assert.True(t, first.Time.Equal(time.Date(2026, 8, 30, 10, 0, 0, 500_000_000, time.UTC)))
	assert.Equal(t, slog.LevelInfo, first.Level)
	assert.Equal(t, "token validated", first.Message)
	assert.Equal(t, []any{"https://idp", int64(2)}, first.Params)

	second := records[1]
	assert.Equal(t, slog.LevelWarn, second.Level)
	assert.Equal(t, []any{0.5, true}, second.Params)
}

func TestParseJSONLines_ParamOrderFollowsDocument(t *testing.T) {
	dump := `{"time":"2026-08-30T10:00:00Z","level":"INFO","msg":"m","b":"2","a":"1","c":"3"}`

	records, err := ParseJSONLines(strings.NewReader(dump))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []any{"2", "1", "3"}, records[0].Params,
		"params keep document order, not key order")
}

func TestParseJSONLines_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dump    string
		wantErr string
	}{
		{
			name:    "malformed JSON",
			dump:    `{"time":"2026-08-30T10:00:00Z","level":"INFO","msg":"ok"}` + "\n" + `{broken`,
			wantErr: "parse log line 2",
		},
		{
			name:    "non-object line",
			dump:    `[1,2,3]`,
			wantErr: "not a JSON object",
		},
		{
			name:    "bad timestamp",
			dump:    `{"time":"yesterday","level":"INFO","msg":"m"}`,
			wantErr: "invalid timestamp",
		},
		{
			name:    "bad level",
			dump:    `{"time":"2026-08-30T10:00:00Z","level":"LOUD","msg":"m"}`,
			wantErr: "invalid level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSONLines(strings.NewReader(tt.dump))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseJSONLines_Empty(t *testing.T) {
	records, err := ParseJSONLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}
