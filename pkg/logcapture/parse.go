package logcapture

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/valyala/fastjson"
)

// Keys emitted by slog's JSON handler for the built-in record fields.
const (
	timeKey  = "time"
	levelKey = "level"
	msgKey   = "msg"
)

// ParseJSONLines decodes a slog JSON-handler dump (one JSON object per
// line) into captured records. The built-in time, level and msg keys
// populate the corresponding Record fields; every other key's value is
// appended to Params in document order, so the positional semantics
// match what a live capture handler would have seen.
//
// Blank lines are skipped. A line that is not a JSON object aborts the
// parse with an error naming the offending line number.
func ParseJSONLines(r io.Reader) ([]Record, error) {
	var (
		parser  fastjson.Parser
		records []Record
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		v, err := parser.ParseBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", line, err)
		}
		obj, err := v.Object()
		if err != nil {
			return nil, fmt.Errorf("parse log line %d: not a JSON object: %w", line, err)
		}

		rec, err := recordFromObject(obj)
		if err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log dump: %w", err)
	}
	return records, nil
}

func recordFromObject(obj *fastjson.Object) (Record, error) {
	var (
		rec    Record
		keyErr error
	)
	obj.Visit(func(key []byte, v *fastjson.Value) {
		if keyErr != nil {
			return
		}
		switch string(key) {
		case timeKey:
			ts, err := time.Parse(time.RFC3339Nano, string(v.GetStringBytes()))
			if err != nil {
				keyErr = fmt.Errorf("invalid timestamp: %w", err)
				return
			}
			rec.Time = ts
		case levelKey:
			var level slog.Level
			if err := level.UnmarshalText(v.GetStringBytes()); err != nil {
				keyErr = fmt.Errorf("invalid level: %w", err)
				return
			}
			rec.Level = level
		case msgKey:
			rec.Message = string(v.GetStringBytes())
		default:
			rec.Params = append(rec.Params, paramValue(v))
		}
	})
	return rec, keyErr
}

// paramValue converts a JSON value to the closest Go representation a
// live slog handler would have produced for it.
func paramValue(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		f := v.GetFloat64()
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeNull:
		return nil
	default:
		// Nested objects and arrays stay opaque as their JSON text.
		return v.String()
	}
}
