package shop

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimestampFormat is the canonical wire format for instants: RFC 3339 UTC
// with millisecond precision, the form legacy documents already contain.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// timestampFormats are the accepted read formats, most specific first.
// Layouts without a zone parse as UTC.
var timestampFormats = []string{
	TimestampFormat,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-1-2",
}

// Timestamp represents an instant with millisecond granularity.
//
// The zero Timestamp means "absent": mutators stamp it with Now, and it
// marshals as the empty string.
type Timestamp struct {
	t time.Time
}

// Now returns the current instant, truncated to the millisecond, in UTC.
func Now() Timestamp {
	return Timestamp{time.Now().UTC().Truncate(time.Millisecond)}
}

// NewTimestamp returns the Timestamp for a given time, normalized to
// millisecond precision in UTC.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{t.UTC().Truncate(time.Millisecond)}
}

// ParseTimestamp parses a Timestamp from a string. It is lenient and accepts
// full RFC 3339 forms as well as bare dates like "2025-7-1". The empty
// string parses to the zero Timestamp.
func ParseTimestamp(str string) (Timestamp, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampFormats {
		if on, err := time.Parse(layout, str); err == nil {
			return NewTimestamp(on), nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q, want format %q", str, TimestampFormat)
}

// String formats the instant in the canonical wire format, or "" when zero.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.t.Format(TimestampFormat)
}

// Short formats only the date part, for report tables.
func (t Timestamp) Short() string {
	if t.IsZero() {
		return ""
	}
	return t.t.Format("2006-01-02")
}

// Time returns the canonical time.Time representation of the instant.
func (t Timestamp) Time() time.Time { return t.t }

// IsZero reports whether the timestamp is absent.
func (t Timestamp) IsZero() bool { return t.t.IsZero() }

// Before reports whether t is before x.
func (t Timestamp) Before(x Timestamp) bool { return t.t.Before(x.t) }

// After reports whether t is after x.
func (t Timestamp) After(x Timestamp) bool { return t.t.After(x.t) }

// Equal reports whether t and x represent the same instant.
func (t Timestamp) Equal(x Timestamp) bool { return t.t.Equal(x.t) }

// MarshalJSON encodes the timestamp as a canonical string, "" when zero.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a timestamp from a document. It accepts any of the
// read formats, the empty string, null, and epoch milliseconds, which some
// very old documents contain.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		ts, perr := ParseTimestamp(str)
		if perr != nil {
			return fmt.Errorf("invalid timestamp in document: %w", perr)
		}
		*t = ts
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err == nil {
		*t = NewTimestamp(time.UnixMilli(ms))
		return nil
	}
	return fmt.Errorf("invalid timestamp %s in document", string(data))
}

// check that a Timestamp is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Timestamp)(nil)
var _ json.Unmarshaler = (*Timestamp)(nil)
