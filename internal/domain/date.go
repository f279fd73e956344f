package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FlexibleDate accepts both RFC3339 timestamps and "YYYY-MM-DD" dates in
// JSON, YAML and TOML input.
type FlexibleDate struct {
	time.Time
}

// NewDate builds a FlexibleDate at midnight UTC.
func NewDate(year int, month time.Month, day int) FlexibleDate {
	return FlexibleDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an RFC3339 timestamp or a date-only string.
func ParseDate(s string) (FlexibleDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FlexibleDate{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FlexibleDate{t}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return FlexibleDate{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return FlexibleDate{t}, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *FlexibleDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		*d = FlexibleDate{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. Zero dates encode as null.
func (d FlexibleDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalText is used by the YAML and TOML decoders.
func (d *FlexibleDate) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d FlexibleDate) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.Format(dateLayout)), nil
}

// String returns the date-only representation.
func (d FlexibleDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}
