package heartbeat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusYes   = "YES"
	ContentType = "application/json"

	// TimestampLayout is ISO-8601 with microseconds and an explicit +00:00 offset.
	TimestampLayout = "2006-01-02T15:04:05.000000-07:00"
	// TimestampLayoutWholeSeconds is used when the microsecond part is zero.
	TimestampLayoutWholeSeconds = "2006-01-02T15:04:05-07:00"
)

type Record struct {
	Identity  string `json:"identity"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

func NewRecord(identity string, now time.Time) Record {
	return Record{
		Identity:  identity,
		Timestamp: FormatTimestamp(now),
		Status:    StatusYes,
	}
}

// FormatTimestamp renders now in UTC, truncated to microseconds. The fraction
// is left out entirely when it is zero.
func FormatTimestamp(now time.Time) string {
	utc := now.UTC()
	if utc.Nanosecond()/int(time.Microsecond) == 0 {
		return utc.Format(TimestampLayoutWholeSeconds)
	}

	return utc.Format(TimestampLayout)
}

// Payload renders the record as `{"identity": "...", "timestamp": "...", "status": "YES"}`.
func (r Record) Payload() ([]byte, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"identity", r.Identity},
		{"timestamp", r.Timestamp},
		{"status", r.Status},
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range fields {
		if i > 0 {
			buf.WriteString(", ")
		}

		value, err := encodeString(field.value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", field.name, err)
		}

		fmt.Fprintf(&buf, "%q: ", field.name)
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// encodeString quotes s as a JSON string without escaping <, > and &.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ObjectKey returns logs/YYYY/MM/DD_heartbeat.json for the UTC date of now.
func ObjectKey(now time.Time) string {
	utc := now.UTC()

	return fmt.Sprintf("logs/%d/%02d/%02d_heartbeat.json", utc.Year(), int(utc.Month()), utc.Day())
}
