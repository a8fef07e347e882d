// Package timex holds time helpers shared by client and server: a Duration
// that decodes from config files and a monotonic logical clock.
package timex

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration decodes from either a Go duration string ("1s", "250ms") or an
// integer number of nanoseconds.
type Duration struct {
	time.Duration
}

func parseDuration(v any) (time.Duration, error) {
	switch x := v.(type) {
	case float64:
		return time.Duration(int64(x)), nil
	case int:
		return time.Duration(x), nil
	case string:
		return time.ParseDuration(x)
	default:
		return 0, fmt.Errorf("invalid duration %v", v)
	}
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := parseDuration(v)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	parsed, err := parseDuration(v)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}
