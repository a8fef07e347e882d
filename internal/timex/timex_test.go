package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
		err  bool
	}{
		{`"1s"`, time.Second, false},
		{`"250ms"`, 250 * time.Millisecond, false},
		{`1000000000`, time.Second, false},
		{`"abc"`, 0, true},
		{`true`, 0, true},
	}
	for _, tt := range tests {
		var d Duration
		err := json.Unmarshal([]byte(tt.in), &d)
		if tt.err {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, d.Duration)
	}
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var v struct {
		Interval Duration `yaml:"interval"`
		Raw      Duration `yaml:"raw"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("interval: 2s\nraw: 5\n"), &v))
	assert.Equal(t, 2*time.Second, v.Interval.Duration)
	assert.Equal(t, time.Duration(5), v.Raw.Duration)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: 3 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, `"3s"`, string(b))
}

func TestClock_Monotonic(t *testing.T) {
	fixed := time.UnixMilli(1000)
	c := NewClockFunc(func() time.Time { return fixed })

	a := c.Next(0)
	b := c.Next(0)
	assert.Equal(t, int64(1000), a)
	assert.Equal(t, int64(1001), b, "same wall time must still advance")

	fixed = time.UnixMilli(500)
	assert.Equal(t, int64(1002), c.Next(0), "wall clock going back must not regress")
	assert.Equal(t, int64(5001), c.Next(5000), "floor is exceeded")
}
