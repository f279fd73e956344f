package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.June, d.Month())

	d, err = ParseDate("2024-06-01T12:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 12, d.Hour())

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDate("06/01/2024")
	assert.Error(t, err)
}

func TestFlexibleDate_JSON(t *testing.T) {
	var payload struct {
		When FlexibleDate `json:"when"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"when":"1999-12-31"}`), &payload))
	assert.Equal(t, "1999-12-31", payload.When.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":"1999-12-31"}`, string(out))

	var zero struct {
		When FlexibleDate `json:"when"`
	}
	out, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":null}`, string(out))
}

func TestFlexibleDate_YAML(t *testing.T) {
	var payload struct {
		When FlexibleDate `yaml:"when"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("when: 2001-09-11\n"), &payload))
	assert.Equal(t, "2001-09-11", payload.When.String())
}
