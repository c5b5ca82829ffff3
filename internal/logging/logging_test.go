package logging

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, hclog.Debug, ParseLevel("debug"))
	assert.Equal(t, hclog.Warn, ParseLevel(" WARN "))
	assert.Equal(t, hclog.Info, ParseLevel(""))
	assert.Equal(t, hclog.Info, ParseLevel("loud"))
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "warn", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "minuteclock")
	assert.Contains(t, buf.String(), "key=value")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Name: "test", JSON: true, Output: &buf})

	logger.Named("storage").Info("loaded")

	assert.Contains(t, buf.String(), `"@module":"test.storage"`)
	assert.Contains(t, buf.String(), `"@message":"loaded"`)
}
