package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"trace", logrus.TraceLevel},
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"loud", logrus.InfoLevel},
	}

	for _, tc := range tests {
		log := NewLogger(tc.input, "json")
		assert.Equal(t, tc.expected, log.GetLevel(), "Mismatch for level: %q", tc.input)
	}
}

func TestNewLoggerTo_JSON(t *testing.T) {
	buf := new(bytes.Buffer)
	log := NewLoggerTo(buf, "info", "")

	log.WithField("directory", "/tmp/plot").Info("farm resolved")
	log.Debug("hidden")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "farm resolved", line["msg"])
	assert.Equal(t, "/tmp/plot", line["directory"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLoggerTo_Text(t *testing.T) {
	buf := new(bytes.Buffer)
	log := NewLoggerTo(buf, "debug", "text")

	log.Debug("visible")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "msg=visible")
}
