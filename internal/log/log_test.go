package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	var testCases = []struct {
		input  string
		expect slog.Level
		hasErr bool
	}{
		{input: "", expect: slog.LevelInfo},
		{input: "debug", expect: slog.LevelDebug},
		{input: "Warning", expect: slog.LevelWarn},
		{input: "ERROR", expect: slog.LevelError},
		{input: "loud", hasErr: true},
	}
	for _, testCase := range testCases {
		actual, err := ParseLevel(testCase.input)
		if testCase.hasErr {
			assert.Error(t, err, testCase.input)
			continue
		}
		require.NoError(t, err, testCase.input)
		assert.Equal(t, testCase.expect, actual, testCase.input)
	}
}

func TestNew_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, slog.LevelDebug, "json")
	logger.Debug("probe", "section", "login")
	assert.Contains(t, buf.String(), `"msg":"probe"`)
	assert.Contains(t, buf.String(), `"section":"login"`)
}
