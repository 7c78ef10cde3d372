// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var events []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var ev map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &ev), line)
		events = append(events, ev)
	}
	return events
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.InfoLevel)

	l.Debug("lesson", "hidden", nil)
	l.Info("lesson", "normalized", map[string]interface{}{"file": "story.txt", "syllables": 3})
	l.Warning("config", "home directory missing", nil)
	l.Error("convert", errors.New("boom"), map[string]interface{}{"file": "a.txt"})

	events := decodeLines(t, &buf)
	require.Len(t, events, 3)

	assert.Equal(t, "info", events[0]["level"])
	assert.Equal(t, "lesson", events[0]["component"])
	assert.Equal(t, "normalized", events[0]["message"])
	assert.Equal(t, "story.txt", events[0]["file"])
	assert.EqualValues(t, 3, events[0]["syllables"])
	assert.Contains(t, events[0], "time")

	assert.Equal(t, "warn", events[1]["level"])
	assert.Equal(t, "config", events[1]["component"])

	assert.Equal(t, "error", events[2]["level"])
	assert.Equal(t, "boom", events[2]["error"])
	assert.Equal(t, "operation failed", events[2]["message"])
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsole(&buf, zerolog.DebugLevel)
	l.Debug("scan", "found syllable", map[string]interface{}{"text": "hao3"})
	out := buf.String()
	assert.Contains(t, out, "found syllable")
	assert.Contains(t, out, "hao3")
	assert.NotContains(t, out, "\x1b[", "colors written to a buffer")
}

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"INFO":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	} {
		got, err := ParseLevel(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Info("x", "y", nil) })
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f), "regular file")
	assert.False(t, isTerminal(&bytes.Buffer{}), "not a file")
}
