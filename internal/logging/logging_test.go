package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", "text")
	require.NoError(t, err)
	require.Equal(t, logrus.InfoLevel, l.GetLevel())

	l.Debug("hidden")
	l.WithField("employee", "Jane Doe").Info("processing report")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `msg="processing report"`)
	require.Contains(t, out, `employee="Jane Doe"`)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug", "json")
	require.NoError(t, err)

	l.WithField("bytes", 1024).Debug("output verified")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "output verified", entry["msg"])
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, 1024.0, entry["bytes"])
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "text")
	require.Error(t, err)
}
