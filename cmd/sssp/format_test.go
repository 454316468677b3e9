package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	ID    int64   `json:"id" yaml:"id"`
	Label string  `json:"label" yaml:"label"`
	Nodes []int64 `json:"nodes" yaml:"nodes"`
}

func TestWriteOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, formatJSON, sample{ID: 3, Label: "x", Nodes: []int64{0, 1}}))
	require.Contains(t, buf.String(), "\n  \"label\": \"x\"")

	var got sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, []int64{0, 1}, got.Nodes)
}

func TestWriteOutput_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, formatYAML, sample{ID: 3, Label: "x", Nodes: []int64{0, 1}}))
	require.Contains(t, buf.String(), "label: x")

	var got sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, int64(3), got.ID)
	require.Equal(t, []int64{0, 1}, got.Nodes)
}

func TestWriteOutput_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, writeOutput(&buf, "table", sample{}), errUnknownFormat)
	require.Zero(t, buf.Len())
}
