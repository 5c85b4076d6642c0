package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportsPlaceholderBounds(t *testing.T) {
	report, err := build(context.Background(), "", "gold")
	require.NoError(t, err)
	require.Len(t, report, 1)

	gold := report[0]
	assert.Equal(t, "coin", gold.Kind)
	assert.Equal(t, [2]float64{24, 24}, gold.Collider)
	require.Len(t, gold.Statuses, 1)
	assert.Equal(t, "idle", gold.Statuses[0].Status)
	assert.Equal(t, []string{"4,8 24x24", "4,8 24x24", "4,8 24x24", "4,8 24x24"}, gold.Statuses[0].Frames)
}

func TestWriteFormats(t *testing.T) {
	report, err := build(context.Background(), "", "gold")
	require.NoError(t, err)

	var table bytes.Buffer
	require.NoError(t, write(&table, report, "table"))
	assert.Contains(t, table.String(), "ARCHETYPE")
	assert.Contains(t, table.String(), "24x24")

	var out bytes.Buffer
	require.NoError(t, write(&out, report, "yaml"))
	assert.Contains(t, out.String(), "name: gold")

	assert.Error(t, write(&out, report, "xml"))
}
