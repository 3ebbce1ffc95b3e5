package riskmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTable_Georeferencing(t *testing.T) {
	values := [][]float64{
		{1, 0},
		{0, 2.5},
	}
	loss := [][]float64{
		{10, 0},
		{0, 42.5},
	}

	cells, err := BuildTable(values, loss)
	require.NoError(t, err)
	require.Len(t, cells, 2, "zero and negative values are skipped")

	origin := cells[0]
	assert.Equal(t, 0, origin.Row)
	assert.Equal(t, 0, origin.Col)
	assert.Equal(t, 20.78740300044397, origin.TopLeftLat, "origin pins the northwest corner")
	assert.Equal(t, 97.25996186601748, origin.TopLeftLng)
	assert.InDelta(t, 20.748858, origin.BottomRightLat, 1e-6)
	assert.InDelta(t, 97.299148, origin.BottomRightLng, 1e-6)
	assert.InDelta(t, (origin.TopLeftLat+origin.BottomRightLat)/2, origin.CenterLat, 1e-12)
	assert.InDelta(t, (origin.TopLeftLng+origin.BottomRightLng)/2, origin.CenterLng, 1e-12)
	assert.Equal(t, 1.0, origin.Value)
	assert.Equal(t, 10.0, origin.Loss)

	next := cells[1]
	assert.Equal(t, 1, next.Row)
	assert.Equal(t, 1, next.Col)
	assert.Less(t, next.TopLeftLat, origin.TopLeftLat, "rows advance south")
	assert.Greater(t, next.TopLeftLng, origin.TopLeftLng, "columns advance east")
	assert.InDelta(t, origin.BottomRightLat, next.TopLeftLat, 1e-12, "cells tile without gaps")
	assert.InDelta(t, origin.BottomRightLng, next.TopLeftLng, 1e-12)
	assert.Equal(t, 2.5, next.Value)
	assert.Equal(t, 42.5, next.Loss)
}

func TestBuildTable_SkipsNonPositive(t *testing.T) {
	values := [][]float64{{0, -3, 0.0001}}
	loss := [][]float64{{1, 1, 1}}

	cells, err := BuildTable(values, loss)
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, 2, cells[0].Col)
}

func TestBuildTable_LossGridTooSmall(t *testing.T) {
	values := [][]float64{{1}, {1}}
	loss := [][]float64{{5}}

	_, err := BuildTable(values, loss)
	assert.ErrorContains(t, err, "loss grid has no entry for cell (1,0)")
}

func TestWriteCSV(t *testing.T) {
	cells := []Cell{
		{
			Row: 3, Col: 7,
			TopLeftLat: 20.5, TopLeftLng: 97.5,
			BottomRightLat: 20.46, BottomRightLng: 97.54,
			CenterLat: 20.48, CenterLng: 97.52,
			Value: 4, Loss: 1250.75,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, cells))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "row,col,tl-lat,tl-lng,br-lat,br-lng,c-lat,c-lng,value,loss", lines[0])
	assert.Equal(t, "3,7,20.5,97.5,20.46,97.54,20.48,97.52,4,1250.75", lines[1])
}
