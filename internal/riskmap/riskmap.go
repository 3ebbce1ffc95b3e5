// Package riskmap converts the landslide risk-value grid and its loss
// companion into a table of georeferenced cells over Thailand.
package riskmap

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Grid georeferencing constants, calibrated against the source raster. The
// diff terms compensate for the raster's registration offset.
const (
	initialLat = 20.78740300044397
	diffLat    = initialLat - 21.14179252214518
	maxLat     = 4.99131981531108 + diffLat

	initialLng = 97.25996186601748
	diffLng    = initialLng - 96.19873159784592
	maxLng     = 107.36690970775354 + diffLng

	xCells = 285
	yCells = 419
)

// Cell is one grid cell carrying its top-left and bottom-right corners,
// its center, the risk value, and the expected loss.
type Cell struct {
	Row, Col               int
	TopLeftLat, TopLeftLng float64
	BottomRightLat         float64
	BottomRightLng         float64
	CenterLat, CenterLng   float64
	Value, Loss            float64
}

func cellAt(row, col int) Cell {
	latIncrement := (maxLat - initialLat) / yCells
	lngIncrement := (maxLng - initialLng) / xCells

	lat1 := initialLat + float64(row)*latIncrement
	lng1 := initialLng + float64(col)*lngIncrement
	lat2 := lat1 + latIncrement
	lng2 := lng1 + lngIncrement

	return Cell{
		Row:            row,
		Col:            col,
		TopLeftLat:     lat1,
		TopLeftLng:     lng1,
		BottomRightLat: lat2,
		BottomRightLng: lng2,
		CenterLat:      (lat1 + lat2) / 2,
		CenterLng:      (lng1 + lng2) / 2,
	}
}

// BuildTable walks the risk grid row-major and emits one Cell per entry
// with a positive risk value. The loss grid must cover every emitted cell.
func BuildTable(values, loss [][]float64) ([]Cell, error) {
	var cells []Cell
	for row, cols := range values {
		for col, value := range cols {
			if value <= 0 {
				continue
			}
			if row >= len(loss) || col >= len(loss[row]) {
				return nil, fmt.Errorf("loss grid has no entry for cell (%d,%d)", row, col)
			}

			cell := cellAt(row, col)
			cell.Value = value
			cell.Loss = loss[row][col]
			cells = append(cells, cell)
		}
	}
	return cells, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes the cell table with the header the map viewer expects.
func WriteCSV(w io.Writer, cells []Cell) error {
	cw := csv.NewWriter(w)

	header := []string{"row", "col", "tl-lat", "tl-lng", "br-lat", "br-lng", "c-lat", "c-lng", "value", "loss"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, c := range cells {
		record := []string{
			strconv.Itoa(c.Row),
			strconv.Itoa(c.Col),
			formatFloat(c.TopLeftLat),
			formatFloat(c.TopLeftLng),
			formatFloat(c.BottomRightLat),
			formatFloat(c.BottomRightLng),
			formatFloat(c.CenterLat),
			formatFloat(c.CenterLng),
			formatFloat(c.Value),
			formatFloat(c.Loss),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record (%d,%d): %w", c.Row, c.Col, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
