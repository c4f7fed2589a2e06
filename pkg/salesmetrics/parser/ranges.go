package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range string like A1:D10 or 'Sales'!$A$1:$D$10 to a CellRange.
// Any sheet prefix is ignored.
func ParseRange(rangeStr string) (*models.CellRange, error) {
	ref := strings.TrimSpace(rangeStr)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	// Remove $ signs
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid cell range %q", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid cell range %q: %w", rangeStr, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid cell range %q: %w", rangeStr, err)
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.CellRange{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// clipGrid blanks every cell outside area, keeping coordinates intact.
func clipGrid(grid [][]string, area models.CellRange) [][]string {
	out := make([][]string, len(grid))
	for rowIdx, row := range grid {
		clipped := make([]string, len(row))
		for colIdx, cell := range row {
			if area.Contains(rowIdx+1, colIdx+1) {
				clipped[colIdx] = cell
			}
		}
		out[rowIdx] = clipped
	}
	return out
}
