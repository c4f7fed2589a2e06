package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

// BuildTable turns a grid of cell text into a RawTable.
// The header is the first row of the non-empty bounding box; blank headers
// become "Unnamed: N" and repeated headers get ".1", ".2" suffixes.
func BuildTable(grid [][]string) (*models.RawTable, error) {
	minRow, maxRow, minCol, maxCol := findDataBounds(grid)
	if minRow < 0 {
		return nil, ErrEmptySheet
	}

	columns := headerNames(grid[minRow], minCol, maxCol)
	table := &models.RawTable{Columns: columns}

	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		if countNonEmptyCells(grid, rowIdx, rowIdx, minCol, maxCol) == 0 {
			continue
		}
		src := grid[rowIdx]
		row := make(models.Row, len(columns))
		for i, name := range columns {
			colIdx := minCol + i
			if colIdx >= len(src) || strings.TrimSpace(src[colIdx]) == "" {
				row[name] = nil
				continue
			}
			row[name] = parseValue(src[colIdx])
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func headerNames(header []string, minCol, maxCol int) []string {
	seen := make(map[string]int)
	names := make([]string, 0, maxCol-minCol+1)
	for colIdx := minCol; colIdx <= maxCol; colIdx++ {
		name := ""
		if colIdx < len(header) {
			name = header[colIdx]
		}
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", colIdx-minCol)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		}
		seen[name] = 0
		names = append(names, name)
	}
	return names
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if strings.TrimSpace(row[colIdx]) != "" {
				count++
			}
		}
	}
	return count
}
