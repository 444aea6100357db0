// Package render turns a rug grid into text, truecolor ANSI and HTML.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/Conceptual-Machines/rug-loom/internal/rug"
)

// Run is a horizontal stretch of cells that share a color role
type Run struct {
	Text string
	Role rug.ColorRole
}

// Runs groups every row of grid into same-role runs
func Runs(grid rug.Grid) [][]Run {
	rows := make([][]Run, len(grid))
	for y, row := range grid {
		var runs []Run
		var b strings.Builder
		for x, cell := range row {
			if x > 0 && cell.Role != row[x-1].Role {
				runs = append(runs, Run{Text: b.String(), Role: row[x-1].Role})
				b.Reset()
			}
			b.WriteString(cell.Char)
		}
		if len(row) > 0 {
			runs = append(runs, Run{Text: b.String(), Role: row[len(row)-1].Role})
		}
		rows[y] = runs
	}
	return rows
}

// Text is the plain export form of grid
func Text(grid rug.Grid) string {
	return grid.Text()
}

// ExportFilename names a downloaded rug after the moment it was woven
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("digital-textile-%d.txt", now.UnixMilli())
}
