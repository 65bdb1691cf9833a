package clicommon

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/ashrey-kulkarni/tentsolve/tentboard"
)

var (
	treeColor  = color.New(color.FgGreen, color.Bold)
	tentColor  = color.New(color.FgYellow, color.Bold)
	grassColor = color.New(color.FgWhite, color.Faint)
)

// RenderGrid prints grid to w with colorized cells: trees green, tents
// yellow, grass dim, plus the row/column targets tentboard's own
// Grid.String prints in plain text.
func RenderGrid(w io.Writer, grid *tentboard.Grid) {
	size := grid.Size()
	puzzle := grid.Puzzle()

	fmt.Fprint(w, "   ")
	for c := 0; c < size; c++ {
		fmt.Fprintf(w, "%2d ", puzzle.ColTarget[c])
	}
	fmt.Fprintln(w)

	for r := 0; r < size; r++ {
		fmt.Fprintf(w, "%2d ", puzzle.RowTarget[r])
		for c := 0; c < size; c++ {
			fmt.Fprintf(w, " %s ", glyph(grid.At(r, c)))
		}
		fmt.Fprintln(w)
	}
}

func glyph(cell tentboard.CellState) string {
	switch cell {
	case tentboard.Tree:
		return treeColor.Sprint(cell.String())
	case tentboard.Tent:
		return tentColor.Sprint(cell.String())
	case tentboard.Grass:
		return grassColor.Sprint(cell.String())
	default:
		return cell.String()
	}
}

// FormatMove renders a single move as "(row,col) = VALUE" for play's
// one-line-per-step output.
func FormatMove(pos tentboard.Position, value tentboard.CellState) string {
	return "(" + strconv.Itoa(pos.Row) + "," + strconv.Itoa(pos.Col) + ") = " + value.String()
}
