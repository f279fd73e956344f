package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rallyforge/benefits-engine/internal/calculation"
	"github.com/rallyforge/benefits-engine/internal/output"
)

// Prints the combined ratings grid, each cell combining its row and column
// ratings before rounding. Pass "csv" for machine-readable output.
func main() {
	grid := calculation.RatingsTable()

	if len(os.Args) > 1 && os.Args[1] == "csv" {
		header := "Rating"
		for c := range grid[0] {
			header += "," + strconv.Itoa((c+1)*10)
		}
		fmt.Println(header)
		for r, row := range grid {
			line := strconv.Itoa((r + 1) * 10)
			for _, v := range row {
				line += "," + strconv.Itoa(v)
			}
			fmt.Println(line)
		}
		return
	}

	headers := []string{"Rating"}
	for c := range grid[0] {
		headers = append(headers, strconv.Itoa((c+1)*10))
	}
	rows := make([][]string, 0, len(grid))
	for r, row := range grid {
		cells := []string{strconv.Itoa((r + 1) * 10)}
		for _, v := range row {
			cells = append(cells, strconv.Itoa(v))
		}
		rows = append(rows, cells)
	}
	fmt.Println(output.RenderTitle("VA COMBINED RATINGS TABLE"))
	fmt.Print(output.RenderTable(output.Table{Headers: headers, Rows: rows}))
}
