package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/snarkmr/space"
	"golang.org/x/term"
)

// row describes a single block of a partition.
type row struct {
	block  []uint64
	offset []uint64
	size   []uint64
	count  uint64 // number of indices in the block
}

func planRows(sp space.Space) []row {
	rows := make([]row, 0, sp.NumBlocks())
	for blk := range sp.Blocks() {
		r := row{
			block:  blk,
			offset: sp.IndexOffset(blk...),
			size:   sp.IndexSize(blk...),
			count:  1,
		}
		for _, s := range r.size {
			r.count *= s
		}
		rows = append(rows, r)
	}
	return rows
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

var (
	headColor  = color.New(color.Bold)
	shortColor = color.New(color.FgBlue)
	fullColor  = color.New(color.FgGreen)
)

// printTable writes one line per block. Blocks one element short in some
// dimension are shown in a different color than full blocks. A bar, scaled
// to the remaining line width, visualizes the number of indices per block.
func printTable(w io.Writer, sp space.Space, rows []row, width int) {
	headColor.Fprintf(w, "%v: %d blocks of size %s\n", sp, len(rows), join(sp.BlockSize()))
	var largest uint64
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fmt.Sprintf("%-12s offset %-14s size %-12s",
			join(r.block), join(r.offset), join(r.size))
		largest = max(largest, r.count)
	}
	barWidth := 10
	if len(lines) > 0 {
		barWidth = max(width-len(lines[0])-2, barWidth)
	}
	bs := sp.BlockSize()
	for i, r := range rows {
		c := fullColor
		for d, s := range r.size {
			if s < bs[d] {
				c = shortColor
				break
			}
		}
		n := 1
		if largest > 0 {
			n = max(1, int(r.count*uint64(barWidth)/largest))
		}
		c.Fprintf(w, "%s  %s\n", lines[i], strings.Repeat("#", n))
	}
}

func join(vs []uint64) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, ",")
}
