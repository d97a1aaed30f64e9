package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/snarkmr/space"
)

// nodeids allocates Graphviz node IDs.
type nodeids struct {
	max int
}

func (ids *nodeids) alloc() int {
	ids.max++
	return ids.max
}

// plan2Dot outputs the partition of sp in Graphviz DOT format: the space on
// top, one node per dimension below it, and the blocks of each dimension as
// leaves labeled with size and offset.
func plan2Dot(sp space.Space, w io.Writer) error {
	var nodes, edges strings.Builder
	ids := &nodeids{}
	root := ids.alloc()
	fmt.Fprintf(&nodes, "\"%d\" [label=\"%v\"%s];\n", root, sp, nodeDotStyles(false, 0))
	for d := range sp.N() {
		proj := sp.Projection(d)
		dim := ids.alloc()
		fmt.Fprintf(&nodes, "\"%d\" [label=\"dim %d\\n%d blocks\"%s];\n", dim, d,
			proj.NumBlocks(), nodeDotStyles(false, 1))
		fmt.Fprintf(&edges, "\"%d\" -> \"%d\";\n", root, dim)
		bs := proj.BlockSize()[0]
		for blk := range proj.NumBlocks() {
			id := ids.alloc()
			size, offset := proj.IndexSize(blk)[0], proj.IndexOffset(blk)[0]
			fmt.Fprintf(&nodes, "\"%d\" [label=\"%d @%d\"%s];\n", id, size, offset,
				blockDotStyles(size < bs))
			fmt.Fprintf(&edges, "\"%d\" -> \"%d\";\n", dim, id)
		}
	}
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, nodes.String()+edges.String()+"}\n"); err != nil {
		return err
	}
	return nil
}

func nodeDotStyles(isleaf bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	return s + fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
}

// blockDotStyles highlights blocks which are one element short.
func blockDotStyles(short bool) string {
	if short {
		return ",style=filled,shape=box,fillcolor=\"" + hexhlcolors[2] + "\""
	}
	return nodeDotStyles(true, 2)
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF"}
