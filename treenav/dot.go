package treenav

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[N comparable] struct {
	idTable map[N]int
	max     int
}

func newtable[N comparable]() nodeids[N] {
	return nodeids[N]{
		idTable: make(map[N]int),
		max:     1,
	}
}

func (ids nodeids[N]) find(node N) int {
	return ids.idTable[node]
}

func (ids *nodeids[N]) alloc(node N) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the tree below root in Graphviz DOT format (for debugging
// purposes). Nodes are labelled with label(node). Nodes in highlight, e.g.
// the nodes of a path, are filled with a color reflecting their depth.
func (nav *Navigator[N]) ToDot(w io.Writer, root N, label func(N) string, highlight ...N) error {
	hl := make(map[N]bool, len(highlight))
	for _, n := range highlight {
		hl[n] = true
	}
	ids := newtable[N]()
	var nodelist, edgelist strings.Builder
	err := nav.Walk(root, func(node N, depth int) error {
		ID := ids.alloc(node)
		styles := nodeDotStyles(nav.isLeaf(node), hl[node], depth)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, dotEscape(label(node)), styles)
		if depth > 0 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ids.find(nav.parentOf(node)), ID)
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	_, err = io.WriteString(w, "}\n")
	return err
}

func nodeDotStyles(isleaf bool, highlight bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if depth >= len(hexcolors) {
		depth = len(hexcolors) - 1
	}
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[depth])
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth])
	}
	return s
}

func dotEscape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`)
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
