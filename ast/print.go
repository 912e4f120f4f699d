package ast

import (
	"fmt"
	"io"
)

// Print writes root as an indented tree to w, grounded on the
// teacher's driver.PrintTree box-drawing algorithm.
func Print(w io.Writer, root Node) {
	printTree(w, root, "", "")
}

func printTree(w io.Writer, node Node, ruledLine, childPrefix string) {
	if node == nil {
		return
	}
	fmt.Fprintf(w, "%v%v\n", ruledLine, node.label())

	children := node.children()
	num := len(children)
	for i, child := range children {
		var line string
		if num > 1 && i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}
		var prefix string
		if i >= num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}
		printTree(w, child, childPrefix+line, childPrefix+prefix)
	}
}
