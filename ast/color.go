package ast

import "github.com/pterm/pterm"

// PrintColor renders root as a colorized tree on stdout, grounded on
// npillmayer-gorgo/terex/terexlang/trepl/repl.go's
// pterm.NewTreeFromLeveledList + pterm.DefaultTree.WithRoot usage.
func PrintColor(root Node) {
	ll := leveledList(root, pterm.LeveledList{}, 0)
	tree := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(tree).Render()
}

func leveledList(node Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	if node == nil {
		return ll
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: node.label()})
	for _, child := range node.children() {
		ll = leveledList(child, ll, level+1)
	}
	return ll
}
