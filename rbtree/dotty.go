package rbtree

import (
	"fmt"
	"io"
)

type nodeids[V any] struct {
	idTable map[*Node[V]]int
	max     int
}

func newtable[V any]() nodeids[V] {
	return nodeids[V]{
		idTable: make(map[*Node[V]]int),
		max:     1,
	}
}

func (ids nodeids[V]) find(node *Node[V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[V]) alloc(node *Node[V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). label renders a node's value; if it is nil,
// values are rendered with %v.
func ToDot[K, V any](t *Tree[K, V], w io.Writer, label func(V) string) {
	if label == nil {
		label = func(v V) string { return fmt.Sprintf("%v", v) }
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[V]()
	nodelist, edgelist := "", ""
	nilid := 0
	var walk func(n *Node[V]) int
	walk = func(n *Node[V]) int {
		ID := ids.alloc(n)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, dotEscape(label(n.value)), nodeDotStyles(n.color))
		for _, child := range [2]*Node[V]{n.left, n.right} {
			if child == nil {
				nilid++
				nodelist += fmt.Sprintf("\"nil%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"nil%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, walk(child))
		}
		return ID
	}
	if root := t.hdr.root(); root != nil {
		walk(root)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,fillcolor=black,shape=box,fixedsize=true,width=.2,height=.2]"
}

func nodeDotStyles(c Color) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if c == Red {
		s += ",color=\"#aa0000\",fillcolor=\"#dd2222\""
	} else {
		s += ",color=black,fillcolor=\"#222222\""
	}
	return s
}

func dotEscape(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
