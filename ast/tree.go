package ast

import (
	"fmt"
	"strings"
)

// NodeKind classifies an element node.
type NodeKind int

const (
	RootNode NodeKind = iota
	TextNode
	TagNode
	ValueNode
)

func (k NodeKind) String() string {
	switch k {
	case RootNode:
		return "Root"
	case TextNode:
		return "Text"
	case TagNode:
		return "Tag"
	case ValueNode:
		return "Value"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// NodeID addresses a node inside its Tree.
type NodeID int

// NoNode is the parent of the root.
const NoNode NodeID = -1

// Node is an element of the tree built from a token stream.
//
// Text nodes hold their unescaped content in Value and the span they were
// built from in Token. Value nodes hold a literal replacement and no token.
// Tag nodes hold their parts, the first of which is the tag name.
type Node struct {
	Kind     NodeKind
	Token    Token
	Parts    []TagPart
	Tag      Tag
	Value    string
	Parent   NodeID
	Children []NodeID
}

// Name returns the lower-cased tag name, or "" for non-tag nodes.
func (n *Node) Name() string {
	if n.Kind != TagNode || len(n.Parts) == 0 {
		return ""
	}
	return n.Parts[0].Lower()
}

// Tree is an arena of element nodes. Node 0 is the root.
type Tree struct {
	Source string
	Nodes  []Node
}

// NewTree returns a tree holding only a root node for src.
func NewTree(src string) *Tree {
	return &Tree{
		Source: src,
		Nodes:  []Node{{Kind: RootNode, Parent: NoNode}},
	}
}

// Root returns the id of the root node.
func (t *Tree) Root() NodeID { return 0 }

// Node returns the node with the given id. The pointer is only valid until
// the next call to Add.
func (t *Tree) Node(id NodeID) *Node {
	return &t.Nodes[id]
}

// Add appends n as the last child of parent and returns its id.
func (t *Tree) Add(parent NodeID, n Node) NodeID {
	id := NodeID(len(t.Nodes))
	n.Parent = parent
	n.Children = nil
	t.Nodes = append(t.Nodes, n)
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, id)
	return id
}

// Walk visits id and its descendants in document order. The walk descends
// into a node's children only if fn returns true for it.
func (t *Tree) Walk(id NodeID, fn func(id NodeID, depth int) bool) {
	type frame struct {
		id    NodeID
		depth int
	}
	stack := []frame{{id, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.id, f.depth) {
			continue
		}
		ch := t.Nodes[f.id].Children
		for i := len(ch) - 1; i >= 0; i-- {
			stack = append(stack, frame{ch[i], f.depth + 1})
		}
	}
}

// String renders the tree as an indented outline.
func (t *Tree) String() string {
	var b strings.Builder
	t.Walk(t.Root(), func(id NodeID, depth int) bool {
		n := t.Node(id)
		b.WriteString(strings.Repeat("  ", depth))
		switch n.Kind {
		case RootNode:
			b.WriteString("Root")
		case TextNode:
			fmt.Fprintf(&b, "TextNode('%s')", n.Value)
		case ValueNode:
			fmt.Fprintf(&b, "ValueNode('%s')", n.Value)
		case TagNode:
			b.WriteString("TagNode(")
			for i, p := range n.Parts {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "'%s'", p.Value)
			}
			b.WriteString(")")
		}
		b.WriteString("\n")
		return true
	})
	return b.String()
}
