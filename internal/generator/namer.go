package generator

import "strconv"

// namer allocates unique names for nested type declarations. Names follow
// the pattern <root>Nested, <root>Nested0, <root>Nested1, ... and never
// collide with the root name or a previously issued name. Each emission
// call constructs its own namer, so repeated emission of the same schema
// yields byte-identical names.
type namer struct {
	root   string
	issued map[string]bool
	next   int
}

func newNamer(root string) *namer {
	return &namer{
		root:   root,
		issued: make(map[string]bool),
	}
}

// allocate returns the next free nested-type name.
func (n *namer) allocate() string {
	candidate := n.root + "Nested"
	for candidate == n.root || n.issued[candidate] {
		candidate = n.root + "Nested" + strconv.Itoa(n.next)
		n.next++
	}
	n.issued[candidate] = true
	return candidate
}
