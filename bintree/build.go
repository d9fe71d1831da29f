package bintree

import (
	"strconv"
)

// Literal used for an absent slot in the serialized form.
const NullToken = "null"

// One position in a level-order listing: either a value, or a marker for a missing child.
type Slot struct {
	Value  int64
	Absent bool
}

// Marker slot for a missing child.
var Null = Slot{Absent: true}

// Slot holding a value.
func V(v int64) Slot {
	return Slot{Value: v}
}

// Convenience for building a listing out of values alone (no absent slots).
func Values(vals ...int64) []Slot {
	out := make([]Slot, len(vals))
	for i, v := range vals {
		out[i] = V(v)
	}
	return out
}

func (s Slot) String() string {
	if s.Absent {
		return NullToken
	}
	return strconv.FormatInt(s.Value, 10)
}

// Constructs a tree from a level-order (breadth-first, left-to-right) listing.
//
// The first slot is the root. Each node then consumes the next two slots as its left and right children; an absent slot still uses up its position. Construction stops when either the slots or the pending nodes run out, so trailing absent slots may be omitted. An empty listing, or one starting with an absent slot, gives an empty tree.
func BuildFromLevelOrder(slots []Slot) Tree {
	if len(slots) == 0 || slots[0].Absent {
		return Tree{}
	}
	root := NewNode(slots[0].Value)
	queue := []*Node{root}
	i := 1
	for len(queue) > 0 && i < len(slots) {
		n := queue[0]
		queue = queue[1:]

		if !slots[i].Absent {
			n.Left = NewNode(slots[i].Value)
			queue = append(queue, n.Left)
		}
		i++

		if i < len(slots) {
			if !slots[i].Absent {
				n.Right = NewNode(slots[i].Value)
				queue = append(queue, n.Right)
			}
			i++
		}
	}
	return Tree{Root: root}
}
