package bintree

import (
	"fmt"
	"strconv"
	"strings"
)

// Transforms a tree to its level-order slot listing, as used for serialization.
//
// Every missing child of every present node is recorded as an absent slot (but nothing is recorded below an absent slot). Trailing absent slots are then dropped; interior ones are kept. An empty tree gives an empty listing.
func LevelOrder(t Tree) []Slot {
	if t.Root == nil {
		return []Slot{}
	}
	var out []Slot
	queue := []*Node{t.Root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil {
			out = append(out, Null)
			continue
		}
		out = append(out, V(n.Value))
		queue = append(queue, n.Left, n.Right)
	}
	end := len(out)
	for end > 0 && out[end-1].Absent {
		end--
	}
	return out[:end]
}

// Encodes a tree in the bracketed text form, eg "[1,2,3,null,5]". An empty tree is "[]".
func Serialize(t Tree) string {
	slots := LevelOrder(t)
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range slots {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Parses the bracketed text form in to a slot listing, without building a tree.
//
// Tokens are decimal int64 values or the literal "null", separated by commas. Whitespace around tokens is ignored. Returns an error wrapping ErrMalformedInput on any syntax problem.
func ParseSlots(raw string) ([]Slot, error) {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("%w: expected bracketed list, got %q", ErrMalformedInput, raw)
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return []Slot{}, nil
	}
	parts := strings.Split(body, ",")
	slots := make([]Slot, len(parts))
	for i, p := range parts {
		tok := strings.TrimSpace(p)
		switch tok {
		case "":
			return nil, fmt.Errorf("%w: empty token at position %d", ErrMalformedInput, i)
		case NullToken:
			slots[i] = Null
		default:
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad value %q at position %d: %w", ErrMalformedInput, tok, i, err)
			}
			slots[i] = V(v)
		}
	}
	return slots, nil
}

// Decodes the bracketed text form produced by Serialize back in to a tree.
//
// Besides syntax errors, rejects an absent root slot. Slots left over once every node has been given its children are ignored, the same as BuildFromLevelOrder. Never returns a partial tree.
func Deserialize(raw string) (Tree, error) {
	slots, err := ParseSlots(raw)
	if err != nil {
		return Tree{}, err
	}
	if len(slots) == 0 {
		return Tree{}, nil
	}
	if slots[0].Absent {
		return Tree{}, fmt.Errorf("%w: root slot is %s", ErrMalformedInput, NullToken)
	}
	return BuildFromLevelOrder(slots), nil
}
