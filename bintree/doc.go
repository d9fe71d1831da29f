/*
Binary tree algorithms over a simple owned-pointer tree of int64 values.

## Terminology

node: a value plus optional left and right children. children are owned by exactly one parent; nodes are never shared between trees

tree: a handle on an optional root node. the zero Tree is the empty tree

slot: one position in a level-order listing. a slot is either a value, or the "absent" marker for a missing child

BST: a tree where every value in a node's left sub-tree is less than the node's value, and every value in the right sub-tree is greater or equal. Insert puts duplicates to the right

balanced: for every node, the heights of the two sub-trees differ by at most one

## Tricky Bits

Prune is the only operation which mutates an existing tree. Child pointers are overwritten with the pruned sub-trees, and the root may change or go away entirely: always use the returned root, never the old one.

Rebalance and Deserialize allocate entirely new nodes and never touch their input.

LowestCommonAncestor assumes both values are present. Use Tree.CommonAncestor when that is not already known.

## Hacking

Trees built by repeated Insert of sorted values are linear chains, so nothing here recurses proportionally to tree height: traversals use explicit stacks and queues. The one exception is the balanced rebuild, which only recurses log2(n) deep.
*/
package bintree
