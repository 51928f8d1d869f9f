// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements an AVL tree keyed by 8-digit numeric identifiers,
// each carrying a display name.
//
// Keys are ordered by numeric value. Every mutating operation either completes
// with the tree balanced or leaves it untouched.
package index

import (
	"strconv"
)

// KeyLength is the number of digits in a well-formed key.
const KeyLength = 8

// Tree is an AVL tree of named records. The zero value is an empty tree.
// A Tree is not safe for concurrent use.
type Tree struct {
	root *Node
	size int
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{root: nil}
}

// ValidKey reports whether s is exactly KeyLength ASCII digits.
func ValidKey(s string) bool {
	if len(s) != KeyLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseKey(key string) (uint32, error) {
	id, err := strconv.ParseUint(key, 10, 32)
	if err != nil {
		return 0, ErrMalformedKey
	}
	return uint32(id), nil
}

// Root returns the root node, or nil for an empty tree.
func (tree *Tree) Root() *Node {
	return tree.root
}

// Len returns the number of records.
func (tree *Tree) Len() int {
	return tree.size
}

// Height returns the cached height of the root.
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Reset drops every record.
func (tree *Tree) Reset() {
	tree.root = nil
	tree.size = 0
}

func (tree *Tree) rotateLeft(node *Node) *Node {
	if node == nil || node.right == nil {
		return node
	}

	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

func (tree *Tree) rotateRight(node *Node) *Node {
	if node == nil || node.left == nil {
		return node
	}

	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

// Insert adds a record. It returns ErrDuplicate, leaving the tree unchanged,
// when key is already present.
func (tree *Tree) Insert(name, key string) error {
	id, err := parseKey(key)
	if err != nil {
		return err
	}
	root, inserted := tree.insertRecursive(tree.root, name, key, id)
	if !inserted {
		return ErrDuplicate
	}
	tree.root = root
	tree.size++
	return nil
}

func (tree *Tree) insertRecursive(node *Node, name, key string, id uint32) (*Node, bool) {
	if node == nil {
		return newNode(name, key, id), true
	}

	var inserted bool
	switch {
	case id < node.id:
		node.left, inserted = tree.insertRecursive(node.left, name, key, id)
	case id > node.id:
		node.right, inserted = tree.insertRecursive(node.right, name, key, id)
	default:
		return node, false
	}
	if !inserted {
		return node, false
	}

	node.updateHeight()

	balanceFactor := node.BalanceFactor()
	if balanceFactor > 1 {
		if id < node.left.id {
			return tree.rotateRight(node), true
		}
		// Left-Right case
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node), true
	} else if balanceFactor < -1 {
		if id > node.right.id {
			return tree.rotateLeft(node), true
		}
		// Right-Left case
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node), true
	}

	return node, true
}

// RemoveByKey deletes the record with the given key, or returns ErrNotFound.
func (tree *Tree) RemoveByKey(key string) error {
	id, err := parseKey(key)
	if err != nil {
		return ErrNotFound
	}
	root, removed := tree.deleteRecursive(tree.root, id)
	if !removed {
		return ErrNotFound
	}
	tree.root = root
	tree.size--
	return nil
}

// RemoveByRank deletes the record at 0-indexed position n of an inorder
// traversal.
func (tree *Tree) RemoveByRank(n int) error {
	if n < 0 || n >= tree.size {
		return ErrOutOfRange
	}
	target := tree.nodeAtRank(n)
	if target == nil {
		return ErrOutOfRange
	}
	root, removed := tree.deleteRecursive(tree.root, target.id)
	if !removed {
		return ErrOutOfRange
	}
	tree.root = root
	tree.size--
	return nil
}

// nodeAtRank walks the tree inorder, counting visited nodes, and returns the
// nth one.
func (tree *Tree) nodeAtRank(n int) *Node {
	count := 0
	var target *Node
	for node := range tree.inorderNodes() {
		if count == n {
			target = node
			break
		}
		count++
	}
	return target
}

func (tree *Tree) deleteRecursive(node *Node, id uint32) (*Node, bool) {
	if node == nil {
		return nil, false
	}

	var removed bool
	switch {
	case id < node.id:
		node.left, removed = tree.deleteRecursive(node.left, id)
	case id > node.id:
		node.right, removed = tree.deleteRecursive(node.right, id)
	default:
		if node.left == nil {
			return node.right, true
		}
		if node.right == nil {
			return node.left, true
		}
		// Two children: take over the successor's record, then drop the
		// successor node from the right subtree.
		successor := tree.findMin(node.right)
		node.key, node.id, node.name = successor.key, successor.id, successor.name
		node.right, _ = tree.deleteRecursive(node.right, successor.id)
		removed = true
	}
	if !removed {
		return node, false
	}

	node.updateHeight()
	return tree.rebalance(node), true
}

func (tree *Tree) findMin(node *Node) *Node {
	for node.left != nil {
		node = node.left
	}
	return node
}

// rebalance restores the AVL property at node after a deletion below it. The
// heavy child's balance factor picks single or double rotation.
func (tree *Tree) rebalance(node *Node) *Node {
	balanceFactor := node.BalanceFactor()

	// Left-heavy
	if balanceFactor > 1 {
		if node.left.BalanceFactor() >= 0 {
			return tree.rotateRight(node)
		}
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if node.right.BalanceFactor() <= 0 {
			return tree.rotateLeft(node)
		}
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}

	return node
}

// FindByKey returns the name stored under key.
func (tree *Tree) FindByKey(key string) (string, bool) {
	id, err := parseKey(key)
	if err != nil {
		return "", false
	}
	node := searchNode(tree.root, id)
	if node == nil {
		return "", false
	}
	return node.name, true
}

func searchNode(node *Node, id uint32) *Node {
	for node != nil {
		switch {
		case id < node.id:
			node = node.left
		case id > node.id:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// FindByName returns the keys of every record named name, in inorder.
// Names are not the sort key, so every node is visited.
func (tree *Tree) FindByName(name string) []string {
	var keys []string
	for node := range tree.inorderNodes() {
		if node.name == name {
			keys = append(keys, node.key)
		}
	}
	return keys
}

// LevelCount returns the number of levels in the tree, counted breadth first.
func (tree *Tree) LevelCount() int {
	if tree.root == nil {
		return 0
	}

	levels := 0
	frontier := []*Node{tree.root}
	for len(frontier) > 0 {
		next := make([]*Node, 0, 2*len(frontier))
		for _, node := range frontier {
			if node.left != nil {
				next = append(next, node.left)
			}
			if node.right != nil {
				next = append(next, node.right)
			}
		}
		frontier = next
		levels++
	}
	return levels
}
