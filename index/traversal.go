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

package index

import "iter"

type walkFunc func(node *Node, yield func(*Node) bool) bool

func walkInorder(node *Node, yield func(*Node) bool) bool {
	if node == nil {
		return true
	}
	return walkInorder(node.left, yield) && yield(node) && walkInorder(node.right, yield)
}

func walkPreorder(node *Node, yield func(*Node) bool) bool {
	if node == nil {
		return true
	}
	return yield(node) && walkPreorder(node.left, yield) && walkPreorder(node.right, yield)
}

func walkPostorder(node *Node, yield func(*Node) bool) bool {
	if node == nil {
		return true
	}
	return walkPostorder(node.left, yield) && walkPostorder(node.right, yield) && yield(node)
}

// names adapts a walk into a sequence of names. The root is read when the
// sequence is ranged over, so one sequence can be reused across mutations.
func (tree *Tree) names(walk walkFunc) iter.Seq[string] {
	return func(yield func(string) bool) {
		walk(tree.root, func(n *Node) bool { return yield(n.name) })
	}
}

func (tree *Tree) inorderNodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walkInorder(tree.root, yield)
	}
}

// Inorder yields names in ascending key order.
func (tree *Tree) Inorder() iter.Seq[string] {
	return tree.names(walkInorder)
}

// Preorder yields names node first, then left subtree, then right subtree.
func (tree *Tree) Preorder() iter.Seq[string] {
	return tree.names(walkPreorder)
}

// Postorder yields names left subtree, right subtree, then node.
func (tree *Tree) Postorder() iter.Seq[string] {
	return tree.names(walkPostorder)
}

// Keys yields (key, name) pairs in ascending key order.
func (tree *Tree) Keys() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		walkInorder(tree.root, func(n *Node) bool { return yield(n.key, n.name) })
	}
}
