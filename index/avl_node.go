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

// Node is one indexed record. A node owns its children exclusively; there are
// no parent pointers.
type Node struct {
	key    string // 8-digit identifier as supplied
	id     uint32 // numeric value of key, used for ordering
	name   string
	height int
	left   *Node
	right  *Node
}

func newNode(name, key string, id uint32) *Node {
	return &Node{key: key, id: id, name: name, height: 1}
}

// Key returns the 8-digit identifier as it was inserted.
func (n *Node) Key() string { return n.key }

// Name returns the display name stored with the key.
func (n *Node) Name() string { return n.name }

// Left returns the subtree of smaller keys.
func (n *Node) Left() *Node { return n.left }

// Right returns the subtree of larger keys.
func (n *Node) Right() *Node { return n.right }

// Height returns the cached height of the subtree rooted at n. A nil node has
// height 0.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// BalanceFactor is Height(left) - Height(right).
func (n *Node) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

func (n *Node) updateHeight() {
	n.height = max(n.left.Height(), n.right.Height()) + 1
}
