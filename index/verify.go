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

import "fmt"

// IsBalanced reports whether every node under n satisfies the AVL property.
// Heights are recomputed from structure, not read from the cache.
func IsBalanced(n *Node) bool {
	_, ok := balancedHeight(n)
	return ok
}

func balancedHeight(n *Node) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := balancedHeight(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(n.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

// Validate checks ordering, balance, cached heights and the record count,
// returning an error wrapping ErrCorrupt for the first violation found.
func (tree *Tree) Validate() error {
	count, _, err := validateSubtree(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.size {
		return fmt.Errorf("%w: size is %d but %d nodes are reachable", ErrCorrupt, tree.size, count)
	}
	return nil
}

// validateSubtree returns the node count and structural height of n. low and
// high are exclusive bounds inherited from ancestors.
func validateSubtree(n *Node, low, high *uint32) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}
	if id, err := parseKey(n.key); err != nil || id != n.id {
		return 0, 0, fmt.Errorf("%w: key %q does not match id %d", ErrCorrupt, n.key, n.id)
	}
	if low != nil && n.id <= *low {
		return 0, 0, fmt.Errorf("%w: key %s not above ancestor bound %d", ErrCorrupt, n.key, *low)
	}
	if high != nil && n.id >= *high {
		return 0, 0, fmt.Errorf("%w: key %s not below ancestor bound %d", ErrCorrupt, n.key, *high)
	}

	lc, lh, err := validateSubtree(n.left, low, &n.id)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := validateSubtree(n.right, &n.id, high)
	if err != nil {
		return 0, 0, err
	}

	height := max(lh, rh) + 1
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: key %s caches height %d, actual %d", ErrCorrupt, n.key, n.height, height)
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, 0, fmt.Errorf("%w: key %s has balance factor %d", ErrCorrupt, n.key, lh-rh)
	}
	return lc + rc + 1, height, nil
}
