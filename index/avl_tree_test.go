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

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"testing"
)

type record struct {
	Name string
	Key  string
}

type AVLTestCase struct {
	Name             string
	InitialRecords   []record
	KeysToDelete     []string
	RanksToDelete    []int
	ExpectedInorder  []string
	ExpectedPreorder []string
}

func buildTree(t *testing.T, records []record) *Tree {
	t.Helper()
	tree := NewTree()
	for _, r := range records {
		if err := tree.Insert(r.Name, r.Key); err != nil {
			t.Fatalf("Insert(%q, %q) returned %v", r.Name, r.Key, err)
		}
	}
	return tree
}

func sequentialRecords(n int) []record {
	records := make([]record, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, record{Name: fmt.Sprintf("N%d", i), Key: fmt.Sprintf("%08d", 10000000+i)})
	}
	return records
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name: "Single left rotation",
			InitialRecords: []record{
				{"Alice", "10000001"}, {"Bob", "10000002"}, {"Carl", "10000003"},
			},
			ExpectedInorder:  []string{"Alice", "Bob", "Carl"},
			ExpectedPreorder: []string{"Bob", "Alice", "Carl"},
		},
		{
			Name: "Single right rotation",
			InitialRecords: []record{
				{"Carl", "10000003"}, {"Bob", "10000002"}, {"Alice", "10000001"},
			},
			ExpectedInorder:  []string{"Alice", "Bob", "Carl"},
			ExpectedPreorder: []string{"Bob", "Alice", "Carl"},
		},
		{
			Name: "Left-Right rotation",
			InitialRecords: []record{
				{"Carl", "10000003"}, {"Alice", "10000001"}, {"Bob", "10000002"},
			},
			ExpectedInorder:  []string{"Alice", "Bob", "Carl"},
			ExpectedPreorder: []string{"Bob", "Alice", "Carl"},
		},
		{
			Name: "Right-Left rotation",
			InitialRecords: []record{
				{"Alice", "10000001"}, {"Carl", "10000003"}, {"Bob", "10000002"},
			},
			ExpectedInorder:  []string{"Alice", "Bob", "Carl"},
			ExpectedPreorder: []string{"Bob", "Alice", "Carl"},
		},
		{
			Name:             "Ascending inserts",
			InitialRecords:   sequentialRecords(7),
			ExpectedInorder:  []string{"N1", "N2", "N3", "N4", "N5", "N6", "N7"},
			ExpectedPreorder: []string{"N4", "N2", "N1", "N3", "N6", "N5", "N7"},
		},
		{
			Name: "Delete node with two children",
			InitialRecords: []record{
				{"Bob", "10000002"}, {"Alice", "10000001"}, {"Carl", "10000003"},
			},
			KeysToDelete:     []string{"10000002"},
			ExpectedInorder:  []string{"Alice", "Carl"},
			ExpectedPreorder: []string{"Carl", "Alice"},
		},
		{
			Name: "Deletion with rebalancing",
			InitialRecords: []record{
				{"Carl", "10000003"}, {"Bob", "10000002"}, {"Dan", "10000004"}, {"Alice", "10000001"},
			},
			KeysToDelete:     []string{"10000004"},
			ExpectedInorder:  []string{"Alice", "Bob", "Carl"},
			ExpectedPreorder: []string{"Bob", "Alice", "Carl"},
		},
		{
			Name:             "Remove smallest by rank",
			InitialRecords:   sequentialRecords(7),
			RanksToDelete:    []int{0},
			ExpectedInorder:  []string{"N2", "N3", "N4", "N5", "N6", "N7"},
			ExpectedPreorder: []string{"N4", "N2", "N3", "N6", "N5", "N7"},
		},
		{
			Name:             "Remove root by rank",
			InitialRecords:   sequentialRecords(7),
			RanksToDelete:    []int{3},
			ExpectedInorder:  []string{"N1", "N2", "N3", "N5", "N6", "N7"},
			ExpectedPreorder: []string{"N5", "N2", "N1", "N3", "N6", "N7"},
		},
		{
			Name:             "Mixed removals",
			InitialRecords:   sequentialRecords(7),
			KeysToDelete:     []string{"10000006"},
			RanksToDelete:    []int{5, 0},
			ExpectedInorder:  []string{"N2", "N3", "N4", "N5"},
			ExpectedPreorder: []string{"N4", "N2", "N3", "N5"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := buildTree(t, tc.InitialRecords)
			for _, key := range tc.KeysToDelete {
				if err := tree.RemoveByKey(key); err != nil {
					t.Fatalf("RemoveByKey(%q) returned %v", key, err)
				}
			}
			for _, rank := range tc.RanksToDelete {
				if err := tree.RemoveByRank(rank); err != nil {
					t.Fatalf("RemoveByRank(%d) returned %v", rank, err)
				}
			}
			verifyOrder(t, "inorder", slices.Collect(tree.Inorder()), tc.ExpectedInorder)
			verifyOrder(t, "preorder", slices.Collect(tree.Preorder()), tc.ExpectedPreorder)
			if err := tree.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func verifyOrder(t *testing.T, label string, actual, expected []string) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Errorf("%s length mismatch. Expected %v, got %v", label, expected, actual)
		return
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("%s mismatch at index %d. Expected '%s', got '%s'", label, i, expected[i], actual[i])
			return
		}
	}
}

func TestLevelCount(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{7, 3},
		{8, 4},
		{15, 4},
	}

	for _, tc := range tests {
		tree := buildTree(t, sequentialRecords(tc.n))
		if got := tree.LevelCount(); got != tc.expected {
			t.Errorf("LevelCount() with %d ascending keys = %d; want %d", tc.n, got, tc.expected)
		}
		if got := tree.Height(); got != tc.expected {
			t.Errorf("Height() with %d ascending keys = %d; want %d", tc.n, got, tc.expected)
		}
	}
}

func TestInsertDuplicate(t *testing.T) {
	tree := buildTree(t, sequentialRecords(5))
	before := slices.Collect(tree.Inorder())

	err := tree.Insert("Impostor", "10000003")
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Insert of existing key returned %v; want ErrDuplicate", err)
	}
	verifyOrder(t, "inorder", slices.Collect(tree.Inorder()), before)
	if tree.Len() != 5 {
		t.Errorf("Len() = %d; want 5", tree.Len())
	}
	if name, _ := tree.FindByKey("10000003"); name != "N3" {
		t.Errorf("FindByKey after duplicate insert = %q; want N3", name)
	}
}

func TestInsertMalformedKey(t *testing.T) {
	tree := NewTree()
	for _, key := range []string{"", "abc", "-1234567", "1234567x"} {
		if err := tree.Insert("Alice", key); !errors.Is(err, ErrMalformedKey) {
			t.Errorf("Insert with key %q returned %v; want ErrMalformedKey", key, err)
		}
	}
	if tree.Len() != 0 || tree.Root() != nil {
		t.Errorf("tree should stay empty after malformed inserts")
	}
}

func TestKeysCompareNumerically(t *testing.T) {
	tree := NewTree()
	for _, r := range []record{{"Ten", "10"}, {"Nine", "9"}, {"Hundred", "100"}} {
		if err := tree.Insert(r.Name, r.Key); err != nil {
			t.Fatalf("Insert(%q, %q) returned %v", r.Name, r.Key, err)
		}
	}
	verifyOrder(t, "inorder", slices.Collect(tree.Inorder()), []string{"Nine", "Ten", "Hundred"})
}

func TestFindByKey(t *testing.T) {
	tree := buildTree(t, sequentialRecords(10))

	if name, ok := tree.FindByKey("10000007"); !ok || name != "N7" {
		t.Errorf("FindByKey(10000007) = %q, %v; want N7, true", name, ok)
	}
	for _, key := range []string{"10000011", "00000000", "not-a-key"} {
		if name, ok := tree.FindByKey(key); ok {
			t.Errorf("FindByKey(%q) = %q; want not found", key, name)
		}
	}

	if err := tree.RemoveByKey("10000007"); err != nil {
		t.Fatalf("RemoveByKey returned %v", err)
	}
	if _, ok := tree.FindByKey("10000007"); ok {
		t.Errorf("FindByKey found a removed key")
	}
	if !IsBalanced(tree.Root()) {
		t.Errorf("tree unbalanced after removal")
	}
}

func TestRemoveByKeyNotFound(t *testing.T) {
	empty := NewTree()
	if err := empty.RemoveByKey("10000001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveByKey on empty tree returned %v; want ErrNotFound", err)
	}

	tree := buildTree(t, sequentialRecords(3))
	if err := tree.RemoveByKey("10000009"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveByKey of absent key returned %v; want ErrNotFound", err)
	}
	if tree.Len() != 3 {
		t.Errorf("Len() = %d; want 3", tree.Len())
	}
}

func TestRemoveByRankOutOfRange(t *testing.T) {
	tree := buildTree(t, sequentialRecords(4))
	for _, n := range []int{-1, 4, 100} {
		if err := tree.RemoveByRank(n); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("RemoveByRank(%d) returned %v; want ErrOutOfRange", n, err)
		}
	}
	if err := NewTree().RemoveByRank(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("RemoveByRank(0) on empty tree returned %v; want ErrOutOfRange", err)
	}
}

func TestFindByName(t *testing.T) {
	tree := buildTree(t, []record{
		{"Sam", "20000005"},
		{"Ana", "20000002"},
		{"Sam", "20000001"},
		{"Lee", "20000004"},
		{"Sam", "20000009"},
	})

	keys := tree.FindByName("Sam")
	verifyOrder(t, "FindByName", keys, []string{"20000001", "20000005", "20000009"})

	if keys := tree.FindByName("Nobody"); len(keys) != 0 {
		t.Errorf("FindByName(Nobody) = %v; want empty", keys)
	}
}

func TestTraversalsAreRestartable(t *testing.T) {
	tree := buildTree(t, sequentialRecords(3))
	seq := tree.Postorder()

	verifyOrder(t, "postorder", slices.Collect(seq), []string{"N1", "N3", "N2"})
	verifyOrder(t, "postorder again", slices.Collect(seq), []string{"N1", "N3", "N2"})

	if err := tree.Insert("N4", "10000004"); err != nil {
		t.Fatal(err)
	}
	verifyOrder(t, "postorder after insert", slices.Collect(seq), []string{"N1", "N4", "N3", "N2"})

	var first []string
	for name := range tree.Inorder() {
		first = append(first, name)
		if len(first) == 2 {
			break
		}
	}
	verifyOrder(t, "inorder with break", first, []string{"N1", "N2"})

	var keys []string
	for key, name := range tree.Keys() {
		keys = append(keys, key+"="+name)
	}
	verifyOrder(t, "keys", keys, []string{"10000001=N1", "10000002=N2", "10000003=N3", "10000004=N4"})
}

func TestEmptyTree(t *testing.T) {
	var tree Tree
	if tree.LevelCount() != 0 || tree.Height() != 0 || tree.Len() != 0 {
		t.Errorf("zero Tree should be empty")
	}
	if names := slices.Collect(tree.Inorder()); len(names) != 0 {
		t.Errorf("Inorder() on empty tree = %v", names)
	}
	if !IsBalanced(tree.Root()) {
		t.Errorf("empty tree should be balanced")
	}
	if err := tree.Validate(); err != nil {
		t.Errorf("Validate() on empty tree = %v", err)
	}

	tree.Insert("Alice", "10000001")
	tree.Reset()
	if tree.Len() != 0 || tree.Root() != nil {
		t.Errorf("Reset() should drop every record")
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	tree := buildTree(t, sequentialRecords(7))
	tree.Root().left.height = 5
	if err := tree.Validate(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Validate() with stale height = %v; want ErrCorrupt", err)
	}

	tree = buildTree(t, sequentialRecords(7))
	tree.Root().left, tree.Root().right = tree.Root().right, tree.Root().left
	if err := tree.Validate(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Validate() with swapped children = %v; want ErrCorrupt", err)
	}

	tree = buildTree(t, sequentialRecords(3))
	tree.size = 9
	if err := tree.Validate(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Validate() with wrong size = %v; want ErrCorrupt", err)
	}
}

func TestIsBalancedRejectsChain(t *testing.T) {
	chain := newNode("a", "00000001", 1)
	chain.right = newNode("b", "00000002", 2)
	chain.right.right = newNode("c", "00000003", 3)
	if IsBalanced(chain) {
		t.Errorf("IsBalanced on a three-node chain = true; want false")
	}
	if !IsBalanced(chain.right.right) {
		t.Errorf("IsBalanced on a leaf = false; want true")
	}
}

// TestRandomOperations checks every invariant after each operation against a
// sorted reference slice of keys.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := NewTree()
	var reference []string

	insert := func(key string) {
		err := tree.Insert("name-"+key, key)
		pos, exists := slices.BinarySearch(reference, key)
		if exists {
			if !errors.Is(err, ErrDuplicate) {
				t.Fatalf("Insert(%s) of existing key returned %v", key, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Insert(%s) returned %v", key, err)
		}
		reference = slices.Insert(reference, pos, key)
	}

	for i := 0; i < 2000; i++ {
		key := fmt.Sprintf("%08d", rng.Intn(5000))
		switch op := rng.Intn(10); {
		case op < 6:
			insert(key)
		case op < 8:
			err := tree.RemoveByKey(key)
			pos, exists := slices.BinarySearch(reference, key)
			if exists != (err == nil) {
				t.Fatalf("RemoveByKey(%s) returned %v, present=%v", key, err, exists)
			}
			if exists {
				reference = slices.Delete(reference, pos, pos+1)
			}
		default:
			if len(reference) == 0 {
				continue
			}
			rank := rng.Intn(len(reference))
			if err := tree.RemoveByRank(rank); err != nil {
				t.Fatalf("RemoveByRank(%d) returned %v", rank, err)
			}
			reference = slices.Delete(reference, rank, rank+1)
		}

		_, inserted := slices.BinarySearch(reference, key)
		if name, found := tree.FindByKey(key); found != inserted || (found && name != "name-"+key) {
			t.Fatalf("after operation %d: FindByKey(%s) = %q, %v; want present=%v", i, key, name, found, inserted)
		}
		if err := tree.Validate(); err != nil {
			t.Fatalf("after operation %d: %v", i, err)
		}
		if !IsBalanced(tree.Root()) {
			t.Fatalf("after operation %d: tree unbalanced", i)
		}
		if tree.LevelCount() != tree.Height() {
			t.Fatalf("after operation %d: LevelCount %d != Height %d", i, tree.LevelCount(), tree.Height())
		}
	}

	var keys []string
	for key := range tree.Keys() {
		keys = append(keys, key)
	}
	if !sort.StringsAreSorted(keys) {
		t.Errorf("keys not in ascending order")
	}
	verifyOrder(t, "keys", keys, reference)

	if len(reference) > 0 {
		mid := reference[len(reference)/2]
		verifyOrder(t, "FindByName", tree.FindByName("name-"+mid), []string{mid})
	}
	if got := tree.FindByName("nobody"); len(got) != 0 {
		t.Errorf("FindByName(nobody) = %v; want none", got)
	}
}
