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

package main

import (
	"fmt"

	"github.com/cmora0/AVL-Tree/index"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

type treeLabel string

func (l treeLabel) String() string { return string(l) }

// buildViewNodes mirrors the subtree under n as termui tree nodes. side tags
// each child as the left or right one, since a lone child is otherwise
// ambiguous.
func buildViewNodes(n *index.Node, side string) *widgets.TreeNode {
	if n == nil {
		return nil
	}
	node := &widgets.TreeNode{
		Value:    treeLabel(fmt.Sprintf("%s%s [%s] h=%d bf=%+d", side, n.Name(), n.Key(), n.Height(), n.BalanceFactor())),
		Expanded: true,
	}
	if left := buildViewNodes(n.Left(), "L: "); left != nil {
		node.Nodes = append(node.Nodes, left)
	}
	if right := buildViewNodes(n.Right(), "R: "); right != nil {
		node.Nodes = append(node.Nodes, right)
	}
	return node
}

func viewTitle(tree *index.Tree) string {
	if tree.Len() == 0 {
		return " avltree (empty) "
	}
	return fmt.Sprintf(" avltree: %d records, %d levels ", tree.Len(), tree.LevelCount())
}

// viewTree shows the tree in a full-screen termui widget until q is pressed.
func viewTree(tree *index.Tree) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %v", err)
	}
	defer ui.Close()
	DisableMouseInput()

	var nodes []*widgets.TreeNode
	if root := buildViewNodes(tree.Root(), ""); root != nil {
		nodes = append(nodes, root)
	}

	w := widgets.NewTree()
	w.Title = viewTitle(tree)
	w.TextStyle = treeTextStyle()
	w.SelectedRowStyle = treeSelectedStyle()
	w.BorderStyle = treeBorderStyle()
	w.WrapText = false
	w.SetNodes(nodes)

	x, y := ui.TerminalDimensions()
	w.SetRect(0, 0, x, y)
	ui.Render(w)

	previousKey := ""
	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "j", "<Down>":
			w.ScrollDown()
		case "k", "<Up>":
			w.ScrollUp()
		case "<C-d>", "<PageDown>":
			w.ScrollHalfPageDown()
		case "<C-u>", "<PageUp>":
			w.ScrollHalfPageUp()
		case "g":
			if previousKey == "g" {
				w.ScrollTop()
			}
		case "<Home>":
			w.ScrollTop()
		case "G", "<End>":
			w.ScrollBottom()
		case "<Enter>", "<Space>":
			w.ToggleExpand()
		case "E":
			w.ExpandAll()
		case "C":
			w.CollapseAll()
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			w.SetRect(0, 0, payload.Width, payload.Height)
		}

		if previousKey == "g" {
			previousKey = ""
		} else {
			previousKey = e.ID
		}

		ui.Render(w)
	}
}
