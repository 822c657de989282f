/*
   Copyright 2021 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package btengine

import (
	"strconv"

	"github.com/xlab/treeprint"
)

// Dump renders the tree rooted at n as an ASCII tree, for debugging and
// test failure output only -- never parsed, never part of the event log
// (spec.md §6.5).
func (n *Node) Dump() string {
	tree := treeprint.New()
	tree.SetValue(n.label())
	n.addChildren(tree)
	return tree.String()
}

func (n *Node) addChildren(branch treeprint.Tree) {
	for c := n.first; c != nil; c = c.next {
		sub := branch.AddBranch(c.label())
		c.addChildren(sub)
	}
}

func (n *Node) label() string {
	if n.kind == KindLeaf {
		name := n.behavior.LogName()
		kind := `action`
		if n.leafKind == Condition {
			kind = `condition`
		}
		return n.id + ` [` + kind + `:` + name + `]`
	}
	if n.kind == KindParallel {
		return n.id + ` [parallel(` + strconv.Itoa(n.k) + `)]`
	}
	return n.id + ` [` + n.kind.String() + `]`
}
