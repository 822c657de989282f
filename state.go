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

// ExecutionState is the traversal "program counter" and run-scoped caches
// for one agent against one tree (spec.md §3, C4).
type ExecutionState struct {
	// root is the pinned tree root this state was created against.
	root *Node
	// current is the node set by the last JumpTo, or the root otherwise.
	// Tick does not start its descent here: it always descends from the
	// root, skipping cached nodes.
	current *Node
	// statusCache maps node id to its last decided status within the
	// current run.
	statusCache map[string]Status
	// openComposites holds the ids of composites for which an ENTRY event
	// has been emitted but no EXIT event yet.
	openComposites map[string]struct{}
	// lastExecutedLeaf is the most recently ticked leaf (action or
	// condition), used by the head query's exception rule (spec.md §4.3.5).
	lastExecutedLeaf *Node
}

func newExecutionState(root *Node) *ExecutionState {
	return &ExecutionState{
		root:           root,
		current:        root,
		statusCache:    make(map[string]Status),
		openComposites: make(map[string]struct{}),
	}
}

// Current returns the node set by the last JumpTo, or the root after a
// reset or a tick that executed an action. Tick always descends from the
// root, not from this node.
func (s *ExecutionState) Current() *Node { return s.current }

// LastExecutedLeaf returns the most recently ticked leaf, or nil.
func (s *ExecutionState) LastExecutedLeaf() *Node { return s.lastExecutedLeaf }

// Status returns the cached status for nodeID within the current run, if any.
func (s *ExecutionState) Status(nodeID string) (Status, bool) {
	st, ok := s.statusCache[nodeID]
	return st, ok
}

func (s *ExecutionState) reset() {
	s.current = s.root
	s.statusCache = make(map[string]Status)
	s.openComposites = make(map[string]struct{})
	s.lastExecutedLeaf = nil
}

// clearDescendants removes the status-cache and open-composite entries of
// every descendant of node (not node itself), per spec.md §4.5's Parallel
// finalization rule.
func (s *ExecutionState) clearDescendants(node *Node) {
	for c := node.first; c != nil; c = c.next {
		delete(s.statusCache, c.id)
		delete(s.openComposites, c.id)
		s.clearDescendants(c)
	}
}
