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

import "sync"

// EventSink receives one formatted event line per call (spec.md §4.4, §6.1).
type EventSink func(line string)

// Engine is the stateful, tick-driven traversal engine (C5) bound to one
// tree. One Engine may drive many independent agents against that tree.
type Engine struct {
	root *Node
	sink EventSink

	mu     sync.Mutex
	states map[string]*ExecutionState
}

// NewEngine constructs an Engine for the tree rooted at root, emitting
// event lines to sink (spec.md §6.1). sink may be nil, in which case
// events are simply discarded.
func NewEngine(root *Node, sink EventSink) *Engine {
	if sink == nil {
		sink = func(string) {}
	}
	return &Engine{
		root:   root,
		sink:   sink,
		states: make(map[string]*ExecutionState),
	}
}

// Tree returns the tree root this Engine was constructed with.
func (e *Engine) Tree() *Node { return e.root }

// StateOf returns the per-agent execution state, creating it (pinned to
// the engine's root, with an empty cache) on first use.
func (e *Engine) StateOf(agent Agent) *ExecutionState { return e.stateFor(agent) }

func (e *Engine) stateFor(agent Agent) *ExecutionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := agent.ID()
	state, ok := e.states[id]
	if !ok {
		state = newExecutionState(e.root)
		e.states[id] = state
	}
	return state
}

// Reset clears all per-agent state for agent; always succeeds (spec.md §7).
func (e *Engine) Reset(agent Agent) { e.stateFor(agent).reset() }

// JumpTo relocates agent's current node to nodeID, marking the siblings
// skipped to reach it (spec.md §4.3.4). Returns false, leaving state
// untouched, if nodeID does not exist in the tree.
func (e *Engine) JumpTo(agent Agent, nodeID string) bool {
	target := e.root.FindByID(nodeID)
	if target == nil {
		return false
	}
	state := e.stateFor(agent)
	state.statusCache = make(map[string]Status)
	state.openComposites = make(map[string]struct{})
	if parent := target.parent; parent != nil {
		skipped := Failure
		if parent.kind == KindSequence {
			skipped = Success
		}
		for c := parent.first; c != nil && c != target; c = c.next {
			state.statusCache[c.id] = skipped
		}
	}
	state.current = target
	return true
}

// Tick advances agent by at most one action (spec.md §4.3.1).
func (e *Engine) Tick(world World, agent Agent) (Progress, error) {
	state := e.stateFor(agent)

	fired, err := e.runOnce(world, agent, state)
	if err != nil {
		return Idle, err
	}
	if fired {
		return Executed, nil
	}

	// No action leaf was found. If the root has a decided status, this
	// run is over: start a new run and try exactly once more.
	if _, ok := state.statusCache[e.root.id]; !ok {
		return Idle, nil
	}
	state.reset()
	fired, err = e.runOnce(world, agent, state)
	if err != nil {
		return Idle, err
	}
	if fired {
		return Executed, nil
	}
	return Idle, nil
}

// runOnce performs one descent, invoking at most one uncached Action leaf.
// It always walks from the tree root: state.statusCache already marks
// every node a jump_to or prior tick has resolved (including the
// skipped-sibling marks jump_to leaves behind), so re-entering from root
// reaches the same uncached leaf a literal resume-at-current descent
// would, while still letting ancestor composites that become decided as
// a side effect finalize and emit their EXIT in this same tick (spec.md
// §4.3.1, Scenario D). It reports whether an Action leaf was invoked;
// Condition leaves evaluated on the way do not count.
func (e *Engine) runOnce(world World, agent Agent, state *ExecutionState) (bool, error) {
	var fired bool
	_, _, err := e.descend(world, agent, state, e.root, &fired)
	if err != nil {
		return false, err
	}
	if fired {
		state.current = e.root
	}
	return fired, nil
}

// descend is the single call path that invokes leaf behaviors (spec.md
// §4.3.3's "unique invocation site"): the shared fired flag is set the
// instant the first uncached Action leaf is reached, and its freshly
// cached result feeds directly into the composite decisions examined
// further up this same call chain -- which is how a Sequence/Fallback/
// Parallel can finalize (and emit its EXIT) in the very tick that fires
// its last pending child, as required by Scenarios A, B and C in
// spec.md §8.
//
// Returns (status, decided, err). decided is false when the subtree is
// not yet resolved this run (a pending Parallel, or an Action blocked
// because the one-per-tick budget was already spent).
func (e *Engine) descend(world World, agent Agent, state *ExecutionState, node *Node, fired *bool) (Status, bool, error) {
	if st, ok := state.statusCache[node.id]; ok {
		return st, true, nil
	}

	if node.kind == KindLeaf {
		return e.descendLeaf(world, agent, state, node, fired)
	}

	e.enter(agent, state, node)

	switch node.kind {
	case KindSequence:
		return e.descendSequence(world, agent, state, node, fired)
	case KindFallback:
		return e.descendFallback(world, agent, state, node, fired)
	default:
		return e.descendParallel(world, agent, state, node, fired)
	}
}

func (e *Engine) descendLeaf(world World, agent Agent, state *ExecutionState, node *Node, fired *bool) (Status, bool, error) {
	if node.leafKind == Condition {
		status, err := node.behavior.Tick(world, agent)
		if err != nil {
			return Status(0), false, &LeafError{NodeID: node.id, Err: err}
		}
		e.commitLeaf(agent, state, node, status)
		return status, true, nil
	}
	// Action leaf.
	if *fired {
		return Status(0), false, nil
	}
	status, err := node.behavior.Tick(world, agent)
	if err != nil {
		return Status(0), false, &LeafError{NodeID: node.id, Err: err}
	}
	*fired = true
	e.commitLeaf(agent, state, node, status)
	return status, true, nil
}

func (e *Engine) commitLeaf(agent Agent, state *ExecutionState, node *Node, status Status) {
	state.statusCache[node.id] = status
	state.lastExecutedLeaf = node
	e.emitLeaf(agent, node, status)
}

func (e *Engine) descendSequence(world World, agent Agent, state *ExecutionState, node *Node, fired *bool) (Status, bool, error) {
	for c := node.first; c != nil; c = c.next {
		if st, ok := state.statusCache[c.id]; ok {
			if st == Failure {
				return e.finish(agent, state, node, Failure)
			}
			continue
		}
		status, decided, err := e.descend(world, agent, state, c, fired)
		if err != nil {
			return Status(0), false, err
		}
		if !decided {
			return Status(0), false, nil
		}
		if status == Failure {
			return e.finish(agent, state, node, Failure)
		}
	}
	return e.finish(agent, state, node, Success)
}

func (e *Engine) descendFallback(world World, agent Agent, state *ExecutionState, node *Node, fired *bool) (Status, bool, error) {
	for c := node.first; c != nil; c = c.next {
		if st, ok := state.statusCache[c.id]; ok {
			if st == Success {
				return e.finish(agent, state, node, Success)
			}
			continue
		}
		status, decided, err := e.descend(world, agent, state, c, fired)
		if err != nil {
			return Status(0), false, err
		}
		if !decided {
			return Status(0), false, nil
		}
		if status == Success {
			return e.finish(agent, state, node, Success)
		}
	}
	return e.finish(agent, state, node, Failure)
}

func (e *Engine) descendParallel(world World, agent Agent, state *ExecutionState, node *Node, fired *bool) (Status, bool, error) {
	children := node.Children()
	n := len(children)
	if n == 0 {
		status := Failure
		if node.k <= 0 {
			status = Success
		}
		return e.finishParallel(agent, state, node, status)
	}

	var successes, failures int
	var handledFirstUncached bool
	for _, c := range children {
		if st, ok := state.statusCache[c.id]; ok {
			if st == Success {
				successes++
			} else {
				failures++
			}
			continue
		}
		if handledFirstUncached {
			continue
		}
		handledFirstUncached = true
		status, decided, err := e.descend(world, agent, state, c, fired)
		if err != nil {
			return Status(0), false, err
		}
		if decided {
			if status == Success {
				successes++
			} else {
				failures++
			}
		}
	}

	if successes >= node.k {
		return e.finishParallel(agent, state, node, Success)
	}
	if node.k > n {
		// Success is structurally unattainable (k exceeds the child count),
		// so the bound is already crossed; but it is only safe to cache
		// Failure once every child has actually resolved (spec.md §4.5).
		if successes+failures >= n {
			return e.finishParallel(agent, state, node, Failure)
		}
		return Status(0), false, nil
	}
	if failures > n-node.k {
		return e.finishParallel(agent, state, node, Failure)
	}
	return Status(0), false, nil
}

func (e *Engine) finish(agent Agent, state *ExecutionState, node *Node, status Status) (Status, bool, error) {
	state.statusCache[node.id] = status
	delete(state.openComposites, node.id)
	e.emitExit(agent, node, status)
	return status, true, nil
}

func (e *Engine) finishParallel(agent Agent, state *ExecutionState, node *Node, status Status) (Status, bool, error) {
	status, decided, err := e.finish(agent, state, node, status)
	state.clearDescendants(node)
	return status, decided, err
}

func (e *Engine) enter(agent Agent, state *ExecutionState, node *Node) {
	if _, ok := state.openComposites[node.id]; ok {
		return
	}
	state.openComposites[node.id] = struct{}{}
	e.emitEntry(agent, node)
}

// FindNextAction returns the leaf the next Tick would execute, without
// invoking anything, mutating the status cache, or emitting events
// (spec.md §4.3.5).
func (e *Engine) FindNextAction(world World, agent Agent) (*Node, error) {
	state := e.stateFor(agent)

	if leaf := state.lastExecutedLeaf; leaf != nil && leaf.leafKind == Action && isLastChild(leaf) {
		return leaf, nil
	}

	if found := peek(e.root, state.statusCache); found != nil {
		return found, nil
	}
	if _, ok := state.statusCache[e.root.id]; ok {
		return peek(e.root, map[string]Status{}), nil
	}
	return nil, nil
}

func isLastChild(node *Node) bool {
	return node.parent != nil && node.parent.last == node
}

// peek mirrors descend's composite selection rules as a pure, read-only
// look-ahead: it never invokes a behavior, so an uncached Condition is
// treated exactly like a spent budget -- undecided, blocking its parent
// from finalizing (spec.md §4.3.5, design decision #2 in DESIGN.md).
func peek(node *Node, cache map[string]Status) *Node {
	var budget bool
	found, _, _ := peekNode(node, cache, &budget)
	return found
}

// peekNode returns (found, status, decided) for node under the read-only
// cache view, consuming budget the same way descend's fired flag does.
func peekNode(node *Node, cache map[string]Status, budget *bool) (*Node, Status, bool) {
	if st, ok := cache[node.id]; ok {
		return nil, st, true
	}
	if node.kind == KindLeaf {
		if node.leafKind == Condition {
			return nil, Status(0), false
		}
		if *budget {
			return nil, Status(0), false
		}
		*budget = true
		return node, Status(0), false
	}

	children := node.Children()
	switch node.kind {
	case KindSequence:
		for _, c := range children {
			if st, ok := cache[c.id]; ok {
				if st == Failure {
					return nil, Failure, true
				}
				continue
			}
			found, status, decided := peekNode(c, cache, budget)
			if found != nil {
				return found, Status(0), false
			}
			if !decided {
				return nil, Status(0), false
			}
			if status == Failure {
				return nil, Failure, true
			}
		}
		return nil, Success, true
	case KindFallback:
		for _, c := range children {
			if st, ok := cache[c.id]; ok {
				if st == Success {
					return nil, Success, true
				}
				continue
			}
			found, status, decided := peekNode(c, cache, budget)
			if found != nil {
				return found, Status(0), false
			}
			if !decided {
				return nil, Status(0), false
			}
			if status == Success {
				return nil, Success, true
			}
		}
		return nil, Failure, true
	default: // Parallel
		n := len(children)
		if n == 0 {
			if node.k <= 0 {
				return nil, Success, true
			}
			return nil, Failure, true
		}
		var successes, failures int
		var handledFirstUncached bool
		for _, c := range children {
			if st, ok := cache[c.id]; ok {
				if st == Success {
					successes++
				} else {
					failures++
				}
				continue
			}
			if handledFirstUncached {
				continue
			}
			handledFirstUncached = true
			found, status, decided := peekNode(c, cache, budget)
			if found != nil {
				return found, Status(0), false
			}
			if decided {
				if status == Success {
					successes++
				} else {
					failures++
				}
			}
		}
		if successes >= node.k {
			return nil, Success, true
		}
		if node.k > n {
			if successes+failures >= n {
				return nil, Failure, true
			}
			return nil, Status(0), false
		}
		if failures > n-node.k {
			return nil, Failure, true
		}
		return nil, Status(0), false
	}
}

func (e *Engine) emitEntry(agent Agent, node *Node) {
	e.sink(prefix(agent, node) + node.kind.String() + ` ENTRY`)
}

func (e *Engine) emitExit(agent Agent, node *Node, status Status) {
	e.sink(prefix(agent, node) + node.kind.String() + ` ` + statusString(status))
}

func (e *Engine) emitLeaf(agent Agent, node *Node, status Status) {
	line := prefix(agent, node) + node.behavior.LogName()
	if args := node.behavior.LogArgs(); args != `` {
		line += ` ` + args
	}
	e.sink(line + ` ` + statusString(status))
}

func prefix(agent Agent, node *Node) string {
	return agent.ID() + ` ` + node.id + ` `
}

func statusString(s Status) string {
	if s == Success {
		return `SUCCESS`
	}
	return `FAILURE`
}
