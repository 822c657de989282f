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

import "testing"

type stubBehavior struct {
	status Status
	name   string
}

func (s stubBehavior) Tick(World, Agent) (Status, error) { return s.status, nil }
func (s stubBehavior) LogName() string                   { return s.name }
func (s stubBehavior) LogArgs() string                   { return `` }

func leaf(id string, kind LeafKind, status Status) *Node {
	return NewLeaf(id, kind, stubBehavior{status: status, name: id})
}

func TestNewLeaf_nilBehaviorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error(`expected panic`)
		}
	}()
	NewLeaf(`x`, Action, nil)
}

func TestAppendChild_rejectsLeafParent(t *testing.T) {
	l := leaf(`a`, Action, Success)
	if err := l.AppendChild(leaf(`b`, Action, Success)); err != ErrNotComposite {
		t.Errorf(`got %v, want ErrNotComposite`, err)
	}
}

func TestInsertChildAt_rejectsOutOfRange(t *testing.T) {
	seq := NewSequence(`root`)
	if err := seq.InsertChildAt(1, leaf(`a`, Action, Success)); err != ErrIndexOutOfRange {
		t.Errorf(`got %v, want ErrIndexOutOfRange`, err)
	}
	if err := seq.InsertChildAt(-1, leaf(`a`, Action, Success)); err != ErrIndexOutOfRange {
		t.Errorf(`got %v, want ErrIndexOutOfRange`, err)
	}
}

func TestInsertChildAt_rejectsDuplicateID(t *testing.T) {
	seq := NewSequence(`root`)
	if err := seq.AppendChild(leaf(`a`, Action, Success)); err != nil {
		t.Fatal(err)
	}
	if err := seq.AppendChild(leaf(`a`, Action, Success)); err != ErrDuplicateID {
		t.Errorf(`got %v, want ErrDuplicateID`, err)
	}
}

func TestInsertChildAt_ordersChildrenCorrectly(t *testing.T) {
	seq := NewSequence(`root`)
	a, b, c := leaf(`a`, Action, Success), leaf(`b`, Action, Success), leaf(`c`, Action, Success)
	if err := seq.AppendChild(a); err != nil {
		t.Fatal(err)
	}
	if err := seq.AppendChild(c); err != nil {
		t.Fatal(err)
	}
	if err := seq.InsertChildAt(1, b); err != nil {
		t.Fatal(err)
	}
	got := seq.Children()
	want := []*Node{a, b, c}
	if len(got) != len(want) {
		t.Fatalf(`got %d children, want %d`, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf(`child %d: got %q, want %q`, i, got[i].ID(), want[i].ID())
		}
	}
	for i, n := range got {
		if n.Parent() != seq {
			t.Errorf(`child %d: parent not set to seq`, i)
		}
	}
}

func TestFindByID_findsNestedNode(t *testing.T) {
	root := NewSequence(`root`)
	inner := NewFallback(`inner`)
	target := leaf(`target`, Condition, Success)
	if err := inner.AppendChild(target); err != nil {
		t.Fatal(err)
	}
	if err := root.AppendChild(inner); err != nil {
		t.Fatal(err)
	}
	if root.FindByID(`target`) != target {
		t.Error(`expected to find target`)
	}
	if root.FindByID(`missing`) != nil {
		t.Error(`expected nil for missing id`)
	}
}

func TestAppendChild_detachesFromPriorParent(t *testing.T) {
	root1 := NewSequence(`root1`)
	root2 := NewSequence(`root2`)
	child := leaf(`child`, Action, Success)
	if err := root1.AppendChild(child); err != nil {
		t.Fatal(err)
	}
	if err := root2.AppendChild(child); err != nil {
		t.Fatal(err)
	}
	if root1.ChildrenCount() != 0 {
		t.Errorf(`root1 should be empty after child moved, got %d`, root1.ChildrenCount())
	}
	if child.Parent() != root2 {
		t.Error(`child should now be parented to root2`)
	}
}
