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
	"strings"
	"testing"
)

func TestDump_includesNodeIDsAndParallelK(t *testing.T) {
	root := NewSequence(`root`)
	par := NewParallel(`par`, 2)
	if err := par.AppendChild(act(`a1`, Success)); err != nil {
		t.Fatal(err)
	}
	if err := root.AppendChild(par); err != nil {
		t.Fatal(err)
	}
	if err := root.AppendChild(cond(`c1`, Success)); err != nil {
		t.Fatal(err)
	}

	out := root.Dump()
	for _, want := range []string{`root`, `par`, `parallel(2)`, `a1`, `c1`} {
		if !strings.Contains(out, want) {
			t.Errorf(`dump missing %q, got:\n%s`, want, out)
		}
	}
}
