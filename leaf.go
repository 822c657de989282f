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

import "unicode"

// LeafBehavior is the opaque capability bound to a Leaf node (spec.md §3,
// C3). The engine never downcasts to a concrete behavior type; it only
// calls Tick, LogName and LogArgs.
type LeafBehavior interface {
	// Tick invokes the behavior against world on behalf of agent. Actions
	// may mutate the world; Conditions must not.
	Tick(world World, agent Agent) (Status, error)
	// LogName is the name used in event log lines (spec.md §4.4).
	LogName() string
	// LogArgs is appended verbatim (with one leading space) to the log
	// line iff non-empty.
	LogArgs() string
}

// DefaultLogName derives a log name from name (typically a Go type name
// passed in as a string) by lowercasing its first character (spec.md
// §4.4). An empty name is returned unchanged.
func DefaultLogName(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return name
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
