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

import bt "github.com/joeycumines/go-behaviortree"

// Status is the outcome of a condition, action, or composite decision.
// It is a direct re-export of go-behaviortree's Status, since this engine
// uses the same two-value vocabulary (Success/Failure) for everything it
// caches; see DESIGN.md for why the rest of that package isn't used here.
type Status = bt.Status

const (
	Success = bt.Success
	Failure = bt.Failure
)

// Progress describes what happened as a result of one Tick call.
type Progress int

const (
	// Idle means no action leaf could be found to execute.
	Idle Progress = iota
	// Executed means exactly one action leaf's behavior was invoked.
	Executed
)

func (p Progress) String() string {
	switch p {
	case Executed:
		return `Executed`
	default:
		return `Idle`
	}
}
