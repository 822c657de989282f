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

// Agent identifies a ladybug bound to one execution state. Identity is by
// string key rather than pointer equality, since callers may move or copy
// the value that represents an agent.
type Agent interface {
	ID() string
}

// World is the narrow port through which leaf behaviors observe and
// mutate the world (spec.md §6.3). The engine itself never calls these
// methods directly; only LeafBehavior implementations (see leaves/) do.
type World interface {
	TreeFront(agent Agent) (Status, error)
	LeafFront(agent Agent) (Status, error)
	MushroomFront(agent Agent) (Status, error)
	AtEdge(agent Agent) (Status, error)
	ExistsPath(agent Agent, x, y int) (Status, error)
	ExistsPathBetween(agent Agent, x1, y1, x2, y2 int) (Status, error)

	MoveForward(agent Agent) (Status, error)
	TurnLeft(agent Agent) (Status, error)
	TurnRight(agent Agent) (Status, error)
	PlaceLeaf(agent Agent) (Status, error)
	TakeLeaf(agent Agent) (Status, error)
	FlyTo(agent Agent, x, y int) (Status, error)
}
