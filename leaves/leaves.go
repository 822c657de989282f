// Copyright 2021 Joseph Cumines
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

// Package leaves provides the concrete LeafBehavior catalogue: one type
// per World Port call, each a thin wrapper with nothing but the
// coordinates (if any) it was constructed with (SPEC_FULL.md §3.1).
package leaves

import (
	"strconv"

	bt "github.com/joeycumines/go-ladybug-bt"
)

// Move ticks World.MoveForward.
type Move struct{}

func (Move) Tick(world bt.World, agent bt.Agent) (bt.Status, error) { return world.MoveForward(agent) }
func (Move) LogName() string                                       { return bt.DefaultLogName(`Move`) }
func (Move) LogArgs() string                                       { return `` }

// TurnLeft ticks World.TurnLeft.
type TurnLeft struct{}

func (TurnLeft) Tick(world bt.World, agent bt.Agent) (bt.Status, error) { return world.TurnLeft(agent) }
func (TurnLeft) LogName() string                                       { return bt.DefaultLogName(`TurnLeft`) }
func (TurnLeft) LogArgs() string                                       { return `` }

// TurnRight ticks World.TurnRight.
type TurnRight struct{}

func (TurnRight) Tick(world bt.World, agent bt.Agent) (bt.Status, error) {
	return world.TurnRight(agent)
}
func (TurnRight) LogName() string { return bt.DefaultLogName(`TurnRight`) }
func (TurnRight) LogArgs() string { return `` }

// PlaceLeaf ticks World.PlaceLeaf.
type PlaceLeaf struct{}

func (PlaceLeaf) Tick(world bt.World, agent bt.Agent) (bt.Status, error) {
	return world.PlaceLeaf(agent)
}
func (PlaceLeaf) LogName() string { return bt.DefaultLogName(`PlaceLeaf`) }
func (PlaceLeaf) LogArgs() string { return `` }

// TakeLeaf ticks World.TakeLeaf.
type TakeLeaf struct{}

func (TakeLeaf) Tick(world bt.World, agent bt.Agent) (bt.Status, error) { return world.TakeLeaf(agent) }
func (TakeLeaf) LogName() string                                       { return bt.DefaultLogName(`TakeLeaf`) }
func (TakeLeaf) LogArgs() string                                       { return `` }

// Fly ticks World.FlyTo with a fixed destination.
type Fly struct{ X, Y int }

func (f Fly) Tick(world bt.World, agent bt.Agent) (bt.Status, error) {
	return world.FlyTo(agent, f.X, f.Y)
}
func (Fly) LogName() string { return bt.DefaultLogName(`Fly`) }
func (f Fly) LogArgs() string {
	return strconv.Itoa(f.X) + `,` + strconv.Itoa(f.Y)
}

// TreeFront ticks World.TreeFront.
type TreeFront struct{}

func (TreeFront) Tick(world bt.World, agent bt.Agent) (bt.Status, error) {
	return world.TreeFront(agent)
}
func (TreeFront) LogName() string { return bt.DefaultLogName(`TreeFront`) }
func (TreeFront) LogArgs() string { return `` }

// LeafFront ticks World.LeafFront.
type LeafFront struct{}

func (LeafFront) Tick(world bt.World, agent bt.Agent) (bt.Status, error) {
	return world.LeafFront(agent)
}
func (LeafFront) LogName() string { return bt.DefaultLogName(`LeafFront`) }
func (LeafFront) LogArgs() string { return `` }

// MushroomFront ticks World.MushroomFront.
type MushroomFront struct{}

func (MushroomFront) Tick(world bt.World, agent bt.Agent) (bt.Status, error) {
	return world.MushroomFront(agent)
}
func (MushroomFront) LogName() string { return bt.DefaultLogName(`MushroomFront`) }
func (MushroomFront) LogArgs() string { return `` }

// AtEdge ticks World.AtEdge.
type AtEdge struct{}

func (AtEdge) Tick(world bt.World, agent bt.Agent) (bt.Status, error) { return world.AtEdge(agent) }
func (AtEdge) LogName() string                                       { return bt.DefaultLogName(`AtEdge`) }
func (AtEdge) LogArgs() string                                       { return `` }

// ExistsPath ticks World.ExistsPath against a fixed target cell.
type ExistsPath struct{ X, Y int }

func (p ExistsPath) Tick(world bt.World, agent bt.Agent) (bt.Status, error) {
	return world.ExistsPath(agent, p.X, p.Y)
}
func (ExistsPath) LogName() string { return bt.DefaultLogName(`ExistsPath`) }
func (p ExistsPath) LogArgs() string {
	return strconv.Itoa(p.X) + `,` + strconv.Itoa(p.Y)
}

// ExistsPathBetween ticks World.ExistsPathBetween against two fixed cells.
type ExistsPathBetween struct{ X1, Y1, X2, Y2 int }

func (p ExistsPathBetween) Tick(world bt.World, agent bt.Agent) (bt.Status, error) {
	return world.ExistsPathBetween(agent, p.X1, p.Y1, p.X2, p.Y2)
}
func (ExistsPathBetween) LogName() string { return bt.DefaultLogName(`ExistsPathBetween`) }
func (p ExistsPathBetween) LogArgs() string {
	return strconv.Itoa(p.X1) + `,` + strconv.Itoa(p.Y1) + ` ` +
		strconv.Itoa(p.X2) + `,` + strconv.Itoa(p.Y2)
}
