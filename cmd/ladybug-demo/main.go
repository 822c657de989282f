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

// Command ladybug-demo wires the engine, a small tree and the reference
// grid world together, ticks a single agent until the engine reports Idle
// or -max-ticks ticks have run, and prints the resulting event log -- a
// scripted stand-in for the real controller
// (out of scope for this module; see SPEC_FULL.md §1).
package main

import (
	"flag"
	"log"
	"os"

	bt "github.com/joeycumines/go-ladybug-bt"
	"github.com/joeycumines/go-ladybug-bt/gridworld"
	"github.com/joeycumines/go-ladybug-bt/leaves"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet(`ladybug-demo`, flag.ContinueOnError)
	maxTicks := flags.Int(`max-ticks`, 100, `stop after this many ticks even if the tree never resolves`)
	if err := flags.Parse(args); err != nil {
		return 1
	}

	log.SetOutput(os.Stdout)

	root := buildTree()
	grid := gridworld.NewGrid(5, 5)
	world := gridworld.NewWorld(grid)
	agent := world.Spawn(`ladybug-1`, 0, 0, gridworld.East)

	engine := bt.NewEngine(root, func(line string) { log.Print(line) })

	for i := 0; i < *maxTicks; i++ {
		progress, err := engine.Tick(world, agent)
		if err != nil {
			log.Printf(`tick error: %s`, err)
			return 1
		}
		if progress == bt.Idle {
			break
		}
	}
	return 0
}

// buildTree constructs: unless a tree is directly ahead, step forward
// once; then place a leaf on the agent's own cell -- a minimal script
// exercising a Sequence, a Fallback and several concrete leaves together.
// Each new run repeats it from the root.
func buildTree() *bt.Node {
	root := bt.NewSequence(`root`)
	approach := bt.NewFallback(`approach`)
	_ = root.AppendChild(approach)
	_ = approach.AppendChild(bt.NewLeaf(`tree-front`, bt.Condition, leaves.TreeFront{}))
	_ = approach.AppendChild(bt.NewLeaf(`move`, bt.Action, leaves.Move{}))
	_ = root.AppendChild(bt.NewLeaf(`place-leaf`, bt.Action, leaves.PlaceLeaf{}))
	return root
}
