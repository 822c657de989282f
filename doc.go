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

// Package btengine implements the tick-driven behavior tree execution
// engine for ladybug agents: a typed tree of sequence/fallback/parallel
// composites and action/condition leaves, traversed one action leaf at a
// time, with per-agent caching, jump, reset and runtime sibling insertion.
package btengine
