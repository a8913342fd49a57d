// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/compositor/geom"
)

// RenderTaskID names a task within one frame's graph.
type RenderTaskID uint32

// RenderTaskKind is what a render task produces.
type RenderTaskKind uint8

// RenderTaskKind values.
const (
	TaskPicture RenderTaskKind = iota
	TaskClipMask
	TaskBlur
	TaskBlit
	TaskCacheMask
	TaskReadback
)

// RenderTask is one node of the render task graph. Children must be drawn
// before their parent reads them.
type RenderTask struct {
	ID       RenderTaskID       `yaml:"id"`
	Kind     RenderTaskKind     `yaml:"kind"`
	Children []RenderTaskID     `yaml:"children,omitempty"`
	// Target is the texture the task is drawn into, Location its rect there.
	Target   CacheTextureID     `yaml:"target"`
	Location geom.DeviceIntRect `yaml:"location"`
}

// RenderTaskGraph is the dependency graph of a frame's off-screen work.
type RenderTaskGraph struct {
	Tasks []RenderTask `yaml:"tasks,omitempty"`
}

// Task returns the task with id.
func (g *RenderTaskGraph) Task(id RenderTaskID) (RenderTask, bool) {
	for _, t := range g.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return RenderTask{}, false
}

// AssignPasses groups tasks into passes, leaves first: a task without
// children goes to pass 0 and every other task to one pass after its
// deepest child. Tasks within a pass keep graph order.
func (g *RenderTaskGraph) AssignPasses() ([][]RenderTaskID, error) {
	index := make(map[RenderTaskID]int, len(g.Tasks))
	for i, t := range g.Tasks {
		if _, dup := index[t.ID]; dup {
			return nil, fmt.Errorf("render: duplicate render task %d", t.ID)
		}
		index[t.ID] = i
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]uint8, len(g.Tasks))
	depth := make([]int, len(g.Tasks))

	// Iterative post-order walk so deep graphs do not grow the call stack.
	type frame struct {
		task  int
		child int
	}
	for root := range g.Tasks {
		if state[root] == done {
			continue
		}
		stack := []frame{{task: root}}
		state[root] = visiting
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			t := g.Tasks[top.task]
			if top.child < len(t.Children) {
				cid := t.Children[top.child]
				top.child++
				ci, ok := index[cid]
				if !ok {
					return nil, fmt.Errorf("%w: %d (child of %d)", ErrUnknownTask, cid, t.ID)
				}
				switch state[ci] {
				case visiting:
					return nil, fmt.Errorf("%w: through task %d", ErrTaskCycle, cid)
				case unvisited:
					state[ci] = visiting
					stack = append(stack, frame{task: ci})
				}
				continue
			}
			d := 0
			for _, cid := range t.Children {
				d = max(d, depth[index[cid]]+1)
			}
			depth[top.task] = d
			state[top.task] = done
			stack = stack[:len(stack)-1]
		}
	}

	var passes [][]RenderTaskID
	for i, t := range g.Tasks {
		for len(passes) <= depth[i] {
			passes = append(passes, nil)
		}
		passes[depth[i]] = append(passes[depth[i]], t.ID)
	}
	return passes, nil
}
