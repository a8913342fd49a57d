// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignPassesByDepth(t *testing.T) {
	g := RenderTaskGraph{Tasks: []RenderTask{
		{ID: 1, Kind: TaskPicture, Children: []RenderTaskID{2, 3}},
		{ID: 2, Kind: TaskBlur, Children: []RenderTaskID{4}},
		{ID: 3, Kind: TaskClipMask},
		{ID: 4, Kind: TaskPicture},
	}}
	passes, err := g.AssignPasses()
	require.NoError(t, err)
	assert.Equal(t, [][]RenderTaskID{{3, 4}, {2}, {1}}, passes)
}

func TestAssignPassesErrors(t *testing.T) {
	cycle := RenderTaskGraph{Tasks: []RenderTask{
		{ID: 1, Children: []RenderTaskID{2}},
		{ID: 2, Children: []RenderTaskID{1}},
	}}
	_, err := cycle.AssignPasses()
	assert.ErrorIs(t, err, ErrTaskCycle)

	missing := RenderTaskGraph{Tasks: []RenderTask{{ID: 1, Children: []RenderTaskID{7}}}}
	_, err = missing.AssignPasses()
	assert.ErrorIs(t, err, ErrUnknownTask)

	dup := RenderTaskGraph{Tasks: []RenderTask{{ID: 1}, {ID: 1}}}
	_, err = dup.AssignPasses()
	assert.Error(t, err)
}

func TestAssignPassesDeepChain(t *testing.T) {
	const n = 10000
	g := RenderTaskGraph{Tasks: make([]RenderTask, n)}
	for i := range g.Tasks {
		g.Tasks[i].ID = RenderTaskID(i)
		if i+1 < n {
			g.Tasks[i].Children = []RenderTaskID{RenderTaskID(i + 1)}
		}
	}
	passes, err := g.AssignPasses()
	require.NoError(t, err)
	require.Len(t, passes, n)
	assert.Equal(t, []RenderTaskID{n - 1}, passes[0])
	assert.Equal(t, []RenderTaskID{0}, passes[n-1])
}

func TestFrameValidateRequiresOnePictureSource(t *testing.T) {
	task := RenderTaskID(1)
	f := &Frame{
		Tasks: RenderTaskGraph{Tasks: []RenderTask{{ID: task}}},
		Passes: []RenderPass{{PictureCache: []PictureCacheTarget{{
			Batches:  &AlphaBatchContainer{},
			BlitFrom: &task,
		}}}},
	}
	assert.Error(t, f.Validate())

	f.Passes[0].PictureCache[0].Batches = nil
	assert.NoError(t, f.Validate())

	f.Passes[0].PictureCache[0].BlitFrom = nil
	assert.Error(t, f.Validate())
}
