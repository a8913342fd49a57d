// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"cmp"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/compositor/resources"
)

// captureVersion is written to every capture and checked on load.
const captureVersion = 1

// CaptureRequest is the payload of a DebugOutput message.
type CaptureRequest interface {
	captureRequest()
}

// SaveCapture writes the renderer's documents to Path.
type SaveCapture struct {
	Path string
}

// LoadCapture replaces the renderer's documents with a capture read from
// Path.
type LoadCapture struct {
	Path string
}

func (SaveCapture) captureRequest() {}
func (LoadCapture) captureRequest() {}

type captureFile struct {
	Version    int                `yaml:"version"`
	GPUCache   GPUCacheFrameID    `yaml:"gpu_cache_frame_id"`
	DebugFlags []string           `yaml:"debug_flags,omitempty"`
	Documents  []capturedDocument `yaml:"documents"`
}

type capturedDocument struct {
	Document resources.DocumentID `yaml:"document"`
	Publish  PublishID            `yaml:"publish"`
	Active   bool                 `yaml:"active,omitempty"`
	Frame    *Frame               `yaml:"frame"`
	Epochs   []capturedEpoch      `yaml:"epochs,omitempty"`
}

type capturedEpoch struct {
	Pipeline resources.PipelineID `yaml:"pipeline"`
	Epoch    resources.Epoch      `yaml:"epoch"`
}

func sortEpochs(e []capturedEpoch) {
	slices.SortFunc(e, func(a, b capturedEpoch) int {
		if c := cmp.Compare(a.Pipeline.Namespace, b.Pipeline.Namespace); c != 0 {
			return c
		}
		return cmp.Compare(a.Pipeline.Index, b.Pipeline.Index)
	})
}

// SaveCapture writes every published document and its pipeline epochs to
// path as YAML.
func (r *Renderer) SaveCapture(path string) error {
	f := captureFile{
		Version:    captureVersion,
		GPUCache:   r.gpuCacheID,
		DebugFlags: r.opts.DebugFlags.Names(),
	}
	for _, d := range r.sortedDocs() {
		cd := capturedDocument{Document: d.id, Publish: d.publish, Active: d == r.active, Frame: d.frame}
		for k, e := range r.epochs {
			if k.doc == d.id {
				cd.Epochs = append(cd.Epochs, capturedEpoch{Pipeline: k.pipeline, Epoch: e})
			}
		}
		sortEpochs(cd.Epochs)
		f.Documents = append(f.Documents, cd)
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return &RendererError{Kind: ErrorIO, Op: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &RendererError{Kind: ErrorIO, Op: path, Err: err}
	}
	slogger().Info("render: capture saved", "path", path, "documents", len(f.Documents))
	return nil
}

// LoadCapture replaces the renderer's documents with those saved in path.
// Loaded frames are drawn again in full.
func (r *Renderer) LoadCapture(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &RendererError{Kind: ErrorIO, Op: path, Err: err}
	}
	var f captureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return &RendererError{Kind: ErrorIO, Op: path, Err: err}
	}
	if f.Version != captureVersion {
		return &RendererError{Kind: ErrorIO, Op: path, Err: fmt.Errorf("capture version %d, want %d", f.Version, captureVersion)}
	}
	flags, err := ParseDebugFlags(f.DebugFlags)
	if err != nil {
		return &RendererError{Kind: ErrorIO, Op: path, Err: err}
	}

	for _, d := range r.docs {
		if d.frame != nil {
			r.dropFrame(d.frame)
		}
	}
	r.docs = make(map[resources.DocumentID]*document, len(f.Documents))
	r.active = nil
	clear(r.epochs)
	r.gpuCacheID = max(r.gpuCacheID, f.GPUCache)
	r.setDebugFlags(flags)

	for _, cd := range f.Documents {
		if cd.Frame == nil {
			continue
		}
		cd.Frame.HasBeenRendered = false
		doc := &document{id: cd.Document, publish: cd.Publish, frame: cd.Frame}
		r.docs[cd.Document] = doc
		for _, e := range cd.Epochs {
			r.epochs[epochKey{cd.Document, e.Pipeline}] = e.Epoch
		}
		if cd.Active || r.active == nil {
			r.active = doc
		}
	}
	r.forceRedraw = true
	r.damage.Reset()
	slogger().Info("render: capture loaded", "path", path, "documents", len(r.docs))
	return nil
}
