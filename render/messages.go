// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"sync"

	"github.com/gogpu/compositor/resources"
)

// PublishID orders published documents.
type PublishID uint64

// Message is sent from the client to the renderer. The set is closed.
type Message interface {
	message()
}

// PublishPipelineInfo reports the epochs of a document's pipelines.
type PublishPipelineInfo struct {
	Document resources.DocumentID
	Epochs   map[resources.PipelineID]resources.Epoch
	Removed  []resources.PipelineID
}

// PublishDocument replaces the frame of a document.
type PublishDocument struct {
	ID       PublishID
	Document resources.DocumentID
	Frame    *Frame
	Updates  ResourceUpdates
}

// UpdateGPUCache applies GPU cache updates up to ID.
type UpdateGPUCache struct {
	ID   GPUCacheFrameID
	Data []float32
}

// UpdateResources applies resource updates outside of a frame.
// MemoryPressure asks the renderer to drop what it can.
type UpdateResources struct {
	Updates        ResourceUpdates
	MemoryPressure bool
}

// AppendNotificationRequests queues callbacks for frame checkpoints.
type AppendNotificationRequests struct {
	Requests []NotificationRequest
}

// ForceRedraw makes the next frame present the whole framebuffer.
type ForceRedraw struct{}

// RefreshShader recompiles the shader read from Path.
type RefreshShader struct {
	Path string
}

// SetParameter changes a renderer parameter.
type SetParameter struct {
	Param Parameter
	Value bool
}

// SetDebugFlags replaces the debug flags.
type SetDebugFlags struct {
	Flags DebugFlags
}

// DebugOutput asks the renderer to save or load a capture.
type DebugOutput struct {
	Request CaptureRequest
}

// DebugCommandKind selects a DebugCommand.
type DebugCommandKind uint8

// DebugCommandKind values.
const (
	// DebugClearCaches drops the damage history and redraws everything.
	DebugClearCaches DebugCommandKind = iota
	// DebugLogState logs the renderer's documents and caches.
	DebugLogState
)

// DebugCommand runs a debugging action.
type DebugCommand struct {
	Kind DebugCommandKind
}

func (PublishPipelineInfo) message()        {}
func (PublishDocument) message()            {}
func (UpdateGPUCache) message()             {}
func (UpdateResources) message()            {}
func (AppendNotificationRequests) message() {}
func (ForceRedraw) message()                {}
func (RefreshShader) message()              {}
func (SetParameter) message()               {}
func (SetDebugFlags) message()              {}
func (DebugOutput) message()                {}
func (DebugCommand) message()               {}

// Checkpoint is a point in a frame's life a notification can wait for.
type Checkpoint uint8

// Checkpoint values.
const (
	CheckpointFrameBuilt Checkpoint = iota
	CheckpointFrameTexturesUpdated
	CheckpointFrameRendered
	// CheckpointTransactionDropped is reported to requests whose frame
	// never reached their checkpoint.
	CheckpointTransactionDropped
)

func (c Checkpoint) String() string {
	switch c {
	case CheckpointFrameBuilt:
		return "frame-built"
	case CheckpointFrameTexturesUpdated:
		return "frame-textures-updated"
	case CheckpointFrameRendered:
		return "frame-rendered"
	case CheckpointTransactionDropped:
		return "transaction-dropped"
	}
	return "checkpoint(?)"
}

// NotificationRequest calls Notify once Document's next frame reaches When.
type NotificationRequest struct {
	Document resources.DocumentID
	When     Checkpoint
	Notify   func(Checkpoint)
}

// Channel is the bounded client to renderer message queue. Send blocks
// while the queue is full, which is the only backpressure the renderer
// applies. A Channel is safe for concurrent use.
type Channel struct {
	ch   chan Message
	done chan struct{}
	once sync.Once
}

// NewChannel returns a channel holding up to capacity messages.
func NewChannel(capacity int) *Channel {
	if capacity <= 0 {
		capacity = 1
	}
	return &Channel{ch: make(chan Message, capacity), done: make(chan struct{})}
}

// Send queues m, waiting for room until ctx is done or the channel closes.
func (c *Channel) Send(ctx context.Context, m Message) error {
	select {
	case <-c.done:
		return ErrChannelClosed
	default:
	}
	select {
	case c.ch <- m:
		return nil
	case <-c.done:
		return ErrChannelClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySend queues m if there is room and reports whether it did.
func (c *Channel) TrySend(m Message) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.ch <- m:
		return true
	default:
		return false
	}
}

// Len returns the number of queued messages.
func (c *Channel) Len() int { return len(c.ch) }

// Close stops the channel accepting messages. Queued ones can still be
// drained.
func (c *Channel) Close() {
	c.once.Do(func() { close(c.done) })
}

// drain returns every queued message without blocking.
func (c *Channel) drain(dst []Message) []Message {
	for {
		select {
		case m := <-c.ch:
			dst = append(dst, m)
		default:
			return dst
		}
	}
}
