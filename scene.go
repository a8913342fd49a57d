package compositor

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/compositor/displaylist"
	"github.com/gogpu/compositor/render"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/translate"
)

var errNoFrame = errors.New("compositor: frame builder returned no frame")

// Transaction is one document update: the display list of a pipeline and
// the resources it needs.
type Transaction struct {
	Document resources.DocumentID
	Pipeline resources.PipelineID
	Epoch    resources.Epoch

	DisplayList displaylist.CachedDisplayList
	// HiDPI is the device pixel ratio. Zero is treated as 1.
	HiDPI float32

	// Resources are applied before the display list is translated.
	Resources []resources.ResourceUpdate

	// Notifications are queued ahead of the published frame.
	Notifications []render.NotificationRequest
}

// FrameBuilder turns a translated display list into a renderer frame and
// the texture cache changes the frame needs.
type FrameBuilder interface {
	BuildFrame(ctx context.Context, txn *Transaction, dl *displaylist.BuiltDisplayList) (*render.Frame, render.TextureUpdateList, error)
}

// FrameBuilderFunc adapts a function to FrameBuilder.
type FrameBuilderFunc func(ctx context.Context, txn *Transaction, dl *displaylist.BuiltDisplayList) (*render.Frame, render.TextureUpdateList, error)

// BuildFrame calls f.
func (f FrameBuilderFunc) BuildFrame(ctx context.Context, txn *Transaction, dl *displaylist.BuiltDisplayList) (*render.Frame, render.TextureUpdateList, error) {
	return f(ctx, txn, dl)
}

// SceneOption configures a SceneBuilder.
type SceneOption func(*SceneBuilder)

// WithConcurrency limits how many transactions are translated at once.
// The default is GOMAXPROCS.
func WithConcurrency(n int) SceneOption {
	return func(b *SceneBuilder) {
		if n > 0 {
			b.limit = n
		}
	}
}

// WithCatalog makes the builder track live resources in c instead of a
// catalog of its own.
func WithCatalog(c *resources.Catalog) SceneOption {
	return func(b *SceneBuilder) { b.catalog = c }
}

// SceneBuilder runs display list and resource translation off the render
// goroutine and posts the results to a renderer's channel.
//
// Transactions passed to one Build call are translated concurrently and
// published in order. A SceneBuilder is safe for concurrent use; calls to
// Build are serialized.
type SceneBuilder struct {
	ch      *render.Channel
	frames  FrameBuilder
	catalog *resources.Catalog
	limit   int

	mu      sync.Mutex
	publish render.PublishID
}

// NewSceneBuilder returns a builder posting to ch and building frames
// with frames.
func NewSceneBuilder(ch *render.Channel, frames FrameBuilder, opts ...SceneOption) *SceneBuilder {
	b := &SceneBuilder{ch: ch, frames: frames, limit: runtime.GOMAXPROCS(0)}
	for _, o := range opts {
		o(b)
	}
	if b.catalog == nil {
		b.catalog = resources.NewCatalog()
	}
	return b
}

// Catalog returns the live resource catalog translation checks against.
func (b *SceneBuilder) Catalog() *resources.Catalog { return b.catalog }

// LastPublished returns the id of the last published document, zero
// before the first.
func (b *SceneBuilder) LastPublished() render.PublishID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.publish
}

type builtTransaction struct {
	frame   *render.Frame
	updates render.ResourceUpdates
}

// Build applies the resource updates of txns in order, translates every
// transaction concurrently and then posts one PublishDocument per
// transaction, in order. It returns the publish id of the last transaction.
//
// Resource updates are applied to a copy of the catalog before any
// translation, so a key deleted by one transaction is gone for all of them.
// The copy replaces the catalog only once every transaction was posted.
// When a transaction fails nothing is posted and the catalog is unchanged;
// when posting stops part way, the catalog keeps the updates of the
// transactions that were posted.
func (b *SceneBuilder) Build(ctx context.Context, txns ...Transaction) (render.PublishID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := b.catalog.Clone()
	for i := range txns {
		if err := next.Apply(txns[i].Resources); err != nil {
			next.Close()
			return b.publish, fmt.Errorf("compositor: transaction %d resources: %w", i, err)
		}
	}

	built := make([]builtTransaction, len(txns))
	tr := translate.New(translate.WithResources(next))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.limit)
	for i := range txns {
		g.Go(func() error {
			bt, err := b.build(gctx, tr, &txns[i])
			if err != nil {
				return fmt.Errorf("compositor: transaction %d (document %v): %w", i, txns[i].Document, err)
			}
			built[i] = bt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		next.Close()
		return b.publish, err
	}

	for i := range txns {
		if err := b.post(ctx, &txns[i], built[i]); err != nil {
			next.Close()
			b.commitPosted(txns[:i])
			return b.publish, err
		}
	}
	b.catalog.Replace(next)
	slogger().Debug("compositor: transactions published", "count", len(txns), "last", uint64(b.publish))
	return b.publish, nil
}

func (b *SceneBuilder) post(ctx context.Context, txn *Transaction, bt builtTransaction) error {
	if n := txn.Notifications; len(n) > 0 {
		if err := b.ch.Send(ctx, render.AppendNotificationRequests{Requests: n}); err != nil {
			return err
		}
	}
	id := b.publish + 1
	err := b.ch.Send(ctx, render.PublishDocument{
		ID:       id,
		Document: txn.Document,
		Frame:    bt.frame,
		Updates:  bt.updates,
	})
	if err != nil {
		return err
	}
	b.publish = id
	return nil
}

// commitPosted applies the resource updates of the transactions the
// renderer received.
func (b *SceneBuilder) commitPosted(posted []Transaction) {
	for i := range posted {
		if err := b.catalog.Apply(posted[i].Resources); err != nil {
			slogger().Warn("compositor: catalog diverged from posted updates", "err", err)
		}
	}
}

func (b *SceneBuilder) build(ctx context.Context, tr *translate.Translator, txn *Transaction) (builtTransaction, error) {
	cmds, err := resources.TranslateUpdates(txn.Resources)
	if err != nil {
		return builtTransaction{}, err
	}
	dl, err := tr.Translate(txn.DisplayList, txn.Pipeline, txn.HiDPI)
	if err != nil {
		return builtTransaction{}, err
	}
	if err := ctx.Err(); err != nil {
		return builtTransaction{}, err
	}
	frame, textures, err := b.frames.BuildFrame(ctx, txn, dl)
	if err != nil {
		return builtTransaction{}, err
	}
	if frame == nil {
		return builtTransaction{}, errNoFrame
	}
	if frame.Epochs == nil {
		frame.Epochs = make(map[resources.PipelineID]resources.Epoch)
	}
	frame.Epochs[txn.Pipeline] = txn.Epoch
	return builtTransaction{
		frame:   frame,
		updates: render.ResourceUpdates{TextureCache: textures, Commands: cmds},
	}, nil
}
