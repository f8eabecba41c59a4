// Package cleanup removes imported objects and the types that imports left
// behind. Objects pushed to external storage carry an external reference and
// are never touched; everything else is treated as local-only import residue.
package cleanup

import (
	"context"
	"fmt"

	"github.com/avigne/trove/internal/model"
	"github.com/avigne/trove/internal/store"
)

// Options controls one revert pass.
type Options struct {
	// Batch limits the pass to objects stamped with this import batch id.
	// Empty means "every object without an external reference".
	Batch string

	// Protected lists type ids that are never deleted, even when no object
	// uses them.
	Protected []string

	// DryRun counts what would be deleted without touching the store.
	DryRun bool

	Progress model.ProgressFunc
}

// Engine runs revert passes against a store.
type Engine struct {
	store store.Store
}

// New creates an Engine.
func New(st store.Store) *Engine {
	return &Engine{store: st}
}

// Revert deletes reverted objects, then any type left without objects.
// Per-item failures accumulate in the outcome; the pass keeps going.
func (e *Engine) Revert(ctx context.Context, opts Options) *model.RevertOutcome {
	outcome := &model.RevertOutcome{}

	objects, err := e.store.ListObjects(ctx)
	if err != nil {
		outcome.Errors = append(outcome.Errors, fmt.Sprintf("object store unavailable: %v", err))
		return outcome
	}

	victims := selectVictims(objects, opts)
	for i, o := range victims {
		if err := ctx.Err(); err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("revert canceled: %v", err))
			return outcome
		}
		if !opts.DryRun {
			if err := e.store.DeleteObject(ctx, o.ID); err != nil {
				outcome.Errors = append(outcome.Errors, fmt.Sprintf("%s: %v", o.Title, err))
				continue
			}
		}
		outcome.DeletedObjects++
		opts.Progress.Report(model.Progress{
			Phase: model.PhaseDeletingObjects, Current: i + 1, Total: len(victims), Item: o.Title,
		})
	}

	e.sweepTypes(ctx, opts, outcome)

	opts.Progress.Report(model.Progress{Phase: model.PhaseDone, Current: 1, Total: 1})
	return outcome
}

// selectVictims picks the objects the pass will delete. An external
// reference always protects an object; the batch criterion narrows the rest.
func selectVictims(objects []*model.Object, opts Options) []*model.Object {
	var out []*model.Object
	for _, o := range objects {
		if o.Synced() {
			continue
		}
		if opts.Batch != "" && o.ImportBatch != opts.Batch {
			continue
		}
		out = append(out, o)
	}
	return out
}

// sweepTypes deletes every type no remaining object uses, minus the
// protected set. Usage is recomputed from the store after the object pass so
// partial failures leave their types alone.
func (e *Engine) sweepTypes(ctx context.Context, opts Options, outcome *model.RevertOutcome) {
	types, err := e.store.ListTypes(ctx)
	if err != nil {
		outcome.Errors = append(outcome.Errors, fmt.Sprintf("listing types: %v", err))
		return
	}
	counts, err := e.store.CountByType(ctx)
	if err != nil {
		outcome.Errors = append(outcome.Errors, fmt.Sprintf("counting objects: %v", err))
		return
	}
	if opts.DryRun {
		// A dry run never deleted objects, so project the counts as if the
		// selected objects were gone.
		objects, err := e.store.ListObjects(ctx)
		if err == nil {
			for _, o := range selectVictims(objects, opts) {
				counts[o.Type]--
			}
		}
	}

	protected := make(map[string]bool, len(opts.Protected))
	for _, id := range opts.Protected {
		protected[id] = true
	}

	for i, t := range types {
		if protected[t.ID] || counts[t.ID] > 0 {
			continue
		}
		if !opts.DryRun {
			if err := e.store.DeleteType(ctx, t.ID); err != nil {
				outcome.Errors = append(outcome.Errors, fmt.Sprintf("type %s: %v", t.ID, err))
				continue
			}
		}
		outcome.DeletedTypes++
		opts.Progress.Report(model.Progress{
			Phase: model.PhaseDeletingTypes, Current: i + 1, Total: len(types), Item: t.ID,
		})
	}
}
