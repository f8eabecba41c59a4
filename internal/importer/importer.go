package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avigne/trove/internal/archive"
	"github.com/avigne/trove/internal/extsync"
	"github.com/avigne/trove/internal/model"
	"github.com/avigne/trove/internal/parser"
	"github.com/avigne/trove/internal/schema"
	"github.com/avigne/trove/internal/store"
	"github.com/avigne/trove/internal/typeres"
)

// TagTypeID is the designated type for objects promoted from hashtags.
const TagTypeID = "tag"

// DuplicateSuffix marks titles created under the duplicate conflict policy
// when an object with the incoming title already exists.
const DuplicateSuffix = " (imported)"

// Importer runs import passes against a store. One Importer may run many
// passes, but callers must serialize them: the run-scoped state is owned by
// a single run at a time.
type Importer struct {
	store  store.Store
	syncer extsync.Syncer // nil disables the media side-path

	mediaDone chan struct{}
}

// New creates an Importer. syncer may be nil; media import is then skipped.
func New(st store.Store, syncer extsync.Syncer) *Importer {
	return &Importer{store: st, syncer: syncer}
}

// Run imports an archive. It always returns a populated outcome; only
// run-fatal conditions appear in outcome.Errors, and a non-empty warning
// list does not mean the run failed.
func (imp *Importer) Run(ctx context.Context, archiveData []byte, opts Options) *model.ImportOutcome {
	outcome := &model.ImportOutcome{
		BatchID: uuid.NewString(),
		Started: time.Now().UTC(),
	}

	// Phase 1: extract and classify the archive.
	opts.Progress.Report(model.Progress{Phase: model.PhaseExtracting, Current: 0, Total: 1})
	ex, err := archive.Extract(archiveData)
	if err != nil {
		outcome.Fail(err.Error())
		return outcome
	}
	outcome.Warnings = append(outcome.Warnings, ex.Warnings...)
	opts.Progress.Report(model.Progress{Phase: model.PhaseExtracting, Current: 1, Total: 1})

	if len(ex.Documents) == 0 {
		outcome.Fail("archive contains no importable documents")
		return outcome
	}

	// Phase 2: parse every document.
	docs := make([]*parser.Document, 0, len(ex.Documents))
	for i, entry := range ex.Documents {
		if err := ctx.Err(); err != nil {
			outcome.Fail(fmt.Sprintf("import canceled: %v", err))
			return outcome
		}
		doc, warnings := parser.Parse(entry)
		outcome.Warnings = append(outcome.Warnings, warnings...)
		docs = append(docs, doc)
		opts.Progress.Report(model.Progress{
			Phase: model.PhaseParsing, Current: i + 1, Total: len(ex.Documents), Item: entry.Path,
		})
	}

	// Snapshot the live schema and object graph. The run treats these as
	// read-only apart from its own appends.
	types, err := imp.store.ListTypes(ctx)
	if err != nil {
		outcome.Fail(fmt.Sprintf("object store unavailable: %v", err))
		return outcome
	}
	objects, err := imp.store.ListObjects(ctx)
	if err != nil {
		outcome.Fail(fmt.Sprintf("object store unavailable: %v", err))
		return outcome
	}

	run := newRunState(outcome, opts, types, objects)

	// Phase 3: resolve every document's type, then persist the new ones.
	resolutions := make([]typeres.Resolution, len(docs))
	for i, doc := range docs {
		resolutions[i] = run.resolver.Resolve(doc.CategoryHint, doc.DeclaredType)
		opts.Progress.Report(model.Progress{
			Phase: model.PhaseTypes, Current: i + 1, Total: len(docs), Item: doc.Title,
		})
	}
	for _, t := range run.resolver.Synthesized() {
		if err := imp.store.SaveType(ctx, t); err != nil {
			// Documents of this type are skipped during reconciliation.
			outcome.Fail(fmt.Sprintf("failed to save type %s: %v", t.ID, err))
			continue
		}
		run.typesByID[t.ID] = t
		outcome.NewTypes = append(outcome.NewTypes, t)
	}

	// Hashtag promotion runs to completion before any body is rewritten,
	// so every hashtag target is resolvable in the link pass.
	if opts.Hashtags == HashtagMentions {
		imp.promoteHashtags(ctx, run, docs)
	}

	// Phase 4: reconcile each document against the existing object set.
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			outcome.Fail(fmt.Sprintf("import canceled: %v", err))
			return outcome
		}
		imp.reconcile(ctx, run, doc, resolutions[i])
		opts.Progress.Report(model.Progress{
			Phase: model.PhaseObjects, Current: i + 1, Total: len(docs), Item: doc.Title,
		})
	}

	// Phase 5: rewrite references now that the alias map is complete.
	snap := run.rc.Finalize()
	touched := run.rc.Touched()
	for i, o := range touched {
		if err := ctx.Err(); err != nil {
			outcome.Fail(fmt.Sprintf("import canceled: %v", err))
			return outcome
		}
		imp.rewriteObject(ctx, o, snap, opts, outcome)
		opts.Progress.Report(model.Progress{
			Phase: model.PhaseLinks, Current: i + 1, Total: len(touched), Item: o.Title,
		})
	}

	// Phase 6: media upload is fire-and-forget; object import never blocks
	// on it. WaitMedia is available for callers that want completion.
	if opts.ImportMedia && imp.syncer != nil && len(ex.Media) > 0 {
		opts.Progress.Report(model.Progress{Phase: model.PhaseMedia, Current: 0, Total: len(ex.Media)})
		imp.mediaDone = make(chan struct{})
		go imp.uploadMedia(ctx, ex.Media)
	}

	opts.Progress.Report(model.Progress{Phase: model.PhaseComplete, Current: 1, Total: 1})
	return outcome
}

// WaitMedia blocks until the last run's media uploads finish. Returns
// immediately if no upload is in flight.
func (imp *Importer) WaitMedia() {
	if imp.mediaDone != nil {
		<-imp.mediaDone
	}
}

func (imp *Importer) uploadMedia(ctx context.Context, media map[string][]byte) {
	defer close(imp.mediaDone)
	for name, data := range media {
		// Failures are tolerated: media is best-effort relative to the
		// object pipeline.
		_, _ = imp.syncer.UploadMedia(ctx, name, data)
	}
}

func (imp *Importer) rewriteObject(ctx context.Context, o *model.Object, snap *Snapshot, opts Options, outcome *model.ImportOutcome) {
	res := RewriteBody(o.Body, snap, opts.Hashtags == HashtagMentions)
	if res.Unresolved > 0 {
		outcome.Warn(fmt.Sprintf("%s: %d unresolved reference(s)", o.Title, res.Unresolved))
	}

	o.Body = res.Body
	o.OutboundRefs = res.Outbound
	o.UpdatedAt = time.Now().UTC()
	if err := imp.store.UpdateObject(ctx, o); err != nil {
		outcome.Warn(fmt.Sprintf("%s: failed to persist rewritten body: %v", o.Title, err))
	}
}

// runState bundles the mutable state owned by one run.
type runState struct {
	outcome   *model.ImportOutcome
	opts      Options
	rc        *RunContext
	resolver  *typeres.Resolver
	typesByID map[string]*schema.ObjectType
	batch     string

	// existing indexes the matchable object set by (type, lower title);
	// objects created this run are appended so later documents see them.
	existing map[string]*model.Object
}

func newRunState(outcome *model.ImportOutcome, opts Options, types []*schema.ObjectType, objects []*model.Object) *runState {
	run := &runState{
		outcome:   outcome,
		opts:      opts,
		rc:        NewRunContext(),
		resolver:  typeres.New(types, opts.ExtraAliases),
		typesByID: make(map[string]*schema.ObjectType, len(types)),
		batch:     outcome.BatchID,
		existing:  make(map[string]*model.Object, len(objects)),
	}
	for _, t := range types {
		run.typesByID[t.ID] = t
	}
	for _, o := range objects {
		run.existing[matchKey(o.Type, o.Title)] = o
		run.rc.RegisterTitle(o.ID, o.Title)
	}
	return run
}
