package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avigne/trove/internal/hashtag"
	"github.com/avigne/trove/internal/model"
	"github.com/avigne/trove/internal/parser"
	"github.com/avigne/trove/internal/props"
	"github.com/avigne/trove/internal/schema"
	"github.com/avigne/trove/internal/typeres"
)

func matchKey(typeID, title string) string {
	return typeID + "\x00" + strings.ToLower(title)
}

// reconcile turns one parsed document into a store mutation according to the
// run's conflict policy. Per-document failures degrade to warnings.
func (imp *Importer) reconcile(ctx context.Context, run *runState, doc *parser.Document, res typeres.Resolution) {
	typ := run.typesByID[res.TypeID]
	if typ == nil {
		// The type failed to persist earlier in the run; the error is
		// already recorded, so just skip the document.
		run.outcome.Skip(doc.Title, "type unavailable")
		return
	}

	incoming := imp.buildObject(ctx, run, doc, typ)

	match := run.existing[matchKey(typ.ID, doc.Title)]
	if match == nil {
		imp.create(ctx, run, doc, incoming)
		return
	}

	switch run.opts.Conflicts {
	case ConflictSkip:
		run.outcome.Skip(doc.Title, fmt.Sprintf("%s %q already exists", typ.Name, doc.Title))
		run.registerAliases(doc, match.ID)

	case ConflictMerge:
		mergeInto(match, incoming)
		imp.update(ctx, run, doc, match)

	case ConflictOverwrite:
		incoming.ID = match.ID
		incoming.CreatedAt = match.CreatedAt
		incoming.ExternalRef = match.ExternalRef
		run.existing[matchKey(incoming.Type, incoming.Title)] = incoming
		imp.update(ctx, run, doc, incoming)

	case ConflictDuplicate:
		incoming.Title = doc.Title + DuplicateSuffix
		imp.create(ctx, run, doc, incoming)

	default:
		run.outcome.Skip(doc.Title, fmt.Sprintf("%s %q already exists", typ.Name, doc.Title))
		run.registerAliases(doc, match.ID)
	}
}

// buildObject extracts properties and assembles the candidate object for a
// document. New property definitions are appended to the type and persisted
// immediately so later documents in the run see them.
func (imp *Importer) buildObject(ctx context.Context, run *runState, doc *parser.Document, typ *schema.ObjectType) *model.Object {
	extracted := props.Extract(doc.Meta, typ)

	dirty := false
	for _, def := range extracted.NewProperties {
		if typ.AddProperty(def) {
			dirty = true
		}
	}
	if dirty {
		if err := imp.store.SaveType(ctx, typ); err != nil {
			run.outcome.Warn(fmt.Sprintf("%s: failed to save type %s: %v", doc.Title, typ.ID, err))
		}
	}

	tags := doc.Tags
	if run.opts.Hashtags == HashtagTags {
		tags = unionTags(tags, hashtag.Distinct(doc.BodyMarkdown))
	}

	now := time.Now().UTC()
	return &model.Object{
		ID:          uuid.NewString(),
		Type:        typ.ID,
		Title:       doc.Title,
		Body:        doc.BodyHTML,
		Properties:  extracted.Values,
		Tags:        tags,
		ImportBatch: run.batch,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (imp *Importer) create(ctx context.Context, run *runState, doc *parser.Document, o *model.Object) {
	if err := imp.store.CreateObject(ctx, o); err != nil {
		run.outcome.Warn(fmt.Sprintf("%s: failed to create object: %v", doc.Title, err))
		return
	}
	run.outcome.Created++
	run.existing[matchKey(o.Type, o.Title)] = o
	run.registerAliases(doc, o.ID)
	run.rc.RegisterTitle(o.ID, o.Title)
	if run.needsRewrite(doc) {
		run.rc.Touch(o)
	}
}

func (imp *Importer) update(ctx context.Context, run *runState, doc *parser.Document, o *model.Object) {
	o.ImportBatch = run.batch
	o.UpdatedAt = time.Now().UTC()
	if err := imp.store.UpdateObject(ctx, o); err != nil {
		run.outcome.Warn(fmt.Sprintf("%s: failed to update object: %v", doc.Title, err))
		return
	}
	run.outcome.Updated++
	run.registerAliases(doc, o.ID)
	if run.needsRewrite(doc) {
		run.rc.Touch(o)
	}
}

// needsRewrite reports whether a document's object must go through the link
// pass. Documents without references keep the body persisted at create time.
func (run *runState) needsRewrite(doc *parser.Document) bool {
	if len(doc.RawRefs) > 0 {
		return true
	}
	return run.opts.Hashtags == HashtagMentions && len(hashtag.Distinct(doc.BodyMarkdown)) > 0
}

// mergeInto folds the incoming object into the stored one: the incoming body
// wins, tags are unioned, and incoming property values overwrite existing
// keys while leaving the rest in place.
func mergeInto(dst, src *model.Object) {
	dst.Body = src.Body
	dst.Tags = unionTags(dst.Tags, src.Tags)
	if dst.Properties == nil {
		dst.Properties = make(map[string]schema.Value, len(src.Properties))
	}
	for k, v := range src.Properties {
		dst.Properties[k] = v
	}
}

// unionTags appends the extra tags not already present, case-insensitively,
// preserving the order of first appearance.
func unionTags(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	seen := make(map[string]bool, len(base))
	for _, t := range base {
		seen[strings.ToLower(t)] = true
	}
	out := base
	for _, t := range extra {
		key := strings.ToLower(t)
		if !seen[key] {
			seen[key] = true
			out = append(out, t)
		}
	}
	return out
}

// registerAliases records every name a later document could use to reference
// this one: the bare file name, the declared title, and the category-scoped
// path. First registration wins, matching the deterministic-order rule for
// colliding names.
func (run *runState) registerAliases(doc *parser.Document, id string) {
	run.rc.Register(id, doc.BaseName, doc.Title)
	if doc.CategoryHint != "" {
		run.rc.Register(id, doc.CategoryHint+"/"+doc.BaseName)
	}
	if cleaned := CleanTarget(doc.Path); cleaned != "" {
		run.rc.Register(id, cleaned)
	}
}
