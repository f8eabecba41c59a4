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
	"github.com/avigne/trove/internal/schema"
)

// promoteHashtags runs before any body is rewritten. Every distinct hashtag
// across the archive becomes an object of the tag type, reusing an existing
// one when a case-insensitive title match exists, so that the link pass can
// resolve every mention.
func (imp *Importer) promoteHashtags(ctx context.Context, run *runState, docs []*parser.Document) {
	names := collectHashtags(docs)
	if len(names) == 0 {
		return
	}

	if err := imp.ensureTagType(ctx, run); err != nil {
		run.outcome.Fail(fmt.Sprintf("failed to save type %s: %v", TagTypeID, err))
		return
	}

	for _, name := range names {
		if existing := run.existing[matchKey(TagTypeID, name)]; existing != nil {
			run.rc.RegisterTag(name, existing.ID)
			continue
		}

		now := time.Now().UTC()
		o := &model.Object{
			ID:          uuid.NewString(),
			Type:        TagTypeID,
			Title:       name,
			ImportBatch: run.batch,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := imp.store.CreateObject(ctx, o); err != nil {
			run.outcome.Warn(fmt.Sprintf("#%s: failed to create tag object: %v", name, err))
			continue
		}
		run.outcome.Created++
		run.existing[matchKey(TagTypeID, name)] = o
		run.rc.RegisterTag(name, o.ID)
		run.rc.RegisterTitle(o.ID, name)
	}
}

// ensureTagType makes the tag type available, synthesizing it on first use.
func (imp *Importer) ensureTagType(ctx context.Context, run *runState) error {
	if run.typesByID[TagTypeID] != nil {
		return nil
	}
	t := &schema.ObjectType{
		ID:         TagTypeID,
		Name:       "Tag",
		NamePlural: "Tags",
		Icon:       "🏷️",
		Color:      schema.ColorFor(TagTypeID),
	}
	if err := imp.store.SaveType(ctx, t); err != nil {
		return err
	}
	run.typesByID[TagTypeID] = t
	run.outcome.NewTypes = append(run.outcome.NewTypes, t)
	return nil
}

// collectHashtags gathers the distinct hashtag names across all document
// bodies, case-insensitively, keeping the first-seen casing.
func collectHashtags(docs []*parser.Document) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, doc := range docs {
		for _, name := range hashtag.Distinct(doc.BodyMarkdown) {
			key := strings.ToLower(name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
