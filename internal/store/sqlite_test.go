package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avigne/trove/internal/model"
	"github.com/avigne/trove/internal/schema"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestTypeRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	typ := &schema.ObjectType{
		ID:         "book",
		Name:       "Book",
		NamePlural: "Books",
		Icon:       "📚",
		Color:      "#6B9BE8",
		Properties: []*schema.PropertyDefinition{
			{ID: "author", Name: "Author", Kind: schema.KindText},
		},
	}
	if err := db.SaveType(ctx, typ); err != nil {
		t.Fatalf("SaveType: %v", err)
	}

	got, err := db.GetType(ctx, "book")
	if err != nil {
		t.Fatalf("GetType: %v", err)
	}
	if got.Name != "Book" || len(got.Properties) != 1 || got.Properties[0].Kind != schema.KindText {
		t.Fatalf("got = %+v", got)
	}

	// Saving again with a new property replaces the definition.
	typ.Properties = append(typ.Properties, &schema.PropertyDefinition{
		ID: "rating", Name: "Rating", Kind: schema.KindRating,
	})
	if err := db.SaveType(ctx, typ); err != nil {
		t.Fatalf("SaveType update: %v", err)
	}
	got, _ = db.GetType(ctx, "book")
	if len(got.Properties) != 2 {
		t.Fatalf("properties after update = %d, want 2", len(got.Properties))
	}

	if _, err := db.GetType(ctx, "nope"); !errors.Is(err, ErrTypeNotFound) {
		t.Fatalf("GetType(nope) err = %v", err)
	}
}

func TestObjectRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	obj := &model.Object{
		ID:    "obj-1",
		Type:  "book",
		Title: "Dune",
		Body:  `<h1>Dune</h1>`,
		Properties: map[string]schema.Value{
			"author": schema.Text("Frank Herbert"),
			"rating": schema.Number(5),
			"genres": schema.StringList([]string{"sci-fi"}),
		},
		Tags:         []string{"classic"},
		OutboundRefs: []string{"obj-2"},
		ImportBatch:  "batch-1",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.CreateObject(ctx, obj); err != nil {
		t.Fatalf("CreateObject: %v", err)
	}

	got, err := db.GetObject(ctx, "obj-1")
	if err != nil {
		t.Fatalf("GetObject: %v", err)
	}
	if got.Title != "Dune" || got.Type != "book" || got.ImportBatch != "batch-1" {
		t.Fatalf("got = %+v", got)
	}
	if s, _ := got.Properties["author"].AsString(); s != "Frank Herbert" {
		t.Errorf("author = %v", got.Properties["author"].Raw())
	}
	if n, _ := got.Properties["rating"].AsNumber(); n != 5 {
		t.Errorf("rating = %v", got.Properties["rating"].Raw())
	}
	if l, _ := got.Properties["genres"].AsStringList(); len(l) != 1 || l[0] != "sci-fi" {
		t.Errorf("genres = %v", got.Properties["genres"].Raw())
	}
	if got.Synced() {
		t.Error("object with no external ref reported synced")
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, now)
	}

	if err := db.CreateObject(ctx, obj); !errors.Is(err, ErrObjectExists) {
		t.Fatalf("duplicate create err = %v", err)
	}

	obj.Title = "Dune (1965)"
	obj.ExternalRef = "ext-123"
	obj.UpdatedAt = now.Add(time.Minute)
	if err := db.UpdateObject(ctx, obj); err != nil {
		t.Fatalf("UpdateObject: %v", err)
	}
	got, _ = db.GetObject(ctx, "obj-1")
	if got.Title != "Dune (1965)" || !got.Synced() {
		t.Fatalf("after update: %+v", got)
	}

	if err := db.DeleteObject(ctx, "obj-1"); err != nil {
		t.Fatalf("DeleteObject: %v", err)
	}
	if _, err := db.GetObject(ctx, "obj-1"); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("GetObject after delete err = %v", err)
	}
	if err := db.DeleteObject(ctx, "obj-1"); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("double delete err = %v", err)
	}
}

func TestListAndCount(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now()

	for _, o := range []*model.Object{
		{ID: "a", Type: "book", Title: "A", CreatedAt: now, UpdatedAt: now},
		{ID: "b", Type: "book", Title: "B", CreatedAt: now, UpdatedAt: now},
		{ID: "c", Type: "task", Title: "C", CreatedAt: now, UpdatedAt: now},
	} {
		if err := db.CreateObject(ctx, o); err != nil {
			t.Fatalf("CreateObject(%s): %v", o.ID, err)
		}
	}

	objects, err := db.ListObjects(ctx)
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if len(objects) != 3 {
		t.Fatalf("ListObjects = %d entries", len(objects))
	}

	counts, err := db.CountByType(ctx)
	if err != nil {
		t.Fatalf("CountByType: %v", err)
	}
	if counts["book"] != 2 || counts["task"] != 1 {
		t.Fatalf("counts = %v", counts)
	}
}
