package schema

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPropertyLookup(t *testing.T) {
	typ := &ObjectType{
		ID:   "book",
		Name: "Book",
		Properties: []*PropertyDefinition{
			{ID: "author", Name: "Author", Kind: KindText},
			{ID: "rating", Name: "My Rating", Kind: KindRating},
		},
	}

	if p := typ.Property("author"); p == nil || p.Kind != KindText {
		t.Fatalf("Property(author) = %+v", p)
	}
	if p := typ.Property("missing"); p != nil {
		t.Fatalf("Property(missing) = %+v, want nil", p)
	}
	if p := typ.PropertyByName("MY RATING"); p == nil || p.ID != "rating" {
		t.Fatalf("PropertyByName(MY RATING) = %+v", p)
	}
	if p := typ.PropertyByName("Author"); p == nil || p.ID != "author" {
		t.Fatalf("PropertyByName(Author) = %+v", p)
	}
}

func TestAddPropertyDedup(t *testing.T) {
	typ := &ObjectType{ID: "task", Name: "Task"}

	if !typ.AddProperty(&PropertyDefinition{ID: "due", Name: "Due", Kind: KindDate}) {
		t.Fatal("first AddProperty returned false")
	}
	if typ.AddProperty(&PropertyDefinition{ID: "due", Name: "Due date", Kind: KindText}) {
		t.Fatal("duplicate AddProperty returned true")
	}
	if len(typ.Properties) != 1 {
		t.Fatalf("len(Properties) = %d, want 1", len(typ.Properties))
	}
}

func TestValueJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    Value
	}{
		{"text", Text("hello")},
		{"number", Number(42.5)},
		{"bool", Bool(true)},
		{"list", StringList([]string{"a", "b"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var got Value
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(got.Raw(), tt.v.Raw()) {
				t.Fatalf("round trip = %#v, want %#v", got.Raw(), tt.v.Raw())
			}
		})
	}
}

func TestColorForDeterministic(t *testing.T) {
	a := ColorFor("recipe")
	b := ColorFor("recipe")
	if a != b {
		t.Fatalf("ColorFor not deterministic: %q vs %q", a, b)
	}
	if a == "" || a[0] != '#' {
		t.Fatalf("ColorFor returned %q, want hex color", a)
	}
}
