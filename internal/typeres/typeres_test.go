package typeres

import (
	"testing"

	"github.com/avigne/trove/internal/schema"
)

func coreTypes() []*schema.ObjectType {
	return []*schema.ObjectType{
		{ID: "page", Name: "Page", NamePlural: "Pages"},
		{ID: "book", Name: "Book", NamePlural: "Books"},
		{ID: "task", Name: "Task", NamePlural: "Tasks"},
	}
}

func TestResolveAlias(t *testing.T) {
	tests := []struct {
		hint string
		want string
	}{
		{"Libros", "book"},
		{"libro", "book"},
		{"Books", "book"},
		{"BOOK", "book"},
		{"Tareas", "task"},
		{"Notes", "page"},
	}

	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			r := New(coreTypes(), nil)
			res := r.Resolve(tt.hint, "")
			if res.TypeID != tt.want || res.IsNew() {
				t.Fatalf("Resolve(%q) = %+v, want existing %q", tt.hint, res, tt.want)
			}
		})
	}
}

func TestResolveExistingByDisplayName(t *testing.T) {
	existing := append(coreTypes(), &schema.ObjectType{
		ID: "film", Name: "Película", NamePlural: "Películas",
	})
	r := New(existing, nil)

	// Accent- and plural-insensitive match against the plural display name.
	res := r.Resolve("peliculas", "")
	if res.TypeID != "movie" {
		// "peliculas" is in the alias table, which has priority.
		t.Fatalf("Resolve(peliculas) = %+v", res)
	}

	res = r.Resolve("Pelicula", "")
	if res.TypeID != "movie" {
		t.Fatalf("Resolve(Pelicula) = %+v", res)
	}
}

func TestResolveDeclaredTypePreferred(t *testing.T) {
	r := New(coreTypes(), nil)
	res := r.Resolve("Misc", "task")
	if res.TypeID != "task" || res.IsNew() {
		t.Fatalf("Resolve(Misc, task) = %+v", res)
	}
}

func TestResolveSynthesizeOnce(t *testing.T) {
	r := New(coreTypes(), nil)

	first := r.Resolve("Recetas Favoritas", "")
	if !first.IsNew() {
		t.Fatalf("first resolution should synthesize: %+v", first)
	}
	if first.TypeID != "recetas-favoritas" {
		t.Errorf("TypeID = %q", first.TypeID)
	}
	if first.NewType.Name != "Recetas Favorita" {
		t.Errorf("NewType.Name = %q, want Recetas Favorita", first.NewType.Name)
	}
	if first.NewType.Color == "" {
		t.Error("synthesized type has no color")
	}

	// 49 more documents with the same category reuse the one definition.
	for i := 0; i < 49; i++ {
		res := r.Resolve("Recetas Favoritas", "")
		if res.TypeID != first.TypeID {
			t.Fatalf("repeat resolution = %+v", res)
		}
	}
	if n := len(r.Synthesized()); n != 1 {
		t.Fatalf("Synthesized() has %d entries, want 1", n)
	}
}

func TestResolveSynthesizedColorDeterministic(t *testing.T) {
	a := New(coreTypes(), nil).Resolve("Gadgets", "").NewType.Color
	b := New(coreTypes(), nil).Resolve("Gadgets", "").NewType.Color
	if a != b {
		t.Fatalf("colors differ across runs: %q vs %q", a, b)
	}
}

func TestResolveAliasForMissingCanonicalType(t *testing.T) {
	// Empty schema: the alias still pins the canonical id, synthesizing it.
	r := New(nil, nil)
	res := r.Resolve("Libros", "")
	if res.TypeID != "book" || !res.IsNew() {
		t.Fatalf("Resolve(Libros) = %+v, want synthesized book", res)
	}
	if res.NewType.Name != "Libro" {
		t.Errorf("NewType.Name = %q, want Libro", res.NewType.Name)
	}

	// Later alias hits reuse the synthesized definition.
	again := r.Resolve("Books", "")
	if again.TypeID != "book" || again.IsNew() {
		t.Fatalf("second Resolve = %+v", again)
	}
	if len(r.Synthesized()) != 1 {
		t.Fatalf("Synthesized() = %d entries, want 1", len(r.Synthesized()))
	}
}

func TestResolveExtraAliases(t *testing.T) {
	r := New(coreTypes(), map[string]string{"Ideas": "page"})
	res := r.Resolve("Ideas", "")
	if res.TypeID != "page" || res.IsNew() {
		t.Fatalf("Resolve(Ideas) = %+v", res)
	}
}

func TestResolveNoCandidates(t *testing.T) {
	r := New(coreTypes(), nil)
	res := r.Resolve("", "")
	if res.TypeID != "page" || res.IsNew() {
		t.Fatalf("Resolve(\"\", \"\") = %+v", res)
	}
}
