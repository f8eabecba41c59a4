package slugs

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Book", "book"},
		{"My Reading List", "my-reading-list"},
		{"Clásicos", "clasicos"},
		{"Special: Characters!", "special-characters"},
		{"UPPER CASE", "upper-case"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slug(tt.in); got != tt.want {
				t.Fatalf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Books", "book"},
		{"book", "book"},
		{"Libros", "libro"},
		{"Boxes", "box"},
		{"  Projects ", "project"},
		{"Películas", "pelicula"},
		// The plural strip is unconditional; s-final singulars lose the s.
		{"Atlas", "atla"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripPlural(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"books", "book"},
		{"boxes", "box"},
		{"notes", "not"}, // "-es" is checked before "-s"
		{"s", "s"},
		{"es", "e"},
	}

	for _, tt := range tests {
		if got := StripPlural(tt.in); got != tt.want {
			t.Fatalf("StripPlural(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
