package hashtag

import (
	"reflect"
	"testing"
)

func TestFindAll(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		wants []string
	}{
		{"simple", "working on #trove today", []string{"trove"}},
		{"start of text", "#inbox first thing", []string{"inbox"}},
		{"several", "#go and #knowledge-bases and #go", []string{"go", "knowledge-bases", "go"}},
		{"heading not a tag", "# Heading\nbody #real", []string{"real"}},
		{"url fragment not a tag", "see page#section and x #yes", []string{"yes"}},
		{"digits lead is not a tag", "#1 is skipped, #v2 is not", []string{"v2"}},
		{"none", "plain text", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, m := range FindAll(tt.in) {
				got = append(got, m.Name)
			}
			if !reflect.DeepEqual(got, tt.wants) {
				t.Fatalf("FindAll(%q) names = %v, want %v", tt.in, got, tt.wants)
			}
		})
	}
}

func TestFindAllOffsets(t *testing.T) {
	in := "a #tag here"
	matches := FindAll(in)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m := matches[0]
	if m.Literal != "#tag" || in[m.Start:m.End] != "#tag" {
		t.Fatalf("match = %+v, want literal #tag at [2,6)", m)
	}
}

func TestDistinct(t *testing.T) {
	got := Distinct("#a #b #a #c")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Distinct = %v, want %v", got, want)
	}
}
