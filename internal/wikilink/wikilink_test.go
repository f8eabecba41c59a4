package wikilink

import "testing"

func TestFindAll(t *testing.T) {
	input := "See [[Mimir]] and [[people/Odin|the Allfather]].\nAlso [[ ]] is skipped."

	matches := FindAll(input)
	if len(matches) != 2 {
		t.Fatalf("FindAll returned %d matches, want 2", len(matches))
	}

	if matches[0].Target != "Mimir" || matches[0].DisplayText != "" {
		t.Errorf("first match = %+v, want target Mimir with no display", matches[0])
	}
	if matches[0].Literal != "[[Mimir]]" {
		t.Errorf("first literal = %q", matches[0].Literal)
	}

	if matches[1].Target != "people/Odin" || matches[1].DisplayText != "the Allfather" {
		t.Errorf("second match = %+v", matches[1])
	}
	if matches[1].Text() != "the Allfather" {
		t.Errorf("Text() = %q, want display text", matches[1].Text())
	}
}

func TestFindAllNone(t *testing.T) {
	if got := FindAll("no links here [not one](either.md)"); got != nil {
		t.Fatalf("FindAll = %v, want nil", got)
	}
}

func TestParseExact(t *testing.T) {
	tests := []struct {
		in          string
		wantTarget  string
		wantDisplay string
		wantOK      bool
	}{
		{"[[Mimir]]", "Mimir", "", true},
		{"[[ Mimir ]]", "Mimir", "", true},
		{"[[Mimir|the wise]]", "Mimir", "the wise", true},
		{"[[]]", "", "", false},
		{"Mimir", "", "", false},
		{"[[Mi[mir]]", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			target, display, ok := ParseExact(tt.in)
			if ok != tt.wantOK || target != tt.wantTarget || display != tt.wantDisplay {
				t.Fatalf("ParseExact(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.in, target, display, ok, tt.wantTarget, tt.wantDisplay, tt.wantOK)
			}
		})
	}
}
