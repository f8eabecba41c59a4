package dates

import "testing"

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2025-01-15", true},
		{"2025-02-29", false}, // not a leap year
		{"2024-02-29", true},
		{"2025-13-01", false},
		{"2025-1-5", false},
		{"not a date", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidDate(tt.in); got != tt.want {
				t.Fatalf("IsValidDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLooksLikeDate(t *testing.T) {
	// Shape only: calendar-invalid dates still look like dates.
	if !LooksLikeDate("2025-02-31") {
		t.Fatal("LooksLikeDate(2025-02-31) = false, want true")
	}
	if LooksLikeDate("2025/01/01") {
		t.Fatal("LooksLikeDate(2025/01/01) = true, want false")
	}
}

func TestParseDatetime(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"2025-01-01T10:30:00Z", true},
		{"2025-06-15T14:00:00+05:00", true},
		{"2025-01-01T10:30", true},
		{"2025-01-01T10:30:45", true},
		{"2025-01-01", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseDatetime(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("ParseDatetime(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			}
		})
	}
}
