package cats

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateID_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		if len(id) != IDLength {
			t.Fatalf("expected len %d, got %d (%q)", IDLength, len(id), id)
		}
		for _, r := range id {
			if !strings.ContainsRune(IDAlphabet, r) {
				t.Fatalf("unexpected char %q in %q", r, id)
			}
		}
	}
}

func TestGenerateID_UsesWholeAlphabet(t *testing.T) {
	seen := map[rune]bool{}
	for i := 0; i < 500; i++ {
		for _, r := range GenerateID() {
			seen[r] = true
		}
	}
	for _, r := range IDAlphabet {
		if !seen[r] {
			t.Fatalf("char %q never generated in 5000 draws", r)
		}
	}
}

func TestNormalizeID(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  error
	}{
		{in: "CAT0123456", want: "CAT0123456"},
		{in: "  cat0123456 ", want: "CAT0123456"},
		{in: "ttttaaaacc", want: "TTTTAAAACC"},
		{in: "0000000000", want: "0000000000"},
		{in: "CAT012345", err: ErrInvalidID},   // 9
		{in: "CAT01234567", err: ErrInvalidID}, // 11
		{in: "DOG0123456", err: ErrInvalidID},
		{in: "CAT-123456", err: ErrInvalidID},
		{in: "CAT 123456", err: ErrInvalidID},
		{in: "", err: ErrInvalidID},
	}

	for _, tc := range cases {
		got, err := NormalizeID(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Fatalf("NormalizeID(%q): expected %v, got %v", tc.in, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NormalizeID(%q): unexpected err %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeID(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
