package dice

import (
	"testing"
)

func TestRollBasic(t *testing.T) {
	r := NewCrypto()

	res, err := r.Roll("3d6")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(res.Rolls) != 3 {
		t.Fatalf("expected 3 raw rolls, got %d", len(res.Rolls))
	}

	for _, v := range res.Rolls {
		if v < 1 || v > 6 {
			t.Errorf("roll out of bounds for d6: %d", v)
		}
	}
	if res.Total < 3 || res.Total > 18 {
		t.Errorf("total %d outside [3,18]", res.Total)
	}
}

func TestRollBounds(t *testing.T) {
	r := NewCrypto()
	cases := []struct {
		notation string
		min, max int
	}{
		{"1d4", 1, 4},
		{"5d4", 5, 20},
		{"2d6+3", 5, 15},
		{"1d20", 1, 20},
		{"4d6-2", 2, 22},
	}
	for _, tc := range cases {
		for i := 0; i < 50; i++ {
			res, err := r.Roll(tc.notation)
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.notation, err)
			}
			if res.Total < tc.min || res.Total > tc.max {
				t.Fatalf("%s: total %d outside [%d,%d]", tc.notation, res.Total, tc.min, tc.max)
			}
		}
	}
}

func TestRollMock(t *testing.T) {
	r := New(NewMockSource(4, 4, 4, 4, 4))

	res, err := r.Roll("5d4")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Total != 20 {
		t.Errorf("expected mocked total 20, got %d", res.Total)
	}
}

func TestRollModifier(t *testing.T) {
	r := New(NewMockSource(1))

	res, err := r.Roll("1d1+5")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Total != 6 {
		t.Errorf("expected total 6 (1 + 5), got %d", res.Total)
	}
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{"", "abc", "d", "2x6", "1d0", "d+3"} {
		if _, _, _, err := Parse(bad); err == nil {
			t.Errorf("expected parse error for %q", bad)
		}
	}
}

func TestParseImplicitCount(t *testing.T) {
	count, sides, mod, err := Parse("d8")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 1 || sides != 8 || mod != 0 {
		t.Errorf("expected (1,8,0), got (%d,%d,%d)", count, sides, mod)
	}
}

func TestTotalSwallowsBadNotation(t *testing.T) {
	r := NewCrypto()
	if got := r.Total("not-dice"); got != 0 {
		t.Errorf("expected 0 for malformed notation, got %d", got)
	}
}
