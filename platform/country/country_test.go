package country

import "testing"

func TestISO2Aliases(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Ivory Coast", "CI"},
		{"ivory coast", "CI"},
		{"Cote d'Ivoire", "CI"},
		{"USA", "US"},
		{"United  States", "US"},
		{"uk", "GB"},
		{"Russia", "RU"},
	}

	for _, c := range cases {
		if got := ISO2(c.name); got != c.want {
			t.Fatalf("ISO2(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestISO2Canonical(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Netherlands", "NL"},
		{"Germany", "DE"},
		{"Turkey", "TR"},
	}

	for _, c := range cases {
		if got := ISO2(c.name); got != c.want {
			t.Fatalf("ISO2(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestISO2StripsParentheticals(t *testing.T) {
	if got := ISO2("United States (toll-free range)"); got != "US" {
		t.Fatalf("ISO2 with parenthetical = %q, want US", got)
	}
}

func TestISO2Unknown(t *testing.T) {
	if got := ISO2("Atlantis"); got != "" {
		t.Fatalf("ISO2(Atlantis) = %q, want empty", got)
	}
	if got := ISO2(""); got != "" {
		t.Fatalf("ISO2 of empty = %q, want empty", got)
	}
	if got := ISO2("   (annotation only)  "); got != "" {
		t.Fatalf("ISO2 of annotation-only input = %q, want empty", got)
	}
}
