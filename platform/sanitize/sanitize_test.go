package sanitize

import "testing"

func TestName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Congo (Kinshasa) ", "Congo"},
		{"United   States", "United States"},
		{"Korea (Republic of) ", "Korea"},
		{"(only annotation)", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := Name(c.in); got != c.want {
			t.Fatalf("Name(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
