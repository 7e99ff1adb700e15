package version

import "testing"

func TestForTestingRestoresOriginal(t *testing.T) {
	original := String()

	restore := ForTesting("9.9.9")
	if got := String(); got != "9.9.9" {
		t.Fatalf("String() = %q, want %q", got, "9.9.9")
	}

	restore()
	if got := String(); got != original {
		t.Fatalf("String() = %q after restore, want %q", got, original)
	}
}

func TestFormatVersion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"dev", "dev"},
		{"0.2.0", "v0.2.0"},
		{"v0.2.0", "v0.2.0"},
	}
	for _, tc := range cases {
		if got := FormatVersion(tc.in); got != tc.want {
			t.Errorf("FormatVersion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
