package encoding

import "testing"

func TestIsUTF16(t *testing.T) {
	testCases := map[string]struct {
		input string
		want  bool
	}{
		"big endian bom": {"\xfe\xff\x00A", true},
		"no bom":         {"plain", false},
		"odd length":     {"\xfe\xff\x00", false},
		"bom only":       {"\xfe\xff", true},
		"empty":          {"", false},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := IsUTF16(tc.input); got != tc.want {
				t.Errorf("IsUTF16(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	testCases := map[string]struct {
		input string
		want  string
	}{
		"plain utf8":        {"héllo", "héllo"},
		"utf16 big endian":  {"\xfe\xff\x00A\x00b", "Ab"},
		"utf16 little endian": {"\xff\xfeA\x00b\x00", "Ab"},
		"utf8 bom stripped": {"\xef\xbb\xbfAb", "Ab"},
		"empty":             {"", ""},
		"utf16 non-ascii":   {"\xfe\xff\x04\x1f", "П"},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := Decode(tc.input); got != tc.want {
				t.Errorf("Decode(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestUTF16Decode(t *testing.T) {
	// Surrogate pair: U+1D11E (musical G clef).
	if got := UTF16Decode("\xd8\x34\xdd\x1e"); got != "\U0001d11e" {
		t.Errorf("UTF16Decode surrogate pair = %q", got)
	}
}
