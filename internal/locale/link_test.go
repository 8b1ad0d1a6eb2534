package locale

import "testing"

func TestClassifyLink(t *testing.T) {
	tests := []struct {
		href string
		want LinkKind
	}{
		{"https://example.com", External},
		{"http://example.com/x", External},
		{"mailto:a@b.c", External},
		{"tel:+49", External},
		{"git+ssh://host/repo", External},
		{"data:text/plain,hi", External},
		{"#", Fragment},
		{"#top", Fragment},
		{"/", InternalAbsolute},
		{"/docs", InternalAbsolute},
		{"//cdn.example.com/x.js", InternalAbsolute},
		{"docs/setup", Other},
		{"./x", Other},
		{"../x", Other},
		{"", Other},
		{"1http://x", Other},
		{":foo", Other},
		{"c++:x", External},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			if got := ClassifyLink(tt.href); got != tt.want {
				t.Errorf("ClassifyLink(%q) = %v, want %v", tt.href, got, tt.want)
			}
		})
	}
}

func TestLinkKind_String(t *testing.T) {
	want := map[LinkKind]string{
		External:         "external",
		Fragment:         "fragment",
		InternalAbsolute: "internal",
		Other:            "other",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), s)
		}
	}
}
