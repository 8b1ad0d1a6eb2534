package diff

import (
	"strings"
	"testing"
	"time"

	"github.com/openticketai/sitekit/internal/history"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		changed bool
		want    []string
		notWant []string
	}{
		{
			name:    "identical",
			old:     "✓ broken-links: ok\n",
			new:     "✓ broken-links: ok\n",
			changed: false,
		},
		{
			name:    "new violation",
			old:     "✓ localized-links: ok\n",
			new:     "✗ localized-links: 1 bad\n    /de/ links to /en/\n",
			changed: true,
			want:    []string{"- ✓ localized-links: ok", "+ ✗ localized-links: 1 bad", "+     /de/ links to /en/"},
		},
		{
			name:    "fixed violation keeps context",
			old:     "a\nb\nc\n",
			new:     "a\nc\n",
			changed: true,
			want:    []string{"  a", "- b", "  c"},
			notWant: []string{"+ "},
		},
		{
			name:    "long equal runs collapse",
			old:     "1\n2\n3\n4\n5\n6\n7\n8\nx\n",
			new:     "1\n2\n3\n4\n5\n6\n7\n8\ny\n",
			changed: true,
			want:    []string{"  ...", "- x", "+ y"},
			notWant: []string{"  4\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Compute(tt.old, tt.new, "a", "b")
			if r.Changed != tt.changed {
				t.Fatalf("Changed = %v, want %v", r.Changed, tt.changed)
			}
			for _, w := range tt.want {
				if !strings.Contains(r.Diff, w) {
					t.Errorf("diff missing %q:\n%s", w, r.Diff)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(r.Diff, w) {
					t.Errorf("diff should not contain %q:\n%s", w, r.Diff)
				}
			}
		})
	}
}

func TestFormat(t *testing.T) {
	r := Compute("a\n", "b\n", "old", "new")
	out := r.Format(false)
	if !strings.HasPrefix(out, "--- old\n+++ new\n") {
		t.Errorf("missing header: %q", out)
	}
	coloured := r.Format(true)
	if !strings.Contains(coloured, "\033[31m- a\033[0m") || !strings.Contains(coloured, "\033[32m+ b\033[0m") {
		t.Errorf("missing colour: %q", coloured)
	}

	same := Compute("a\n", "a\n", "old", "new").Format(false)
	if !strings.Contains(same, "(no changes)") {
		t.Errorf("expected no changes marker: %q", same)
	}
}

func TestRuns(t *testing.T) {
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := history.Run{ID: "0123456789abcdef", Started: started, Summary: "OK\n"}
	newer := history.Run{ID: "fedcba9876543210", Started: started.Add(time.Hour), Summary: "FAILED\n"}

	r := Runs(older, newer)
	if r.Old != "run 01234567 (2026-03-01 12:00:00)" {
		t.Errorf("Old = %q", r.Old)
	}
	if !r.Changed || !strings.Contains(r.Diff, "+ FAILED") {
		t.Errorf("unexpected diff: %+v", r)
	}
}
