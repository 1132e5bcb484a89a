package grapheme

import "testing"

func TestSplitAndCount_CombiningAndEmoji(t *testing.T) {
	text := "é👍🏽x"
	got := Split(text)
	want := []string{"é", "👍🏽", "x"}
	if len(got) != len(want) {
		t.Fatalf("split len: got %d, want %d (%q)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("split[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
	if n := Count(text); n != 3 {
		t.Fatalf("count: got %d, want %d", n, 3)
	}
}

func TestWidth_WideRunes(t *testing.T) {
	if got := Width("ab"); got != 2 {
		t.Fatalf("width ascii: got %d, want %d", got, 2)
	}
	if got := Width("界a"); got != 3 {
		t.Fatalf("width wide: got %d, want %d", got, 3)
	}
}

func TestTruncate_DoesNotSplitWideCluster(t *testing.T) {
	if got := Truncate("a界b", 2); got != "a" {
		t.Fatalf("truncate: got %q, want %q", got, "a")
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("truncate zero: got %q, want empty", got)
	}
	if got := Truncate("a\tb", 3); got != "a b" {
		t.Fatalf("truncate tab: got %q, want %q", got, "a b")
	}
}

func TestFit_PadsToExactWidth(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{text: "ab", width: 4, want: "ab  "},
		{text: "abcdef", width: 3, want: "abc"},
		{text: "a界", width: 2, want: "a "},
		{text: "", width: 2, want: "  "},
		{text: "x", width: 0, want: ""},
	}
	for _, tc := range cases {
		if got := Fit(tc.text, tc.width); got != tc.want {
			t.Fatalf("Fit(%q,%d): got %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}
