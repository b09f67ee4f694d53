package repair

import "testing"

func TestRepair(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already clean", "words of the book", "words of the book"},
		{"lower to upper", "helloWorld", "hello World"},
		{"sentence boundary", "end.Next sentence", "end. Next sentence"},
		{"question boundary", "really?Yes", "really? Yes"},
		{"exclamation boundary", "stop!Go", "stop! Go"},
		{"lower to digit", "page2", "page 2"},
		{"whitespace collapse", "a  b\tc\n d", "a b c d"},
		{"glued short word", "wordsOf theBook", "words Of the Book"},
		{"mixed artifacts", "chapter1 endsHere.Next", "chapter 1 ends Here. Next"},
		{"acronym run stays glued", "theNASAReport", "the NASAReport"},
		{"digit after uppercase untouched", "PDF2", "PDF2"},
		{"punctuation before lower untouched", "e.g. this", "e.g. this"},
		{"single word", "word", "word"},
		{"unicode passthrough", "héllo wörld", "héllo wörld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			if got := e.Repair(tt.input); got != tt.want {
				t.Errorf("Repair(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRepairIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"wordsOf theBook",
		"end.Next",
		"page2 andMore",
		"a  b\t\tc",
		"already repaired text",
		"aBcDeF1g2",
	}

	e := NewEngine()
	for _, s := range inputs {
		once := e.Repair(s)
		twice := e.Repair(once)
		if once != twice {
			t.Errorf("Repair not idempotent for %q: first %q, second %q", s, once, twice)
		}
	}
}

func TestFixCounter(t *testing.T) {
	e := NewEngine()

	if e.Fixes() != 0 {
		t.Fatalf("Fixes() = %d on a new engine, want 0", e.Fixes())
	}

	// Unchanged input must not advance the counter.
	e.Repair("clean text")
	if e.Fixes() != 0 {
		t.Errorf("Fixes() = %d after clean input, want 0", e.Fixes())
	}

	// A changed input advances it exactly once, no matter how many rules
	// fired.
	e.Repair("page2 endsHere.Next")
	if e.Fixes() != 1 {
		t.Errorf("Fixes() = %d after one dirty input, want 1", e.Fixes())
	}

	e.Repair("moreGlued")
	if e.Fixes() != 2 {
		t.Errorf("Fixes() = %d after two dirty inputs, want 2", e.Fixes())
	}

	e.Reset()
	if e.Fixes() != 0 {
		t.Errorf("Fixes() = %d after Reset, want 0", e.Fixes())
	}
}

func TestEnginesCountIndependently(t *testing.T) {
	a := NewEngine()
	b := NewEngine()

	a.Repair("dirtyText")
	if b.Fixes() != 0 {
		t.Errorf("engine b Fixes() = %d after engine a repaired, want 0", b.Fixes())
	}
}
