package buffer

import (
	"testing"
)

func TestNewBufferNeverEmpty(t *testing.T) {
	b := NewBuffer()
	if b.LineCount() != 1 {
		t.Fatalf("new buffer line count = %d, want 1", b.LineCount())
	}
	if b.Line(0) != "" {
		t.Errorf("new buffer line 0 = %q, want empty", b.Line(0))
	}
}

func TestNewBufferFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{""}},
		{"single line", "hello", []string{"hello"}},
		{"two lines", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\n", []string{"a", ""}},
		{"crlf normalized", "a\r\nb", []string{"a", "b"}},
		{"bare cr normalized", "a\rb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.input)
			if b.LineCount() != len(tt.want) {
				t.Fatalf("line count = %d, want %d", b.LineCount(), len(tt.want))
			}
			for i, want := range tt.want {
				if got := b.Line(i); got != want {
					t.Errorf("line %d = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestSetLinesEmptyBecomesOneLine(t *testing.T) {
	b := NewBufferFromLines(nil)
	if b.LineCount() != 1 || b.Line(0) != "" {
		t.Errorf("empty input should yield one empty line, got %v", b.Lines())
	}
}

func TestLineOutOfRange(t *testing.T) {
	b := NewBufferFromString("one")
	if got := b.Line(5); got != "" {
		t.Errorf("out-of-range line = %q, want empty", got)
	}
	if got := b.Line(-1); got != "" {
		t.Errorf("negative row line = %q, want empty", got)
	}
	if got := b.LineCharCount(5); got != 0 {
		t.Errorf("out-of-range char count = %d, want 0", got)
	}
}

func TestLineCharCountUnicode(t *testing.T) {
	b := NewBufferFromString("Hello 🌍 World")
	if got := b.LineCharCount(0); got != 13 {
		t.Errorf("char count = %d, want 13 (scalar count, not bytes)", got)
	}
}

func TestCharAt(t *testing.T) {
	b := NewBufferFromString("a🌍c")

	if r, ok := b.CharAt(0, 1); !ok || r != '🌍' {
		t.Errorf("CharAt(0,1) = %q, %v; want 🌍, true", r, ok)
	}
	if _, ok := b.CharAt(0, 3); ok {
		t.Error("CharAt past end of line should report false")
	}
	if _, ok := b.CharAt(9, 0); ok {
		t.Error("CharAt out-of-range row should report false")
	}
}

func TestInsertTextAtSingleLine(t *testing.T) {
	b := NewBufferFromString("helloworld")
	end := b.InsertTextAt(0, 5, ", ")

	if got := b.Line(0); got != "hello, world" {
		t.Errorf("line = %q, want %q", got, "hello, world")
	}
	if !end.Equal(Position{Row: 0, Col: 7}) {
		t.Errorf("end position = %v, want (0:7)", end)
	}
}

func TestInsertTextAtWithNewlines(t *testing.T) {
	b := NewBufferFromString("headtail")
	end := b.InsertTextAt(0, 4, "X\nY\nZ")

	want := []string{"headX", "Y", "Ztail"}
	for i, w := range want {
		if got := b.Line(i); got != w {
			t.Errorf("line %d = %q, want %q", i, got, w)
		}
	}
	if !end.Equal(Position{Row: 2, Col: 1}) {
		t.Errorf("end position = %v, want (2:1)", end)
	}
}

func TestInsertTextAtClampsCoordinates(t *testing.T) {
	b := NewBufferFromString("ab")
	b.InsertTextAt(99, 99, "!")
	if got := b.Line(0); got != "ab!" {
		t.Errorf("line = %q, want %q", got, "ab!")
	}
}

func TestInsertTextAtUnicodeColumn(t *testing.T) {
	b := NewBufferFromString("🌍🌍")
	b.InsertTextAt(0, 1, "x")
	if got := b.Line(0); got != "🌍x🌍" {
		t.Errorf("line = %q, want %q", got, "🌍x🌍")
	}
}

func TestDeleteRangeSingleLine(t *testing.T) {
	b := NewBufferFromString("hello world")
	at := b.DeleteRange(Position{Row: 0, Col: 5}, Position{Row: 0, Col: 11})

	if got := b.Line(0); got != "hello" {
		t.Errorf("line = %q, want %q", got, "hello")
	}
	if !at.Equal(Position{Row: 0, Col: 5}) {
		t.Errorf("result position = %v, want (0:5)", at)
	}
}

func TestDeleteRangeMultiLine(t *testing.T) {
	b := NewBufferFromLines([]string{"Line 1", "Line 2", "Line 3"})
	at := b.DeleteRange(Position{Row: 0, Col: 2}, Position{Row: 1, Col: 4})

	want := []string{"Li 2", "Line 3"}
	if b.LineCount() != len(want) {
		t.Fatalf("line count = %d, want %d", b.LineCount(), len(want))
	}
	for i, w := range want {
		if got := b.Line(i); got != w {
			t.Errorf("line %d = %q, want %q", i, got, w)
		}
	}
	if !at.Equal(Position{Row: 0, Col: 2}) {
		t.Errorf("result position = %v, want (0:2)", at)
	}
}

func TestDeleteRangeSwappedPair(t *testing.T) {
	b := NewBufferFromLines([]string{"Line 1", "Line 2", "Line 3"})
	b.DeleteRange(Position{Row: 1, Col: 4}, Position{Row: 0, Col: 2})

	if got := b.Line(0); got != "Li 2" {
		t.Errorf("reversed pair should be reordered, line 0 = %q", got)
	}
}

func TestDeleteRangeWholeBuffer(t *testing.T) {
	b := NewBufferFromLines([]string{"aaa", "bbb", "ccc"})
	b.DeleteRange(Position{}, Position{Row: 2, Col: 3})

	if b.LineCount() != 1 || b.Line(0) != "" {
		t.Errorf("deleting everything should leave one empty line, got %v", b.Lines())
	}
}

func TestDeleteRangeUnicode(t *testing.T) {
	b := NewBufferFromString("Hello 🌍 World")
	b.DeleteRange(Position{Row: 0, Col: 6}, Position{Row: 0, Col: 7})

	if got := b.Line(0); got != "Hello  World" {
		t.Errorf("line = %q, want %q", got, "Hello  World")
	}
}

func TestTextRange(t *testing.T) {
	b := NewBufferFromLines([]string{"abc", "def", "ghi"})

	tests := []struct {
		name       string
		start, end Position
		want       string
	}{
		{"single line", Position{0, 1}, Position{0, 3}, "bc"},
		{"two lines", Position{0, 1}, Position{1, 2}, "bc\nde"},
		{"three lines", Position{0, 2}, Position{2, 1}, "c\ndef\ng"},
		{"empty", Position{1, 1}, Position{1, 1}, ""},
		{"swapped", Position{1, 2}, Position{0, 1}, "bc\nde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.TextRange(tt.start, tt.end); got != tt.want {
				t.Errorf("TextRange(%v, %v) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestSelectedTextUnicodeScalar(t *testing.T) {
	b := NewBufferFromString("Hello 🌍 World")
	got := b.TextRange(Position{Row: 0, Col: 6}, Position{Row: 0, Col: 7})
	if got != "🌍" {
		t.Errorf("TextRange around emoji = %q, want %q", got, "🌍")
	}
}

func TestSplitLine(t *testing.T) {
	b := NewBufferFromString("headtail")
	at := b.SplitLine(0, 4)

	if b.Line(0) != "head" || b.Line(1) != "tail" {
		t.Errorf("split lines = %v", b.Lines())
	}
	if !at.Equal(Position{Row: 1, Col: 0}) {
		t.Errorf("split position = %v, want (1:0)", at)
	}
}

func TestJoinLines(t *testing.T) {
	b := NewBufferFromLines([]string{"head", "tail"})

	if !b.JoinLines(0) {
		t.Fatal("JoinLines(0) should succeed")
	}
	if b.LineCount() != 1 || b.Line(0) != "headtail" {
		t.Errorf("joined lines = %v", b.Lines())
	}
	if b.JoinLines(0) {
		t.Error("JoinLines at last row should report false")
	}
	if b.JoinLines(-1) {
		t.Error("JoinLines with negative row should report false")
	}
}

func TestTextRoundTrip(t *testing.T) {
	const text = "one\ntwo\nthree"
	b := NewBufferFromString(text)
	if got := b.Text(); got != text {
		t.Errorf("Text() = %q, want %q", got, text)
	}
}

func TestBufferEqual(t *testing.T) {
	a := NewBufferFromLines([]string{"x", "y"})
	b := NewBufferFromLines([]string{"x", "y"})
	c := NewBufferFromLines([]string{"x"})

	if !a.Equal(b) {
		t.Error("identical buffers should be equal")
	}
	if a.Equal(c) {
		t.Error("different buffers should not be equal")
	}
	if a.Equal(nil) {
		t.Error("buffer should not equal nil")
	}
}

func TestBufferCloneIndependent(t *testing.T) {
	a := NewBufferFromLines([]string{"x", "y"})
	b := a.Clone()
	b.InsertTextAt(0, 0, "!")

	if a.Line(0) != "x" {
		t.Error("mutating a clone should not affect the original")
	}
}
