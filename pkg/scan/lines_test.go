package scan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readAll(r *LineReader) []string {
	var lines []string
	for {
		line, ok := r.Next()
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}

func TestLineReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "single line without trailing newline",
			input: "#define X 1",
			want:  []string{"#define X 1"},
		},
		{
			name:  "two lines",
			input: "one\ntwo\n",
			want:  []string{"one", "two"},
		},
		{
			name:  "leading whitespace skipped",
			input: "  \t#define X 1\n",
			want:  []string{"#define X 1"},
		},
		{
			name:  "continuation joins physical lines",
			input: "#define M(a,b) \\\n  a + b\n",
			want:  []string{"#define M(a,b)   a + b"},
		},
		{
			name:  "double continuation",
			input: "a\\\nb\\\nc\n",
			want:  []string{"abc"},
		},
		{
			name:  "backslash not followed by newline is kept",
			input: "a\\b\n",
			want:  []string{"a\\b"},
		},
		{
			name:  "trailing blank line",
			input: "x\n\n",
			want:  []string{"x", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readAll(NewLineReader(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineReaderExhausted(t *testing.T) {
	r := NewLineReader("only\n")
	if _, ok := r.Next(); !ok {
		t.Fatal("expected first line")
	}
	for i := 0; i < 3; i++ {
		if line, ok := r.Next(); ok {
			t.Fatalf("expected exhausted reader, got %q", line)
		}
	}
}
