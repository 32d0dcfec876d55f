package dict

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadBrodaWordlist(t *testing.T) {
	input := "cat;60\nZEBRA;55\n\ntoad ; 40\nok;90\n"
	words, err := ReadBrodaWordlist(strings.NewReader(input), 50)
	if err != nil {
		t.Fatalf("ReadBrodaWordlist() error = %v", err)
	}
	want := []string{"CAT", "OK", "ZEBRA"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("ReadBrodaWordlist() = %v, want %v", words, want)
	}
}

func TestReadBrodaWordlistMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no separator", "CAT 60"},
		{"too many fields", "CAT;60;extra"},
		{"bad score", "CAT;sixty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadBrodaWordlist(strings.NewReader(tt.input), 0); err == nil {
				t.Errorf("ReadBrodaWordlist(%q) succeeded", tt.input)
			}
		})
	}
}

func TestReadBrodaWordlistScoreGate(t *testing.T) {
	input := "CAT;60\nRAT;10"
	words, err := ReadBrodaWordlist(strings.NewReader(input), 50)
	if err != nil {
		t.Fatalf("ReadBrodaWordlist() error = %v", err)
	}
	if !reflect.DeepEqual(words, []string{"CAT"}) {
		t.Errorf("ReadBrodaWordlist() = %v, want [CAT]", words)
	}
}
