package models

import (
	"reflect"
	"testing"
)

func TestDocumentText(t *testing.T) {
	d := &Document{Lines: []string{"a", "", "b"}}
	if got := d.Text(); got != "a\n\nb" {
		t.Errorf("Text() = %q, want %q", got, "a\n\nb")
	}
}

func TestDocumentPreview(t *testing.T) {
	d := &Document{Lines: []string{"a", "b", "c"}}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "cap below length", n: 2, want: []string{"a", "b"}},
		{name: "cap at length", n: 3, want: []string{"a", "b", "c"}},
		{name: "cap above length", n: 10, want: []string{"a", "b", "c"}},
		{name: "no cap", n: 0, want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Preview(tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Preview(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}
