package repository

import (
	"reflect"
	"testing"
)

func TestFrequencyCoercion(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		decoded []int
	}{
		{"empty means every day", "", nil},
		{"single day", "2", []int{2}},
		{"full week", "2,3,4,5,6,7,8", []int{2, 3, 4, 5, 6, 7, 8}},
		{"whitespace tolerated", " 2, 4 ,6 ", []int{2, 4, 6}},
		{"junk fragments dropped", "2,x,4", []int{2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeFrequency(tt.stored)
			if !reflect.DeepEqual(got, tt.decoded) {
				t.Errorf("decodeFrequency(%q) = %v, want %v", tt.stored, got, tt.decoded)
			}
		})
	}
}

func TestEncodeFrequencyRoundTrip(t *testing.T) {
	for _, freq := range [][]int{nil, {2}, {2, 4, 6}, {8}} {
		if got := decodeFrequency(encodeFrequency(freq)); !reflect.DeepEqual(got, freq) {
			t.Errorf("round trip of %v produced %v", freq, got)
		}
	}
}
