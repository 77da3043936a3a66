package bsp

import (
	"testing"

	"github.com/go-vbsp/vbsp-los/vbspfile"
)

// TestCanonicalizePlanes_SignBitsLaw exercises spec.md §8's "Plane
// sign_bits law": for every plane and axis i, bit i of SignBits is 1 iff
// Normal[i] < 0.
func TestCanonicalizePlanes_SignBitsLaw(t *testing.T) {
	cases := []struct {
		name   string
		normal [3]float32
		want   uint8
	}{
		{"all positive", [3]float32{1, 1, 1}, 0},
		{"x negative", [3]float32{-1, 1, 1}, 1 << 0},
		{"y negative", [3]float32{1, -1, 1}, 1 << 1},
		{"z negative", [3]float32{1, 1, -1}, 1 << 2},
		{"all negative", [3]float32{-1, -1, -1}, 1<<0 | 1<<1 | 1<<2},
		{"zero is not negative", [3]float32{0, 0, 0}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			planes := canonicalizePlanes([]vbspfile.Plane{{Normal: c.normal, Distance: 7, Type: 3}})
			if got := planes[0].SignBits; got != c.want {
				t.Fatalf("SignBits = %#b, want %#b", got, c.want)
			}
		})
	}
}

// TestCanonicalizePlanes_RoundTrip exercises spec.md §8's round-trip
// property: the canonical plane's (normal, distance) equals the raw
// plane's.
func TestCanonicalizePlanes_RoundTrip(t *testing.T) {
	raw := vbspfile.Plane{Normal: [3]float32{0.6, 0, 0.8}, Distance: 12.5, Type: 2}
	planes := canonicalizePlanes([]vbspfile.Plane{raw})

	if planes[0].Normal != raw.Normal {
		t.Fatalf("Normal = %v, want %v", planes[0].Normal, raw.Normal)
	}
	if planes[0].Distance != raw.Distance {
		t.Fatalf("Distance = %v, want %v", planes[0].Distance, raw.Distance)
	}
	if planes[0].Type != uint8(raw.Type) {
		t.Fatalf("Type = %v, want %v", planes[0].Type, raw.Type)
	}
}
