package geo

import (
	"math"
	"testing"
)

func TestDistanceZeroForIdenticalPoints(t *testing.T) {
	cases := [][2]float64{
		{0, 0},
		{-6.2088, 106.8456},
		{51.5074, -0.1278},
	}
	for _, c := range cases {
		if d := Distance(c[0], c[1], c[0], c[1]); d != 0 {
			t.Errorf("Distance(%v, %v, same point) = %v, want 0", c[0], c[1], d)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	lat1, lon1 := -6.2088, 106.8456
	lat2, lon2 := -6.1751, 106.8650

	d1 := Distance(lat1, lon1, lat2, lon2)
	d2 := Distance(lat2, lon2, lat1, lon1)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistanceAlongMeridian(t *testing.T) {
	// 0.0009 degrees of latitude is very close to 100 meters on a
	// spherical Earth of radius 6371000 m.
	d := Distance(0, 0, 0.0009, 0)
	if math.Abs(d-100)/100 > 0.01 {
		t.Errorf("Distance(0,0 -> 0.0009,0) = %v, want 100 within 1%%", d)
	}
}

func TestDistanceKnownPair(t *testing.T) {
	// Jakarta Monas to Istiqlal Mosque, roughly 650 m apart.
	d := Distance(-6.1754, 106.8272, -6.1702, 106.8311)
	if d < 500 || d > 800 {
		t.Errorf("Distance between known landmarks = %v, want ~650", d)
	}
}
