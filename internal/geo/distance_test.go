package geo

import (
	"math"
	"testing"
)

func TestDistanceOneDegreeAtEquator(t *testing.T) {
	// one degree of longitude at the equator is about 111.19 km
	d := Distance(0, 0, 0, 1)
	if math.Abs(d-111195) > 100 {
		t.Fatalf("expected ~111195m, got %f", d)
	}
}

func TestDistanceZero(t *testing.T) {
	if d := Distance(31.52, 74.35, 31.52, 74.35); d != 0 {
		t.Fatalf("expected 0 for identical points, got %f", d)
	}
}

func TestVerifyCheckInInsideFence(t *testing.T) {
	// ~45m north of the site
	status, dist := VerifyCheckIn(true, 31.52, 74.35, 50, 31.5204, 74.35)
	if status != StatusVerified {
		t.Fatalf("expected verified, got %s (dist %f)", status, dist)
	}
	if dist <= 0 || dist > 50 {
		t.Fatalf("unexpected distance %f", dist)
	}
}

func TestVerifyCheckInOutsideFence(t *testing.T) {
	// ~111m away with a 50m fence
	status, dist := VerifyCheckIn(true, 31.52, 74.35, 50, 31.521, 74.35)
	if status != StatusFailed {
		t.Fatalf("expected failed, got %s", status)
	}
	if dist < 100 {
		t.Fatalf("expected distance over 100m, got %f", dist)
	}
}

func TestVerifyCheckInSkipped(t *testing.T) {
	if status, _ := VerifyCheckIn(false, 31.52, 74.35, 50, 31.52, 74.35); status != StatusSkipped {
		t.Fatalf("expected skipped when gps disabled, got %s", status)
	}
	if status, _ := VerifyCheckIn(true, 0, 0, 50, 31.52, 74.35); status != StatusSkipped {
		t.Fatalf("expected skipped when site has no coordinates, got %s", status)
	}
}

func TestVerifyCheckInDefaultRadius(t *testing.T) {
	// 45m away, no radius configured: default 50m applies
	status, _ := VerifyCheckIn(true, 31.52, 74.35, 0, 31.5204, 74.35)
	if status != StatusVerified {
		t.Fatalf("expected verified under default radius, got %s", status)
	}
}
