package models

import "testing"

func TestValidProductCategory(t *testing.T) {
	for _, c := range ProductCategories {
		if !ValidProductCategory(c) {
			t.Fatalf("category %q must be accepted", c)
		}
	}
	for _, c := range []string{"", "insecticide", "Herbicide"} {
		if ValidProductCategory(c) {
			t.Fatalf("category %q must be rejected", c)
		}
	}
}

func TestValidProductUnit(t *testing.T) {
	for _, u := range ProductUnits {
		if !ValidProductUnit(u) {
			t.Fatalf("unit %q must be accepted", u)
		}
	}
	for _, u := range []string{"", "ML", "gallon"} {
		if ValidProductUnit(u) {
			t.Fatalf("unit %q must be rejected", u)
		}
	}
}
