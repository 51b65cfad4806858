package cmd

import "testing"

func TestLookupUnknownFallsBackToNeutral(t *testing.T) {
	neutral := Lookup(Neutral)
	for _, name := range []string{"", "furious", "NEUTRAL", "heart eyes", "worried "} {
		if got := Lookup(name); got != neutral {
			t.Errorf("Lookup(%q) = %+v, want neutral", name, got)
		}
		if got := Resolve(name); got != Neutral {
			t.Errorf("Resolve(%q) = %q, want %q", name, got, Neutral)
		}
		if Known(name) {
			t.Errorf("Known(%q) = true", name)
		}
	}
}

func TestCatalogHasRequiredEmotions(t *testing.T) {
	required := []string{
		"neutral", "happy", "sad", "angry", "tired", "heart_eyes",
		"look_left", "look_right", "look_up", "look_down",
		"suspicious", "confused", "excited", "sleepy",
	}
	for _, name := range required {
		if !Known(name) {
			t.Errorf("catalog is missing %q", name)
		}
	}
}

func TestCatalogShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{"neutral", ShapeRounded},
		{"happy", ShapeArc},
		{"heart_eyes", ShapeHeart},
		{"excited", ShapeSparkle},
		{"sleepy", ShapeSleepy},
		{"angry", ShapeRounded},
	}
	for _, tt := range tests {
		if got := Lookup(tt.name).Shape; got != tt.shape {
			t.Errorf("Lookup(%q).Shape = %v, want %v", tt.name, got, tt.shape)
		}
	}
}

func TestAngryDescriptor(t *testing.T) {
	d := Lookup("angry")
	if d.OffsetY >= 0 {
		t.Errorf("angry OffsetY = %d, want < 0", d.OffsetY)
	}
	if !d.Slant {
		t.Error("angry has no slant")
	}
}

func TestNeutralDescriptor(t *testing.T) {
	want := Descriptor{Width: EyeWidth, Height: EyeHeight, Radius: DefaultRadius}
	if got := Lookup(Neutral); got != want {
		t.Errorf("Lookup(neutral) = %+v, want %+v", got, want)
	}
}

// TestWorriedIsNotSkeptic guards against aliasing the two again.
func TestWorriedIsNotSkeptic(t *testing.T) {
	if Lookup("worried") == Lookup("skeptic") {
		t.Error("worried and skeptic share a descriptor")
	}
}

func TestEmotionsSorted(t *testing.T) {
	names := Emotions()
	if len(names) != len(catalog) {
		t.Fatalf("Emotions() returned %d names, want %d", len(names), len(catalog))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Emotions() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
