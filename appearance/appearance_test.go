package appearance

import "testing"

func TestRefCoversEveryDimension(t *testing.T) {
	var a Appearance
	seen := make(map[*float64]Dimension)
	for _, d := range Dimensions() {
		p := a.Ref(d)
		if p == nil {
			t.Fatalf("Ref(%v) returned nil", d)
		}
		if prev, ok := seen[p]; ok {
			t.Errorf("dimensions %v and %v share a field", prev, d)
		}
		seen[p] = d
	}
	if a.Ref(NumDimensions) != nil {
		t.Error("Ref past the last dimension should be nil")
	}
}

func TestValueReadsThroughRef(t *testing.T) {
	a := Default()
	*a.Ref(SpurSize) = 0.75
	if a.SpurSize != 0.75 {
		t.Errorf("SpurSize = %v, want 0.75", a.SpurSize)
	}
	if got := a.Value(SpurSize); got != 0.75 {
		t.Errorf("Value(SpurSize) = %v, want 0.75", got)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"comb", CombPea.String(), "pea"},
		{"tail", TailSickle.String(), "sickle"},
		{"nails", NailsLongSpur.String(), "long_spur"},
		{"size", SizeXLarge.String(), "xlarge"},
		{"dimension", FeatherDensity.String(), "feather_density"},
		{"out of range", CombType(200).String(), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
