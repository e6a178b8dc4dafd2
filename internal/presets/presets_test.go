package presets

import "testing"

func TestBuiltinOptionValuesUnique(t *testing.T) {
	cat := Default()
	for _, dim := range cat.Dimensions() {
		seen := make(map[string]bool)
		for _, o := range dim.Options {
			if o.Value == "" {
				t.Errorf("dimension %q has an option with empty value", dim.Key)
			}
			if seen[o.Value] {
				t.Errorf("dimension %q has duplicate option value %q", dim.Key, o.Value)
			}
			seen[o.Value] = true
		}
	}
}

func TestDimensionsPreserveOrder(t *testing.T) {
	cat := Default()
	keys := cat.Keys()
	dims := cat.Dimensions()
	if len(keys) != len(dims) {
		t.Fatalf("Keys()=%d entries, Dimensions()=%d", len(keys), len(dims))
	}
	for i, d := range dims {
		if d.Key != keys[i] {
			t.Errorf("position %d: Dimensions()=%q, Keys()=%q", i, d.Key, keys[i])
		}
	}
	if keys[0] != "tone" {
		t.Errorf("expected tone first, got %q", keys[0])
	}
}

func TestRandomOptionDrawsFromDimension(t *testing.T) {
	cat := Default()
	dim, _ := cat.Dimension("tone")
	valid := make(map[string]bool, len(dim.Options))
	for _, o := range dim.Options {
		valid[o.Value] = true
	}

	for i := 0; i < 50; i++ {
		picked := cat.RandomOption("tone")
		if !valid[picked] {
			t.Fatalf("RandomOption returned %q, not a tone option", picked)
		}
	}

	if got := cat.RandomOption("nope"); got != "" {
		t.Errorf("RandomOption on unknown dimension = %q, want empty", got)
	}
}

func TestOptionLabel(t *testing.T) {
	cat := Default()

	tests := []struct {
		name     string
		key      string
		value    string
		language string
		want     string
	}{
		{"english label", "tone", "immersive", "en", "Immersive"},
		{"chinese label", "tone", "immersive", "zh", "沉浸式"},
		{"unknown value falls back to raw", "tone", "my_custom", "en", "my_custom"},
		{"unknown dimension falls back to raw", "nope", "x", "en", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cat.OptionLabel(tt.key, tt.value, tt.language); got != tt.want {
				t.Errorf("OptionLabel(%q, %q, %q) = %q, want %q", tt.key, tt.value, tt.language, got, tt.want)
			}
		})
	}
}

func TestWithConfigHidesAndAppends(t *testing.T) {
	cat := Default()
	derived := cat.WithConfig(VariableConfig{
		"tone": {
			Deleted:  []string{"immersive"},
			Disabled: []string{"mysterious"},
			Custom:   []Option{{Value: "spooky", Label: "阴森", LabelEn: "Spooky"}},
		},
	})

	dim, ok := derived.Dimension("tone")
	if !ok {
		t.Fatal("derived catalog lost the tone dimension")
	}

	var hasSpooky bool
	for _, o := range dim.Options {
		switch o.Value {
		case "immersive":
			t.Error("soft-deleted option still present")
		case "mysterious":
			t.Error("disabled option still present")
		case "spooky":
			hasSpooky = true
			if !o.Custom {
				t.Error("custom option not flagged Custom")
			}
		}
	}
	if !hasSpooky {
		t.Error("custom option not appended")
	}

	// The built-in catalog must be untouched.
	base, _ := cat.Dimension("tone")
	found := false
	for _, o := range base.Options {
		if o.Value == "immersive" {
			found = true
		}
		if o.Value == "spooky" {
			t.Error("custom option leaked into the built-in catalog")
		}
	}
	if !found {
		t.Error("built-in catalog lost a soft-deleted option")
	}
}

func TestWithConfigRandomPoolExcludesHidden(t *testing.T) {
	cat := Default()
	dim, _ := cat.Dimension("perspective")

	// Hide every option but one; the random pool then has a single member.
	hidden := make([]string, 0, len(dim.Options)-1)
	for _, o := range dim.Options[1:] {
		hidden = append(hidden, o.Value)
	}
	derived := cat.WithConfig(VariableConfig{
		"perspective": {Deleted: hidden},
	})

	want := dim.Options[0].Value
	for i := 0; i < 20; i++ {
		if got := derived.RandomOption("perspective"); got != want {
			t.Fatalf("RandomOption drew hidden option %q", got)
		}
	}
}
