package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDimensionValueUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want DimensionValue
	}{
		{"bare string", `"immersive"`, Single("immersive")},
		{"random sentinel", `"random"`, Random()},
		{"array", `["a","b"]`, Multi("a", "b")},
		{"null", `null`, DimensionValue{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got DimensionValue
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}

	var v DimensionValue
	if err := json.Unmarshal([]byte(`42`), &v); err == nil {
		t.Error("expected error for numeric dimension value")
	}
}

func TestDimensionValueMarshalRoundTrip(t *testing.T) {
	sel := VariableSelection{
		"tone":        Single("immersive"),
		"hookType":    Random(),
		"trendElements": Multi("y2k", "cyberpunk"),
	}

	raw, err := json.Marshal(sel)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back VariableSelection
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(sel, back) {
		t.Errorf("round trip changed selection: %+v != %+v", back, sel)
	}
}

func TestDimensionValueHelpers(t *testing.T) {
	// Random carries no values yet is not "empty": it resolves later.
	if Random().IsEmpty() {
		t.Error("Random() must not be IsEmpty")
	}
	if got := Random().Values(); got != nil {
		t.Errorf("Random().Values() = %v, want nil", got)
	}
	if got := Single("x").Values(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("Single Values() = %v", got)
	}
	if !Single("").IsEmpty() {
		t.Error("empty Single must be IsEmpty")
	}
	if !Multi().IsEmpty() {
		t.Error("empty Multi must be IsEmpty")
	}

	sel := VariableSelection{"a": Single("x")}
	if sel.HasRandom() {
		t.Error("HasRandom true without sentinel")
	}
	sel["b"] = Random()
	if !sel.HasRandom() {
		t.Error("HasRandom false with sentinel present")
	}

	clone := sel.Clone()
	clone["a"] = Single("y")
	if sel["a"].One != "x" {
		t.Error("Clone shares storage with original")
	}
}
