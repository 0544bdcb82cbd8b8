package calculator

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pipeflow/model"
)

func TestCalculatorOrientation(t *testing.T) {
	c := NewCalculator(DefaultConfig())
	if env := c.Environment(); env.Orientation != model.Vertical || env.Gravity != 9.81 {
		t.Fatalf("env = %+v", env)
	}
	vertical, err := c.Calculate(water)
	if err != nil {
		t.Fatal(err)
	}

	c.SetOrientation(model.Horizontal)
	if env := c.Environment(); env.Gravity != 0.01 {
		t.Fatalf("env = %+v", env)
	}
	horizontal, err := c.Calculate(water)
	if err != nil {
		t.Fatal(err)
	}
	if horizontal[KeyHeadLoss][0] <= vertical[KeyHeadLoss][0] {
		t.Fatal("horizontal head loss should be larger")
	}
}

func TestCalculateRejectsInvalidFluid(t *testing.T) {
	c := NewCalculator(DefaultConfig())
	for _, f := range []model.Fluid{
		{Name: "", Density: 1, SpecificHeatCapacity: 1, DynamicViscosity: 1},
		{Name: "a", Density: 0, SpecificHeatCapacity: 1, DynamicViscosity: 1},
		{Name: "b", Density: 1, SpecificHeatCapacity: -1, DynamicViscosity: 1},
		{Name: "c", Density: 1, SpecificHeatCapacity: 1, DynamicViscosity: 0},
	} {
		if _, err := c.Calculate(f); !errors.Is(err, model.ErrInvalidFluid) {
			t.Errorf("%+v: err = %v", f, err)
		}
	}
}

func TestCalculateRejectsBadGravity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VerticalGravity = 0
	c := NewCalculator(cfg)
	if _, err := c.Calculate(water); !errors.Is(err, ErrInvalidEnvironment) {
		t.Fatalf("err = %v", err)
	}
}

func TestCalculateAllSkipsInvalid(t *testing.T) {
	c := NewCalculator(DefaultConfig())
	fluids := DefaultFluids()
	fluids = append(fluids[:2:2], model.Fluid{Name: "broken"}, fluids[2])

	results, rejected := c.CalculateAll(fluids)
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Fluid.Name != "R407a" || results[2].Fluid.Name != "R1234ze" {
		t.Errorf("order not preserved: %s .. %s", results[0].Fluid.Name, results[2].Fluid.Name)
	}
	if len(rejected) != 1 || rejected[0].Fluid != "broken" || rejected[0].Reason == "" {
		t.Errorf("rejected = %+v", rejected)
	}
}

func TestCalculateRejectsNonFiniteResult(t *testing.T) {
	c := NewCalculator(DefaultConfig())
	tiny := model.Fluid{Name: "tiny", Density: 1e-320, SpecificHeatCapacity: 4187, DynamicViscosity: 0.000895}
	if err := tiny.Validate(); err != nil {
		t.Fatalf("tiny should pass input validation: %v", err)
	}
	if _, err := c.Calculate(tiny); !errors.Is(err, model.ErrInvalidFluid) {
		t.Fatalf("err = %v", err)
	}

	results, rejected := c.CalculateAll([]model.Fluid{water, tiny})
	if len(results) != 1 || results[0].Fluid.Name != "Water" {
		t.Fatalf("results = %+v", results)
	}
	if len(rejected) != 1 || rejected[0].Fluid != "tiny" {
		t.Fatalf("rejected = %+v", rejected)
	}
	if _, err := json.Marshal(results); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFluids(t *testing.T) {
	fluids, err := LoadFluids("../conf/fluids.json")
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultFluids()
	if len(fluids) != len(def) {
		t.Fatalf("got %d fluids", len(fluids))
	}
	for i := range def {
		if fluids[i] != def[i] {
			t.Errorf("fluid %d = %+v, want %+v", i, fluids[i], def[i])
		}
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	_ = os.WriteFile(path, []byte("{"), 0o644)
	if _, err := LoadFluids(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestFluidSeriesJSON(t *testing.T) {
	c := NewCalculator(DefaultConfig())
	s, err := c.Calculate(water)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(FluidSeries{Fluid: water, Series: s})
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]map[string]json.RawMessage
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	for _, k := range SeriesKeys {
		if _, ok := out["series"][k]; !ok {
			t.Errorf("missing key %s", k)
		}
	}
}
