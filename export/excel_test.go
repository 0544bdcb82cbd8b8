package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pipeflow/calculator"
	"pipeflow/model"
)

func TestWorkbookPath(t *testing.T) {
	got := WorkbookPath("generated", model.Vertical, "R134a")
	want := filepath.Join("generated", "excel_sheets", "vertical", "R134a_vertical.xlsx")
	if got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
}

func TestSheetName(t *testing.T) {
	if got := SheetName("Water"); got != "Values for Fluid Water" {
		t.Errorf("sheet = %q", got)
	}
	if got := SheetName("a very long refrigerant blend name"); len([]rune(got)) != 31 {
		t.Errorf("sheet %q exceeds the xlsx limit", got)
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	c := calculator.NewCalculator(calculator.DefaultConfig())
	water := model.Fluid{Name: "Water", Density: 1000, SpecificHeatCapacity: 4187, DynamicViscosity: 0.000895}
	series, err := c.Calculate(water)
	if err != nil {
		t.Fatal(err)
	}
	lengths := c.Sweep().Lengths()
	path := WorkbookPath(t.TempDir(), model.Vertical, water.Name)

	if err := WriteWorkbook(path, water.Name, lengths, series); err != nil {
		t.Fatal(err)
	}
	table, err := ReadWorkbook(path)
	if err != nil {
		t.Fatal(err)
	}

	if table.Sheet != "Values for Fluid Water" {
		t.Errorf("sheet = %q", table.Sheet)
	}
	wantHeaders := append([]string{LengthColumn}, calculator.SeriesKeys...)
	if len(table.Headers) != len(wantHeaders) {
		t.Fatalf("headers = %v", table.Headers)
	}
	for i, h := range wantHeaders {
		if table.Headers[i] != h {
			t.Errorf("header %d = %q, want %q", i, table.Headers[i], h)
		}
	}

	check := func(name string, want []float64) {
		got := table.Columns[name]
		if len(got) != len(want) {
			t.Fatalf("%s: %d rows, want %d", name, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
			}
		}
	}
	check(LengthColumn, lengths)
	for _, k := range calculator.SeriesKeys {
		check(k, series[k])
	}
}

func TestWriteWorkbookErrors(t *testing.T) {
	if err := WriteWorkbook(filepath.Join(t.TempDir(), "x.xlsx"), "x", nil, nil); !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("err = %v", err)
	}

	// parent "directory" is a regular file
	dir := t.TempDir()
	blocker := filepath.Join(dir, "excel_sheets")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s := calculator.Series{calculator.KeyHeadLoss: {1}}
	if err := WriteWorkbook(WorkbookPath(dir, model.Vertical, "x"), "x", []float64{1}, s); err == nil {
		t.Fatal("expected a filesystem error")
	}
}

func TestAll(t *testing.T) {
	c := calculator.NewCalculator(calculator.DefaultConfig())
	results, _ := c.CalculateAll(calculator.DefaultFluids()[:3])
	root := t.TempDir()
	paths, err := All(root, model.Vertical, c.Sweep().Lengths(), results)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3+5 {
		t.Fatalf("wrote %d files: %v", len(paths), paths)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Error(err)
		}
	}

	paths, err = All(root, model.Vertical, nil, nil)
	if err != nil || len(paths) != 0 {
		t.Fatalf("empty export = %v, %v", paths, err)
	}
}
