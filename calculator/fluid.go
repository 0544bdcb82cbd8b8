package calculator

import (
	"encoding/json"
	"fmt"
	"os"

	"pipeflow/model"
)

var defaultFluids = []model.Fluid{
	{Name: "R407a", SpecificHeatCapacity: 1520, Density: 1145.1, DynamicViscosity: 0.000151},
	{Name: "R245fa", SpecificHeatCapacity: 1322, Density: 1339, DynamicViscosity: 0.000401},
	{Name: "R1234ze", SpecificHeatCapacity: 1386, Density: 1163.1, DynamicViscosity: 0.000199},
	{Name: "R1234yf", SpecificHeatCapacity: 1392, Density: 1092, DynamicViscosity: 0.000154},
	{Name: "Water", SpecificHeatCapacity: 4187, Density: 1000, DynamicViscosity: 0.000895},
	{Name: "Ammonia", SpecificHeatCapacity: 4744, Density: 696, DynamicViscosity: 0.000255},
	{Name: "R134a", SpecificHeatCapacity: 1430, Density: 1207.2, DynamicViscosity: 0.000181},
	{Name: "Propane", SpecificHeatCapacity: 1630, Density: 495, DynamicViscosity: 0.00011},
	{Name: "R600a", SpecificHeatCapacity: 2430, Density: 551, DynamicViscosity: 0.000151},
	{Name: "R407c", SpecificHeatCapacity: 1540, Density: 1134, DynamicViscosity: 0.000154},
}

// DefaultFluids returns the built-in refrigerant/water catalogue.
func DefaultFluids() []model.Fluid {
	fluids := make([]model.Fluid, len(defaultFluids))
	copy(fluids, defaultFluids)
	return fluids
}

// 从 json 文件读取流体物性参数，保持文件中的顺序
func LoadFluids(path string) ([]model.Fluid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fluids []model.Fluid
	if err := json.Unmarshal(data, &fluids); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fluids, nil
}
