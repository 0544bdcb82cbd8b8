package calculator

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"pipeflow/model"
)

// Result series keys
const (
	KeyHeadLoss                = "head_loss"
	KeyFrictionalFactor        = "frictional_factor"
	KeyPressureLoss            = "pressure_loss"
	KeyHeatTransferCoefficient = "heat_transfer_coefficient"
	KeyReynoldsNumber          = "reynolds_number"
	KeyVelocity                = "velocity"
	KeyDiameter                = "diameter"
)

// SeriesKeys is the column order used by exports.
var SeriesKeys = []string{
	KeyHeadLoss,
	KeyFrictionalFactor,
	KeyPressureLoss,
	KeyHeatTransferCoefficient,
	KeyReynoldsNumber,
	KeyVelocity,
	KeyDiameter,
}

// Series maps a quantity to its values, index aligned with the sweep.
type Series map[string][]float64

// Len is the common length of all sequences, -1 if they disagree.
func (s Series) Len() int {
	n := -1
	for _, k := range SeriesKeys {
		v, ok := s[k]
		if !ok {
			return -1
		}
		if n == -1 {
			n = len(v)
		} else if n != len(v) {
			return -1
		}
	}
	return n
}

// Finite reports whether no sequence holds NaN or ±Inf.
func (s Series) Finite() bool {
	for _, v := range s {
		if floats.HasNaN(v) {
			return false
		}
		for _, x := range v {
			if math.IsInf(x, 0) {
				return false
			}
		}
	}
	return true
}

// Range returns min and max of one quantity.
func (s Series) Range(key string) (lo, hi float64) {
	v := s[key]
	if len(v) == 0 {
		return math.NaN(), math.NaN()
	}
	return floats.Min(v), floats.Max(v)
}

// 单个流体的计算结果
type FluidSeries struct {
	Fluid  model.Fluid `json:"fluid"`
	Series Series      `json:"series"`
}

// Compute evaluates every sweep point for one fluid. It does no validation:
// non-positive inputs or gravity give NaN/Inf in the result.
func Compute(fluid model.Fluid, sweep Sweep, pipe Pipe, gravity float64) Series {
	n := sweep.Len()
	series := Series{
		KeyHeadLoss:                make([]float64, 0, n),
		KeyFrictionalFactor:        make([]float64, 0, n),
		KeyPressureLoss:            make([]float64, 0, n),
		KeyHeatTransferCoefficient: make([]float64, 0, n),
		KeyReynoldsNumber:          make([]float64, 0, n),
		KeyVelocity:                sweep.Velocities(),
		KeyDiameter:                sweep.Diameters(),
	}

	for i := 0; i < n; i++ {
		length, diameter, velocity := sweep.Point(i)

		re := ReynoldsNumber(fluid.Density, diameter, velocity, fluid.DynamicViscosity)
		f := FrictionFactor(re, pipe.Roughness, diameter)
		pr := PrandtlNumber(fluid.DynamicViscosity, fluid.SpecificHeatCapacity, pipe.ThermalConductivity)
		h := HeadLoss(f, length, diameter, velocity, gravity)
		p := PressureLoss(fluid.Density, gravity, h)
		htc := HeatTransferCoefficient(re, pr, pipe.ThermalConductivity, diameter)

		series[KeyReynoldsNumber] = append(series[KeyReynoldsNumber], re)
		series[KeyFrictionalFactor] = append(series[KeyFrictionalFactor], f)
		series[KeyHeadLoss] = append(series[KeyHeadLoss], h)
		series[KeyPressureLoss] = append(series[KeyPressureLoss], p)
		series[KeyHeatTransferCoefficient] = append(series[KeyHeatTransferCoefficient], htc)
	}
	return series
}
