package calculator

import (
	"errors"
	"fmt"
)

var ErrSweepMismatch = errors.New("geometry sweep sequences differ in length")

var (
	defaultLengths    = []float64{0.2, 0.4, 0.6, 0.8, 1.0, 1.2, 1.4, 1.6, 1.8, 2.0}
	defaultDiameters  = []float64{0.00159, 0.00318, 0.00477, 0.00636, 0.00795, 0.00954, 0.01113, 0.01272, 0.01431, 0.0159}
	defaultVelocities = []float64{0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.35, 0.4, 0.45, 0.5}
)

// Sweep is the ordered set of (length, diameter, velocity) pipe configurations
// every fluid is evaluated over. It is read-only after construction.
type Sweep struct {
	lengths    []float64
	diameters  []float64
	velocities []float64
}

func NewSweep(lengths, diameters, velocities []float64) (Sweep, error) {
	if len(lengths) != len(diameters) || len(lengths) != len(velocities) {
		return Sweep{}, fmt.Errorf("%w: lengths=%d diameters=%d velocities=%d",
			ErrSweepMismatch, len(lengths), len(diameters), len(velocities))
	}
	if len(lengths) == 0 {
		return Sweep{}, fmt.Errorf("%w: empty sweep", ErrSweepMismatch)
	}
	return Sweep{
		lengths:    clone(lengths),
		diameters:  clone(diameters),
		velocities: clone(velocities),
	}, nil
}

func DefaultSweep() Sweep {
	s, _ := NewSweep(defaultLengths, defaultDiameters, defaultVelocities)
	return s
}

func (s Sweep) Len() int {
	return len(s.lengths)
}

// Point returns the i-th pipe configuration.
func (s Sweep) Point(i int) (length, diameter, velocity float64) {
	return s.lengths[i], s.diameters[i], s.velocities[i]
}

func (s Sweep) Lengths() []float64    { return clone(s.lengths) }
func (s Sweep) Diameters() []float64  { return clone(s.diameters) }
func (s Sweep) Velocities() []float64 { return clone(s.velocities) }

func clone(src []float64) []float64 {
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}
