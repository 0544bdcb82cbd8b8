package calculator

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"pipeflow/model"
)

var ErrInvalidEnvironment = errors.New("invalid environment")

// calculator 的接口定义
type Calculator interface {
	// 单个流体
	Calculate(fluid model.Fluid) (Series, error)

	// 依次计算所有流体，非法流体跳过
	CalculateAll(fluids []model.Fluid) ([]FluidSeries, []Rejection)

	// 设置管道方向
	SetOrientation(o model.Orientation)
	Environment() model.Environment

	Sweep() Sweep
}

// Rejection records a fluid CalculateAll skipped.
type Rejection struct {
	Fluid  string `json:"fluid"`
	Reason string `json:"reason"`
}

type PipeCalculator struct {
	pipe  Pipe
	sweep Sweep
	cfg   Config
	env   model.Environment
}

func NewCalculator(cfg Config) *PipeCalculator {
	c := &PipeCalculator{
		pipe:  cfg.Pipe,
		sweep: cfg.Sweep,
		cfg:   cfg,
	}
	c.SetOrientation(cfg.Orientation)
	return c
}

func (c *PipeCalculator) SetOrientation(o model.Orientation) {
	c.env = model.Environment{
		Orientation: o,
		Gravity:     c.cfg.Gravity(o),
	}
	log.WithFields(log.Fields{
		"orientation": o,
		"gravity":     c.env.Gravity,
	}).Info("设置管道方向")
}

func (c *PipeCalculator) Environment() model.Environment {
	return c.env
}

func (c *PipeCalculator) Sweep() Sweep {
	return c.sweep
}

// Calculate validates the fluid and the environment before running the
// pipeline, so callers get an error instead of a NaN filled series. Inputs
// that pass validation but still overflow or underflow are rejected too.
func (c *PipeCalculator) Calculate(fluid model.Fluid) (Series, error) {
	if err := fluid.Validate(); err != nil {
		return nil, err
	}
	if g := c.env.Gravity; !(g > 0) || math.IsInf(g, 0) {
		return nil, fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidEnvironment, g)
	}
	series := Compute(fluid, c.sweep, c.pipe, c.env.Gravity)
	if !series.Finite() {
		return nil, fmt.Errorf("%w: %q: result is not finite", model.ErrInvalidFluid, fluid.Name)
	}
	return series, nil
}

func (c *PipeCalculator) CalculateAll(fluids []model.Fluid) ([]FluidSeries, []Rejection) {
	results := make([]FluidSeries, 0, len(fluids))
	var rejected []Rejection
	for _, fluid := range fluids {
		series, err := c.Calculate(fluid)
		if err != nil {
			log.WithField("fluid", fluid.Name).Warn("跳过流体: ", err)
			rejected = append(rejected, Rejection{Fluid: fluid.Name, Reason: err.Error()})
			continue
		}
		reMin, reMax := series.Range(KeyReynoldsNumber)
		log.WithFields(log.Fields{
			"fluid":       fluid.Name,
			"orientation": c.env.Orientation,
			"reMin":       reMin,
			"reMax":       reMax,
		}).Debug("计算完成")
		results = append(results, FluidSeries{Fluid: fluid, Series: series})
	}
	return results, rejected
}
