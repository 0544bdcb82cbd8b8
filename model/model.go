package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownProperty    = errors.New("unknown fluid property")
	ErrUnknownOrientation = errors.New("unknown orientation")
)

// 流体物性参数
type Fluid struct {
	Name                 string  `json:"name" validate:"required"`
	Density              float64 `json:"density" validate:"gt=0,finite"`                // kg/m3
	SpecificHeatCapacity float64 `json:"specific_heat_capacity" validate:"gt=0,finite"` // J/kg.K
	DynamicViscosity     float64 `json:"dynamic_viscosity" validate:"gt=0,finite"`      // Pa.s
}

// With returns a copy of f with one property replaced.
func (f Fluid) With(property string, value float64) (Fluid, error) {
	key, ok := propertyAlias[strings.ToLower(strings.TrimSpace(property))]
	if !ok {
		return f, fmt.Errorf("%w: %q", ErrUnknownProperty, property)
	}
	switch key {
	case PropDensity:
		f.Density = value
	case PropShc:
		f.SpecificHeatCapacity = value
	case PropViscosity:
		f.DynamicViscosity = value
	}
	return f, nil
}

// 前端发来的单个物性修改
type FluidUpdate struct {
	Name     string  `json:"name"`
	Property string  `json:"property"`
	Value    float64 `json:"value"`
}

func ParseOrientation(s string) (Orientation, error) {
	switch o := Orientation(strings.ToLower(strings.TrimSpace(s))); o {
	case Vertical, Horizontal:
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

func (o Orientation) String() string {
	return string(o)
}

// 计算环境，重力加速度由方向决定
type Environment struct {
	Orientation Orientation `json:"orientation"`
	Gravity     float64     `json:"gravity"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
