package calculator

import "math"

// 层流/湍流分界，严格小于才算层流
const LaminarThreshold = 2000.0

// 管道材料参数，对所有流体相同
type Pipe struct {
	Roughness           float64 // 绝对粗糙度
	ThermalConductivity float64 // 导热系数 W/m.K
}

func ReynoldsNumber(density, diameter, velocity, dynamicViscosity float64) float64 {
	return density * diameter * velocity / dynamicViscosity
}

func IsLaminar(re float64) bool {
	return re < LaminarThreshold
}

func LaminarFrictionFactor(re float64) float64 {
	return 64 / re
}

// TurbulentFrictionFactor is the composite regression fit used for Re >= 2000.
// The constants and exponents must not be simplified.
func TurbulentFrictionFactor(re, roughness, diameter float64) float64 {
	a := math.Pow(8/re, 12)
	b := math.Pow(2.457*math.Log(0.27*roughness/diameter+math.Pow(7/re, 0.9)), 16)
	c := math.Pow(37530/re, 16)
	return 2 * math.Pow(a+math.Pow(b+c, -1.5), 1.0/12)
}

func FrictionFactor(re, roughness, diameter float64) float64 {
	if IsLaminar(re) {
		return LaminarFrictionFactor(re)
	}
	return TurbulentFrictionFactor(re, roughness, diameter)
}

func PrandtlNumber(dynamicViscosity, specificHeatCapacity, conductivity float64) float64 {
	return dynamicViscosity * specificHeatCapacity / conductivity
}

// 达西公式
func HeadLoss(frictionFactor, length, diameter, velocity, gravity float64) float64 {
	return frictionFactor * length * velocity * velocity / (diameter * 2 * gravity)
}

// PressureLoss is reported negative for a positive head loss.
func PressureLoss(density, gravity, headLoss float64) float64 {
	return -density * gravity * headLoss
}

// Dittus-Boelter
func HeatTransferCoefficient(re, pr, conductivity, diameter float64) float64 {
	return 0.023 * math.Pow(re, 0.8) * math.Pow(pr, 0.4) * conductivity / diameter
}
