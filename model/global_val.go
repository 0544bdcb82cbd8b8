package model

// Orientation 管道方向
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Fluid property keys, short forms are the ones the old spin-box form used
const (
	PropDensity   = "density"
	PropShc       = "shc"
	PropViscosity = "viscosity"
)

var propertyAlias = map[string]string{
	"density":                PropDensity,
	"d":                      PropDensity,
	"shc":                    PropShc,
	"s":                      PropShc,
	"specific_heat_capacity": PropShc,
	"viscosity":              PropViscosity,
	"v":                      PropViscosity,
	"dynamic_viscosity":      PropViscosity,
}

// Message types exchanged with the front end
const (
	MsgEnv       = "env"
	MsgEnvSet    = "envSet"
	MsgFluids    = "fluids"
	MsgFluidsSet = "fluidsSet"
	MsgUpdate    = "update"
	MsgUpdated   = "updated"
	MsgCalculate = "calculate"
	MsgResult    = "calculated"
	MsgExport    = "export"
	MsgExported  = "exported"
	MsgError     = "error"
)
