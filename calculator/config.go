package calculator

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"pipeflow/model"
)

const DefaultConfigPath = "conf/config.ini"

var ErrInvalidPipe = errors.New("invalid pipe")

type Config struct {
	Pipe Pipe

	VerticalGravity   float64
	HorizontalGravity float64
	Orientation       model.Orientation

	Sweep Sweep

	OutputRoot string // 导出文件根目录
	FluidsFile string // 默认流体物性文件
	Addr       string // websocket 监听地址
}

func DefaultConfig() Config {
	cfg, _ := loadCfg(ini.Empty())
	return cfg
}

// LoadConfig reads an ini file. A missing file or key falls back to the
// built-in defaults; a present key that does not parse is an error.
func LoadConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		log.WithField("path", path).Warn("配置文件读取错误，使用默认配置: ", err)
		file = ini.Empty()
	}
	return loadCfg(file)
}

func loadCfg(file *ini.File) (Config, error) {
	pipe := file.Section("pipe")
	env := file.Section("environment")
	out := file.Section("output")

	orientation, err := model.ParseOrientation(env.Key("Orientation").MustString(string(model.Vertical)))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Orientation: orientation,
		OutputRoot:  out.Key("Root").MustString("generated"),
		FluidsFile:  out.Key("Fluids").MustString(""),
		Addr:        file.Section("server").Key("Addr").MustString(":9000"),
	}
	for _, k := range []struct {
		sec *ini.Section
		key string
		def float64
		dst *float64
	}{
		{pipe, "Roughness", 0.03, &cfg.Pipe.Roughness},
		{pipe, "ThermalConductivity", 401, &cfg.Pipe.ThermalConductivity},
		{env, "VerticalGravity", 9.81, &cfg.VerticalGravity},
		{env, "HorizontalGravity", 0.01, &cfg.HorizontalGravity},
	} {
		if *k.dst, err = floatKey(k.sec, k.key, k.def); err != nil {
			return Config{}, err
		}
	}
	if !(cfg.Pipe.Roughness >= 0) || !(cfg.Pipe.ThermalConductivity > 0) ||
		math.IsInf(cfg.Pipe.Roughness, 0) || math.IsInf(cfg.Pipe.ThermalConductivity, 0) {
		return Config{}, fmt.Errorf("%w: roughness must be non-negative and conductivity positive (roughness=%v, conductivity=%v)",
			ErrInvalidPipe, cfg.Pipe.Roughness, cfg.Pipe.ThermalConductivity)
	}
	if !(cfg.VerticalGravity > 0) || !(cfg.HorizontalGravity > 0) ||
		math.IsInf(cfg.VerticalGravity, 0) || math.IsInf(cfg.HorizontalGravity, 0) {
		return Config{}, fmt.Errorf("%w: gravity presets must be positive (vertical=%v, horizontal=%v)",
			ErrInvalidEnvironment, cfg.VerticalGravity, cfg.HorizontalGravity)
	}

	sweep := file.Section("sweep")
	lengths, err := floatList(sweep, "Lengths", defaultLengths)
	if err != nil {
		return Config{}, err
	}
	diameters, err := floatList(sweep, "Diameters", defaultDiameters)
	if err != nil {
		return Config{}, err
	}
	velocities, err := floatList(sweep, "Velocities", defaultVelocities)
	if err != nil {
		return Config{}, err
	}
	if cfg.Sweep, err = NewSweep(lengths, diameters, velocities); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func floatKey(sec *ini.Section, key string, def float64) (float64, error) {
	if !sec.HasKey(key) {
		return def, nil
	}
	v, err := sec.Key(key).Float64()
	if err != nil {
		return 0, fmt.Errorf("config [%s] %s: %w", sec.Name(), key, err)
	}
	return v, nil
}

func floatList(sec *ini.Section, key string, def []float64) ([]float64, error) {
	if !sec.HasKey(key) {
		return def, nil
	}
	v, err := sec.Key(key).StrictFloat64s(",")
	if err != nil {
		return nil, fmt.Errorf("config [%s] %s: %w", sec.Name(), key, err)
	}
	return v, nil
}

// Gravity returns the preset for an orientation.
func (c Config) Gravity(o model.Orientation) float64 {
	if o == model.Horizontal {
		return c.HorizontalGravity
	}
	return c.VerticalGravity
}
