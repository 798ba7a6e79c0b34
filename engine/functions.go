package engine

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/viant/sqlvec/vector"
	sqlite "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	registerErr  error
	active       atomic.Pointer[Config]
)

type function struct {
	name  string
	nArgs int32
	impl  func(cfg *Config, args []driver.Value) (driver.Value, error)
}

var functions = []function{
	{name: "vector", nArgs: 1, impl: vectorDefault},
	{name: "vector32", nArgs: 1, impl: vectorAs(vector.TypeFloat32)},
	{name: "vector64", nArgs: 1, impl: vectorAs(vector.TypeFloat64)},
	{name: "vector_extract", nArgs: 1, impl: vectorExtract},
	{name: "vector_distance_cos", nArgs: 2, impl: vectorDistance(vector.MetricCosine)},
	{name: "vector_distance_l2", nArgs: 2, impl: vectorDistance(vector.MetricL2)},
}

// RegisterVectorFunctions registers the vector SQL functions with the driver
// so they are available on connections opened after this call, and makes cfg
// the active configuration. Registration happens once per process; later
// calls only swap the configuration. A nil cfg means DefaultConfig.
func RegisterVectorFunctions(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Init(); err != nil {
		return err
	}
	active.Store(cfg)
	registerOnce.Do(func() {
		var errs []error
		for _, fn := range functions {
			if err := sqlite.RegisterDeterministicScalarFunction(fn.name, fn.nArgs, fn.call); err != nil {
				errs = append(errs, fmt.Errorf("register %s: %w", fn.name, err))
			}
		}
		registerErr = errors.Join(errs...)
	})
	if registerErr != nil {
		return registerErr
	}
	cfg.Logger.Info("vector functions configured",
		"enabled", cfg.Enabled,
		"default_type", cfg.defaultType.String(),
		"strict_binary", cfg.StrictBinary,
	)
	return nil
}

func (f function) call(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	cfg := active.Load()
	if cfg == nil || !cfg.Enabled {
		return nil, fmt.Errorf("%s: vector functions are disabled", f.name)
	}
	if len(args) != int(f.nArgs) {
		return nil, fmt.Errorf("%s: expected %d arguments, got %d", f.name, f.nArgs, len(args))
	}
	result, err := f.impl(cfg, args)
	if err != nil {
		cfg.Logger.Debug("vector function rejected input", "function", f.name, "error", err)
		return nil, fmt.Errorf("%s: %w", f.name, err)
	}
	return result, nil
}

// asOperand decodes a BLOB argument or keeps a TEXT argument unparsed.
// ok is false for NULL.
func asOperand(cfg *Config, arg driver.Value) (op vector.Operand, ok bool, err error) {
	switch v := arg.(type) {
	case nil:
		return op, false, nil
	case []byte:
		vec, err := vector.DecodeBinary(v, cfg.decodeOptions()...)
		if err != nil {
			return op, false, err
		}
		return vector.VectorOperand(vec), true, nil
	case string:
		return vector.TextOperand(v), true, nil
	default:
		return op, false, fmt.Errorf("unsupported argument type %T for vector; want TEXT or BLOB", arg)
	}
}

func vectorDefault(cfg *Config, args []driver.Value) (driver.Value, error) {
	op, ok, err := asOperand(cfg, args[0])
	if err != nil || !ok {
		return nil, err
	}
	vec, err := op.Resolve(cfg.defaultType)
	if err != nil {
		return nil, err
	}
	return vec.EncodeBinary(), nil
}

func vectorAs(typ vector.Type) func(cfg *Config, args []driver.Value) (driver.Value, error) {
	return func(cfg *Config, args []driver.Value) (driver.Value, error) {
		op, ok, err := asOperand(cfg, args[0])
		if err != nil || !ok {
			return nil, err
		}
		vec, err := op.Resolve(typ)
		if err != nil {
			return nil, err
		}
		return vec.Convert(typ).EncodeBinary(), nil
	}
}

func vectorExtract(cfg *Config, args []driver.Value) (driver.Value, error) {
	op, ok, err := asOperand(cfg, args[0])
	if err != nil || !ok {
		return nil, err
	}
	vec, err := op.Resolve(cfg.defaultType)
	if err != nil {
		return nil, err
	}
	return vector.ExtractText(vec), nil
}

func vectorDistance(metric vector.Metric) func(cfg *Config, args []driver.Value) (driver.Value, error) {
	return func(cfg *Config, args []driver.Value) (driver.Value, error) {
		x, xok, err := asOperand(cfg, args[0])
		if err != nil {
			return nil, err
		}
		y, yok, err := asOperand(cfg, args[1])
		if err != nil {
			return nil, err
		}
		if !xok || !yok {
			return nil, nil
		}
		a, b, err := vector.ResolvePair(x, y, cfg.defaultType)
		if err != nil {
			return nil, err
		}
		d, err := vector.Distance(metric, a, b)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}
