package rules

import (
	"fmt"
	"math"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
)

// Registry manages the CEL environment and the named check formulas
// loaded from the catalog. Every skill check, DC, and reward multiplier
// in the game resolves through a formula here, so a catalog override
// can retune the rules without a rebuild.
type Registry struct {
	env      *cel.Env
	formulas map[string]string
}

// NewRegistry initializes the CEL environment with the game's check
// variables and functions. diceFunc resolves dice notation like "5d4"
// to a rolled total.
func NewRegistry(checks []data.Check, diceFunc func(string) int) (*Registry, error) {
	env, err := cel.NewEnv(
		cel.Variable("roll", cel.IntType),
		cel.Variable("stat", cel.IntType),
		cel.Variable("depth", cel.IntType),
		cel.Variable("difficulty", cel.IntType),
		cel.Variable("deaths", cel.IntType),
		cel.Variable("monster_dex", cel.IntType),

		cel.Function("dice",
			cel.Overload("dice_string",
				[]*cel.Type{cel.StringType},
				cel.IntType,
				cel.UnaryBinding(func(arg ref.Val) ref.Val {
					s := arg.Value().(string)
					return types.Int(diceFunc(s))
				}),
			),
		),
		cel.Function("ceil",
			cel.Overload("ceil_double",
				[]*cel.Type{cel.DoubleType},
				cel.IntType,
				cel.UnaryBinding(func(arg ref.Val) ref.Val {
					return types.Int(int64(math.Ceil(arg.Value().(float64))))
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	formulas := make(map[string]string, len(checks))
	for _, c := range checks {
		formulas[c.Name] = c.Formula
	}
	return &Registry{env: env, formulas: formulas}, nil
}

// Eval executes the named check against the provided variables.
func (r *Registry) Eval(name string, vars map[string]any) (any, error) {
	expr, ok := r.formulas[name]
	if !ok {
		return nil, fmt.Errorf("unknown check %q", name)
	}
	ast, iss := r.env.Compile(expr)
	if iss.Err() != nil {
		return nil, fmt.Errorf("check %q: %w", name, iss.Err())
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("check %q: %w", name, err)
	}
	out, _, err := prog.Eval(r.withDefaults(vars))
	if err != nil {
		return nil, fmt.Errorf("check %q: %w", name, err)
	}
	return out.Value(), nil
}

// EvalBool evaluates a pass/fail check.
func (r *Registry) EvalBool(name string, vars map[string]any) (bool, error) {
	out, err := r.Eval(name, vars)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("check %q: expected bool, got %T", name, out)
	}
	return b, nil
}

// EvalInt evaluates a DC or threshold formula.
func (r *Registry) EvalInt(name string, vars map[string]any) (int, error) {
	out, err := r.Eval(name, vars)
	if err != nil {
		return 0, err
	}
	switch v := out.(type) {
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	}
	return 0, fmt.Errorf("check %q: expected int, got %T", name, out)
}

// EvalFloat evaluates a multiplier formula.
func (r *Registry) EvalFloat(name string, vars map[string]any) (float64, error) {
	out, err := r.Eval(name, vars)
	if err != nil {
		return 0, err
	}
	switch v := out.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("check %q: expected float, got %T", name, out)
}

// withDefaults fills unset declared variables with zero so a formula
// never fails on an absent attribute.
func (r *Registry) withDefaults(vars map[string]any) map[string]any {
	full := map[string]any{
		"roll":        0,
		"stat":        0,
		"depth":       0,
		"difficulty":  0,
		"deaths":      0,
		"monster_dex": 0,
	}
	for k, v := range vars {
		full[k] = v
	}
	return full
}
