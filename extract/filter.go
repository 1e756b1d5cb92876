package extract

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tinwell/muster/model"
)

// FilterEnv wraps one output unit and exposes helper methods callable from
// filter expressions, e.g.
//
//	Points() > 100 && !IsLeader()
//	Category() == "Character" || HasAbility("Deadly Demise")
type FilterEnv struct {
	Unit   *model.Unit
	Roster *model.Roster
}

func (e FilterEnv) Name() string     { return e.Unit.Name }
func (e FilterEnv) Category() string { return e.Unit.Type }
func (e FilterEnv) Points() int      { return e.Unit.Points }
func (e FilterEnv) Count() int       { return e.Unit.Count }
func (e FilterEnv) IsLeader() bool   { return e.Unit.IsLeader }

// ModelCount is the number of distinct sub-model entries.
func (e FilterEnv) ModelCount() int { return len(e.Unit.Models) }

func (e FilterEnv) HasRule(name string) bool {
	for _, id := range e.Unit.Rules {
		if r, ok := e.Roster.Rules[id]; ok && strings.EqualFold(r.Name, name) {
			return true
		}
	}
	return false
}

func (e FilterEnv) HasAbility(name string) bool {
	for _, id := range e.Unit.Abilities {
		if a, ok := e.Roster.Abilities[id]; ok && strings.EqualFold(a.Name, name) {
			return true
		}
	}
	return false
}

func (e FilterEnv) HasWeapon(name string) bool {
	for _, w := range e.Unit.Weapons {
		if strings.EqualFold(w.Name, name) {
			return true
		}
	}
	return false
}

// CompileFilter compiles a unit filter expression to expr bytecode.
func CompileFilter(src string) (*vm.Program, error) {
	prog, err := expr.Compile(src, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", src, err)
	}
	return prog, nil
}

// ApplyFilter drops units the filter rejects. The global rule/ability/
// attachment tables are left as the full traversal built them; the filter
// restricts the derived unit list only.
func ApplyFilter(out *model.Roster, prog *vm.Program) error {
	kept := make([]*model.Unit, 0, len(out.Units))
	for _, u := range out.Units {
		result, err := vm.Run(prog, FilterEnv{Unit: u, Roster: out})
		if err != nil {
			return fmt.Errorf("run filter on %q: %w", u.Name, err)
		}
		if match, ok := result.(bool); ok && match {
			kept = append(kept, u)
		}
	}
	out.Units = kept
	return nil
}
