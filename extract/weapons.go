package extract

import (
	"strings"

	"github.com/tinwell/muster/model"
)

// firingModeMarker prefixes multi-profile weapon names in the export
// ("➤ Plasma Gun - Standard" / "➤ Plasma Gun - Overcharge").
const firingModeMarker = "➤"

// weaponTally accumulates one weapon across the whole subtree walk.
type weaponTally struct {
	weapon *model.Weapon
	count  int
	models int
}

// weaponAccumulator is threaded explicitly through the recursive walk so the
// aggregation stays a pure fold over the subtree. Emission order is first
// sight.
type weaponAccumulator struct {
	order   []string
	tallies map[string]*weaponTally
}

func newWeaponAccumulator() *weaponAccumulator {
	return &weaponAccumulator{tallies: make(map[string]*weaponTally)}
}

func (acc *weaponAccumulator) add(w *model.Weapon, count, models int) {
	t := acc.tallies[w.ID]
	if t == nil {
		t = &weaponTally{weapon: w}
		acc.tallies[w.ID] = t
		acc.order = append(acc.order, w.ID)
	}
	t.count += count
	t.models += models
}

// aggregateSubtree walks a unit's children once, correlating weapon profiles
// across repeated model entries into per-unit summaries. Abilities and rules
// found anywhere in the subtree enrich the unit being built, not the
// sub-model they sit on. Unit-typed children are independent units (attached
// leaders, sub-units inside a squad container); the walker discovers those
// separately, so their subtrees never leak into this unit's aggregation.
func (x *Extractor) aggregateSubtree(children []model.Selection, u *model.Unit) {
	acc := newWeaponAccumulator()
	for _, child := range children {
		if child.Kind == model.KindConfiguration || child.Kind == model.KindUnit {
			continue
		}
		modelCount := 1
		if child.Kind == model.KindModel {
			modelCount = child.Count()
		}
		x.collect(child, modelCount, u, acc)
	}

	// A unit with no weapons gets no weapons field at all.
	for _, id := range acc.order {
		t := acc.tallies[id]
		t.weapon.Count = t.count
		t.weapon.ModelsWithWeapon = t.models
		u.Weapons = append(u.Weapons, t.weapon)
	}
}

// collect processes one selection and recurses. modelCount is the repeat
// multiplier in effect at this depth: entering a unit/model child replaces
// it with that child's own count, anything else passes it through unchanged.
func (x *Extractor) collect(sel model.Selection, modelCount int, u *model.Unit, acc *weaponAccumulator) {
	for _, p := range sel.Profiles {
		switch p.TypeName {
		case model.ProfileRanged, model.ProfileMelee:
			acc.add(x.buildWeapon(p, u), sel.Count(), modelCount)
		case model.ProfileAbilities:
			u.AddAbilityRef(x.registerAbility(p))
			x.mineAbility(u, p)
		}
	}
	for _, stub := range sel.Rules {
		u.AddRuleRef(x.registerRule(stub))
	}

	for _, child := range sel.Children {
		switch child.Kind {
		case model.KindConfiguration, model.KindUnit:
			continue
		case model.KindModel:
			x.collect(child, child.Count(), u, acc)
		default:
			x.collect(child, modelCount, u, acc)
		}
	}
}

// buildWeapon converts a weapon profile and, for firing-mode weapons, links
// the mode id under the unit's linked_weapons entry.
func (x *Extractor) buildWeapon(p model.Profile, u *model.Unit) *model.Weapon {
	chars := make(map[string]string, len(p.Characteristics))
	for _, c := range p.Characteristics {
		chars[strings.ToLower(c.Name)] = c.Text
	}

	lowerName := strings.ToLower(p.Name)
	w := &model.Weapon{
		ID:              p.ID,
		Name:            p.Name,
		Type:            p.TypeName,
		Characteristics: chars,
		IsHazardous: strings.Contains(strings.ToLower(chars["keywords"]), "hazardous") ||
			strings.Contains(lowerName, "hazardous"),
	}

	if strings.HasPrefix(p.Name, firingModeMarker) {
		w.BaseName = strings.SplitN(p.Name, " - ", 2)[0]
		w.OverchargeMode = "standard"
		if strings.Contains(lowerName, "overcharge") {
			w.OverchargeMode = "overcharge"
		}

		if u.LinkedWeapons == nil {
			u.LinkedWeapons = make(map[string]*model.WeaponModes)
		}
		modes := u.LinkedWeapons[w.BaseName]
		if modes == nil {
			modes = &model.WeaponModes{}
			u.LinkedWeapons[w.BaseName] = modes
		}
		if w.OverchargeMode == "overcharge" {
			modes.Overcharge = w.ID
		} else {
			modes.Standard = w.ID
		}
	}
	return w
}
