package extract

import (
	"github.com/google/uuid"

	"github.com/tinwell/muster/model"
)

// buildUnit converts one unit/model selection into an output unit: identity,
// category, points, statline, and whatever rules and abilities sit directly
// on the node. Weapons are the subtree walk's job, not this one's.
func (x *Extractor) buildUnit(sel model.Selection) *model.Unit {
	u := &model.Unit{
		ID:     sel.ID,
		Name:   sel.Name,
		Type:   primaryCategory(sel),
		Stats:  extractStats(sel),
		Points: pointsCost(sel),
		Count:  sel.Count(),
	}
	if u.ID == "" {
		u.ID = shortID()
	}

	for _, stub := range sel.Rules {
		u.AddRuleRef(x.registerRule(stub))
	}
	for _, p := range sel.Profiles {
		if p.TypeName == model.ProfileAbilities {
			u.AddAbilityRef(x.registerAbility(p))
			x.mineAbility(u, p)
		}
	}
	return u
}

// shortID generates a fallback id for selections the export left unnamed.
func shortID() string {
	return uuid.NewString()[:8]
}

// primaryCategory returns the primary category name, or "Unknown" when the
// node carries none.
func primaryCategory(sel model.Selection) string {
	for _, c := range sel.Categories {
		if c.Primary {
			return c.Name
		}
	}
	return "Unknown"
}

// pointsCost returns the "pts" cost as an integer, 0 when absent.
func pointsCost(sel model.Selection) int {
	for _, c := range sel.Costs {
		if c.Name == "pts" {
			return int(c.Value)
		}
	}
	return 0
}

// extractStats reads the statline from the node's own Unit-typed profiles.
// If that pass fills nothing at all, it falls back to the node's immediate
// unit/model children, first writer per field, never overwriting. A unit
// with no statline anywhere yields the zero Stats, which serializes as {}.
func extractStats(sel model.Selection) model.Stats {
	var st model.Stats
	fillStats(&st, sel.Profiles)

	if st.Empty() {
		for _, child := range sel.Children {
			if child.Kind != model.KindUnit && child.Kind != model.KindModel {
				continue
			}
			fillStats(&st, child.Profiles)
		}
	}
	return st
}

func fillStats(st *model.Stats, profiles []model.Profile) {
	for _, p := range profiles {
		if p.TypeName != model.ProfileUnit {
			continue
		}
		for _, c := range p.Characteristics {
			setStat(st, c.Name, c.Text)
		}
	}
}

// setStat maps the export's short characteristic codes onto named fields.
// An already-set field is never overwritten.
func setStat(st *model.Stats, code, value string) {
	switch code {
	case "M":
		if st.Move == "" {
			st.Move = value
		}
	case "T":
		if st.Toughness == "" {
			st.Toughness = value
		}
	case "SV":
		if st.Save == "" {
			st.Save = value
		}
	case "W":
		if st.Wounds == "" {
			st.Wounds = value
		}
	case "LD":
		if st.Leadership == "" {
			st.Leadership = value
		}
	case "OC":
		if st.ObjectiveControl == "" {
			st.ObjectiveControl = value
		}
	}
}
