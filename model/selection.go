package model

import "github.com/tidwall/gjson"

// Kind classifies a selection once, at parse time. Everything downstream
// switches on this instead of re-reading the raw "type" string.
type Kind int

const (
	KindOther Kind = iota // organizational container or anything unrecognized
	KindConfiguration
	KindUnit
	KindModel
)

func classifyKind(t string) Kind {
	switch t {
	case "configuration":
		return KindConfiguration
	case "unit":
		return KindUnit
	case "model":
		return KindModel
	default:
		return KindOther
	}
}

// Selection is one node of the roster export tree. BattleScribe emits the
// same key set with wildly varying presence, so every field here has an
// explicit zero-value meaning: Number 0 means "absent, treat as 1",
// empty Children means leaf.
type Selection struct {
	Kind       Kind
	ID         string
	Name       string
	Number     int
	Categories []Category
	Costs      []Cost
	Profiles   []Profile
	Rules      []RuleStub
	Children   []Selection
}

// Category labels a selection; the primary one becomes the unit's type.
type Category struct {
	Name    string
	Primary bool
}

// Cost is a named numeric cost ("pts" is the only one the summary keeps).
type Cost struct {
	Name  string
	Value float64
}

// Profile is a typed characteristic block ("Unit", "Ranged Weapons",
// "Melee Weapons", "Abilities", ...).
type Profile struct {
	ID              string
	Name            string
	TypeName        string
	Characteristics []Characteristic
}

// Characteristic is one (name, text) pair of a profile. The export stores
// the text under "$text".
type Characteristic struct {
	Name string
	Text string
}

// RuleStub is a rule reference as it appears on a selection or force.
type RuleStub struct {
	ID          string
	Name        string
	Description string
	Hidden      bool
}

// Characteristic lookup by exact name; empty string when absent.
func (p Profile) Characteristic(name string) string {
	for _, c := range p.Characteristics {
		if c.Name == name {
			return c.Text
		}
	}
	return ""
}

// Count returns the repeat count, defaulting the absent case to 1.
func (s Selection) Count() int {
	if s.Number <= 0 {
		return 1
	}
	return s.Number
}

// ParseSelection converts one gjson node into a typed Selection. Missing
// fields degrade to zero values; nothing here errors.
func ParseSelection(v gjson.Result) Selection {
	sel := Selection{
		Kind:   classifyKind(v.Get("type").String()),
		ID:     v.Get("id").String(),
		Name:   v.Get("name").String(),
		Number: int(v.Get("number").Int()),
	}

	v.Get("categories").ForEach(func(_, c gjson.Result) bool {
		sel.Categories = append(sel.Categories, Category{
			Name:    c.Get("name").String(),
			Primary: c.Get("primary").Bool(),
		})
		return true
	})

	v.Get("costs").ForEach(func(_, c gjson.Result) bool {
		sel.Costs = append(sel.Costs, Cost{
			Name:  c.Get("name").String(),
			Value: c.Get("value").Float(),
		})
		return true
	})

	v.Get("profiles").ForEach(func(_, p gjson.Result) bool {
		sel.Profiles = append(sel.Profiles, ParseProfile(p))
		return true
	})

	v.Get("rules").ForEach(func(_, r gjson.Result) bool {
		sel.Rules = append(sel.Rules, ParseRuleStub(r))
		return true
	})

	v.Get("selections").ForEach(func(_, child gjson.Result) bool {
		sel.Children = append(sel.Children, ParseSelection(child))
		return true
	})

	return sel
}

// ParseSelections converts a "selections" array result; non-array input
// yields nil.
func ParseSelections(v gjson.Result) []Selection {
	var out []Selection
	v.ForEach(func(_, child gjson.Result) bool {
		out = append(out, ParseSelection(child))
		return true
	})
	return out
}

func ParseProfile(v gjson.Result) Profile {
	p := Profile{
		ID:       v.Get("id").String(),
		Name:     v.Get("name").String(),
		TypeName: v.Get("typeName").String(),
	}
	v.Get("characteristics").ForEach(func(_, c gjson.Result) bool {
		p.Characteristics = append(p.Characteristics, Characteristic{
			Name: c.Get("name").String(),
			Text: c.Get("$text").String(),
		})
		return true
	})
	return p
}

func ParseRuleStub(v gjson.Result) RuleStub {
	return RuleStub{
		ID:          v.Get("id").String(),
		Name:        v.Get("name").String(),
		Description: v.Get("description").String(),
		Hidden:      v.Get("hidden").Bool(),
	}
}
