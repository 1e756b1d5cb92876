// Package extract turns a parsed roster export tree into the compact
// summary document: one depth-first traversal that classifies nodes,
// aggregates weapons per unit, and deduplicates rules and abilities into
// global tables.
package extract

import (
	"github.com/tinwell/muster/mining"
	"github.com/tinwell/muster/model"
)

// Extractor owns the output document while it is being built. The three
// global tables (rules, abilities, attachments) are only ever touched
// through the insert-or-fetch operations below, which keeps re-registration
// idempotent no matter how many nodes reference the same record.
type Extractor struct {
	out *model.Roster
}

func New() *Extractor {
	return &Extractor{out: model.NewRoster()}
}

// Roster returns the document under construction.
func (x *Extractor) Roster() *model.Roster { return x.out }

// registerRule inserts a rule stub into the global table unless its id is
// already present, and returns the id. A stub without an id yields "" and
// callers treat that as a no-op.
func (x *Extractor) registerRule(stub model.RuleStub) string {
	if stub.ID == "" {
		return ""
	}
	if _, ok := x.out.Rules[stub.ID]; ok {
		return stub.ID
	}
	name := stub.Name
	if name == "" {
		name = "Unnamed Rule"
	}
	x.out.Rules[stub.ID] = &model.Rule{
		ID:          stub.ID,
		Name:        name,
		Description: stub.Description,
		Hidden:      stub.Hidden,
	}
	return stub.ID
}

// registerAbility inserts an Abilities profile into the global table unless
// its id is already present, and returns the id. The description comes from
// the profile's "Description" characteristic; missing text stays empty.
func (x *Extractor) registerAbility(p model.Profile) string {
	if p.ID == "" {
		return ""
	}
	if _, ok := x.out.Abilities[p.ID]; ok {
		return p.ID
	}
	name := p.Name
	if name == "" {
		name = "Unnamed Ability"
	}
	x.out.Abilities[p.ID] = &model.Ability{
		ID:          p.ID,
		Name:        name,
		Description: p.Characteristic("Description"),
	}
	return p.ID
}

// attach records a leader embedded in a host unit. Repeated registration of
// the same pair is a no-op.
func (x *Extractor) attach(hostID, leaderID string) {
	if hostID == "" || leaderID == "" {
		return
	}
	if x.out.Attachments == nil {
		x.out.Attachments = make(map[string][]string)
	}
	for _, id := range x.out.Attachments[hostID] {
		if id == leaderID {
			return
		}
	}
	x.out.Attachments[hostID] = append(x.out.Attachments[hostID], leaderID)
}

// mineAbility runs the text miner over one ability profile and merges the
// findings onto the unit.
func (x *Extractor) mineAbility(u *model.Unit, p model.Profile) {
	desc := p.Characteristic("Description")

	if mining.IsLeaderAbility(p.Name) {
		u.MarkLeader(mining.LeaderOptions(desc))
	}
	if rr := mining.DetectRerolls(desc); rr != nil {
		u.MergeRerolls(rr.Scope == mining.ScopeUnit, rr.Effects)
	}
	if mods := mining.DetectModifiers(desc); mods != nil {
		u.MergeModifiers(mods.Scope == mining.ScopeUnit, mods.Effects)
	}
}
