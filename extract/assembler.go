package extract

import (
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/tinwell/muster/model"
)

// Extract converts a roster export document into the compact summary.
// Metadata lookups degrade to sentinels; only structurally sound forces are
// traversed, malformed ones are skipped with a warning so a partially bad
// export still yields partial output.
func Extract(doc gjson.Result) *model.Roster {
	x := New()
	out := x.out

	out.ArmyName = "Unknown Army"
	if name := doc.Get("name"); name.Exists() && name.String() != "" {
		out.ArmyName = name.String()
	}
	out.Faction = extractFaction(doc)
	out.PointsTotal = int(doc.Get("roster.points.total").Float())

	forces := doc.Get("roster.forces")
	if !forces.IsArray() {
		slog.Warn("roster has no forces list; emitting metadata only")
		return out
	}

	forces.ForEach(func(_, force gjson.Result) bool {
		if !force.IsObject() {
			slog.Warn("skipping malformed force entry", "raw", force.Type.String())
			return true
		}
		force.Get("rules").ForEach(func(_, r gjson.Result) bool {
			x.registerRule(model.ParseRuleStub(r))
			return true
		})
		x.walk(model.ParseSelections(force.Get("selections")), nil)
		return true
	})

	return out
}

// extractFaction finds the first force's selection literally named
// "Detachment" and returns the name of its first child. Any missing link in
// that chain falls back to the sentinel.
func extractFaction(doc gjson.Result) string {
	faction := "Unknown Faction"
	doc.Get("roster.forces.0.selections").ForEach(func(_, sel gjson.Result) bool {
		if sel.Get("name").String() != "Detachment" {
			return true
		}
		if child := sel.Get("selections.0.name"); child.Exists() && child.String() != "" {
			faction = child.String()
		}
		return false
	})
	return faction
}
