package extract

import "github.com/tinwell/muster/model"

// walk is the classification state machine driving the whole assembly.
// parent is the unit whose models list nested model entries join; nil at
// force level.
//
// Placement: a model-typed node under an active parent becomes one of the
// parent's models; every other unit/model node is a top-level unit, even
// when nested (independent sub-units inside a squad container stay top
// level).
func (x *Extractor) walk(selections []model.Selection, parent *model.Unit) {
	for _, sel := range selections {
		switch sel.Kind {
		case model.KindConfiguration:
			// Detachment choices, battle size, etc. Never recursed into.
			continue

		case model.KindUnit, model.KindModel:
			u := x.buildUnit(sel)
			if parent != nil && sel.Kind == model.KindModel {
				parent.Models = append(parent.Models, u)
			} else {
				x.out.Units = append(x.out.Units, u)
			}

			// The subtree pass must run before the leader check: the Leader
			// ability can sit on a nested selection rather than the unit
			// node itself.
			if len(sel.Children) > 0 {
				x.aggregateSubtree(sel.Children, u)
			}

			if parent != nil && !parent.IsLeader && u.IsLeader && sel.Kind != model.KindModel {
				x.attach(parent.ID, u.ID)
				u.DefaultHostID = parent.ID
			}

			if len(sel.Children) > 0 {
				x.walk(sel.Children, u)
			}

		default:
			// Pure pass-through container: recurse with the same parent.
			if len(sel.Children) > 0 {
				x.walk(sel.Children, parent)
			}
		}
	}
}
