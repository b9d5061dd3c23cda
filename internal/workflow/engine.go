package workflow

import "github.com/procureflow/backend-go/internal/domain"

// StageView is one stage of an entity's track annotated for display.
type StageView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	Completed bool   `json:"completed"`
	SLABreach bool   `json:"sla_breach"`
}

// ComputeStages maps (entity type, current status, breach flag) to the
// ordered stage view. A stage is active when its status set contains the
// current status; stages strictly before the first active stage are
// completed; the breach marker is raised only on active stages. A status
// that maps to no stage leaves every stage inactive and incomplete.
func ComputeStages(entityType domain.EntityType, status domain.Status, slaBreach bool) []StageView {
	track := stageTracks[entityType]
	if track == nil {
		return nil
	}

	// First match in list order; the algorithm must not assume the
	// status sets are disjoint.
	activeIdx := -1
	for i, stage := range track {
		if stage.contains(status) {
			activeIdx = i
			break
		}
	}

	views := make([]StageView, len(track))
	for i, stage := range track {
		active := stage.contains(status)
		views[i] = StageView{
			ID:        stage.ID,
			Name:      stage.Name,
			Active:    active,
			Completed: activeIdx >= 0 && i < activeIdx,
			SLABreach: active && slaBreach,
		}
	}

	return views
}

// StageForStatus resolves the stage id an entity in the given status
// belongs to, using first-match-in-list-order semantics. Terminal
// statuses outside the track (a rejected PR) pin the terminal stage.
// The second return is false when the status maps to no stage, in which
// case callers leave the stored stage untouched.
func StageForStatus(entityType domain.EntityType, status domain.Status) (string, bool) {
	for _, stage := range stageTracks[entityType] {
		if stage.contains(status) {
			return stage.ID, true
		}
	}

	if id, ok := terminalStages[entityType][status]; ok {
		return id, true
	}

	return "", false
}
