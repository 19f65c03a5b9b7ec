package entity

type SubmissionOutcome string

const (
	OutcomeCommitted        SubmissionOutcome = "committed"
	OutcomePendingDecision  SubmissionOutcome = "pending_decision"
	OutcomeNoActionablePost SubmissionOutcome = "no_actionable_post"
)

// SubmissionResult is returned by a submission. Only a committed result has
// written anything; for the other outcomes the caller carries Draft (and
// Oldest.ID) back in a ResolutionRequest.
type SubmissionResult struct {
	Outcome SubmissionOutcome `json:"status"`
	Post    *Post             `json:"post,omitempty"`
	Oldest  *Post             `json:"oldest_post,omitempty"`
	Draft   *Draft            `json:"draft,omitempty"`
}

type ResolutionAction string

const (
	ActionDeleteOldest ResolutionAction = "deleteOldest"
	ActionMoveToCore   ResolutionAction = "moveToCore"
	ActionAddDirectly  ResolutionAction = "addDirectly"
)

func (a ResolutionAction) Valid() bool {
	switch a {
	case ActionDeleteOldest, ActionMoveToCore, ActionAddDirectly:
		return true
	}
	return false
}

type ResolutionRequest struct {
	Action       ResolutionAction `json:"action"`
	OldestPostID uint64           `json:"oldest_post_id"`
	Draft        Draft            `json:"draft"`
}
