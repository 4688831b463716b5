// Package wizard models the community creation flow as an explicit
// finite-state machine. The transition function is pure so step gating
// can be exercised without any HTTP or storage in play.
package wizard

import (
	"errors"
	"strings"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/community"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/plan"
)

// Step identifies a wizard step. Steps are linear: BasicInfo →
// Category → Plan → Review.
type Step int

// Wizard steps in order.
const (
	StepBasicInfo Step = iota
	StepCategory
	StepPlan
	StepReview
)

// stepNames maps steps to display names.
var stepNames = map[Step]string{
	StepBasicInfo: "Basic Info",
	StepCategory:  "Category",
	StepPlan:      "Plan",
	StepReview:    "Review",
}

// String returns the display name of the step.
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Event is a wizard transition event.
type Event int

// Wizard events.
const (
	EventNext Event = iota
	EventBack
	EventLaunch
)

// Transition errors
var (
	ErrStepIncomplete = errors.New("current step has missing required fields")
	ErrNotAtReview    = errors.New("launch is only available from the review step")
	ErrAlreadyAtEnd   = errors.New("already at the last step")
	ErrUnknownEvent   = errors.New("unknown wizard event")
)

// Draft is the wizard's working state. It is created empty, mutated by
// field edits, and consumed read-only at launch. There is no autosave:
// abandoning the wizard discards the draft.
type Draft struct {
	Name           string
	Description    string
	Category       string
	TargetAudience string
	SelectedPlanID string
	WelcomeMessage string
}

// IsStepValid reports whether the required fields of a step are filled.
// Review has no requirements of its own; it only echoes prior steps.
// INVARIANT: pure; neither step nor draft is mutated
func IsStepValid(step Step, d Draft) bool {
	switch step {
	case StepBasicInfo:
		return strings.TrimSpace(d.Name) != "" && strings.TrimSpace(d.Description) != ""
	case StepCategory:
		return strings.TrimSpace(d.Category) != "" && strings.TrimSpace(d.TargetAudience) != ""
	case StepPlan:
		return strings.TrimSpace(d.SelectedPlanID) != ""
	case StepReview:
		return true
	default:
		return false
	}
}

// Transition applies an event to the current step and returns the next
// step. Next is a hard gate: an invalid step never advances. Back clamps
// at the first step. Launch is only legal from Review and leaves the
// step unchanged; the caller performs the actual submission.
// INVARIANT: pure; (step, event, draft) fully determine the result
func Transition(step Step, event Event, d Draft) (Step, error) {
	switch event {
	case EventNext:
		if step >= StepReview {
			return step, ErrAlreadyAtEnd
		}
		if !IsStepValid(step, d) {
			return step, ErrStepIncomplete
		}
		return step + 1, nil
	case EventBack:
		if step <= StepBasicInfo {
			return StepBasicInfo, nil
		}
		return step - 1, nil
	case EventLaunch:
		if step != StepReview {
			return step, ErrNotAtReview
		}
		return step, nil
	default:
		return step, ErrUnknownEvent
	}
}

// ValidateDraft checks every gated step in order and returns the first
// failure. Launch submissions re-run this server-side so a payload can
// never skip a gate.
func ValidateDraft(d Draft) error {
	for step := StepBasicInfo; step < StepReview; step++ {
		if !IsStepValid(step, d) {
			return ErrStepIncomplete
		}
	}
	return nil
}

// Payload is the community creation payload assembled at launch: the
// draft joined with the resolved plan and category label.
type Payload struct {
	Name           string
	DisplayName    string
	Description    string
	Category       string
	CategoryLabel  string
	TargetAudience string
	WelcomeMessage string
	PlanID         string
	PlanName       string
	PlanPrice      int
	PlanPeriod     string
}

// BuildPayload assembles the launch payload from a completed draft and
// the catalog the wizard was offered. The selected plan must resolve;
// a dangling plan id fails the launch rather than producing a payload
// with empty plan fields.
// PRE: d passed ValidateDraft
// POST: returns a payload whose plan fields match the selected plan
func BuildPayload(d Draft, catalog plan.Catalog) (Payload, error) {
	if err := ValidateDraft(d); err != nil {
		return Payload{}, err
	}
	selected, err := catalog.FindByID(d.SelectedPlanID)
	if err != nil {
		return Payload{}, err
	}
	label, ok := community.CategoryLabels[d.Category]
	if !ok {
		return Payload{}, community.ErrInvalidCategory
	}
	return Payload{
		Name:           community.Slugify(d.Name),
		DisplayName:    strings.TrimSpace(d.Name),
		Description:    d.Description,
		Category:       d.Category,
		CategoryLabel:  label,
		TargetAudience: d.TargetAudience,
		WelcomeMessage: d.WelcomeMessage,
		PlanID:         selected.ID,
		PlanName:       selected.Name,
		PlanPrice:      selected.Price,
		PlanPeriod:     selected.Period,
	}, nil
}
