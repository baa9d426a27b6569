// Package wizard drives the multi-step diagnostic intake form: a fixed-order
// sequence of steps, each gated by its own validation, collecting the draft
// the scoring engine consumes. One wizard belongs to one visitor session and
// is never shared between goroutines.
package wizard

import (
	"context"
	"errors"

	"rampung/internal/domain"
)

type Step int

const (
	StepContact Step = iota
	StepBudget
	StepPlatform
	StepTargetUser
	StepFeatures
	StepTimeline
	StepSubmitting
	StepDone
)

// TotalSteps counts only the data-entry steps, not the terminal states.
const TotalSteps = 6

func (s Step) String() string {
	switch s {
	case StepContact:
		return "contact"
	case StepBudget:
		return "budget"
	case StepPlatform:
		return "platform"
	case StepTargetUser:
		return "target_user"
	case StepFeatures:
		return "features"
	case StepTimeline:
		return "timeline"
	case StepSubmitting:
		return "submitting"
	case StepDone:
		return "done"
	}
	return "unknown"
}

var (
	ErrUnknownField = errors.New("unknown draft field")
	ErrFinished     = errors.New("wizard already finished")
)

// submitFailedMsg is the single generic error surfaced when the submission
// boundary rejects the draft. The draft itself stays intact.
const submitFailedMsg = "Failed to submit. Please try again."

// Submitter is the submission boundary: one atomic external call, success or
// failure, no partial state. The wizard never retries on its own.
type Submitter interface {
	Submit(ctx context.Context, d domain.Draft) error
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, d domain.Draft) error

func (f SubmitterFunc) Submit(ctx context.Context, d domain.Draft) error { return f(ctx, d) }

// Wizard holds the draft being collected, the current step and the per-field
// validation errors of the step the visitor is on.
type Wizard struct {
	draft     domain.Draft
	step      Step
	errs      map[string]string
	submitter Submitter
}

func New(submitter Submitter) *Wizard {
	return &Wizard{
		step:      StepContact,
		errs:      map[string]string{},
		submitter: submitter,
	}
}

func (w *Wizard) CurrentStep() Step { return w.step }

func (w *Wizard) Done() bool { return w.step == StepDone }

// Draft returns a copy of the collected answers.
func (w *Wizard) Draft() domain.Draft {
	d := w.draft
	d.Features = append([]domain.Feature(nil), w.draft.Features...)
	return d
}

// Errors returns a copy of the current per-field error messages.
func (w *Wizard) Errors() map[string]string {
	out := make(map[string]string, len(w.errs))
	for k, v := range w.errs {
		out[k] = v
	}
	return out
}

// Set updates one draft field by its wire name. Only that field's error is
// cleared; sibling errors stay until their field is edited or revalidated.
func (w *Wizard) Set(field string, value any) error {
	if w.step == StepDone {
		return ErrFinished
	}

	switch field {
	case "name":
		s, ok := value.(string)
		if !ok {
			return ErrUnknownField
		}
		w.draft.Name = s
	case "email":
		s, ok := value.(string)
		if !ok {
			return ErrUnknownField
		}
		w.draft.Email = s
	case "company":
		s, ok := value.(string)
		if !ok {
			return ErrUnknownField
		}
		w.draft.Company = s
	case "budget_idr":
		s, ok := value.(string)
		if !ok {
			return ErrUnknownField
		}
		w.draft.BudgetIDR = s
	case "budget_usd":
		s, ok := value.(string)
		if !ok {
			return ErrUnknownField
		}
		w.draft.BudgetUSD = s
	case "platform":
		s, ok := value.(string)
		if !ok {
			return ErrUnknownField
		}
		w.draft.Platform = domain.Platform(s)
	case "platform_other":
		s, ok := value.(string)
		if !ok {
			return ErrUnknownField
		}
		w.draft.PlatformOther = s
	case "target_user":
		s, ok := value.(string)
		if !ok {
			return ErrUnknownField
		}
		w.draft.TargetUser = domain.TargetUser(s)
	case "features":
		fs, ok := value.([]domain.Feature)
		if !ok {
			return ErrUnknownField
		}
		w.draft.Features = append([]domain.Feature(nil), fs...)
	case "timeline":
		s, ok := value.(string)
		if !ok {
			return ErrUnknownField
		}
		w.draft.Timeline = domain.Timeline(s)
	default:
		return ErrUnknownField
	}

	delete(w.errs, field)
	return nil
}

// GoNext validates the current step. With a failing gate it records the
// per-field errors and stays put. From the last step a passing gate triggers
// the submission boundary: success finishes the wizard, failure returns to
// the last step with a generic error and the draft untouched.
func (w *Wizard) GoNext(ctx context.Context) error {
	if w.step == StepDone {
		return ErrFinished
	}
	if w.step > StepTimeline {
		return nil
	}

	if errs := ValidateStep(w.draft, w.step); len(errs) > 0 {
		w.errs = errs
		return nil
	}
	w.errs = map[string]string{}

	if w.step < StepTimeline {
		w.step++
		return nil
	}

	return w.submit(ctx)
}

func (w *Wizard) submit(ctx context.Context) error {
	w.step = StepSubmitting
	if err := w.submitter.Submit(ctx, w.Draft()); err != nil {
		w.step = StepTimeline
		w.errs["submit"] = submitFailedMsg
		return err
	}
	w.step = StepDone
	return nil
}

// GoBack steps backward without validating and without touching the draft.
// It is a no-op on the first step and after completion.
func (w *Wizard) GoBack() {
	if w.step > StepContact && w.step <= StepTimeline {
		w.step--
	}
}
