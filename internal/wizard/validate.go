package wizard

import (
	"regexp"
	"strings"

	"rampung/internal/domain"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation messages, keyed by wire field name. The HTTP ingress reuses
// these so client and server reject a bad draft with identical wording.
const (
	msgNameRequired       = "Name is required (min 2 chars)"
	msgEmailInvalid       = "Invalid email format"
	msgPlatformRequired   = "Select a platform"
	msgPlatformOtherEmpty = "Please specify your platform"
	msgTargetUserRequired = "Select target user"
	msgFeaturesEmpty      = "Select at least 1 feature"
	msgTimelineRequired   = "Select a timeline"
)

// ValidateStep runs one step's gate over the draft and returns per-field
// messages, empty when the gate passes. The budget step has no gate.
func ValidateStep(d domain.Draft, step Step) map[string]string {
	errs := map[string]string{}

	switch step {
	case StepContact:
		if len(strings.TrimSpace(d.Name)) < 2 {
			errs["name"] = msgNameRequired
		}
		if !emailRe.MatchString(d.Email) {
			errs["email"] = msgEmailInvalid
		}
	case StepBudget:
		// budget is always optional
	case StepPlatform:
		if d.Platform == "" {
			errs["platform"] = msgPlatformRequired
		}
		if d.Platform == domain.PlatformOther && strings.TrimSpace(d.PlatformOther) == "" {
			errs["platform_other"] = msgPlatformOtherEmpty
		}
	case StepTargetUser:
		if d.TargetUser == "" {
			errs["target_user"] = msgTargetUserRequired
		}
	case StepFeatures:
		if len(d.Features) == 0 {
			errs["features"] = msgFeaturesEmpty
		}
	case StepTimeline:
		if d.Timeline == "" {
			errs["timeline"] = msgTimelineRequired
		}
	}

	return errs
}

// ValidateDraft runs every step gate over a full draft, merging the results.
// The submission ingress uses this as its server-side gate, so a draft that
// bypassed the wizard is checked against the same rules.
func ValidateDraft(d domain.Draft) map[string]string {
	errs := map[string]string{}
	for step := StepContact; step <= StepTimeline; step++ {
		for field, msg := range ValidateStep(d, step) {
			errs[field] = msg
		}
	}
	return errs
}
