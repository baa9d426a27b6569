// Package scoring turns a completed diagnostic questionnaire into a complexity
// score. Everything here is a pure lookup over fixed tables: same draft in,
// same result out, no I/O. Unknown enum values fall back to a default instead
// of failing, so the engine is total even if upstream validation is bypassed.
package scoring

import (
	"strings"

	"rampung/internal/domain"
)

type tier struct {
	max   int64
	score int
}

var budgetIDRTiers = []tier{
	{10_000_000, 1},
	{50_000_000, 2},
	{150_000_000, 3},
	{500_000_000, 4},
}

var budgetUSDTiers = []tier{
	{700, 1},
	{3_500, 2},
	{10_000, 3},
	{35_000, 4},
}

var platformScores = map[domain.Platform]int{
	domain.PlatformWebApp:        2,
	domain.PlatformMobileAndroid: 3,
	domain.PlatformOther:         3,
}

var targetUserScores = map[domain.TargetUser]int{
	domain.TargetInternal:    1,
	domain.TargetB2B:         2,
	domain.TargetB2C:         4,
	domain.TargetMarketplace: 5,
	domain.TargetUnknown:     0,
}

var featureWeights = map[domain.Feature]int{
	domain.FeatureAuth:          1,
	domain.FeaturePayment:       3,
	domain.FeatureRealtime:      3,
	domain.FeatureDashboard:     2,
	domain.FeatureFileUpload:    1,
	domain.FeatureThirdPartyAPI: 2,
	domain.FeatureAdminPanel:    2,
	domain.FeatureGeolocation:   2,
}

var featureNormalization = []tier{
	{3, 1},
	{6, 2},
	{9, 3},
	{12, 4},
}

var timelineScores = map[domain.Timeline]int{
	domain.TimelineUrgent:    5,
	domain.TimelineNormal:    3,
	domain.TimelineFlexible:  2,
	domain.TimelineLongTerm:  1,
	domain.TimelineUndecided: 0,
}

type complexityTier struct {
	max   int
	level domain.ComplexityLevel
}

var complexityTiers = []complexityTier{
	{8, domain.ComplexityLow},
	{14, domain.ComplexityMedium},
	{19, domain.ComplexityHigh},
}

// Result holds the five sub-scores, their total, and the derived tier.
type Result struct {
	Budget          int                    `json:"budget"`
	Platform        int                    `json:"platform"`
	TargetUser      int                    `json:"target_user"`
	Features        int                    `json:"features"`
	Timeline        int                    `json:"timeline"`
	TotalScore      int                    `json:"total_score"`
	ComplexityLevel domain.ComplexityLevel `json:"complexity_level"`
}

// Flags are the risk markers derived from a draft and its score.
type Flags struct {
	TimelineWarning  bool `json:"timeline_warning"`
	NeedsMultiTenant bool `json:"needs_multi_tenant"`
}

// ParseAmount extracts the digits of a raw budget string as an integer.
// Separators and currency noise are ignored; a blank or digit-free string is 0.
func ParseAmount(raw string) int64 {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}
	var n int64
	for _, r := range digits {
		n = n*10 + int64(r-'0')
		if n > 1<<53 {
			// past any meaningful budget tier, stop before overflow
			return n
		}
	}
	return n
}

func amountScore(amount int64, tiers []tier) int {
	if amount <= 0 {
		return 0
	}
	for _, t := range tiers {
		if amount <= t.max {
			return t.score
		}
	}
	return 5
}

// budgetScore combines the IDR and USD signals optimistically: the higher of
// the two wins when both are given.
func budgetScore(idr, usd string) int {
	idrScore := amountScore(ParseAmount(idr), budgetIDRTiers)
	usdScore := amountScore(ParseAmount(usd), budgetUSDTiers)
	if idrScore > usdScore {
		return idrScore
	}
	return usdScore
}

func featuresScore(features []domain.Feature) int {
	if len(features) == 0 {
		return 1
	}
	weight := 0
	for _, f := range features {
		weight += featureWeights[f]
	}
	for _, t := range featureNormalization {
		if weight <= int(t.max) {
			return t.score
		}
	}
	return 5
}

// Score computes the five sub-scores for a completed draft, sums them and maps
// the total onto a complexity level.
func Score(d domain.Draft) Result {
	r := Result{
		Budget:   budgetScore(d.BudgetIDR, d.BudgetUSD),
		Features: featuresScore(d.Features),
	}

	var ok bool
	if r.Platform, ok = platformScores[d.Platform]; !ok {
		r.Platform = 3
	}
	r.TargetUser = targetUserScores[d.TargetUser]
	r.Timeline = timelineScores[d.Timeline]

	// Zero sub-scores are skipped, matching the historical output shape.
	// Arithmetically this is the same as summing everything.
	for _, s := range []int{r.Budget, r.Platform, r.TargetUser, r.Features, r.Timeline} {
		if s > 0 {
			r.TotalScore += s
		}
	}

	r.ComplexityLevel = domain.ComplexityEnterprise
	for _, t := range complexityTiers {
		if r.TotalScore <= t.max {
			r.ComplexityLevel = t.level
			break
		}
	}

	return r
}

// DeriveFlags computes the risk flags for a scored draft.
// A timeline warning fires when the lead wants urgent delivery but the total
// score says the project is too complex for that to be realistic.
func DeriveFlags(d domain.Draft, r Result) Flags {
	return Flags{
		TimelineWarning:  d.Timeline == domain.TimelineUrgent && r.TotalScore >= 15,
		NeedsMultiTenant: d.TargetUser == domain.TargetMarketplace,
	}
}
