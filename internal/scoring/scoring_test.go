package scoring

import (
	"testing"

	"rampung/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{"", 0},
		{"0", 0},
		{"5000000", 5_000_000},
		{"5.000.000", 5_000_000},
		{"Rp 150,000,000", 150_000_000},
		{"$3,500", 3_500},
		{"abc", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseAmount(c.raw), "raw=%q", c.raw)
	}
}

func TestBudgetScoreTiers(t *testing.T) {
	cases := []struct {
		idr, usd string
		want     int
	}{
		{"", "", 0},
		{"0", "0", 0},
		{"10000000", "", 1},
		{"10000001", "", 2},
		{"50000000", "", 2},
		{"150000000", "", 3},
		{"500000000", "", 4},
		{"500000001", "", 5},
		{"", "700", 1},
		{"", "3500", 2},
		{"", "10000", 3},
		{"", "35000", 4},
		{"", "35001", 5},
		// the higher signal wins when both are given
		{"5000000", "50000", 5},
		{"500000001", "700", 5},
	}
	for _, c := range cases {
		got := budgetScore(c.idr, c.usd)
		assert.Equal(t, c.want, got, "idr=%q usd=%q", c.idr, c.usd)
	}
}

// Adding a second budget signal never lowers the sub-score.
func TestBudgetScoreMonotonicInSignals(t *testing.T) {
	idrValues := []string{"", "5000000", "60000000", "200000000", "900000000"}
	usdValues := []string{"", "500", "5000", "20000", "99999"}
	for _, idr := range idrValues {
		for _, usd := range usdValues {
			assert.GreaterOrEqual(t,
				budgetScore(idr, usd), budgetScore(idr, ""),
				"idr=%q usd=%q", idr, usd)
		}
	}
}

func TestFeaturesScore(t *testing.T) {
	cases := []struct {
		name     string
		features []domain.Feature
		want     int
	}{
		{"empty set floors at 1", nil, 1},
		{"single light feature", []domain.Feature{domain.FeatureAuth}, 1},
		{"weight 8 normalizes to 3", []domain.Feature{
			domain.FeaturePayment, domain.FeatureRealtime, domain.FeatureAdminPanel,
		}, 3},
		{"all features cap at 5", []domain.Feature{
			domain.FeatureAuth, domain.FeaturePayment, domain.FeatureRealtime,
			domain.FeatureDashboard, domain.FeatureFileUpload, domain.FeatureThirdPartyAPI,
			domain.FeatureAdminPanel, domain.FeatureGeolocation,
		}, 5},
		{"unknown feature carries no weight", []domain.Feature{"telepathy"}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, featuresScore(c.features))
		})
	}
}

func TestScoreLowComplexityLead(t *testing.T) {
	d := domain.Draft{
		Name:       "Jo",
		Email:      "jo@x.co",
		BudgetIDR:  "5000000",
		Platform:   domain.PlatformWebApp,
		TargetUser: domain.TargetInternal,
		Features:   []domain.Feature{domain.FeatureAuth},
		Timeline:   domain.TimelineLongTerm,
	}

	r := Score(d)
	assert.Equal(t, 1, r.Budget)
	assert.Equal(t, 2, r.Platform)
	assert.Equal(t, 1, r.TargetUser)
	assert.Equal(t, 1, r.Features)
	assert.Equal(t, 1, r.Timeline)
	assert.Equal(t, 6, r.TotalScore)
	assert.Equal(t, domain.ComplexityLow, r.ComplexityLevel)

	f := DeriveFlags(d, r)
	assert.False(t, f.TimelineWarning)
	assert.False(t, f.NeedsMultiTenant)
}

func TestScoreEnterpriseMarketplaceLead(t *testing.T) {
	d := domain.Draft{
		Name:       "Big Corp",
		Email:      "cto@big.example",
		BudgetUSD:  "50000",
		Platform:   domain.PlatformMobileAndroid,
		TargetUser: domain.TargetMarketplace,
		Features: []domain.Feature{
			domain.FeaturePayment, domain.FeatureRealtime, domain.FeatureAdminPanel,
		},
		Timeline: domain.TimelineUrgent,
	}

	r := Score(d)
	assert.Equal(t, 5, r.Budget)
	assert.Equal(t, 3, r.Platform)
	assert.Equal(t, 5, r.TargetUser)
	assert.Equal(t, 3, r.Features)
	assert.Equal(t, 5, r.Timeline)
	assert.Equal(t, 21, r.TotalScore)
	assert.Equal(t, domain.ComplexityEnterprise, r.ComplexityLevel)

	f := DeriveFlags(d, r)
	assert.True(t, f.TimelineWarning)
	assert.True(t, f.NeedsMultiTenant)
}

func TestScoreZeroSignalsContributeNothing(t *testing.T) {
	d := domain.Draft{
		Platform:   domain.PlatformWebApp,
		TargetUser: domain.TargetUnknown,
		Features:   []domain.Feature{domain.FeatureAuth},
		Timeline:   domain.TimelineUndecided,
	}

	r := Score(d)
	assert.Equal(t, 0, r.Budget)
	assert.Equal(t, 0, r.TargetUser)
	assert.Equal(t, 0, r.Timeline)
	// platform 2 + features 1
	assert.Equal(t, 3, r.TotalScore)
	assert.Equal(t, domain.ComplexityLow, r.ComplexityLevel)
}

func TestScoreUnknownPlatformFallsBack(t *testing.T) {
	d := domain.Draft{
		Platform:   "ios",
		TargetUser: domain.TargetB2B,
		Features:   []domain.Feature{domain.FeatureAuth},
		Timeline:   domain.TimelineNormal,
	}
	assert.Equal(t, 3, Score(d).Platform)
}

// Tier thresholds are inclusive on the upper bound.
func TestComplexityTierBoundaries(t *testing.T) {
	cases := []struct {
		total int
		want  domain.ComplexityLevel
	}{
		{0, domain.ComplexityLow},
		{8, domain.ComplexityLow},
		{9, domain.ComplexityMedium},
		{14, domain.ComplexityMedium},
		{15, domain.ComplexityHigh},
		{19, domain.ComplexityHigh},
		{20, domain.ComplexityEnterprise},
		{25, domain.ComplexityEnterprise},
	}
	for _, c := range cases {
		level := domain.ComplexityEnterprise
		for _, t2 := range complexityTiers {
			if c.total <= t2.max {
				level = t2.level
				break
			}
		}
		assert.Equal(t, c.want, level, "total=%d", c.total)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	d := domain.Draft{
		Name:       "Ana",
		Email:      "ana@acme.id",
		BudgetIDR:  "75000000",
		BudgetUSD:  "4000",
		Platform:   domain.PlatformOther,
		TargetUser: domain.TargetB2C,
		Features: []domain.Feature{
			domain.FeatureAuth, domain.FeatureDashboard, domain.FeatureGeolocation,
		},
		Timeline: domain.TimelineFlexible,
	}

	first := Score(d)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(d))
	}
	assert.Equal(t, DeriveFlags(d, first), DeriveFlags(d, first))
}

// Tiers never move down as the total grows.
func TestTierMonotonicity(t *testing.T) {
	rank := map[domain.ComplexityLevel]int{
		domain.ComplexityLow:        0,
		domain.ComplexityMedium:     1,
		domain.ComplexityHigh:       2,
		domain.ComplexityEnterprise: 3,
	}

	prev := domain.ComplexityLow
	for total := 0; total <= 25; total++ {
		level := domain.ComplexityEnterprise
		for _, t2 := range complexityTiers {
			if total <= t2.max {
				level = t2.level
				break
			}
		}
		assert.GreaterOrEqual(t, rank[level], rank[prev], "total=%d", total)
		prev = level
	}
}

func TestSubScoreRanges(t *testing.T) {
	drafts := []domain.Draft{
		{},
		{Platform: domain.PlatformWebApp, TargetUser: domain.TargetUnknown, Timeline: domain.TimelineUndecided},
		{
			BudgetIDR:  "999999999999",
			BudgetUSD:  "999999",
			Platform:   domain.PlatformOther,
			TargetUser: domain.TargetMarketplace,
			Features: []domain.Feature{
				domain.FeatureAuth, domain.FeaturePayment, domain.FeatureRealtime,
				domain.FeatureDashboard, domain.FeatureFileUpload, domain.FeatureThirdPartyAPI,
				domain.FeatureAdminPanel, domain.FeatureGeolocation,
			},
			Timeline: domain.TimelineUrgent,
		},
	}

	for _, d := range drafts {
		r := Score(d)
		assert.GreaterOrEqual(t, r.Budget, 0)
		assert.LessOrEqual(t, r.Budget, 5)
		assert.GreaterOrEqual(t, r.Platform, 2)
		assert.LessOrEqual(t, r.Platform, 3)
		assert.GreaterOrEqual(t, r.TargetUser, 0)
		assert.LessOrEqual(t, r.TargetUser, 5)
		assert.GreaterOrEqual(t, r.Features, 1)
		assert.LessOrEqual(t, r.Features, 5)
		assert.GreaterOrEqual(t, r.Timeline, 0)
		assert.LessOrEqual(t, r.Timeline, 5)
		sum := r.Budget + r.Platform + r.TargetUser + r.Features + r.Timeline
		assert.Equal(t, sum, r.TotalScore)
	}
}
