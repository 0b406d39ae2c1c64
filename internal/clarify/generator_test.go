package clarify

import (
	"math/rand"
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestGenerateStandardIsDeterministic(t *testing.T) {
	inputs := []string{
		"I need to organize my tasks and schedule better",
		"It's hard to find accurate information quickly",
		"the clinic is only available downtown",
		"This tool is too expensive for small teams",
		"people dislike commuting",
	}

	g := NewGenerator()
	for _, input := range inputs {
		a := g.Generate(input, ModeStandard)
		b := g.Generate(input, ModeStandard)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Generate(%q, standard) differs between calls", input)
		}
	}
}

func TestGenerateListsNeverEmpty(t *testing.T) {
	// One input per branch, including the generic branch whose authored
	// metrics and next steps are empty and come from the default pools.
	inputs := map[string]string{
		"productivity": "help me manage my schedule",
		"data+time":    "finding information is slow",
		"access":       "services are hard to reach here",
		"cost":         "everything is too expensive",
		"generic":      "people dislike commuting",
	}

	g := NewGenerator()
	for branchName, input := range inputs {
		for _, mode := range []Mode{ModeStandard, ModeVariation} {
			res := g.Generate(input, mode)
			if len(res.UserPainPoints) == 0 {
				t.Errorf("%s/%s: UserPainPoints is empty", branchName, mode)
			}
			if len(res.KeyFeatures) == 0 {
				t.Errorf("%s/%s: KeyFeatures is empty", branchName, mode)
			}
			if len(res.SuccessMetrics) == 0 {
				t.Errorf("%s/%s: SuccessMetrics is empty", branchName, mode)
			}
			if len(res.NextSteps) == 0 {
				t.Errorf("%s/%s: NextSteps is empty", branchName, mode)
			}
		}
	}
}

func TestGenerateFallbackPools(t *testing.T) {
	g := NewGenerator()
	res := g.Generate("people dislike commuting", ModeStandard)

	if !reflect.DeepEqual(res.SuccessMetrics, defaultSuccessMetrics) {
		t.Errorf("generic SuccessMetrics = %v, want default pool", res.SuccessMetrics)
	}
	if !reflect.DeepEqual(res.NextSteps, defaultNextSteps) {
		t.Errorf("generic NextSteps = %v, want default pool", res.NextSteps)
	}

	// The access branch authors its own metrics but not its next steps.
	res = g.Generate("services are hard to reach here", ModeStandard)
	if reflect.DeepEqual(res.SuccessMetrics, defaultSuccessMetrics) {
		t.Error("access SuccessMetrics should be branch-authored, not the default pool")
	}
	if !reflect.DeepEqual(res.NextSteps, defaultNextSteps) {
		t.Errorf("access NextSteps = %v, want default pool", res.NextSteps)
	}
}

func TestGenerateVariationProse(t *testing.T) {
	g := NewGeneratorWithShuffle(rand.New(rand.NewSource(1)).Shuffle)
	input := "I need to organize my tasks and schedule better"

	std := g.Generate(input, ModeStandard)
	varied := g.Generate(input, ModeVariation)

	// Variation prose is one of exactly two authored strings, never a third.
	br := classify(input)
	if varied.ProblemStatement != br.problemStatement.variation {
		t.Errorf("variation ProblemStatement = %q, want authored variant", varied.ProblemStatement)
	}
	if varied.TargetUsers == std.TargetUsers {
		t.Error("variation TargetUsers should differ from standard when a variant exists")
	}
	// Fields with a single authored wording ignore the mode.
	if varied.AssumptionsRisks != std.AssumptionsRisks {
		t.Error("AssumptionsRisks has no variant and should not change with mode")
	}
	if varied.ProblemContext != std.ProblemContext {
		t.Error("ProblemContext has no variant and should not change with mode")
	}
}

func TestGenerateVariationListsArePermutations(t *testing.T) {
	g := NewGeneratorWithShuffle(rand.New(rand.NewSource(42)).Shuffle)
	inputs := []string{
		"help me manage my schedule",
		"finding information is slow",
		"services are hard to reach here",
		"everything is too expensive",
		"people dislike commuting",
	}

	for _, input := range inputs {
		std := g.Generate(input, ModeStandard)
		varied := g.Generate(input, ModeVariation)

		checks := []struct {
			field string
			a, b  []string
		}{
			{"UserPainPoints", std.UserPainPoints, varied.UserPainPoints},
			{"KeyFeatures", std.KeyFeatures, varied.KeyFeatures},
			{"SuccessMetrics", std.SuccessMetrics, varied.SuccessMetrics},
			{"NextSteps", std.NextSteps, varied.NextSteps},
		}
		for _, c := range checks {
			if !sameMultiset(c.a, c.b) {
				t.Errorf("%q: variation %s is not a permutation of standard\nstandard:  %v\nvariation: %v",
					input, c.field, c.a, c.b)
			}
		}
	}
}

func TestGenerateShuffleDoesNotMutatePools(t *testing.T) {
	g := NewGeneratorWithShuffle(rand.New(rand.NewSource(7)).Shuffle)
	before := make([]string, len(costBranch.keyFeatures))
	copy(before, costBranch.keyFeatures)

	for i := 0; i < 10; i++ {
		g.Generate("too expensive", ModeVariation)
	}

	if !reflect.DeepEqual(before, costBranch.keyFeatures) {
		t.Error("variation shuffling mutated the authored pool")
	}
}

func TestProductivityExample(t *testing.T) {
	g := NewGenerator()
	res := g.Generate("I need to organize my tasks and schedule better", ModeStandard)

	const anchor = "Knowledge workers, freelancers, and small team leads"
	if !strings.HasPrefix(res.TargetUsers, anchor) {
		t.Errorf("TargetUsers = %q, want prefix %q", res.TargetUsers, anchor)
	}
	if res.ProblemContext == "" {
		t.Error("productivity branch should populate ProblemContext")
	}
}

func TestDataTimeExample(t *testing.T) {
	g := NewGeneratorWithShuffle(rand.New(rand.NewSource(3)).Shuffle)
	res := g.Generate("It's hard to find accurate information quickly", ModeVariation)

	if !sameMultiset(res.UserPainPoints, dataTimeBranch.painPoints) {
		t.Errorf("UserPainPoints = %v, want the four data+time pain points in any order", res.UserPainPoints)
	}
	if len(dataTimeBranch.painPoints) != 4 {
		t.Fatalf("data+time pain point pool has %d entries, want 4", len(dataTimeBranch.painPoints))
	}
}

func TestCostExample(t *testing.T) {
	g := NewGenerator()
	res := g.Generate("This tool is too expensive for small teams", ModeStandard)

	if len(costBranch.keyFeatures) != 5 {
		t.Fatalf("cost feature pool has %d entries, want 5", len(costBranch.keyFeatures))
	}
	if !reflect.DeepEqual(res.KeyFeatures, costBranch.keyFeatures) {
		t.Errorf("KeyFeatures = %v, want the five cost features in authored order", res.KeyFeatures)
	}
}

func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	return reflect.DeepEqual(as, bs)
}
