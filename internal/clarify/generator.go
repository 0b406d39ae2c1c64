package clarify

import "math/rand"

// Mode controls content variation.
type Mode string

const (
	// ModeStandard returns authored prose verbatim and lists in authored
	// order. Output is fully deterministic for a given input.
	ModeStandard Mode = "standard"
	// ModeVariation returns the alternate wording for prose fields that have
	// one and shuffles every list field independently.
	ModeVariation Mode = "variation"
)

// shuffleFunc mirrors the signature of rand.Shuffle.
type shuffleFunc func(n int, swap func(i, j int))

// Generator produces clarification records from free-form problem
// descriptions. It performs no I/O and holds no mutable state of its own, so
// a Generator built with NewGenerator is safe for concurrent use.
type Generator struct {
	shuffle shuffleFunc
}

// NewGenerator returns a generator backed by the global random source.
func NewGenerator() *Generator {
	return &Generator{shuffle: rand.Shuffle}
}

// NewGeneratorWithShuffle returns a generator with an explicit shuffle, so
// tests can pass a seeded rand.Rand's Shuffle or a no-op.
func NewGeneratorWithShuffle(fn shuffleFunc) *Generator {
	return &Generator{shuffle: fn}
}

// Generate classifies the input, assembles the selected branch's content, and
// completes any list field the branch left unset from the shared default
// pools. It accepts any string and never fails.
func (g *Generator) Generate(input string, mode Mode) *Result {
	br := classify(input)

	res := &Result{
		ProblemStatement:        br.problemStatement.pick(mode),
		ProblemContext:          br.problemContext.pick(mode),
		TargetUsers:             br.targetUsers.pick(mode),
		SolutionDirection:       br.solutionDirection.pick(mode),
		AssumptionsRisks:        br.assumptionsRisks.pick(mode),
		TechnicalConsiderations: br.technicalConsiderations.pick(mode),
		UserPainPoints:          g.list(br.painPoints, mode),
		KeyFeatures:             g.list(br.keyFeatures, mode),
		SuccessMetrics:          g.list(br.successMetrics, mode),
		NextSteps:               g.list(br.nextSteps, mode),
	}

	// Fallback completion is all-or-nothing: a branch that set a shorter but
	// non-empty list is never topped up.
	if len(res.SuccessMetrics) == 0 {
		res.SuccessMetrics = g.list(defaultSuccessMetrics, mode)
	}
	if len(res.NextSteps) == 0 {
		res.NextSteps = g.list(defaultNextSteps, mode)
	}

	return res
}

// list copies a pool so callers never alias the authored tables, shuffling
// the copy in variation mode.
func (g *Generator) list(pool []string, mode Mode) []string {
	if len(pool) == 0 {
		return nil
	}
	out := make([]string, len(pool))
	copy(out, pool)
	if mode == ModeVariation {
		g.shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}
	return out
}
