package clarify

import "regexp"

// prose holds up to two authored wordings for a field. Standard mode always
// returns the first; variation mode returns the second when one exists.
type prose struct {
	standard  string
	variation string
}

func (p prose) pick(mode Mode) string {
	if mode == ModeVariation && p.variation != "" {
		return p.variation
	}
	return p.standard
}

// branch is one mutually-exclusive content template. List fields left nil are
// filled from the shared default pools after assembly.
type branch struct {
	name string

	problemStatement        prose
	problemContext          prose
	targetUsers             prose
	solutionDirection       prose
	assumptionsRisks        prose
	technicalConsiderations prose

	painPoints     []string
	keyFeatures    []string
	successMetrics []string
	nextSteps      []string
}

// Keyword predicates over the raw input. Each predicate is independent and
// case-insensitive; any overlap between them is resolved by rule order in
// classify, not here.
var (
	reProductivity = regexp.MustCompile(`(?i)productivity|task|time|schedule|organize|workflow`)
	reData         = regexp.MustCompile(`(?i)data|information|track|find|search|store`)
	reSpeed        = regexp.MustCompile(`(?i)time|slow|fast|quick|efficient|waste`)
	reCost         = regexp.MustCompile(`(?i)expensive|cost|afford|price|cheap|budget`)
	reAccess       = regexp.MustCompile(`(?i)access|reach|available|hard to find`)
)

// signals are the second-level predicate results, computed once per input.
type signals struct {
	data   bool
	speed  bool
	cost   bool
	access bool
}

// rules maps predicates to branches. Evaluated top to bottom, first match
// wins; the final rule always matches. The branches are only mutually
// exclusive because of this ordering, so do not reorder entries.
var rules = []struct {
	match  wantFunc
	branch *branch
}{
	{func(text string, _ signals) bool { return reProductivity.MatchString(text) }, &productivityBranch},
	{func(_ string, s signals) bool { return s.data && s.speed }, &dataTimeBranch},
	{func(_ string, s signals) bool { return s.access }, &accessBranch},
	{func(_ string, s signals) bool { return s.cost }, &costBranch},
	{func(_ string, _ signals) bool { return true }, &genericBranch},
}

type wantFunc func(text string, s signals) bool

// classify selects the content branch for an input.
func classify(input string) *branch {
	s := signals{
		data:   reData.MatchString(input),
		speed:  reSpeed.MatchString(input),
		cost:   reCost.MatchString(input),
		access: reAccess.MatchString(input),
	}
	for _, r := range rules {
		if r.match(input, s) {
			return r.branch
		}
	}
	return &genericBranch // unreachable, final rule always matches
}

// Shared pools used when a branch leaves SuccessMetrics or NextSteps unset.
var (
	defaultSuccessMetrics = []string{
		"Qualitative feedback from the first ten users confirms the problem framing",
		"At least half of early users return within a week of first use",
		"A measurable reduction in the time or effort the problem currently costs",
		"Users can describe the value in their own words during follow-up interviews",
	}

	defaultNextSteps = []string{
		"Interview five to ten people who face this problem today",
		"Write a one-page summary of the problem and circulate it for reactions",
		"Sketch the smallest prototype that tests the riskiest assumption",
		"Define what evidence would justify building a full solution",
	}
)

var productivityBranch = branch{
	name: "productivity",
	problemStatement: prose{
		standard:  "People struggle to stay on top of tasks, schedules, and day-to-day work because their commitments are scattered across tools, channels, and their own memory, with no single view of what matters right now.",
		variation: "Work piles up faster than it can be organized: tasks live in too many places, schedules shift constantly, and deciding what to do next costs more attention than doing it.",
	},
	problemContext: prose{
		standard: "Raised in the context of personal organization and daily workflow rather than a missing technical capability.",
	},
	targetUsers: prose{
		standard:  "Knowledge workers, freelancers, and small team leads who juggle overlapping projects and deadlines and need a lightweight way to plan their day without adopting heavyweight project management.",
		variation: "Busy professionals and independent workers who coordinate their own schedules, switch contexts often, and lose meaningful time each day to figuring out what to work on next.",
	},
	solutionDirection: prose{
		standard:  "A focused planning companion that pulls tasks and commitments into one prioritized daily view, keeps scheduling friction low, and nudges rather than nags.",
		variation: "Start with a single trusted list: capture everything in one place, surface the few items that matter today, and let everything else wait quietly out of sight.",
	},
	assumptionsRisks: prose{
		standard: "Assumes the core problem is fragmentation rather than sheer volume of work; risks include entrenched habits around existing tools and the graveyard of productivity apps users have already tried and abandoned.",
	},
	technicalConsiderations: prose{
		standard: "Needs near-instant capture on every device the user touches; offline-first storage and calendar integration matter more than novel features.",
	},
	painPoints: []string{
		"Tasks are spread across notes, chat messages, and memory",
		"Planning the day takes longer than it should",
		"Deadlines surface too late to react calmly",
		"Context switching between tools breaks focus",
	},
	keyFeatures: []string{
		"One-keystroke task capture from anywhere",
		"A single prioritized view of today",
		"Lightweight scheduling that tolerates change",
		"Reminders tied to deadlines, not notification noise",
		"A weekly review that takes minutes, not an hour",
	},
	successMetrics: []string{
		"Users plan their day in under five minutes",
		"Fewer missed deadlines reported after one month",
		"Daily active use sustained past the novelty period",
		"Users report lower end-of-day anxiety about open work",
	},
	nextSteps: []string{
		"Shadow five target users through a full working day",
		"Prototype the capture-to-daily-view loop first",
		"Test whether a single list survives contact with real workloads",
		"Decide which calendar integrations are table stakes",
	},
}

var dataTimeBranch = branch{
	name: "data+time",
	problemStatement: prose{
		standard:  "Finding accurate, up-to-date information takes far longer than it should: the data exists somewhere, but locating it and trusting it is slow enough that people guess instead.",
		variation: "The information people need is technically available but practically out of reach, so decisions get delayed or made on stale data.",
	},
	targetUsers: prose{
		standard:  "Teams and individuals who make frequent decisions that depend on data they do not personally own, and who currently burn time hunting through systems, documents, and colleagues to find it.",
		variation: "Anyone whose work stalls while they chase down a number, a document, or a definitive answer that should have been one search away.",
	},
	solutionDirection: prose{
		standard:  "A fast, trustworthy retrieval layer over the places information already lives, optimized for answering the question at hand rather than for browsing.",
		variation: "Bring search, freshness signals, and provenance together so the first answer found is also one that can be trusted.",
	},
	assumptionsRisks: prose{
		standard: "Assumes the underlying data is good enough once found; risks include fragmented source systems, access permissions, and answers that look authoritative but are stale.",
	},
	technicalConsiderations: prose{
		standard: "Indexing and freshness tracking across heterogeneous sources dominates the design; raw relevance matters less than trust signals like source and age.",
	},
	painPoints: []string{
		"Information lives in too many disconnected places",
		"Search returns volume, not answers",
		"It is hard to tell whether a result is current",
		"Asking a colleague is often faster than the tools",
	},
	keyFeatures: []string{
		"Unified search across existing sources",
		"Freshness and provenance shown with every result",
		"Saved answers for questions asked repeatedly",
		"A fast path from question to source of truth",
	},
	successMetrics: []string{
		"Median time from question to trusted answer drops sharply",
		"Fewer duplicate questions asked in team channels",
		"Users stop maintaining private copies of shared data",
	},
	nextSteps: []string{
		"Catalog where the most-requested information lives today",
		"Measure how long the ten most common lookups take now",
		"Prototype unified search over the two highest-value sources",
	},
}

var accessBranch = branch{
	name: "access",
	problemStatement: prose{
		standard:  "The thing people need exists, but actually reaching it is hard: availability is limited, the path to it is unclear, or it is simply hard to find when it matters.",
		variation: "Access, not existence, is the bottleneck: what users need is out there but gated behind distance, availability windows, or obscurity.",
	},
	targetUsers: prose{
		standard:  "People outside the convenient center of a service's reach: underserved locations, off-hours users, and anyone for whom the default path to access does not work.",
		variation: "Users who are willing and able to engage but are turned away by availability, geography, or discoverability rather than by price or fit.",
	},
	solutionDirection: prose{
		standard:  "Widen the front door: make the resource discoverable, reachable through more channels, and available when users actually need it rather than when it is convenient to offer.",
		variation: "Meet users where they are, with more access points, clearer paths in, and availability that follows demand.",
	},
	assumptionsRisks: prose{
		standard: "Assumes demand exists and access is the true constraint; expanding reach may expose capacity limits that the current narrow access was quietly protecting.",
	},
	technicalConsiderations: prose{
		standard: "Distribution and discoverability work dominates; the core offering itself likely changes little.",
	},
	painPoints: []string{
		"The resource is only available in limited places or hours",
		"Users cannot tell where or how to get it",
		"The path to access has too many steps",
		"Alternatives win purely by being easier to reach",
	},
	keyFeatures: []string{
		"More access channels for the same underlying service",
		"A clear discovery path from need to entry point",
		"Availability aligned with when demand actually occurs",
		"Fewer steps between wanting and getting",
	},
	successMetrics: []string{
		"Reach grows among previously underserved users",
		"Drop-off between discovery and first use shrinks",
		"Support requests about how to get access decline",
	},
	// nextSteps deliberately unset; the default pool applies.
}

var costBranch = branch{
	name: "cost",
	problemStatement: prose{
		standard:  "The existing options are priced out of reach for the people described: the value may be real, but the cost structure does not fit their budget or scale.",
		variation: "Price, not capability, is the barrier: current solutions assume a budget the target users simply do not have.",
	},
	targetUsers: prose{
		standard:  "Price-sensitive buyers such as individuals, students, and small teams who need the core capability but cannot justify enterprise pricing.",
		variation: "Small organizations and individual users who are currently priced out and either go without or cobble together free workarounds.",
	},
	solutionDirection: prose{
		standard:  "Deliver the essential slice of the capability at a price that matches the audience, trading breadth of features for affordability and simplicity.",
		variation: "Unbundle: identify the fraction of the offering this audience actually uses and price that fairly on its own.",
	},
	assumptionsRisks: prose{
		standard: "Assumes a sustainable business exists at the lower price point; risks include incumbents discounting downmarket and the cheap tier anchoring the brand.",
	},
	technicalConsiderations: prose{
		standard: "Cost discipline must be structural: low-touch onboarding, self-serve support, and an architecture whose unit economics survive small customers.",
	},
	painPoints: []string{
		"Current options cost more than the problem justifies",
		"Pricing is designed for larger buyers",
		"Free alternatives exist but are unreliable or incomplete",
		"Switching feels risky when budgets are tight",
	},
	keyFeatures: []string{
		"A focused core feature set without enterprise padding",
		"Transparent pricing that scales down to one user",
		"Self-serve setup with no sales conversation",
		"A genuinely usable free or trial tier",
		"Monthly terms with no long-term lock-in",
	},
	successMetrics: []string{
		"Conversion from free to paid among small teams",
		"Cost to serve stays below the lean price point",
		"Churn attributed to price drops measurably",
	},
	nextSteps: []string{
		"Validate willingness to pay with a concrete price on a landing page",
		"Identify which features the target audience actually uses",
		"Model unit economics at the intended price point",
	},
}

var genericBranch = branch{
	name: "generic",
	problemStatement: prose{
		standard:  "A real friction exists in how people currently accomplish this, but the description does not yet pin down a single dominant cause; the clarification below frames the problem broadly so it can be narrowed with evidence.",
		variation: "Something about the current way of doing this is not working; the framing below stays deliberately broad until user evidence points at the sharpest pain.",
	},
	targetUsers: prose{
		standard:  "The people closest to the described pain: those who perform the task today and feel the friction directly, plus anyone downstream who inherits the consequences.",
		variation: "Early adopters who feel the described friction acutely enough to try an unproven alternative.",
	},
	solutionDirection: prose{
		standard:  "Start with the smallest intervention that removes the most visible friction, then let observed usage steer the roadmap.",
		variation: "Resist building broadly: pick one narrow wedge of the problem, solve it end to end, and expand only on demand.",
	},
	assumptionsRisks: prose{
		standard: "The main risk is solving a symptom rather than the cause; the framing above should be treated as a hypothesis, not a conclusion.",
	},
	technicalConsiderations: prose{
		standard: "Keep the first build disposable; technical commitments made before the problem is validated tend to outlive their usefulness.",
	},
	painPoints: []string{
		"The current approach demands more effort than the outcome justifies",
		"Workarounds have quietly become the standard process",
		"Nobody owns fixing the friction, so it persists",
	},
	keyFeatures: []string{
		"A minimal workflow that addresses the described friction directly",
		"Fast feedback loops to learn what users actually need",
		"A low switching cost from the current way of working",
	},
	// successMetrics and nextSteps deliberately unset; the default pools apply.
}
