package clarify

// Result is the structured clarification produced for a free-form problem
// description. Both generation paths return this shape: the local template
// generator in this package and the remote service path in internal/remote.
type Result struct {
	ProblemStatement string `json:"problemStatement"`
	// ProblemContext is legacy and only populated by some branches. Kept so
	// older callers that still read it keep working.
	ProblemContext          string   `json:"problemContext,omitempty"`
	TargetUsers             string   `json:"targetUsers"`
	UserPainPoints          []string `json:"userPainPoints"`
	SolutionDirection       string   `json:"solutionDirection"`
	KeyFeatures             []string `json:"keyFeatures"`
	AssumptionsRisks        string   `json:"assumptionsRisks"`
	SuccessMetrics          []string `json:"successMetrics"`
	TechnicalConsiderations string   `json:"technicalConsiderations"`
	NextSteps               []string `json:"nextSteps"`
}

// Section is one renderable block of a Result. Either Prose or Items is set,
// never both.
type Section struct {
	Title string
	Prose string
	Items []string
}

// Sections returns the result's fields as display sections in render order.
// ProblemContext is omitted when empty.
func (r *Result) Sections() []Section {
	sections := []Section{
		{Title: "Problem Statement", Prose: r.ProblemStatement},
	}
	if r.ProblemContext != "" {
		sections = append(sections, Section{Title: "Context", Prose: r.ProblemContext})
	}
	sections = append(sections,
		Section{Title: "Target Users", Prose: r.TargetUsers},
		Section{Title: "User Pain Points", Items: r.UserPainPoints},
		Section{Title: "Solution Direction", Prose: r.SolutionDirection},
		Section{Title: "Key Features", Items: r.KeyFeatures},
		Section{Title: "Assumptions & Risks", Prose: r.AssumptionsRisks},
		Section{Title: "Success Metrics", Items: r.SuccessMetrics},
		Section{Title: "Technical Considerations", Prose: r.TechnicalConsiderations},
		Section{Title: "Next Steps", Items: r.NextSteps},
	)
	return sections
}
