package clarify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantBranch string
	}{
		{
			name:       "productivity keywords",
			input:      "I need to organize my tasks and schedule better",
			wantBranch: "productivity",
		},
		{
			name:       "productivity wins over data and cost",
			input:      "tracking my budget data wastes my time every week",
			wantBranch: "productivity",
		},
		{
			name:       "data plus speed",
			input:      "It's hard to find accurate information quickly",
			wantBranch: "data+time",
		},
		{
			name:       "data plus speed beats access",
			input:      "information is hard to find quickly and hard to reach",
			wantBranch: "data+time",
		},
		{
			name:       "access",
			input:      "the clinic is only available downtown",
			wantBranch: "access",
		},
		{
			name:       "access beats cost",
			input:      "the service is expensive and hard to reach",
			wantBranch: "access",
		},
		{
			name:       "cost",
			input:      "This tool is too expensive for small teams",
			wantBranch: "cost",
		},
		{
			name:       "data alone falls through to generic",
			input:      "we lose data between departments",
			wantBranch: "generic",
		},
		{
			name:       "no keywords",
			input:      "people dislike commuting",
			wantBranch: "generic",
		},
		{
			name:       "case insensitive",
			input:      "MY WORKFLOW IS BROKEN",
			wantBranch: "productivity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.input)
			if got.name != tt.wantBranch {
				t.Errorf("classify(%q) = %s, want %s", tt.input, got.name, tt.wantBranch)
			}
		})
	}
}

func TestRuleOrderIsFixed(t *testing.T) {
	// The final rule must be the catch-all; anything else breaks the
	// never-fails contract of Generate.
	last := rules[len(rules)-1]
	if !last.match("", signals{}) {
		t.Fatal("final rule does not match arbitrary input")
	}
	if last.branch.name != "generic" {
		t.Errorf("final rule selects %s, want generic", last.branch.name)
	}
}
