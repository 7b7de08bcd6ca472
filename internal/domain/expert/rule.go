package expert

// Rule pairs a conjunction of required fact values with a prediction label and
// an ordered list of remedy actions. Rules are immutable once loaded; list
// order is priority order, highest first.
type Rule struct {
	Conditions map[string]any `json:"conditions"`
	Prediction string         `json:"prediction"`
	Actions    []string       `json:"actions"`
}

// Match scans rules in priority order and returns the first rule whose every
// condition is satisfied by the provided facts, or nil when none matches.
// This is pure domain logic - no I/O, no side effects.
//
// Facts are null-filtered and key-normalized before matching, so callers pass
// external-form keys as received. Extra facts a rule does not mention never
// block that rule, and a rule with no conditions matches unconditionally.
func Match(facts Facts, rules []Rule) *Rule {
	normalized := NormalizeFacts(facts)
	for i := range rules {
		if ruleMatches(rules[i], normalized) {
			return &rules[i]
		}
	}
	return nil
}

func ruleMatches(r Rule, facts Facts) bool {
	for key, want := range r.Conditions {
		got, ok := facts[key]
		if !ok || !ValuesEqual(got, want) {
			return false
		}
	}
	return true
}
