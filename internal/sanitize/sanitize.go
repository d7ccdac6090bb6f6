package sanitize

import "sync"

// Rule is a single sanitization step.
//
// Apply returns the transformed text and whether anything changed. A rule
// returning changed=false must return its input as output; the engine then
// keeps threading the original string instead of adopting a copy. Rules
// must be deterministic, free of side effects, and total over all inputs
// including the empty string. Idempotency is a convention for rule authors,
// not enforced by the engine.
type Rule interface {
	// Name identifies the rule for diagnostics and tests.
	Name() string

	// Apply transforms input, reporting whether the output differs.
	Apply(input string) (string, bool)
}

// funcRule adapts a plain function into a Rule.
type funcRule struct {
	name string
	fn   func(string) (string, bool)
}

func (r *funcRule) Name() string { return r.name }

func (r *funcRule) Apply(input string) (string, bool) { return r.fn(input) }

// FuncRule wraps fn as a Rule with the given name. The function must follow
// the Rule contract: pure, total, and returning changed=false when the
// output is the input.
func FuncRule(name string, fn func(string) (string, bool)) Rule {
	return &funcRule{name: name, fn: fn}
}

// ruleSet is an immutable ordered pipeline snapshot. Mutation always builds
// a new ruleSet; the slice is never modified after construction.
type ruleSet struct {
	rules []Rule
}

// apply runs every rule in order, feeding each rule's output into the next.
// The working string only advances when a rule reports a change, so a chain
// of no-op rules passes the original input through untouched.
func (rs *ruleSet) apply(input string) string {
	cur := input
	for _, rule := range rs.rules {
		out, changed := rule.Apply(cur)
		if changed {
			cur = out
		}
	}
	return cur
}

// Active pipeline handle. The mutex guards only the pointer; rule execution
// happens against a private snapshot outside the lock.
var (
	activeMu sync.RWMutex
	active   = &ruleSet{rules: defaultRules()}
)

// snapshot returns the currently installed pipeline.
func snapshot() *ruleSet {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}

// install swaps the active pipeline.
func install(rs *ruleSet) {
	activeMu.Lock()
	active = rs
	activeMu.Unlock()
}

// Outbound applies the active pipeline to text about to leave the
// application, typically just before it is placed on the system clipboard.
func Outbound(raw string) string {
	return snapshot().apply(raw)
}

// Inbound applies the active pipeline to text arriving from outside,
// typically a paste. Behavior is identical to Outbound today; the separate
// entry point exists so inbound-only rules (zero-width stripping, Unicode
// normalization) can be attached later without changing call sites.
func Inbound(raw string) string {
	return snapshot().apply(raw)
}

// ReplaceRules atomically installs rules as the new active pipeline. The
// slice is copied; the caller may keep and reuse individual rules. An empty
// or nil slice installs an identity pipeline.
func ReplaceRules(rules []Rule) {
	install(&ruleSet{rules: append([]Rule(nil), rules...)})
}

// AppendRule installs a new pipeline consisting of the current rules plus
// rule at the end. This is a read-then-replace: concurrent appends are
// last-writer-wins on the whole sequence. Batch multiple additions into one
// ReplaceRules call if they must be observed together.
func AppendRule(rule Rule) {
	cur := snapshot().rules
	next := make([]Rule, len(cur), len(cur)+1)
	copy(next, cur)
	install(&ruleSet{rules: append(next, rule)})
}

// ResetToDefaults reinstalls the built-in default pipeline.
func ResetToDefaults() {
	install(&ruleSet{rules: defaultRules()})
}

// RuleNames returns the names of the active rules in pipeline order.
func RuleNames() []string {
	cur := snapshot().rules
	names := make([]string, len(cur))
	for i, rule := range cur {
		names[i] = rule.Name()
	}
	return names
}
