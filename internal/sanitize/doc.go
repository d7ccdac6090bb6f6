// Package sanitize implements the clipboard text sanitization pipeline.
//
// Text crossing the clipboard boundary passes through an ordered list of
// rules: outbound before a copy reaches the system clipboard, inbound when
// pasted text arrives. Both directions currently share one pipeline; the two
// entry points are kept separate so direction-specific rules can be added
// later without touching call sites.
//
// # Rules
//
// A Rule is a named, pure, deterministic text transform. Rules should be
// idempotent and must be total: a rule that cannot transform an input
// returns it unchanged. The changed result flag lets a rule hand back its
// input without forcing the engine to treat it as new data.
//
//	upper := sanitize.FuncRule("uppercase", func(s string) (string, bool) {
//	    u := strings.ToUpper(s)
//	    return u, u != s
//	})
//	sanitize.AppendRule(upper)
//
// # Pipeline registry
//
// The active pipeline is process-wide. Replacement swaps an immutable
// snapshot under a write lock; sanitize calls copy the snapshot pointer
// under a read lock and run the rules outside the critical section, so a
// slow rule never blocks replacement and no caller ever observes a
// partially installed pipeline.
//
// Ordering matters: each rule consumes the previous rule's output. Append
// is a read-then-replace, so concurrent appends are last-writer-wins;
// callers that need several additions visible together should batch them
// into a single ReplaceRules call.
package sanitize
