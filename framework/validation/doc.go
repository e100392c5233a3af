// Package validation provides the rule-based input checks run before the
// container or the manifest loader mutates any state.
//
// Rules are expressed as pipe-separated strings keyed by field name, the same
// way binding manifests declare them:
//
//	v := validation.Make(map[string]string{
//	    "name":     "userRepository",
//	    "lifetime": "transient",
//	}, validation.Rules{
//	    "name":     "required|identifier|max:255",
//	    "lifetime": "nullable|in:singleton,transient",
//	})
//
//	if v.Fails() {
//	    return v.Errors() // *Errors implements error
//	}
//
// # Available Rules
//
//   - required        — present and non-blank
//   - identifier      — no whitespace or control characters
//   - min:n / max:n   — UTF-8 length bounds
//   - alpha_dash      — letters, numbers, dashes, underscores
//   - regex:pattern   — must match the pattern
//   - in:a,b,c        — one of the listed values
//   - not_in:a,b,c    — none of the listed values
//   - nullable        — an empty value skips the remaining rules
//
// Fields are validated in sorted order and each field stops at its first
// failing rule, so the error bag is deterministic.
package validation
