// Package policy: see types.go for the ResiduePolicy enum and
// apply.go for Apply, the finalize-time dispatcher.
package policy
