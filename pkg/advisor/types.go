/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package advisor

// Severity classifies how urgent a recommendation is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// String returns the string representation of the Severity.
func (s Severity) String() string {
	return string(s)
}

// Recommendation is a structured suggestion produced by rule evaluation.
// Results keep rule declaration order, not severity order.
type Recommendation struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Category string   `json:"category" yaml:"category"`
	Message  string   `json:"message" yaml:"message"`
	Action   string   `json:"action" yaml:"action"`
}

// Recommendation categories.
const (
	CategoryPerformance = "performance"
	CategorySecurity    = "security"
	CategoryExtensions  = "extensions"
	CategoryPlatform    = "platform"
)

// CountBySeverity aggregates recommendations for summary rendering.
func CountBySeverity(recs []Recommendation) map[Severity]int {
	counts := make(map[Severity]int, 3)
	for _, rec := range recs {
		counts[rec.Severity]++
	}
	return counts
}
