/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package advisor

import (
	"fmt"

	"github.com/larisphp/laris/pkg/phpversion"
	"github.com/larisphp/laris/pkg/report"
)

// oldestSupportedPHP is the oldest PHP branch still receiving security
// fixes. Bump when a branch reaches end of life.
var oldestSupportedPHP = phpversion.Version{Major: 8, Minor: 1, Precision: 2}

// recommendedExtensions are cache backends worth suggesting when absent.
// Order is fixed so results are deterministic.
var recommendedExtensions = []string{"redis", "memcached"}

// rule maps collected facts to zero or more recommendations. Rules are
// independent: no rule reads another rule's output, so adding one is pure
// extension.
type rule func(r *report.Report) []Recommendation

// rules is the fixed rule set, evaluated in declaration order.
var rules = []rule{
	opcacheRule,
	debugInProductionRule,
	configCacheRule,
	routeCacheRule,
	extensionsRule,
	phpVersionRule,
	xdebugInProductionRule,
}

// Evaluate runs the fixed rule set over the report and returns the
// triggered recommendations in rule declaration order. Sections that are
// absent or failed to collect contribute nothing.
func Evaluate(r *report.Report) []Recommendation {
	if r == nil {
		return nil
	}
	var recs []Recommendation
	for _, rule := range rules {
		recs = append(recs, rule(r)...)
	}
	return recs
}

func systemOK(r *report.Report) bool {
	return r.System != nil && r.System.Error == ""
}

func appOK(r *report.Report) bool {
	return r.Application != nil && r.Application.Error == ""
}

func opcacheRule(r *report.Report) []Recommendation {
	if !systemOK(r) || r.System.OpcacheEnabled {
		return nil
	}
	return []Recommendation{{
		Severity: SeverityCritical,
		Category: CategoryPerformance,
		Message:  "OPcache is disabled",
		Action:   "Enable OPcache (opcache.enable=1 in php.ini) to cache compiled scripts",
	}}
}

func debugInProductionRule(r *report.Report) []Recommendation {
	if !appOK(r) || !r.Application.Debug || r.Application.Environment != "production" {
		return nil
	}
	return []Recommendation{{
		Severity: SeverityCritical,
		Category: CategorySecurity,
		Message:  "Debug mode is enabled in production",
		Action:   "Set APP_DEBUG=false to avoid leaking stack traces and credentials",
	}}
}

func configCacheRule(r *report.Report) []Recommendation {
	if !appOK(r) || r.Application.ConfigCached {
		return nil
	}
	return []Recommendation{{
		Severity: SeverityWarning,
		Category: CategoryPerformance,
		Message:  "Configuration is not cached",
		Action:   "Run `php artisan config:cache`",
	}}
}

func routeCacheRule(r *report.Report) []Recommendation {
	if !appOK(r) || r.Application.RoutesCached {
		return nil
	}
	return []Recommendation{{
		Severity: SeverityWarning,
		Category: CategoryPerformance,
		Message:  "Routes are not cached",
		Action:   "Run `php artisan route:cache`",
	}}
}

func extensionsRule(r *report.Report) []Recommendation {
	if !systemOK(r) || r.System.Extensions == nil {
		return nil
	}
	var recs []Recommendation
	for _, ext := range recommendedExtensions {
		if r.System.Extensions[ext] {
			continue
		}
		recs = append(recs, Recommendation{
			Severity: SeverityInfo,
			Category: CategoryExtensions,
			Message:  fmt.Sprintf("The %s extension is not loaded", ext),
			Action:   fmt.Sprintf("Consider installing %s for faster cache and session backends", ext),
		})
	}
	return recs
}

func phpVersionRule(r *report.Report) []Recommendation {
	if !systemOK(r) || r.System.PHPVersion == "" {
		return nil
	}
	v, err := phpversion.Parse(r.System.PHPVersion)
	if err != nil || v.AtLeast(oldestSupportedPHP) {
		return nil
	}
	return []Recommendation{{
		Severity: SeverityWarning,
		Category: CategoryPlatform,
		Message:  fmt.Sprintf("PHP %s no longer receives security fixes", v),
		Action:   fmt.Sprintf("Upgrade to PHP %s or newer", oldestSupportedPHP),
	}}
}

func xdebugInProductionRule(r *report.Report) []Recommendation {
	if !systemOK(r) || !appOK(r) {
		return nil
	}
	if !r.System.Extensions["xdebug"] || r.Application.Environment != "production" {
		return nil
	}
	return []Recommendation{{
		Severity: SeverityWarning,
		Category: CategoryPerformance,
		Message:  "Xdebug is loaded in production",
		Action:   "Disable the xdebug extension outside development; it slows every request",
	}}
}
