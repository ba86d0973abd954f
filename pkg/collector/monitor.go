/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/larisphp/laris/pkg/defaults"
	"github.com/larisphp/laris/pkg/php"
	"github.com/larisphp/laris/pkg/project"
	"github.com/larisphp/laris/pkg/report"
)

// Selection names the optional report sections to collect. System and
// application facts are always collected; Detailed turns everything on.
type Selection struct {
	Detailed bool
	Database bool
	Memory   bool
	Routes   bool
	Services bool
}

func (s Selection) normalized() Selection {
	if s.Detailed {
		return Selection{Detailed: true, Database: true, Memory: true, Routes: true, Services: true}
	}
	return s
}

// Monitor coordinates the collectors for one check run. Collectors run in
// parallel; a failed collector degrades its section (the error lands in
// the section's Error field) instead of failing the run, so one broken
// probe never hides the rest of the report.
type Monitor struct {
	// Project is the application under inspection.
	Project *project.Project

	// Factory is the collector factory to use. If nil, the default factory
	// with a PHP runner rooted at the project is used.
	Factory Factory
}

// Collect runs the selected collectors and assembles the report.
func (m *Monitor) Collect(ctx context.Context, sel Selection) (*report.Report, error) {
	if m.Factory == nil {
		m.Factory = NewDefaultFactory(m.Project, php.NewRunner(m.Project.Root))
	}
	sel = sel.normalized()

	slog.Debug("starting check run", slog.String("project", m.Project.Name))

	start := time.Now()
	defer func() {
		checkDuration.Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, defaults.CheckRunTimeout)
	defer cancel()

	r := report.New(m.Project.Name)
	var mu sync.Mutex

	// Goroutines always return nil: failures degrade a section rather
	// than cancel the group, so sibling collectors run to completion.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer track(report.CategorySystem, time.Now())
		facts, err := m.Factory.CreateSystemCollector().Collect(gctx)
		mu.Lock()
		r.System = foldSystem(facts, err)
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		defer track(report.CategoryApplication, time.Now())
		facts, err := m.Factory.CreateAppCollector().Collect(gctx)
		mu.Lock()
		r.Application = foldApp(facts, err)
		mu.Unlock()
		return nil
	})

	if sel.Database {
		g.Go(func() error {
			defer track(report.CategoryDatabase, time.Now())
			facts, err := m.Factory.CreateDatabaseCollector().Collect(gctx)
			mu.Lock()
			r.Database = foldDatabase(facts, err)
			mu.Unlock()
			return nil
		})
	}

	if sel.Memory {
		g.Go(func() error {
			defer track(report.CategoryMemory, time.Now())
			facts, err := m.Factory.CreateMemoryCollector().Collect(gctx)
			mu.Lock()
			r.Memory = foldMemory(facts, err)
			mu.Unlock()
			return nil
		})
	}

	if sel.Routes {
		g.Go(func() error {
			defer track(report.CategoryRoutes, time.Now())
			facts, err := m.Factory.CreateRouteCollector().Collect(gctx)
			mu.Lock()
			r.Routes = foldRoutes(facts, err)
			mu.Unlock()
			return nil
		})
	}

	if sel.Services {
		g.Go(func() error {
			defer track(report.CategoryServices, time.Now())
			facts, err := m.Factory.CreateServiceCollector().Collect(gctx)
			mu.Lock()
			r.Services = foldServices(facts, err)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Unreachable with nil-returning goroutines, kept for safety.
		checkTotal.WithLabelValues("degraded").Inc()
		return r, err
	}

	checkTotal.WithLabelValues(runStatus(r)).Inc()
	slog.Debug("check run complete", slog.String("id", r.ID))
	return r, nil
}

func track(name string, start time.Time) {
	collectorDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}

func degrade(name string, err error) string {
	collectorFailures.WithLabelValues(name).Inc()
	slog.Warn("collector failed", slog.String("collector", name), slog.String("error", err.Error()))
	return err.Error()
}

func foldSystem(facts *report.SystemFacts, err error) *report.SystemFacts {
	if facts == nil {
		facts = &report.SystemFacts{}
	}
	if err != nil {
		facts.Error = degrade(report.CategorySystem, err)
	}
	return facts
}

func foldApp(facts *report.AppFacts, err error) *report.AppFacts {
	if facts == nil {
		facts = &report.AppFacts{}
	}
	if err != nil {
		facts.Error = degrade(report.CategoryApplication, err)
	}
	return facts
}

func foldDatabase(facts *report.DatabaseFacts, err error) *report.DatabaseFacts {
	if facts == nil {
		facts = &report.DatabaseFacts{}
	}
	if err != nil {
		facts.Error = degrade(report.CategoryDatabase, err)
	}
	return facts
}

func foldMemory(facts *report.MemoryFacts, err error) *report.MemoryFacts {
	if facts == nil {
		facts = &report.MemoryFacts{}
	}
	if err != nil {
		facts.Error = degrade(report.CategoryMemory, err)
	}
	return facts
}

func foldRoutes(facts *report.RouteFacts, err error) *report.RouteFacts {
	if facts == nil {
		facts = &report.RouteFacts{}
	}
	if err != nil {
		facts.Error = degrade(report.CategoryRoutes, err)
	}
	return facts
}

func foldServices(facts *report.ServiceFacts, err error) *report.ServiceFacts {
	if facts == nil {
		facts = &report.ServiceFacts{}
	}
	if err != nil {
		facts.Error = degrade(report.CategoryServices, err)
	}
	return facts
}

func runStatus(r *report.Report) string {
	for _, e := range sectionErrors(r) {
		if e != "" {
			return "degraded"
		}
	}
	return "success"
}

func sectionErrors(r *report.Report) []string {
	var errs []string
	if r.System != nil {
		errs = append(errs, r.System.Error)
	}
	if r.Application != nil {
		errs = append(errs, r.Application.Error)
	}
	if r.Database != nil {
		errs = append(errs, r.Database.Error)
	}
	if r.Memory != nil {
		errs = append(errs, r.Memory.Error)
	}
	if r.Routes != nil {
		errs = append(errs, r.Routes.Error)
	}
	if r.Services != nil {
		errs = append(errs, r.Services.Error)
	}
	return errs
}
