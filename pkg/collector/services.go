/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package collector

import (
	"context"
	"log/slog"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/larisphp/laris/pkg/apperr"
	"github.com/larisphp/laris/pkg/defaults"
	"github.com/larisphp/laris/pkg/report"
)

// SystemdServiceCollector probes the state of the systemd units backing
// the application (php-fpm, web server, queue workers).
type SystemdServiceCollector struct {
	Units []string
}

// Collect implements the ServiceCollector interface. Units that are not
// installed still yield a state (systemd reports them as inactive); only
// an unreachable systemd bus fails the section.
func (c *SystemdServiceCollector) Collect(ctx context.Context) (*report.ServiceFacts, error) {
	slog.Debug("collecting service states", slog.Int("units", len(c.Units)))

	ctx, cancel := context.WithTimeout(ctx, defaults.ServiceProbeTimeout)
	defer cancel()

	conn, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to connect to systemd", err)
	}
	defer conn.Close()

	units := make(map[string]report.UnitState, len(c.Units))
	for _, name := range c.Units {
		props, err := conn.GetUnitPropertiesContext(ctx, name)
		if err != nil {
			return &report.ServiceFacts{Units: units},
				apperr.Wrap(apperr.CodeInternal, "failed to get unit properties for "+name, err)
		}
		units[name] = report.UnitState{
			ActiveState:   unitProp(props, "ActiveState"),
			SubState:      unitProp(props, "SubState"),
			UnitFileState: unitProp(props, "UnitFileState"),
		}
	}

	return &report.ServiceFacts{Units: units}, nil
}

func unitProp(props map[string]interface{}, key string) string {
	if s, ok := props[key].(string); ok {
		return s
	}
	return ""
}
