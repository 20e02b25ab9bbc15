// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/kisoext/solver"
)

// logObserver turns solver progress into log lines. Exact progress is
// logged once per 10% step; approx trials only at trace level.
type logObserver struct {
	log     logrus.FieldLogger
	lastPct int
}

func newLogObserver(l logrus.FieldLogger) *logObserver {
	return &logObserver{log: l, lastPct: -10}
}

func (o *logObserver) OnEvent(e solver.Event) {
	switch e.Kind {
	case solver.EventEnumerated:
		o.log.WithField("mappings", e.Mappings).Debugf("enumerated %s injective mappings", humanize.Comma(int64(e.Mappings)))
	case solver.EventCombinations:
		pct := 100
		if e.Total > 0 {
			pct = e.Done * 100 / e.Total
		}
		if pct/10 == o.lastPct/10 && e.Done != e.Total {
			return
		}
		o.lastPct = pct
		o.log.WithFields(logrus.Fields{"done": e.Done, "total": e.Total}).
			Debugf("combinations %d%% of %s", pct, humanize.Comma(int64(e.Total)))
	case solver.EventStageStarted:
		o.log.WithFields(logrus.Fields{"stage": e.Stage, "k": e.K}).Debug("stage started")
	case solver.EventTrial:
		o.log.WithFields(logrus.Fields{"stage": e.Stage, "trial": e.Trial, "trials": e.Trials}).Trace("trial")
	case solver.EventStageCompleted:
		o.log.WithFields(logrus.Fields{"stage": e.Stage, "k": e.K, "cost": e.Cost}).Debug("stage completed")
	}
}
