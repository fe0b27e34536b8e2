// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlindex/index"
)

type statisticsSource interface {
	Statistics() index.Statistics
}

// background process to log index statistics periodically
type reporter struct {
	log      *logger.L
	interval time.Duration
	source   statisticsSource
	reports  int
}

func newReporter(log *logger.L, interval time.Duration, source statisticsSource) *reporter {
	return &reporter{
		log:      log,
		interval: interval,
		source:   source,
	}
}

// Run - background.Process interface, a final report is made on shutdown
func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Infof("starting… interval: %s", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			r.report()
		}
	}

	r.report()
	r.log.Info("stopped")
}

func (r *reporter) report() {
	s := r.source.Statistics()
	r.reports += 1
	r.log.Infof("%s: count: %d  height: %d  inserted: %d  rejected: %d  removed: %d  missed: %d  nodes: %d/%d/%d",
		s.Name, s.Count, s.Height, s.Inserted, s.Rejected, s.Removed, s.Missed,
		s.Nodes.LiveNodes, s.Nodes.FreeNodes, s.Nodes.TotalNodes)
}
