// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlindex/background"
	"github.com/bitmark-inc/avlindex/index"
)

func TestReporter(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ix := NewMockIndexer(ctl)
	ix.EXPECT().Statistics().Return(index.Statistics{Name: "mock", Count: 3}).MinTimes(2)

	r := newReporter(logger.New(category), 5*time.Millisecond, ix)

	bg := background.Start(background.Processes{r}, nil)
	time.Sleep(50 * time.Millisecond)
	bg.Stop()

	// at least one tick plus the final report
	assert.True(t, r.reports >= 2, "reports: %d", r.reports)
}

func TestReporterFinalReport(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ix := NewMockIndexer(ctl)
	ix.EXPECT().Statistics().Return(index.Statistics{}).Times(1)

	r := newReporter(logger.New(category), time.Hour, ix)

	bg := background.Start(background.Processes{r}, nil)
	bg.Stop()

	assert.Equal(t, 1, r.reports, "reports")
}
