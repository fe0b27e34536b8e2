// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avlindex/fault"
)

// scriptRunner - re-runs a changed script
type scriptRunner interface {
	runFile(name string) error
}

// watch the script files and re-run each one when it is written
//
// returns when no files remain or shutdown is closed
func watchScripts(log *logger.L, names []string, r scriptRunner, shutdown <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return err
	}
	defer watcher.Close()

	watched := make(map[string]struct{})
	for _, name := range names {
		filePath, err := filepath.Abs(filepath.Clean(name))
		if nil != err {
			log.Errorf("parse file %s error: %s", name, err)
			return err
		}
		if err := watcher.Add(filePath); nil != err {
			log.Errorf("watcher add: %s  error: %s", filePath, err)
			return err
		}
		watched[filePath] = struct{}{}
	}
	log.Infof("watching: %d files", len(watched))

	for len(watched) > 0 {
		select {
		case <-shutdown:
			log.Info("shutdown")
			return nil

		case err, ok := <-watcher.Errors:
			if !ok {
				return fault.ErrWatcherClosed
			}
			log.Errorf("watch error: %s", err)

		case event, ok := <-watcher.Events:
			if !ok {
				return fault.ErrWatcherClosed
			}
			log.Debugf("file event: %v", event)

			filePath := filepath.Clean(event.Name)
			if _, ok := watched[filePath]; !ok {
				log.Debugf("file %s not watched, discard event", filePath)
				continue
			}

			if watcherEventFileRemove(event) {
				log.Warnf("file %s removed, stop watching", filePath)
				delete(watched, filePath)
				continue
			}

			if watcherEventFileChange(event) {
				log.Infof("file %s changed, run again", filePath)
				if err := r.runFile(filePath); nil != err {
					log.Errorf("run: %s  error: %s", filePath, err)
				}
			}
		}
	}
	log.Info("no files remain")
	return nil
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return "" == event.Name ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write
}
