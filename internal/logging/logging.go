// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package logging is the analyzer's structured logger. It mirrors the
// CPrint(level, msg, LogFormat{...}) call shape used throughout mass-core,
// backed by logrus with a rotating-file hook instead of mass-core's
// daemon-oriented multi-sink setup.
package logging

import (
	"os"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const dayDuration = 24 * time.Hour

// Level mirrors mass-core's logging level constants.
type Level uint32

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
)

var levelToLogrus = map[Level]logrus.Level{
	TRACE: logrus.TraceLevel,
	DEBUG: logrus.DebugLevel,
	INFO:  logrus.InfoLevel,
	WARN:  logrus.WarnLevel,
	ERROR: logrus.ErrorLevel,
	FATAL: logrus.FatalLevel,
}

// LogFormat is the key/value payload passed to CPrint, matching mass-core's
// logging.LogFormat map-of-fields convention.
type LogFormat map[string]interface{}

var (
	mu     sync.Mutex
	logger = logrus.New()
	hooked bool
)

func init() {
	logger.SetLevel(logrus.InfoLevel)
	logger.SetOutput(os.Stderr)
}

// EnableFileRotation wires a per-day rotating log file, mirroring the
// teacher's go.mod dependency on lestrrat/go-file-rotatelogs and
// rifflock/lfshook (mass-core's logging package composes the two the same
// way for its on-disk trace log).
func EnableFileRotation(dir string) error {
	mu.Lock()
	defer mu.Unlock()
	if hooked {
		return nil
	}
	writer, err := rotatelogs.New(
		dir+"/bsa.%Y%m%d.log",
		rotatelogs.WithLinkName(dir+"/bsa.log"),
		rotatelogs.WithRotationTime(dayDuration),
	)
	if err != nil {
		return err
	}
	logger.AddHook(lfshook.NewHook(lfshook.WriterMap{
		logrus.TraceLevel: writer,
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
	}))
	hooked = true
	return nil
}

// SetLevel adjusts the minimum emitted level.
func SetLevel(l Level) {
	logger.SetLevel(levelToLogrus[l])
}

// CPrint logs msg at level with the given structured fields, matching the
// call shape of mass-core's logging.CPrint(level, msg, logging.LogFormat{...}).
func CPrint(level Level, msg string, fields ...LogFormat) {
	entry := logrus.NewEntry(logger)
	for _, f := range fields {
		entry = entry.WithFields(logrus.Fields(f))
	}
	lvl, ok := levelToLogrus[level]
	if !ok {
		lvl = logrus.InfoLevel
	}
	entry.Log(lvl, msg)
}
