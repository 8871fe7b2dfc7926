/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package log

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	brackets = map[Level]string{
		Trace: "[TRACE]",
		Debug: "[DEBUG]",
		Info:  "[INFO] ",
		Warn:  "[WARN] ",
		Error: "[ERROR]",
		Fatal: "[FATAL]",
	}

	// To allow mocking we require a switchable variable.
	osExit = os.Exit
)

type internalLogger struct {
	name       string
	caller     bool
	timeFormat string
	level      Level

	// This is a pointer so that it's shared by any derived loggers, since
	// those derived loggers share the buffered writer as well.
	mutex  *sync.Mutex
	writer *writer
}

func (l *internalLogger) Named(name string) Logger {
	subLogger := *l
	if subLogger.name != "" {
		subLogger.name = subLogger.name + "." + name
	} else {
		subLogger.name = name
	}
	return &subLogger
}

func (l *internalLogger) ResetNamed(name string) Logger {
	rl := *l
	rl.name = name
	return &rl
}

func (l *internalLogger) WithLevel(level Level) Logger {
	wl := *l
	wl.level = level
	return &wl
}

func (l *internalLogger) Level() Level {
	return l.level
}

func (l *internalLogger) IsTrace() bool {
	return l.enabled(Trace)
}

// enabled tells if a message of the given level passes the threshold.
// Off is the lowest rank, so an Off logger lets nothing through.
func (l *internalLogger) enabled(level Level) bool {
	return l.level != Off && level <= l.level
}

func (l *internalLogger) log(level Level, msg string) {
	if !l.enabled(level) {
		return
	}

	tm := time.Now()

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.logPlain(tm, level, msg)
}

func (l *internalLogger) logf(level Level, format string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}

	tm := time.Now()

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.logPlain(tm, level, fmt.Sprintf(format, args...))
}

func (l *internalLogger) logPlain(tm time.Time, level Level, msg string) {

	// time
	l.writer.WriteString(tm.Format(l.timeFormat))

	// level
	l.writer.WriteByte(' ')
	l.writer.WriteString(levelToBracket(level))

	// caller
	if l.caller {
		if _, file, line, ok := runtime.Caller(3); ok {
			l.writer.WriteByte(' ')
			l.writer.WriteString(trimCallerPath(file))
			l.writer.WriteByte(':')
			l.writer.WriteString(strconv.Itoa(line))
			l.writer.WriteByte(':')
		}
	}

	// name
	l.writer.WriteByte(' ')
	if l.name != "" {
		l.writer.WriteString(l.name)
		l.writer.WriteString(": ")
	}

	// msg
	l.writer.WriteString(msg)

	l.writer.WriteString("\n")
	l.writer.Flush()
}

// trimCallerPath returns only the last 2 segments of the path.
func trimCallerPath(path string) string {

	// find the last separator
	var idx int
	if idx = strings.LastIndexByte(path, '/'); idx == -1 {
		return path
	}

	// find the penultimate separator
	if idx = strings.LastIndexByte(path[:idx], '/'); idx == -1 {
		return path
	}

	return path[idx+1:]
}

func levelToBracket(level Level) string {
	s, ok := brackets[level]
	if !ok {
		s = "[?????]"
	}
	return s
}

func (l *internalLogger) Trace(msg string) {
	l.log(Trace, msg)
}

func (l *internalLogger) Tracef(format string, args ...interface{}) {
	l.logf(Trace, format, args...)
}

func (l *internalLogger) Debug(msg string) {
	l.log(Debug, msg)
}

func (l *internalLogger) Debugf(format string, args ...interface{}) {
	l.logf(Debug, format, args...)
}

func (l *internalLogger) Info(msg string) {
	l.log(Info, msg)
}

func (l *internalLogger) Infof(format string, args ...interface{}) {
	l.logf(Info, format, args...)
}

func (l *internalLogger) Warn(msg string) {
	l.log(Warn, msg)
}

func (l *internalLogger) Warnf(format string, args ...interface{}) {
	l.logf(Warn, format, args...)
}

func (l *internalLogger) Error(msg string) {
	l.log(Error, msg)
}

func (l *internalLogger) Errorf(format string, args ...interface{}) {
	l.logf(Error, format, args...)
}

func (l *internalLogger) Fatal(msg string) {
	l.log(Fatal, msg)
	osExit(1)
}

func (l *internalLogger) Fatalf(format string, args ...interface{}) {
	l.logf(Fatal, format, args...)
	osExit(1)
}
