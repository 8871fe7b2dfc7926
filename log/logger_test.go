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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stripTime removes the leading timestamp of a log line.
func stripTime(s string) string {
	return s[strings.IndexByte(s, ' ')+1:]
}

func TestLogger(t *testing.T) {

	t.Run("default", func(t *testing.T) {

		var buf bytes.Buffer
		prev := SetDefault(New(&LoggerOptions{
			Output: &buf,
			Level:  Info,
		}))
		defer SetDefault(prev)

		L().Info("this is a test")

		require.Equal(t, "[INFO]  this is a test\n", stripTime(buf.String()))
	})

	t.Run("default with error level", func(t *testing.T) {

		var buf bytes.Buffer
		prev := SetDefault(New(&LoggerOptions{
			Output: &buf,
			Level:  Error,
		}))
		defer SetDefault(prev)

		L().Info("this is a test")

		require.Equal(t, "", buf.String())

		L().Errorf("this is a %s", "test")

		require.Equal(t, "[ERROR] this is a test\n", stripTime(buf.String()))
	})

	t.Run("named from default", func(t *testing.T) {

		var buf bytes.Buffer
		prev := SetDefault(New(&LoggerOptions{
			Name:   "default",
			Output: &buf,
			Level:  Info,
		}))
		defer SetDefault(prev)

		L().Named("test").Info("this is a test")

		require.Equal(t, "[INFO]  default.test: this is a test\n", stripTime(buf.String()))
	})

	t.Run("reset named", func(t *testing.T) {

		var buf bytes.Buffer
		logger := New(&LoggerOptions{Name: "a", Output: &buf, Level: Debug})

		logger.Named("b").ResetNamed("c").Debug("this is a test")

		require.Equal(t, "[DEBUG] c: this is a test\n", stripTime(buf.String()))
	})

	t.Run("off is silent", func(t *testing.T) {

		var buf bytes.Buffer
		logger := New(&LoggerOptions{Output: &buf, Level: Off})

		logger.Error("this is a test")
		logger.Tracef("this is a %s", "test")

		require.Equal(t, "", buf.String())
		require.False(t, logger.IsTrace())
	})

	t.Run("with level", func(t *testing.T) {

		var buf bytes.Buffer
		logger := New(&LoggerOptions{Output: &buf, Level: Error}).WithLevel(Trace)

		logger.Trace("this is a test")

		require.True(t, logger.IsTrace())
		require.Equal(t, Trace, logger.Level())
		require.Equal(t, "[TRACE] this is a test\n", stripTime(buf.String()))
	})

	t.Run("fatal exits", func(t *testing.T) {

		var buf bytes.Buffer
		var code int
		exit := osExit
		osExit = func(c int) { code = c }
		defer func() { osExit = exit }()

		New(&LoggerOptions{Output: &buf, Level: Fatal}).Fatal("this is a test")

		require.Equal(t, 1, code)
		require.Equal(t, "[FATAL] this is a test\n", stripTime(buf.String()))
	})

	t.Run("includes the caller location", func(t *testing.T) {

		var buf bytes.Buffer

		logger := New(&LoggerOptions{
			Name:            "test",
			Output:          &buf,
			Level:           Info,
			IncludeLocation: true,
		})

		logger.Info("this is a test")

		str := stripTime(buf.String())
		require.True(t, strings.HasPrefix(str, "[INFO]  log/logger_test.go:"), str)
		require.True(t, strings.HasSuffix(str, " test: this is a test\n"), str)
	})
}

func TestLevelFromString(t *testing.T) {

	testCases := []struct {
		in       string
		expected Level
	}{
		{"off", Off},
		{"silent", Off},
		{"FATAL", Fatal},
		{" error ", Error},
		{"warn", Warn},
		{"info", Info},
		{"Debug", Debug},
		{"trace", Trace},
		{"verbose", NotSet},
	}

	for _, c := range testCases {
		require.Equalf(t, c.expected, LevelFromString(c.in), "Wrong level for %q", c.in)
	}

	require.Equal(t, "debug", Debug.String())
	require.Equal(t, "unknown", NotSet.String())
}
