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

package cmd

import (
	"io"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	v "github.com/spf13/viper"

	"github.com/bbva/dmt/crypto/hashing"
	"github.com/bbva/dmt/log"
	"github.com/bbva/dmt/merkle"
)

// cmdContext holds the settings shared by every subcommand. Flags
// write into it, and configure resolves them against the environment
// and the config file before any subcommand runs.
type cmdContext struct {
	logLevel, hasherID, configFile string
	metrics                        bool

	viper    *v.Viper
	hasher   hashing.TreeHasher
	registry *prometheus.Registry
}

func newCmdContext(viper *v.Viper) *cmdContext {
	return &cmdContext{viper: viper}
}

func (c *cmdContext) configure() error {
	c.viper.SetEnvPrefix("DMT")
	c.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	c.viper.AutomaticEnv()

	if err := c.readConfigFile(); err != nil {
		return err
	}

	log.SetDefault(log.New(&log.LoggerOptions{
		Name:   "dmt",
		Level:  log.LevelFromString(c.viper.GetString("log")),
		Output: os.Stderr,
	}))

	hasher, err := hashing.NewTreeHasher(c.viper.GetString("hasher"))
	if err != nil {
		return err
	}
	c.hasher = hasher

	if c.viper.GetBool("metrics") {
		c.registry = prometheus.NewRegistry()
		for _, collector := range merkle.Collectors() {
			if err := c.registry.Register(collector); err != nil {
				return errors.Wrap(err, "cannot register metrics")
			}
		}
	}

	log.L().Debugf("Configured with hasher %s and config file %s", hasher.ID(), c.configFile)

	return nil
}

// readConfigFile loads the config file if present. A missing file is
// only an error when it was asked for explicitly.
func (c *cmdContext) readConfigFile() error {
	path, err := homedir.Expand(c.configFile)
	if err != nil {
		return errors.Wrapf(err, "cannot expand config path %q", c.configFile)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && c.configFile == defaultConfigFile {
			return nil
		}
		return errors.Wrapf(err, "cannot open config file %s", path)
	}

	c.viper.SetConfigFile(path)
	if err := c.viper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "cannot read config file %s", path)
	}
	return nil
}

func (c *cmdContext) dumpMetrics(w io.Writer) error {
	if c.registry == nil {
		return nil
	}

	families, err := c.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "cannot gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
