// Copyright 2025 Zaya Barrini
//   This file is part of ZGDB.
//
//  ZGDB is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  ZGDB is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with ZGDB.  If not, see <https://www.gnu.org/licenses/>.

package cnf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"github.com/zayabarrini/zayas-grammar-db/engine"
	"github.com/zayabarrini/zayas-grammar-db/monitoring"
	"github.com/zayabarrini/zayas-grammar-db/rcache"
	"github.com/zayabarrini/zayas-grammar-db/treebank"
)

const (
	dfltServerWriteTimeoutSecs = 30
	dfltServerReadTimeoutSecs  = 15
	dfltMaxArchivedSentences   = 10
	dfltTimeZone               = "Europe/Prague"
)

type TreebanksConf struct {
	// RootDir is the directory the Universal Dependencies release
	// was unpacked into.
	RootDir string `json:"rootDir"`

	// Languages restricts the import to the listed ISO 639-1 codes.
	// With an empty list, all supported languages are processed.
	Languages []string `json:"languages"`
}

func (tc *TreebanksConf) ImportedLanguages() []string {
	if len(tc.Languages) > 0 {
		return tc.Languages
	}
	return treebank.SupportedLanguages()
}

// SelectLanguages returns the language codes a run should process.
// A non-empty override (typically trailing command line arguments)
// takes precedence over the configured list; unknown codes are
// rejected rather than silently skipped.
func (tc *TreebanksConf) SelectLanguages(override []string) ([]string, error) {
	if len(override) == 0 {
		return tc.ImportedLanguages(), nil
	}
	for _, code := range override {
		if !treebank.IsSupportedLanguage(code) {
			return nil, fmt.Errorf("unsupported language code `%s`", code)
		}
	}
	return override, nil
}

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string           `json:"listenAddress"`
	ListenPort             int              `json:"listenPort"`
	ServerReadTimeoutSecs  int              `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int              `json:"serverWriteTimeoutSecs"`
	CorsAllowedOrigins     []string         `json:"corsAllowedOrigins"`
	AuthHeaderName         string           `json:"authHeaderName"`
	AuthTokens             []string         `json:"authTokens"`
	DB                     *engine.DBConf   `json:"db"`
	Redis                  *rcache.Conf     `json:"redis"`
	Monitoring             *monitoring.Conf `json:"monitoring"`
	Treebanks              *TreebanksConf   `json:"treebanks"`
	MaxArchivedSentences   int              `json:"maxArchivedSentences"`
	LogFile                string           `json:"logFile"`
	LogLevel               logging.LogLevel `json:"logLevel"`
	TimeZone               string           `json:"timeZone"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

func (conf *Conf) TimezoneLocation() *time.Location {
	// we can ignore the error here as we always call ValidateAndDefaults()
	// first (which also tries to load the location and report possible
	// error)
	loc, _ := time.LoadLocation(conf.TimeZone)
	return loc
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ValidateAndDefaults(conf *Conf) {
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default: %d",
			dfltServerReadTimeoutSecs,
		)
	}
	if conf.DB == nil {
		log.Fatal().Msg("missing `db` configuration section")
		return
	}
	if err := conf.DB.ValidateAndDefaults(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if conf.Redis != nil {
		if err := conf.Redis.ValidateAndDefaults(); err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}
	}
	if conf.Treebanks == nil {
		conf.Treebanks = &TreebanksConf{}
	}
	for _, lang := range conf.Treebanks.Languages {
		if !treebank.IsSupportedLanguage(lang) {
			log.Fatal().
				Str("language", lang).
				Msg("unsupported language in `treebanks` configuration")
		}
	}
	if conf.MaxArchivedSentences < 0 {
		log.Fatal().
			Int("maxArchivedSentences", conf.MaxArchivedSentences).
			Msg("maxArchivedSentences must not be negative")
	}
	if conf.MaxArchivedSentences == 0 {
		conf.MaxArchivedSentences = dfltMaxArchivedSentences
		log.Warn().Msgf(
			"maxArchivedSentences not specified, using default: %d",
			dfltMaxArchivedSentences,
		)
	}
	if conf.TimeZone == "" {
		conf.TimeZone = dfltTimeZone
		log.Warn().
			Str("timeZone", dfltTimeZone).
			Msg("time zone not specified, using default")
	}
	if _, err := time.LoadLocation(conf.TimeZone); err != nil {
		log.Fatal().Err(err).Msg("invalid time zone")
	}
	if len(conf.AuthTokens) > 0 && conf.AuthHeaderName == "" {
		log.Fatal().Msg("authTokens set but authHeaderName is empty")
	}
}
