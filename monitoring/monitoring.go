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

package monitoring

import (
	"context"
	"time"

	"github.com/czcorpus/hltscl"
	"github.com/rs/zerolog/log"
)

/*
Expected tables:

create table zgdb_import_stats (
  "time" timestamp with time zone NOT NULL,
  language char(2),
  num_sentences int,
  num_patterns int,
  num_rules_added int,
  num_errors int,
  duration_secs float
);

select create_hypertable('zgdb_import_stats', 'time');
*/

type Conf struct {
	DB hltscl.PgConf `json:"db"`
}

// ImportLog captures the outcome of processing one treebank file.
type ImportLog struct {
	Language     string
	Begin        time.Time
	End          time.Time
	NumSentences int
	NumPatterns  int
	NumRules     int
	Err          error
}

func (item ImportLog) TimeSpent() time.Duration {
	return item.End.Sub(item.Begin)
}

// StatusWriter is a sink for per-file import statistics.
type StatusWriter interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Write(item ImportLog)
}

// -----------------------------------

type TimescaleDBWriter struct {
	tableWriter *hltscl.TableWriter
	statsDataCh chan<- hltscl.Entry
	errCh       <-chan hltscl.WriteError
	location    *time.Location
}

func (sw *TimescaleDBWriter) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("about to close StatusWriter")
				return
			case err := <-sw.errCh:
				log.Error().
					Err(err.Err).
					Str("entry", err.Entry.String()).
					Msg("error writing data to TimescaleDB")
			}
		}
	}()
}

func (sw *TimescaleDBWriter) Stop(ctx context.Context) error {
	log.Warn().Msg("stopping StatusWriter")
	return nil
}

func (sw *TimescaleDBWriter) Write(item ImportLog) {
	var numErr int
	if item.Err != nil {
		numErr++
	}
	sw.statsDataCh <- *sw.tableWriter.NewEntry(time.Now().In(sw.location)).
		Str("language", item.Language).
		Int("num_sentences", item.NumSentences).
		Int("num_patterns", item.NumPatterns).
		Int("num_rules_added", item.NumRules).
		Int("num_errors", numErr).
		Float("duration_secs", item.TimeSpent().Seconds())
}

func NewTimescaleDBWriter(
	ctx context.Context,
	conf hltscl.PgConf,
	tz *time.Location,
) (*TimescaleDBWriter, error) {

	conn, err := hltscl.CreatePool(conf)
	if err != nil {
		return nil, err
	}
	twriter := hltscl.NewTableWriter(conn, "zgdb_import_stats", "time", tz)
	statsDataCh, errCh := twriter.Activate(
		ctx,
		hltscl.WithTimeout(20*time.Second),
	)

	return &TimescaleDBWriter{
		tableWriter: twriter,
		statsDataCh: statsDataCh,
		errCh:       errCh,
		location:    tz,
	}, nil
}

// -----------------------------------

// NullWriter is used in case no statistics database is configured.
type NullWriter struct{}

func (sw *NullWriter) Start(ctx context.Context) {}

func (sw *NullWriter) Stop(ctx context.Context) error { return nil }

func (sw *NullWriter) Write(item ImportLog) {
	log.Debug().
		Str("language", item.Language).
		Int("numSentences", item.NumSentences).
		Int("numPatterns", item.NumPatterns).
		Int("numRulesAdded", item.NumRules).
		Float64("durationSecs", item.TimeSpent().Seconds()).
		Msg("import stats (no statistics db configured)")
}
