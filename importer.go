// Copyright 2025 Zaya Barrini
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zayabarrini/zayas-grammar-db/cnf"
	"github.com/zayabarrini/zayas-grammar-db/database"
	"github.com/zayabarrini/zayas-grammar-db/engine"
	"github.com/zayabarrini/zayas-grammar-db/extraction"
	"github.com/zayabarrini/zayas-grammar-db/gerror"
	"github.com/zayabarrini/zayas-grammar-db/monitoring"
	"github.com/zayabarrini/zayas-grammar-db/rcache"
	"github.com/zayabarrini/zayas-grammar-db/rules"
	"github.com/zayabarrini/zayas-grammar-db/treebank"
)

// importLanguage runs the whole pipeline for a single language:
// locate treebank files, parse the selected split, extract grammar
// patterns and persist synthesized rules. A missing treebank is not
// an error, the language is just reported as skipped.
func importLanguage(
	ctx context.Context,
	conf *cnf.Conf,
	gdb *database.GrammarDB,
	runID string,
	langCode string,
) (item monitoring.ImportLog, err error) {

	item = monitoring.ImportLog{
		Language: langCode,
		Begin:    time.Now(),
	}
	defer func() {
		// a panicking detector must not take the whole batch down,
		// the language is reported as failed instead
		if r := recover(); r != nil {
			err = gerror.PanicValueToErr(r)
			item.Err = err
		}
		item.End = time.Now()
	}()

	files := treebank.FindTreebank(conf.Treebanks.RootDir, langCode)
	if len(files) == 0 {
		log.Warn().Str("language", langCode).Msg("no treebank found, skipping")
		return item, nil
	}
	srcPath := treebank.SelectImportFile(files)
	if srcPath == "" {
		log.Warn().
			Str("language", langCode).
			Int("numFiles", len(files)).
			Msg("no train/dev split among treebank files, skipping")
		return item, nil
	}

	sentences, err := treebank.ParseFile(srcPath)
	if err != nil {
		item.Err = err
		return item, err
	}
	item.NumSentences = len(sentences)

	extractor, err := extraction.NewExtractor(langCode)
	if err != nil {
		item.Err = err
		return item, err
	}
	patterns, stats := extractor.Extract(sentences)
	item.NumPatterns = patterns.Size()

	cands := rules.Synthesize(patterns)

	metadata, err := json.Marshal(map[string]any{
		"importRun":    runID,
		"numSentences": stats.NumSentences,
		"sourceFile":   filepath.Base(srcPath),
	})
	if err != nil {
		item.Err = err
		return item, err
	}
	ans, err := gdb.ImportBatch(
		ctx,
		langCode,
		cands,
		sentences,
		filepath.Base(srcPath),
		string(metadata),
		conf.MaxArchivedSentences,
	)
	if err != nil {
		item.Err = err
		return item, err
	}
	item.NumRules = ans.RulesAdded

	log.Info().
		Str("language", langCode).
		Str("sourceFile", srcPath).
		Int("numSentences", len(sentences)).
		Int("numPatterns", patterns.Size()).
		Int("numCandidates", len(cands)).
		Int("numRulesAdded", ans.RulesAdded).
		Int("numSentencesArchived", ans.SentencesArchived).
		Msg("language import finished")
	return item, nil
}

func runImport(conf *cnf.Conf, langArgs []string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	languages, err := conf.Treebanks.SelectLanguages(langArgs)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid language arguments")
		return
	}

	db, err := engine.Open(conf.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
		return
	}
	gdb := database.NewGrammarDB(db)

	var statusWriter monitoring.StatusWriter
	if conf.Monitoring != nil {
		statusWriter, err = monitoring.NewTimescaleDBWriter(
			ctx, conf.Monitoring.DB, conf.TimezoneLocation())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize import statistics writer")
			return
		}

	} else {
		statusWriter = &monitoring.NullWriter{}
	}
	statusWriter.Start(ctx)
	defer statusWriter.Stop(ctx)

	runID := uuid.New().String()
	log.Info().
		Str("importRun", runID).
		Strs("languages", languages).
		Str("rootDir", conf.Treebanks.RootDir).
		Msg("starting treebank import")

	var numFailed, numRulesAdded int
	for _, langCode := range languages {
		if ctx.Err() != nil {
			log.Warn().Msg("import interrupted")
			break
		}
		item, err := importLanguage(ctx, conf, gdb, runID, langCode)
		statusWriter.Write(item)
		if err != nil {
			log.Error().Err(err).Str("language", langCode).Msg("language import failed")
			numFailed++
			continue
		}
		numRulesAdded += item.NumRules
	}

	if numRulesAdded > 0 && conf.Redis != nil {
		cache := rcache.NewAdapter(conf.Redis)
		if err := cache.TestConnection(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("failed to connect to Redis, cache not invalidated")

		} else {
			cache.Invalidate(ctx)
		}
	}

	log.Info().
		Str("importRun", runID).
		Int("numRulesAdded", numRulesAdded).
		Int("numFailedLanguages", numFailed).
		Msg("treebank import finished")
	if numFailed > 0 {
		os.Exit(1)
	}
}

func runSeed(conf *cnf.Conf) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := engine.Open(conf.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
		return
	}
	gdb := database.NewGrammarDB(db)
	if err := gdb.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to install seed data")
	}
}

func runReport(conf *cnf.Conf, langCode string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if langCode != "" && !treebank.IsSupportedLanguage(langCode) {
		log.Fatal().Str("language", langCode).Msg("unsupported language code")
		return
	}

	db, err := engine.Open(conf.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
		return
	}
	gdb := database.NewGrammarDB(db)

	items, err := gdb.ListLanguagesWithRuleCounts(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load rule counts")
		return
	}
	archived, err := gdb.CountArchivedSentences(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load archive counts")
		return
	}
	provenance, err := gdb.CountRulesByProvenance(ctx, langCode)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load provenance counts")
		return
	}

	fmt.Println("languages:")
	for _, item := range items {
		if langCode != "" && item.ID != langCode {
			continue
		}
		fmt.Printf(
			"  %s (%s): %d rules, %d archived sentences\n",
			item.ID, item.Name, item.RuleCount, archived[item.ID],
		)
	}
	fmt.Println("rules by origin:")
	for origin, count := range provenance {
		if origin == "" {
			origin = "(unspecified)"
		}
		fmt.Printf("  %s: %d\n", origin, count)
	}
}
