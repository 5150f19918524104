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

package database

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"

	"github.com/zayabarrini/zayas-grammar-db/rules"
	"github.com/zayabarrini/zayas-grammar-db/treebank"
)

// Store is the write interface the rule persistence loop runs
// against. The production implementation is a single database
// transaction scoped to one language-file unit of work.
type Store interface {

	// FindOrCreateConcept returns the id of the concept with the
	// given unique name, creating it first if needed. The operation
	// must be an atomic upsert so concurrent importers cannot create
	// duplicate concepts.
	FindOrCreateConcept(name, category, description string) (int64, error)

	// InsertRuleIfAbsent inserts a rule unless one with the same
	// (language, name) already exists. The second return value is
	// false in case the rule was already present (= skipped).
	InsertRuleIfAbsent(language string, cand rules.Candidate, conceptID int64) (int64, bool, error)

	InsertExample(ruleID int64, sentence, notes string) error
}

const exampleNote = "From Universal Dependencies treebank"

// PersistCandidates writes candidate rules through the store with
// per-rule failure isolation: an error on one candidate is logged
// and does not abort the remaining ones. The returned count covers
// only rules actually inserted - skipped duplicates and failures are
// excluded so re-runs stay idempotent and reported numbers reflect
// what happened.
func PersistCandidates(store Store, language string, cands []rules.Candidate) int {
	var added int
	for _, cand := range cands {
		conceptID, err := store.FindOrCreateConcept(
			cand.Concept, cand.ConceptCategory, cand.Description)
		if err != nil {
			log.Error().Err(err).
				Str("language", language).
				Str("rule", cand.Name).
				Msg("failed to resolve concept, skipping rule")
			continue
		}
		ruleID, inserted, err := store.InsertRuleIfAbsent(language, cand, conceptID)
		if err != nil {
			log.Error().Err(err).
				Str("language", language).
				Str("rule", cand.Name).
				Msg("failed to insert rule")
			continue
		}
		if !inserted {
			log.Info().
				Str("language", language).
				Str("rule", cand.Name).
				Msg("rule already exists, skipping")
			continue
		}
		var exampleErr bool
		for _, sentence := range cand.Examples {
			if err := store.InsertExample(ruleID, sentence, exampleNote); err != nil {
				log.Error().Err(err).
					Str("language", language).
					Str("rule", cand.Name).
					Msg("failed to insert example")
				exampleErr = true
				break
			}
		}
		if exampleErr {
			continue
		}
		added++
	}
	return added
}

// --------------------- production store ---------------------

type txStore struct {
	ctx context.Context
	tx  *sql.Tx
}

func (s *txStore) FindOrCreateConcept(name, category, description string) (int64, error) {
	// LAST_INSERT_ID(concept_id) makes the upsert return the id of
	// the existing row on a duplicate name
	ans, err := s.tx.ExecContext(
		s.ctx,
		"INSERT INTO grammar_concepts (concept_name, category, description) "+
			"VALUES (?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE concept_id = LAST_INSERT_ID(concept_id)",
		name, category, description,
	)
	if err != nil {
		return -1, err
	}
	return ans.LastInsertId()
}

func (s *txStore) InsertRuleIfAbsent(
	language string,
	cand rules.Candidate,
	conceptID int64,
) (int64, bool, error) {
	var existingID int64
	err := s.tx.QueryRowContext(
		s.ctx,
		"SELECT rule_id FROM grammar_rules WHERE language_id = ? AND rule_name = ?",
		language, cand.Name,
	).Scan(&existingID)
	if err == nil {
		return existingID, false, nil

	} else if err != sql.ErrNoRows {
		return -1, false, err
	}

	var conceptRef sql.NullInt64
	if conceptID > 0 {
		conceptRef = sql.NullInt64{Int64: conceptID, Valid: true}
	}
	ans, err := s.tx.ExecContext(
		s.ctx,
		"INSERT INTO grammar_rules "+
			"(language_id, concept_id, rule_name, rule_description, usage_context, difficulty_level, is_active) "+
			"VALUES (?, ?, ?, ?, ?, ?, TRUE)",
		language, conceptRef, cand.Name, cand.Description, cand.Provenance, cand.Difficulty,
	)
	if err != nil {
		return -1, false, err
	}
	ruleID, err := ans.LastInsertId()
	if err != nil {
		return -1, false, err
	}
	return ruleID, true, nil
}

func (s *txStore) InsertExample(ruleID int64, sentence, notes string) error {
	_, err := s.tx.ExecContext(
		s.ctx,
		"INSERT INTO rule_examples (rule_id, example_sentence, notes) VALUES (?, ?, ?)",
		ruleID, sentence, notes,
	)
	return err
}

func (s *txStore) archiveSentence(
	language string,
	sent treebank.Sentence,
	source, metadata string,
) error {
	ans, err := s.tx.ExecContext(
		s.ctx,
		"INSERT INTO ud_sentences (language_id, sentence_text, source, metadata) "+
			"VALUES (?, ?, ?, ?)",
		language, sent.Text, source, metadata,
	)
	if err != nil {
		return err
	}
	sentenceID, err := ans.LastInsertId()
	if err != nil {
		return err
	}
	for _, tok := range sent.Tokens {
		_, err := s.tx.ExecContext(
			s.ctx,
			"INSERT INTO ud_tokens "+
				"(sentence_id, token_id, form, lemma, upos, xpos, feats, head, deprel) "+
				"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			sentenceID, tok.ID, tok.Form, tok.Lemma, tok.Upos, tok.Xpos,
			tok.Feats, tok.Head, tok.Deprel,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// --------------------- batch boundary ---------------------

// archiveBound limits how many sentences get archived. A negative
// budget disables archiving rather than panicking on a bad slice
// bound.
func archiveBound(numSentences, budget int) int {
	if budget < 0 {
		return 0
	}
	if budget > numSentences {
		return numSentences
	}
	return budget
}

// ImportResult sums up what a single language-file batch actually
// persisted.
type ImportResult struct {
	RulesAdded        int
	SentencesArchived int
}

// ImportBatch persists candidate rules and a bounded sentence archive
// within one transaction - the commit boundary is the processed file,
// not an individual rule. A failed candidate or archive entry is
// logged and skipped; only a transaction-level failure (begin/commit)
// is returned as an error.
func (gdb *GrammarDB) ImportBatch(
	ctx context.Context,
	language string,
	cands []rules.Candidate,
	sentences []treebank.Sentence,
	source string,
	metadata string,
	maxArchived int,
) (ImportResult, error) {
	var ans ImportResult
	tx, err := gdb.db.BeginTx(ctx, nil)
	if err != nil {
		return ans, err
	}
	// released on every exit path; no-op once committed
	defer tx.Rollback()
	store := &txStore{ctx: ctx, tx: tx}

	ans.RulesAdded = PersistCandidates(store, language, cands)

	for _, sent := range sentences[:archiveBound(len(sentences), maxArchived)] {
		if err := store.archiveSentence(language, sent, source, metadata); err != nil {
			log.Error().Err(err).
				Str("language", language).
				Str("source", source).
				Msg("failed to archive sentence")
			continue
		}
		ans.SentencesArchived++
	}

	if err := tx.Commit(); err != nil {
		return ImportResult{}, err
	}
	return ans, nil
}
