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

	"github.com/rs/zerolog/log"
)

var seedLanguages = []Language{
	{ID: "de", Name: "German", Family: "Germanic", Script: "Latin"},
	{ID: "ja", Name: "Japanese", Family: "Japonic", Script: "Mixed"},
	{ID: "ar", Name: "Arabic", Family: "Semitic", Script: "Arabic"},
	{ID: "hi", Name: "Hindi", Family: "Indo-Aryan", Script: "Devanagari"},
	{ID: "ko", Name: "Korean", Family: "Koreanic", Script: "Hangul"},
	{ID: "fr", Name: "French", Family: "Romance", Script: "Latin"},
	{ID: "it", Name: "Italian", Family: "Romance", Script: "Latin"},
	{ID: "ru", Name: "Russian", Family: "Slavic", Script: "Cyrillic"},
	{ID: "zh", Name: "Chinese", Family: "Sino-Tibetan", Script: "Chinese"},
}

var seedConcepts = []Concept{
	{Name: "nominative_case", Category: "case_system",
		Description: "Case marking the subject of a sentence"},
	{Name: "accusative_case", Category: "case_system",
		Description: "Case marking the direct object"},
	{Name: "dative_case", Category: "case_system",
		Description: "Case marking the indirect object"},
	{Name: "topic_marker", Category: "particles",
		Description: "Particle marking the topic of a sentence"},
	{Name: "subject_marker", Category: "particles",
		Description: "Particle marking the grammatical subject"},
	{Name: "perfective_aspect", Category: "aspect",
		Description: "Aspect expressing a completed action"},
	{Name: "imperfective_aspect", Category: "aspect",
		Description: "Aspect expressing an ongoing or habitual action"},
}

// Seed installs the base set of languages and cross-language grammar
// concepts. The operation is an upsert so it can be run repeatedly
// against a live database without side effects.
func (gdb *GrammarDB) Seed(ctx context.Context) error {
	tx, err := gdb.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, lang := range seedLanguages {
		_, err := tx.ExecContext(
			ctx,
			"INSERT INTO languages (language_id, language_name, language_family, script_type) "+
				"VALUES (?, ?, ?, ?) "+
				"ON DUPLICATE KEY UPDATE language_name = VALUES(language_name), "+
				"language_family = VALUES(language_family), script_type = VALUES(script_type)",
			lang.ID, lang.Name, lang.Family, lang.Script,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	for _, concept := range seedConcepts {
		_, err := tx.ExecContext(
			ctx,
			"INSERT INTO grammar_concepts (concept_name, category, description) "+
				"VALUES (?, ?, ?) "+
				"ON DUPLICATE KEY UPDATE category = VALUES(category), "+
				"description = VALUES(description)",
			concept.Name, concept.Category, concept.Description,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info().
		Int("numLanguages", len(seedLanguages)).
		Int("numConcepts", len(seedConcepts)).
		Msg("seed data installed")
	return nil
}
