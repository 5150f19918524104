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
	"fmt"
	"strings"
)

func (gdb *GrammarDB) ListLanguages(ctx context.Context) ([]Language, error) {
	rows, err := gdb.db.QueryContext(
		ctx,
		"SELECT language_id, language_name, language_family, script_type "+
			"FROM languages ORDER BY language_id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ans := make([]Language, 0, 10)
	for rows.Next() {
		var lang Language
		var family, script sql.NullString
		if err := rows.Scan(&lang.ID, &lang.Name, &family, &script); err != nil {
			return nil, err
		}
		lang.Family = family.String
		lang.Script = script.String
		ans = append(ans, lang)
	}
	return ans, rows.Err()
}

func (gdb *GrammarDB) GetLanguage(ctx context.Context, languageID string) (Language, error) {
	var lang Language
	var family, script sql.NullString
	err := gdb.db.QueryRowContext(
		ctx,
		"SELECT language_id, language_name, language_family, script_type "+
			"FROM languages WHERE language_id = ?",
		languageID,
	).Scan(&lang.ID, &lang.Name, &family, &script)
	if err == sql.ErrNoRows {
		return lang, ErrNotFound

	} else if err != nil {
		return lang, err
	}
	lang.Family = family.String
	lang.Script = script.String
	return lang, nil
}

// ListLanguagesWithRuleCounts returns all known languages along with
// the number of active rules stored for each. Languages without any
// rules are included with a zero count.
func (gdb *GrammarDB) ListLanguagesWithRuleCounts(ctx context.Context) ([]LanguageRuleCount, error) {
	rows, err := gdb.db.QueryContext(
		ctx,
		"SELECT l.language_id, l.language_name, l.language_family, l.script_type, "+
			"COUNT(r.rule_id) "+
			"FROM languages AS l "+
			"LEFT JOIN grammar_rules AS r "+
			"ON r.language_id = l.language_id AND r.is_active = TRUE "+
			"GROUP BY l.language_id, l.language_name, l.language_family, l.script_type "+
			"ORDER BY l.language_id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ans := make([]LanguageRuleCount, 0, 10)
	for rows.Next() {
		var item LanguageRuleCount
		var family, script sql.NullString
		if err := rows.Scan(
			&item.ID, &item.Name, &family, &script, &item.RuleCount); err != nil {
			return nil, err
		}
		item.Family = family.String
		item.Script = script.String
		ans = append(ans, item)
	}
	return ans, rows.Err()
}

func (gdb *GrammarDB) ListConcepts(ctx context.Context) ([]Concept, error) {
	rows, err := gdb.db.QueryContext(
		ctx,
		"SELECT concept_id, concept_name, category, description "+
			"FROM grammar_concepts ORDER BY concept_name",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ans := make([]Concept, 0, 20)
	for rows.Next() {
		var concept Concept
		var category, description sql.NullString
		if err := rows.Scan(
			&concept.ID, &concept.Name, &category, &description); err != nil {
			return nil, err
		}
		concept.Category = category.String
		concept.Description = description.String
		ans = append(ans, concept)
	}
	return ans, rows.Err()
}

// ListRules returns active rules, optionally restricted to a single
// language, each with its stored examples attached. Examples are
// fetched in a second query to avoid a fan-out join.
func (gdb *GrammarDB) ListRules(ctx context.Context, language string) ([]GrammarRule, error) {
	query := "SELECT rule_id, language_id, concept_id, rule_name, rule_description, " +
		"usage_context, difficulty_level, is_active, created_at, updated_at " +
		"FROM grammar_rules WHERE is_active = TRUE"
	args := make([]any, 0, 1)
	if language != "" {
		query += " AND language_id = ?"
		args = append(args, language)
	}
	query += " ORDER BY language_id, rule_name"
	rows, err := gdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ans := make([]GrammarRule, 0, 50)
	ruleIdx := make(map[int64]int)
	for rows.Next() {
		var rule GrammarRule
		var conceptID sql.NullInt64
		var provenance sql.NullString
		if err := rows.Scan(
			&rule.ID, &rule.Language, &conceptID, &rule.Name, &rule.Description,
			&provenance, &rule.Difficulty, &rule.IsActive,
			&rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if conceptID.Valid {
			rule.ConceptID = conceptID.Int64
		}
		rule.Provenance = provenance.String
		rule.Examples = []Example{}
		ruleIdx[rule.ID] = len(ans)
		ans = append(ans, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ans) == 0 {
		return ans, nil
	}
	if err := gdb.attachExamples(ctx, ans, ruleIdx); err != nil {
		return nil, err
	}
	return ans, nil
}

func (gdb *GrammarDB) attachExamples(
	ctx context.Context,
	items []GrammarRule,
	ruleIdx map[int64]int,
) error {
	placeholders := make([]string, len(items))
	args := make([]any, len(items))
	for i, rule := range items {
		placeholders[i] = "?"
		args[i] = rule.ID
	}
	rows, err := gdb.db.QueryContext(
		ctx,
		fmt.Sprintf(
			"SELECT example_id, rule_id, example_sentence, example_translation, "+
				"example_romanization, example_gloss, notes "+
				"FROM rule_examples WHERE rule_id IN (%s) ORDER BY example_id",
			strings.Join(placeholders, ", "),
		),
		args...,
	)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var ex Example
		var ruleID int64
		var translation, romanization, gloss, notes sql.NullString
		if err := rows.Scan(
			&ex.ID, &ruleID, &ex.Sentence, &translation, &romanization,
			&gloss, &notes,
		); err != nil {
			return err
		}
		ex.Translation = translation.String
		ex.Romanization = romanization.String
		ex.Gloss = gloss.String
		ex.Notes = notes.String
		if idx, ok := ruleIdx[ruleID]; ok {
			items[idx].Examples = append(items[idx].Examples, ex)
		}
	}
	return rows.Err()
}

// CountRulesByProvenance returns per-provenance rule counts for one
// language (or all languages if empty). Used by the import report.
func (gdb *GrammarDB) CountRulesByProvenance(
	ctx context.Context,
	language string,
) (map[string]int, error) {
	query := "SELECT COALESCE(usage_context, ''), COUNT(*) FROM grammar_rules " +
		"WHERE is_active = TRUE"
	args := make([]any, 0, 1)
	if language != "" {
		query += " AND language_id = ?"
		args = append(args, language)
	}
	query += " GROUP BY usage_context"
	rows, err := gdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ans := make(map[string]int)
	for rows.Next() {
		var provenance string
		var count int
		if err := rows.Scan(&provenance, &count); err != nil {
			return nil, err
		}
		ans[provenance] = count
	}
	return ans, rows.Err()
}

// CountArchivedSentences returns the number of archived treebank
// sentences per language.
func (gdb *GrammarDB) CountArchivedSentences(ctx context.Context) (map[string]int, error) {
	rows, err := gdb.db.QueryContext(
		ctx,
		"SELECT language_id, COUNT(*) FROM ud_sentences GROUP BY language_id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ans := make(map[string]int)
	for rows.Next() {
		var language string
		var count int
		if err := rows.Scan(&language, &count); err != nil {
			return nil, err
		}
		ans[language] = count
	}
	return ans, rows.Err()
}
