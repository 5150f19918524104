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

import "time"

// Language is one row of the `languages` table.
type Language struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Family string `json:"family"`
	Script string `json:"script"`
}

// LanguageRuleCount is a language together with the number of grammar
// rules stored for it.
type LanguageRuleCount struct {
	Language
	RuleCount int `json:"ruleCount"`
}

// Concept is a named grammar category shared across languages.
type Concept struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// GrammarRule is a language-scoped grammar rule with its examples
// attached. A rule is unique by (language, name).
type GrammarRule struct {
	ID          int64     `json:"id"`
	Language    string    `json:"language"`
	ConceptID   int64     `json:"conceptId,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Provenance  string    `json:"provenance"`
	Difficulty  int       `json:"difficulty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Examples    []Example `json:"examples"`
}

// Example is one illustrative sentence owned by a grammar rule.
type Example struct {
	ID           int64  `json:"id"`
	Sentence     string `json:"sentence"`
	Translation  string `json:"translation,omitempty"`
	Romanization string `json:"romanization,omitempty"`
	Gloss        string `json:"gloss,omitempty"`
	Notes        string `json:"notes,omitempty"`
}
