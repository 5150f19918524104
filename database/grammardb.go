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

/*
Expected tables:

CREATE TABLE languages (
  language_id CHAR(2) PRIMARY KEY,
  language_name VARCHAR(50) NOT NULL,
  language_family VARCHAR(50),
  script_type VARCHAR(20),
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE grammar_concepts (
  concept_id INT AUTO_INCREMENT PRIMARY KEY,
  concept_name VARCHAR(100) NOT NULL UNIQUE,
  category VARCHAR(50) NOT NULL,
  description TEXT
);

CREATE TABLE grammar_rules (
  rule_id INT AUTO_INCREMENT PRIMARY KEY,
  language_id CHAR(2) NOT NULL REFERENCES languages(language_id),
  concept_id INT REFERENCES grammar_concepts(concept_id),
  rule_name VARCHAR(200) NOT NULL,
  rule_description TEXT NOT NULL,
  usage_context VARCHAR(100),
  difficulty_level INT,
  is_active BOOLEAN DEFAULT TRUE,
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  UNIQUE KEY language_rule (language_id, rule_name)
);

CREATE TABLE rule_examples (
  example_id INT AUTO_INCREMENT PRIMARY KEY,
  rule_id INT NOT NULL,
  example_sentence TEXT NOT NULL,
  example_translation TEXT,
  example_romanization TEXT,
  example_gloss TEXT,
  notes TEXT,
  FOREIGN KEY (rule_id) REFERENCES grammar_rules(rule_id) ON DELETE CASCADE
);

CREATE TABLE ud_sentences (
  sentence_id INT AUTO_INCREMENT PRIMARY KEY,
  language_id CHAR(2) NOT NULL REFERENCES languages(language_id),
  sentence_text TEXT NOT NULL,
  source VARCHAR(255),
  metadata TEXT
);

CREATE TABLE ud_tokens (
  token_row_id INT AUTO_INCREMENT PRIMARY KEY,
  sentence_id INT NOT NULL,
  token_id VARCHAR(10) NOT NULL,
  form VARCHAR(255),
  lemma VARCHAR(255),
  upos VARCHAR(20),
  xpos VARCHAR(50),
  feats TEXT,
  head VARCHAR(10),
  deprel VARCHAR(50),
  FOREIGN KEY (sentence_id) REFERENCES ud_sentences(sentence_id) ON DELETE CASCADE
);
*/

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned by lookup methods in case a requested
// entry does not exist.
var ErrNotFound = errors.New("entry not found")

// GrammarDB is the relational store for languages, grammar concepts,
// rules and archived treebank sentences.
type GrammarDB struct {
	db *sql.DB
}

func NewGrammarDB(db *sql.DB) *GrammarDB {
	return &GrammarDB{db: db}
}
