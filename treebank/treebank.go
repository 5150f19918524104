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

// Package treebank provides discovery and parsing of Universal
// Dependencies treebank files in the CONLL-U format.
package treebank

// Token is a single annotated word occurrence within a sentence.
// Fields correspond to the ten tab-separated CONLL-U columns.
// All values are kept as strings, incl. ID and Head - UD ids may be
// decimal for empty nodes and the meaning of "0" (root) is resolved
// by consumers.
type Token struct {
	ID     string `json:"id"`
	Form   string `json:"form"`
	Lemma  string `json:"lemma"`
	Upos   string `json:"upos"`
	Xpos   string `json:"xpos"`
	Feats  string `json:"feats"`
	Head   string `json:"head"`
	Deprel string `json:"deprel"`
	Deps   string `json:"deps"`
	Misc   string `json:"misc"`
}

// Sentence is an ordered token sequence plus the surface text
// captured from the `# text = ` comment of its source block.
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}
