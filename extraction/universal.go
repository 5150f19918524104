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

package extraction

import "github.com/zayabarrini/zayas-grammar-db/treebank"

// Pattern kinds produced by the universal (language-independent)
// detectors.
const (
	PatternSubjectVerb   = "subject_verb"
	PatternVerbObject    = "verb_object"
	PatternAdjectiveNoun = "adjective_noun"
)

func detectSubjectVerb(sent treebank.Sentence, ps PatternSet) {
	for _, tok := range sent.Tokens {
		if tok.Deprel != "nsubj" {
			continue
		}
		head, ok := headOf(sent, tok)
		if !ok || head.Upos != "VERB" {
			continue
		}
		ps.add(PatternSubjectVerb, Instance{
			Roles: map[string]string{
				"subject": tok.Form,
				"verb":    head.Form,
			},
			Sentence: sent.Text,
		})
	}
}

func detectVerbObject(sent treebank.Sentence, ps PatternSet) {
	for _, tok := range sent.Tokens {
		if tok.Deprel != "obj" && tok.Deprel != "iobj" {
			continue
		}
		head, ok := headOf(sent, tok)
		if !ok || head.Upos != "VERB" {
			continue
		}
		ps.add(PatternVerbObject, Instance{
			Roles: map[string]string{
				"object": tok.Form,
				"verb":   head.Form,
			},
			Sentence: sent.Text,
		})
	}
}

func detectAdjectiveNoun(sent treebank.Sentence, ps PatternSet) {
	for _, tok := range sent.Tokens {
		if tok.Deprel != "amod" {
			continue
		}
		head, ok := headOf(sent, tok)
		if !ok || head.Upos != "NOUN" {
			continue
		}
		ps.add(PatternAdjectiveNoun, Instance{
			Roles: map[string]string{
				"adjective": tok.Form,
				"noun":      head.Form,
			},
			Sentence: sent.Text,
		})
	}
}
