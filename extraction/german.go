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

import (
	"strconv"
	"strings"

	"github.com/zayabarrini/zayas-grammar-db/treebank"
)

// Pattern kinds produced by the German detectors.
const (
	PatternVerbSecond          = "verb_second"
	PatternSeparableVerbs      = "separable_verbs"
	PatternAdjectiveDeclension = "adjective_declension"
)

// German constructions need a bit more context than the universal
// 3-token minimum; V2 detection on a 3-token sentence is vacuous.
const minGermanTokens = 4

// detectVerbSecond records two flavors of verb-second evidence:
// a weak candidate for any sentence containing at least two verbs
// (role `verbs`, the full verb list) and a confirmed instance for a
// root verb standing at exactly the second position (role `verb`).
func detectVerbSecond(sent treebank.Sentence, ps PatternSet) {
	if len(sent.Tokens) < minGermanTokens {
		return
	}
	var verbs []string
	for _, tok := range sent.Tokens {
		if tok.Upos == "VERB" {
			verbs = append(verbs, tok.Form)
		}
	}
	if len(verbs) >= 2 {
		ps.add(PatternVerbSecond, Instance{
			Roles:    map[string]string{"verbs": strings.Join(verbs, " ")},
			Sentence: sent.Text,
		})
	}
	for _, tok := range sent.Tokens {
		if tok.Upos != "VERB" || tok.Deprel != "root" {
			continue
		}
		if pos, err := strconv.Atoi(tok.ID); err == nil && pos == 2 {
			ps.add(PatternVerbSecond, Instance{
				Roles:    map[string]string{"verb": tok.Form},
				Sentence: sent.Text,
			})
		}
	}
}

func detectSeparableVerbs(sent treebank.Sentence, ps PatternSet) {
	if len(sent.Tokens) < minGermanTokens {
		return
	}
	for _, tok := range sent.Tokens {
		if tok.Deprel != "compound:prt" {
			continue
		}
		head, ok := headOf(sent, tok)
		if !ok || head.Upos != "VERB" {
			continue
		}
		ps.add(PatternSeparableVerbs, Instance{
			Roles: map[string]string{
				"prefix": tok.Form,
				"verb":   head.Form,
			},
			Sentence: sent.Text,
		})
	}
}

func detectAdjectiveDeclension(sent treebank.Sentence, ps PatternSet) {
	if len(sent.Tokens) < minGermanTokens {
		return
	}
	for _, tok := range sent.Tokens {
		if tok.Upos != "ADJ" || tok.Deprel != "amod" {
			continue
		}
		if !hasFeat(tok.Feats, "Case") || !hasFeat(tok.Feats, "Degree") {
			continue
		}
		ps.add(PatternAdjectiveDeclension, Instance{
			Roles: map[string]string{
				"adjective": tok.Form,
				"features":  tok.Feats,
			},
			Sentence: sent.Text,
		})
	}
}
