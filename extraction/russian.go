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

const PatternCaseUsage = "case_usage"

// detectCaseUsage records every case-marked token together with its
// governor and the relation between them. Tokens whose head id does
// not resolve within the sentence are skipped.
func detectCaseUsage(sent treebank.Sentence, ps PatternSet) {
	if !analyzable(sent) {
		return
	}
	for _, tok := range sent.Tokens {
		caseVal := featValue(tok.Feats, "Case")
		if caseVal == "" {
			continue
		}
		head, ok := headOf(sent, tok)
		if !ok {
			continue
		}
		ps.add(PatternCaseUsage, Instance{
			Roles: map[string]string{
				"word":     tok.Form,
				"case":     caseVal,
				"head":     head.Form,
				"relation": tok.Deprel,
			},
			Sentence: sent.Text,
		})
	}
}
