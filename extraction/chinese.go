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
	"strings"

	"github.com/zayabarrini/zayas-grammar-db/treebank"
)

const PatternMeasureWords = "measure_words"

// detectMeasureWords looks for a numeral immediately followed by a
// noun annotated with a measure-word feature (classifier usage).
func detectMeasureWords(sent treebank.Sentence, ps PatternSet) {
	if !analyzable(sent) {
		return
	}
	for i, tok := range sent.Tokens {
		if tok.Upos != "NUM" || i+1 >= len(sent.Tokens) {
			continue
		}
		next := sent.Tokens[i+1]
		if next.Upos != "NOUN" ||
			!strings.Contains(strings.ToLower(next.Feats), "measure") {
			continue
		}
		ps.add(PatternMeasureWords, Instance{
			Roles: map[string]string{
				"num":     tok.Form,
				"measure": next.Form,
			},
			Sentence: sent.Text,
		})
	}
}
