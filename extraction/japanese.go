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

const PatternParticles = "particles"

// the topic, subject and direct object markers
var particleForms = map[string]bool{
	"は": true,
	"が": true,
	"を": true,
}

func detectParticles(sent treebank.Sentence, ps PatternSet) {
	if !analyzable(sent) {
		return
	}
	for _, tok := range sent.Tokens {
		if !particleForms[tok.Form] {
			continue
		}
		ps.add(PatternParticles, Instance{
			Roles:    map[string]string{"particle": tok.Form},
			Sentence: sent.Text,
		})
	}
}
