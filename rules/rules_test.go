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

package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zayabarrini/zayas-grammar-db/extraction"
)

func instances(n int) []extraction.Instance {
	ans := make([]extraction.Instance, n)
	for i := range ans {
		ans[i] = extraction.Instance{
			Roles:    map[string]string{"subject": "x", "verb": "y"},
			Sentence: fmt.Sprintf("sentence %d", i),
		}
	}
	return ans
}

func TestSynthesizeSkipsEmptyKinds(t *testing.T) {
	patterns := extraction.PatternSet{
		extraction.PatternSubjectVerb: instances(5),
		extraction.PatternVerbObject:  nil,
	}
	candidates := Synthesize(patterns)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Basic Sentence Structure", candidates[0].Name)
	assert.Len(t, candidates[0].Examples, 5)
}

func TestSynthesizeTruncatesExamples(t *testing.T) {
	patterns := extraction.PatternSet{
		extraction.PatternVerbObject: instances(12),
	}
	candidates := Synthesize(patterns)
	require.Len(t, candidates, 1)
	require.Len(t, candidates[0].Examples, MaxExamples)
	// first five instances in extraction order, no reordering
	assert.Equal(t, "sentence 0", candidates[0].Examples[0])
	assert.Equal(t, "sentence 4", candidates[0].Examples[4])
}

func TestSynthesizeFewerInstancesThanMax(t *testing.T) {
	patterns := extraction.PatternSet{
		extraction.PatternParticles: instances(2),
	}
	candidates := Synthesize(patterns)
	require.Len(t, candidates, 1)
	assert.Len(t, candidates[0].Examples, 2)
}

func TestSynthesizeDescriptionEmbedsCount(t *testing.T) {
	patterns := extraction.PatternSet{
		extraction.PatternSubjectVerb: instances(7),
	}
	candidates := Synthesize(patterns)
	require.Len(t, candidates, 1)
	assert.Equal(t,
		"Subject-verb construction with 7 examples found",
		candidates[0].Description)
}

func TestSynthesizeStableOrder(t *testing.T) {
	patterns := extraction.PatternSet{
		extraction.PatternCaseUsage:   instances(1),
		extraction.PatternSubjectVerb: instances(1),
		extraction.PatternVerbSecond:  instances(1),
	}
	candidates := Synthesize(patterns)
	require.Len(t, candidates, 3)
	assert.Equal(t, "Basic Sentence Structure", candidates[0].Name)
	assert.Equal(t, "Verb Second (V2) Word Order", candidates[1].Name)
	assert.Equal(t, "Grammatical Case System", candidates[2].Name)
}

func TestSynthesizeProvenanceAndDifficulty(t *testing.T) {
	patterns := extraction.PatternSet{
		extraction.PatternAdjectiveDeclension: instances(3),
	}
	candidates := Synthesize(patterns)
	require.Len(t, candidates, 1)
	assert.Equal(t, ProvenanceGermanUD, candidates[0].Provenance)
	assert.Equal(t, 4, candidates[0].Difficulty)
	assert.Equal(t, "adjective_declension", candidates[0].Concept)
}

func TestSynthesizeEmptyInput(t *testing.T) {
	assert.Empty(t, Synthesize(extraction.PatternSet{}))
}
