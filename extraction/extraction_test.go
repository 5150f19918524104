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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zayabarrini/zayas-grammar-db/treebank"
)

func tok(id, form, upos, head, deprel string) treebank.Token {
	return treebank.Token{
		ID: id, Form: form, Lemma: form, Upos: upos,
		Feats: "_", Head: head, Deprel: deprel, Deps: "_", Misc: "_",
	}
}

func TestLangOfSupported(t *testing.T) {
	lang, err := LangOf("de")
	require.NoError(t, err)
	assert.Equal(t, LangGerman, lang)
}

func TestLangOfUnsupported(t *testing.T) {
	_, err := LangOf("tlh")
	assert.Error(t, err)
}

func TestSubjectVerbPattern(t *testing.T) {
	sent := treebank.Sentence{
		Text: "Die Katze schläft tief.",
		Tokens: []treebank.Token{
			tok("1", "Die", "DET", "2", "det"),
			tok("2", "Katze", "NOUN", "3", "nsubj"),
			tok("3", "schläft", "VERB", "0", "root"),
			tok("4", "tief", "ADV", "3", "advmod"),
		},
	}
	ex, err := NewExtractor("de")
	require.NoError(t, err)
	patterns, stats := ex.Extract([]treebank.Sentence{sent})

	require.Len(t, patterns[PatternSubjectVerb], 1)
	inst := patterns[PatternSubjectVerb][0]
	assert.Equal(t, "Katze", inst.Roles["subject"])
	assert.Equal(t, "schläft", inst.Roles["verb"])
	assert.Equal(t, "Die Katze schläft tief.", inst.Sentence)
	assert.Equal(t, 1, stats.NumSentences)
	assert.Equal(t, 1, stats.Upos["VERB"])
}

func TestSubjectVerbRequiresVerbGovernor(t *testing.T) {
	sent := treebank.Sentence{
		Text: "Das Haus ist groß.",
		Tokens: []treebank.Token{
			tok("1", "Das", "DET", "2", "det"),
			tok("2", "Haus", "NOUN", "4", "nsubj"),
			tok("3", "ist", "AUX", "4", "cop"),
			tok("4", "groß", "ADJ", "0", "root"),
		},
	}
	ex, _ := NewExtractor("de")
	patterns, _ := ex.Extract([]treebank.Sentence{sent})
	assert.Empty(t, patterns[PatternSubjectVerb])
}

func TestVerbObjectPattern(t *testing.T) {
	sent := treebank.Sentence{
		Text: "Er liest ein Buch.",
		Tokens: []treebank.Token{
			tok("1", "Er", "PRON", "2", "nsubj"),
			tok("2", "liest", "VERB", "0", "root"),
			tok("3", "ein", "DET", "4", "det"),
			tok("4", "Buch", "NOUN", "2", "obj"),
		},
	}
	ex, _ := NewExtractor("de")
	patterns, _ := ex.Extract([]treebank.Sentence{sent})
	require.Len(t, patterns[PatternVerbObject], 1)
	assert.Equal(t, "Buch", patterns[PatternVerbObject][0].Roles["object"])
	assert.Equal(t, "liest", patterns[PatternVerbObject][0].Roles["verb"])
}

func TestAdjectiveNounPattern(t *testing.T) {
	sent := treebank.Sentence{
		Text: "Un grand arbre pousse.",
		Tokens: []treebank.Token{
			tok("1", "Un", "DET", "3", "det"),
			tok("2", "grand", "ADJ", "3", "amod"),
			tok("3", "arbre", "NOUN", "4", "nsubj"),
			tok("4", "pousse", "VERB", "0", "root"),
		},
	}
	ex, _ := NewExtractor("fr")
	patterns, _ := ex.Extract([]treebank.Sentence{sent})
	require.Len(t, patterns[PatternAdjectiveNoun], 1)
	assert.Equal(t, "grand", patterns[PatternAdjectiveNoun][0].Roles["adjective"])
	assert.Equal(t, "arbre", patterns[PatternAdjectiveNoun][0].Roles["noun"])
}

func TestMissingHeadFailsSoft(t *testing.T) {
	// head id 9 does not exist in the sentence; the pattern must be
	// silently dropped, not panic or produce a bogus instance
	sent := treebank.Sentence{
		Text: "kaputte Annotation hier.",
		Tokens: []treebank.Token{
			tok("1", "kaputte", "ADJ", "9", "amod"),
			tok("2", "Annotation", "NOUN", "9", "nsubj"),
			tok("3", "hier", "ADV", "9", "advmod"),
		},
	}
	ex, _ := NewExtractor("de")
	patterns, _ := ex.Extract([]treebank.Sentence{sent})
	assert.Empty(t, patterns)
}

func TestShortSentenceExcluded(t *testing.T) {
	sent := treebank.Sentence{
		Text: "Er schläft.",
		Tokens: []treebank.Token{
			tok("1", "Er", "PRON", "2", "nsubj"),
			tok("2", "schläft", "VERB", "0", "root"),
		},
	}
	ex, _ := NewExtractor("de")
	patterns, stats := ex.Extract([]treebank.Sentence{sent})
	assert.Empty(t, patterns[PatternSubjectVerb])
	// statistics still count the excluded sentence's tokens
	assert.Equal(t, 1, stats.Upos["VERB"])
}

func TestLongSentenceExcluded(t *testing.T) {
	tokens := make([]treebank.Token, 51)
	for i := range tokens {
		tokens[i] = tok("1", "x", "NOUN", "0", "root")
	}
	tokens[0] = tok("1", "Katze", "NOUN", "2", "nsubj")
	tokens[1] = tok("2", "schläft", "VERB", "0", "root")
	sent := treebank.Sentence{Text: "...", Tokens: tokens}
	ex, _ := NewExtractor("ru")
	patterns, _ := ex.Extract([]treebank.Sentence{sent})
	assert.Empty(t, patterns[PatternSubjectVerb])
}

func TestMeasureWordPattern(t *testing.T) {
	sent := treebank.Sentence{
		Text: "我有三本书。",
		Tokens: []treebank.Token{
			tok("1", "我", "PRON", "2", "nsubj"),
			tok("2", "有", "VERB", "0", "root"),
			tok("3", "三", "NUM", "4", "nummod"),
			{ID: "4", Form: "本", Upos: "NOUN", Feats: "NounType=Measure",
				Head: "5", Deprel: "clf"},
			tok("5", "书", "NOUN", "2", "obj"),
		},
	}
	ex, _ := NewExtractor("zh")
	patterns, _ := ex.Extract([]treebank.Sentence{sent})
	require.Len(t, patterns[PatternMeasureWords], 1)
	assert.Equal(t, "三", patterns[PatternMeasureWords][0].Roles["num"])
	assert.Equal(t, "本", patterns[PatternMeasureWords][0].Roles["measure"])
}

func TestParticlePattern(t *testing.T) {
	sent := treebank.Sentence{
		Text: "猫は魚を食べる。",
		Tokens: []treebank.Token{
			tok("1", "猫", "NOUN", "4", "nsubj"),
			tok("2", "は", "ADP", "1", "case"),
			tok("3", "魚", "NOUN", "4", "obj"),
			tok("4", "食べる", "VERB", "0", "root"),
			tok("5", "を", "ADP", "3", "case"),
		},
	}
	ex, _ := NewExtractor("ja")
	patterns, _ := ex.Extract([]treebank.Sentence{sent})
	require.Len(t, patterns[PatternParticles], 2)
	assert.Equal(t, "は", patterns[PatternParticles][0].Roles["particle"])
	assert.Equal(t, "を", patterns[PatternParticles][1].Roles["particle"])
}

func TestCaseUsagePattern(t *testing.T) {
	sent := treebank.Sentence{
		Text: "Я читаю книгу дома.",
		Tokens: []treebank.Token{
			tok("1", "Я", "PRON", "2", "nsubj"),
			tok("2", "читаю", "VERB", "0", "root"),
			{ID: "3", Form: "книгу", Upos: "NOUN",
				Feats: "Animacy=Inan|Case=Acc|Gender=Fem|Number=Sing",
				Head:  "2", Deprel: "obj"},
			tok("4", "дома", "ADV", "2", "advmod"),
		},
	}
	ex, _ := NewExtractor("ru")
	patterns, _ := ex.Extract([]treebank.Sentence{sent})
	require.Len(t, patterns[PatternCaseUsage], 1)
	inst := patterns[PatternCaseUsage][0]
	assert.Equal(t, "книгу", inst.Roles["word"])
	assert.Equal(t, "Acc", inst.Roles["case"])
	assert.Equal(t, "читаю", inst.Roles["head"])
	assert.Equal(t, "obj", inst.Roles["relation"])
}

func TestDetectorsNotDispatchedForOtherLanguages(t *testing.T) {
	sent := treebank.Sentence{
		Text: "Я читаю книгу дома.",
		Tokens: []treebank.Token{
			tok("1", "Я", "PRON", "2", "nsubj"),
			tok("2", "читаю", "VERB", "0", "root"),
			{ID: "3", Form: "книгу", Upos: "NOUN", Feats: "Case=Acc",
				Head: "2", Deprel: "obj"},
			tok("4", "дома", "ADV", "2", "advmod"),
		},
	}
	ex, _ := NewExtractor("fr")
	patterns, _ := ex.Extract([]treebank.Sentence{sent})
	assert.Empty(t, patterns[PatternCaseUsage])
}
