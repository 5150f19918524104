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

// Package extraction scans parsed treebank sentences for syntactic
// configurations and groups them into named pattern buckets. Besides
// a set of universal detectors it dispatches language-specific ones
// via a static strategy table; adding a language means adding one
// detector function and one table entry.
package extraction

import (
	"fmt"
	"strings"

	"github.com/zayabarrini/zayas-grammar-db/gerror"
	"github.com/zayabarrini/zayas-grammar-db/treebank"
)

const (
	// sentences outside this token range are excluded from
	// universal-pattern scanning to avoid degenerate or noisy
	// annotations
	minAnalyzableTokens = 3
	maxAnalyzableTokens = 50
)

// Lang is a closed set of languages the extractor can be instantiated
// for. Unsupported codes are rejected at this single boundary instead
// of silently matching no detector branch.
type Lang string

const (
	LangChinese  Lang = "zh"
	LangGerman   Lang = "de"
	LangRussian  Lang = "ru"
	LangFrench   Lang = "fr"
	LangItalian  Lang = "it"
	LangJapanese Lang = "ja"
	LangArabic   Lang = "ar"
	LangHindi    Lang = "hi"
)

// LangOf maps a raw language code to a supported Lang value.
func LangOf(code string) (Lang, error) {
	lang := Lang(code)
	switch lang {
	case LangChinese, LangGerman, LangRussian, LangFrench,
		LangItalian, LangJapanese, LangArabic, LangHindi:
		return lang, nil
	}
	return "", gerror.InputError{
		Msg: fmt.Sprintf("unsupported language code `%s`", code)}
}

// Instance is one extracted pattern observation - a small set of
// role-bound token forms plus the originating sentence text.
type Instance struct {
	Roles    map[string]string
	Sentence string
}

// PatternSet groups extracted instances by pattern kind. Per-kind
// lists keep extraction order.
type PatternSet map[string][]Instance

func (ps PatternSet) add(kind string, inst Instance) {
	ps[kind] = append(ps[kind], inst)
}

// Size returns the total number of instances across all kinds.
func (ps PatternSet) Size() int {
	var ans int
	for _, instances := range ps {
		ans += len(instances)
	}
	return ans
}

// Stats carries tag and relation frequency counters collected over
// one extraction run.
type Stats struct {
	NumSentences int
	Upos         map[string]int
	Deprel       map[string]int
}

type detector func(sent treebank.Sentence, ps PatternSet)

// langDetectors is the strategy table dispatching language-specific
// pattern detection. Languages with no specific constructions modeled
// yet map to an empty list and still pass the LangOf boundary.
var langDetectors = map[Lang][]detector{
	LangChinese:  {detectMeasureWords},
	LangGerman:   {detectVerbSecond, detectSeparableVerbs, detectAdjectiveDeclension},
	LangJapanese: {detectParticles},
	LangRussian:  {detectCaseUsage},
	LangFrench:   {},
	LangItalian:  {},
	LangArabic:   {},
	LangHindi:    {},
}

// Extractor scans sentences of a single language.
type Extractor struct {
	lang Lang
}

// NewExtractor creates an extractor for the given language code.
func NewExtractor(code string) (*Extractor, error) {
	lang, err := LangOf(code)
	if err != nil {
		return nil, err
	}
	return &Extractor{lang: lang}, nil
}

func (ex *Extractor) Lang() Lang {
	return ex.lang
}

// Extract runs all universal and language-specific detectors over the
// provided sentences and returns the collected pattern buckets along
// with tag/relation frequency statistics.
func (ex *Extractor) Extract(sentences []treebank.Sentence) (PatternSet, *Stats) {
	patterns := make(PatternSet)
	stats := &Stats{
		NumSentences: len(sentences),
		Upos:         make(map[string]int),
		Deprel:       make(map[string]int),
	}
	for _, sent := range sentences {
		for _, tok := range sent.Tokens {
			stats.Upos[tok.Upos]++
			stats.Deprel[tok.Deprel]++
		}
		if analyzable(sent) {
			detectSubjectVerb(sent, patterns)
			detectVerbObject(sent, patterns)
			detectAdjectiveNoun(sent, patterns)
		}
		for _, detect := range langDetectors[ex.lang] {
			detect(sent, patterns)
		}
	}
	return patterns, stats
}

func analyzable(sent treebank.Sentence) bool {
	return len(sent.Tokens) >= minAnalyzableTokens &&
		len(sent.Tokens) <= maxAnalyzableTokens
}

// headOf resolves the syntactic governor of a token by a linear scan
// over the sentence (first match). Sentences are short enough that
// indexing would not pay off. The second return value is false when
// the head id does not reference any token - malformed treebanks can
// do that and callers are expected to drop the pattern silently.
func headOf(sent treebank.Sentence, tok treebank.Token) (treebank.Token, bool) {
	for _, cand := range sent.Tokens {
		if cand.ID == tok.Head {
			return cand, true
		}
	}
	return treebank.Token{}, false
}

// featValue extracts the value of a `key=value` morphological feature
// out of the pipe-delimited feature string; empty when absent.
func featValue(feats, key string) string {
	_, rest, found := strings.Cut(feats, key+"=")
	if !found {
		return ""
	}
	value, _, _ := strings.Cut(rest, "|")
	return value
}

func hasFeat(feats, key string) bool {
	return strings.Contains(feats, key+"=")
}
