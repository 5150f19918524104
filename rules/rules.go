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

// Package rules turns extracted pattern buckets into candidate
// grammar-rule records ready for persistence.
package rules

import (
	"fmt"

	"github.com/zayabarrini/zayas-grammar-db/extraction"
)

// Provenance tags marking how a grammar rule was produced.
const (
	ProvenanceManual     = "manual"
	ProvenanceUD         = "universal_dependencies"
	ProvenanceEnhancedUD = "enhanced_ud"
	ProvenanceGermanUD   = "german_ud_specific"
)

// MaxExamples limits how many sample sentences a synthesized rule
// carries (the first ones in extraction order, no quality ranking).
const MaxExamples = 5

// Candidate is a synthesized grammar rule not yet persisted.
type Candidate struct {
	Name            string
	Description     string
	Difficulty      int
	Concept         string
	ConceptCategory string
	Provenance      string
	Examples        []string
}

type ruleSpec struct {
	name            string
	describe        func(numInstances int) string
	difficulty      int
	concept         string
	conceptCategory string
	provenance      string
}

func staticDescription(text string) func(int) string {
	return func(int) string { return text }
}

// ruleSpecs maps a pattern kind to the grammar rule it synthesizes
// into. Kinds absent from the extractor output produce no candidate.
var ruleSpecs = map[string]ruleSpec{
	extraction.PatternSubjectVerb: {
		name: "Basic Sentence Structure",
		describe: func(n int) string {
			return fmt.Sprintf("Subject-verb construction with %d examples found", n)
		},
		difficulty:      2,
		concept:         "sentence_structure",
		conceptCategory: "universal_dependencies",
		provenance:      ProvenanceEnhancedUD,
	},
	extraction.PatternVerbObject: {
		name:            "Verb-Object Relationships",
		describe:        staticDescription("Transitive verb usage with direct objects"),
		difficulty:      2,
		concept:         "verb_objects",
		conceptCategory: "universal_dependencies",
		provenance:      ProvenanceEnhancedUD,
	},
	extraction.PatternAdjectiveNoun: {
		name:            "Adjective-Noun Modification",
		describe:        staticDescription("Adjective placement and noun modification patterns"),
		difficulty:      2,
		concept:         "adjective_usage",
		conceptCategory: "universal_dependencies",
		provenance:      ProvenanceEnhancedUD,
	},
	extraction.PatternMeasureWords: {
		name:            "Chinese Measure Words",
		describe:        staticDescription("Usage of measure words with numerals"),
		difficulty:      3,
		concept:         "measure_words",
		conceptCategory: "universal_dependencies",
		provenance:      ProvenanceEnhancedUD,
	},
	extraction.PatternVerbSecond: {
		name:            "Verb Second (V2) Word Order",
		describe:        staticDescription("In main clauses, the finite verb appears in the second position"),
		difficulty:      2,
		concept:         "word_order",
		conceptCategory: "german_specific",
		provenance:      ProvenanceGermanUD,
	},
	extraction.PatternSeparableVerbs: {
		name:            "Separable Prefix Verbs",
		describe:        staticDescription("Verbs with separable prefixes that move to the end of the clause"),
		difficulty:      3,
		concept:         "verb_prefixes",
		conceptCategory: "german_specific",
		provenance:      ProvenanceGermanUD,
	},
	extraction.PatternAdjectiveDeclension: {
		name:            "Adjective Declension",
		describe:        staticDescription("Adjective endings change based on case, gender, number, and definiteness"),
		difficulty:      4,
		concept:         "adjective_declension",
		conceptCategory: "german_specific",
		provenance:      ProvenanceGermanUD,
	},
	extraction.PatternParticles: {
		name:            "Japanese Particles",
		describe:        staticDescription("Usage of case and topic particles"),
		difficulty:      2,
		concept:         "particles",
		conceptCategory: "universal_dependencies",
		provenance:      ProvenanceEnhancedUD,
	},
	extraction.PatternCaseUsage: {
		name:            "Grammatical Case System",
		describe:        staticDescription("Usage of grammatical cases and their governing relations"),
		difficulty:      3,
		concept:         "case_system",
		conceptCategory: "universal_dependencies",
		provenance:      ProvenanceEnhancedUD,
	},
}

// kindOrder fixes the order candidates are produced in; map iteration
// must not leak into persistence order.
var kindOrder = []string{
	extraction.PatternSubjectVerb,
	extraction.PatternVerbObject,
	extraction.PatternAdjectiveNoun,
	extraction.PatternMeasureWords,
	extraction.PatternVerbSecond,
	extraction.PatternSeparableVerbs,
	extraction.PatternAdjectiveDeclension,
	extraction.PatternParticles,
	extraction.PatternCaseUsage,
}

// Synthesize produces one candidate rule per non-empty pattern kind,
// with up to MaxExamples sample sentences truncated from the matching
// instance list in extraction order.
func Synthesize(patterns extraction.PatternSet) []Candidate {
	var ans []Candidate
	for _, kind := range kindOrder {
		instances := patterns[kind]
		if len(instances) == 0 {
			continue
		}
		spec := ruleSpecs[kind]
		numExamples := min(MaxExamples, len(instances))
		examples := make([]string, numExamples)
		for i := 0; i < numExamples; i++ {
			examples[i] = instances[i].Sentence
		}
		ans = append(ans, Candidate{
			Name:            spec.name,
			Description:     spec.describe(len(instances)),
			Difficulty:      spec.difficulty,
			Concept:         spec.concept,
			ConceptCategory: spec.conceptCategory,
			Provenance:      spec.provenance,
			Examples:        examples,
		})
	}
	return ans
}
