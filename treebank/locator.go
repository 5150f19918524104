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

package treebank

import (
	"path/filepath"
	"sort"
	"strings"
)

// dirPatterns maps a language code to an ordered list of directory
// name patterns to try inside a UD release directory. The order
// matters - more specific treebanks are preferred over the catch-all
// glob where experience shows the glob may match low-quality ones.
var dirPatterns = map[string][]string{
	"zh": {"UD_Chinese-*", "UD_Chinese_GSD", "UD_Chinese-PUD"},
	"de": {"UD_German-*", "UD_German_GSD", "UD_German-HDT"},
	"ru": {"UD_Russian-*", "UD_Russian_GSD", "UD_Russian-SynTagRus"},
	"fr": {"UD_French-*", "UD_French_GSD", "UD_French-Sequoia"},
	"it": {"UD_Italian-*", "UD_Italian_ISDT", "UD_Italian-PoSTWITA"},
	"ja": {"UD_Japanese-*", "UD_Japanese_GSD", "UD_Japanese-BCCWJ"},
	"ar": {"UD_Arabic-*", "UD_Arabic_PADT", "UD_Arabic-NYUAD"},
	"hi": {"UD_Hindi-*", "UD_Hindi_HDTB", "UD_Hindi-English-HIENCS"},
}

// FindTreebank searches rootDir for CONLL-U files of the given
// language. The files of the first matching directory pattern are
// returned (first-match-wins, not a union across patterns). An empty
// result means no treebank is available for the language; this is
// not an error and callers are expected to skip such language.
func FindTreebank(rootDir, langCode string) []string {
	for _, pattern := range dirPatterns[langCode] {
		files, err := filepath.Glob(
			filepath.Join(rootDir, pattern, "*.conllu"))
		if err != nil {
			// the only possible error here is a malformed pattern
			// which is a programming mistake, not a runtime state
			continue
		}
		if len(files) > 0 {
			return files
		}
	}
	return nil
}

// SupportedLanguages lists all language codes the locator knows
// directory conventions for, in stable order.
func SupportedLanguages() []string {
	ans := make([]string, 0, len(dirPatterns))
	for code := range dirPatterns {
		ans = append(ans, code)
	}
	sort.Strings(ans)
	return ans
}

func IsSupportedLanguage(langCode string) bool {
	_, ok := dirPatterns[langCode]
	return ok
}

// SelectImportFile picks the file an import run should process out
// of located candidates - the first training or development split.
// Returns an empty string if none of the files qualifies.
func SelectImportFile(files []string) string {
	for _, f := range files {
		base := filepath.Base(f)
		if strings.Contains(base, "train.conllu") ||
			strings.Contains(base, "dev.conllu") {
			return f
		}
	}
	return ""
}
