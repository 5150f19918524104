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
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/zayabarrini/zayas-grammar-db/gerror"
)

const (
	textCommentPrefix = "# text = "
	numTokenColumns   = 10

	// maxLineSize must accommodate the longest annotation lines
	// found in real treebanks (SynTagRus has token lines well over
	// bufio's default 64K only in pathological cases, but the MISC
	// column can get large).
	maxLineSize = 1024 * 1024
)

// Parse reads CONLL-U data and returns all complete sentences.
// A sentence block is emitted only if it contains at least one valid
// token line and a `# text = ` comment; incomplete blocks are dropped
// silently. Token lines with fewer than ten columns and multiword
// range markers (id containing a hyphen) are skipped at the line
// level. A trailing block without a terminating blank line is not
// flushed - well-formed treebank files always end with a blank line.
func Parse(src io.Reader) ([]Sentence, error) {
	var sentences []Sentence
	var tokens []Token
	var text string

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		switch {
		case strings.HasPrefix(line, textCommentPrefix):
			text = line[len(textCommentPrefix):]
		case strings.HasPrefix(line, "#"):
			continue
		case line == "":
			if len(tokens) > 0 && text != "" {
				sentences = append(
					sentences, Sentence{Text: text, Tokens: tokens})
			}
			tokens = nil
			text = ""
		default:
			cols := strings.Split(line, "\t")
			if len(cols) < numTokenColumns {
				continue
			}
			if strings.Contains(cols[0], "-") {
				// a multiword token range marker, the individual
				// syntactic words follow on their own lines
				continue
			}
			tokens = append(tokens, Token{
				ID:     cols[0],
				Form:   cols[1],
				Lemma:  cols[2],
				Upos:   cols[3],
				Xpos:   cols[4],
				Feats:  cols[5],
				Head:   cols[6],
				Deprel: cols[7],
				Deps:   cols[8],
				Misc:   cols[9],
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sentences, nil
}

// ParseFile parses a single CONLL-U file. Any I/O or scanning failure
// aborts the whole file and is reported with the file path attached;
// no partial sentence list is returned in such case.
func ParseFile(path string) ([]Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, gerror.ParseError{Path: path, Err: err}
	}
	defer f.Close()
	sentences, err := Parse(f)
	if err != nil {
		return nil, gerror.ParseError{Path: path, Err: err}
	}
	return sentences, nil
}
