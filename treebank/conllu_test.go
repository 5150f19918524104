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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBlock = "# sent_id = test-1\n" +
	"# text = Ich sehe den Hund .\n" +
	"1\tIch\tich\tPRON\tPPER\t_\t2\tnsubj\t_\t_\n" +
	"2\tsehe\tsehen\tVERB\tVVFIN\t_\t0\troot\t_\t_\n" +
	"3\tden\tder\tDET\tART\tCase=Acc\t4\tdet\t_\t_\n" +
	"4\tHund\tHund\tNOUN\tNN\tCase=Acc\t2\tobj\t_\t_\n" +
	"5\t.\t.\tPUNCT\t$.\t_\t2\tpunct\t_\t_\n" +
	"\n"

func TestParseWellFormedBlock(t *testing.T) {
	sentences, err := Parse(strings.NewReader(sampleBlock))
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.Equal(t, "Ich sehe den Hund .", sentences[0].Text)
	assert.Len(t, sentences[0].Tokens, 5)
	assert.Equal(t, "sehe", sentences[0].Tokens[1].Form)
	assert.Equal(t, "VERB", sentences[0].Tokens[1].Upos)
	assert.Equal(t, "root", sentences[0].Tokens[1].Deprel)
	assert.Equal(t, "0", sentences[0].Tokens[1].Head)
}

func TestParseTextCapturesEmbeddedEquals(t *testing.T) {
	src := "# text = a = b\n" +
		"1\ta\ta\tSYM\t_\t_\t0\troot\t_\t_\n\n"
	sentences, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.Equal(t, "a = b", sentences[0].Text)
}

func TestParseDropsBlockWithoutText(t *testing.T) {
	src := "1\tHund\tHund\tNOUN\tNN\t_\t0\troot\t_\t_\n\n"
	sentences, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Empty(t, sentences)
}

func TestParseDropsBlockWithoutTokens(t *testing.T) {
	src := "# text = Nur ein Kommentar.\n\n"
	sentences, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Empty(t, sentences)
}

func TestParseDroppedBlockDoesNotCorruptNext(t *testing.T) {
	src := "1\tkaputt\tkaputt\tADJ\t_\t_\t0\troot\t_\t_\n" +
		"\n" +
		sampleBlock
	sentences, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.Len(t, sentences[0].Tokens, 5)
	assert.Equal(t, "Ich sehe den Hund .", sentences[0].Text)
}

func TestParseSkipsMultiwordRange(t *testing.T) {
	src := "# text = im Haus\n" +
		"1-2\tim\t_\t_\t_\t_\t_\t_\t_\t_\n" +
		"1\tin\tin\tADP\t_\t_\t3\tcase\t_\t_\n" +
		"2\tdem\tder\tDET\t_\t_\t3\tdet\t_\t_\n" +
		"3\tHaus\tHaus\tNOUN\t_\t_\t0\troot\t_\t_\n" +
		"\n"
	sentences, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	require.Len(t, sentences[0].Tokens, 3)
	for _, tok := range sentences[0].Tokens {
		assert.NotContains(t, tok.ID, "-")
	}
}

func TestParseSkipsShortTokenLines(t *testing.T) {
	src := "# text = ok\n" +
		"1\tok\n" +
		"1\tok\tok\tINTJ\t_\t_\t0\troot\t_\t_\n" +
		"\n"
	sentences, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.Len(t, sentences[0].Tokens, 1)
}

func TestParseIgnoresComments(t *testing.T) {
	src := "# newdoc id = x\n" +
		"# sent_id = 1\n" +
		sampleBlock
	sentences, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, sentences, 1)
}

func TestParseNoFlushWithoutTrailingBlankLine(t *testing.T) {
	src := "# text = ok\n" +
		"1\tok\tok\tINTJ\t_\t_\t0\troot\t_\t_\n"
	sentences, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Empty(t, sentences)
}

func TestParseMultipleBlocks(t *testing.T) {
	sentences, err := Parse(strings.NewReader(sampleBlock + sampleBlock))
	require.NoError(t, err)
	assert.Len(t, sentences, 2)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("/nonexistent/na-ud-train.conllu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/na-ud-train.conllu")
}
