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

package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zayabarrini/zayas-grammar-db/treebank"
)

func TestSelectLanguagesOverrideWins(t *testing.T) {
	tc := TreebanksConf{Languages: []string{"de", "ja"}}
	ans, err := tc.SelectLanguages([]string{"ru"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"ru"}, ans)
}

func TestSelectLanguagesFallsBackToConfigured(t *testing.T) {
	tc := TreebanksConf{Languages: []string{"de", "ja"}}
	ans, err := tc.SelectLanguages(nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"de", "ja"}, ans)
}

func TestSelectLanguagesDefaultsToAllSupported(t *testing.T) {
	var tc TreebanksConf
	ans, err := tc.SelectLanguages(nil)
	assert.NoError(t, err)
	assert.Equal(t, treebank.SupportedLanguages(), ans)
}

func TestSelectLanguagesRejectsUnknownCode(t *testing.T) {
	tc := TreebanksConf{Languages: []string{"de"}}
	ans, err := tc.SelectLanguages([]string{"de", "xx"})
	assert.Error(t, err)
	assert.Nil(t, ans)
}
