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

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/zayabarrini/zayas-grammar-db/database"
	"github.com/zayabarrini/zayas-grammar-db/general"
)

type fakeStore struct {
	languages []database.Language
	rules     map[string][]database.GrammarRule
}

func (fs *fakeStore) ListLanguages(ctx context.Context) ([]database.Language, error) {
	return fs.languages, nil
}

func (fs *fakeStore) GetLanguage(ctx context.Context, languageID string) (database.Language, error) {
	for _, lang := range fs.languages {
		if lang.ID == languageID {
			return lang, nil
		}
	}
	return database.Language{}, database.ErrNotFound
}

func (fs *fakeStore) ListLanguagesWithRuleCounts(ctx context.Context) ([]database.LanguageRuleCount, error) {
	return nil, nil
}

func (fs *fakeStore) ListConcepts(ctx context.Context) ([]database.Concept, error) {
	return nil, nil
}

func (fs *fakeStore) ListRules(ctx context.Context, language string) ([]database.GrammarRule, error) {
	if language == "" {
		var all []database.GrammarRule
		for _, items := range fs.rules {
			all = append(all, items...)
		}
		return all, nil
	}
	return fs.rules[language], nil
}

func testRequest(t *testing.T, path string, params gin.Params) (*Actions, *gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	act := NewActions(
		&fakeStore{
			languages: []database.Language{
				{ID: "de", Name: "German", Family: "Germanic", Script: "Latin"},
			},
			rules: map[string][]database.GrammarRule{
				"ja": {{ID: 1, Language: "ja", Name: "Japanese Particles"}},
			},
		},
		nil,
		general.VersionInfo{},
	)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, path, nil)
	ctx.Params = params
	return act, ctx, rec
}

func TestRulesOfLanguageEmptyAnswers404(t *testing.T) {
	// the language row exists but carries no rules
	act, ctx, rec := testRequest(
		t, "/grammar/rules/de", gin.Params{{Key: "languageId", Value: "de"}})
	act.GrammarRulesOfLanguage(ctx)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRulesOfUnknownLanguageAnswers404(t *testing.T) {
	act, ctx, rec := testRequest(
		t, "/grammar/rules/xx", gin.Params{{Key: "languageId", Value: "xx"}})
	act.GrammarRulesOfLanguage(ctx)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRulesOfLanguageNonEmptyAnswers200(t *testing.T) {
	act, ctx, rec := testRequest(
		t, "/grammar/rules/ja", gin.Params{{Key: "languageId", Value: "ja"}})
	act.GrammarRulesOfLanguage(ctx)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Japanese Particles")
}

func TestRulesFilteredByQueryEmptyAnswers404(t *testing.T) {
	act, ctx, rec := testRequest(t, "/grammar/rules?language=de", nil)
	act.GrammarRules(ctx)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRulesUnfilteredAnswers200(t *testing.T) {
	act, ctx, rec := testRequest(t, "/grammar/rules", nil)
	act.GrammarRules(ctx)
	assert.Equal(t, http.StatusOK, rec.Code)
}
