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
	"errors"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"github.com/zayabarrini/zayas-grammar-db/database"
)

// errNoRulesFound answers any language-filtered rule listing which
// matches nothing. The language row itself may well exist; an empty
// rule list is a not-found condition either way.
var errNoRulesFound = errors.New("no rules found for this language")

func (a *Actions) listRules(ctx *gin.Context, language string) {
	cacheKey := "rules:" + language
	var ans []database.GrammarRule
	if a.cache != nil && a.cache.Get(ctx.Request.Context(), cacheKey, &ans) {
		uniresp.WriteJSONResponse(ctx.Writer, ans)
		return
	}
	ans, err := a.db.ListRules(ctx.Request.Context(), language)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	if language != "" && len(ans) == 0 {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(errNoRulesFound),
			http.StatusNotFound,
		)
		return
	}
	if a.cache != nil {
		a.cache.Set(ctx.Request.Context(), cacheKey, ans)
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// GrammarRules answers with all stored rules, optionally restricted
// via the `language` query argument.
func (a *Actions) GrammarRules(ctx *gin.Context) {
	a.listRules(ctx, ctx.Query("language"))
}

// GrammarRulesOfLanguage answers with rules of the language given by
// the path argument.
func (a *Actions) GrammarRulesOfLanguage(ctx *gin.Context) {
	a.listRules(ctx, ctx.Param("languageId"))
}

func (a *Actions) GrammarConcepts(ctx *gin.Context) {
	var ans []database.Concept
	if a.cache != nil && a.cache.Get(ctx.Request.Context(), "concepts", &ans) {
		uniresp.WriteJSONResponse(ctx.Writer, ans)
		return
	}
	ans, err := a.db.ListConcepts(ctx.Request.Context())
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	if a.cache != nil {
		a.cache.Set(ctx.Request.Context(), "concepts", ans)
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
