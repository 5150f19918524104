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
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"github.com/zayabarrini/zayas-grammar-db/database"
)

func (a *Actions) Languages(ctx *gin.Context) {
	var ans []database.Language
	if a.cache != nil && a.cache.Get(ctx.Request.Context(), "languages", &ans) {
		uniresp.WriteJSONResponse(ctx.Writer, ans)
		return
	}
	ans, err := a.db.ListLanguages(ctx.Request.Context())
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	if a.cache != nil {
		a.cache.Set(ctx.Request.Context(), "languages", ans)
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

func (a *Actions) LanguageInfo(ctx *gin.Context) {
	ans, err := a.db.GetLanguage(ctx.Request.Context(), ctx.Param("languageId"))
	if err == database.ErrNotFound {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusNotFound,
		)
		return

	} else if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

func (a *Actions) LanguagesWithRules(ctx *gin.Context) {
	var ans []database.LanguageRuleCount
	if a.cache != nil && a.cache.Get(ctx.Request.Context(), "languages:with-rules", &ans) {
		uniresp.WriteJSONResponse(ctx.Writer, ans)
		return
	}
	ans, err := a.db.ListLanguagesWithRuleCounts(ctx.Request.Context())
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusInternalServerError,
		)
		return
	}
	if a.cache != nil {
		a.cache.Set(ctx.Request.Context(), "languages:with-rules", ans)
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
