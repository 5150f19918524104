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

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"github.com/zayabarrini/zayas-grammar-db/database"
	"github.com/zayabarrini/zayas-grammar-db/general"
	"github.com/zayabarrini/zayas-grammar-db/rcache"
)

// Store is the read-side query surface the handlers run against.
type Store interface {
	ListLanguages(ctx context.Context) ([]database.Language, error)
	GetLanguage(ctx context.Context, languageID string) (database.Language, error)
	ListLanguagesWithRuleCounts(ctx context.Context) ([]database.LanguageRuleCount, error)
	ListConcepts(ctx context.Context) ([]database.Concept, error)
	ListRules(ctx context.Context, language string) ([]database.GrammarRule, error)
}

// Actions bundles the dependencies of all HTTP handlers. The cache
// may be nil in which case responses are always served fresh.
type Actions struct {
	db      Store
	cache   *rcache.Adapter
	verInfo general.VersionInfo
}

// RootInfo provides basic service information.
func (a *Actions) RootInfo(ctx *gin.Context) {
	uniresp.WriteJSONResponse(
		ctx.Writer,
		map[string]any{
			"name":    "ZGDB - grammar rules database",
			"version": a.verInfo,
		},
	)
}

// FlushCache drops all cached responses. Useful after manual
// database edits which the import pipeline knows nothing about.
func (a *Actions) FlushCache(ctx *gin.Context) {
	if a.cache != nil {
		a.cache.Invalidate(ctx.Request.Context())
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"ok": true})
}

func NewActions(
	db Store,
	cache *rcache.Adapter,
	verInfo general.VersionInfo,
) *Actions {
	return &Actions{
		db:      db,
		cache:   cache,
		verInfo: verInfo,
	}
}
