// Copyright 2025 Zaya Barrini
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zayabarrini/zayas-grammar-db/cnf"
	"github.com/zayabarrini/zayas-grammar-db/database"
	"github.com/zayabarrini/zayas-grammar-db/engine"
	"github.com/zayabarrini/zayas-grammar-db/general"
	"github.com/zayabarrini/zayas-grammar-db/handlers"
	"github.com/zayabarrini/zayas-grammar-db/openapi"
	"github.com/zayabarrini/zayas-grammar-db/rcache"
)

type apiServer struct {
	server  *http.Server
	conf    *cnf.Conf
	gdb     *database.GrammarDB
	cache   *rcache.Adapter
	verInfo general.VersionInfo
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	actions := handlers.NewActions(api.gdb, api.cache, api.verInfo)

	engine.GET("/", actions.RootInfo)

	engine.GET("/openapi", openapi.MkHandleRequest(api.verInfo.Version))

	engine.GET("/languages", actions.Languages)

	engine.GET("/languages/with-rules", actions.LanguagesWithRules)

	engine.GET("/languages/:languageId", actions.LanguageInfo)

	engine.GET("/grammar/rules", actions.GrammarRules)

	engine.GET("/grammar/rules/:languageId", actions.GrammarRulesOfLanguage)

	engine.GET("/grammar/concepts", actions.GrammarConcepts)

	protected := engine.Group("/admin").Use(AuthRequired(api.conf))

	protected.DELETE("/cache", actions.FlushCache)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (api *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down ZGDB HTTP API server")
	return api.server.Shutdown(ctx)
}

func runApiServer(conf *cnf.Conf, verInfo general.VersionInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := engine.Open(conf.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
		return
	}
	gdb := database.NewGrammarDB(db)

	var cache *rcache.Adapter
	if conf.Redis != nil {
		cache = rcache.NewAdapter(conf.Redis)
		if err := cache.TestConnection(redisConnectionTestTimeout); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
			return
		}

	} else {
		log.Warn().Msg("Redis not configured, response caching is disabled")
	}

	server := &apiServer{
		conf:    conf,
		gdb:     gdb,
		cache:   cache,
		verInfo: verInfo,
	}

	services := []service{server}
	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
