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

package openapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

func findHTTPProtocol(req *http.Request) string {
	if prot := req.Header.Get("x-forwarded-proto"); prot != "" {
		return prot
	}
	if req.TLS != nil {
		return "https"
	}
	return "http"
}

func findHTTPServer(req *http.Request) string {
	if serv := req.Header.Get("x-forwarded-host"); serv != "" {
		return serv
	}
	return req.Host
}

func findPath(req *http.Request) string {
	if path := req.Header.Get("x-original-path"); path != "" {
		return path
	}
	return req.URL.Path
}

// findPublicURL derives the service root URL as seen by the client,
// honoring reverse proxy headers.
func findPublicURL(req *http.Request) string {
	path := strings.TrimSuffix(findPath(req), "/openapi")
	return fmt.Sprintf("%s://%s%s", findHTTPProtocol(req), findHTTPServer(req), path)
}

func MkHandleRequest(ver string) func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		ans := NewResponse(ver, findPublicURL(ctx.Request))
		uniresp.WriteJSONResponse(ctx.Writer, &ans)
	}
}
