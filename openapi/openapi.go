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

package openapi

type Info struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

type Server struct {
	URL string `json:"url"`
}

type ParamSchema struct {
	Type string   `json:"type"`
	Enum []string `json:"enum,omitempty"`
}

type Parameter struct {
	Name        string      `json:"name"`
	In          string      `json:"in"`
	Description string      `json:"description"`
	Required    bool        `json:"required"`
	Schema      ParamSchema `json:"schema"`
}

type Method struct {
	Description string      `json:"description"`
	OperationID string      `json:"operationId"`
	Parameters  []Parameter `json:"parameters"`
	Deprecated  bool        `json:"deprecated"`
}

type Methods struct {
	Get    *Method `json:"get,omitempty"`
	Post   *Method `json:"post,omitempty"`
	Put    *Method `json:"put,omitempty"`
	Delete *Method `json:"delete,omitempty"`
}

type Response struct {
	OpenAPI string             `json:"openapi"`
	Info    Info               `json:"info"`
	Servers []Server           `json:"servers"`
	Paths   map[string]Methods `json:"paths"`
}

var languageParam = Parameter{
	Name:        "language",
	In:          "query",
	Description: "An ISO 639-1 code restricting the response to a single language.",
	Required:    false,
	Schema: ParamSchema{
		Type: "string",
	},
}

var languagePathParam = Parameter{
	Name:        "languageId",
	In:          "path",
	Description: "An ISO 639-1 code of the required language.",
	Required:    true,
	Schema: ParamSchema{
		Type: "string",
	},
}

func NewResponse(ver, url string) *Response {
	paths := make(map[string]Methods)

	paths["/languages"] = Methods{
		Get: &Method{
			Description: "Shows all known languages with their family and script information.",
			OperationID: "Languages",
			Parameters:  []Parameter{},
		},
	}

	paths["/languages/with-rules"] = Methods{
		Get: &Method{
			Description: "Shows all known languages along with the number of stored grammar rules.",
			OperationID: "LanguagesWithRules",
			Parameters:  []Parameter{},
		},
	}

	paths["/languages/{languageId}"] = Methods{
		Get: &Method{
			Description: "Shows detailed information about a single language.",
			OperationID: "LanguageInfo",
			Parameters:  []Parameter{languagePathParam},
		},
	}

	paths["/grammar/rules"] = Methods{
		Get: &Method{
			Description: "Shows stored grammar rules with their examples, optionally filtered by language.",
			OperationID: "GrammarRules",
			Parameters:  []Parameter{languageParam},
		},
	}

	paths["/grammar/rules/{languageId}"] = Methods{
		Get: &Method{
			Description: "Shows grammar rules with examples for a single language.",
			OperationID: "GrammarRulesOfLanguage",
			Parameters:  []Parameter{languagePathParam},
		},
	}

	paths["/grammar/concepts"] = Methods{
		Get: &Method{
			Description: "Shows cross-language grammar concepts rules can be attached to.",
			OperationID: "GrammarConcepts",
			Parameters:  []Parameter{},
		},
	}

	return &Response{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:       "ZGDB - grammar rules database",
			Description: "A service providing grammar rules and examples extracted from Universal Dependencies treebanks",
			Version:     ver,
		},
		Servers: []Server{
			{URL: url},
		},
		Paths: paths,
	}
}
