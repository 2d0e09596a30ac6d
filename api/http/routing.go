// Copyright 2024 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package http

import (
	"github.com/ant0ine/go-json-rest/rest"

	"github.com/aigentincubator/sales-ctonet/app"
	"github.com/aigentincubator/sales-ctonet/utils/restutil"
	"github.com/aigentincubator/sales-ctonet/utils/restutil/view"
)

const (
	ApiUrlHealth     = "/health"
	ApiUrlInternal   = "/api/internal/v1/catalog"
	ApiUrlManagement = "/api/management/v1/catalog"

	ApiUrlInternalHealth         = ApiUrlInternal + "/health"
	ApiUrlManagementView         = ApiUrlManagement + "/view"
	ApiUrlManagementCategories   = ApiUrlManagement + "/categories"
	ApiUrlManagementRecordByName = ApiUrlManagement + "/records/:name"
)

// Config tunes the catalog API.
type Config struct {
	// ViewURL is the base of the navigation URLs in view responses.
	ViewURL string
}

func NewConfig(configs ...*Config) *Config {
	conf := &Config{
		ViewURL: ApiUrlManagementView,
	}
	for _, c := range configs {
		if c == nil {
			continue
		}
		if c.ViewURL != "" {
			conf.ViewURL = c.ViewURL
		}
	}
	return conf
}

func (conf *Config) SetViewURL(url string) *Config {
	conf.ViewURL = url
	return conf
}

// NewRouter defines all REST API routes.
func NewRouter(app app.App, config *Config) (rest.App, error) {
	handlers := NewCatalogApiHandlers(app, new(view.RESTView), config)

	routes := append(
		NewHealthResourceRoutes(handlers),
		NewCatalogResourceRoutes(handlers)...,
	)
	routes = restutil.AutogenOptionsRoutes(restutil.NewOptionsHandler, routes...)

	return rest.MakeRouter(routes...)
}

func NewHealthResourceRoutes(h *CatalogApiHandlers) []*rest.Route {
	return []*rest.Route{
		rest.Get(ApiUrlHealth, h.HealthCheck),
		rest.Get(ApiUrlInternalHealth, h.InternalHealthCheck),
	}
}

func NewCatalogResourceRoutes(h *CatalogApiHandlers) []*rest.Route {
	return []*rest.Route{
		rest.Get(ApiUrlManagementView, h.GetView),
		rest.Get(ApiUrlManagementCategories, h.ListCategories),
		rest.Get(ApiUrlManagementRecordByName, h.GetRecord),
	}
}
