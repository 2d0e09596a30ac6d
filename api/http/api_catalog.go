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
	"net/http"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/pkg/errors"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/requestlog"

	"github.com/aigentincubator/sales-ctonet/app"
	"github.com/aigentincubator/sales-ctonet/model"
)

const (
	HttpHeaderRevision = "X-Catalog-Revision"

	// FormatParam selects an alternative rendering of the view; it is
	// not part of the view state.
	FormatParam = "format"
	FormatText  = "text"
)

// RESTView renders handler results and errors.
type RESTView interface {
	RenderSuccessGet(w rest.ResponseWriter, object interface{})
	RenderSuccessText(w rest.ResponseWriter, body string)
	RenderError(w rest.ResponseWriter, r *rest.Request, err error, status int, l *log.Logger)
	RenderInternalError(w rest.ResponseWriter, r *rest.Request, err error, l *log.Logger)
	RenderUnavailable(w rest.ResponseWriter, r *rest.Request, err error, l *log.Logger)
	RenderErrorNotFound(w rest.ResponseWriter, r *rest.Request, l *log.Logger)
}

type CatalogApiHandlers struct {
	view   RESTView
	app    app.App
	config *Config
}

func NewCatalogApiHandlers(app app.App, view RESTView, config *Config) *CatalogApiHandlers {
	return &CatalogApiHandlers{
		view:   view,
		app:    app,
		config: NewConfig(config),
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

// HealthCheck answers liveness probes; it does not touch the data source.
func (h *CatalogApiHandlers) HealthCheck(w rest.ResponseWriter, r *rest.Request) {
	h.view.RenderSuccessGet(w, healthResponse{Status: "ok"})
}

func (h *CatalogApiHandlers) InternalHealthCheck(w rest.ResponseWriter, r *rest.Request) {
	l := requestlog.GetRequestLogger(r)

	if err := h.app.HealthCheck(r.Context()); err != nil {
		h.view.RenderUnavailable(w, r, err, l)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetView computes the view described by the query string. Unknown or
// malformed parameters never fail the request.
func (h *CatalogApiHandlers) GetView(w rest.ResponseWriter, r *rest.Request) {
	params := r.URL.Query()
	format := params.Get(FormatParam)
	params.Del(FormatParam)

	v := h.app.ComputeView(r.Context(), params)
	w.Header().Set(HttpHeaderRevision, v.Revision)

	links := h.app.Links(h.config.ViewURL)
	resp := newViewResponse(v, links)
	if format == FormatText {
		h.view.RenderSuccessText(w, resp.SelectionsText)
		return
	}
	h.view.RenderSuccessGet(w, resp)
}

func (h *CatalogApiHandlers) ListCategories(w rest.ResponseWriter, r *rest.Request) {
	h.view.RenderSuccessGet(w, h.app.ListCategories(r.Context()))
}

func (h *CatalogApiHandlers) GetRecord(w rest.ResponseWriter, r *rest.Request) {
	l := requestlog.GetRequestLogger(r)

	name := r.PathParam("name")
	if err := validateRecordName(name); err != nil {
		h.view.RenderError(w, r, err, http.StatusBadRequest, l)
		return
	}

	rec, err := h.app.GetRecord(r.Context(), name)
	switch errors.Cause(err) {
	case nil:
		h.view.RenderSuccessGet(w, rec)
	case app.ErrRecordNotFound:
		h.view.RenderErrorNotFound(w, r, l)
	default:
		h.view.RenderInternalError(w, r, err, l)
	}
}

func validateRecordName(name string) error {
	rec := model.HardwareRecord{Name: name, Category: "-"}
	return errors.Wrap(rec.Validate(), "invalid record name")
}
