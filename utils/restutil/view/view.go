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

package view

import (
	"net/http"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/pkg/errors"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/rest_utils"
)

const (
	HttpHeaderContentType = "Content-Type"
	ContentTypeText       = "text/plain; charset=utf-8"
)

var (
	ErrNotFound = errors.New("Resource not found")
)

// RESTView renders handler results as JSON; errors carry the request id.
type RESTView struct {
}

func (p *RESTView) RenderSuccessGet(w rest.ResponseWriter, object interface{}) {
	_ = w.WriteJson(object)
}

// RenderSuccessText writes body as plain text with 200 OK.
func (p *RESTView) RenderSuccessText(w rest.ResponseWriter, body string) {
	h, _ := w.(http.ResponseWriter)
	h.Header().Set(HttpHeaderContentType, ContentTypeText)
	h.WriteHeader(http.StatusOK)
	_, _ = h.Write([]byte(body))
}

func (p *RESTView) RenderError(
	w rest.ResponseWriter,
	r *rest.Request,
	err error,
	status int,
	l *log.Logger,
) {
	rest_utils.RestErrWithLog(w, r, l, err, status)
}

func (p *RESTView) RenderInternalError(
	w rest.ResponseWriter,
	r *rest.Request,
	err error,
	l *log.Logger,
) {
	rest_utils.RestErrWithLogInternal(w, r, l, err)
}

// RenderUnavailable reports a failing dependency without exposing its error.
func (p *RESTView) RenderUnavailable(
	w rest.ResponseWriter,
	r *rest.Request,
	err error,
	l *log.Logger,
) {
	rest_utils.RestErrWithLogMsg(w, r, l, err,
		http.StatusServiceUnavailable, "service unavailable")
}

func (p *RESTView) RenderErrorNotFound(w rest.ResponseWriter, r *rest.Request, l *log.Logger) {
	rest_utils.RestErrWithInfoMsg(w, r, l, ErrNotFound,
		http.StatusNotFound, ErrNotFound.Error())
}
