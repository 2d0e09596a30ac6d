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

package main

import (
	"net/http"
	"strings"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/accesslog"
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/mendersoftware/go-lib-micro/requestlog"

	dconfig "github.com/aigentincubator/sales-ctonet/config"
)

const (
	HttpHeaderContentSecurityPolicy = "Content-Security-Policy"
)

var commonLoggingAccessStack = []rest.Middleware{
	// logging
	&requestlog.RequestLogMiddleware{},
	&accesslog.AccessLogMiddleware{Format: accesslog.SimpleLogFormat},
	&rest.TimerMiddleware{},
	&rest.RecorderMiddleware{},
}

var defaultDevStack = []rest.Middleware{

	// catches the panic errors that occur with stack trace
	&rest.RecoverMiddleware{
		EnableResponseStackTrace: true,
	},

	// json pretty print
	&rest.JsonIndentMiddleware{},
}

var defaultProdStack = []rest.Middleware{
	// catches the panic errors
	&rest.RecoverMiddleware{},
}

// FrameAncestorsMiddleware restricts which origins may embed the catalog in
// a frame. The directive is appended to a policy set by the handler.
type FrameAncestorsMiddleware struct {
	Sources []string
}

func (mw *FrameAncestorsMiddleware) MiddlewareFunc(h rest.HandlerFunc) rest.HandlerFunc {
	if len(mw.Sources) == 0 {
		return h
	}
	directive := "frame-ancestors " + strings.Join(mw.Sources, " ")
	return func(w rest.ResponseWriter, r *rest.Request) {
		h(&cspResponseWriter{ResponseWriter: w, directive: directive}, r)
	}
}

// cspResponseWriter sets the policy right before the headers are sent.
type cspResponseWriter struct {
	rest.ResponseWriter
	directive   string
	wroteHeader bool
}

func (w *cspResponseWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		policy := strings.TrimSpace(w.Header().Get(HttpHeaderContentSecurityPolicy))
		if policy == "" {
			policy = w.directive
		} else if !strings.Contains(policy, "frame-ancestors") {
			policy = strings.TrimSuffix(policy, ";") + "; " + w.directive
		}
		w.Header().Set(HttpHeaderContentSecurityPolicy, policy)
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *cspResponseWriter) WriteJson(v interface{}) error {
	b, err := w.EncodeJson(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func (w *cspResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.(http.ResponseWriter).Write(b)
}

func SetupMiddleware(c config.Reader, api *rest.Api) {

	api.Use(commonLoggingAccessStack...)

	mwtype := c.GetString(dconfig.SettingMiddleware)
	if mwtype == dconfig.EnvDev {
		api.Use(defaultDevStack...)
	} else {
		api.Use(defaultProdStack...)
	}

	api.Use(
		&requestid.RequestIdMiddleware{},
		&FrameAncestorsMiddleware{
			Sources: c.GetStringSlice(dconfig.SettingEmbedFrameAncestors),
		},
		&rest.ContentTypeCheckerMiddleware{},
	)
}
