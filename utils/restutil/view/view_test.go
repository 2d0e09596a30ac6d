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
	"io"
	"net/http"
	"testing"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/ant0ine/go-json-rest/rest/test"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/mendersoftware/go-lib-micro/requestlog"
)

func runView(t *testing.T, handler rest.HandlerFunc) *test.Recorded {
	router, err := rest.MakeRouter(rest.Get("/test", handler))
	assert.NoError(t, err)

	api := rest.NewApi()
	api.Use(
		&requestlog.RequestLogMiddleware{
			BaseLogger: &logrus.Logger{Out: io.Discard},
		},
		&requestid.RequestIdMiddleware{},
	)
	api.SetApp(router)

	req := test.MakeSimpleRequest(http.MethodGet, "http://localhost/test", nil)
	req.Header.Set(requestid.RequestIdHeader, "test-req-id")
	return test.RunRequest(t, api.MakeHandler(), req)
}

func TestRenderSuccessGet(t *testing.T) {
	t.Parallel()

	recorded := runView(t, func(w rest.ResponseWriter, r *rest.Request) {
		new(RESTView).RenderSuccessGet(w, map[string]int{"count": 2})
	})
	recorded.CodeIs(http.StatusOK)
	recorded.ContentTypeIsJson()
	assert.JSONEq(t, `{"count":2}`, recorded.Recorder.Body.String())
}

func TestRenderSuccessText(t *testing.T) {
	t.Parallel()

	recorded := runView(t, func(w rest.ResponseWriter, r *rest.Request) {
		new(RESTView).RenderSuccessText(w, "Category: Switches\n")
	})
	recorded.CodeIs(http.StatusOK)
	recorded.HeaderIs(HttpHeaderContentType, ContentTypeText)
	assert.Equal(t, "Category: Switches\n", recorded.Recorder.Body.String())
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		render func(v *RESTView, w rest.ResponseWriter, r *rest.Request, l *log.Logger)
		code   int
		body   string
	}{
		"error": {
			render: func(v *RESTView, w rest.ResponseWriter, r *rest.Request, l *log.Logger) {
				v.RenderError(w, r, errors.New("bad input"), http.StatusBadRequest, l)
			},
			code: http.StatusBadRequest,
			body: `{"error":"bad input","request_id":"test-req-id"}`,
		},
		"internal": {
			render: func(v *RESTView, w rest.ResponseWriter, r *rest.Request, l *log.Logger) {
				v.RenderInternalError(w, r, errors.New("secret detail"), l)
			},
			code: http.StatusInternalServerError,
			body: `{"error":"internal error","request_id":"test-req-id"}`,
		},
		"unavailable": {
			render: func(v *RESTView, w rest.ResponseWriter, r *rest.Request, l *log.Logger) {
				v.RenderUnavailable(w, r, errors.New("connection refused"), l)
			},
			code: http.StatusServiceUnavailable,
			body: `{"error":"service unavailable","request_id":"test-req-id"}`,
		},
		"not found": {
			render: func(v *RESTView, w rest.ResponseWriter, r *rest.Request, l *log.Logger) {
				v.RenderErrorNotFound(w, r, l)
			},
			code: http.StatusNotFound,
			body: `{"error":"Resource not found","request_id":"test-req-id"}`,
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			recorded := runView(t, func(w rest.ResponseWriter, r *rest.Request) {
				tc.render(new(RESTView), w, r, requestlog.GetRequestLogger(r))
			})
			recorded.CodeIs(tc.code)
			assert.JSONEq(t, tc.body, recorded.Recorder.Body.String())
		})
	}
}
