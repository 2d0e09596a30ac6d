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
	"context"
	"io"
	"testing"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/ant0ine/go-json-rest/rest/test"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/mendersoftware/go-lib-micro/requestlog"

	"github.com/aigentincubator/sales-ctonet/app"
	"github.com/aigentincubator/sales-ctonet/model"
	"github.com/aigentincubator/sales-ctonet/store/mocks"
)

const testRequestID = "test-request-id"

var testRecords = []model.HardwareRecord{
	{
		Name:         "A",
		Category:     "Mobile Routers",
		DocumentLink: "https://example.com/a.pdf",
		Attributes: map[string]string{
			"5G support": "Yes",
		},
		Metrics: map[model.Metric]float64{
			model.MetricRouterThroughput: 500,
		},
	},
	{
		Name:     "B",
		Category: "Mobile Routers",
		Attributes: map[string]string{
			"5G support": "No",
		},
		Metrics: map[model.Metric]float64{
			model.MetricRouterThroughput: 800,
		},
	},
	{
		Name:     "FlexSwitch 8",
		Category: "Switches",
		Attributes: map[string]string{
			"Ports": "8",
		},
	},
}

func loadTestApp(t *testing.T) *app.Catalog {
	db := &mocks.DataStore{}
	db.On("LoadRecords", mock.Anything).Return(testRecords, nil)
	c, err := app.Load(context.Background(), db)
	require.NoError(t, err)
	return c
}

func newTestApi(t *testing.T, a app.App) *rest.Api {
	router, err := NewRouter(a, nil)
	require.NoError(t, err)

	api := rest.NewApi()
	api.Use(
		&requestlog.RequestLogMiddleware{
			BaseLogger: &logrus.Logger{Out: io.Discard},
		},
		&requestid.RequestIdMiddleware{},
	)
	api.SetApp(router)
	return api
}

func runTestRequest(t *testing.T, a app.App, method, url string) *test.Recorded {
	req := test.MakeSimpleRequest(method, url, nil)
	req.Header.Set(requestid.RequestIdHeader, testRequestID)
	return test.RunRequest(t, newTestApi(t, a).MakeHandler(), req)
}
