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

package mocks

import (
	context "context"
	url "net/url"

	app "github.com/aigentincubator/sales-ctonet/app"
	catalog "github.com/aigentincubator/sales-ctonet/catalog"
	model "github.com/aigentincubator/sales-ctonet/model"
	mock "github.com/stretchr/testify/mock"
)

// App is an auto-generated mock type for the App type
type App struct {
	mock.Mock
}

// ComputeView provides a mock function with given fields: ctx, params
func (_m *App) ComputeView(ctx context.Context, params url.Values) catalog.View {
	ret := _m.Called(ctx, params)

	var r0 catalog.View
	if rf, ok := ret.Get(0).(func(context.Context, url.Values) catalog.View); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(catalog.View)
	}

	return r0
}

// GetRecord provides a mock function with given fields: ctx, name
func (_m *App) GetRecord(ctx context.Context, name string) (*model.HardwareRecord, error) {
	ret := _m.Called(ctx, name)

	var r0 *model.HardwareRecord
	if rf, ok := ret.Get(0).(func(context.Context, string) *model.HardwareRecord); ok {
		r0 = rf(ctx, name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.HardwareRecord)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// HealthCheck provides a mock function with given fields: ctx
func (_m *App) HealthCheck(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Links provides a mock function with given fields: base
func (_m *App) Links(base string) *catalog.Links {
	ret := _m.Called(base)

	var r0 *catalog.Links
	if rf, ok := ret.Get(0).(func(string) *catalog.Links); ok {
		r0 = rf(base)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*catalog.Links)
		}
	}

	return r0
}

// ListCategories provides a mock function with given fields: ctx
func (_m *App) ListCategories(ctx context.Context) []app.CategorySummary {
	ret := _m.Called(ctx)

	var r0 []app.CategorySummary
	if rf, ok := ret.Get(0).(func(context.Context) []app.CategorySummary); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]app.CategorySummary)
		}
	}

	return r0
}
