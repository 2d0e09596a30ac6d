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

	model "github.com/aigentincubator/sales-ctonet/model"
	mock "github.com/stretchr/testify/mock"
)

// DataStore is an auto-generated mock type for the DataStore type
type DataStore struct {
	mock.Mock
}

// LoadRecords provides a mock function with given fields: ctx
func (_m *DataStore) LoadRecords(ctx context.Context) ([]model.HardwareRecord, error) {
	ret := _m.Called(ctx)

	var r0 []model.HardwareRecord
	if rf, ok := ret.Get(0).(func(context.Context) []model.HardwareRecord); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.HardwareRecord)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Ping provides a mock function with given fields: ctx
func (_m *DataStore) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
