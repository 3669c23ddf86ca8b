// Package mocks is a generated GoMock package.
package mocks

import (
	"net"
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/openrtt/rttd/radio"
)

// MockHAL is a mock of HAL interface.
type MockHAL struct {
	ctrl     *gomock.Controller
	recorder *MockHALMockRecorder
}

// MockHALMockRecorder is the mock recorder for MockHAL.
type MockHALMockRecorder struct {
	mock *MockHAL
}

// NewMockHAL creates a new mock instance.
func NewMockHAL(ctrl *gomock.Controller) *MockHAL {
	mock := &MockHAL{ctrl: ctrl}
	mock.recorder = &MockHALMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHAL) EXPECT() *MockHALMockRecorder {
	return m.recorder
}

// RegisterEventCallback mocks base method.
func (m *MockHAL) RegisterEventCallback(cb radio.ResultCallback) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RegisterEventCallback", cb)
	ret0, _ := ret[0].(error)
	return ret0
}

// RegisterEventCallback indicates an expected call of RegisterEventCallback.
func (mr *MockHALMockRecorder) RegisterEventCallback(cb any) *MockHALRegisterEventCallbackCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterEventCallback",
		reflect.TypeOf((*MockHAL)(nil).RegisterEventCallback), cb)
	return &MockHALRegisterEventCallbackCall{Call: call}
}

// MockHALRegisterEventCallbackCall wrap *gomock.Call.
type MockHALRegisterEventCallbackCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockHALRegisterEventCallbackCall) Return(arg0 error) *MockHALRegisterEventCallbackCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockHALRegisterEventCallbackCall) Do(f func(radio.ResultCallback) error) *MockHALRegisterEventCallbackCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockHALRegisterEventCallbackCall) DoAndReturn(f func(radio.ResultCallback) error) *MockHALRegisterEventCallbackCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// RangeRequest mocks base method.
func (m *MockHAL) RangeRequest(cmdID uint32, configs []radio.Config) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RangeRequest", cmdID, configs)
	ret0, _ := ret[0].(error)
	return ret0
}

// RangeRequest indicates an expected call of RangeRequest.
func (mr *MockHALMockRecorder) RangeRequest(cmdID, configs any) *MockHALRangeRequestCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RangeRequest",
		reflect.TypeOf((*MockHAL)(nil).RangeRequest), cmdID, configs)
	return &MockHALRangeRequestCall{Call: call}
}

// MockHALRangeRequestCall wrap *gomock.Call.
type MockHALRangeRequestCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockHALRangeRequestCall) Return(arg0 error) *MockHALRangeRequestCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockHALRangeRequestCall) Do(f func(uint32, []radio.Config) error) *MockHALRangeRequestCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockHALRangeRequestCall) DoAndReturn(f func(uint32, []radio.Config) error) *MockHALRangeRequestCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// RangeCancel mocks base method.
func (m *MockHAL) RangeCancel(cmdID uint32, addrs []net.HardwareAddr) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RangeCancel", cmdID, addrs)
	ret0, _ := ret[0].(error)
	return ret0
}

// RangeCancel indicates an expected call of RangeCancel.
func (mr *MockHALMockRecorder) RangeCancel(cmdID, addrs any) *MockHALRangeCancelCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RangeCancel",
		reflect.TypeOf((*MockHAL)(nil).RangeCancel), cmdID, addrs)
	return &MockHALRangeCancelCall{Call: call}
}

// MockHALRangeCancelCall wrap *gomock.Call.
type MockHALRangeCancelCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockHALRangeCancelCall) Return(arg0 error) *MockHALRangeCancelCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockHALRangeCancelCall) Do(f func(uint32, []net.HardwareAddr) error) *MockHALRangeCancelCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockHALRangeCancelCall) DoAndReturn(f func(uint32, []net.HardwareAddr) error) *MockHALRangeCancelCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}
