// Package mocks is a generated GoMock package.
package mocks

import (
	"net"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/openrtt/rttd/rtt"
)

// MockRadio is a mock of Radio interface.
type MockRadio struct {
	ctrl     *gomock.Controller
	recorder *MockRadioMockRecorder
}

// MockRadioMockRecorder is the mock recorder for MockRadio.
type MockRadioMockRecorder struct {
	mock *MockRadio
}

// NewMockRadio creates a new mock instance.
func NewMockRadio(ctrl *gomock.Controller) *MockRadio {
	mock := &MockRadio{ctrl: ctrl}
	mock.recorder = &MockRadioMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRadio) EXPECT() *MockRadioMockRecorder {
	return m.recorder
}

// Submit mocks base method.
func (m *MockRadio) Submit(cmdID uint32, peers []rtt.Peer) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Submit", cmdID, peers)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Submit indicates an expected call of Submit.
func (mr *MockRadioMockRecorder) Submit(cmdID, peers any) *MockRadioSubmitCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Submit",
		reflect.TypeOf((*MockRadio)(nil).Submit), cmdID, peers)
	return &MockRadioSubmitCall{Call: call}
}

// MockRadioSubmitCall wrap *gomock.Call.
type MockRadioSubmitCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockRadioSubmitCall) Return(arg0 bool) *MockRadioSubmitCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockRadioSubmitCall) Do(f func(uint32, []rtt.Peer) bool) *MockRadioSubmitCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockRadioSubmitCall) DoAndReturn(f func(uint32, []rtt.Peer) bool) *MockRadioSubmitCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Cancel mocks base method.
func (m *MockRadio) Cancel(cmdID uint32, addrs []net.HardwareAddr) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Cancel", cmdID, addrs)
}

// Cancel indicates an expected call of Cancel.
func (mr *MockRadioMockRecorder) Cancel(cmdID, addrs any) *MockRadioCancelCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel",
		reflect.TypeOf((*MockRadio)(nil).Cancel), cmdID, addrs)
	return &MockRadioCancelCall{Call: call}
}

// MockRadioCancelCall wrap *gomock.Call.
type MockRadioCancelCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockRadioCancelCall) Return() *MockRadioCancelCall {
	c.Call = c.Call.Return()
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockRadioCancelCall) Do(f func(uint32, []net.HardwareAddr)) *MockRadioCancelCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockRadioCancelCall) DoAndReturn(f func(uint32, []net.HardwareAddr)) *MockRadioCancelCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// MockPermissionChecker is a mock of PermissionChecker interface.
type MockPermissionChecker struct {
	ctrl     *gomock.Controller
	recorder *MockPermissionCheckerMockRecorder
}

// MockPermissionCheckerMockRecorder is the mock recorder for MockPermissionChecker.
type MockPermissionCheckerMockRecorder struct {
	mock *MockPermissionChecker
}

// NewMockPermissionChecker creates a new mock instance.
func NewMockPermissionChecker(ctrl *gomock.Controller) *MockPermissionChecker {
	mock := &MockPermissionChecker{ctrl: ctrl}
	mock.recorder = &MockPermissionCheckerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPermissionChecker) EXPECT() *MockPermissionCheckerMockRecorder {
	return m.recorder
}

// Allowed mocks base method.
func (m *MockPermissionChecker) Allowed(caller rtt.Identity) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Allowed", caller)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Allowed indicates an expected call of Allowed.
func (mr *MockPermissionCheckerMockRecorder) Allowed(caller any) *MockPermissionCheckerAllowedCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Allowed",
		reflect.TypeOf((*MockPermissionChecker)(nil).Allowed), caller)
	return &MockPermissionCheckerAllowedCall{Call: call}
}

// MockPermissionCheckerAllowedCall wrap *gomock.Call.
type MockPermissionCheckerAllowedCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockPermissionCheckerAllowedCall) Return(arg0 bool) *MockPermissionCheckerAllowedCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockPermissionCheckerAllowedCall) Do(f func(rtt.Identity) bool) *MockPermissionCheckerAllowedCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockPermissionCheckerAllowedCall) DoAndReturn(f func(rtt.Identity) bool) *MockPermissionCheckerAllowedCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// MockHandle is a mock of Handle interface.
type MockHandle struct {
	ctrl     *gomock.Controller
	recorder *MockHandleMockRecorder
}

// MockHandleMockRecorder is the mock recorder for MockHandle.
type MockHandleMockRecorder struct {
	mock *MockHandle
}

// NewMockHandle creates a new mock instance.
func NewMockHandle(ctrl *gomock.Controller) *MockHandle {
	mock := &MockHandle{ctrl: ctrl}
	mock.recorder = &MockHandleMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHandle) EXPECT() *MockHandleMockRecorder {
	return m.recorder
}

// Done mocks base method.
func (m *MockHandle) Done() <-chan struct{} {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Done")
	ret0, _ := ret[0].(<-chan struct{})
	return ret0
}

// Done indicates an expected call of Done.
func (mr *MockHandleMockRecorder) Done() *MockHandleDoneCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Done",
		reflect.TypeOf((*MockHandle)(nil).Done))
	return &MockHandleDoneCall{Call: call}
}

// MockHandleDoneCall wrap *gomock.Call.
type MockHandleDoneCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockHandleDoneCall) Return(arg0 <-chan struct{}) *MockHandleDoneCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockHandleDoneCall) Do(f func() <-chan struct{}) *MockHandleDoneCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockHandleDoneCall) DoAndReturn(f func() <-chan struct{}) *MockHandleDoneCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// MockDeathWatcher is a mock of DeathWatcher interface.
type MockDeathWatcher struct {
	ctrl     *gomock.Controller
	recorder *MockDeathWatcherMockRecorder
}

// MockDeathWatcherMockRecorder is the mock recorder for MockDeathWatcher.
type MockDeathWatcherMockRecorder struct {
	mock *MockDeathWatcher
}

// NewMockDeathWatcher creates a new mock instance.
func NewMockDeathWatcher(ctrl *gomock.Controller) *MockDeathWatcher {
	mock := &MockDeathWatcher{ctrl: ctrl}
	mock.recorder = &MockDeathWatcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDeathWatcher) EXPECT() *MockDeathWatcherMockRecorder {
	return m.recorder
}

// Watch mocks base method.
func (m *MockDeathWatcher) Watch(done <-chan struct{}, fn func()) uuid.UUID {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Watch", done, fn)
	ret0, _ := ret[0].(uuid.UUID)
	return ret0
}

// Watch indicates an expected call of Watch.
func (mr *MockDeathWatcherMockRecorder) Watch(done, fn any) *MockDeathWatcherWatchCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Watch",
		reflect.TypeOf((*MockDeathWatcher)(nil).Watch), done, fn)
	return &MockDeathWatcherWatchCall{Call: call}
}

// MockDeathWatcherWatchCall wrap *gomock.Call.
type MockDeathWatcherWatchCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockDeathWatcherWatchCall) Return(arg0 uuid.UUID) *MockDeathWatcherWatchCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockDeathWatcherWatchCall) Do(f func(<-chan struct{}, func()) uuid.UUID) *MockDeathWatcherWatchCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockDeathWatcherWatchCall) DoAndReturn(f func(<-chan struct{}, func()) uuid.UUID) *MockDeathWatcherWatchCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// Unwatch mocks base method.
func (m *MockDeathWatcher) Unwatch(token uuid.UUID) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Unwatch", token)
}

// Unwatch indicates an expected call of Unwatch.
func (mr *MockDeathWatcherMockRecorder) Unwatch(token any) *MockDeathWatcherUnwatchCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unwatch",
		reflect.TypeOf((*MockDeathWatcher)(nil).Unwatch), token)
	return &MockDeathWatcherUnwatchCall{Call: call}
}

// MockDeathWatcherUnwatchCall wrap *gomock.Call.
type MockDeathWatcherUnwatchCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockDeathWatcherUnwatchCall) Return() *MockDeathWatcherUnwatchCall {
	c.Call = c.Call.Return()
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockDeathWatcherUnwatchCall) Do(f func(uuid.UUID)) *MockDeathWatcherUnwatchCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockDeathWatcherUnwatchCall) DoAndReturn(f func(uuid.UUID)) *MockDeathWatcherUnwatchCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// MockResultSink is a mock of ResultSink interface.
type MockResultSink struct {
	ctrl     *gomock.Controller
	recorder *MockResultSinkMockRecorder
}

// MockResultSinkMockRecorder is the mock recorder for MockResultSink.
type MockResultSinkMockRecorder struct {
	mock *MockResultSink
}

// NewMockResultSink creates a new mock instance.
func NewMockResultSink(ctrl *gomock.Controller) *MockResultSink {
	mock := &MockResultSink{ctrl: ctrl}
	mock.recorder = &MockResultSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResultSink) EXPECT() *MockResultSinkMockRecorder {
	return m.recorder
}

// Deliver mocks base method.
func (m *MockResultSink) Deliver(status rtt.Status, results rtt.ResultSet) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Deliver", status, results)
	ret0, _ := ret[0].(error)
	return ret0
}

// Deliver indicates an expected call of Deliver.
func (mr *MockResultSinkMockRecorder) Deliver(status, results any) *MockResultSinkDeliverCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Deliver",
		reflect.TypeOf((*MockResultSink)(nil).Deliver), status, results)
	return &MockResultSinkDeliverCall{Call: call}
}

// MockResultSinkDeliverCall wrap *gomock.Call.
type MockResultSinkDeliverCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockResultSinkDeliverCall) Return(arg0 error) *MockResultSinkDeliverCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockResultSinkDeliverCall) Do(f func(rtt.Status, rtt.ResultSet) error) *MockResultSinkDeliverCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockResultSinkDeliverCall) DoAndReturn(f func(rtt.Status, rtt.ResultSet) error) *MockResultSinkDeliverCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}
