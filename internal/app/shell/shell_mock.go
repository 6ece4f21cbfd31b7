// Code generated by MockGen. DO NOT EDIT.
// Source: shell.go
//
// Generated by this command:
//
//	mockgen -source=shell.go -destination=shell_mock.go -package=shell
//

// Package shell is a generated GoMock package.
package shell

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockCommander is a mock of Commander interface.
type MockCommander struct {
	ctrl     *gomock.Controller
	recorder *MockCommanderMockRecorder
	isgomock struct{}
}

// MockCommanderMockRecorder is the mock recorder for MockCommander.
type MockCommanderMockRecorder struct {
	mock *MockCommander
}

// NewMockCommander creates a new mock instance.
func NewMockCommander(ctrl *gomock.Controller) *MockCommander {
	mock := &MockCommander{ctrl: ctrl}
	mock.recorder = &MockCommanderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCommander) EXPECT() *MockCommanderMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockCommander) Run(ctx context.Context, name string, args ...string) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, name}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Run", varargs...)
}

// Run indicates an expected call of Run.
func (mr *MockCommanderMockRecorder) Run(ctx, name any, args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, name}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockCommander)(nil).Run), varargs...)
}

// Stream mocks base method.
func (m *MockCommander) Stream(ctx context.Context, emit func(string), name string, args ...string) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, emit, name}
	for _, a := range args {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Stream", varargs...)
}

// Stream indicates an expected call of Stream.
func (mr *MockCommanderMockRecorder) Stream(ctx, emit, name any, args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, emit, name}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stream", reflect.TypeOf((*MockCommander)(nil).Stream), varargs...)
}
