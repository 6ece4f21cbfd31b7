// Code generated by MockGen. DO NOT EDIT.
// Source: mux.go
//
// Generated by this command:
//
//	mockgen -source=mux.go -destination=mux_mock.go -package=mux
//

// Package mux is a generated GoMock package.
package mux

import (
	context "context"
	io "io"
	reader "overlog/internal/app/reader"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockMux is a mock of Mux interface.
type MockMux struct {
	ctrl     *gomock.Controller
	recorder *MockMuxMockRecorder
	isgomock struct{}
}

// MockMuxMockRecorder is the mock recorder for MockMux.
type MockMuxMockRecorder struct {
	mock *MockMux
}

// NewMockMux creates a new mock instance.
func NewMockMux(ctrl *gomock.Controller) *MockMux {
	mock := &MockMux{ctrl: ctrl}
	mock.recorder = &MockMuxMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMux) EXPECT() *MockMuxMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockMux) Run(ctx context.Context, out io.Writer, services []string, opts reader.Options) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", ctx, out, services, opts)
	ret0, _ := ret[0].(error)
	return ret0
}

// Run indicates an expected call of Run.
func (mr *MockMuxMockRecorder) Run(ctx, out, services, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockMux)(nil).Run), ctx, out, services, opts)
}
