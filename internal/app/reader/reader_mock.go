// Code generated by MockGen. DO NOT EDIT.
// Source: reader.go
//
// Generated by this command:
//
//	mockgen -source=reader.go -destination=reader_mock.go -package=reader
//

// Package reader is a generated GoMock package.
package reader

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockCompose is a mock of Compose interface.
type MockCompose struct {
	ctrl     *gomock.Controller
	recorder *MockComposeMockRecorder
	isgomock struct{}
}

// MockComposeMockRecorder is the mock recorder for MockCompose.
type MockComposeMockRecorder struct {
	mock *MockCompose
}

// NewMockCompose creates a new mock instance.
func NewMockCompose(ctrl *gomock.Controller) *MockCompose {
	mock := &MockCompose{ctrl: ctrl}
	mock.recorder = &MockComposeMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCompose) EXPECT() *MockComposeMockRecorder {
	return m.recorder
}

// Stream mocks base method.
func (m *MockCompose) Stream(ctx context.Context, service string, opts Options, emit func(string)) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Stream", ctx, service, opts, emit)
}

// Stream indicates an expected call of Stream.
func (mr *MockComposeMockRecorder) Stream(ctx, service, opts, emit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stream", reflect.TypeOf((*MockCompose)(nil).Stream), ctx, service, opts, emit)
}

// MockContainer is a mock of Container interface.
type MockContainer struct {
	ctrl     *gomock.Controller
	recorder *MockContainerMockRecorder
	isgomock struct{}
}

// MockContainerMockRecorder is the mock recorder for MockContainer.
type MockContainerMockRecorder struct {
	mock *MockContainer
}

// NewMockContainer creates a new mock instance.
func NewMockContainer(ctrl *gomock.Controller) *MockContainer {
	mock := &MockContainer{ctrl: ctrl}
	mock.recorder = &MockContainerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockContainer) EXPECT() *MockContainerMockRecorder {
	return m.recorder
}

// Stream mocks base method.
func (m *MockContainer) Stream(ctx context.Context, service string, opts Options, emit func(string)) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Stream", ctx, service, opts, emit)
}

// Stream indicates an expected call of Stream.
func (mr *MockContainerMockRecorder) Stream(ctx, service, opts, emit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stream", reflect.TypeOf((*MockContainer)(nil).Stream), ctx, service, opts, emit)
}
