package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/trivia-service/internal/ports"
)

// MockQuestionSource is a mock type for the QuestionSource type
type MockQuestionSource struct {
	mock.Mock
}

type MockQuestionSource_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQuestionSource) EXPECT() *MockQuestionSource_Expecter {
	return &MockQuestionSource_Expecter{mock: &_m.Mock}
}

// FetchQuestions provides a mock function with given fields: ctx, amount
func (_m *MockQuestionSource) FetchQuestions(ctx context.Context, amount int) ([]ports.ExternalQuestion, error) {
	ret := _m.Called(ctx, amount)

	if len(ret) == 0 {
		panic("no return value specified for FetchQuestions")
	}

	var r0 []ports.ExternalQuestion
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]ports.ExternalQuestion, error)); ok {
		return rf(ctx, amount)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []ports.ExternalQuestion); ok {
		r0 = rf(ctx, amount)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]ports.ExternalQuestion)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, amount)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQuestionSource_FetchQuestions_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FetchQuestions'
type MockQuestionSource_FetchQuestions_Call struct {
	*mock.Call
}

// FetchQuestions is a helper method to define mock.On call
//   - ctx context.Context
//   - amount int
func (_e *MockQuestionSource_Expecter) FetchQuestions(ctx interface{}, amount interface{}) *MockQuestionSource_FetchQuestions_Call {
	return &MockQuestionSource_FetchQuestions_Call{Call: _e.mock.On("FetchQuestions", ctx, amount)}
}

func (_c *MockQuestionSource_FetchQuestions_Call) Run(run func(ctx context.Context, amount int)) *MockQuestionSource_FetchQuestions_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})
	return _c
}

func (_c *MockQuestionSource_FetchQuestions_Call) Return(_a0 []ports.ExternalQuestion, _a1 error) *MockQuestionSource_FetchQuestions_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuestionSource_FetchQuestions_Call) RunAndReturn(run func(context.Context, int) ([]ports.ExternalQuestion, error)) *MockQuestionSource_FetchQuestions_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockQuestionSource creates a new instance of MockQuestionSource. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQuestionSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuestionSource {
	m := &MockQuestionSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
