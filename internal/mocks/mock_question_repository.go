package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/trivia-service/internal/domain"
)

// MockQuestionRepository is a mock type for the QuestionRepository type
type MockQuestionRepository struct {
	mock.Mock
}

type MockQuestionRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQuestionRepository) EXPECT() *MockQuestionRepository_Expecter {
	return &MockQuestionRepository_Expecter{mock: &_m.Mock}
}

// List provides a mock function with given fields: ctx
func (_m *MockQuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []domain.Question
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.Question, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []domain.Question); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Question)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQuestionRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockQuestionRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockQuestionRepository_Expecter) List(ctx interface{}) *MockQuestionRepository_List_Call {
	return &MockQuestionRepository_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockQuestionRepository_List_Call) Run(run func(ctx context.Context)) *MockQuestionRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockQuestionRepository_List_Call) Return(_a0 []domain.Question, _a1 error) *MockQuestionRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuestionRepository_List_Call) RunAndReturn(run func(context.Context) ([]domain.Question, error)) *MockQuestionRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// Count provides a mock function with given fields: ctx
func (_m *MockQuestionRepository) Count(ctx context.Context) (int, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Count")
	}

	var r0 int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (int, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) int); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(int)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQuestionRepository_Count_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Count'
type MockQuestionRepository_Count_Call struct {
	*mock.Call
}

// Count is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockQuestionRepository_Expecter) Count(ctx interface{}) *MockQuestionRepository_Count_Call {
	return &MockQuestionRepository_Count_Call{Call: _e.mock.On("Count", ctx)}
}

func (_c *MockQuestionRepository_Count_Call) Run(run func(ctx context.Context)) *MockQuestionRepository_Count_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockQuestionRepository_Count_Call) Return(_a0 int, _a1 error) *MockQuestionRepository_Count_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuestionRepository_Count_Call) RunAndReturn(run func(context.Context) (int, error)) *MockQuestionRepository_Count_Call {
	_c.Call.Return(run)
	return _c
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockQuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 *domain.Question
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) (*domain.Question, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) *domain.Question); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Question)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQuestionRepository_GetByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetByID'
type MockQuestionRepository_GetByID_Call struct {
	*mock.Call
}

// GetByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id int
func (_e *MockQuestionRepository_Expecter) GetByID(ctx interface{}, id interface{}) *MockQuestionRepository_GetByID_Call {
	return &MockQuestionRepository_GetByID_Call{Call: _e.mock.On("GetByID", ctx, id)}
}

func (_c *MockQuestionRepository_GetByID_Call) Run(run func(ctx context.Context, id int)) *MockQuestionRepository_GetByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})
	return _c
}

func (_c *MockQuestionRepository_GetByID_Call) Return(_a0 *domain.Question, _a1 error) *MockQuestionRepository_GetByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuestionRepository_GetByID_Call) RunAndReturn(run func(context.Context, int) (*domain.Question, error)) *MockQuestionRepository_GetByID_Call {
	_c.Call.Return(run)
	return _c
}

// Search provides a mock function with given fields: ctx, term
func (_m *MockQuestionRepository) Search(ctx context.Context, term string) ([]domain.Question, error) {
	ret := _m.Called(ctx, term)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 []domain.Question
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.Question, error)); ok {
		return rf(ctx, term)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.Question); ok {
		r0 = rf(ctx, term)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Question)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, term)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQuestionRepository_Search_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Search'
type MockQuestionRepository_Search_Call struct {
	*mock.Call
}

// Search is a helper method to define mock.On call
//   - ctx context.Context
//   - term string
func (_e *MockQuestionRepository_Expecter) Search(ctx interface{}, term interface{}) *MockQuestionRepository_Search_Call {
	return &MockQuestionRepository_Search_Call{Call: _e.mock.On("Search", ctx, term)}
}

func (_c *MockQuestionRepository_Search_Call) Run(run func(ctx context.Context, term string)) *MockQuestionRepository_Search_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockQuestionRepository_Search_Call) Return(_a0 []domain.Question, _a1 error) *MockQuestionRepository_Search_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuestionRepository_Search_Call) RunAndReturn(run func(context.Context, string) ([]domain.Question, error)) *MockQuestionRepository_Search_Call {
	_c.Call.Return(run)
	return _c
}

// ListByCategory provides a mock function with given fields: ctx, categoryID
func (_m *MockQuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	ret := _m.Called(ctx, categoryID)

	if len(ret) == 0 {
		panic("no return value specified for ListByCategory")
	}

	var r0 []domain.Question
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]domain.Question, error)); ok {
		return rf(ctx, categoryID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []domain.Question); ok {
		r0 = rf(ctx, categoryID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Question)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, categoryID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQuestionRepository_ListByCategory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListByCategory'
type MockQuestionRepository_ListByCategory_Call struct {
	*mock.Call
}

// ListByCategory is a helper method to define mock.On call
//   - ctx context.Context
//   - categoryID int
func (_e *MockQuestionRepository_Expecter) ListByCategory(ctx interface{}, categoryID interface{}) *MockQuestionRepository_ListByCategory_Call {
	return &MockQuestionRepository_ListByCategory_Call{Call: _e.mock.On("ListByCategory", ctx, categoryID)}
}

func (_c *MockQuestionRepository_ListByCategory_Call) Run(run func(ctx context.Context, categoryID int)) *MockQuestionRepository_ListByCategory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})
	return _c
}

func (_c *MockQuestionRepository_ListByCategory_Call) Return(_a0 []domain.Question, _a1 error) *MockQuestionRepository_ListByCategory_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuestionRepository_ListByCategory_Call) RunAndReturn(run func(context.Context, int) ([]domain.Question, error)) *MockQuestionRepository_ListByCategory_Call {
	_c.Call.Return(run)
	return _c
}

// Create provides a mock function with given fields: ctx, q
func (_m *MockQuestionRepository) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	ret := _m.Called(ctx, q)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 domain.Question
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Question) (domain.Question, error)); ok {
		return rf(ctx, q)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Question) domain.Question); ok {
		r0 = rf(ctx, q)
	} else {
		r0 = ret.Get(0).(domain.Question)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Question) error); ok {
		r1 = rf(ctx, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQuestionRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockQuestionRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - q domain.Question
func (_e *MockQuestionRepository_Expecter) Create(ctx interface{}, q interface{}) *MockQuestionRepository_Create_Call {
	return &MockQuestionRepository_Create_Call{Call: _e.mock.On("Create", ctx, q)}
}

func (_c *MockQuestionRepository_Create_Call) Run(run func(ctx context.Context, q domain.Question)) *MockQuestionRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Question))
	})
	return _c
}

func (_c *MockQuestionRepository_Create_Call) Return(_a0 domain.Question, _a1 error) *MockQuestionRepository_Create_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQuestionRepository_Create_Call) RunAndReturn(run func(context.Context, domain.Question) (domain.Question, error)) *MockQuestionRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockQuestionRepository) Delete(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockQuestionRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockQuestionRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - id int
func (_e *MockQuestionRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockQuestionRepository_Delete_Call {
	return &MockQuestionRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockQuestionRepository_Delete_Call) Run(run func(ctx context.Context, id int)) *MockQuestionRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})
	return _c
}

func (_c *MockQuestionRepository_Delete_Call) Return(_a0 error) *MockQuestionRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockQuestionRepository_Delete_Call) RunAndReturn(run func(context.Context, int) error) *MockQuestionRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockQuestionRepository creates a new instance of MockQuestionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQuestionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuestionRepository {
	m := &MockQuestionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
