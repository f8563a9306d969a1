package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/santiagotraba/task-manager-backend/internal/adapter/http/dto"
	"github.com/santiagotraba/task-manager-backend/internal/app/token"
	"github.com/santiagotraba/task-manager-backend/internal/core/domain"
	"github.com/santiagotraba/task-manager-backend/pkg/apierrors"
)

const testSubtaskID = "64f1b5f0a2b3c4d5e6f70901"

func TestSubtasks_Add_Success(t *testing.T) {
	tokens := token.NewManager(testSecret)
	withSubtask := sampleTask()
	withSubtask.Subtasks = []domain.Subtask{
		{ID: testSubtaskID, Title: "pick 2% brand", Completed: false},
	}

	serviceMock := new(taskServiceMock)
	serviceMock.On("AddSubtask", mock.Anything, testOwnerID, testTaskID, "pick 2% brand").
		Return(withSubtask, nil).Once()

	router := newTaskRouter(serviceMock, tokens)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, tokens, http.MethodPost,
		"/api/tasks/"+testTaskID+"/subtasks", `{"title":"pick 2% brand"}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Subtasks, 1)
	require.Equal(t, testSubtaskID, got.Subtasks[0].ID)
	require.Equal(t, "pick 2% brand", got.Subtasks[0].Title)
	require.False(t, got.Subtasks[0].Completed)
	serviceMock.AssertExpectations(t)
}

func TestSubtasks_Add_EmptyTitle(t *testing.T) {
	tokens := token.NewManager(testSecret)
	serviceMock := new(taskServiceMock)

	router := newTaskRouter(serviceMock, tokens)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, tokens, http.MethodPost,
		"/api/tasks/"+testTaskID+"/subtasks", `{"title":"  "}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "AddSubtask")
}

func TestSubtasks_Add_TaskNotFound(t *testing.T) {
	tokens := token.NewManager(testSecret)
	serviceMock := new(taskServiceMock)
	serviceMock.On("AddSubtask", mock.Anything, testOwnerID, testTaskID, "pick 2% brand").
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	router := newTaskRouter(serviceMock, tokens)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, tokens, http.MethodPost,
		"/api/tasks/"+testTaskID+"/subtasks", `{"title":"pick 2% brand"}`))

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestSubtasks_Update_Success(t *testing.T) {
	tokens := token.NewManager(testSecret)
	updated := sampleTask()
	updated.Subtasks = []domain.Subtask{
		{ID: testSubtaskID, Title: "pick 2% brand", Completed: true},
	}

	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateSubtask", mock.Anything, testOwnerID, testTaskID, testSubtaskID, true).
		Return(updated, nil).Once()

	router := newTaskRouter(serviceMock, tokens)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, tokens, http.MethodPut,
		"/api/tasks/"+testTaskID+"/subtasks/"+testSubtaskID, `{"completed":true}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Subtasks, 1)
	require.True(t, got.Subtasks[0].Completed)
	serviceMock.AssertExpectations(t)
}

func TestSubtasks_Update_MissingCompleted(t *testing.T) {
	tokens := token.NewManager(testSecret)
	serviceMock := new(taskServiceMock)

	router := newTaskRouter(serviceMock, tokens)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, tokens, http.MethodPut,
		"/api/tasks/"+testTaskID+"/subtasks/"+testSubtaskID, `{}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "UpdateSubtask")
}

func TestSubtasks_Update_SubtaskNotFound(t *testing.T) {
	tokens := token.NewManager(testSecret)
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateSubtask", mock.Anything, testOwnerID, testTaskID, testSubtaskID, true).
		Return(domain.Task{}, domain.ErrSubtaskNotFound).Once()

	router := newTaskRouter(serviceMock, tokens)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, tokens, http.MethodPut,
		"/api/tasks/"+testTaskID+"/subtasks/"+testSubtaskID, `{"completed":true}`))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Subtask not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
