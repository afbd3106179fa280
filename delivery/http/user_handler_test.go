package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sruthi7877/user-management-api/domain"
	"github.com/sruthi7877/user-management-api/domain/model"
	"github.com/sruthi7877/user-management-api/pkg/api"
	"github.com/sruthi7877/user-management-api/pkg/logger"
	"github.com/sruthi7877/user-management-api/usecase"
)

const (
	testManagerID = "f0a4b2d2-33aa-4f5e-a6b5-97c4a32c0a11"
	testUserID    = "0c3be51e-5e0f-44ac-a4a1-014b4d551b0a"
)

type fakeUserUseCase struct {
	createUser *model.User
	createErr  error

	getUsersIn     usecase.GetUsersInput
	getUsersResult []*model.User
	getUsersErr    error

	deleteIn  usecase.DeleteUserInput
	deleteErr error

	bulkIDs    []string
	bulkUpdate usecase.UpdateData
	bulkErr    error
}

func (f *fakeUserUseCase) CreateUser(_ context.Context, _ usecase.CreateUserInput) (*model.User, error) {
	return f.createUser, f.createErr
}

func (f *fakeUserUseCase) GetUsers(_ context.Context, in usecase.GetUsersInput) ([]*model.User, error) {
	f.getUsersIn = in
	return f.getUsersResult, f.getUsersErr
}

func (f *fakeUserUseCase) DeleteUser(_ context.Context, in usecase.DeleteUserInput) error {
	f.deleteIn = in
	return f.deleteErr
}

func (f *fakeUserUseCase) BulkUpdateUsers(_ context.Context, userIDs []string, update usecase.UpdateData) error {
	f.bulkIDs = userIDs
	f.bulkUpdate = update
	return f.bulkErr
}

func newTestServer(uc usecase.UserUseCase) http.Handler {
	appLogger := logger.NoOpLogger()
	router := NewRouter(NewUserHandler(uc, appLogger), NewHealthHandler(appLogger), appLogger)
	return router.SetupRoutes()
}

func doRequest(t *testing.T, handler http.Handler, path, body string) (*httptest.ResponseRecorder, api.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp api.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestCreateUserHandler(t *testing.T) {
	uc := &fakeUserUseCase{createUser: &model.User{UserID: testUserID}}
	handler := newTestServer(uc)

	rec, resp := doRequest(t, handler, "/create_user",
		`{"full_name":"Asha Rao","mob_num":"9123456789","pan_num":"ABCDE1234F","manager_id":"`+testManagerID+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, api.StatusSuccess, resp.Status)
	assert.NotEmpty(t, resp.RequestID)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, testUserID, data["user_id"])
}

func TestCreateUserHandler_MissingFields(t *testing.T) {
	uc := &fakeUserUseCase{}
	handler := newTestServer(uc)

	rec, resp := doRequest(t, handler, "/create_user", `{"full_name":"Asha Rao"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Details)
}

func TestCreateUserHandler_MalformedBody(t *testing.T) {
	handler := newTestServer(&fakeUserUseCase{})

	rec, resp := doRequest(t, handler, "/create_user", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestCreateUserHandler_InactiveManager(t *testing.T) {
	uc := &fakeUserUseCase{createErr: domain.ErrManagerNotActive}
	handler := newTestServer(uc)

	rec, resp := doRequest(t, handler, "/create_user",
		`{"full_name":"Asha Rao","mob_num":"9123456789","pan_num":"ABCDE1234F","manager_id":"`+testManagerID+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, domain.ErrManagerNotActive.Message, resp.Error.Message)
}

func TestGetUsersHandler_EmptyBody(t *testing.T) {
	uc := &fakeUserUseCase{getUsersResult: []*model.User{
		{UserID: testUserID, FullName: "Asha Rao", MobNum: "9123456789", PanNum: "ABCDE1234F", ManagerID: testManagerID, IsActive: true},
	}}
	handler := newTestServer(uc)

	rec, resp := doRequest(t, handler, "/get_users", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.GetUsersInput{}, uc.getUsersIn, "An empty body lists every active user")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	users, ok := data["users"].([]interface{})
	require.True(t, ok)
	require.Len(t, users, 1)
	user := users[0].(map[string]interface{})
	assert.Equal(t, testUserID, user["user_id"])
	assert.Equal(t, true, user["is_active"])
}

func TestGetUsersHandler_Filters(t *testing.T) {
	uc := &fakeUserUseCase{}
	handler := newTestServer(uc)

	rec, resp := doRequest(t, handler, "/get_users", `{"mob_num":"9123456789","manager_id":"`+testManagerID+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.GetUsersInput{MobNum: "9123456789", ManagerID: testManagerID}, uc.getUsersIn)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	users, ok := data["users"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, users, "No matches yields an empty list, not an error")
}

func TestDeleteUserHandler(t *testing.T) {
	uc := &fakeUserUseCase{}
	handler := newTestServer(uc)

	rec, resp := doRequest(t, handler, "/delete_user", `{"user_id":"`+testUserID+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.DeleteUserInput{UserID: testUserID}, uc.deleteIn)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["success"])
}

func TestDeleteUserHandler_NotFound(t *testing.T) {
	uc := &fakeUserUseCase{deleteErr: domain.ErrUserNotFound}
	handler := newTestServer(uc)

	rec, resp := doRequest(t, handler, "/delete_user", `{"user_id":"`+testUserID+`"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, domain.ErrUserNotFound.Message, resp.Error.Message)
}

func TestDeleteUserHandler_MissingKey(t *testing.T) {
	uc := &fakeUserUseCase{deleteErr: domain.ErrMissingDeleteKey}
	handler := newTestServer(uc)

	rec, resp := doRequest(t, handler, "/delete_user", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, domain.ErrMissingDeleteKey.Message, resp.Error.Message)
}

func TestUpdateUserHandler(t *testing.T) {
	uc := &fakeUserUseCase{}
	handler := newTestServer(uc)

	rec, _ := doRequest(t, handler, "/update_user",
		`{"user_ids":["`+testUserID+`"],"update_data":{"full_name":"Asha Rao"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{testUserID}, uc.bulkIDs)
	require.NotNil(t, uc.bulkUpdate.FullName)
	assert.Equal(t, "Asha Rao", *uc.bulkUpdate.FullName)
	assert.Nil(t, uc.bulkUpdate.ManagerID)
}

func TestUpdateUserHandler_EmptyTargets(t *testing.T) {
	handler := newTestServer(&fakeUserUseCase{})

	rec, resp := doRequest(t, handler, "/update_user", `{"user_ids":[],"update_data":{"full_name":"Asha Rao"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestUpdateUserHandler_ManagerMix(t *testing.T) {
	uc := &fakeUserUseCase{bulkErr: domain.ErrManagerUpdateMix}
	handler := newTestServer(uc)

	rec, resp := doRequest(t, handler, "/update_user",
		`{"user_ids":["`+testUserID+`"],"update_data":{"full_name":"Asha Rao","manager_id":"`+testManagerID+`"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, domain.ErrManagerUpdateMix.Message, resp.Error.Message)
}

func TestUpdateUserHandler_MidBatchFailure(t *testing.T) {
	uc := &fakeUserUseCase{bulkErr: errors.New("user " + testUserID + " not found or already inactive")}
	handler := newTestServer(uc)

	rec, resp := doRequest(t, handler, "/update_user",
		`{"user_ids":["`+testUserID+`"],"update_data":{"manager_id":"`+testManagerID+`"}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Error.Code)
}

func TestHealthCheckHandler(t *testing.T) {
	handler := newTestServer(&fakeUserUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp api.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "healthy", data["status"])
}
