package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/draftdeck/draftdeck-backend/internal/service"
	"github.com/draftdeck/draftdeck-backend/internal/websocket"
)

func newWorkspaceHandler(f *workspaceFixture) (*WorkspaceHandler, *Responder) {
	responder := NewResponder(false)
	workspaceService := service.NewWorkspaceService(f.workspaceRepo, f.memberRepo, f.userRepo, f.tierRepo, &websocket.NoOpPublisher{})
	return NewWorkspaceHandler(workspaceService, nil, responder), responder
}

func TestCreateWorkspace_Handler(t *testing.T) {
	e := newTestEcho()
	f := newWorkspaceFixture("user_owner")
	h, responder := newWorkspaceHandler(f)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces", strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "user_fresh")

	serve(h.CreateWorkspace, c, responder)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success envelope")
	}
	if resp.Message != "Workspace created successfully" {
		t.Errorf("Unexpected message %q", resp.Message)
	}
	if resp.Request.Method != http.MethodPost {
		t.Errorf("Expected request method POST, got %q", resp.Request.Method)
	}
}

func TestCreateWorkspace_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	f := newWorkspaceFixture("user_owner")
	h, responder := newWorkspaceHandler(f)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces", strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	serve(h.CreateWorkspace, c, responder)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestCreateWorkspace_ValidationError(t *testing.T) {
	e := newTestEcho()
	f := newWorkspaceFixture("user_owner")
	h, responder := newWorkspaceHandler(f)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces", strings.NewReader(`{"name":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "user_fresh")

	serve(h.CreateWorkspace, c, responder)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Code != "VALIDATION_FAILED" {
		t.Errorf("Expected code VALIDATION_FAILED, got %q", resp.Code)
	}
	if len(resp.Errors) == 0 {
		t.Error("Expected field errors")
	}
}

func TestCreateWorkspace_AlreadyOwned(t *testing.T) {
	e := newTestEcho()
	f := newWorkspaceFixture("user_owner")
	h, responder := newWorkspaceHandler(f)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces", strings.NewReader(`{"name":"Another"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "user_owner")

	serve(h.CreateWorkspace, c, responder)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Code != "WORKSPACE_ALREADY_EXISTS" {
		t.Errorf("Expected code WORKSPACE_ALREADY_EXISTS, got %q", resp.Code)
	}
}

func TestListWorkspaces_EmptyIsNotFound(t *testing.T) {
	e := newTestEcho()
	f := newWorkspaceFixture("user_owner")
	h, responder := newWorkspaceHandler(f)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "user_without_workspaces")

	serve(h.ListWorkspaces, c, responder)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestGetWorkspace_InvalidID(t *testing.T) {
	e := newTestEcho()
	f := newWorkspaceFixture("user_owner")
	h, responder := newWorkspaceHandler(f)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("workspaceId")
	c.SetParamValues("not-a-uuid")
	setupAuthContext(c, "user_owner")

	serve(h.GetWorkspace, c, responder)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetWorkspace_NonMemberUnauthorized(t *testing.T) {
	e := newTestEcho()
	f := newWorkspaceFixture("user_owner")
	h, responder := newWorkspaceHandler(f)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/"+f.workspaceID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("workspaceId")
	c.SetParamValues(f.workspaceID.String())
	setupAuthContext(c, "user_stranger")

	serve(h.GetWorkspace, c, responder)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestGetStorageUsage_Handler(t *testing.T) {
	e := newTestEcho()
	f := newWorkspaceFixture("user_owner")
	f.workspaceRepo.Workspaces[f.workspaceID].CurrentStorageBytes = (1 << 30) / 2
	h, responder := newWorkspaceHandler(f)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/"+f.workspaceID.String()+"/storage", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("workspaceId")
	c.SetParamValues(f.workspaceID.String())
	setupAuthContext(c, "user_owner")

	serve(h.GetStorageUsage, c, responder)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data service.StorageUsage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Data.UsagePercentage != 50 {
		t.Errorf("Expected 50%% usage, got %v", resp.Data.UsagePercentage)
	}
}

func TestUpdateWorkspace_Handler(t *testing.T) {
	e := newTestEcho()
	f := newWorkspaceFixture("user_owner")
	h, responder := newWorkspaceHandler(f)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/workspaces/"+f.workspaceID.String(), strings.NewReader(`{"name":"Renamed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("workspaceId")
	c.SetParamValues(f.workspaceID.String())
	setupAuthContext(c, "user_owner")

	serve(h.UpdateWorkspace, c, responder)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := f.workspaceRepo.Workspaces[f.workspaceID].Slug; got != "renamed" {
		t.Errorf("Expected slug 'renamed', got %q", got)
	}
}

func TestProductionResponderHidesIP(t *testing.T) {
	e := newTestEcho()
	responder := NewResponder(true)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := responder.OK(c, http.StatusOK, "ok", nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Request.IP != "" {
		t.Errorf("Expected IP to be omitted in production, got %q", resp.Request.IP)
	}
}
