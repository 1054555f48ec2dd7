package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinelista/backend/internal/constants"
	"github.com/cinelista/backend/internal/utils"
)

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		data        interface{}
		wantSuccess bool
	}{
		{
			name:        "OK with data",
			statusCode:  http.StatusOK,
			data:        map[string]string{"key": "value"},
			wantSuccess: true,
		},
		{
			name:        "Created with data",
			statusCode:  http.StatusCreated,
			data:        map[string]string{"id": "1"},
			wantSuccess: true,
		},
		{
			name:        "Error status",
			statusCode:  http.StatusBadRequest,
			data:        nil,
			wantSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			utils.JSON(rr, tt.statusCode, tt.data)

			if rr.Code != tt.statusCode {
				t.Errorf("JSON() status = %v, want %v", rr.Code, tt.statusCode)
			}

			if ct := rr.Header().Get("Content-Type"); ct != constants.ContentTypeJSON {
				t.Errorf("JSON() Content-Type = %v, want %v", ct, constants.ContentTypeJSON)
			}

			resp := decodeBody(t, rr)
			if resp.Success != tt.wantSuccess {
				t.Errorf("JSON() success = %v, want %v", resp.Success, tt.wantSuccess)
			}
		})
	}
}

func TestError(t *testing.T) {
	rr := httptest.NewRecorder()
	details := map[string]string{"email": "Email is invalid"}
	utils.Error(rr, http.StatusBadRequest, constants.CodeValidationError, "Validation failed", details)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Error() status = %v, want %v", rr.Code, http.StatusBadRequest)
	}

	resp := decodeBody(t, rr)
	if resp.Success {
		t.Errorf("Error() success = true, want false")
	}
	if resp.Error == nil {
		t.Fatalf("Error() error info is nil")
	}
	if resp.Error.Code != constants.CodeValidationError {
		t.Errorf("Error() code = %v, want %v", resp.Error.Code, constants.CodeValidationError)
	}
	if resp.Error.Details["email"] != "Email is invalid" {
		t.Errorf("Error() details = %v, want email detail", resp.Error.Details)
	}
}

func TestErrorFromAppError(t *testing.T) {
	tests := []struct {
		name       string
		appErr     *utils.AppError
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Not found",
			appErr:     utils.NewNotFoundError("List", 7),
			wantStatus: http.StatusNotFound,
			wantCode:   constants.CodeNotFound,
		},
		{
			name:       "Duplicate email",
			appErr:     utils.NewDuplicateError("User", "email", "ana@example.com"),
			wantStatus: http.StatusBadRequest,
			wantCode:   constants.CodeDuplicateResource,
		},
		{
			name:       "Invalid credentials",
			appErr:     utils.NewInvalidCredentialsError(),
			wantStatus: http.StatusUnauthorized,
			wantCode:   constants.CodeInvalidCredentials,
		},
		{
			name:       "Invalid reset token",
			appErr:     utils.NewInvalidResetTokenError(),
			wantStatus: http.StatusBadRequest,
			wantCode:   constants.CodeTokenInvalid,
		},
		{
			name:       "Delivery failed",
			appErr:     utils.NewDeliveryFailedError(nil),
			wantStatus: http.StatusInternalServerError,
			wantCode:   constants.CodeDeliveryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			utils.ErrorFromAppError(rr, tt.appErr)

			if rr.Code != tt.wantStatus {
				t.Errorf("ErrorFromAppError() status = %v, want %v", rr.Code, tt.wantStatus)
			}

			resp := decodeBody(t, rr)
			if resp.Error == nil {
				t.Fatalf("ErrorFromAppError() error info is nil")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("ErrorFromAppError() code = %v, want %v", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestNoContent(t *testing.T) {
	rr := httptest.NewRecorder()
	utils.NoContent(rr)

	if rr.Code != http.StatusNoContent {
		t.Errorf("NoContent() status = %v, want %v", rr.Code, http.StatusNoContent)
	}

	if rr.Body.Len() != 0 {
		t.Errorf("NoContent() body = %v, want empty", rr.Body.String())
	}
}

func TestUnauthorized(t *testing.T) {
	rr := httptest.NewRecorder()
	utils.Unauthorized(rr, "")

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Unauthorized() status = %v, want %v", rr.Code, http.StatusUnauthorized)
	}

	resp := decodeBody(t, rr)
	if resp.Error == nil || resp.Error.Message != constants.MsgAuthRequired {
		t.Errorf("Unauthorized() with empty message should use default")
	}
}

func TestNotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	utils.NotFound(rr, "List not found")

	if rr.Code != http.StatusNotFound {
		t.Errorf("NotFound() status = %v, want %v", rr.Code, http.StatusNotFound)
	}

	resp := decodeBody(t, rr)
	if resp.Error == nil || resp.Error.Message != "List not found" {
		t.Errorf("NotFound() message = %v, want %v", resp.Error, "List not found")
	}
}

func TestValidationError(t *testing.T) {
	rr := httptest.NewRecorder()
	utils.ValidationError(rr, map[string]string{"name": "Name is required"})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("ValidationError() status = %v, want %v", rr.Code, http.StatusBadRequest)
	}

	resp := decodeBody(t, rr)
	if resp.Error == nil || resp.Error.Details["name"] != "Name is required" {
		t.Errorf("ValidationError() details = %v, want name detail", resp.Error)
	}
}
