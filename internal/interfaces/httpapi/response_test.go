package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/ufaleague/league-api/internal/domain/schedule"
	"github.com/ufaleague/league-api/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_Conflict(t *testing.T) {
	mapped := mapError(context.Background(), fmt.Errorf("%w: draft position taken", usecase.ErrConflict))
	if mapped.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409, got %d", mapped.HTTPStatus)
	}
	if mapped.Status != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %q", mapped.Status)
	}
}

func TestMapError_InsufficientSlots(t *testing.T) {
	err := fmt.Errorf("plan season: %w", &schedule.InsufficientSlotsError{Needed: 19, Found: 12})
	mapped := mapError(context.Background(), err)
	if mapped.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", mapped.HTTPStatus)
	}
	if mapped.Status != "FAILED_PRECONDITION" {
		t.Fatalf("expected FAILED_PRECONDITION, got %q", mapped.Status)
	}
}
