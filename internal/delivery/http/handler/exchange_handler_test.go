package handler

import (
	"encoding/json"
	"testing"
)

func TestRespondExchangeRequest_StatusKey(t *testing.T) {
	var req respondExchangeRequest
	if err := json.Unmarshal([]byte(`{"status":"accepted"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.decision() != "accepted" {
		t.Fatalf("expected %q, got %q", "accepted", req.decision())
	}
}

func TestRespondExchangeRequest_DecisionAlias(t *testing.T) {
	var req respondExchangeRequest
	if err := json.Unmarshal([]byte(`{"decision":"rejected"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.decision() != "rejected" {
		t.Fatalf("expected %q, got %q", "rejected", req.decision())
	}
}

func TestRespondExchangeRequest_StatusWinsOverAlias(t *testing.T) {
	var req respondExchangeRequest
	if err := json.Unmarshal([]byte(`{"status":"accepted","decision":"rejected"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.decision() != "accepted" {
		t.Fatalf("expected the status key to win, got %q", req.decision())
	}
}
