package mlclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"catastro-insights-go/internal/types"
)

func sampleInput() types.PropertyInput {
	return types.PropertyInput{
		Department:      "ANTIOQUIA",
		Municipality:    "MEDELLIN",
		ZoneType:        "URBANO",
		FilingYear:      2024,
		ConstantValue:   250000000,
		LegalNatureCode: 125,
	}
}

func TestFullPrediction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/predictions/full" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		var in types.PropertyInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode input: %v", err)
		}
		if in.Municipality != "MEDELLIN" {
			t.Errorf("municipality: got %q", in.Municipality)
		}
		json.NewEncoder(w).Encode(types.FullPrediction{
			Classification: types.PriceClassification{
				PriceRange:    "ALTO",
				Probabilities: map[string]float64{"ALTO": 0.9},
			},
			AnomalyDetection: types.AnomalyDetection{
				AnomalyDetected: true,
				AnomalyScore:    -0.12,
				RawPrediction:   -1,
			},
			Input: in,
		})
	}))
	defer srv.Close()

	got, err := New(srv.URL).FullPrediction(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("FullPrediction: %v", err)
	}
	if got.Classification.PriceRange != "ALTO" {
		t.Errorf("PriceRange: got %q", got.Classification.PriceRange)
	}
	if !got.AnomalyDetection.AnomalyDetected || got.AnomalyDetection.AnomalyScore != -0.12 {
		t.Errorf("AnomalyDetection: %+v", got.AnomalyDetection)
	}
}

func TestRetryOnServerError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "transient", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(types.AnomalyDetection{IsNormal: true, RawPrediction: 1})
	}))
	defer srv.Close()

	got, err := New(srv.URL).DetectAnomaly(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("DetectAnomaly: %v", err)
	}
	if !got.IsNormal {
		t.Errorf("IsNormal: got %+v", got)
	}
	if atomic.LoadInt32(&calls) < 2 {
		t.Errorf("expected a retry after 500, got %d calls", calls)
	}
}

func TestNoRetryOnClientError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "bad input", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	if _, err := New(srv.URL).ClassifyPrice(context.Background(), sampleInput()); err == nil {
		t.Fatal("expected error for 422 response")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("4xx must not retry, got %d calls", calls)
	}
}

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/chat" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		var req types.ChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(types.ChatResponse{Response: "eco: " + req.Message})
	}))
	defer srv.Close()

	got, err := New(srv.URL).Chat(context.Background(), "hola")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if got.Response != "eco: hola" {
		t.Errorf("Response: got %q", got.Response)
	}
}

func TestMissingBaseURL(t *testing.T) {
	if _, err := New("").Chat(context.Background(), "hola"); err == nil {
		t.Error("expected error when base URL is unset")
	}
}

func TestMockMode(t *testing.T) {
	t.Setenv("USE_MOCK_ML", "true")
	got, err := New("").FullPrediction(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("mock FullPrediction: %v", err)
	}
	if got.Classification.PriceRange == "" || !got.AnomalyDetection.AnomalyDetected {
		t.Errorf("mock payload: %+v", got)
	}
	if got.Input.Municipality != "MEDELLIN" {
		t.Errorf("mock must echo input: %+v", got.Input)
	}
}
