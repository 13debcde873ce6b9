// Package mlclient talks to the ML backend that hosts the price classifier,
// the anomaly detector and the assistant chat. The aggregation pipelines
// never call it; only the live-detection and chat handlers do.
package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"catastro-insights-go/internal/logger"
	"catastro-insights-go/internal/types"
)

var httpClient = &http.Client{Timeout: 12 * time.Second}

type Client struct {
	baseURL string
}

// New builds a client for the given backend base URL (e.g.
// http://ml-backend:8000). Mock mode via USE_MOCK_ML=true needs no URL.
func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Client) mocked() bool {
	return os.Getenv("USE_MOCK_ML") == "true"
}

// FullPrediction runs price classification and anomaly detection in one call.
func (c *Client) FullPrediction(ctx context.Context, in types.PropertyInput) (types.FullPrediction, error) {
	if c.mocked() {
		return types.FullPrediction{
			Classification:   mockClassification(),
			AnomalyDetection: mockDetection(),
			Input:            in,
		}, nil
	}
	var out types.FullPrediction
	err := c.postJSON(ctx, "/api/v1/predictions/full", in, &out)
	return out, err
}

// ClassifyPrice returns the predicted price range for a property.
func (c *Client) ClassifyPrice(ctx context.Context, in types.PropertyInput) (types.PriceClassification, error) {
	if c.mocked() {
		return mockClassification(), nil
	}
	var out types.PriceClassification
	err := c.postJSON(ctx, "/api/v1/predictions/classify-price", in, &out)
	return out, err
}

// DetectAnomaly scores a single property against the anomaly detector.
func (c *Client) DetectAnomaly(ctx context.Context, in types.PropertyInput) (types.AnomalyDetection, error) {
	if c.mocked() {
		return mockDetection(), nil
	}
	var out types.AnomalyDetection
	err := c.postJSON(ctx, "/api/v1/predictions/detect-anomaly", in, &out)
	return out, err
}

// Chat forwards a user message to the backend assistant.
func (c *Client) Chat(ctx context.Context, message string) (types.ChatResponse, error) {
	if c.mocked() {
		return types.ChatResponse{Response: "RESPUESTA MOCK: el registro consultado no presenta patrones anómalos."}, nil
	}
	var out types.ChatResponse
	err := c.postJSON(ctx, "/api/v1/chat", types.ChatRequest{Message: message}, &out)
	return out, err
}

// postJSON executes a JSON POST with exponential backoff, rebuilding the
// request per attempt. Transport failures and 5xx retry; 4xx do not.
func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	if c.baseURL == "" {
		return errors.New("ML_BACKEND_URL not set")
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	log := logger.Component("mlclient").WithField("path", path)
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 12 * time.Second
	var lastErr error
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			lastErr = err
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("backend error: %s", string(body))
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("backend rejected request: %s", string(body))
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(body, out); err != nil {
			lastErr = fmt.Errorf("json decode error: %v body=%s", err, string(body))
			return lastErr
		}
		return nil
	}
	if err := backoff.Retry(op, bo); err != nil {
		log.WithError(lastErr).Warn("ml backend call failed")
		return lastErr
	}
	return nil
}

func mockClassification() types.PriceClassification {
	return types.PriceClassification{
		PriceRange: "MEDIO",
		Probabilities: map[string]float64{
			"ALTO": 0.22, "BAJO": 0.08, "MEDIO": 0.65, "LUJO": 0.05,
		},
	}
}

func mockDetection() types.AnomalyDetection {
	return types.AnomalyDetection{
		AnomalyDetected: true,
		IsNormal:        false,
		AnomalyScore:    -0.08,
		RawPrediction:   -1,
	}
}
