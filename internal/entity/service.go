package entity

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// ServiceRecognizer calls an external NER service (e.g. a spaCy sidecar)
// over HTTP. When the service fails or finds nothing, it degrades to the
// injected fallback so callers never see the difference.
type ServiceRecognizer struct {
	url        string
	httpClient *http.Client
	fallback   Recognizer
}

// NewServiceRecognizer creates a model-backed recognizer
func NewServiceRecognizer(url string, timeout time.Duration, fallback Recognizer) *ServiceRecognizer {
	if timeout == 0 {
		timeout = 8 * time.Second
	}
	return &ServiceRecognizer{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		fallback:   fallback,
	}
}

type nerRequest struct {
	Text string `json:"text"`
}

type nerResponse struct {
	Persons       []string `json:"persons"`
	Organizations []string `json:"organizations"`
}

// Recognize posts the text to the NER service and reads typed names back
func (r *ServiceRecognizer) Recognize(ctx context.Context, text string) Entities {
	body, err := json.Marshal(nerRequest{Text: text})
	if err != nil {
		return r.fallback.Recognize(ctx, text)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return r.fallback.Recognize(ctx, text)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return r.fallback.Recognize(ctx, text)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return r.fallback.Recognize(ctx, text)
	}

	var parsed nerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return r.fallback.Recognize(ctx, text)
	}

	result := Entities{
		Persons:       dedupe(parsed.Persons),
		Organizations: dedupe(parsed.Organizations),
	}
	if result.Empty() {
		// The model found nothing; the heuristic still gets a chance,
		// matching how a missing model degrades
		return r.fallback.Recognize(ctx, text)
	}
	return result
}
