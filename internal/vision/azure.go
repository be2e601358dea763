package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/snapshot-reflect/reflectbot/internal/model"
)

const (
	defaultTimeout = 30 * time.Second
	analyzePath    = "/vision/v1.0/analyze"
)

// AzureConfig configures the Azure Computer Vision analyzer.
type AzureConfig struct {
	// Endpoint is the regional API base, e.g.
	// https://westcentralus.api.cognitive.microsoft.com
	Endpoint string

	// Key is the subscription key.
	Key string

	// Timeout is the HTTP request timeout. Defaults to 30s.
	Timeout time.Duration
}

// AzureAnalyzer implements Analyzer against the Azure Computer Vision
// analyze endpoint with Tags and Faces visual features.
type AzureAnalyzer struct {
	cfg    AzureConfig
	client *http.Client
}

// NewAzureAnalyzer returns an Analyzer backed by Azure Computer Vision.
// The returned analyzer is safe for concurrent use.
func NewAzureAnalyzer(cfg AzureConfig) (*AzureAnalyzer, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("vision: endpoint is required")
	}
	if cfg.Key == "" {
		return nil, fmt.Errorf("vision: subscription key is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &AzureAnalyzer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// --- minimal Azure wire types ---

type azureURLRequest struct {
	URL string `json:"url"`
}

type azureResponse struct {
	Tags []struct {
		Name       string  `json:"name"`
		Confidence float64 `json:"confidence"`
	} `json:"tags"`
	Faces []struct {
		Age           int `json:"age"`
		FaceRectangle struct {
			Left   int `json:"left"`
			Top    int `json:"top"`
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"faceRectangle"`
	} `json:"faces"`
	Metadata struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"metadata"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// AnalyzeURL analyzes a publicly reachable image by URL.
func (a *AzureAnalyzer) AnalyzeURL(ctx context.Context, imageURL string) (*model.ImageAnalysis, error) {
	body, err := json.Marshal(azureURLRequest{URL: imageURL})
	if err != nil {
		return nil, fmt.Errorf("vision: marshal request: %w", err)
	}
	return a.analyze(ctx, bytes.NewReader(body), "application/json")
}

// AnalyzeBytes analyzes raw image bytes, for sources the service cannot
// fetch itself.
func (a *AzureAnalyzer) AnalyzeBytes(ctx context.Context, data []byte) (*model.ImageAnalysis, error) {
	return a.analyze(ctx, bytes.NewReader(data), "application/octet-stream")
}

func (a *AzureAnalyzer) analyze(ctx context.Context, body io.Reader, contentType string) (*model.ImageAnalysis, error) {
	params := url.Values{}
	params.Set("visualFeatures", "Tags,Faces")
	params.Set("language", "en")

	endpoint := a.cfg.Endpoint + analyzePath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("vision: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Ocp-Apim-Subscription-Key", a.cfg.Key)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision: analyze request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("vision: read response: %w", err)
	}

	var parsed azureResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("vision: decode response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("vision: api error %s: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision: unexpected status %d", resp.StatusCode)
	}

	analysis := &model.ImageAnalysis{
		Width:  parsed.Metadata.Width,
		Height: parsed.Metadata.Height,
	}
	for _, t := range parsed.Tags {
		analysis.Tags = append(analysis.Tags, model.Tag{Name: t.Name, Confidence: t.Confidence})
	}
	for _, f := range parsed.Faces {
		analysis.Faces = append(analysis.Faces, model.Face{
			AgeEstimate: f.Age,
			Rect: model.Rect{
				Left:   f.FaceRectangle.Left,
				Top:    f.FaceRectangle.Top,
				Width:  f.FaceRectangle.Width,
				Height: f.FaceRectangle.Height,
			},
		})
	}
	return analysis, nil
}
