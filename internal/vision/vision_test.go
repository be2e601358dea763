package vision_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/snapshot-reflect/reflectbot/internal/model"
	"github.com/snapshot-reflect/reflectbot/internal/vision"
)

func TestComputeFaceStats(t *testing.T) {
	analysis := &model.ImageAnalysis{
		Width:  1000,
		Height: 1000,
		Faces: []model.Face{
			// 400x400 in a 1000x1000 image: 16% of the frame, prominent.
			{AgeEstimate: 30, Rect: model.Rect{Width: 400, Height: 400}},
			// 50x50: background face, not prominent.
			{AgeEstimate: 25, Rect: model.Rect{Width: 50, Height: 50}},
			// Prominent child.
			{AgeEstimate: 6, Rect: model.Rect{Width: 500, Height: 500}},
		},
	}

	stats := vision.ComputeFaceStats(analysis)
	if stats.FaceCount != 3 {
		t.Fatalf("expected 3 faces, got %d", stats.FaceCount)
	}
	if stats.ProminentFaceCount != 2 {
		t.Fatalf("expected 2 prominent faces, got %d", stats.ProminentFaceCount)
	}
	if stats.ChildFaceCount != 1 {
		t.Fatalf("expected 1 child face, got %d", stats.ChildFaceCount)
	}
}

func TestComputeFaceStats_NoDimensions(t *testing.T) {
	analysis := &model.ImageAnalysis{
		Faces: []model.Face{{AgeEstimate: 30, Rect: model.Rect{Width: 400, Height: 400}}},
	}
	stats := vision.ComputeFaceStats(analysis)
	if stats.FaceCount != 1 {
		t.Fatalf("expected 1 face, got %d", stats.FaceCount)
	}
	if stats.ProminentFaceCount != 0 {
		t.Fatalf("prominence requires image dimensions, got %d", stats.ProminentFaceCount)
	}
}

func TestComputeFaceStats_UnknownAgeIsNotChild(t *testing.T) {
	analysis := &model.ImageAnalysis{
		Width:  100,
		Height: 100,
		Faces:  []model.Face{{Rect: model.Rect{Width: 50, Height: 50}}},
	}
	if stats := vision.ComputeFaceStats(analysis); stats.ChildFaceCount != 0 {
		t.Fatalf("age 0 must not count as child, got %d", stats.ChildFaceCount)
	}
}

func TestAzureAnalyzer_AnalyzeURL(t *testing.T) {
	var gotPath, gotKey, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("Ocp-Apim-Subscription-Key")
		gotContentType = r.Header.Get("Content-Type")
		if got := r.URL.Query().Get("visualFeatures"); got != "Tags,Faces" {
			t.Errorf("expected Tags,Faces visual features, got %q", got)
		}
		w.Write([]byte(`{
			"tags": [{"name": "dog", "confidence": 0.94}],
			"faces": [{"age": 8, "faceRectangle": {"left": 10, "top": 20, "width": 200, "height": 220}}],
			"metadata": {"width": 640, "height": 480}
		}`))
	}))
	defer srv.Close()

	a, err := vision.NewAzureAnalyzer(vision.AzureConfig{Endpoint: srv.URL, Key: "secret"})
	if err != nil {
		t.Fatalf("new analyzer: %v", err)
	}

	analysis, err := a.AnalyzeURL(context.Background(), "https://example.com/photo.jpg")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if gotPath != "/vision/v1.0/analyze" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotKey != "secret" {
		t.Fatalf("unexpected subscription key %q", gotKey)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
	if len(analysis.Tags) != 1 || analysis.Tags[0].Name != "dog" || analysis.Tags[0].Confidence != 0.94 {
		t.Fatalf("unexpected tags %+v", analysis.Tags)
	}
	if len(analysis.Faces) != 1 || analysis.Faces[0].AgeEstimate != 8 || analysis.Faces[0].Rect.Width != 200 {
		t.Fatalf("unexpected faces %+v", analysis.Faces)
	}
	if analysis.Width != 640 || analysis.Height != 480 {
		t.Fatalf("unexpected dimensions %dx%d", analysis.Width, analysis.Height)
	}
}

func TestAzureAnalyzer_AnalyzeBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/octet-stream" {
			t.Errorf("expected octet-stream, got %q", got)
		}
		w.Write([]byte(`{"tags": [], "faces": [], "metadata": {"width": 10, "height": 10}}`))
	}))
	defer srv.Close()

	a, err := vision.NewAzureAnalyzer(vision.AzureConfig{Endpoint: srv.URL, Key: "secret"})
	if err != nil {
		t.Fatalf("new analyzer: %v", err)
	}
	if _, err := a.AnalyzeBytes(context.Background(), []byte{0xFF, 0xD8}); err != nil {
		t.Fatalf("analyze bytes: %v", err)
	}
}

func TestAzureAnalyzer_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"code": "Unauthorized", "message": "bad key"}}`))
	}))
	defer srv.Close()

	a, err := vision.NewAzureAnalyzer(vision.AzureConfig{Endpoint: srv.URL, Key: "wrong"})
	if err != nil {
		t.Fatalf("new analyzer: %v", err)
	}
	if _, err := a.AnalyzeURL(context.Background(), "https://example.com/photo.jpg"); err == nil {
		t.Fatal("expected api error")
	}
}
