// Package vision provides image analysis: tags with confidence scores and
// face records with age estimates.
package vision

import (
	"context"

	"github.com/snapshot-reflect/reflectbot/internal/model"
)

// ProminenceThreshold is the fraction of image area a face must cover to
// count as prominent.
const ProminenceThreshold = 0.1

// ChildAgeCutoff is the estimated age below which a face counts as a child.
const ChildAgeCutoff = 10

// Analyzer turns an image into tags and face records. Publicly reachable
// images go by URL; images behind authenticated retrieval are handed over
// as raw bytes by whoever holds the session.
type Analyzer interface {
	AnalyzeURL(ctx context.Context, url string) (*model.ImageAnalysis, error)
	AnalyzeBytes(ctx context.Context, data []byte) (*model.ImageAnalysis, error)
}

// ComputeFaceStats derives the per-conversation face summary from a raw
// analysis. Faces without an age estimate never count as children.
func ComputeFaceStats(a *model.ImageAnalysis) model.FaceStats {
	stats := model.FaceStats{FaceCount: len(a.Faces)}
	if len(a.Faces) == 0 {
		return stats
	}

	imageArea := float64(a.Width * a.Height)
	for _, f := range a.Faces {
		if imageArea > 0 {
			faceArea := float64(f.Rect.Width * f.Rect.Height)
			if faceArea/imageArea > ProminenceThreshold {
				stats.ProminentFaceCount++
			}
		}
		if f.AgeEstimate > 0 && f.AgeEstimate < ChildAgeCutoff {
			stats.ChildFaceCount++
		}
	}
	return stats
}
