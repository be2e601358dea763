package model

// Tag is one image tag with its confidence score.
type Tag struct {
	Name       string  `bson:"name" json:"name"`
	Confidence float64 `bson:"confidence" json:"confidence"`
}

// Rect is a face bounding box in pixels.
type Rect struct {
	Left   int `bson:"left" json:"left"`
	Top    int `bson:"top" json:"top"`
	Width  int `bson:"width" json:"width"`
	Height int `bson:"height" json:"height"`
}

// Face is one detected face. AgeEstimate is 0 when the provider does not
// supply one; such faces never count as children.
type Face struct {
	AgeEstimate int  `bson:"age_estimate" json:"age_estimate"`
	Rect        Rect `bson:"rect" json:"rect"`
}

// ImageAnalysis is the cached result of one image-analysis call. It is
// fetched at most once per conversation.
type ImageAnalysis struct {
	Tags   []Tag  `bson:"tags" json:"tags"`
	Faces  []Face `bson:"faces" json:"faces"`
	Width  int    `bson:"width" json:"width"`
	Height int    `bson:"height" json:"height"`
}

// TagsAbove returns the names of tags with confidence strictly greater than
// the threshold.
func (a *ImageAnalysis) TagsAbove(threshold float64) []string {
	var names []string
	for _, t := range a.Tags {
		if t.Confidence > threshold {
			names = append(names, t.Name)
		}
	}
	return names
}
