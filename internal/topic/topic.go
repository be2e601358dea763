// Package topic resolves an image's subject from noisy tag data.
package topic

import (
	"math/rand"

	"github.com/snapshot-reflect/reflectbot/internal/model"
)

// ConfidenceThreshold is the minimum tag confidence considered at all.
const ConfidenceThreshold = 0.6

// Topic is a resolved subject classification.
type Topic string

// Default is the topic when no tag matches any tier.
const Default Topic = "default"

// Tag tiers, highest priority first. A tier is only consulted when every
// higher tier is empty.
var (
	highPriority   = []string{"dog", "cat", "people", "person", "food"}
	mediumPriority = []string{"mountain", "road", "city", "street", "animal", "book"}
	lowPriority    = []string{"outdoor", "indoor", "box", "holding", "document", "text", "envelope"}
)

// symbols maps a topic to its grammar expansion point. Unknown topics fall
// back to the wildcard.
var symbols = map[Topic]string{
	"dog":      "dog",
	"cat":      "cat",
	"animal":   "animal",
	"person":   "single_person",
	"people":   "people_group",
	"plant":    "plant",
	"outdoor":  "outdoor",
	"mountain": "mountain",
	"road":     "city",
	"city":     "city",
	"street":   "city",
	"indoor":   "origin",
	"food":     "food",
	"box":      "box",
	"holding":  "holding",
	"book":     "book",
	"document": "officey",
	"envelope": "officey",
	"text":     "officey",
	"child":    "child",
	Default:    "origin",
}

// Symbol returns the grammar symbol replies for this topic expand from.
func (t Topic) Symbol() string {
	if s, ok := symbols[t]; ok {
		return s
	}
	return "origin"
}

// Classify resolves a topic from tags and face statistics.
//
// Tags below the confidence threshold are dropped, the rest are partitioned
// into the fixed priority tiers, and the topic is drawn uniformly from the
// highest non-empty tier. A prominent face injects "people" into the high
// tier whether or not it was tagged. On the conversation's first turn only,
// child faces force "child" and exactly one prominent face forces "person".
func Classify(tags []model.Tag, stats model.FaceStats, turnIndex int, rng *rand.Rand) Topic {
	var names []string
	for _, t := range tags {
		if t.Confidence > ConfidenceThreshold {
			names = append(names, t.Name)
		}
	}

	high := present(highPriority, names)
	medium := present(mediumPriority, names)
	low := present(lowPriority, names)

	// People are important: someone in the photo counts even untagged.
	if stats.ProminentFaceCount > 0 {
		high = append(high, "people")
	}

	if turnIndex == 0 {
		if stats.ChildFaceCount > 0 {
			high = []string{"child"}
		} else if stats.ProminentFaceCount == 1 {
			high = []string{"person"}
		}
	}

	switch {
	case len(high) > 0:
		return Topic(high[rng.Intn(len(high))])
	case len(medium) > 0:
		return Topic(medium[rng.Intn(len(medium))])
	case len(low) > 0:
		return Topic(low[rng.Intn(len(low))])
	default:
		return Default
	}
}

func present(tier, tags []string) []string {
	var found []string
	for _, want := range tier {
		for _, tag := range tags {
			if tag == want {
				found = append(found, want)
				break
			}
		}
	}
	return found
}
