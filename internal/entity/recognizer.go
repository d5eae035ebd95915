// Package entity provides named-entity recognition used to augment keyword
// skill extraction. The extractor only consumes the interface; implementations
// may be model-backed or fixtures in tests.
package entity

import "context"

// Entity labels relevant to skill extraction.
const (
	LabelOrg     = "ORG"
	LabelProduct = "PRODUCT"
)

// Entity is one named entity found in free text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer extracts named entities from text.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}
