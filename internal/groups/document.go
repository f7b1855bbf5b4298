// Package groups parses package-group definition documents.
//
// A document is YAML whose top level is either a sequence of group
// records, or a mapping whose "groups" key holds such a sequence. The
// records themselves are opaque to this package; the external selection
// model interprets them.
package groups

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is one opaque package-group entry. Ownership transfers to the
// external model when the record sequence is published.
type Record map[string]any

// ErrNoGroupList reports a document that parsed cleanly but whose top
// level is neither a sequence nor a mapping with a "groups" sequence.
// The caller logs a warning and leaves the load status untouched.
var ErrNoGroupList = errors.New("document does not contain a group list")

// ParseError reports a structurally malformed document. It keeps the raw
// payload so the caller can log it alongside the parser's context.
type ParseError struct {
	Err     error
	Payload []byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed groups document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseDocument extracts the group records from a raw document payload.
//
// It returns ErrNoGroupList for a well-formed document of the wrong
// shape (including an empty or null document), and a *ParseError when
// the payload is not valid YAML. An empty sequence yields zero records
// and a nil error.
func ParseDocument(data []byte) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err, Payload: data}
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		// Empty or null document: well-formed, but not a group list.
		return nil, ErrNoGroupList
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		return decodeRecords(root, data)
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value != "groups" {
				continue
			}
			value := root.Content[i+1]
			if value.Kind != yaml.SequenceNode {
				return nil, ErrNoGroupList
			}
			return decodeRecords(value, data)
		}
		return nil, ErrNoGroupList
	default:
		return nil, ErrNoGroupList
	}
}

// decodeRecords decodes a sequence node into group records.
func decodeRecords(seq *yaml.Node, payload []byte) ([]Record, error) {
	records := make([]Record, 0, len(seq.Content))
	for _, item := range seq.Content {
		var rec Record
		if err := item.Decode(&rec); err != nil {
			return nil, &ParseError{Err: err, Payload: payload}
		}
		records = append(records, rec)
	}
	return records, nil
}
