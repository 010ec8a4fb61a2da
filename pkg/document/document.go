// Package document loads request documents: YAML (or JSON) files that name a CodeDeploy
// operation and give its input using the service's wire member names.
//
// Example:
//
//	version: "1.0"
//	operation: CreateDeploymentGroup
//	input:
//	  applicationName: my-app
//	  deploymentGroupName: prod
//	  serviceRoleArn: arn:aws:iam::123456789012:role/CodeDeploy
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jvreagan/codedeploy-model/pkg/logging"
	"github.com/jvreagan/codedeploy-model/pkg/types"
)

// CurrentVersion is the document schema version written by Encode.
const CurrentVersion = "1.0"

// ErrInvalidDocument is wrapped by every error about the document envelope.
var ErrInvalidDocument = errors.New("invalid document")

// Document is a single operation request.
type Document struct {
	// Version of the document schema (currently "1.0", may be omitted)
	Version string `yaml:"version,omitempty"`

	// Operation is the CodeDeploy action name, e.g. "CreateDeployment"
	Operation string `yaml:"operation"`

	// Input holds the request members as written
	Input yaml.Node `yaml:"input,omitempty"`

	request types.Request
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logging.DebugContext("document loaded", map[string]any{
		"path":      path,
		"operation": doc.Operation,
	})
	return doc, nil
}

// Parse decodes a document and its input. Input members must be known to the operation's
// request type.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	op, _ := types.LookupOperation(doc.Operation)
	req := op.NewRequest()
	if err := decodeInput(&doc.Input, req); err != nil {
		return nil, fmt.Errorf("failed to decode %s input: %w", doc.Operation, err)
	}
	doc.request = req

	return &doc, nil
}

// decodeInput decodes node into req, rejecting members the request does not declare.
func decodeInput(node *yaml.Node, req types.Request) error {
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: input must be a mapping", ErrInvalidDocument)
	}

	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(req)
}

// Validate checks the document envelope: a known operation and a supported version.
func (d *Document) Validate() error {
	if d.Version != "" && d.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %q", ErrInvalidDocument, d.Version)
	}
	if d.Operation == "" {
		return fmt.Errorf("%w: operation is required", ErrInvalidDocument)
	}
	if _, err := types.LookupOperation(d.Operation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}

// Request returns the decoded input, or nil for a document that was not parsed.
func (d *Document) Request() types.Request {
	return d.request
}

// ValidateRequest runs local validation of the decoded input.
func (d *Document) ValidateRequest() error {
	if d.request == nil {
		return fmt.Errorf("%w: document has no decoded request", ErrInvalidDocument)
	}
	return d.request.Validate()
}

// Encode writes req as a document for the named operation.
func Encode(operation string, req types.Request) ([]byte, error) {
	if _, err := types.LookupOperation(operation); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	var input yaml.Node
	if err := input.Encode(req); err != nil {
		return nil, fmt.Errorf("failed to encode %s input: %w", operation, err)
	}

	doc := Document{Version: CurrentVersion, Operation: operation, Input: input}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}
