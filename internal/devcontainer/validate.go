package devcontainer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/shinji-kodama/devenv/internal/model"
)

// ValidationError represents a specific conformance failure in a
// generated devcontainer.json file.
type ValidationError struct {
	// Field is the JSON field path that failed validation.
	Field string

	// Message describes what's wrong with the field value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("devcontainer.json validation error: %s: %s", e.Field, e.Message)
}

// generatedDoc captures the subset of a generated file's fields that
// the conformance checks inspect. Fields use loose types because the
// schema allows multiple value types (forwardPorts mixes integers and
// strings) and because hand-edited files may contain anything.
type generatedDoc struct {
	Name           string                     `json:"name"`
	Image          string                     `json:"image"`
	ForwardPorts   []any                      `json:"forwardPorts"`
	Customizations map[string]json.RawMessage `json:"customizations"`
}

// ValidateGenerated checks a generated (possibly hand-annotated)
// devcontainer.json for conformance with the output schema. JSONC
// comments and trailing commas are tolerated — the devcontainer.json
// format officially allows them, and users do edit generated files.
//
// Returns a list of validation errors; an empty list means the file
// conforms.
func ValidateGenerated(data []byte) []ValidationError {
	// Strip comments before parsing with the standard library, same as
	// any devcontainer.json consumer has to.
	clean := jsonc.ToJSON(data)

	var doc generatedDoc
	if err := json.Unmarshal(clean, &doc); err != nil {
		return []ValidationError{{
			Field:   "(root)",
			Message: fmt.Sprintf("invalid JSON: %v", err),
		}}
	}

	var errs []ValidationError

	if doc.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "name is required for container identification",
		})
	}
	if doc.Name == model.PlaceholderName {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("name still equals the %q placeholder", model.PlaceholderName),
		})
	}
	if doc.Image == "" {
		errs = append(errs, ValidationError{
			Field:   "image",
			Message: "image is required",
		})
	}

	// Both IDE namespaces must be present even when empty — consumers
	// rely on the keys existing.
	for _, ns := range []string{"vscode", "jetbrains"} {
		if _, ok := doc.Customizations[ns]; !ok {
			errs = append(errs, ValidationError{
				Field:   "customizations." + ns,
				Message: "namespace must be present (may be empty)",
			})
		}
	}

	for i, fp := range doc.ForwardPorts {
		if err := validateForwardPort(fp); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("forwardPorts[%d]", i),
				Message: err.Error(),
			})
		}
	}

	return errs
}

// validateForwardPort checks one forwardPorts entry: either a number in
// range, or a "host:container" string with both sides in range.
func validateForwardPort(entry any) error {
	switch v := entry.(type) {
	case float64:
		// JSON numbers decode as float64 through any.
		return portInRange(int(v))
	case string:
		host, container, found := strings.Cut(v, ":")
		if !found {
			return fmt.Errorf("string entry %q must use \"host:container\" form", v)
		}
		h, err := strconv.Atoi(host)
		if err != nil {
			return fmt.Errorf("invalid host port in %q", v)
		}
		c, err := strconv.Atoi(container)
		if err != nil {
			return fmt.Errorf("invalid container port in %q", v)
		}
		if err := portInRange(h); err != nil {
			return err
		}
		return portInRange(c)
	default:
		return fmt.Errorf("entry must be a number or a \"host:container\" string")
	}
}

// portInRange checks the valid TCP port range.
func portInRange(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", port)
	}
	return nil
}
