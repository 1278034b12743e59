package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasttemplate"

	apperrors "github.com/spamlists/spamlists/src/internal/errors"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "dir":
		return fmt.Sprintf("directory does not exist: %v", e.Value())
	case "log_format":
		return "must be a valid log format containing %(message)s"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // Configuration key (e.g., "source_path")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("log_format", validateLogFormat); err != nil {
		panic(err)
	}

	// Report fields by their configuration key
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateConfig validates the configuration. All problems are reported at
// once as ValidationErrors, wrapped in a VALIDATION_ERROR.
// Relative paths are checked against the configuration file directory.
func (c *Config) ValidateConfig() error {
	// An empty source path must reach the required check unresolved.
	resolved := *c
	if c.SourcePath != "" {
		resolved.SourcePath = c.GetAbsSourcePath()
	}

	var validationErrors ValidationErrors

	if err := validate.Struct(&resolved); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err)...)
	}

	for _, list := range []string{"whitelist", "blacklist"} {
		rel, _ := c.RelativePath(list)
		if rel != "" && strings.Trim(rel, "/") == "" {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: list + "_relative_path",
				Message:   "must name a file inside the user directory",
			})
		}
	}

	if len(validationErrors) > 0 {
		return apperrors.NewValidationError("invalid configuration", validationErrors)
	}
	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: e.Field(),
				Message:   getValidationMessage(e),
			})
		}
		return validationErrors
	}

	return ValidationErrors{{FieldPath: "", Message: err.Error()}}
}

// Custom validator: log format must parse and carry the message
func validateLogFormat(fl validator.FieldLevel) bool {
	format := fl.Field().String()
	if !strings.Contains(format, "%(message)s") {
		return false
	}
	_, err := fasttemplate.NewTemplate(format, "%(", ")s")
	return err == nil
}
