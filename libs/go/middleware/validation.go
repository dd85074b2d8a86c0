package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidationRule defines a single validation rule
type ValidationRule struct {
	Field         string                  // Field name to validate
	Required      bool                    // Whether the field is required
	Type          string                  // string, number, integer, boolean, uuid, email, url, time, array, object
	MinLength     int                     // Minimum length for strings
	MaxLength     int                     // Maximum length for strings
	Pattern       *regexp.Regexp          // Pattern strings must match
	Min           *float64                // Minimum value for numbers
	Max           *float64                // Maximum value for numbers
	AllowedValues []string                // List of allowed values
	Sanitize      bool                    // Trim and strip control characters
	Custom        func(interface{}) error // Custom validation function
}

// ValidationConfig holds validation rules for an endpoint
type ValidationConfig struct {
	Rules              []ValidationRule
	MaxBodySize        int64 // Maximum request body size in bytes
	AllowUnknownFields bool  // Whether to allow fields not in rules
}

var (
	EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	URLRegex   = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
	ClockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidationError is a single field failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the 400 response body for failed validation
type ValidationErrors struct {
	Error         string            `json:"error"`
	Errors        []ValidationError `json:"errors"`
	CorrelationID string            `json:"correlation_id,omitempty"`
}

func abortValidation(c *gin.Context, errs []ValidationError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrors{
		Error:         "Validation failed",
		Errors:        errs,
		CorrelationID: GetCorrelationID(c),
	})
}

// ValidateInput checks the JSON body against config before the handler
// binds it. The (possibly sanitized) body is put back on the request.
func ValidateInput(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.MaxBodySize > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
					"error":          fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize),
					"correlation_id": GetCorrelationID(c),
				})
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxBodySize)
		}

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":          "Invalid JSON in request body",
				"correlation_id": GetCorrelationID(c),
			})
			return
		}
		if body == nil {
			body = map[string]interface{}{}
		}

		if errs := validateFields(body, config.Rules, config.AllowUnknownFields); len(errs) > 0 {
			logger.Log.Debug("request body validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Any("errors", errs),
				zap.String("correlation_id", GetCorrelationID(c)))
			abortValidation(c, errs)
			return
		}

		bodyBytes, err := json.Marshal(body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request body"})
			return
		}
		c.Set("validatedBody", body)
		c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		c.Request.ContentLength = int64(len(bodyBytes))

		c.Next()
	}
}

// ValidateQueryParams checks query parameters against config. Values for
// number and integer rules are parsed before validation.
func ValidateQueryParams(config ValidationConfig) gin.HandlerFunc {
	numeric := make(map[string]bool)
	for _, rule := range config.Rules {
		numeric[rule.Field] = rule.Type == "number" || rule.Type == "integer"
	}

	return func(c *gin.Context) {
		params := make(map[string]interface{})
		for key, values := range c.Request.URL.Query() {
			if len(values) == 0 {
				continue
			}
			params[key] = values[0]
			if numeric[key] {
				if num, err := strconv.ParseFloat(values[0], 64); err == nil {
					params[key] = num
				}
			}
		}

		if errs := validateFields(params, config.Rules, config.AllowUnknownFields); len(errs) > 0 {
			logger.Log.Debug("query validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Any("errors", errs),
				zap.String("correlation_id", GetCorrelationID(c)))
			abortValidation(c, errs)
			return
		}

		c.Set("validatedQuery", params)
		c.Next()
	}
}

func validateFields(data map[string]interface{}, rules []ValidationRule, allowUnknown bool) []ValidationError {
	var errs []ValidationError
	known := make(map[string]bool, len(rules))

	for _, rule := range rules {
		known[rule.Field] = true
		value, exists := data[rule.Field]

		if rule.Required && (!exists || value == nil || value == "") {
			errs = append(errs, ValidationError{Field: rule.Field, Message: fmt.Sprintf("%s is required", rule.Field)})
			continue
		}
		if !exists || value == nil {
			continue
		}

		if err := validateType(value, rule); err != nil {
			errs = append(errs, ValidationError{Field: rule.Field, Message: err.Error()})
			continue
		}
		if rule.Sanitize {
			if s, ok := value.(string); ok {
				data[rule.Field] = sanitizeString(s)
			}
		}
		if rule.Custom != nil {
			if err := rule.Custom(value); err != nil {
				errs = append(errs, ValidationError{Field: rule.Field, Message: err.Error()})
			}
		}
	}

	if !allowUnknown {
		for field := range data {
			if !known[field] {
				errs = append(errs, ValidationError{Field: field, Message: "unknown field"})
			}
		}
	}

	return errs
}

func validateType(value interface{}, rule ValidationRule) error {
	switch rule.Type {
	case "string":
		return validateString(value, rule)
	case "number", "integer":
		return validateNumber(value, rule)
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("must be a boolean")
		}
	case "uuid":
		return validatePattern(value, func(s string) bool { _, err := uuid.Parse(s); return err == nil }, "must be a valid UUID")
	case "email":
		return validatePattern(value, EmailRegex.MatchString, "must be a valid email address")
	case "url":
		return validatePattern(value, URLRegex.MatchString, "must be a valid URL")
	case "time":
		return validatePattern(value, func(s string) bool { _, err := time.Parse(time.RFC3339, s); return err == nil }, "must be an RFC 3339 timestamp")
	case "array":
		if _, ok := value.([]interface{}); !ok {
			return fmt.Errorf("must be an array")
		}
	case "object":
		if _, ok := value.(map[string]interface{}); !ok {
			return fmt.Errorf("must be an object")
		}
	}
	return nil
}

func validateString(value interface{}, rule ValidationRule) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	length := utf8.RuneCountInString(strings.TrimSpace(str))
	if rule.MinLength > 0 && length < rule.MinLength {
		return fmt.Errorf("must be at least %d characters long", rule.MinLength)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fmt.Errorf("must be at most %d characters long", rule.MaxLength)
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(str) {
		return fmt.Errorf("invalid format")
	}
	if len(rule.AllowedValues) > 0 {
		for _, v := range rule.AllowedValues {
			if str == v {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %s", strings.Join(rule.AllowedValues, ", "))
	}
	return nil
}

func validateNumber(value interface{}, rule ValidationRule) error {
	num, ok := value.(float64)
	if !ok {
		return fmt.Errorf("must be a number")
	}
	if rule.Type == "integer" && num != float64(int64(num)) {
		return fmt.Errorf("must be a whole number")
	}
	if rule.Min != nil && num < *rule.Min {
		return fmt.Errorf("must be at least %v", *rule.Min)
	}
	if rule.Max != nil && num > *rule.Max {
		return fmt.Errorf("must be at most %v", *rule.Max)
	}
	return nil
}

func validatePattern(value interface{}, match func(string) bool, message string) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if !match(str) {
		return fmt.Errorf("%s", message)
	}
	return nil
}

// sanitizeString trims whitespace and drops control characters other than newline and tab
func sanitizeString(input string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, input))
}

func float64Ptr(f float64) *float64 {
	return &f
}
