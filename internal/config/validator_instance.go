package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	gridcrafterrors "github.com/alexisbeaulieu97/gridcraft/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("log_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			if strings.TrimSpace(path) == "" || strings.Contains(path, "\x00") {
				return false
			}
			return filepath.Base(path) != string(filepath.Separator) && !strings.HasSuffix(path, string(filepath.Separator))
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a settings document.
func Validate(s Settings) error {
	return convertValidationError(validatorInstance().Struct(s))
}

// convertValidationError normalizes validator errors into gridcraft validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return gridcrafterrors.NewValidationError(field, msg, err)
	}

	return gridcrafterrors.NewValidationError("settings", err.Error(), err)
}

var fieldNames = map[string]string{
	"LogLevel":   "log_level",
	"LogFile":    "log_file",
	"Limits":     "limits",
	"MaxColumns": "max_columns",
	"MaxItems":   "max_items",
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		if name, ok := fieldNames[part]; ok {
			parts[i] = name
			continue
		}
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
