// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-vault-bridge/models"
)

// RequestValidator checks the `validate` struct tags of the request models.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateKeyDerivationParams, models.StoreKeyDerivationParamsRequest{})

	return &RequestValidator{validate: v}
}

// Validate returns an error wrapping ErrInvalidRequest that lists every
// failed field. Non-struct values return ErrUnsupportedType.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	failed := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		failed = append(failed, fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(failed, "; "))
}

// validateKeyDerivationParams rejects params that would not let the vault
// key be derived later.
func validateKeyDerivationParams(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.StoreKeyDerivationParamsRequest)
	if req.KeyDerivationParams == "" {
		return
	}

	var params models.KeyDerivationParams
	if err := json.Unmarshal([]byte(req.KeyDerivationParams), &params); err != nil {
		return
	}
	if err := sl.Validator().Struct(params); err != nil || params.EncryptionType != models.EncryptionTypeArgon2id {
		sl.ReportError(req.KeyDerivationParams, "keyDerivationParams", "KeyDerivationParams", "kdfparams", "")
	}
}
