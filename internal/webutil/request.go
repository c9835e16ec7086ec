package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go_vocab_drill/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// maxBodyBytes はリクエストボディの上限です。
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドは拒否します。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディが空です。", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "",
			fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}
	return nil
}

// ValidateStruct は validator タグを検証し、最初のエラーを日本語化した AppError にします。
func ValidateStruct(v interface{}) error {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	firstErr := validationErrors[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		firstErr.Translate(Trans),
		firstErr.Field(),
		model.ErrInvalidInput,
	)
}

// DecodeAndValidate は DecodeJSONBody と ValidateStruct をまとめて行います。
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(r, dst); err != nil {
		return err
	}
	return ValidateStruct(dst)
}

// ParseUUIDParam は URL パラメータを UUID として解釈します。
func ParseUUIDParam(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", field+"の形式が正しくありません。", field, model.ErrInvalidInput)
	}
	return id, nil
}

// ParseIntQuery は整数のクエリパラメータを読みます。未指定なら def を返します。
func ParseIntQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewAppError("INVALID_QUERY_PARAM", key+"は整数で指定してください。", key, model.ErrInvalidInput)
	}
	return n, nil
}
