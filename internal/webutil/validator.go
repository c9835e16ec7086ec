package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"headword":       "見出し語",
	"meaning":        "意味",
	"part_of_speech": "品詞",
	"frequency":      "出題頻度",
	"text":           "例文",
	"translation":    "訳文",
	"year":           "年度",
	"section":        "大問",
	"label":          "ラベル",
	"is_correct":     "回答の正誤",
	"quality":        "想起の質",
}

func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

// isNumeric は min/max が文字数ではなく値の範囲を意味するか判定します。
func isNumeric(fe validator.FieldError) bool {
	switch fe.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// --- ここからが日本語化の処理 ---

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe))
			return t
		})
	}
	registerTranslation("required", "{0}は必須項目です。")

	// min / max は文字列なら文字数、数値なら値の範囲として表示する
	registerRange := func(tag, lengthMsg, valueMsg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			if err := ut.Add(tag+"-length", lengthMsg, true); err != nil {
				return err
			}
			return ut.Add(tag+"-value", valueMsg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			key := tag + "-length"
			if isNumeric(fe) {
				key = tag + "-value"
			}
			t, _ := ut.T(key, translatedField(fe), fe.Param())
			return t
		})
	}
	registerRange("min", "{0}は{1}文字以上で入力してください。", "{0}は{1}以上で指定してください。")
	registerRange("max", "{0}は{1}文字以下で入力してください。", "{0}は{1}以下で指定してください。")
}
