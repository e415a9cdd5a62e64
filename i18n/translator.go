package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "none_required":
			return "null である必要があります"
		case "bool_parsing":
			return "真偽値として解釈できません"
		case "int_parsing":
			return "整数として解釈できません"
		case "float_parsing":
			return "数値として解釈できません"
		case "string_type":
			return "文字列である必要があります"
		case "list_type":
			return "リストである必要があります"
		case "dict_type":
			return "オブジェクトである必要があります"
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "union_no_match":
			return "どの候補にも一致しません"
		case "recursion_loop":
			return "再帰の上限を超えました"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "unknown key"
		case "none_required":
			return "input must be null"
		case "bool_parsing":
			return "input cannot be parsed as a bool"
		case "int_parsing":
			return "input cannot be parsed as an integer"
		case "float_parsing":
			return "input cannot be parsed as a number"
		case "string_type":
			return "input must be a string"
		case "list_type":
			return "input must be a list"
		case "dict_type":
			return "input must be an object"
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "union_no_match":
			return "input matches no union choice"
		case "recursion_loop":
			return "recursion limit exceeded"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
