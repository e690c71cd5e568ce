package messages

import "golang.org/x/text/language"

// builtinTables returns a fresh copy of the message tables. More specific
// codes take precedence through the resolver's candidate order.
func builtinTables() map[language.Tag]map[string]string {
	return map[language.Tag]map[string]string{
		language.English: {
			"required.item.itemName": "Item name is required.",
			"range.item.price":       "Price must be between {0} and {1}.",
			"max.item.quantity":      "Quantity must be less than {0}.",
			"totalPriceMin":          "Price × quantity must be at least {0}. Current value = {1}",

			"required": "This value is required.",
			"range":    "Value must be between {0} and {1}.",
			"max":      "Value must be less than {0}.",

			"typeMismatch.int64": "Please enter a number.",
			"typeMismatch":       "Invalid value type.",
		},
		language.Korean: {
			"required.item.itemName": "상품 이름은 필수입니다.",
			"range.item.price":       "가격은 {0} ~ {1} 까지 허용합니다.",
			"max.item.quantity":      "수량은 최대 {0} 까지 허용합니다.",
			"totalPriceMin":          "가격 * 수량의 합은 {0}원 이상이어야 합니다. 현재 값 = {1}",

			"required": "필수 값 입니다.",
			"range":    "{0} ~ {1} 범위를 허용합니다.",
			"max":      "최대 {0} 까지 허용합니다.",

			"typeMismatch.int64": "숫자를 입력해주세요.",
			"typeMismatch":       "타입 오류입니다.",
		},
	}
}
