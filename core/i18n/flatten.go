package i18n

import (
	"fmt"
	"maps"
)

// flattenTranslations recursively flattens a nested translation map into
// dot-notation keys. Strings are leaves, nested maps recurse, and
// map[string]string is treated as one final level (the common shape for
// plural options). Scalar primitives such as numbers and booleans are
// coerced to their string representation. Arrays and every other shape are
// rejected: translation sources are trees of objects and strings, and
// anything else is a catalog mistake.
func flattenTranslations(data map[string]any, prefix string) (map[string]string, error) {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			nested, err := flattenTranslations(v, fullKey)
			if err != nil {
				return nil, err
			}
			maps.Copy(result, nested)
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		case bool, int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			result[fullKey] = fmt.Sprintf("%v", v)
		default:
			return nil, UnsupportedValueError{Key: fullKey, Value: value}
		}
	}

	return result, nil
}
