package taskjson

import (
	"fmt"
	"strconv"
)

// ExtractString returns the unescaped value of the first member named key
// that holds a string. It returns "" when there is no such member.
func ExtractString(object *Value, key string) string {
	value, ok := lookupKind(object, key, KindString)
	if !ok {
		return ""
	}
	return Unescape(value.Raw)
}

// ExtractInt returns the integer value of the first member named key that
// holds a number. Only the leading sign and digits count, so 12.9 reads as
// 12. It returns 0 when there is no such member, and an error when the
// digits do not fit in an int.
func ExtractInt(object *Value, key string) (int, error) {
	value, ok := lookupKind(object, key, KindNumber)
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(leadingInteger(value.Raw))
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", key, err)
	}
	return n, nil
}

// hasMember reports whether object has any member named key.
func hasMember(object *Value, key string) bool {
	_, ok := object.Lookup(key)
	return ok
}

func lookupKind(object *Value, key string, kind Kind) (*Value, bool) {
	if object == nil || object.Kind != KindObject {
		return nil, false
	}
	for _, member := range object.Members {
		if member.Key == key && member.Value.Kind == kind {
			return member.Value, true
		}
	}
	return nil, false
}

func leadingInteger(raw string) string {
	end := 0
	if end < len(raw) && raw[end] == '-' {
		end++
	}
	for end < len(raw) && isDigit(raw[end]) {
		end++
	}
	return raw[:end]
}
