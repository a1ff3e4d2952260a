package errors

import "unicode"

// ValidateItemID validates an item id for safety and correctness.
// Ids come from external manifests and end up in cache keys, API paths,
// and log lines, so the rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - Maximum length of 256 characters
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidItem, "item id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidItem, "item id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidItem, "item id contains control characters")
		}
	}
	return nil
}

// ValidateDimensions validates optional natural dimensions. Zero means
// "not yet measured" and is allowed; negative values are not.
func ValidateDimensions(width, height int) error {
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidItem, "negative dimensions %dx%d", width, height)
	}
	return nil
}
