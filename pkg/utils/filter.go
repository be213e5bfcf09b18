package utils

// FilterAllowed keeps only the allowed keys of a request body, used by the
// profile-update paths so credential fields can never ride along.
func FilterAllowed(obj map[string]any, allowedFields ...string) map[string]any {
	newObj := make(map[string]any)
	for _, field := range allowedFields {
		if v, ok := obj[field]; ok {
			newObj[field] = v
		}
	}
	return newObj
}
