package history

import "encoding/json"

// InvalidAnalysis is the sentinel returned when a stored analysis cannot be
// parsed. Rows may carry text written outside this process; reads degrade to
// this marker instead of failing the whole listing.
func InvalidAnalysis() map[string]any {
	return map[string]any{"error": "Invalid analysis format"}
}

// EncodeAnalysis serializes an analysis value for storage.
func EncodeAnalysis(v map[string]any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeAnalysis parses stored analysis text back into its structured form.
// It is total: malformed, empty or non-object input yields the sentinel from
// InvalidAnalysis, never an error.
func DecodeAnalysis(text string) map[string]any {
	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err != nil || out == nil {
		return InvalidAnalysis()
	}
	return out
}
