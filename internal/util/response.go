package util

type Envelope map[string]any

// Success wraps a payload in the {"success": true, "data": ...} envelope
// every API response uses.
func Success(data any) Envelope {
	return Envelope{"success": true, "data": data}
}

// Fail is the error counterpart: {"success": false, "message": ...}.
func Fail(message string) Envelope {
	return Envelope{"success": false, "message": message}
}
