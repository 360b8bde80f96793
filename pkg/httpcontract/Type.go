package httpcontract

import "encoding/json"

// Response is the envelope every API endpoint answers with.
type Response struct {
	HttpStatus       int
	Explanation      string
	ErrorExplanation string
	Error            bool
	Success          bool
	Data             json.RawMessage
}
