package httpcontract

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

func NewResponse(status int, explanation string, err error, data interface{}) Response {
	errString := ""
	if err != nil {
		errString = err.Error()
	}

	return Response{
		HttpStatus:       status,
		Explanation:      explanation,
		ErrorExplanation: errString,
		Error:            err != nil,
		Success:          status == http.StatusOK,
		Data:             ToJSON(data),
	}
}

// ToJSON marshals data for the Data field. Raw bytes and strings are taken as already encoded.
func ToJSON(data interface{}) []byte {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	switch v := data.(type) {
	case nil:
		return nil
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		marshaled, err := json.Marshal(v)

		if err != nil {
			return nil
		}

		return marshaled
	}
}

// Decode unpacks the Data field into out.
func (response *Response) Decode(out interface{}) error {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	return json.Unmarshal(response.Data, out)
}
