package musiccast

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedNotification marks UDP datagrams whose payload is not valid
// JSON. The receiver reports these on its error channel and keeps listening.
var ErrMalformedNotification = errors.New("malformed notification payload")

// DeviceError is returned when an HTTP exchange completes but the device
// answers with a nonzero response_code. The full response body is retained so
// callers can inspect endpoint-specific fields alongside the code.
type DeviceError struct {
	Code int
	Body json.RawMessage
}

func (e *DeviceError) Error() string {
	if text, ok := responseCodeText[e.Code]; ok {
		return fmt.Sprintf("device returned response code %d (%s)", e.Code, text)
	}
	return fmt.Sprintf("device returned response code %d", e.Code)
}

// responseCodeText maps the vendor's documented response codes to their
// meanings. All nonzero codes are treated uniformly as failures; the text is
// informational only.
var responseCodeText = map[int]string{
	0:   "successful request",
	1:   "initializing",
	2:   "internal error",
	3:   "invalid request",
	4:   "invalid parameter",
	5:   "guarded",
	6:   "timeout",
	99:  "firmware updating",
	100: "streaming service access error",
	101: "streaming service other error",
	102: "wrong user name",
	103: "wrong password",
	104: "account expired",
	105: "account disconnected",
	106: "account limit reached",
	107: "server maintenance",
	108: "invalid account",
	109: "license error",
	110: "read only mode",
	111: "max stations",
	112: "access denied",
}
