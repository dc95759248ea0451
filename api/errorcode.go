package api

import "github.com/suscommunity/community-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrUserTaken.Error(),
		1101: store.ErrUserNotFound.Error(),

		1200: store.ErrPostNotFound.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUserTaken    = errorJSON(1100)
	errorUserNotFound = errorJSON(1101)

	errorPostNotFound = errorJSON(1200)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// errorWithMessage keeps the numeric code but carries a request-specific
// message. Validation failures use it because clients render the text
// verbatim.
func errorWithMessage(code int64, message string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
