/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Chat Room and Message Business Logic Errors
	ErrChatNotFound:       {Code: ErrChatNotFound, Message: "Chat room not found.", Status: http.StatusNotFound},
	ErrMessageBodyEmpty:   {Code: ErrMessageBodyEmpty, Message: "Message cannot be empty."},
	ErrMessageBodyTooLong: {Code: ErrMessageBodyTooLong, Message: "Message is too long."},

	// 3xxx: Credential and Access Errors
	ErrCredentialRequired: {Code: ErrCredentialRequired, Message: "Please pick a username to continue.", Status: http.StatusUnauthorized},
	ErrCredentialUnknown:  {Code: ErrCredentialUnknown, Message: "Unknown auth key. Please register again.", Status: http.StatusUnauthorized},
	ErrDisplayNameInvalid: {Code: ErrDisplayNameInvalid, Message: "Invalid username."},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
