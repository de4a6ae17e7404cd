/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Chat Room and Message Business Logic Errors
const (
	// ErrChatNotFound indicates that the requested chat id does not name an existing room.
	ErrChatNotFound = 2101

	// ErrMessageBodyEmpty indicates that a posted message had an empty body.
	ErrMessageBodyEmpty = 2201

	// ErrMessageBodyTooLong indicates that the message body exceeded the maximum length limit.
	ErrMessageBodyTooLong = 2202
)

// 3xxx: Credential and Access Errors
const (
	// ErrCredentialRequired indicates that the operation needs a registered auth key;
	// the client should be sent to the registration page first.
	ErrCredentialRequired = 3001

	// ErrCredentialUnknown indicates that the supplied auth key is not present in the registry.
	ErrCredentialUnknown = 3002

	// ErrDisplayNameInvalid indicates that a registration request carried an unusable display name.
	ErrDisplayNameInvalid = 3003
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
