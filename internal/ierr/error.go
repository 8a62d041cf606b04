package ierr

import "errors"

type ErrorCode string

const (
	ErrorCodeInvalidArgument ErrorCode = "InvalidArgument"
	ErrorCodeClientInit      ErrorCode = "ClientInit"
	ErrorCodeUpload          ErrorCode = "Upload"
	ErrorCodeEncoding        ErrorCode = "Encoding"
	ErrorCodeInternal        ErrorCode = "Internal"
)

type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`

	cause error
}

func New(code ErrorCode, cause error) Error {
	return Error{
		Code:    code,
		Message: cause.Error(),
		cause:   cause,
	}
}

func (e Error) Error() string {
	return string(e.Code) + ": " + e.cause.Error()
}

func (e Error) Unwrap() error {
	return e.cause
}

// CodeOf returns the code of the first Error in err's chain, or Internal.
func CodeOf(err error) ErrorCode {
	var ierrErr Error
	if errors.As(err, &ierrErr) {
		return ierrErr.Code
	}

	return ErrorCodeInternal
}
