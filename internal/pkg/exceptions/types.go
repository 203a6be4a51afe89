package exceptions

import (
	"tutorbook-service/internal/pkg/constvars"
)

var (
	// Session gate
	ErrSessionTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthenticated, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionCookieMissing)
	}
	ErrSessionTokenNotInContext = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthenticated, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionTokenMissing)
	}

	// Input validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrMissingRequiredFields = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientMissingRequiredFields, constvars.ErrDevValidationFailed)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, "Invalid URL parameter: "+paramName)
	}
	ErrCannotParseForm = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseForm)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseTime)
	}
	ErrInvalidDuration = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientInvalidDuration, constvars.ErrDevValidationFailed)
	}

	// Lesson API transport
	ErrBuildRequest = func(err error, clientMessage string) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusInternalServerError, clientMessage, constvars.ErrDevBuildRequest)
	}
	ErrSendRequest = func(err error, clientMessage string) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusBadGateway, clientMessage, constvars.ErrDevSendRequest)
	}
	ErrReadResponseBody = func(err error, clientMessage string) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusBadGateway, clientMessage, constvars.ErrDevReadResponseBody)
	}
	ErrDecodeResponseBody = func(err error, clientMessage string) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusBadGateway, clientMessage, constvars.ErrDevDecodeResponseBody)
	}

	// Lesson API rejection: the client message has already been resolved from
	// the remote error payload by the caller. A 401 means the stored token is
	// no longer honored, so the session itself is invalid.
	ErrLessonAPIRejected = func(statusCode int, clientMessage string) *CustomError {
		kind := KindServer
		if statusCode == constvars.StatusUnauthorized {
			kind = KindUnauthenticated
		}
		return BuildNewCustomError(nil, kind, statusCode, clientMessage, constvars.ErrDevLessonAPIRejected)
	}

	// Rendering
	ErrRenderTemplate = func(err error) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, constvars.ErrDevRenderTemplate)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusGatewayTimeout, constvars.ErrClientNetworkError, constvars.ErrDevServerDeadlineExceeded)
	}
)
