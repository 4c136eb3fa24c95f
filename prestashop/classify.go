package prestashop

import (
	"net/http"
)

// statusLabels maps the status codes the webservice documents to human labels
var statusLabels = map[int]string{
	http.StatusNoContent:           "No content",
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusInternalServerError: "Internal Server Error",
}

const unknownErrorLabel = "Unknown error"

// errorExtractor reads the remote error code and message of a failed response
type errorExtractor func() (int, string, error)

// classify turns a status code into nil or a typed error. extract is only
// consulted for failures other than 401.
func classify(status int, extract errorExtractor) error {
	switch status {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusUnauthorized:
		return &AuthenticationError{
			StatusCode: status,
			Message:    statusLabels[status],
		}
	}

	label, ok := statusLabels[status]
	if !ok {
		label = unknownErrorLabel
	}

	svcErr := &ServiceError{
		StatusCode: status,
		Message:    label,
	}

	code, msg, err := extract()
	if err != nil {
		svcErr.Err = err
		return svcErr
	}
	svcErr.Code = code
	svcErr.RemoteMessage = msg
	return svcErr
}

// ExtractError reads the first errors entry of a failure body in the given format
func ExtractError(body []byte, format Format) (int, string, error) {
	return wireFor(format).extractError(body)
}

func bodyExtractor(w wireCodec, body []byte) errorExtractor {
	return func() (int, string, error) {
		return w.extractError(body)
	}
}

func staticExtractor(code int, msg string) errorExtractor {
	return func() (int, string, error) {
		return code, msg, nil
	}
}
