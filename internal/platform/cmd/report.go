package cmd

import (
	"errors"
	"fmt"
	"io"

	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// ReportError writes a failed run to w as "service: user message (CODE: err)"
// and returns the process exit status, the gRPC code of the error's domain
// code. Errors without a domain code report as UNKNOWN. A nil err returns 0.
func ReportError(w io.Writer, service, locale, userMessage string, err error) int {
	if err == nil {
		return 0
	}
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		domainErr = apperrors.Wrap(apperrors.CodeUnknown, err.Error(), err)
	}

	st := status.Convert(domainErr.ToGRPCStatus(locale, userMessage))
	message := st.Message()
	for _, detail := range st.Details() {
		if localized, ok := detail.(*errdetails.LocalizedMessage); ok && localized.GetMessage() != "" {
			message = localized.GetMessage()
		}
	}
	if w != nil {
		fmt.Fprintf(w, "%s: %s (%s: %v)\n", service, message, domainErr.Code, err)
	}
	return int(st.Code())
}
