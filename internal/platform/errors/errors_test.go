package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeEffectUnknownType, "unknown effect type")
	err := WithMetadata(CodeEffectUnknownType, "unknown effect type \"x\"", map[string]string{"Label": "x"})

	if !stderrors.Is(err, sentinel) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeKingdomUnknown, "other")) {
		t.Fatal("expected different codes not to match")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("short buffer")
	err := Wrap(CodeWireTruncated, "decode effect", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if got := err.Error(); got != "decode effect: short buffer" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("load prize: %w", New(CodeWireDuplicateKey, "duplicate kingdom"))
	if got := CodeOf(wrapped); got != CodeWireDuplicateKey {
		t.Fatalf("CodeOf = %s, want %s", got, CodeWireDuplicateKey)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf = %s, want %s", got, CodeUnknown)
	}
}

func TestGRPCCode(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeEffectUnknownType, codes.InvalidArgument},
		{CodeKingdomUnknown, codes.InvalidArgument},
		{CodeWireTruncated, codes.DataLoss},
		{CodeWireDuplicateKey, codes.DataLoss},
		{CodeWireUnsupportedVersion, codes.FailedPrecondition},
		{CodeNotFound, codes.NotFound},
		{CodeUnknown, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.GRPCCode(); got != tt.want {
				t.Fatalf("GRPCCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToGRPCStatusAttachesDetails(t *testing.T) {
	err := WithMetadata(CodeEffectUnknownType, "unknown effect type", map[string]string{"Label": "Speed"})
	st, ok := status.FromError(err.ToGRPCStatus("pl-PL", "Nieznany typ efektu"))
	if !ok {
		t.Fatal("expected grpc status")
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", st.Code(), codes.InvalidArgument)
	}

	var info *errdetails.ErrorInfo
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			info = d
		case *errdetails.LocalizedMessage:
			localized = d
		}
	}
	if info == nil || info.Reason != string(CodeEffectUnknownType) || info.Metadata["Label"] != "Speed" {
		t.Fatalf("unexpected error info: %+v", info)
	}
	if localized == nil || localized.Locale != "pl-PL" || localized.Message != "Nieznany typ efektu" {
		t.Fatalf("unexpected localized message: %+v", localized)
	}
}
