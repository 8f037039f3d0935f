// Package errors provides structured error handling with machine-readable codes.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Domain and wire errors
	CodeEffectUnknownCategory  Code = "EFFECT_UNKNOWN_CATEGORY"
	CodeEffectUnknownType      Code = "EFFECT_UNKNOWN_TYPE"
	CodeEffectInvalidDuration  Code = "EFFECT_INVALID_DURATION"
	CodeKingdomUnknown         Code = "KINGDOM_UNKNOWN"
	CodePrizeInvalid           Code = "PRIZE_INVALID"
	CodePrizeCatalogInvalid    Code = "PRIZE_CATALOG_INVALID"
	CodeFilterInvalid          Code = "FILTER_INVALID"
	CodeWireTruncated          Code = "WIRE_TRUNCATED"
	CodeWireTrailingBytes      Code = "WIRE_TRAILING_BYTES"
	CodeWireLengthExceeded     Code = "WIRE_LENGTH_EXCEEDED"
	CodeWireValueOutOfRange    Code = "WIRE_VALUE_OUT_OF_RANGE"
	CodeWireDuplicateKey       Code = "WIRE_DUPLICATE_KEY"
	CodeWireUnsupportedVersion Code = "WIRE_UNSUPPORTED_VERSION"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes for transport layers
// that carry effect and prize payloads.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - caller supplied an unknown label or malformed value
	case CodeEffectUnknownCategory,
		CodeEffectUnknownType,
		CodeEffectInvalidDuration,
		CodeKingdomUnknown,
		CodePrizeInvalid,
		CodePrizeCatalogInvalid,
		CodeFilterInvalid:
		return codes.InvalidArgument

	// DataLoss - persisted or transmitted bytes do not decode
	case CodeWireTruncated,
		CodeWireTrailingBytes,
		CodeWireLengthExceeded,
		CodeWireValueOutOfRange,
		CodeWireDuplicateKey:
		return codes.DataLoss

	case CodeWireUnsupportedVersion:
		return codes.FailedPrecondition

	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
