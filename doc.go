// Package bridge implements a declarative, bidirectional codec
// between Go model structs and the flat JSON wire objects exchanged
// with a native counterpart process.
//
// The wire mapping of a struct is declared with "wire" struct tags,
// and compiled once per type into a [Schema]. See [Encode] for the
// full set of encoding rules.
//
// Every failure surfaces as an [*Error] carrying a numeric
// [ErrorCode], so that callers can branch on [CodeOf] regardless of
// whether the failure was local (a [DecodeError] or [EncodeError]) or
// reported by the counterpart (a [RemoteError] or [BridgeError]).
package bridge
