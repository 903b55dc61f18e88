// package fragments provides low-level helpers to build and read the
// JSON wire objects exchanged with the counterpart process.
//
// The provided encoder and decoder are very low level, and do not
// encode any schema semantics. It is the caller's responsibility to
// produce wire objects that the counterpart understands.
//
// You should not need to use this package at all, unless you are
// writing your own bridge.Marshaler/bridge.Unmarshaler
// implementations, in which case the [Path], [Encoder] and [Decoder]
// helpers make it easier to assemble and pick apart nested wire
// objects.
package fragments
