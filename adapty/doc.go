// Package adapty defines the wire models exchanged with the native
// purchases SDK, and dispatches the SDK's call results and
// asynchronous events to them.
//
// Every model is a plain struct whose "wire" tags describe its flat
// snake_case wire representation, see [bridge.Encode]. Call results
// arrive as JSON envelopes and are decoded by a [Dispatcher] according
// to the [Tag] declared at the call site. Events are decoded by name
// with [Dispatcher.ParseCommonEvent], [Dispatcher.ParsePaywallEvent]
// and [Dispatcher.ParseOnboardingEvent].
package adapty
