package adapty

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"github.com/creachadair/mds/mapset"

	"github.com/danderson/bridge"
	"github.com/danderson/bridge/fragments"
)

// A Tag names the type of a call's success payload.
type Tag string

const (
	TagError                    Tag = "AdaptyError"
	TagProfile                  Tag = "AdaptyProfile"
	TagPurchaseResult           Tag = "AdaptyPurchaseResult"
	TagPaywall                  Tag = "AdaptyPaywall"
	TagPaywallProduct           Tag = "AdaptyPaywallProduct"
	TagOnboarding               Tag = "AdaptyOnboarding"
	TagRemoteConfig             Tag = "AdaptyRemoteConfig"
	TagPaywallBuilder           Tag = "AdaptyPaywallBuilder"
	TagInstallationStatus       Tag = "AdaptyInstallationStatus"
	TagUIView                   Tag = "AdaptyUiView"
	TagUIDialogActionType       Tag = "AdaptyUiDialogActionType"
	TagUIOnboardingMeta         Tag = "AdaptyUiOnboardingMeta"
	TagUIOnboardingStateParams  Tag = "AdaptyUiOnboardingStateParams"
	TagUIOnboardingStateUpdated Tag = "AdaptyUiOnboardingStateUpdatedAction"
	TagPaywallProducts          Tag = "Array<AdaptyPaywallProduct>"
	TagBridgeError              Tag = "BridgeError"
	TagString                   Tag = "String"
	TagBoolean                  Tag = "Boolean"
	TagVoid                     Tag = "Void"
)

// primitiveTags are the tags whose success payload is returned as
// the raw wire value, without decoding.
var primitiveTags = mapset.New(
	TagString,
	TagBoolean,
	TagVoid,
	TagUIView,
	TagUIDialogActionType,
)

// Primitive reports whether t's payload is returned undecoded.
func (t Tag) Primitive() bool {
	return primitiveTags.Has(t)
}

// Tags returns all known tags, sorted.
func Tags() []Tag {
	ret := []Tag{
		TagError,
		TagProfile,
		TagPurchaseResult,
		TagPaywall,
		TagPaywallProduct,
		TagOnboarding,
		TagRemoteConfig,
		TagPaywallBuilder,
		TagInstallationStatus,
		TagUIView,
		TagUIDialogActionType,
		TagUIOnboardingMeta,
		TagUIOnboardingStateParams,
		TagUIOnboardingStateUpdated,
		TagPaywallProducts,
		TagBridgeError,
		TagString,
		TagBoolean,
		TagVoid,
	}
	slices.Sort(ret)
	return ret
}

// TypeOf returns the Go type that t's payload decodes to. Primitive
// tags have no type, and return nil.
func TypeOf(t Tag) (reflect.Type, error) {
	switch t {
	case TagError:
		return reflect.TypeFor[NativeError](), nil
	case TagProfile:
		return reflect.TypeFor[Profile](), nil
	case TagPurchaseResult:
		return reflect.TypeFor[PurchaseResult](), nil
	case TagPaywall:
		return reflect.TypeFor[Paywall](), nil
	case TagPaywallProduct:
		return reflect.TypeFor[PaywallProduct](), nil
	case TagOnboarding:
		return reflect.TypeFor[Onboarding](), nil
	case TagRemoteConfig:
		return reflect.TypeFor[RemoteConfig](), nil
	case TagPaywallBuilder:
		return reflect.TypeFor[PaywallBuilder](), nil
	case TagInstallationStatus:
		return reflect.TypeFor[InstallationStatus](), nil
	case TagUIOnboardingMeta:
		return reflect.TypeFor[OnboardingMeta](), nil
	case TagUIOnboardingStateParams:
		return reflect.TypeFor[OnboardingStateParams](), nil
	case TagUIOnboardingStateUpdated:
		return reflect.TypeFor[OnboardingStateUpdatedAction](), nil
	case TagPaywallProducts:
		return reflect.TypeFor[[]PaywallProduct](), nil
	case TagBridgeError:
		return reflect.TypeFor[bridge.BridgeError](), nil
	case TagString, TagBoolean, TagVoid, TagUIView, TagUIDialogActionType:
		return nil, nil
	}
	return nil, unknownTagErr(t)
}

// decode decodes wire as the payload type named by t. Error payloads
// decode to the [*bridge.Error] they describe.
func (t Tag) decode(ctx context.Context, wire any) (any, error) {
	switch t {
	case TagError:
		ne, err := decodeAs[NativeError](ctx, wire)
		if err != nil {
			return nil, err
		}
		return ne.AsError(), nil
	case TagProfile:
		return decodeAs[Profile](ctx, wire)
	case TagPurchaseResult:
		return decodeAs[PurchaseResult](ctx, wire)
	case TagPaywall:
		return decodeAs[Paywall](ctx, wire)
	case TagPaywallProduct:
		return decodeAs[PaywallProduct](ctx, wire)
	case TagOnboarding:
		return decodeAs[Onboarding](ctx, wire)
	case TagRemoteConfig:
		return decodeAs[RemoteConfig](ctx, wire)
	case TagPaywallBuilder:
		return decodeAs[PaywallBuilder](ctx, wire)
	case TagInstallationStatus:
		return decodeAs[InstallationStatus](ctx, wire)
	case TagUIOnboardingMeta:
		return decodeAs[OnboardingMeta](ctx, wire)
	case TagUIOnboardingStateParams:
		return decodeAs[OnboardingStateParams](ctx, wire)
	case TagUIOnboardingStateUpdated:
		return decodeAs[OnboardingStateUpdatedAction](ctx, wire)
	case TagPaywallProducts:
		return decodeAs[[]PaywallProduct](ctx, wire)
	case TagBridgeError:
		be, err := decodeAs[bridge.BridgeError](ctx, wire)
		if err != nil {
			return nil, err
		}
		return be.AsError(), nil
	case TagString, TagBoolean, TagVoid, TagUIView, TagUIDialogActionType:
		return fragments.Floats(wire), nil
	}
	return nil, unknownTagErr(t)
}

func decodeAs[T any](ctx context.Context, wire any) (T, error) {
	var ret T
	if err := bridge.Decode(ctx, wire, &ret); err != nil {
		return ret, err
	}
	return ret, nil
}

func unknownTagErr(t Tag) error {
	return bridge.WrapError(bridge.CodeDecodingFailed, &bridge.DecodeError{
		Type:   "result",
		Reason: fmt.Errorf("unexpected result type %q", t),
	})
}
