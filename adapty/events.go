package adapty

import (
	"context"
	"strings"

	"github.com/creachadair/mds/mapset"
	"go.uber.org/zap"

	"github.com/danderson/bridge"
	"github.com/danderson/bridge/fragments"
)

// Names of the events handled by [Dispatcher.ParseCommonEvent].
const (
	EventProfileLoaded              = "did_load_latest_profile"
	EventInstallationDetailsSuccess = "on_installation_details_success"
	EventInstallationDetailsFail    = "on_installation_details_fail"
)

// parseEvent parses the JSON text of an event payload, which must be
// an object.
func parseEvent(raw string) (map[string]any, error) {
	w, err := fragments.Parse(raw)
	if err != nil {
		return nil, &bridge.DecodeError{Type: "event", Reason: err}
	}
	obj, ok := w.(map[string]any)
	if !ok {
		return nil, &bridge.DecodeError{Type: "event", Reason: bridge.KindError{Expected: bridge.KindObject, Received: kindName(w)}}
	}
	return obj, nil
}

// ParseCommonEvent decodes the payload raw of the SDK event name.
//
// A [EventProfileLoaded] event decodes to a [Profile], an
// [EventInstallationDetailsSuccess] event to [InstallationDetails],
// and an [EventInstallationDetailsFail] event to the [*bridge.Error]
// it reports. Other events are ignored, and return (nil, nil).
func (d *Dispatcher) ParseCommonEvent(ctx context.Context, name, raw string) (any, error) {
	log := d.log().With(zap.String("event", name))
	log.Debug("decoding event", zap.String("input", raw))

	obj, err := parseEvent(raw)
	if err != nil {
		return nil, d.fail(log, err)
	}

	var ret any
	switch name {
	case EventProfileLoaded:
		ret, err = decodeAs[Profile](ctx, obj["profile"])
	case EventInstallationDetailsSuccess:
		ret, err = decodeAs[InstallationDetails](ctx, obj["details"])
	case EventInstallationDetailsFail:
		var ne NativeError
		ne, err = decodeAs[NativeError](ctx, obj["error"])
		ret = ne.AsError()
	default:
		log.Debug("ignoring unknown event")
		return nil, nil
	}
	if err != nil {
		return nil, d.fail(log, err)
	}
	return ret, nil
}

// PaywallEvent is an event raised by a paywall view. Which fields
// are set depends on the event.
type PaywallEvent struct {
	ID             *string         `wire:"id"`
	View           any             `wire:"view"`
	Profile        *Profile        `wire:"profile"`
	Product        *PaywallProduct `wire:"product"`
	Error          *NativeError    `wire:"error"`
	Action         any             `wire:"action"`
	ProductID      *string         `wire:"product_id"`
	PurchaseResult *PurchaseResult `wire:"purchased_result"`
}

// ParsePaywallEvent decodes the payload raw of a paywall view event.
func (d *Dispatcher) ParsePaywallEvent(ctx context.Context, raw string) (*PaywallEvent, error) {
	log := d.log().With(zap.String("event", "paywall"))
	log.Debug("decoding event", zap.String("input", raw))

	obj, err := parseEvent(raw)
	if err != nil {
		return nil, d.fail(log, err)
	}
	ret, err := decodeAs[PaywallEvent](ctx, obj)
	if err != nil {
		return nil, d.fail(log, err)
	}
	return &ret, nil
}

// IDs of the events handled by [Dispatcher.ParseOnboardingEvent].
const (
	OnboardingClose           = "onboarding_on_close_action"
	OnboardingCustom          = "onboarding_on_custom_action"
	OnboardingPaywall         = "onboarding_on_paywall_action"
	OnboardingStateUpdated    = "onboarding_on_state_updated_action"
	OnboardingFinishedLoading = "onboarding_did_finish_loading"
	OnboardingAnalytics       = "onboarding_on_analytics_action"
	OnboardingError           = "onboarding_did_fail_with_error"
)

// onboardingActionEvents are the onboarding events that decode to an
// [OnboardingActionEvent].
var onboardingActionEvents = mapset.New(
	OnboardingClose,
	OnboardingCustom,
	OnboardingPaywall,
)

// OnboardingView identifies the onboarding view that raised an event.
type OnboardingView struct {
	ID          string  `wire:"id,required"`
	PlacementID *string `wire:"placement_id"`
	VariationID *string `wire:"variation_id"`
}

// OnboardingEvent is an event raised by an onboarding view. It is
// one of the Onboarding*Event types of this package.
type OnboardingEvent interface {
	EventID() string
	EventView() OnboardingView
}

// OnboardingActionEvent reports that the user triggered a close,
// custom or paywall action.
type OnboardingActionEvent struct {
	ID       string         `wire:"id,required"`
	View     OnboardingView `wire:"view,required"`
	ActionID string         `wire:"action_id,required"`
	Meta     OnboardingMeta `wire:"meta,required"`
}

// OnboardingStateUpdatedEvent reports that the user changed the state
// of an onboarding element.
type OnboardingStateUpdatedEvent struct {
	ID     string                       `wire:"id,required"`
	View   OnboardingView               `wire:"view,required"`
	Action OnboardingStateUpdatedAction `wire:"action,required"`
	Meta   OnboardingMeta               `wire:"meta,required"`
}

// OnboardingFinishedLoadingEvent reports that an onboarding view is
// ready.
type OnboardingFinishedLoadingEvent struct {
	ID   string         `wire:"id,required"`
	View OnboardingView `wire:"view,required"`
	Meta OnboardingMeta `wire:"meta,required"`
}

// OnboardingAnalyticsEvent reports an analytics event from an
// onboarding flow.
type OnboardingAnalyticsEvent struct {
	ID    string                  `wire:"id,required"`
	View  OnboardingView          `wire:"view,required"`
	Event OnboardingAnalyticsData `wire:"event,required"`
	Meta  OnboardingMeta          `wire:"meta,required"`
}

// OnboardingAnalyticsData is the analytics event reported by an
// [OnboardingAnalyticsEvent].
type OnboardingAnalyticsData struct {
	Name      string  `wire:"name,required"`
	ElementID *string `wire:"element_id"`
	Reply     *string `wire:"reply"`
}

// OnboardingErrorEvent reports that an onboarding view failed.
type OnboardingErrorEvent struct {
	ID    string         `wire:"id,required"`
	View  OnboardingView `wire:"view,required"`
	Error NativeError    `wire:"error,required"`
}

func (e *OnboardingActionEvent) EventID() string          { return e.ID }
func (e *OnboardingStateUpdatedEvent) EventID() string    { return e.ID }
func (e *OnboardingFinishedLoadingEvent) EventID() string { return e.ID }
func (e *OnboardingAnalyticsEvent) EventID() string       { return e.ID }
func (e *OnboardingErrorEvent) EventID() string           { return e.ID }

func (e *OnboardingActionEvent) EventView() OnboardingView          { return e.View }
func (e *OnboardingStateUpdatedEvent) EventView() OnboardingView    { return e.View }
func (e *OnboardingFinishedLoadingEvent) EventView() OnboardingView { return e.View }
func (e *OnboardingAnalyticsEvent) EventView() OnboardingView       { return e.View }
func (e *OnboardingErrorEvent) EventView() OnboardingView           { return e.View }

// ParseOnboardingEvent decodes the payload raw of an onboarding view
// event. The event is identified by the payload's id key. Payloads
// that aren't onboarding events are ignored, and return (nil, nil).
func (d *Dispatcher) ParseOnboardingEvent(ctx context.Context, raw string) (OnboardingEvent, error) {
	obj, err := parseEvent(raw)
	if err != nil {
		return nil, d.fail(d.log(), err)
	}
	id, _ := obj["id"].(string)
	log := d.log().With(zap.String("event", id))
	if !strings.HasPrefix(id, "onboarding_") {
		log.Debug("ignoring non-onboarding event")
		return nil, nil
	}
	log.Debug("decoding event", zap.String("input", raw))

	var ret OnboardingEvent
	switch {
	case onboardingActionEvents.Has(id):
		ret, err = decodeEvent[OnboardingActionEvent](ctx, obj)
	case id == OnboardingStateUpdated:
		ret, err = decodeEvent[OnboardingStateUpdatedEvent](ctx, obj)
	case id == OnboardingFinishedLoading:
		ret, err = decodeEvent[OnboardingFinishedLoadingEvent](ctx, obj)
	case id == OnboardingAnalytics:
		ret, err = decodeEvent[OnboardingAnalyticsEvent](ctx, obj)
	case id == OnboardingError:
		ret, err = decodeEvent[OnboardingErrorEvent](ctx, obj)
	default:
		log.Debug("ignoring unknown onboarding event")
		return nil, nil
	}
	if err != nil {
		return nil, d.fail(log, err)
	}
	return ret, nil
}

// decodeEvent decodes wire into a new *T.
func decodeEvent[T any, PT interface {
	*T
	OnboardingEvent
}](ctx context.Context, wire any) (OnboardingEvent, error) {
	ret := PT(new(T))
	if err := bridge.Decode(ctx, wire, ret); err != nil {
		return nil, err
	}
	return ret, nil
}
