package adapty

import (
	"context"
	"errors"
	"fmt"

	"github.com/danderson/bridge"
)

// OnboardingMeta locates an event within an onboarding flow.
type OnboardingMeta struct {
	OnboardingID string `wire:"onboarding_id,required"`
	ScreenCID    string `wire:"screen_cid,required"`
	ScreenIndex  int    `wire:"screen_index,required"`
	TotalScreens int    `wire:"total_screens,required"`
}

// OnboardingStateParams is one option of a select or multi-select
// element.
type OnboardingStateParams struct {
	ID    string `wire:"id,required"`
	Value string `wire:"value,required"`
	Label string `wire:"label,required"`
}

// ElementType is the kind of onboarding element whose state changed.
type ElementType string

const (
	ElementSelect      ElementType = "select"
	ElementMultiSelect ElementType = "multi_select"
	ElementInput       ElementType = "input"
	ElementDatePicker  ElementType = "date_picker"
)

// StateValue is the new state of an onboarding element. It is one of
// [OnboardingStateParams] (for select elements), [MultiSelectValue],
// [InputValue] or [DatePickerValue].
type StateValue interface {
	ElementType() ElementType
}

func (OnboardingStateParams) ElementType() ElementType { return ElementSelect }

// MultiSelectValue is the selected options of a multi-select
// element. An empty MultiSelectValue means nothing is selected.
type MultiSelectValue []OnboardingStateParams

func (MultiSelectValue) ElementType() ElementType { return ElementMultiSelect }

// InputType is the kind of value entered in an input element.
type InputType string

const (
	InputText   InputType = "text"
	InputEmail  InputType = "email"
	InputNumber InputType = "number"
)

// InputValue is the value entered in an input element. Text is set
// for text and email inputs, Number for number inputs.
type InputValue struct {
	Type   InputType
	Text   string
	Number float64
}

func (InputValue) ElementType() ElementType { return ElementInput }

type inputWire struct {
	Type  InputType `wire:"type,required"`
	Value any       `wire:"value,required"`
}

func (InputValue) WireKind() bridge.Kind { return bridge.KindObject }

func (v InputValue) MarshalWire(ctx context.Context) (any, error) {
	w := inputWire{Type: v.Type}
	switch v.Type {
	case InputText, InputEmail:
		w.Value = v.Text
	case InputNumber:
		w.Value = v.Number
	default:
		return nil, fmt.Errorf("unknown input type %q", v.Type)
	}
	return bridge.Encode(ctx, w)
}

func (v *InputValue) UnmarshalWire(ctx context.Context, wire any) error {
	var w inputWire
	if err := bridge.Decode(ctx, wire, &w); err != nil {
		return err
	}
	const typ = "adapty.InputValue"
	switch w.Type {
	case InputText, InputEmail:
		s, ok := w.Value.(string)
		if !ok {
			return payloadErr(typ, "Text", "value", bridge.KindError{Expected: bridge.KindString, Received: kindName(w.Value)})
		}
		*v = InputValue{Type: w.Type, Text: s}
	case InputNumber:
		if !bridge.KindNumber.Matches(w.Value) {
			return payloadErr(typ, "Number", "value", bridge.KindError{Expected: bridge.KindNumber, Received: kindName(w.Value)})
		}
		var n float64
		if err := bridge.Decode(ctx, w.Value, &n); err != nil {
			return payloadErr(typ, "Number", "value", err)
		}
		*v = InputValue{Type: w.Type, Number: n}
	default:
		return variantErr(typ, "Type", "type", string(w.Type))
	}
	return nil
}

// DatePickerValue is the date entered in a date picker element. Any
// subset of its fields may be set.
type DatePickerValue struct {
	Day   *int `wire:"day"`
	Month *int `wire:"month"`
	Year  *int `wire:"year"`
}

func (DatePickerValue) ElementType() ElementType { return ElementDatePicker }

// OnboardingStateUpdatedAction reports that the user changed the
// state of an onboarding element.
type OnboardingStateUpdatedAction struct {
	ElementID string
	Value     StateValue
}

// ElementType returns the type of the element that changed, or ""
// if Value is nil.
func (a OnboardingStateUpdatedAction) ElementType() ElementType {
	if a.Value == nil {
		return ""
	}
	return a.Value.ElementType()
}

type stateActionWire struct {
	ElementID   string      `wire:"element_id,required"`
	ElementType ElementType `wire:"element_type,required"`
	Value       any         `wire:"value"`
}

func (OnboardingStateUpdatedAction) WireKind() bridge.Kind { return bridge.KindObject }

func (a OnboardingStateUpdatedAction) MarshalWire(ctx context.Context) (any, error) {
	if a.Value == nil {
		return nil, errors.New("state update without a value")
	}
	switch a.Value.(type) {
	case OnboardingStateParams, MultiSelectValue, InputValue, DatePickerValue:
	default:
		return nil, fmt.Errorf("unsupported state value type %T", a.Value)
	}
	val, err := bridge.Encode(ctx, a.Value)
	if err != nil {
		return nil, err
	}
	return bridge.Encode(ctx, stateActionWire{
		ElementID:   a.ElementID,
		ElementType: a.Value.ElementType(),
		Value:       val,
	})
}

func (a *OnboardingStateUpdatedAction) UnmarshalWire(ctx context.Context, wire any) error {
	var w stateActionWire
	if err := bridge.Decode(ctx, wire, &w); err != nil {
		return err
	}

	const typ = "adapty.OnboardingStateUpdatedAction"
	var val StateValue
	switch w.ElementType {
	case ElementSelect:
		if w.Value == nil {
			return missingErr(typ, "Value", "value")
		}
		var p OnboardingStateParams
		if err := bridge.Decode(ctx, w.Value, &p); err != nil {
			return payloadErr(typ, "Value", "value", err)
		}
		val = p
	case ElementMultiSelect:
		ps := MultiSelectValue{}
		if w.Value != nil {
			if err := bridge.Decode(ctx, w.Value, &ps); err != nil {
				return payloadErr(typ, "Value", "value", err)
			}
		}
		val = ps
	case ElementInput:
		if w.Value == nil {
			return missingErr(typ, "Value", "value")
		}
		var in InputValue
		if err := bridge.Decode(ctx, w.Value, &in); err != nil {
			return payloadErr(typ, "Value", "value", err)
		}
		val = in
	case ElementDatePicker:
		var d DatePickerValue
		if w.Value != nil {
			if err := bridge.Decode(ctx, w.Value, &d); err != nil {
				return payloadErr(typ, "Value", "value", err)
			}
		}
		val = d
	default:
		return variantErr(typ, "ElementType", "element_type", string(w.ElementType))
	}

	*a = OnboardingStateUpdatedAction{
		ElementID: w.ElementID,
		Value:     val,
	}
	return nil
}

func kindName(v any) string {
	if v == nil {
		return "null"
	}
	if k, ok := bridge.KindOf(v); ok {
		return k.String()
	}
	return fmt.Sprintf("%T", v)
}
