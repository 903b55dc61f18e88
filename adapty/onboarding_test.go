package adapty_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danderson/bridge"
	"github.com/danderson/bridge/adapty"
	"github.com/danderson/bridge/bridgetest"
)

func TestStateUpdatedActionDecode(t *testing.T) {
	tests := []struct {
		name    string
		wire    string
		want    adapty.OnboardingStateUpdatedAction
		wantErr string
	}{
		{
			name: "select",
			wire: `{"element_id": "e1", "element_type": "select", "value": {"id": "o1", "value": "v1", "label": "One"}}`,
			want: adapty.OnboardingStateUpdatedAction{
				ElementID: "e1",
				Value:     adapty.OnboardingStateParams{ID: "o1", Value: "v1", Label: "One"},
			},
		},
		{
			name: "multi_select",
			wire: `{"element_id": "e2", "element_type": "multi_select", "value": [{"id": "o1", "value": "v1", "label": "One"}, {"id": "o2", "value": "v2", "label": "Two"}]}`,
			want: adapty.OnboardingStateUpdatedAction{
				ElementID: "e2",
				Value: adapty.MultiSelectValue{
					{ID: "o1", Value: "v1", Label: "One"},
					{ID: "o2", Value: "v2", Label: "Two"},
				},
			},
		},
		{
			name: "multi_select empty",
			wire: `{"element_id": "e2", "element_type": "multi_select", "value": []}`,
			want: adapty.OnboardingStateUpdatedAction{
				ElementID: "e2",
				Value:     adapty.MultiSelectValue{},
			},
		},
		{
			name: "multi_select absent",
			wire: `{"element_id": "e2", "element_type": "multi_select"}`,
			want: adapty.OnboardingStateUpdatedAction{
				ElementID: "e2",
				Value:     adapty.MultiSelectValue{},
			},
		},
		{
			name: "input text",
			wire: `{"element_id": "e3", "element_type": "input", "value": {"type": "email", "value": "kit@example.com"}}`,
			want: adapty.OnboardingStateUpdatedAction{
				ElementID: "e3",
				Value:     adapty.InputValue{Type: adapty.InputEmail, Text: "kit@example.com"},
			},
		},
		{
			name: "input number",
			wire: `{"element_id": "e3", "element_type": "input", "value": {"type": "number", "value": 42}}`,
			want: adapty.OnboardingStateUpdatedAction{
				ElementID: "e3",
				Value:     adapty.InputValue{Type: adapty.InputNumber, Number: 42},
			},
		},
		{
			name: "date_picker year only",
			wire: `{"element_id": "e4", "element_type": "date_picker", "value": {"year": 1995}}`,
			want: adapty.OnboardingStateUpdatedAction{
				ElementID: "e4",
				Value:     adapty.DatePickerValue{Year: ptr(1995)},
			},
		},
		{
			name:    "unknown element",
			wire:    `{"element_id": "e5", "element_type": "slider", "value": 3}`,
			wantErr: `unknown element_type "slider"`,
		},
		{
			name:    "select without value",
			wire:    `{"element_id": "e1", "element_type": "select"}`,
			wantErr: "missing required property",
		},
		{
			name:    "multi_select not a list",
			wire:    `{"element_id": "e2", "element_type": "multi_select", "value": {"id": "o1"}}`,
			wantErr: "expected array",
		},
		{
			name:    "number input with text",
			wire:    `{"element_id": "e3", "element_type": "input", "value": {"type": "number", "value": "42"}}`,
			wantErr: "expected number",
		},
		{
			name:    "text input with number",
			wire:    `{"element_id": "e3", "element_type": "input", "value": {"type": "text", "value": 42}}`,
			wantErr: "expected string",
		},
		{
			name:    "missing discriminant",
			wire:    `{"element_id": "e3", "value": {}}`,
			wantErr: "element_type",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got adapty.OnboardingStateUpdatedAction
			err := bridge.Unmarshal(context.Background(), []byte(tc.wire), &got)
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("Unmarshal succeeded with %+v, want error", got)
				}
				if !strings.Contains(err.Error(), tc.wantErr) {
					t.Errorf("error %q does not contain %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("wrong action (-got+want):\n%s", diff)
			}
			if got.ElementType() != got.Value.ElementType() {
				t.Errorf("ElementType() = %q, want %q", got.ElementType(), got.Value.ElementType())
			}
		})
	}
}

func TestStateUpdatedActionEncode(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		in   adapty.OnboardingStateUpdatedAction
		want string
	}{
		{
			adapty.OnboardingStateUpdatedAction{
				ElementID: "e1",
				Value:     adapty.OnboardingStateParams{ID: "o1", Value: "v1", Label: "One"},
			},
			`{"element_id":"e1","element_type":"select","value":{"id":"o1","label":"One","value":"v1"}}`,
		},
		{
			adapty.OnboardingStateUpdatedAction{ElementID: "e2", Value: adapty.MultiSelectValue{}},
			`{"element_id":"e2","element_type":"multi_select","value":[]}`,
		},
		{
			adapty.OnboardingStateUpdatedAction{
				ElementID: "e3",
				Value:     adapty.InputValue{Type: adapty.InputNumber, Number: 1.5},
			},
			`{"element_id":"e3","element_type":"input","value":{"type":"number","value":1.5}}`,
		},
		{
			adapty.OnboardingStateUpdatedAction{
				ElementID: "e4",
				Value:     adapty.DatePickerValue{Month: ptr(5), Year: ptr(1995)},
			},
			`{"element_id":"e4","element_type":"date_picker","value":{"month":5,"year":1995}}`,
		},
	}
	for _, tc := range tests {
		got := bridgetest.RoundTrip(t, ctx, tc.in)
		if got != tc.want {
			t.Errorf("wire encoding of %+v:\n got: %s\nwant: %s", tc.in, got, tc.want)
		}
	}

	if _, err := bridge.Encode(ctx, adapty.OnboardingStateUpdatedAction{ElementID: "e"}); err == nil {
		t.Error("Encode of action without value succeeded, want error")
	}
	bad := adapty.OnboardingStateUpdatedAction{ElementID: "e", Value: adapty.InputValue{Type: "color"}}
	if _, err := bridge.Encode(ctx, bad); err == nil {
		t.Error("Encode of unknown input type succeeded, want error")
	}
}
