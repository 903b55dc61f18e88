package adapty

import (
	"context"
	"fmt"

	"github.com/danderson/bridge"
)

// PurchaseResultType is the outcome of a purchase.
type PurchaseResultType string

const (
	PurchaseSuccess       PurchaseResultType = "success"
	PurchaseUserCancelled PurchaseResultType = "user_cancelled"
	PurchasePending       PurchaseResultType = "pending"
)

// PurchaseResult is the result of a purchase. Profile is set if and
// only if Type is PurchaseSuccess.
type PurchaseResult struct {
	Type    PurchaseResultType
	Profile *Profile
}

type purchaseResultWire struct {
	Type    PurchaseResultType `wire:"type,required"`
	Profile *Profile           `wire:"profile"`
}

func (PurchaseResult) WireKind() bridge.Kind { return bridge.KindObject }

func (r PurchaseResult) MarshalWire(ctx context.Context) (any, error) {
	w := purchaseResultWire{Type: r.Type}
	switch r.Type {
	case PurchaseSuccess:
		if r.Profile == nil {
			return nil, fmt.Errorf("%s purchase result without a profile", r.Type)
		}
		w.Profile = r.Profile
	case PurchaseUserCancelled, PurchasePending:
	default:
		return nil, fmt.Errorf("unknown purchase result type %q", r.Type)
	}
	return bridge.Encode(ctx, w)
}

func (r *PurchaseResult) UnmarshalWire(ctx context.Context, wire any) error {
	var w purchaseResultWire
	if err := bridge.Decode(ctx, wire, &w); err != nil {
		return err
	}
	const typ = "adapty.PurchaseResult"
	switch w.Type {
	case PurchaseSuccess:
		if w.Profile == nil {
			return missingErr(typ, "Profile", "profile")
		}
		*r = PurchaseResult{Type: w.Type, Profile: w.Profile}
	case PurchaseUserCancelled, PurchasePending:
		*r = PurchaseResult{Type: w.Type}
	default:
		return variantErr(typ, "Type", "type", string(w.Type))
	}
	return nil
}
