package adapty

import (
	"context"
	"time"
)

// Profile is a user's profile, as last reported by the SDK.
type Profile struct {
	ProfileID      string  `wire:"profile_id,required"`
	CustomerUserID *string `wire:"customer_user_id"`
	// AccessLevels maps access level IDs to the user's access levels.
	AccessLevels map[string]AccessLevel `wire:"paid_access_levels"`
	// Subscriptions maps vendor product IDs to subscriptions.
	Subscriptions map[string]Subscription `wire:"subscriptions"`
	// NonSubscriptions maps vendor product IDs to all the purchases
	// of that product.
	NonSubscriptions map[string][]NonSubscription `wire:"non_subscriptions"`
	CustomAttributes map[string]any               `wire:"custom_attributes"`
}

// PostDecode defaults absent collections to empty maps.
func (p *Profile) PostDecode(ctx context.Context) error {
	if p.CustomAttributes == nil {
		p.CustomAttributes = map[string]any{}
	}
	if p.Subscriptions == nil {
		p.Subscriptions = map[string]Subscription{}
	}
	if p.NonSubscriptions == nil {
		p.NonSubscriptions = map[string][]NonSubscription{}
	}
	return nil
}

// OfferType is the kind of an introductory or promotional offer.
type OfferType string

const (
	OfferFreeTrial   OfferType = "free_trial"
	OfferPayAsYouGo  OfferType = "pay_as_you_go"
	OfferPayUpFront  OfferType = "pay_up_front"
	OfferUnknownType OfferType = "unknown"
)

// CancellationReason is why a subscription stopped renewing.
type CancellationReason string

const (
	CancelVoluntarilyCancelled CancellationReason = "voluntarily_cancelled"
	CancelBillingError         CancellationReason = "billing_error"
	CancelRefund               CancellationReason = "refund"
	CancelPriceIncrease        CancellationReason = "price_increase"
	CancelProductWasNotAvail   CancellationReason = "product_was_not_available"
	CancelUnknown              CancellationReason = "unknown"
)

// AccessLevel is a level of paid access granted to a user.
type AccessLevel struct {
	ID                          string              `wire:"id,required"`
	IsActive                    bool                `wire:"is_active,required"`
	VendorProductID             string              `wire:"vendor_product_id,required"`
	Store                       string              `wire:"store,required"`
	ActivatedAt                 time.Time           `wire:"activated_at,required"`
	RenewedAt                   *time.Time          `wire:"renewed_at"`
	ExpiresAt                   *time.Time          `wire:"expires_at"`
	IsLifetime                  bool                `wire:"is_lifetime,required"`
	ActiveIntroductoryOfferType *OfferType          `wire:"active_introductory_offer_type"`
	ActivePromotionalOfferType  *OfferType          `wire:"active_promotional_offer_type"`
	ActivePromotionalOfferID    *string             `wire:"active_promotional_offer_id"`
	WillRenew                   bool                `wire:"will_renew,required"`
	IsInGracePeriod             bool                `wire:"is_in_grace_period,required"`
	UnsubscribedAt              *time.Time          `wire:"unsubscribed_at"`
	BillingIssueDetectedAt      *time.Time          `wire:"billing_issue_detected_at"`
	StartsAt                    *time.Time          `wire:"starts_at"`
	CancellationReason          *CancellationReason `wire:"cancellation_reason"`
	IsRefund                    bool                `wire:"is_refund,required"`
	Android                     *AccessLevelAndroid `wire:",android"`
}

// AccessLevelAndroid holds the AccessLevel properties that only
// Android reports.
type AccessLevelAndroid struct {
	OfferID *string `wire:"offer_id"`
}

// Subscription is one of the user's auto-renewable subscriptions.
type Subscription struct {
	IsActive                    bool                `wire:"is_active,required"`
	VendorProductID             string              `wire:"vendor_product_id,required"`
	VendorTransactionID         string              `wire:"vendor_transaction_id,required"`
	VendorOriginalTransactionID string              `wire:"vendor_original_transaction_id,required"`
	Store                       string              `wire:"store,required"`
	ActivatedAt                 time.Time           `wire:"activated_at,required"`
	RenewedAt                   *time.Time          `wire:"renewed_at"`
	ExpiresAt                   *time.Time          `wire:"expires_at"`
	StartsAt                    *time.Time          `wire:"starts_at"`
	IsLifetime                  bool                `wire:"is_lifetime,required"`
	ActiveIntroductoryOfferType *OfferType          `wire:"active_introductory_offer_type"`
	ActivePromotionalOfferType  *OfferType          `wire:"active_promotional_offer_type"`
	ActivePromotionalOfferID    *string             `wire:"active_promotional_offer_id"`
	WillRenew                   bool                `wire:"will_renew,required"`
	IsInGracePeriod             bool                `wire:"is_in_grace_period,required"`
	UnsubscribedAt              *time.Time          `wire:"unsubscribed_at"`
	BillingIssueDetectedAt      *time.Time          `wire:"billing_issue_detected_at"`
	IsSandbox                   bool                `wire:"is_sandbox,required"`
	IsRefund                    bool                `wire:"is_refund,required"`
	CancellationReason          *CancellationReason `wire:"cancellation_reason"`
}

// NonSubscription is a purchase of a consumable or non-renewing
// product.
type NonSubscription struct {
	PurchaseID          string    `wire:"purchase_id,required"`
	Store               string    `wire:"store,required"`
	VendorProductID     string    `wire:"vendor_product_id,required"`
	VendorTransactionID *string   `wire:"vendor_transaction_id"`
	PurchasedAt         time.Time `wire:"purchased_at,required"`
	IsSandbox           bool      `wire:"is_sandbox,required"`
	IsRefund            bool      `wire:"is_refund,required"`
	IsConsumable        bool      `wire:"is_consumable,required"`
}

// Gender is a user's gender, as stored in profile parameters.
type Gender string

const (
	GenderFemale Gender = "f"
	GenderMale   Gender = "m"
	GenderOther  Gender = "o"
)

// ProfileParameters are user attributes sent to the SDK when updating
// a profile. Every parameter is optional.
type ProfileParameters struct {
	FirstName        *string        `wire:"first_name"`
	LastName         *string        `wire:"last_name"`
	Gender           *Gender        `wire:"gender"`
	Birthday         *string        `wire:"birthday"`
	Email            *string        `wire:"email"`
	PhoneNumber      *string        `wire:"phone_number"`
	ATTStatus        *int           `wire:"att_status"`
	CustomAttributes map[string]any `wire:"custom_attributes"`
	AnalyticsOff     *bool          `wire:"analytics_disabled"`
}
