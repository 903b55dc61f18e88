package adapty

// Price is a price in a store's currency.
type Price struct {
	Amount          float64 `wire:"amount,required"`
	CurrencyCode    *string `wire:"currency_code"`
	CurrencySymbol  *string `wire:"currency_symbol"`
	LocalizedString *string `wire:"localized_string"`
}

// PeriodUnit is the unit of a subscription period.
type PeriodUnit string

const (
	PeriodDay     PeriodUnit = "day"
	PeriodWeek    PeriodUnit = "week"
	PeriodMonth   PeriodUnit = "month"
	PeriodYear    PeriodUnit = "year"
	PeriodUnknown PeriodUnit = "unknown"
)

// SubscriptionPeriod is a length of time, such as "3 months".
type SubscriptionPeriod struct {
	Unit          PeriodUnit `wire:"unit,required"`
	NumberOfUnits int        `wire:"number_of_units,required"`
}

// PaymentMode is how the user pays during a discount phase.
type PaymentMode string

const (
	PaymentFreeTrial   PaymentMode = "free_trial"
	PaymentAsYouGo     PaymentMode = "pay_as_you_go"
	PaymentUpFront     PaymentMode = "pay_up_front"
	PaymentModeUnknown PaymentMode = "unknown"
)

// DiscountPhase is one phase of a subscription offer.
type DiscountPhase struct {
	Price                       Price              `wire:"price,required"`
	NumberOfPeriods             int                `wire:"number_of_periods,required"`
	PaymentMode                 PaymentMode        `wire:"payment_mode,required"`
	SubscriptionPeriod          SubscriptionPeriod `wire:"subscription_period,required"`
	LocalizedSubscriptionPeriod *string            `wire:"localized_subscription_period"`
	LocalizedNumberOfPeriods    *string            `wire:"localized_number_of_periods"`
}

// OfferIdentifier identifies a subscription offer.
type OfferIdentifier struct {
	Type OfferType `wire:"type,required"`
	ID   *string   `wire:"id"`
}

// SubscriptionOffer is a discount offer on a subscription product.
type SubscriptionOffer struct {
	Identifier OfferIdentifier           `wire:"offer_identifier,required"`
	Phases     []DiscountPhase           `wire:"phases,required"`
	Android    *SubscriptionOfferAndroid `wire:",android"`
}

type SubscriptionOfferAndroid struct {
	OfferTags []string `wire:"offer_tags"`
}

// SubscriptionDetails describes the subscription terms of a product.
type SubscriptionDetails struct {
	Period          SubscriptionPeriod          `wire:"period,required"`
	LocalizedPeriod *string                     `wire:"localized_period"`
	Offer           *SubscriptionOffer          `wire:"offer"`
	IOS             *SubscriptionDetailsIOS     `wire:",ios"`
	Android         *SubscriptionDetailsAndroid `wire:",android"`
}

type SubscriptionDetailsIOS struct {
	GroupIdentifier *string `wire:"group_identifier"`
}

type SubscriptionDetailsAndroid struct {
	BasePlanID  string  `wire:"base_plan_id,required"`
	RenewalType *string `wire:"renewal_type"`
}

// PaywallProduct is a store product offered by a paywall, with its
// localized store details.
type PaywallProduct struct {
	VendorProductID      string               `wire:"vendor_product_id,required"`
	AdaptyProductID      string               `wire:"adapty_product_id,required"`
	PaywallProductIndex  int                  `wire:"paywall_product_index,required"`
	LocalizedDescription string               `wire:"localized_description,required"`
	LocalizedTitle       string               `wire:"localized_title,required"`
	RegionCode           *string              `wire:"region_code"`
	VariationID          string               `wire:"paywall_variation_id,required"`
	PaywallABTestName    string               `wire:"paywall_ab_test_name,required"`
	PaywallName          string               `wire:"paywall_name,required"`
	Price                *Price               `wire:"price"`
	WebPurchaseURL       *string              `wire:"web_purchase_url"`
	PayloadData          *string              `wire:"payload_data"`
	Subscription         *SubscriptionDetails `wire:"subscription"`
	IOS                  *PaywallProductIOS   `wire:",ios"`
}

type PaywallProductIOS struct {
	IsFamilyShareable bool `wire:"is_family_shareable,required"`
}
