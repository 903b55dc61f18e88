package adapty

import (
	"context"

	"github.com/danderson/bridge"
)

// Placement describes where a paywall or onboarding is shown, and
// the audience and A/B test it was selected for.
type Placement struct {
	DeveloperID         string `wire:"developer_id,required"`
	ABTestName          string `wire:"ab_test_name,required"`
	AudienceName        string `wire:"audience_name,required"`
	Revision            int    `wire:"revision,required"`
	AudienceVersionID   string `wire:"placement_audience_version_id,required"`
	IsTrackingPurchases *bool  `wire:"is_tracking_purchases"`
}

// RemoteConfig is developer-defined configuration attached to a
// paywall or onboarding.
type RemoteConfig struct {
	Lang string `wire:"lang,required"`
	// Data is stored on the wire as a JSON document in a string.
	Data map[string]any `wire:"data,required,document"`
	// DataString is the JSON text of Data. It is empty when Data is
	// an empty object.
	DataString string `wire:"-"`
}

func (c *RemoteConfig) PostDecode(ctx context.Context) error {
	if len(c.Data) == 0 {
		c.DataString = ""
		return nil
	}
	s, err := bridge.EncodeDocument(c.Data)
	if err != nil {
		return err
	}
	c.DataString = s
	return nil
}

// PaywallBuilder identifies the visual configuration of a paywall.
type PaywallBuilder struct {
	ID   string `wire:"paywall_builder_id,required"`
	Lang string `wire:"lang,required"`
}

// ProductReference is a product offered by a paywall.
type ProductReference struct {
	VendorProductID string                   `wire:"vendor_product_id,required"`
	AdaptyProductID string                   `wire:"adapty_product_id,required"`
	IOS             *ProductReferenceIOS     `wire:",ios"`
	Android         *ProductReferenceAndroid `wire:",android"`
}

type ProductReferenceIOS struct {
	PromotionalOfferID *string `wire:"promotional_offer_id"`
	WinBackOfferID     *string `wire:"win_back_offer_id"`
}

type ProductReferenceAndroid struct {
	BasePlanID *string `wire:"base_plan_id"`
	OfferID    *string `wire:"offer_id"`
}

// Paywall is a paywall configured for a placement.
type Paywall struct {
	Placement Placement          `wire:"placement,required"`
	ID        string             `wire:"paywall_id,required"`
	Name      string             `wire:"paywall_name,required"`
	Products  []ProductReference `wire:"products,required"`
	// VariationID identifies the A/B test variation shown.
	VariationID       string          `wire:"variation_id,required"`
	RemoteConfig      *RemoteConfig   `wire:"remote_config"`
	ResponseCreatedAt *int64          `wire:"response_created_at"`
	Builder           *PaywallBuilder `wire:"paywall_builder"`
	WebPurchaseURL    *string         `wire:"web_purchase_url"`
	PayloadData       *string         `wire:"payload_data"`
	// HasViewConfiguration reports whether the paywall can be shown
	// with the SDK's paywall builder.
	HasViewConfiguration bool `wire:"-"`
}

func (p *Paywall) PostDecode(ctx context.Context) error {
	p.HasViewConfiguration = p.Builder != nil
	return nil
}

// OnboardingBuilder locates the content of an onboarding flow.
type OnboardingBuilder struct {
	ConfigURL string `wire:"config_url,required"`
	Lang      string `wire:"lang,required"`
}

// Onboarding is an onboarding flow configured for a placement.
type Onboarding struct {
	Placement            Placement          `wire:"placement,required"`
	ID                   string             `wire:"onboarding_id,required"`
	Name                 string             `wire:"onboarding_name,required"`
	VariationID          string             `wire:"variation_id,required"`
	RemoteConfig         *RemoteConfig      `wire:"remote_config"`
	ResponseCreatedAt    *int64             `wire:"response_created_at"`
	Builder              *OnboardingBuilder `wire:"onboarding_builder"`
	PayloadData          *string            `wire:"payload_data"`
	HasViewConfiguration bool               `wire:"-"`
}

func (o *Onboarding) PostDecode(ctx context.Context) error {
	o.HasViewConfiguration = o.Builder != nil
	return nil
}
