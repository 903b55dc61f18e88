package adapty_test

import (
	"time"

	"github.com/danderson/bridge/adapty"
)

func ptr[T any](v T) *T { return &v }

var (
	activated = time.Date(2023, 1, 8, 9, 5, 59, 0, time.UTC)
	renewed   = time.Date(2023, 2, 8, 9, 5, 59, 123_000_000, time.UTC)
	expires   = time.Date(2023, 3, 8, 9, 5, 59, 0, time.UTC)
)

func sampleAccessLevel() adapty.AccessLevel {
	return adapty.AccessLevel{
		ID:                          "premium",
		IsActive:                    true,
		VendorProductID:             "monthly",
		Store:                       "play_store",
		ActivatedAt:                 activated,
		RenewedAt:                   &renewed,
		ExpiresAt:                   &expires,
		ActiveIntroductoryOfferType: ptr(adapty.OfferFreeTrial),
		WillRenew:                   true,
		CancellationReason:          ptr(adapty.CancelBillingError),
		Android:                     &adapty.AccessLevelAndroid{OfferID: ptr("intro")},
	}
}

func sampleSubscription() adapty.Subscription {
	return adapty.Subscription{
		IsActive:                    true,
		VendorProductID:             "monthly",
		VendorTransactionID:         "tx2",
		VendorOriginalTransactionID: "tx1",
		Store:                       "app_store",
		ActivatedAt:                 activated,
		ExpiresAt:                   &expires,
		WillRenew:                   true,
		IsSandbox:                   true,
	}
}

func sampleProfile() adapty.Profile {
	return adapty.Profile{
		ProfileID:      "abc",
		CustomerUserID: ptr("user-1"),
		AccessLevels: map[string]adapty.AccessLevel{
			"premium": sampleAccessLevel(),
		},
		Subscriptions: map[string]adapty.Subscription{
			"monthly": sampleSubscription(),
		},
		NonSubscriptions: map[string][]adapty.NonSubscription{
			"coins": {
				{
					PurchaseID:      "p1",
					Store:           "app_store",
					VendorProductID: "coins",
					PurchasedAt:     activated,
					IsConsumable:    true,
				},
				{
					PurchaseID:          "p2",
					Store:               "app_store",
					VendorProductID:     "coins",
					VendorTransactionID: ptr("tx3"),
					PurchasedAt:         expires,
					IsConsumable:        true,
					IsRefund:            true,
				},
			},
		},
		CustomAttributes: map[string]any{"level": 3.0, "nick": "kit"},
	}
}

func samplePrice() adapty.Price {
	return adapty.Price{
		Amount:          9.99,
		CurrencyCode:    ptr("USD"),
		CurrencySymbol:  ptr("$"),
		LocalizedString: ptr("$9.99"),
	}
}

func sampleProduct() adapty.PaywallProduct {
	price := samplePrice()
	return adapty.PaywallProduct{
		VendorProductID:      "monthly",
		AdaptyProductID:      "ap-1",
		PaywallProductIndex:  0,
		LocalizedDescription: "Monthly access",
		LocalizedTitle:       "Monthly",
		RegionCode:           ptr("US"),
		VariationID:          "var-1",
		PaywallABTestName:    "test",
		PaywallName:          "main",
		Price:                &price,
		Subscription: &adapty.SubscriptionDetails{
			Period:          adapty.SubscriptionPeriod{Unit: adapty.PeriodMonth, NumberOfUnits: 1},
			LocalizedPeriod: ptr("1 month"),
			Offer: &adapty.SubscriptionOffer{
				Identifier: adapty.OfferIdentifier{Type: adapty.OfferFreeTrial, ID: ptr("trial")},
				Phases: []adapty.DiscountPhase{
					{
						Price:              adapty.Price{Amount: 0},
						NumberOfPeriods:    1,
						PaymentMode:        adapty.PaymentFreeTrial,
						SubscriptionPeriod: adapty.SubscriptionPeriod{Unit: adapty.PeriodWeek, NumberOfUnits: 1},
					},
				},
			},
			IOS: &adapty.SubscriptionDetailsIOS{GroupIdentifier: ptr("group")},
		},
		IOS: &adapty.PaywallProductIOS{IsFamilyShareable: true},
	}
}

func samplePlacement() adapty.Placement {
	return adapty.Placement{
		DeveloperID:       "onboarding",
		ABTestName:        "test",
		AudienceName:      "everyone",
		Revision:          7,
		AudienceVersionID: "v1",
	}
}

func samplePaywall() adapty.Paywall {
	return adapty.Paywall{
		Placement: samplePlacement(),
		ID:        "pw-1",
		Name:      "main",
		Products: []adapty.ProductReference{
			{
				VendorProductID: "monthly",
				AdaptyProductID: "ap-1",
				IOS:             &adapty.ProductReferenceIOS{PromotionalOfferID: ptr("promo")},
			},
		},
		VariationID: "var-1",
		RemoteConfig: &adapty.RemoteConfig{
			Lang:       "en",
			Data:       map[string]any{"title": "Go premium"},
			DataString: `{"title":"Go premium"}`,
		},
		ResponseCreatedAt:    ptr(int64(1700000000000)),
		Builder:              &adapty.PaywallBuilder{ID: "pb-1", Lang: "en"},
		HasViewConfiguration: true,
	}
}
