package bridge_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/danderson/bridge"
)

type Price struct {
	Amount       float64 `wire:"amount,required"`
	CurrencyCode *string `wire:"currency_code"`
}

type Offer struct {
	ID      string        `wire:"offer_id,required"`
	Price   Price         `wire:"price,required"`
	Android *OfferAndroid `wire:",android"`
}

type OfferAndroid struct {
	Tags []string `wire:"offer_tags,required"`
}

func ExampleMarshal() {
	usd := "USD"
	bs, err := bridge.Marshal(context.Background(), Offer{
		ID:    "intro",
		Price: Price{Amount: 9.99, CurrencyCode: &usd},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(bs))
	// Output: {"offer_id":"intro","price":{"amount":9.99,"currency_code":"USD"}}
}

func ExampleDecode() {
	ctx := context.Background()
	wire := `{"offer_id": "intro", "price": {"amount": 1}, "offer_tags": ["a", "b"]}`

	var o Offer
	if err := bridge.Decode(ctx, wire, &o); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(o.ID, o.Price.Amount, o.Price.CurrencyCode == nil, o.Android.Tags)

	// Android data must carry the Android group's required properties.
	ctx = bridge.WithPlatform(ctx, bridge.PlatformAndroid)
	err := bridge.Decode(ctx, `{"offer_id": "x", "price": {"amount": 1}}`, &o)
	fmt.Println(err)
	fmt.Println(bridge.CodeOf(err), errors.Is(err, bridge.ErrMissingProperty))

	// Output:
	// intro 1 true [a b]
	// #2006 (decodingFailed): decoding bridge_test.Offer field Tags (offer_tags): missing required property
	// decodingFailed true
}
