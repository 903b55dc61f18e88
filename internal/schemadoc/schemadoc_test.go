package schemadoc_test

import (
	"embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danderson/bridge/internal/schemadoc"
)

//go:embed testdata
var golden embed.FS

type Price struct {
	Amount       float64 `wire:"amount,required"`
	CurrencyCode *string `wire:"currency_code"`
}

type Offer struct {
	ID      string         `wire:"offer_id,required"`
	Price   Price          `wire:"price,required"`
	Phases  []Price        `wire:"phases"`
	Data    map[string]any `wire:"data,document"`
	Count   *int           `wire:"limits.count"`
	Extra   any            `wire:"extra"`
	Android *OfferAndroid  `wire:",android"`
}

type OfferAndroid struct {
	Tags  []string `wire:"offer_tags,required"`
	Intro *Intro   `wire:"intro"`
}

type Intro struct {
	Price Price `wire:"price,required"`
	Days  int   `wire:"days,required"`
}

func TestTypes(t *testing.T) {
	goldenPath := filepath.Join("testdata", "offer")
	wantBs, err := golden.ReadFile(goldenPath)
	if err != nil {
		t.Errorf("reading golden file %q: %v", goldenPath, err)
	}
	want := string(wantBs)
	got, err := schemadoc.Types(reflect.TypeFor[Offer]())
	if err != nil {
		t.Fatalf("documenting Offer: %v", err)
	}
	if diff := cmp.Diff(strings.Split(got, "\n"), strings.Split(want, "\n")); diff != "" {
		gotPath := goldenPath + ".got"
		os.WriteFile(gotPath, []byte(got), 0600)
		t.Errorf("wrong schemadoc output (-got+want, got file written to %s):\n%s", gotPath, diff)
	}
}

func TestTypesErrors(t *testing.T) {
	if _, err := schemadoc.Types(); err == nil {
		t.Error("Types() succeeded, want error")
	}
	if _, err := schemadoc.Types(reflect.TypeFor[string](), reflect.TypeFor[[]int]()); err == nil {
		t.Error("Types of non-struct types succeeded, want error")
	}
}
