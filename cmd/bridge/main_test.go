package main

import (
	"regexp"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danderson/bridge"
)

func TestMatchingCodes(t *testing.T) {
	tests := []struct {
		re   string
		want []bridge.ErrorCode
	}{
		{`^(de|en)codingFailed$`, []bridge.ErrorCode{bridge.CodeDecodingFailed, bridge.CodeEncodingFailed}},
		{`^cantMakePayments$`, []bridge.ErrorCode{bridge.CodeCantMakePayments}},
		{`^nothing$`, nil},
		{``, bridge.Codes()},
	}
	for _, tc := range tests {
		got := slices.Collect(matchingCodes(regexp.MustCompile(tc.re)))
		if diff := cmp.Diff(got, tc.want); diff != "" {
			t.Errorf("matchingCodes(%q) wrong result (-got+want):\n%s", tc.re, diff)
		}
	}
}
