package bridge

import (
	"context"
	"testing"
)

func TestContextPlatform(t *testing.T) {
	if got, ok := ContextPlatform(context.Background()); ok {
		t.Fatalf("got platform %q from context with no platform", got)
	}

	ctx := WithPlatform(context.Background(), PlatformAndroid)
	got, ok := ContextPlatform(ctx)
	if !ok {
		t.Fatal("platform not found in context")
	}
	if got != PlatformAndroid {
		t.Fatalf("wrong platform, got %q want %q", got, PlatformAndroid)
	}

	ctx = WithPlatform(ctx, PlatformIOS)
	if got, _ := ContextPlatform(ctx); got != PlatformIOS {
		t.Fatalf("wrong platform after override, got %q want %q", got, PlatformIOS)
	}
}

func TestParsePlatform(t *testing.T) {
	for _, p := range []Platform{PlatformIOS, PlatformAndroid} {
		got, err := ParsePlatform(string(p))
		if err != nil {
			t.Errorf("ParsePlatform(%q) failed: %v", p, err)
		}
		if got != p {
			t.Errorf("ParsePlatform(%q) = %q", p, got)
		}
	}
	if _, err := ParsePlatform("windows"); err == nil {
		t.Errorf("ParsePlatform(windows) succeeded, want error")
	}
}

func TestNestedContext(t *testing.T) {
	ctx := context.Background()
	if isNested(ctx) {
		t.Fatal("background context is nested")
	}
	nested := withNested(ctx)
	if !isNested(nested) {
		t.Fatal("withNested context is not nested")
	}
	if withNested(nested) != nested {
		t.Error("withNested of a nested context allocated a new context")
	}
}
