package bridge

import (
	"context"
	"fmt"
)

// Platform identifies which native platform produced, or will
// consume, wire data.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// ParsePlatform returns the Platform named by s.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(s); p {
	case PlatformIOS, PlatformAndroid:
		return p, nil
	default:
		return "", fmt.Errorf("unknown platform %q", s)
	}
}

type platformContextKey struct{}

// WithPlatform returns a copy of ctx that decodes wire data as
// originating from platform p. Required properties of a platform
// group are only enforced when decoding with a matching platform.
func WithPlatform(ctx context.Context, p Platform) context.Context {
	return context.WithValue(ctx, platformContextKey{}, p)
}

// ContextPlatform returns the platform set by [WithPlatform], if any.
func ContextPlatform(ctx context.Context) (Platform, bool) {
	v := ctx.Value(platformContextKey{})
	if v == nil {
		return "", false
	}
	if ret, ok := v.(Platform); ok {
		return ret, true
	}
	return "", false
}

type nestedContextKey struct{}

// withNested marks ctx as being inside an in-progress Encode or
// Decode call, so that nested calls made by custom converters report
// their raw errors to the outer call.
func withNested(ctx context.Context) context.Context {
	if isNested(ctx) {
		return ctx
	}
	return context.WithValue(ctx, nestedContextKey{}, true)
}

func isNested(ctx context.Context) bool {
	v, _ := ctx.Value(nestedContextKey{}).(bool)
	return v
}
