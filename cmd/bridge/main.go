package main

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"os/signal"
	"reflect"
	"regexp"
	"slices"
	"syscall"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/slice"
	"go.uber.org/zap"

	"github.com/danderson/bridge"
	"github.com/danderson/bridge/adapty"
	"github.com/danderson/bridge/internal/schemadoc"
)

var globalArgs struct {
	Platform string `flag:"platform,Platform that produced the wire data: ios or android"`
	Format   string `flag:"format,default=pretty,Output format: pretty or json or yaml"`
	Verbose  bool   `flag:"verbose,Log decoding steps to stderr"`
}

// setup returns the context and Dispatcher to use for decoding, as
// configured by the global flags.
func setup(env *command.Env) (context.Context, *adapty.Dispatcher, error) {
	ctx := env.Context()
	if globalArgs.Platform != "" {
		p, err := bridge.ParsePlatform(globalArgs.Platform)
		if err != nil {
			return nil, nil, env.Usagef("%v", err)
		}
		ctx = bridge.WithPlatform(ctx, p)
	}

	log := zap.NewNop()
	if globalArgs.Verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("creating logger: %w", err)
		}
	}
	return ctx, &adapty.Dispatcher{Logger: log}, nil
}

func main() {
	root := &command.C{
		Name:     "bridge",
		Usage:    "command args...",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "decode",
				Usage: "decode args...",
				Help: `Decode wire data read from stdin.

Use --platform to enforce the required properties of one platform's
data.`,
				Commands: []*command.C{
					{
						Name:  "result",
						Usage: "result tag",
						Help: `Decode a call result envelope.

The tag names the type of the success payload, see "bridge tags".
An error envelope is printed, and makes the command fail.`,
						Run: command.Adapt(runDecodeResult),
					},
					{
						Name:  "event",
						Usage: "event name",
						Help:  "Decode the payload of a named SDK event.",
						Run:   command.Adapt(runDecodeEvent),
					},
					{
						Name:  "paywall-event",
						Usage: "paywall-event",
						Help:  "Decode the payload of a paywall view event.",
						Run:   command.Adapt(runDecodePaywallEvent),
					},
					{
						Name:  "onboarding-event",
						Usage: "onboarding-event",
						Help:  "Decode the payload of an onboarding view event.",
						Run:   command.Adapt(runDecodeOnboardingEvent),
					},
				},
			},
			{
				Name:  "schema",
				Usage: "schema tag...",
				Help: `Show the wire schema of tagged payload types.

The schemas of all the struct types reachable from the tagged types are
shown as well. Types with a custom wire encoding have no schema.`,
				Run: runSchema,
			},
			{
				Name:  "tags",
				Usage: "tags [regexp]",
				Help:  "List result type tags, and the Go types they decode to.",
				Run:   runTags,
			},
			{
				Name:  "codes",
				Usage: "codes [regexp]",
				Help:  "List known error codes.",
				Run:   runCodes,
			},
			{
				Name:  "timestamp",
				Usage: "timestamp value",
				Help:  "Parse a wire timestamp, and print it in canonical form.",
				Run:   command.Adapt(runTimestamp),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx)
	command.RunOrFail(env, os.Args[1:])
}

func runDecodeResult(env *command.Env, tag string) error {
	ctx, d, err := setup(env)
	if err != nil {
		return err
	}
	defer d.Logger.Sync()

	raw, err := readInput()
	if err != nil {
		return err
	}
	v, err := d.ParseResult(ctx, raw, adapty.Tag(tag))
	var be *bridge.Error
	if errors.As(err, &be) {
		if err := emit(ctx, adapty.NativeError{Err: be}); err != nil {
			return err
		}
		return fmt.Errorf("call failed: %w", be)
	}
	return emit(ctx, v)
}

func runDecodeEvent(env *command.Env, name string) error {
	ctx, d, err := setup(env)
	if err != nil {
		return err
	}
	defer d.Logger.Sync()

	raw, err := readInput()
	if err != nil {
		return err
	}
	v, err := d.ParseCommonEvent(ctx, name, raw)
	if err != nil {
		return err
	}
	if v == nil {
		fmt.Fprintf(os.Stderr, "ignored unknown event %q\n", name)
		return nil
	}
	if be, ok := v.(*bridge.Error); ok {
		return emit(ctx, adapty.NativeError{Err: be})
	}
	return emit(ctx, v)
}

func runDecodePaywallEvent(env *command.Env) error {
	ctx, d, err := setup(env)
	if err != nil {
		return err
	}
	defer d.Logger.Sync()

	raw, err := readInput()
	if err != nil {
		return err
	}
	ev, err := d.ParsePaywallEvent(ctx, raw)
	if err != nil {
		return err
	}
	return emit(ctx, ev)
}

func runDecodeOnboardingEvent(env *command.Env) error {
	ctx, d, err := setup(env)
	if err != nil {
		return err
	}
	defer d.Logger.Sync()

	raw, err := readInput()
	if err != nil {
		return err
	}
	ev, err := d.ParseOnboardingEvent(ctx, raw)
	if err != nil {
		return err
	}
	if ev == nil {
		fmt.Fprintln(os.Stderr, "ignored non-onboarding event")
		return nil
	}
	return emit(ctx, ev)
}

func runSchema(env *command.Env) error {
	if len(env.Args) == 0 {
		return env.Usagef("schema requires at least one tag.")
	}
	var ts []reflect.Type
	for _, arg := range env.Args {
		t, err := adapty.TypeOf(adapty.Tag(arg))
		if err != nil {
			return err
		}
		if t == nil {
			fmt.Fprintf(os.Stderr, "%s is a primitive tag, skipping\n", arg)
			continue
		}
		ts = append(ts, t)
	}
	if len(ts) == 0 {
		return nil
	}
	doc, err := schemadoc.Types(ts...)
	if err != nil {
		return fmt.Errorf("documenting schemas: %w", err)
	}
	fmt.Print(doc)
	return nil
}

func runTags(env *command.Env) error {
	args := growTo(env.Args, 1)
	f, err := regexp.Compile(args[0])
	if err != nil {
		return err
	}
	tags := slices.Collect(slice.Select(adapty.Tags(), func(t adapty.Tag) bool {
		return f.MatchString(string(t))
	}))
	for _, tag := range tags {
		t, err := adapty.TypeOf(tag)
		if err != nil {
			return err
		}
		if t == nil {
			fmt.Printf("%s: (primitive)\n", tag)
		} else {
			fmt.Printf("%s: %s\n", tag, t)
		}
	}
	return nil
}

func runCodes(env *command.Env) error {
	args := growTo(env.Args, 1)
	f, err := regexp.Compile(args[0])
	if err != nil {
		return err
	}
	for c := range matchingCodes(f) {
		fmt.Printf("%d\t%s\n", int(c), c)
	}
	return nil
}

// matchingCodes yields the known error codes whose names match f, in
// numeric order.
func matchingCodes(f *regexp.Regexp) iter.Seq[bridge.ErrorCode] {
	return slice.Select(bridge.Codes(), func(c bridge.ErrorCode) bool {
		return f.MatchString(c.String())
	})
}

func runTimestamp(env *command.Env, value string) error {
	t, err := bridge.ParseTimestamp(value)
	if err != nil {
		return err
	}
	fmt.Println(bridge.FormatTimestamp(t))
	return nil
}
