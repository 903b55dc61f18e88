package adapty

import (
	"context"
	"fmt"
	"time"

	"github.com/danderson/bridge"
)

// InstallationDetails describes the app installation that the SDK
// attributed to the user.
type InstallationDetails struct {
	InstallTime    time.Time `wire:"install_time,required"`
	AppLaunchCount int       `wire:"app_launch_count,required"`
	InstallID      *string   `wire:"install_id"`
	Payload        *string   `wire:"payload"`
}

// InstallationStatusKind is whether installation details are known.
type InstallationStatusKind string

const (
	InstallationDetermined    InstallationStatusKind = "determined"
	InstallationNotAvailable  InstallationStatusKind = "not_available"
	InstallationNotDetermined InstallationStatusKind = "not_determined"
)

// InstallationStatus is the status of installation attribution.
// Details is set if and only if Status is InstallationDetermined.
type InstallationStatus struct {
	Status  InstallationStatusKind
	Details *InstallationDetails
}

type installationStatusWire struct {
	Status  InstallationStatusKind `wire:"status,required"`
	Details *InstallationDetails   `wire:"details"`
}

func (InstallationStatus) WireKind() bridge.Kind { return bridge.KindObject }

func (s InstallationStatus) MarshalWire(ctx context.Context) (any, error) {
	w := installationStatusWire{Status: s.Status}
	switch s.Status {
	case InstallationDetermined:
		if s.Details == nil {
			return nil, fmt.Errorf("%s installation status without details", s.Status)
		}
		w.Details = s.Details
	case InstallationNotAvailable, InstallationNotDetermined:
	default:
		return nil, fmt.Errorf("unknown installation status %q", s.Status)
	}
	return bridge.Encode(ctx, w)
}

func (s *InstallationStatus) UnmarshalWire(ctx context.Context, wire any) error {
	var w installationStatusWire
	if err := bridge.Decode(ctx, wire, &w); err != nil {
		return err
	}
	const typ = "adapty.InstallationStatus"
	switch w.Status {
	case InstallationDetermined:
		if w.Details == nil {
			return missingErr(typ, "Details", "details")
		}
		*s = InstallationStatus{Status: w.Status, Details: w.Details}
	case InstallationNotAvailable, InstallationNotDetermined:
		*s = InstallationStatus{Status: w.Status}
	default:
		return variantErr(typ, "Status", "status", string(w.Status))
	}
	return nil
}
