package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dense-identity/domainselection/internal/rpc"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"

	pb "github.com/dense-identity/domainselection/api/go/domainselection/v1"
)

// updateKinds maps an update subcommand argument to the RPC it drives.
var updateKinds = map[string]func(ctx context.Context, c *rpc.Client, decode func(proto.Message) error) error{
	"service-state": func(ctx context.Context, c *rpc.Client, decode func(proto.Message) error) error {
		req := new(pb.ServiceStateRequest)
		if err := decode(req); err != nil {
			return err
		}
		return c.UpdateServiceState(ctx, req)
	},
	"barring": func(ctx context.Context, c *rpc.Client, decode func(proto.Message) error) error {
		req := new(pb.BarringInfoRequest)
		if err := decode(req); err != nil {
			return err
		}
		return c.UpdateBarringInfo(ctx, req)
	},
	"ims": func(ctx context.Context, c *rpc.Client, decode func(proto.Message) error) error {
		req := new(pb.ImsStateRequest)
		if err := decode(req); err != nil {
			return err
		}
		return c.UpdateImsState(ctx, req)
	},
	"sim": func(ctx context.Context, c *rpc.Client, decode func(proto.Message) error) error {
		req := new(pb.SimStateRequest)
		if err := decode(req); err != nil {
			return err
		}
		return c.UpdateSimState(ctx, req)
	},
	"wifi": func(ctx context.Context, c *rpc.Client, decode func(proto.Message) error) error {
		req := new(pb.WifiRequest)
		if err := decode(req); err != nil {
			return err
		}
		return c.UpdateWifi(ctx, req.GetAvailable())
	},
	"emergency-pdn": func(ctx context.Context, c *rpc.Client, decode func(proto.Message) error) error {
		req := new(pb.EmergencyPdnRequest)
		if err := decode(req); err != nil {
			return err
		}
		return c.UpdateEmergencyPdn(ctx, req)
	},
	"callback-mode": func(ctx context.Context, c *rpc.Client, decode func(proto.Message) error) error {
		req := new(pb.CallbackModeRequest)
		if err := decode(req); err != nil {
			return err
		}
		return c.UpdateCallbackMode(ctx, req)
	},
	"carrier-config": func(ctx context.Context, c *rpc.Client, decode func(proto.Message) error) error {
		req := new(pb.CarrierConfigRequest)
		if err := decode(req); err != nil {
			return err
		}
		return c.UpdateCarrierConfig(ctx, req)
	},
	"modem-count": func(ctx context.Context, c *rpc.Client, decode func(proto.Message) error) error {
		req := new(pb.ModemCountRequest)
		if err := decode(req); err != nil {
			return err
		}
		return c.UpdateModemCount(ctx, int(req.GetCount()))
	},
}

func updateKindNames() []string {
	names := make([]string, 0, len(updateKinds))
	for name := range updateKinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newUpdateCmd(c *cli) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:       "update <kind>",
		Short:     "Push platform state read as protojson",
		Long:      "Push platform state read as protojson from --file (or stdin). Kinds: " + strings.Join(updateKindNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: updateKindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			call, ok := updateKinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown update kind %q", args[0])
			}
			return c.withClient(cmd, func(ctx context.Context, client *rpc.Client) error {
				return call(ctx, client, func(m proto.Message) error { return readJSON(cmd, file, m) })
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON request body, - for stdin")
	return cmd
}
