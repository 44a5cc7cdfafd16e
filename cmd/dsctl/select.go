package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dense-identity/domainselection/internal/rpc"
	"github.com/dense-identity/domainselection/internal/telephony"
	"github.com/spf13/cobra"

	pb "github.com/dense-identity/domainselection/api/go/domainselection/v1"
)

type selectOptions struct {
	slotID     int
	subID      int
	sms        bool
	emergency  bool
	number     string
	callID     string
	scanResult string
	finish     bool
}

func (o selectOptions) attributes() telephony.SelectionAttributes {
	t := telephony.SelectorTypeCalling
	if o.sms {
		t = telephony.SelectorTypeSms
	}
	return telephony.SelectionAttributes{
		SlotID:       o.slotID,
		SubID:        o.subID,
		SelectorType: t,
		IsEmergency:  o.emergency,
		CallID:       o.callID,
		Address:      "tel:" + o.number,
	}
}

// newSelectCmd runs one selection and prints its events as JSON lines.
// Scan requests are answered from --scan-result when given.
func newSelectCmd(c *cli) *cobra.Command {
	var o selectOptions

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Run a domain selection and stream its events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var scan *pb.EmergencyRegistrationResult
			if o.scanResult != "" {
				scan = new(pb.EmergencyRegistrationResult)
				if err := readJSON(cmd, o.scanResult, scan); err != nil {
					return err
				}
			}
			client, err := c.dial(c.v.GetString(flagAddr))
			if err != nil {
				return err
			}
			defer client.Close()
			return runSelect(cmd, client, o, scan)
		},
	}
	cmd.Flags().IntVar(&o.slotID, "slot", 0, "SIM slot index")
	cmd.Flags().IntVar(&o.subID, "sub", telephony.InvalidSubID, "Subscription id")
	cmd.Flags().BoolVar(&o.sms, "sms", false, "Select for an SMS instead of a call")
	cmd.Flags().BoolVar(&o.emergency, "emergency", false, "Emergency request")
	cmd.Flags().StringVar(&o.number, "number", "911", "Destination number")
	cmd.Flags().StringVar(&o.callID, "call-id", "dsctl", "Call id")
	cmd.Flags().StringVar(&o.scanResult, "scan-result", "", "JSON registration result answering scan requests")
	cmd.Flags().BoolVar(&o.finish, "finish", true, "Finish the selection once a domain is chosen")
	return cmd
}

func runSelect(cmd *cobra.Command, client *rpc.Client, o selectOptions, scan *pb.EmergencyRegistrationResult) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	stream, err := client.SelectDomain(ctx, &pb.SelectDomainRequest{Attributes: rpc.AttributesToProto(o.attributes())})
	if err != nil {
		return err
	}
	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := writeJSON(cmd, ev); err != nil {
			return err
		}

		switch ev.GetKind() {
		case pb.EventKind_EVENT_KIND_SCAN_REQUESTED:
			if scan == nil {
				continue
			}
			if err := client.ReportScanResult(ctx, &pb.ScanResultRequest{
				SelectionId: ev.GetSelectionId(),
				ScanToken:   ev.GetScanToken(),
				Result:      scan,
			}); err != nil {
				return fmt.Errorf("report scan result: %w", err)
			}
		case pb.EventKind_EVENT_KIND_WLAN_SELECTED, pb.EventKind_EVENT_KIND_WWAN_SELECTED:
			if o.finish {
				if err := client.FinishSelection(ctx, ev.GetSelectionId()); err != nil {
					return fmt.Errorf("finish selection: %w", err)
				}
			}
		case pb.EventKind_EVENT_KIND_TERMINATED:
			return nil
		}
	}
}

func newFinishCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "finish <selection-id>",
		Short: "Finish a selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client *rpc.Client) error {
				return client.FinishSelection(ctx, args[0])
			})
		},
	}
}

func newCancelCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <selection-id>",
		Short: "Cancel a selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client *rpc.Client) error {
				return client.CancelSelection(ctx, args[0])
			})
		},
	}
}

func newScanResultCmd(c *cli) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "scan-result <selection-id> <scan-token>",
		Short: "Answer a pending emergency network scan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &pb.ScanResultRequest{SelectionId: args[0], ScanToken: args[1], Result: new(pb.EmergencyRegistrationResult)}
			if err := readJSON(cmd, file, req.Result); err != nil {
				return err
			}
			return c.withClient(cmd, func(ctx context.Context, client *rpc.Client) error {
				return client.ReportScanResult(ctx, req)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON registration result, - for stdin")
	return cmd
}
