package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/dense-identity/domainselection/api/go/domainselection/v1"
)

// Client is a thin DomainSelection client used by dsctl and the tests.
type Client struct {
	conn  *grpc.ClientConn
	owned bool
	rpc   pb.DomainSelectionClient
}

// NewClient dials addr without transport security.
func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &Client{conn: conn, owned: true, rpc: pb.NewDomainSelectionClient(conn)}, nil
}

// NewClientFromConn wraps an existing connection. Close leaves conn open.
func NewClientFromConn(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn, rpc: pb.NewDomainSelectionClient(conn)}
}

func (c *Client) Close() error {
	if !c.owned {
		return nil
	}
	return c.conn.Close()
}

// SelectDomain opens a selection stream. Events arrive through Recv until
// the selection terminates or ctx is cancelled.
func (c *Client) SelectDomain(ctx context.Context, req *pb.SelectDomainRequest) (grpc.ServerStreamingClient[pb.SelectionEvent], error) {
	return c.rpc.SelectDomain(ctx, req)
}

func (c *Client) ReselectDomain(ctx context.Context, req *pb.ReselectDomainRequest) error {
	_, err := c.rpc.ReselectDomain(ctx, req)
	return err
}

func (c *Client) FinishSelection(ctx context.Context, id string) error {
	_, err := c.rpc.FinishSelection(ctx, &pb.SelectionRequest{SelectionId: id})
	return err
}

func (c *Client) CancelSelection(ctx context.Context, id string) error {
	_, err := c.rpc.CancelSelection(ctx, &pb.SelectionRequest{SelectionId: id})
	return err
}

func (c *Client) ReportScanResult(ctx context.Context, req *pb.ScanResultRequest) error {
	_, err := c.rpc.ReportScanResult(ctx, req)
	return err
}

func (c *Client) UpdateServiceState(ctx context.Context, req *pb.ServiceStateRequest) error {
	_, err := c.rpc.UpdateServiceState(ctx, req)
	return err
}

func (c *Client) UpdateBarringInfo(ctx context.Context, req *pb.BarringInfoRequest) error {
	_, err := c.rpc.UpdateBarringInfo(ctx, req)
	return err
}

func (c *Client) UpdateImsState(ctx context.Context, req *pb.ImsStateRequest) error {
	_, err := c.rpc.UpdateImsState(ctx, req)
	return err
}

func (c *Client) UpdateSimState(ctx context.Context, req *pb.SimStateRequest) error {
	_, err := c.rpc.UpdateSimState(ctx, req)
	return err
}

func (c *Client) UpdateWifi(ctx context.Context, available bool) error {
	_, err := c.rpc.UpdateWifi(ctx, &pb.WifiRequest{Available: available})
	return err
}

func (c *Client) UpdateEmergencyPdn(ctx context.Context, req *pb.EmergencyPdnRequest) error {
	_, err := c.rpc.UpdateEmergencyPdn(ctx, req)
	return err
}

func (c *Client) UpdateCallbackMode(ctx context.Context, req *pb.CallbackModeRequest) error {
	_, err := c.rpc.UpdateCallbackMode(ctx, req)
	return err
}

func (c *Client) UpdateCarrierConfig(ctx context.Context, req *pb.CarrierConfigRequest) error {
	_, err := c.rpc.UpdateCarrierConfig(ctx, req)
	return err
}

func (c *Client) UpdateModemCount(ctx context.Context, count int) error {
	_, err := c.rpc.UpdateModemCount(ctx, &pb.ModemCountRequest{Count: int32(count)})
	return err
}
