package main

import (
	"bytes"
	"context"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/dense-identity/domainselection/internal/rpc"
	"github.com/dense-identity/domainselection/internal/telephony"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protojson"

	pb "github.com/dense-identity/domainselection/api/go/domainselection/v1"
)

// fakeServer records pushed state and runs a scripted emergency selection.
type fakeServer struct {
	pb.UnimplementedDomainSelectionServer

	mu       sync.Mutex
	wifi     []bool
	modems   []int
	scans    []*pb.ScanResultRequest
	finished []string
	scanDone chan struct{}
}

func (f *fakeServer) UpdateWifi(_ context.Context, req *pb.WifiRequest) (*pb.Ack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wifi = append(f.wifi, req.GetAvailable())
	return &pb.Ack{}, nil
}

func (f *fakeServer) UpdateModemCount(_ context.Context, req *pb.ModemCountRequest) (*pb.Ack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modems = append(f.modems, int(req.GetCount()))
	return &pb.Ack{}, nil
}

func (f *fakeServer) ReportScanResult(_ context.Context, req *pb.ScanResultRequest) (*pb.Ack, error) {
	f.mu.Lock()
	f.scans = append(f.scans, req)
	f.mu.Unlock()
	close(f.scanDone)
	return &pb.Ack{}, nil
}

func (f *fakeServer) FinishSelection(_ context.Context, req *pb.SelectionRequest) (*pb.Ack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finished = append(f.finished, req.GetSelectionId())
	return &pb.Ack{}, nil
}

func (f *fakeServer) SelectDomain(req *pb.SelectDomainRequest, stream grpc.ServerStreamingServer[pb.SelectionEvent]) error {
	id := "sel-1"
	if err := stream.Send(&pb.SelectionEvent{SelectionId: id, Kind: pb.EventKind_EVENT_KIND_CREATED}); err != nil {
		return err
	}
	if !req.GetAttributes().GetIsEmergency() {
		return stream.Send(&pb.SelectionEvent{SelectionId: id, Kind: pb.EventKind_EVENT_KIND_WWAN_SELECTED, Domain: int32(telephony.DomainCS)})
	}
	if err := stream.Send(&pb.SelectionEvent{SelectionId: id, Kind: pb.EventKind_EVENT_KIND_SCAN_REQUESTED, ScanToken: "tok"}); err != nil {
		return err
	}
	select {
	case <-f.scanDone:
	case <-stream.Context().Done():
		return stream.Context().Err()
	}
	return stream.Send(&pb.SelectionEvent{SelectionId: id, Kind: pb.EventKind_EVENT_KIND_WWAN_SELECTED, Domain: int32(telephony.DomainPS), UseEmergencyPdn: true})
}

func startFake(t *testing.T) (*fakeServer, dialFunc) {
	t.Helper()
	fake := &fakeServer{scanDone: make(chan struct{})}
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterDomainSelectionServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	dial := func(string) (*rpc.Client, error) {
		return rpc.NewClient("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	}
	return fake, dial
}

func executeCLI(t *testing.T, dial dialFunc, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(dial)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUpdateReadsStdin(t *testing.T) {
	fake, dial := startFake(t)

	_, err := executeCLI(t, dial, `{"available": true}`, "update", "wifi")
	require.NoError(t, err)
	_, err = executeCLI(t, dial, `{"count": 2}`, "update", "modem-count", "-f", "-")
	require.NoError(t, err)

	assert.Equal(t, []bool{true}, fake.wifi)
	assert.Equal(t, []int{2}, fake.modems)
}

func TestUpdateRejectsUnknownKind(t *testing.T) {
	_, dial := startFake(t)
	_, err := executeCLI(t, dial, `{}`, "update", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown update kind "bogus"`)
}

func TestUpdateRejectsBadJSON(t *testing.T) {
	_, dial := startFake(t)
	_, err := executeCLI(t, dial, `{`, "update", "wifi")
	require.Error(t, err)
}

func TestSelectSmsFinishes(t *testing.T) {
	fake, dial := startFake(t)

	out, err := executeCLI(t, dial, "", "select", "--sms", "--sub", "1", "--number", "5551234")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	var ev pb.SelectionEvent
	require.NoError(t, protojson.Unmarshal([]byte(lines[1]), &ev))
	assert.Equal(t, pb.EventKind_EVENT_KIND_WWAN_SELECTED, ev.GetKind())
	assert.Equal(t, int32(telephony.DomainCS), ev.GetDomain())
	assert.Equal(t, []string{"sel-1"}, fake.finished)
}

func TestSelectAnswersScan(t *testing.T) {
	fake, dial := startFake(t)

	result := `{"access_network": 3, "reg_state": 1, "domain": 2}`
	out, err := executeCLI(t, dial, result, "select", "--emergency", "--sub", "1", "--scan-result", "-")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(strings.TrimSpace(out), "\n")+1)
	require.Len(t, fake.scans, 1)
	assert.Equal(t, "tok", fake.scans[0].GetScanToken())
	assert.Equal(t, "sel-1", fake.scans[0].GetSelectionId())
	assert.Equal(t, int32(telephony.EUTRAN), fake.scans[0].GetResult().GetAccessNetwork())
}
