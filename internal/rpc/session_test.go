package rpc

import (
	"testing"

	"github.com/dense-identity/domainselection/internal/telephony"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/dense-identity/domainselection/api/go/domainselection/v1"
)

func TestSessionKeepsEveryEventWhenReaderLags(t *testing.T) {
	sess := newSession(clockwork.NewFakeClock(), quiet)

	sess.OnCreated(nil)
	for i := 0; i < 500; i++ {
		sess.OnCancel()
	}
	sess.OnDomainSelected(telephony.DomainPS, true)
	sess.OnSelectionTerminated(telephony.CauseErrorUnspecified)

	select {
	case <-sess.ready:
	default:
		t.Fatal("ready not signalled")
	}
	events := sess.pending()
	require.Len(t, events, 503)
	assert.Equal(t, pb.EventKind_EVENT_KIND_CREATED, events[0].GetKind())
	assert.Equal(t, pb.EventKind_EVENT_KIND_WWAN_SELECTED, events[501].GetKind())
	assert.Equal(t, int32(telephony.DomainPS), events[501].GetDomain())
	assert.Equal(t, pb.EventKind_EVENT_KIND_TERMINATED, events[502].GetKind())
	for _, ev := range events {
		assert.Equal(t, sess.id, ev.GetSelectionId())
	}
	assert.Empty(t, sess.pending())
}

func TestSessionDiscardsAfterClose(t *testing.T) {
	sess := newSession(clockwork.NewFakeClock(), quiet)
	sess.close()
	sess.OnSelectionTerminated(telephony.CauseLocal)
	assert.Empty(t, sess.pending())
}

func TestScanTokenAnsweredOnce(t *testing.T) {
	sess := newSession(clockwork.NewFakeClock(), quiet)
	signal := telephony.NewCancellationSignal()

	var got []telephony.EmergencyRegistrationResult
	sess.OnRequestEmergencyNetworkScan([]telephony.AccessNetworkType{telephony.EUTRAN, telephony.UTRAN},
		telephony.ScanTypeNoPreference, false, signal, func(r telephony.EmergencyRegistrationResult) {
			got = append(got, r)
		})
	events := sess.pending()
	require.Len(t, events, 1)
	token := events[0].GetScanToken()
	assert.Equal(t, []int32{int32(telephony.EUTRAN), int32(telephony.UTRAN)}, events[0].GetNetworks())

	scan := sess.takeScan(token)
	require.NotNil(t, scan)
	scan.result(telephony.EmergencyRegistrationResult{AccessNetwork: telephony.EUTRAN})
	assert.Nil(t, sess.takeScan(token))
	require.Len(t, got, 1)

	// A cancel after the answer reports nothing.
	signal.Cancel()
	assert.Empty(t, sess.pending())
}
