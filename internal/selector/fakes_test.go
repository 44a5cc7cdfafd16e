package selector

import (
	"github.com/dense-identity/domainselection/internal/telephony"
)

type scanRequest struct {
	networks []telephony.AccessNetworkType
	scanType telephony.ScanType
	reset    bool
	signal   *telephony.CancellationSignal
	result   func(telephony.EmergencyRegistrationResult)
}

type domainChoice struct {
	domain          telephony.Domain
	useEmergencyPdn bool
}

type fakeWwan struct {
	scans   []scanRequest
	domains []domainChoice
	cancels int
}

func (w *fakeWwan) OnRequestEmergencyNetworkScan(preferred []telephony.AccessNetworkType, scanType telephony.ScanType,
	resetScan bool, signal *telephony.CancellationSignal, result func(telephony.EmergencyRegistrationResult)) {
	w.scans = append(w.scans, scanRequest{preferred, scanType, resetScan, signal, result})
}

func (w *fakeWwan) OnDomainSelected(domain telephony.Domain, useEmergencyPdn bool) {
	w.domains = append(w.domains, domainChoice{domain, useEmergencyPdn})
}

func (w *fakeWwan) OnCancel() { w.cancels++ }

func (w *fakeWwan) lastScan() scanRequest { return w.scans[len(w.scans)-1] }

type fakeTransport struct {
	created      telephony.DomainSelector
	wlan         []bool
	terminated   []telephony.DisconnectCause
	wwanRequests int
	wwan         *fakeWwan
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{wwan: &fakeWwan{}}
}

func (t *fakeTransport) OnCreated(s telephony.DomainSelector) { t.created = s }

func (t *fakeTransport) OnWlanSelected(useEmergencyPdn bool) {
	t.wlan = append(t.wlan, useEmergencyPdn)
}

func (t *fakeTransport) OnWwanSelected(consumer func(telephony.WwanSelectorCallback)) {
	t.wwanRequests++
	consumer(t.wwan)
}

func (t *fakeTransport) OnSelectionTerminated(cause telephony.DisconnectCause) {
	t.terminated = append(t.terminated, cause)
}

type destroyRecorder struct{ destroyed []Selector }

func (d *destroyRecorder) OnDomainSelectorDestroyed(s Selector) { d.destroyed = append(d.destroyed, s) }
