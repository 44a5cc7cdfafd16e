package telephony

import "sync"

// DomainSelector is the handle the framework keeps for one selection.
type DomainSelector interface {
	ReselectDomain(attr SelectionAttributes)
	FinishSelection()
	CancelSelection()
}

// TransportSelectorCallback receives the outcome of a selection.
type TransportSelectorCallback interface {
	OnCreated(selector DomainSelector)
	OnWlanSelected(useEmergencyPdn bool)
	// OnWwanSelected hands the selector a WWAN callback once the framework
	// has prepared the cellular transport.
	OnWwanSelected(consumer func(WwanSelectorCallback))
	OnSelectionTerminated(cause DisconnectCause)
}

// WwanSelectorCallback drives the cellular side of a selection.
type WwanSelectorCallback interface {
	OnRequestEmergencyNetworkScan(preferred []AccessNetworkType, scanType ScanType,
		resetScan bool, signal *CancellationSignal, result func(EmergencyRegistrationResult))
	OnDomainSelected(domain Domain, useEmergencyPdn bool)
	OnCancel()
}

// CancellationSignal is the token of an in-flight network scan.
type CancellationSignal struct {
	mu       sync.Mutex
	canceled bool
	onCancel func()
}

func NewCancellationSignal() *CancellationSignal { return &CancellationSignal{} }

// Cancel marks the signal canceled and runs the listener once.
func (s *CancellationSignal) Cancel() {
	s.mu.Lock()
	if s.canceled {
		s.mu.Unlock()
		return
	}
	s.canceled = true
	fn := s.onCancel
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (s *CancellationSignal) IsCanceled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canceled
}

// SetOnCancelListener registers fn; it runs immediately if already canceled.
func (s *CancellationSignal) SetOnCancelListener(fn func()) {
	s.mu.Lock()
	if s.canceled {
		s.mu.Unlock()
		if fn != nil {
			fn()
		}
		return
	}
	s.onCancel = fn
	s.mu.Unlock()
}
