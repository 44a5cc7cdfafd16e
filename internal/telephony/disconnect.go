package telephony

import "fmt"

// DisconnectCause is the telephony-level reason a call ended or a selection terminated.
type DisconnectCause int

const (
	CauseNotValid             DisconnectCause = -1
	CauseNotDisconnected      DisconnectCause = 0
	CauseOutOfService         DisconnectCause = 18
	CauseIccError             DisconnectCause = 19
	CauseErrorUnspecified     DisconnectCause = 36
	CauseEmergencyTempFailure DisconnectCause = 63
	CauseEmergencyPermFailure DisconnectCause = 64
	CauseEmergencyCallBarred  DisconnectCause = 71
	CauseLocal                DisconnectCause = 3
)

var causeNames = map[DisconnectCause]string{
	CauseNotValid:             "NOT_VALID",
	CauseNotDisconnected:      "NOT_DISCONNECTED",
	CauseOutOfService:         "OUT_OF_SERVICE",
	CauseIccError:             "ICC_ERROR",
	CauseErrorUnspecified:     "ERROR_UNSPECIFIED",
	CauseEmergencyTempFailure: "EMERGENCY_TEMP_FAILURE",
	CauseEmergencyPermFailure: "EMERGENCY_PERM_FAILURE",
	CauseEmergencyCallBarred:  "EMERGENCY_CALL_BARRED",
	CauseLocal:                "LOCAL",
}

func (c DisconnectCause) String() string {
	if name, ok := causeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("DisconnectCause(%d)", int(c))
}

// ImsReasonCode is the IMS stack's reason for a failed PS call.
type ImsReasonCode int

const (
	ImsReasonUnspecified               ImsReasonCode = 0
	ImsReasonLocalNotRegistered        ImsReasonCode = 132
	ImsReasonLocalCallCsRetryRequired  ImsReasonCode = 146
	ImsReasonSipAlternateEmergencyCall ImsReasonCode = 1514
	ImsReasonEmergencyTempFailure      ImsReasonCode = 1516
	ImsReasonEmergencyPermFailure      ImsReasonCode = 1517
)

// ImsReasonInfo describes a PS call failure.
type ImsReasonInfo struct {
	Code         ImsReasonCode `json:"code"`
	ExtraCode    int           `json:"extra_code,omitempty"`
	ExtraMessage string        `json:"extra_message,omitempty"`
}
