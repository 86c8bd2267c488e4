package bunnydns

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The bunny.net API uses two wire representations for every enumerated
// field: a canonical string (e.g. "Redirect") on some endpoints and a dense
// integer code on others. The constant value of each member below IS the
// canonical wire string. Each enum carries two lookup tables: a symbolic
// name table used for case-insensitive parsing, and a *ByCode table with
// the vendor's integer codes. Codes are assigned explicitly and the tables
// are the source of truth; they are never derived from declaration order.

// RecordType identifies the type of a DNS record.
type RecordType string

// DNS record types supported by bunny.net.
const (
	RecordTypeA        RecordType = "A"
	RecordTypeAAAA     RecordType = "AAAA"
	RecordTypeCNAME    RecordType = "CNAME"
	RecordTypeTXT      RecordType = "TXT"
	RecordTypeMX       RecordType = "MX"
	RecordTypeRedirect RecordType = "Redirect"
	RecordTypeFlatten  RecordType = "Flatten"
	RecordTypePullZone RecordType = "PullZone"
	RecordTypeSRV      RecordType = "SRV"
	RecordTypeCAA      RecordType = "CAA"
	RecordTypePTR      RecordType = "PTR"
	RecordTypeScript   RecordType = "Script"
	RecordTypeNS       RecordType = "NS"
	RecordTypeSVCB     RecordType = "SVCB"
	RecordTypeHTTPS    RecordType = "HTTPS"
	RecordTypeTLSA     RecordType = "TLSA"
)

var recordTypeNames = map[string]RecordType{
	"A":        RecordTypeA,
	"AAAA":     RecordTypeAAAA,
	"CNAME":    RecordTypeCNAME,
	"TXT":      RecordTypeTXT,
	"MX":       RecordTypeMX,
	"REDIRECT": RecordTypeRedirect,
	"FLATTEN":  RecordTypeFlatten,
	"PULLZONE": RecordTypePullZone,
	"SRV":      RecordTypeSRV,
	"CAA":      RecordTypeCAA,
	"PTR":      RecordTypePTR,
	"SCRIPT":   RecordTypeScript,
	"NS":       RecordTypeNS,
	"SVCB":     RecordTypeSVCB,
	"HTTPS":    RecordTypeHTTPS,
	"TLSA":     RecordTypeTLSA,
}

var recordTypeByCode = map[int]RecordType{
	0:  RecordTypeA,
	1:  RecordTypeAAAA,
	2:  RecordTypeCNAME,
	3:  RecordTypeTXT,
	4:  RecordTypeMX,
	5:  RecordTypeRedirect,
	6:  RecordTypeFlatten,
	7:  RecordTypePullZone,
	8:  RecordTypeSRV,
	9:  RecordTypeCAA,
	10: RecordTypePTR,
	11: RecordTypeScript,
	12: RecordTypeNS,
	13: RecordTypeSVCB,
	14: RecordTypeHTTPS,
	15: RecordTypeTLSA,
}

// IsValid returns true if the RecordType is one of the supported types.
func (t RecordType) IsValid() bool { return isMember(t, recordTypeNames) }

// ParseRecordType converts a wire value (string or integer code) to a
// RecordType. A nil value yields the empty RecordType without error.
func ParseRecordType(v any) (RecordType, error) {
	return parseEnum("RecordType", recordTypeNames, v, recordTypeByCode)
}

// MonitorStatus is the health-monitor status of a DNS record.
type MonitorStatus string

// Monitor statuses reported by bunny.net.
const (
	MonitorStatusUnknown MonitorStatus = "Unknown"
	MonitorStatusOnline  MonitorStatus = "Online"
	MonitorStatusOffline MonitorStatus = "Offline"
)

var monitorStatusNames = map[string]MonitorStatus{
	"UNKNOWN": MonitorStatusUnknown,
	"ONLINE":  MonitorStatusOnline,
	"OFFLINE": MonitorStatusOffline,
}

var monitorStatusByCode = map[int]MonitorStatus{
	0: MonitorStatusUnknown,
	1: MonitorStatusOnline,
	2: MonitorStatusOffline,
}

// IsValid returns true if the MonitorStatus is one of the supported values.
func (s MonitorStatus) IsValid() bool { return isMember(s, monitorStatusNames) }

// ParseMonitorStatus converts a wire value to a MonitorStatus.
func ParseMonitorStatus(v any) (MonitorStatus, error) {
	return parseEnum("MonitorStatus", monitorStatusNames, v, monitorStatusByCode)
}

// MonitorType is the health-monitor type of a DNS record.
type MonitorType string

// Monitor types supported by bunny.net.
const (
	MonitorTypeNone    MonitorType = "None"
	MonitorTypePing    MonitorType = "Ping"
	MonitorTypeHTTP    MonitorType = "Http"
	MonitorTypeMonitor MonitorType = "Monitor"
)

var monitorTypeNames = map[string]MonitorType{
	"NONE":    MonitorTypeNone,
	"PING":    MonitorTypePing,
	"HTTP":    MonitorTypeHTTP,
	"MONITOR": MonitorTypeMonitor,
}

var monitorTypeByCode = map[int]MonitorType{
	0: MonitorTypeNone,
	1: MonitorTypePing,
	2: MonitorTypeHTTP,
	3: MonitorTypeMonitor,
}

// IsValid returns true if the MonitorType is one of the supported values.
func (t MonitorType) IsValid() bool { return isMember(t, monitorTypeNames) }

// ParseMonitorType converts a wire value to a MonitorType.
func ParseMonitorType(v any) (MonitorType, error) {
	return parseEnum("MonitorType", monitorTypeNames, v, monitorTypeByCode)
}

// SmartRoutingType is the smart routing mode of a DNS record.
type SmartRoutingType string

// Smart routing modes supported by bunny.net.
const (
	SmartRoutingTypeNone        SmartRoutingType = "None"
	SmartRoutingTypeLatency     SmartRoutingType = "Latency"
	SmartRoutingTypeGeolocation SmartRoutingType = "Geolocation"
)

var smartRoutingTypeNames = map[string]SmartRoutingType{
	"NONE":        SmartRoutingTypeNone,
	"LATENCY":     SmartRoutingTypeLatency,
	"GEOLOCATION": SmartRoutingTypeGeolocation,
}

var smartRoutingTypeByCode = map[int]SmartRoutingType{
	0: SmartRoutingTypeNone,
	1: SmartRoutingTypeLatency,
	2: SmartRoutingTypeGeolocation,
}

// IsValid returns true if the SmartRoutingType is one of the supported values.
func (t SmartRoutingType) IsValid() bool { return isMember(t, smartRoutingTypeNames) }

// ParseSmartRoutingType converts a wire value to a SmartRoutingType.
func ParseSmartRoutingType(v any) (SmartRoutingType, error) {
	return parseEnum("SmartRoutingType", smartRoutingTypeNames, v, smartRoutingTypeByCode)
}

// AccelerationStatus is the acceleration status of a DNS record.
type AccelerationStatus string

// Acceleration statuses reported by bunny.net.
const (
	AccelerationStatusNone       AccelerationStatus = "None"
	AccelerationStatusPending    AccelerationStatus = "Pending"
	AccelerationStatusProcessing AccelerationStatus = "Processing"
	AccelerationStatusCompleted  AccelerationStatus = "Completed"
	AccelerationStatusFailed     AccelerationStatus = "Failed"
)

var accelerationStatusNames = map[string]AccelerationStatus{
	"NONE":       AccelerationStatusNone,
	"PENDING":    AccelerationStatusPending,
	"PROCESSING": AccelerationStatusProcessing,
	"COMPLETED":  AccelerationStatusCompleted,
	"FAILED":     AccelerationStatusFailed,
}

var accelerationStatusByCode = map[int]AccelerationStatus{
	0: AccelerationStatusNone,
	1: AccelerationStatusPending,
	2: AccelerationStatusProcessing,
	3: AccelerationStatusCompleted,
	4: AccelerationStatusFailed,
}

// IsValid returns true if the AccelerationStatus is one of the supported values.
func (s AccelerationStatus) IsValid() bool { return isMember(s, accelerationStatusNames) }

// ParseAccelerationStatus converts a wire value to an AccelerationStatus.
func ParseAccelerationStatus(v any) (AccelerationStatus, error) {
	return parseEnum("AccelerationStatus", accelerationStatusNames, v, accelerationStatusByCode)
}

// LogAnonymizationType is the log anonymization mode of a DNS zone.
type LogAnonymizationType string

// Log anonymization modes supported by bunny.net.
const (
	LogAnonymizationTypeOneDigit LogAnonymizationType = "OneDigit"
	LogAnonymizationTypeDrop     LogAnonymizationType = "Drop"
)

var logAnonymizationTypeNames = map[string]LogAnonymizationType{
	"ONE_DIGIT": LogAnonymizationTypeOneDigit,
	"DROP":      LogAnonymizationTypeDrop,
}

var logAnonymizationTypeByCode = map[int]LogAnonymizationType{
	0: LogAnonymizationTypeOneDigit,
	1: LogAnonymizationTypeDrop,
}

// IsValid returns true if the LogAnonymizationType is one of the supported values.
func (t LogAnonymizationType) IsValid() bool { return isMember(t, logAnonymizationTypeNames) }

// ParseLogAnonymizationType converts a wire value to a LogAnonymizationType.
func ParseLogAnonymizationType(v any) (LogAnonymizationType, error) {
	return parseEnum("LogAnonymizationType", logAnonymizationTypeNames, v, logAnonymizationTypeByCode)
}

// CertificateKeyType is the private-key type used for automatic TLS
// certificates on a DNS zone.
type CertificateKeyType string

// Certificate key types supported by bunny.net.
const (
	CertificateKeyTypeECDSA CertificateKeyType = "Ecdsa"
	CertificateKeyTypeRSA   CertificateKeyType = "Rsa"
)

var certificateKeyTypeNames = map[string]CertificateKeyType{
	"ECDSA": CertificateKeyTypeECDSA,
	"RSA":   CertificateKeyTypeRSA,
}

var certificateKeyTypeByCode = map[int]CertificateKeyType{
	0: CertificateKeyTypeECDSA,
	1: CertificateKeyTypeRSA,
}

// IsValid returns true if the CertificateKeyType is one of the supported values.
func (t CertificateKeyType) IsValid() bool { return isMember(t, certificateKeyTypeNames) }

// ParseCertificateKeyType converts a wire value to a CertificateKeyType.
func ParseCertificateKeyType(v any) (CertificateKeyType, error) {
	return parseEnum("CertificateKeyType", certificateKeyTypeNames, v, certificateKeyTypeByCode)
}

func isMember[E ~string](v E, names map[string]E) bool {
	for _, m := range names {
		if m == v {
			return true
		}
	}
	return false
}

// parseEnum converts a raw wire value to an enum member. A nil raw value
// yields the zero member without error. Integers (including the integral
// number forms encoding/json produces) are resolved through byCode; strings
// are matched first against the canonical wire value (case-sensitive), then
// case-insensitively against the symbolic member name.
func parseEnum[E ~string](kind string, names map[string]E, raw any, byCode map[int]E) (E, error) {
	var zero E
	if raw == nil {
		return zero, nil
	}
	if code, ok := rawInt(raw); ok {
		if byCode != nil {
			if m, ok := byCode[code]; ok {
				return m, nil
			}
		}
		return zero, &DecodeError{msg: fmt.Sprintf("unrecognized integer code %d for %s", code, kind)}
	}
	if s, ok := raw.(string); ok {
		for _, m := range names {
			if string(m) == s {
				return m, nil
			}
		}
		if m, ok := names[strings.ToUpper(s)]; ok {
			return m, nil
		}
		return zero, &DecodeError{msg: fmt.Sprintf("unrecognized value %q for %s", s, kind)}
	}
	return zero, &DecodeError{msg: fmt.Sprintf("cannot convert %T to %s", raw, kind)}
}

// enumCode converts an enum member back to its integer wire code by
// scanning byCode for an entry equal to the member. Members without a code
// assignment fail rather than silently mapping to anything.
func enumCode[E ~string](kind string, member E, byCode map[int]E) (int, error) {
	for code, m := range byCode {
		if m == member {
			return code, nil
		}
	}
	return 0, &EncodeError{msg: fmt.Sprintf("no integer mapping for %s member %q", kind, string(member))}
}

// rawInt reports whether a decoded JSON value is an integer, accepting the
// integral forms encoding/json can produce for a number.
func rawInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	}
	return 0, false
}
