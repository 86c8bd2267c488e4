package bunnydns

import "time"

// IPGeoLocationInfo holds geolocation and ASN information the API attaches
// to a record's resolved IP address.
type IPGeoLocationInfo struct {
	ASN              int64
	CountryCode      string
	Country          string
	OrganizationName string
	City             string
}

func decodeIPGeoLocationInfo(p payload) *IPGeoLocationInfo {
	if len(p) == 0 {
		return nil
	}
	return &IPGeoLocationInfo{
		ASN:              p.int64Or("ASN", 0),
		CountryCode:      p.stringOr("CountryCode", ""),
		Country:          p.stringOr("Country", ""),
		OrganizationName: p.stringOr("OrganizationName", ""),
		City:             p.stringOr("City", ""),
	}
}

// GeolocationInfo holds latitude/longitude geolocation information.
type GeolocationInfo struct {
	Latitude  float64
	Longitude float64
	Country   string
	City      string
}

func decodeGeolocationInfo(p payload) *GeolocationInfo {
	if len(p) == 0 {
		return nil
	}
	return &GeolocationInfo{
		Latitude:  p.floatOr("Latitude", 0),
		Longitude: p.floatOr("Longitude", 0),
		Country:   p.stringOr("Country", ""),
		City:      p.stringOr("City", ""),
	}
}

// EnvironmentalVariable is a name/value pair attached to a Script record.
type EnvironmentalVariable struct {
	Name  string
	Value string
}

func decodeEnvironmentalVariable(p payload) *EnvironmentalVariable {
	if len(p) == 0 {
		return nil
	}
	return &EnvironmentalVariable{
		Name:  p.stringOr("Name", ""),
		Value: p.stringOr("Value", ""),
	}
}

// DNSRecord is a single DNS record inside a zone. Fields the API omitted
// carry their zero value; nested objects and timestamps are nil when absent.
type DNSRecord struct {
	ID                     int64
	Type                   RecordType
	TTL                    int
	Value                  string
	Name                   string
	Weight                 int
	Priority               int
	Port                   int
	Flags                  int
	Tag                    string
	Accelerated            bool
	AcceleratedPullZoneID  int64
	LinkName               string
	IPGeoLocationInfo      *IPGeoLocationInfo
	GeolocationInfo        *GeolocationInfo
	MonitorStatus          MonitorStatus
	MonitorType            MonitorType
	GeolocationLatitude    float64
	GeolocationLongitude   float64
	EnvironmentalVariables []EnvironmentalVariable
	LatencyZone            string
	SmartRoutingType       SmartRoutingType
	Disabled               bool
	Comment                string
	AutoSSLIssuance        bool
	AccelerationStatus     AccelerationStatus
}

func decodeDNSRecord(p payload) (DNSRecord, error) {
	recordType, err := ParseRecordType(p["Type"])
	if err != nil {
		return DNSRecord{}, err
	}
	monitorStatus, err := ParseMonitorStatus(p["MonitorStatus"])
	if err != nil {
		return DNSRecord{}, err
	}
	monitorType, err := ParseMonitorType(p["MonitorType"])
	if err != nil {
		return DNSRecord{}, err
	}
	smartRoutingType, err := ParseSmartRoutingType(p["SmartRoutingType"])
	if err != nil {
		return DNSRecord{}, err
	}
	accelerationStatus, err := ParseAccelerationStatus(p["AccelerationStatus"])
	if err != nil {
		return DNSRecord{}, err
	}

	// "EnviromentalVariables" is misspelled on the wire; the vendor API
	// really does send it without the first "n". Elements that decode to
	// nothing contribute nothing.
	envVars := []EnvironmentalVariable{}
	for _, raw := range p.list("EnviromentalVariables") {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if ev := decodeEnvironmentalVariable(payload(m)); ev != nil {
			envVars = append(envVars, *ev)
		}
	}

	return DNSRecord{
		ID:                     p.int64Or("Id", 0),
		Type:                   recordType,
		TTL:                    p.intOr("Ttl", 0),
		Value:                  p.stringOr("Value", ""),
		Name:                   p.stringOr("Name", ""),
		Weight:                 p.intOr("Weight", 0),
		Priority:               p.intOr("Priority", 0),
		Port:                   p.intOr("Port", 0),
		Flags:                  p.intOr("Flags", 0),
		Tag:                    p.stringOr("Tag", ""),
		Accelerated:            p.boolOr("Accelerated", false),
		AcceleratedPullZoneID:  p.int64Or("AcceleratedPullZoneId", 0),
		LinkName:               p.stringOr("LinkName", ""),
		IPGeoLocationInfo:      decodeIPGeoLocationInfo(p.object("IPGeoLocationInfo")),
		GeolocationInfo:        decodeGeolocationInfo(p.object("GeolocationInfo")),
		MonitorStatus:          monitorStatus,
		MonitorType:            monitorType,
		GeolocationLatitude:    p.floatOr("GeolocationLatitude", 0),
		GeolocationLongitude:   p.floatOr("GeolocationLongitude", 0),
		EnvironmentalVariables: envVars,
		LatencyZone:            p.stringOr("LatencyZone", ""),
		SmartRoutingType:       smartRoutingType,
		Disabled:               p.boolOr("Disabled", false),
		Comment:                p.stringOr("Comment", ""),
		AutoSSLIssuance:        p.boolOr("AutoSslIssuance", false),
		AccelerationStatus:     accelerationStatus,
	}, nil
}

// DNSZone is a single DNS zone and its records.
type DNSZone struct {
	ID                            int64
	Domain                        string
	Records                       []DNSRecord
	DateModified                  *time.Time
	DateCreated                   *time.Time
	NameserversDetected           bool
	CustomNameserversEnabled      bool
	Nameserver1                   string
	Nameserver2                   string
	SOAEmail                      string
	NameserversNextCheck          *time.Time
	LoggingEnabled                bool
	LoggingIPAnonymizationEnabled bool
	LogAnonymizationType          LogAnonymizationType
	DNSSECEnabled                 bool
	CertificateKeyType            CertificateKeyType
}

func decodeDNSZone(p payload) (DNSZone, error) {
	logAnonymizationType, err := ParseLogAnonymizationType(p["LogAnonymizationType"])
	if err != nil {
		return DNSZone{}, err
	}
	certificateKeyType, err := ParseCertificateKeyType(p["CertificateKeyType"])
	if err != nil {
		return DNSZone{}, err
	}
	dateModified, err := p.timestamp("DateModified")
	if err != nil {
		return DNSZone{}, err
	}
	dateCreated, err := p.timestamp("DateCreated")
	if err != nil {
		return DNSZone{}, err
	}
	nameserversNextCheck, err := p.timestamp("NameserversNextCheck")
	if err != nil {
		return DNSZone{}, err
	}

	records := []DNSRecord{}
	for _, raw := range p.list("Records") {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		record, err := decodeDNSRecord(payload(m))
		if err != nil {
			return DNSZone{}, err
		}
		records = append(records, record)
	}

	return DNSZone{
		ID:                            p.int64Or("Id", 0),
		Domain:                        p.stringOr("Domain", ""),
		Records:                       records,
		DateModified:                  dateModified,
		DateCreated:                   dateCreated,
		NameserversDetected:           p.boolOr("NameserversDetected", false),
		CustomNameserversEnabled:      p.boolOr("CustomNameserversEnabled", false),
		Nameserver1:                   p.stringOr("Nameserver1", ""),
		Nameserver2:                   p.stringOr("Nameserver2", ""),
		SOAEmail:                      p.stringOr("SoaEmail", ""),
		NameserversNextCheck:          nameserversNextCheck,
		LoggingEnabled:                p.boolOr("LoggingEnabled", false),
		LoggingIPAnonymizationEnabled: p.boolOr("LoggingIPAnonymizationEnabled", false),
		LogAnonymizationType:          logAnonymizationType,
		DNSSECEnabled:                 p.boolOr("DnsSecEnabled", false),
		CertificateKeyType:            certificateKeyType,
	}, nil
}

// DNSZoneList is one page of zones.
type DNSZoneList struct {
	CurrentPage  int
	TotalItems   int
	HasMoreItems bool
	Items        []DNSZone
}

func decodeDNSZoneList(p payload) (DNSZoneList, error) {
	items := []DNSZone{}
	for _, raw := range p.list("Items") {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		zone, err := decodeDNSZone(payload(m))
		if err != nil {
			return DNSZoneList{}, err
		}
		items = append(items, zone)
	}
	return DNSZoneList{
		CurrentPage:  p.intOr("CurrentPage", 0),
		TotalItems:   p.intOr("TotalItems", 0),
		HasMoreItems: p.boolOr("HasMoreItems", false),
		Items:        items,
	}, nil
}

// DNSZoneImportResult reports the outcome of a zone file import.
type DNSZoneImportResult struct {
	RecordsSuccessful int
	RecordsFailed     int
	RecordsSkipped    int
}

func decodeDNSZoneImportResult(p payload) DNSZoneImportResult {
	return DNSZoneImportResult{
		RecordsSuccessful: p.intOr("RecordsSuccessful", 0),
		RecordsFailed:     p.intOr("RecordsFailed", 0),
		RecordsSkipped:    p.intOr("RecordsSkipped", 0),
	}
}

// DNSSECDSRecord is the DS record information returned when DNSSEC is
// enabled or disabled on a zone.
type DNSSECDSRecord struct {
	Enabled      bool
	DSRecord     string
	Digest       string
	DigestType   string
	Algorithm    int
	PublicKey    string
	KeyTag       int
	Flags        int
	DSConfigured bool
}

func decodeDNSSECDSRecord(p payload) DNSSECDSRecord {
	return DNSSECDSRecord{
		Enabled:      p.boolOr("Enabled", false),
		DSRecord:     p.stringOr("DsRecord", ""),
		Digest:       p.stringOr("Digest", ""),
		DigestType:   p.stringOr("DigestType", ""),
		Algorithm:    p.intOr("Algorithm", 0),
		PublicKey:    p.stringOr("PublicKey", ""),
		KeyTag:       p.intOr("KeyTag", 0),
		Flags:        p.intOr("Flags", 0),
		DSConfigured: p.boolOr("DsConfigured", false),
	}
}
