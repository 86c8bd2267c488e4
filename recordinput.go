package bunnydns

// Ptr returns a pointer to v. It keeps literal values usable in the
// all-optional input structs below.
func Ptr[T any](v T) *T { return &v }

// RecordInput is the record payload for create and update requests. Every
// field is optional; nil fields are omitted from the request body entirely,
// which the API reads as "leave unchanged" on updates. Enumerated fields
// are sent as their integer wire codes.
type RecordInput struct {
	ID                     *int64
	Type                   *RecordType
	TTL                    *int
	Value                  *string
	Name                   *string
	Weight                 *int
	Priority               *int
	Flags                  *int
	Tag                    *string
	Port                   *int
	PullZoneID             *int64
	ScriptID               *int64
	Accelerated            *bool
	MonitorType            *MonitorType
	GeolocationLatitude    *float64
	GeolocationLongitude   *float64
	LatencyZone            *string
	SmartRoutingType       *SmartRoutingType
	Disabled               *bool
	EnvironmentalVariables []EnvironmentalVariable // nil omits; a non-nil empty slice is sent as []
	Comment                *string
	AutoSSLIssuance        *bool
}

// wirePayload builds the JSON body for the record. It validates bounded
// fields before emitting anything, so an invalid input never produces a
// partial mapping.
func (r RecordInput) wirePayload() (map[string]any, error) {
	if r.Flags != nil && (*r.Flags < 0 || *r.Flags > 255) {
		return nil, &ValidationError{msg: "flags must be between 0 and 255"}
	}

	body := map[string]any{}
	if r.ID != nil {
		body["Id"] = *r.ID
	}
	if r.Type != nil {
		code, err := enumCode("RecordType", *r.Type, recordTypeByCode)
		if err != nil {
			return nil, err
		}
		body["Type"] = code
	}
	if r.TTL != nil {
		body["Ttl"] = *r.TTL
	}
	if r.Value != nil {
		body["Value"] = *r.Value
	}
	if r.Name != nil {
		body["Name"] = *r.Name
	}
	if r.Weight != nil {
		body["Weight"] = *r.Weight
	}
	if r.Priority != nil {
		body["Priority"] = *r.Priority
	}
	if r.Flags != nil {
		body["Flags"] = *r.Flags
	}
	if r.Tag != nil {
		body["Tag"] = *r.Tag
	}
	if r.Port != nil {
		body["Port"] = *r.Port
	}
	if r.PullZoneID != nil {
		body["PullZoneId"] = *r.PullZoneID
	}
	if r.ScriptID != nil {
		body["ScriptId"] = *r.ScriptID
	}
	if r.Accelerated != nil {
		body["Accelerated"] = *r.Accelerated
	}
	if r.MonitorType != nil {
		code, err := enumCode("MonitorType", *r.MonitorType, monitorTypeByCode)
		if err != nil {
			return nil, err
		}
		body["MonitorType"] = code
	}
	if r.GeolocationLatitude != nil {
		body["GeolocationLatitude"] = *r.GeolocationLatitude
	}
	if r.GeolocationLongitude != nil {
		body["GeolocationLongitude"] = *r.GeolocationLongitude
	}
	if r.LatencyZone != nil {
		body["LatencyZone"] = *r.LatencyZone
	}
	if r.SmartRoutingType != nil {
		code, err := enumCode("SmartRoutingType", *r.SmartRoutingType, smartRoutingTypeByCode)
		if err != nil {
			return nil, err
		}
		body["SmartRoutingType"] = code
	}
	if r.Disabled != nil {
		body["Disabled"] = *r.Disabled
	}
	if r.EnvironmentalVariables != nil {
		// wire key misspelled by the vendor, see decodeDNSRecord
		envVars := make([]map[string]any, 0, len(r.EnvironmentalVariables))
		for _, ev := range r.EnvironmentalVariables {
			envVars = append(envVars, map[string]any{"Name": ev.Name, "Value": ev.Value})
		}
		body["EnviromentalVariables"] = envVars
	}
	if r.Comment != nil {
		body["Comment"] = *r.Comment
	}
	if r.AutoSSLIssuance != nil {
		body["AutoSslIssuance"] = *r.AutoSSLIssuance
	}
	return body, nil
}

// UpdateZoneOptions selects the zone settings to change. Nil fields are
// omitted from the request body and left unchanged by the API.
type UpdateZoneOptions struct {
	CustomNameserversEnabled      *bool
	Nameserver1                   *string
	Nameserver2                   *string
	SOAEmail                      *string
	LoggingEnabled                *bool
	LoggingIPAnonymizationEnabled *bool
	LogAnonymizationType          *LogAnonymizationType
	CertificateKeyType            *CertificateKeyType
}

func (o UpdateZoneOptions) wirePayload() (map[string]any, error) {
	body := map[string]any{}
	if o.CustomNameserversEnabled != nil {
		body["CustomNameserversEnabled"] = *o.CustomNameserversEnabled
	}
	if o.Nameserver1 != nil {
		body["Nameserver1"] = *o.Nameserver1
	}
	if o.Nameserver2 != nil {
		body["Nameserver2"] = *o.Nameserver2
	}
	if o.SOAEmail != nil {
		body["SoaEmail"] = *o.SOAEmail
	}
	if o.LoggingEnabled != nil {
		body["LoggingEnabled"] = *o.LoggingEnabled
	}
	if o.LoggingIPAnonymizationEnabled != nil {
		body["LoggingIPAnonymizationEnabled"] = *o.LoggingIPAnonymizationEnabled
	}
	if o.LogAnonymizationType != nil {
		code, err := enumCode("LogAnonymizationType", *o.LogAnonymizationType, logAnonymizationTypeByCode)
		if err != nil {
			return nil, err
		}
		body["LogAnonymizationType"] = code
	}
	if o.CertificateKeyType != nil {
		code, err := enumCode("CertificateKeyType", *o.CertificateKeyType, certificateKeyTypeByCode)
		if err != nil {
			return nil, err
		}
		body["CertificateKeyType"] = code
	}
	return body, nil
}
