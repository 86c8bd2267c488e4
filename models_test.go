package bunnydns

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixtures mirror real API payloads. Integer wire codes are used for the
// enumerated fields, as the zone endpoints do.

func sampleRecordData() payload {
	return payload{
		"Id":                    101,
		"Type":                  0,
		"Ttl":                   300,
		"Value":                 "1.2.3.4",
		"Name":                  "www",
		"Weight":                0,
		"Priority":              0,
		"Port":                  0,
		"Flags":                 0,
		"Tag":                   nil,
		"Accelerated":           false,
		"AcceleratedPullZoneId": 0,
		"LinkName":              nil,
		"IPGeoLocationInfo":     nil,
		"GeolocationInfo":       nil,
		"MonitorStatus":         0,
		"MonitorType":           0,
		"GeolocationLatitude":   0.0,
		"GeolocationLongitude":  0.0,
		"EnviromentalVariables": nil,
		"LatencyZone":           nil,
		"SmartRoutingType":      0,
		"Disabled":              false,
		"Comment":               "Test record",
		"AutoSslIssuance":       false,
		"AccelerationStatus":    0,
	}
}

func sampleRecordDataFull() payload {
	return payload{
		"Id":                    202,
		"Type":                  0,
		"Ttl":                   60,
		"Value":                 "5.6.7.8",
		"Name":                  "api",
		"Weight":                100,
		"Priority":              10,
		"Port":                  8080,
		"Flags":                 128,
		"Tag":                   "issue",
		"Accelerated":           true,
		"AcceleratedPullZoneId": 999,
		"LinkName":              "my-link",
		"IPGeoLocationInfo": map[string]any{
			"ASN":              13335,
			"CountryCode":      "US",
			"Country":          "United States",
			"OrganizationName": "Cloudflare Inc",
			"City":             "San Francisco",
		},
		"GeolocationInfo": map[string]any{
			"Latitude":  37.7749,
			"Longitude": -122.4194,
			"Country":   "United States",
			"City":      "San Francisco",
		},
		"MonitorStatus":        1,
		"MonitorType":          2,
		"GeolocationLatitude":  37.7749,
		"GeolocationLongitude": -122.4194,
		"EnviromentalVariables": []any{
			map[string]any{"Name": "ENV_KEY", "Value": "env_value"},
			map[string]any{"Name": "ANOTHER", "Value": "val2"},
		},
		"LatencyZone":        "europe",
		"SmartRoutingType":   1,
		"Disabled":           false,
		"Comment":            "Full record",
		"AutoSslIssuance":    true,
		"AccelerationStatus": 3,
	}
}

func sampleZoneData() payload {
	return payload{
		"Id":                            12345,
		"Domain":                        "example.com",
		"Records":                       []any{map[string]any(sampleRecordData())},
		"DateModified":                  "2024-01-15T10:30:00Z",
		"DateCreated":                   "2024-01-01T00:00:00Z",
		"NameserversDetected":           true,
		"CustomNameserversEnabled":      false,
		"Nameserver1":                   "ns1.bunny.net",
		"Nameserver2":                   "ns2.bunny.net",
		"SoaEmail":                      "admin@example.com",
		"NameserversNextCheck":          "2024-01-16T10:30:00Z",
		"LoggingEnabled":                true,
		"LoggingIPAnonymizationEnabled": true,
		"LogAnonymizationType":          0,
		"DnsSecEnabled":                 false,
		"CertificateKeyType":            0,
	}
}

func TestDecodeDNSRecord_Defaults(t *testing.T) {
	record, err := decodeDNSRecord(payload{})
	require.NoError(t, err)

	assert.Equal(t, int64(0), record.ID)
	assert.Equal(t, 0, record.TTL)
	assert.Equal(t, 0, record.Weight)
	assert.Equal(t, 0, record.Priority)
	assert.Equal(t, 0, record.Port)
	assert.Equal(t, 0, record.Flags)
	assert.Equal(t, 0.0, record.GeolocationLatitude)
	assert.Equal(t, 0.0, record.GeolocationLongitude)
	assert.False(t, record.Accelerated)
	assert.False(t, record.Disabled)
	assert.False(t, record.AutoSSLIssuance)
	assert.Equal(t, RecordType(""), record.Type)
	assert.Equal(t, MonitorStatus(""), record.MonitorStatus)
	assert.Empty(t, record.Value)
	assert.Nil(t, record.IPGeoLocationInfo)
	assert.Nil(t, record.GeolocationInfo)
	assert.NotNil(t, record.EnvironmentalVariables)
	assert.Len(t, record.EnvironmentalVariables, 0)
}

func TestDecodeDNSRecord_Sample(t *testing.T) {
	record, err := decodeDNSRecord(sampleRecordData())
	require.NoError(t, err)

	assert.Equal(t, int64(101), record.ID)
	assert.Equal(t, RecordTypeA, record.Type)
	assert.Equal(t, 300, record.TTL)
	assert.Equal(t, "1.2.3.4", record.Value)
	assert.Equal(t, "www", record.Name)
	assert.Equal(t, MonitorStatusUnknown, record.MonitorStatus)
	assert.Equal(t, MonitorTypeNone, record.MonitorType)
	assert.Equal(t, SmartRoutingTypeNone, record.SmartRoutingType)
	assert.Equal(t, AccelerationStatusNone, record.AccelerationStatus)
	assert.Equal(t, "Test record", record.Comment)
	assert.Nil(t, record.IPGeoLocationInfo)
	assert.Nil(t, record.GeolocationInfo)
	assert.Empty(t, record.EnvironmentalVariables)
}

func TestDecodeDNSRecord_Full(t *testing.T) {
	record, err := decodeDNSRecord(sampleRecordDataFull())
	require.NoError(t, err)

	assert.Equal(t, int64(202), record.ID)
	assert.Equal(t, 128, record.Flags)
	assert.Equal(t, "issue", record.Tag)
	assert.True(t, record.Accelerated)
	assert.Equal(t, int64(999), record.AcceleratedPullZoneID)
	assert.Equal(t, "my-link", record.LinkName)
	assert.Equal(t, MonitorStatusOnline, record.MonitorStatus)
	assert.Equal(t, MonitorTypeHTTP, record.MonitorType)
	assert.Equal(t, SmartRoutingTypeLatency, record.SmartRoutingType)
	assert.Equal(t, AccelerationStatusCompleted, record.AccelerationStatus)
	assert.Equal(t, "europe", record.LatencyZone)
	assert.True(t, record.AutoSSLIssuance)

	require.NotNil(t, record.IPGeoLocationInfo)
	assert.Equal(t, int64(13335), record.IPGeoLocationInfo.ASN)
	assert.Equal(t, "US", record.IPGeoLocationInfo.CountryCode)
	assert.Equal(t, "Cloudflare Inc", record.IPGeoLocationInfo.OrganizationName)

	require.NotNil(t, record.GeolocationInfo)
	assert.Equal(t, 37.7749, record.GeolocationInfo.Latitude)
	assert.Equal(t, -122.4194, record.GeolocationInfo.Longitude)
	assert.Equal(t, "San Francisco", record.GeolocationInfo.City)

	// list order is wire order
	require.Len(t, record.EnvironmentalVariables, 2)
	assert.Equal(t, EnvironmentalVariable{Name: "ENV_KEY", Value: "env_value"}, record.EnvironmentalVariables[0])
	assert.Equal(t, EnvironmentalVariable{Name: "ANOTHER", Value: "val2"}, record.EnvironmentalVariables[1])
}

func TestDecodeDNSRecord_SkipsEmptyEnvVars(t *testing.T) {
	record, err := decodeDNSRecord(payload{
		"EnviromentalVariables": []any{
			map[string]any{"Name": "KEEP", "Value": "v"},
			nil,
			map[string]any{},
			map[string]any{"Name": "ALSO", "Value": "w"},
		},
	})
	require.NoError(t, err)
	require.Len(t, record.EnvironmentalVariables, 2)
	assert.Equal(t, "KEEP", record.EnvironmentalVariables[0].Name)
	assert.Equal(t, "ALSO", record.EnvironmentalVariables[1].Name)
}

func TestDecodeDNSRecord_UnknownEnumFails(t *testing.T) {
	_, err := decodeDNSRecord(payload{"Type": 99})
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)

	_, err = decodeDNSRecord(payload{"MonitorStatus": "Sideways"})
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecodeDNSRecord_StringEnumValues(t *testing.T) {
	// some endpoints send the string form instead of the integer code
	record, err := decodeDNSRecord(payload{"Type": "Redirect", "MonitorType": "Http"})
	require.NoError(t, err)
	assert.Equal(t, RecordTypeRedirect, record.Type)
	assert.Equal(t, MonitorTypeHTTP, record.MonitorType)
}

func TestDecodeDNSZone_Sample(t *testing.T) {
	zone, err := decodeDNSZone(sampleZoneData())
	require.NoError(t, err)

	assert.Equal(t, int64(12345), zone.ID)
	assert.Equal(t, "example.com", zone.Domain)
	assert.Equal(t, LogAnonymizationTypeOneDigit, zone.LogAnonymizationType)
	assert.Equal(t, CertificateKeyTypeECDSA, zone.CertificateKeyType)
	assert.True(t, zone.NameserversDetected)
	assert.True(t, zone.LoggingEnabled)
	assert.False(t, zone.DNSSECEnabled)
	assert.Equal(t, "ns1.bunny.net", zone.Nameserver1)
	assert.Equal(t, "admin@example.com", zone.SOAEmail)

	require.Len(t, zone.Records, 1)
	assert.Equal(t, int64(101), zone.Records[0].ID)

	require.NotNil(t, zone.DateCreated)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), zone.DateCreated.UTC())
	require.NotNil(t, zone.DateModified)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), zone.DateModified.UTC())
	require.NotNil(t, zone.NameserversNextCheck)
}

func TestDecodeDNSZone_NullRecords(t *testing.T) {
	zone, err := decodeDNSZone(payload{"Id": 1, "Records": nil})
	require.NoError(t, err)
	assert.NotNil(t, zone.Records)
	assert.Len(t, zone.Records, 0)
}

func TestDecodeDNSZone_Defaults(t *testing.T) {
	zone, err := decodeDNSZone(payload{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), zone.ID)
	assert.Empty(t, zone.Domain)
	assert.Nil(t, zone.DateCreated)
	assert.Nil(t, zone.DateModified)
	assert.Nil(t, zone.NameserversNextCheck)
	assert.Equal(t, LogAnonymizationType(""), zone.LogAnonymizationType)
	assert.Equal(t, CertificateKeyType(""), zone.CertificateKeyType)
	assert.NotNil(t, zone.Records)
}

func TestDecodeDNSZone_MalformedTimestamp(t *testing.T) {
	_, err := decodeDNSZone(payload{"DateCreated": "not-a-date"})
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Error(), "malformed timestamp")
}

func TestDecodeDNSZone_TimestampWithoutZone(t *testing.T) {
	zone, err := decodeDNSZone(payload{"DateCreated": "2024-01-01T12:00:00"})
	require.NoError(t, err)
	require.NotNil(t, zone.DateCreated)
	assert.Equal(t, 12, zone.DateCreated.Hour())
}

func TestDecodeDNSZone_RecordEnumErrorPropagates(t *testing.T) {
	data := sampleZoneData()
	data["Records"] = []any{map[string]any{"Type": 99}}
	_, err := decodeDNSZone(data)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecodeDNSZoneList(t *testing.T) {
	list, err := decodeDNSZoneList(payload{
		"CurrentPage":  1,
		"TotalItems":   1,
		"HasMoreItems": false,
		"Items":        []any{map[string]any(sampleZoneData())},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, list.CurrentPage)
	assert.Equal(t, 1, list.TotalItems)
	assert.False(t, list.HasMoreItems)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "example.com", list.Items[0].Domain)
}

func TestDecodeDNSZoneList_Defaults(t *testing.T) {
	list, err := decodeDNSZoneList(payload{})
	require.NoError(t, err)
	assert.Equal(t, 0, list.CurrentPage)
	assert.NotNil(t, list.Items)
	assert.Len(t, list.Items, 0)
}

func TestDecodeDNSZoneImportResult(t *testing.T) {
	result := decodeDNSZoneImportResult(payload{
		"RecordsSuccessful": 10,
		"RecordsFailed":     2,
		"RecordsSkipped":    1,
	})
	assert.Equal(t, 10, result.RecordsSuccessful)
	assert.Equal(t, 2, result.RecordsFailed)
	assert.Equal(t, 1, result.RecordsSkipped)

	empty := decodeDNSZoneImportResult(payload{})
	assert.Equal(t, DNSZoneImportResult{}, empty)
}

func TestDecodeDNSSECDSRecord(t *testing.T) {
	ds := decodeDNSSECDSRecord(payload{
		"Enabled":      true,
		"DsRecord":     "example.com. 3600 IN DS 12345 13 2 ABCDEF...",
		"Digest":       "ABCDEF1234567890",
		"DigestType":   "SHA-256",
		"Algorithm":    13,
		"PublicKey":    "BASE64PUBLICKEY==",
		"KeyTag":       12345,
		"Flags":        257,
		"DsConfigured": false,
	})
	assert.True(t, ds.Enabled)
	assert.Equal(t, 13, ds.Algorithm)
	assert.Equal(t, 12345, ds.KeyTag)
	assert.Equal(t, 257, ds.Flags)
	assert.Equal(t, "SHA-256", ds.DigestType)
	assert.False(t, ds.DSConfigured)
}

func TestDecodeNestedObjects_EmptyMeansAbsent(t *testing.T) {
	assert.Nil(t, decodeIPGeoLocationInfo(nil))
	assert.Nil(t, decodeIPGeoLocationInfo(payload{}))
	assert.Nil(t, decodeGeolocationInfo(nil))
	assert.Nil(t, decodeGeolocationInfo(payload{}))
	assert.Nil(t, decodeEnvironmentalVariable(nil))
	assert.Nil(t, decodeEnvironmentalVariable(payload{}))

	geo := decodeGeolocationInfo(payload{"Country": "Iceland"})
	require.NotNil(t, geo)
	assert.Equal(t, 0.0, geo.Latitude)
	assert.Equal(t, "Iceland", geo.Country)
}

func TestDecode_FromRawJSON(t *testing.T) {
	// exercise the float64 number form encoding/json produces
	raw := `{
		"Id": 12345,
		"Domain": "example.com",
		"LogAnonymizationType": 0,
		"Records": [{"Id": 101, "Type": 0, "Ttl": 300}]
	}`
	var p payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	zone, err := decodeDNSZone(p)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), zone.ID)
	assert.Equal(t, LogAnonymizationTypeOneDigit, zone.LogAnonymizationType)
	require.Len(t, zone.Records, 1)
	assert.Equal(t, int64(101), zone.Records[0].ID)
	assert.Equal(t, RecordTypeA, zone.Records[0].Type)

	// repeated decodes of the same payload yield independent instances
	again, err := decodeDNSZone(p)
	require.NoError(t, err)
	assert.NotSame(t, &zone.Records[0], &again.Records[0])
}
