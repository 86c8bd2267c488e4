// Package bunnydns is a typed client for the bunny.net DNS API.
//
// It wraps the /dnszone endpoint family: zone and record management, zone
// file import/export, availability checks, and DNSSEC configuration.
//
//	client, err := bunnydns.New(bunnydns.Options{AccessKey: "your-api-key"})
//	if err != nil {
//		// ...
//	}
//	zones, err := client.ListZones(ctx, bunnydns.ListZonesOptions{})
//	for _, zone := range zones.Items {
//		fmt.Println(zone.Domain)
//	}
package bunnydns
