package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/haukened/bunnydns"
)

const (
	version = "0.1.0"
	appName = "bunnydns"
)

// app holds the shared state every subcommand needs.
type app struct {
	cfg    *appConfig
	logger *zap.Logger
	client *bunnydns.Client
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Manage bunny.net DNS zones and records",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Env, cfg.LogLevel)
			if err != nil {
				return err
			}
			client, err := bunnydns.New(bunnydns.Options{
				AccessKey: cfg.AccessKey,
				BaseURL:   cfg.BaseURL,
				Timeout:   time.Duration(cfg.Timeout) * time.Second,
				Logger:    logger,
			})
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			a.client = client
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.AddCommand(newZoneCmd(a))
	root.AddCommand(newRecordCmd(a))
	root.AddCommand(newDNSSECCmd(a))
	return root
}

func newZoneCmd(a *app) *cobra.Command {
	zone := &cobra.Command{
		Use:   "zone",
		Short: "Manage DNS zones",
	}

	var page, perPage int
	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List DNS zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			zones, err := a.client.ListZones(cmd.Context(), bunnydns.ListZonesOptions{
				Page:    page,
				PerPage: perPage,
				Search:  search,
			})
			if err != nil {
				return err
			}
			return printJSON(zones)
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page number")
	list.Flags().IntVar(&perPage, "per-page", 1000, "items per page (5-1000)")
	list.Flags().StringVar(&search, "search", "", "filter zones by domain name")

	get := &cobra.Command{
		Use:   "get <zone-id>",
		Short: "Show a DNS zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			z, err := a.client.GetZone(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(z)
		},
	}

	add := &cobra.Command{
		Use:   "add <domain>",
		Short: "Create a DNS zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := a.client.AddZone(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			a.logger.Info("zone created", zap.Int64("id", z.ID), zap.String("domain", z.Domain))
			return printJSON(z)
		},
	}

	del := &cobra.Command{
		Use:   "delete <zone-id>",
		Short: "Delete a DNS zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.client.DeleteZone(cmd.Context(), id); err != nil {
				return err
			}
			a.logger.Info("zone deleted", zap.Int64("id", id))
			return nil
		},
	}

	export := &cobra.Command{
		Use:   "export <zone-id>",
		Short: "Export a zone as a BIND zone file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			text, err := a.client.ExportZone(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	imp := &cobra.Command{
		Use:   "import <zone-id> <zone-file>",
		Short: "Import records from a BIND zone file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			result, err := a.client.ImportRecords(cmd.Context(), id, string(data))
			if err != nil {
				return err
			}
			a.logger.Info("zone file imported",
				zap.Int64("zone_id", id),
				zap.Int("successful", result.RecordsSuccessful),
				zap.Int("failed", result.RecordsFailed),
				zap.Int("skipped", result.RecordsSkipped),
			)
			return printJSON(result)
		},
	}

	check := &cobra.Command{
		Use:   "check <domain>",
		Short: "Check whether a zone can be added",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			available, err := a.client.CheckZoneAvailability(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), available)
			return nil
		},
	}

	zone.AddCommand(list, get, add, del, export, imp, check)
	return zone
}

func newRecordCmd(a *app) *cobra.Command {
	record := &cobra.Command{
		Use:   "record",
		Short: "Manage DNS records",
	}

	add := &cobra.Command{
		Use:   "add <zone-id>",
		Short: "Add a DNS record to a zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			input, err := recordInputFromFlags(cmd)
			if err != nil {
				return err
			}
			rec, err := a.client.AddRecord(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			a.logger.Info("record created", zap.Int64("zone_id", id), zap.Int64("record_id", rec.ID))
			return printJSON(rec)
		},
	}
	registerRecordFlags(add)

	update := &cobra.Command{
		Use:   "update <zone-id> <record-id>",
		Short: "Update a DNS record; only changed flags are sent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID, err := parseID(args[0])
			if err != nil {
				return err
			}
			recordID, err := parseID(args[1])
			if err != nil {
				return err
			}
			input, err := recordInputFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := a.client.UpdateRecord(cmd.Context(), zoneID, recordID, input); err != nil {
				return err
			}
			a.logger.Info("record updated", zap.Int64("zone_id", zoneID), zap.Int64("record_id", recordID))
			return nil
		},
	}
	registerRecordFlags(update)

	del := &cobra.Command{
		Use:   "delete <zone-id> <record-id>",
		Short: "Delete a DNS record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID, err := parseID(args[0])
			if err != nil {
				return err
			}
			recordID, err := parseID(args[1])
			if err != nil {
				return err
			}
			if err := a.client.DeleteRecord(cmd.Context(), zoneID, recordID); err != nil {
				return err
			}
			a.logger.Info("record deleted", zap.Int64("zone_id", zoneID), zap.Int64("record_id", recordID))
			return nil
		},
	}

	record.AddCommand(add, update, del)
	return record
}

func newDNSSECCmd(a *app) *cobra.Command {
	dnssec := &cobra.Command{
		Use:   "dnssec",
		Short: "Manage DNSSEC on a zone",
	}

	enable := &cobra.Command{
		Use:   "enable <zone-id>",
		Short: "Enable DNSSEC and print the DS record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ds, err := a.client.EnableDNSSEC(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(ds)
		},
	}

	disable := &cobra.Command{
		Use:   "disable <zone-id>",
		Short: "Disable DNSSEC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ds, err := a.client.DisableDNSSEC(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(ds)
		},
	}

	dnssec.AddCommand(enable, disable)
	return dnssec
}

// registerRecordFlags declares the record fields shared by add and update.
func registerRecordFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "", "record type (A, AAAA, CNAME, ...)")
	cmd.Flags().String("name", "", "record name")
	cmd.Flags().String("value", "", "record value")
	cmd.Flags().Int("ttl", 0, "time to live in seconds")
	cmd.Flags().Int("weight", 0, "record weight")
	cmd.Flags().Int("priority", 0, "record priority")
	cmd.Flags().Int("port", 0, "record port")
	cmd.Flags().Int("flags", 0, "CAA flags byte (0-255)")
	cmd.Flags().String("comment", "", "record comment")
	cmd.Flags().Bool("disabled", false, "disable the record")
}

// recordInputFromFlags builds a RecordInput carrying only the flags the
// user actually set, so updates leave everything else unchanged.
func recordInputFromFlags(cmd *cobra.Command) (bunnydns.RecordInput, error) {
	var input bunnydns.RecordInput
	flags := cmd.Flags()

	if flags.Changed("type") {
		raw, _ := flags.GetString("type")
		recordType, err := bunnydns.ParseRecordType(raw)
		if err != nil {
			return bunnydns.RecordInput{}, err
		}
		input.Type = &recordType
	}
	if flags.Changed("name") {
		v, _ := flags.GetString("name")
		input.Name = &v
	}
	if flags.Changed("value") {
		v, _ := flags.GetString("value")
		input.Value = &v
	}
	if flags.Changed("ttl") {
		v, _ := flags.GetInt("ttl")
		input.TTL = &v
	}
	if flags.Changed("weight") {
		v, _ := flags.GetInt("weight")
		input.Weight = &v
	}
	if flags.Changed("priority") {
		v, _ := flags.GetInt("priority")
		input.Priority = &v
	}
	if flags.Changed("port") {
		v, _ := flags.GetInt("port")
		input.Port = &v
	}
	if flags.Changed("flags") {
		v, _ := flags.GetInt("flags")
		input.Flags = &v
	}
	if flags.Changed("comment") {
		v, _ := flags.GetString("comment")
		input.Comment = &v
	}
	if flags.Changed("disabled") {
		v, _ := flags.GetBool("disabled")
		input.Disabled = &v
	}
	return input, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
