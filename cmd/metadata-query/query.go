package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/apmstack/metadata-query/internal/config"
	"github.com/apmstack/metadata-query/internal/models"
	"github.com/apmstack/metadata-query/internal/services"
)

// queryRunner opens the store, runs fn and closes everything.
type queryRunner func(cmd *cobra.Command, fn func(ctx context.Context, srv *services.MetadataService) error) error

func newQueryCmd(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a single metadata query and print the result",
	}

	var window windowFlags
	window.register(cmd.PersistentFlags())

	run := func(cmd *cobra.Command, fn func(ctx context.Context, srv *services.MetadataService) error) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd.Context(), a.metadata)
	}

	cmd.AddCommand(
		newQueryBriefCmd(run, &window),
		newQueryServicesCmd(run, &window),
		newQueryServiceCmd(run),
		newQueryInstancesCmd(run, &window),
		newQueryBrowserServicesCmd(run, &window),
		newQueryDatabasesCmd(run),
		newQueryEndpointsCmd(run),
		newQueryCountCmd(run, &window),
	)
	return cmd
}

func newQueryBriefCmd(run queryRunner, window *windowFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "brief",
		Short: "Count services, endpoints, databases, caches and MQs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, srv *services.MetadataService) error {
				brief, err := srv.GlobalBrief(ctx, window.timeRange(time.Now()))
				if err != nil {
					return err
				}
				return printTable(cmd.OutOrStdout(), []string{"SERVICES", "ENDPOINTS", "DATABASES", "CACHES", "MQS"}, [][]string{{
					strconv.Itoa(brief.NumOfService),
					strconv.Itoa(brief.NumOfEndpoint),
					strconv.Itoa(brief.NumOfDatabase),
					strconv.Itoa(brief.NumOfCache),
					strconv.Itoa(brief.NumOfMQ),
				}})
			})
		},
	}
}

func newQueryServicesCmd(run queryRunner, window *windowFlags) *cobra.Command {
	var keyword string
	cmd := &cobra.Command{
		Use:   "services",
		Short: "List services alive in the window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, srv *services.MetadataService) error {
				list, err := srv.SearchServices(ctx, window.timeRange(time.Now()), keyword)
				if err != nil {
					return err
				}
				return printServices(cmd, list)
			})
		},
	}
	cmd.Flags().StringVar(&keyword, "keyword", "", "Only services whose name contains keyword")
	return cmd
}

func newQueryServiceCmd(run queryRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "service NAME",
		Short: "Look up a service by exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, srv *services.MetadataService) error {
				svc, err := srv.GetService(ctx, args[0])
				if err != nil {
					return err
				}
				return printServices(cmd, []models.Service{*svc})
			})
		},
	}
}

func newQueryInstancesCmd(run queryRunner, window *windowFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "instances SERVICE_ID",
		Short: "List the instances of a service alive in the window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid service id %q: %w", args[0], err)
			}
			return run(cmd, func(ctx context.Context, srv *services.MetadataService) error {
				instances, err := srv.GetServiceInstances(ctx, window.timeRange(time.Now()), serviceID)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(instances))
				for _, inst := range instances {
					attrs := make([]string, 0, len(inst.Attributes))
					for _, a := range inst.Attributes {
						attrs = append(attrs, a.Name+"="+a.Value)
					}
					rows = append(rows, []string{inst.ID, inst.Name, inst.InstanceUUID, string(inst.Language), strings.Join(attrs, ", ")})
				}
				return printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "UUID", "LANGUAGE", "ATTRIBUTES"}, rows)
			})
		},
	}
}

func newQueryBrowserServicesCmd(run queryRunner, window *windowFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browser-services",
		Short: "List browser services alive in the window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, srv *services.MetadataService) error {
				list, err := srv.GetAllBrowserServices(ctx, window.timeRange(time.Now()))
				if err != nil {
					return err
				}
				return printServices(cmd, list)
			})
		},
	}
}

func newQueryDatabasesCmd(run queryRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "databases",
		Short: "List conjectured databases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, srv *services.MetadataService) error {
				databases, err := srv.GetAllDatabases(ctx)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(databases))
				for _, d := range databases {
					rows = append(rows, []string{strconv.Itoa(d.ID), d.Name, d.Type})
				}
				return printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "TYPE"}, rows)
			})
		},
	}
}

func newQueryEndpointsCmd(run queryRunner) *cobra.Command {
	var (
		keyword string
		limit   int
	)
	cmd := &cobra.Command{
		Use:   "endpoints SERVICE_ID",
		Short: "Search the server side endpoints of a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid service id %q: %w", args[0], err)
			}
			return run(cmd, func(ctx context.Context, srv *services.MetadataService) error {
				endpoints, err := srv.SearchEndpoints(ctx, keyword, serviceID, limit)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(endpoints))
				for _, e := range endpoints {
					rows = append(rows, []string{e.ID, e.Name})
				}
				return printTable(cmd.OutOrStdout(), []string{"ID", "NAME"}, rows)
			})
		},
	}
	cmd.Flags().StringVar(&keyword, "keyword", "", "Only endpoints whose name contains keyword")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of distinct endpoints")
	return cmd
}

func newQueryCountCmd(run queryRunner, window *windowFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "count services|endpoints|NODE_TYPE",
		Short: "Count services, server side endpoints or services of a node type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, srv *services.MetadataService) error {
				var (
					n   int
					err error
				)
				switch args[0] {
				case "services":
					n, err = srv.NumOfServices(ctx, window.timeRange(time.Now()))
				case "endpoints":
					n, err = srv.NumOfEndpoints(ctx)
				default:
					var nodeType models.NodeType
					nodeType, err = models.ParseNodeType(args[0])
					if err == nil {
						n, err = srv.NumOfConjectural(ctx, nodeType)
					}
				}
				if err != nil {
					return err
				}
				return printTable(cmd.OutOrStdout(), []string{"TOTAL"}, [][]string{{strconv.Itoa(n)}})
			})
		},
	}
}

func printServices(cmd *cobra.Command, list []models.Service) error {
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{strconv.Itoa(s.ID), s.Name})
	}
	return printTable(cmd.OutOrStdout(), []string{"ID", "NAME"}, rows)
}
