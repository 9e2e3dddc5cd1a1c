package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobportal/client"
	"github.com/ecodeclub/jobportal/client/filter"
	"github.com/spf13/cobra"
)

func (c *cli) appsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"applications"},
		Short:   "Manage applications",
	}
	cmd.AddCommand(
		c.appsListCmd(),
		c.appsSearchCmd(),
		c.appsStatusCmd(),
		c.appsDeleteCmd(),
		c.appsExportCmd(),
		c.appsStatsCmd(),
	)
	return cmd
}

type listFlags struct {
	filter client.ApplicationFilter
	sortBy string
	order  string
}

func (f *listFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.filter.Position, "position", "", "职位")
	flags.StringVar(&f.filter.Status, "status", "", "状态："+strings.Join(client.Statuses, ", "))
	flags.StringVar(&f.sortBy, "sort", "id", "排序字段")
	flags.StringVar(&f.order, "order", string(filter.Desc), "asc 或者 desc")
}

func (c *cli) appsListCmd() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apps, err := c.c.Apps.List(cmd.Context(), f.filter)
			if err != nil {
				return err
			}
			c.printApps(filter.SortBy(apps, f.sortBy, filter.Order(f.order)))
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

// appsSearchCmd 先按服务端条件拉取，再在本地搜索和过滤
func (c *cli) appsSearchCmd() *cobra.Command {
	var (
		f     listFlags
		where map[string]string
	)
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search applications by name, email or position",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apps, err := c.c.Apps.List(cmd.Context(), f.filter)
			if err != nil {
				return err
			}
			var term string
			if len(args) > 0 {
				term = args[0]
			}
			apps = filter.Apply(apps, term, filter.Filters(where))
			c.printApps(filter.SortBy(apps, f.sortBy, filter.Order(f.order)))
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().StringToStringVar(&where, "where", nil, "本地过滤，例如 --where college=IIT,year=2024")
	return cmd
}

func (c *cli) printApps(apps []client.Application) {
	if len(apps) == 0 {
		fmt.Fprintln(c.out, "No applications found")
		return
	}
	w := c.table("ID", "NAME", "EMAIL", "PHONE", "POSITION", "YEAR", "STATUS", "REFERRAL", "APPLIED")
	for _, a := range apps {
		referral := "-"
		if a.HasReferral {
			referral = a.ReferralName
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.Name, a.Email, a.Phone, a.Position, a.Year, a.EffectiveStatus(),
			referral, a.AppliedDate.Local().Format("2006-01-02 15:04"))
	}
	_ = w.Flush()
}

func (c *cli) appsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Update the status of an application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !slice.Contains(client.Statuses, args[1]) {
				return fmt.Errorf("invalid status %q, must be one of %s", args[1], strings.Join(client.Statuses, ", "))
			}
			app, err := c.c.Apps.UpdateStatus(cmd.Context(), id, args[1])
			if app.ID == 0 {
				return err
			}
			fmt.Fprintf(c.out, "Application %d is now %s\n", app.ID, app.EffectiveStatus())
			return c.refreshWarning(err)
		},
	}
}

func (c *cli) appsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an application and its resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err = c.c.Apps.Delete(cmd.Context(), id, c.confirm); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Application %d deleted\n", id)
			return nil
		},
	}
}

func (c *cli) appsExportCmd() *cobra.Command {
	var position, dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download applications as an Excel file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.c.Apps.ExportExcel(cmd.Context(), position, client.DirSaver{Dir: dir})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Saved to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&position, "position", "all", "只导出这个职位")
	cmd.Flags().StringVar(&dir, "dir", ".", "保存目录")
	return cmd
}

func (c *cli) appsStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show application statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := c.c.Apps.Statistics(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Total: %d\n", stats.Total)
			w := c.table("STATUS", "COUNT")
			for _, s := range client.Statuses {
				fmt.Fprintf(w, "%s\t%d\n", s, stats.ByStatus[s])
			}
			_ = w.Flush()
			if len(stats.ByPosition) > 0 {
				positions := make([]string, 0, len(stats.ByPosition))
				for p := range stats.ByPosition {
					positions = append(positions, p)
				}
				sort.Strings(positions)
				w = c.table("POSITION", "COUNT")
				for _, p := range positions {
					fmt.Fprintf(w, "%s\t%d\n", p, stats.ByPosition[p])
				}
				_ = w.Flush()
			}
			if len(stats.Recent) > 0 {
				fmt.Fprintln(c.out, "Recent:")
				c.printApps(stats.Recent)
			}
			return nil
		},
	}
}
