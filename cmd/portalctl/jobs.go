package main

import (
	"fmt"
	"strings"

	"github.com/ecodeclub/jobportal/client"
	"github.com/ecodeclub/jobportal/client/filter"
	"github.com/spf13/cobra"
)

func (c *cli) jobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Manage job postings",
	}
	cmd.AddCommand(
		c.jobsListCmd(),
		c.jobsGetCmd(),
		c.jobsCreateCmd(),
		c.jobsUpdateCmd(),
		c.jobsToggleCmd(),
		c.jobsDeleteCmd(),
	)
	return cmd
}

func (c *cli) jobsListCmd() *cobra.Command {
	var (
		f      client.JobFilter
		search string
		sortBy string
		order  string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := c.c.Jobs.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			jobs = filter.Apply(jobs, search, nil)
			if sortBy != "" {
				jobs = filter.SortBy(jobs, sortBy, filter.Order(order))
			}
			c.printJobs(jobs)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.Type, "type", "", "职位类型，例如 Full-time")
	flags.StringVar(&f.Experience, "experience", "", "经验要求")
	flags.StringVar(&f.Status, "status", "", "Active 或者 Inactive")
	flags.StringVarP(&search, "search", "s", "", "按标题、公司、地点搜索")
	flags.StringVar(&sortBy, "sort", "", "排序字段")
	flags.StringVar(&order, "order", string(filter.Asc), "asc 或者 desc")
	return cmd
}

func (c *cli) printJobs(jobs []client.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(c.out, "No jobs found")
		return
	}
	w := c.table("ID", "TITLE", "COMPANY", "LOCATION", "TYPE", "EXPERIENCE", "STATUS")
	for _, j := range jobs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.Title, j.Company, j.Location, j.Type, j.Experience, j.Status)
	}
	_ = w.Flush()
}

func (c *cli) jobsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			j, err := c.c.Jobs.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			c.printJob(j)
			return nil
		},
	}
}

func (c *cli) printJob(j client.Job) {
	fmt.Fprintf(c.out, "#%d %s @ %s [%s]\n", j.ID, j.Title, j.Company, j.Status)
	fmt.Fprintf(c.out, "Location: %s\nType: %s\nExperience: %s\nSalary: %s\n",
		j.Location, j.Type, j.Experience, j.Salary)
	if j.Description != "" {
		fmt.Fprintf(c.out, "\n%s\n", j.Description)
	}
	for _, sec := range []struct {
		title string
		items []string
	}{
		{"Responsibilities", j.Responsibilities},
		{"Requirements", j.Requirements},
		{"Skills", j.Skills},
		{"Benefits", j.Benefits},
	} {
		if len(sec.items) == 0 {
			continue
		}
		fmt.Fprintf(c.out, "\n%s:\n", sec.title)
		for _, it := range sec.items {
			fmt.Fprintf(c.out, "  - %s\n", it)
		}
	}
}

func bindDraftFlags(cmd *cobra.Command, d *client.JobDraft) {
	flags := cmd.Flags()
	flags.StringVar(&d.Title, "title", "", "标题")
	flags.StringVar(&d.Company, "company", "", "公司")
	flags.StringVar(&d.Location, "location", "", "地点")
	flags.StringVar(&d.Type, "type", "Full-time", "类型："+strings.Join(client.JobTypes, ", "))
	flags.StringVar(&d.Experience, "experience", "", "经验要求")
	flags.StringVar(&d.Salary, "salary", "", "薪资")
	flags.StringVar(&d.Description, "description", "", "描述")
	flags.StringArrayVar(&d.Responsibilities, "responsibility", nil, "职责，可以重复")
	flags.StringArrayVar(&d.Requirements, "requirement", nil, "要求，可以重复")
	flags.StringArrayVar(&d.Skills, "skill", nil, "技能，可以重复")
	flags.StringArrayVar(&d.Benefits, "benefit", nil, "福利，可以重复")
	flags.StringVar(&d.Status, "status", "", "Active 或者 Inactive")
}

func (c *cli) jobsCreateCmd() *cobra.Command {
	var d client.JobDraft
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := c.c.Jobs.Create(cmd.Context(), d)
			if j.ID == 0 {
				return err
			}
			fmt.Fprintf(c.out, "Job %d created\n", j.ID)
			return c.refreshWarning(err)
		},
	}
	bindDraftFlags(cmd, &d)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

// draftFromJob 更新时没有指定的字段沿用原来的值
func draftFromJob(j client.Job) client.JobDraft {
	return client.JobDraft{
		Title:            j.Title,
		Company:          j.Company,
		Location:         j.Location,
		Type:             j.Type,
		Experience:       j.Experience,
		Salary:           j.Salary,
		Description:      j.Description,
		Responsibilities: j.Responsibilities,
		Requirements:     j.Requirements,
		Skills:           j.Skills,
		Benefits:         j.Benefits,
		Status:           j.Status,
	}
}

func (c *cli) jobsUpdateCmd() *cobra.Command {
	var d client.JobDraft
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a job, only the given flags are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			old, err := c.c.Jobs.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			merged := draftFromJob(old)
			flags := cmd.Flags()
			for name, apply := range map[string]func(){
				"title":          func() { merged.Title = d.Title },
				"company":        func() { merged.Company = d.Company },
				"location":       func() { merged.Location = d.Location },
				"type":           func() { merged.Type = d.Type },
				"experience":     func() { merged.Experience = d.Experience },
				"salary":         func() { merged.Salary = d.Salary },
				"description":    func() { merged.Description = d.Description },
				"responsibility": func() { merged.Responsibilities = d.Responsibilities },
				"requirement":    func() { merged.Requirements = d.Requirements },
				"skill":          func() { merged.Skills = d.Skills },
				"benefit":        func() { merged.Benefits = d.Benefits },
				"status":         func() { merged.Status = d.Status },
			} {
				if flags.Changed(name) {
					apply()
				}
			}
			j, err := c.c.Jobs.Update(cmd.Context(), id, merged)
			if j.ID == 0 {
				return err
			}
			fmt.Fprintf(c.out, "Job %d updated\n", j.ID)
			return c.refreshWarning(err)
		},
	}
	bindDraftFlags(cmd, &d)
	return cmd
}

func (c *cli) jobsToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Switch a job between Active and Inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			j, err := c.c.Jobs.ToggleStatus(cmd.Context(), id)
			if j.ID == 0 {
				return err
			}
			fmt.Fprintf(c.out, "Job %d is now %s\n", j.ID, j.Status)
			return c.refreshWarning(err)
		},
	}
}

func (c *cli) jobsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err = c.c.Jobs.Delete(cmd.Context(), id, c.confirm); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Job %d deleted\n", id)
			return nil
		},
	}
}

// refreshWarning 写操作已经成功，只是之后的刷新失败
func (c *cli) refreshWarning(err error) error {
	if err != nil {
		fmt.Fprintln(c.out, "Warning: refresh failed:", err)
	}
	return nil
}
