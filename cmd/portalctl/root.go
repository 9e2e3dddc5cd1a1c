package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ecodeclub/jobportal/client"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	defaultAPI = "http://localhost:8080"
	apiEnv     = "PORTAL_API"
)

type cli struct {
	api         string
	sessionFile string
	yes         bool
	verbose     bool
	timeout     time.Duration

	in  *bufio.Reader
	out io.Writer
	c   *client.Client
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	c := &cli{in: bufio.NewReader(in), out: out}
	root := &cobra.Command{
		Use:           "portalctl",
		Short:         "Manage jobs and applications of the job portal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}
	root.SetOut(out)
	flags := root.PersistentFlags()
	flags.StringVar(&c.api, "api", "", "后端地址，默认读取 PORTAL_API")
	flags.StringVar(&c.sessionFile, "session", defaultSessionFile(), "登录态保存的文件")
	flags.BoolVarP(&c.yes, "yes", "y", false, "跳过删除确认")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "打印请求日志")
	flags.DurationVar(&c.timeout, "timeout", 30*time.Second, "单个请求的超时时间")

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.healthCmd(),
		c.jobsCmd(),
		c.appsCmd(),
		c.applyCmd(),
	)
	return root
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".portalctl-session.json"
	}
	return filepath.Join(dir, "portalctl", "session.json")
}

func (c *cli) init() error {
	api := c.api
	if api == "" {
		// .env 不存在也没关系
		_ = godotenv.Load()
		api = os.Getenv(apiEnv)
	}
	if api == "" {
		api = defaultAPI
	}
	logger := zap.NewNop()
	if c.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
	}
	cl, err := client.New(strings.TrimRight(api, "/"),
		client.WithTokenStore(client.NewFileStore(c.sessionFile)),
		client.WithTimeout(c.timeout),
		client.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, "初始化客户端失败")
	}
	c.c = cl
	return nil
}

// confirm 实现 client.Confirm
func (c *cli) confirm(ctx context.Context, prompt string) bool {
	if c.yes {
		return true
	}
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (c *cli) table(header ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	return w
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func (c *cli) loginCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login as admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("PORTAL_PASSWORD")
			}
			if password == "" {
				fmt.Fprint(c.out, "Password: ")
				line, _ := c.in.ReadString('\n')
				password = strings.TrimSpace(line)
			}
			s, err := c.c.Session.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Logged in as %s\n", s.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "admin", "用户名")
	cmd.Flags().StringVarP(&password, "password", "p", "", "密码，也可以用 PORTAL_PASSWORD")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.c.Session.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Logged out")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.c.Session.IsAuthenticated() {
				fmt.Fprintln(c.out, "Not logged in")
				return nil
			}
			fmt.Fprintf(c.out, "%s (%s)\n", c.c.Session.Username(), c.c.Session.State())
			return nil
		},
	}
}

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the backend health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.c.Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "status: %s\ndatabase: %s\napplications: %d\n",
				h.Status, h.Database, h.ApplicationsCount)
			return nil
		},
	}
}
