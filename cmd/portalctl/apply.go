package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ecodeclub/jobportal/client"
	"github.com/ecodeclub/jobportal/client/wizard"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errInvalidForm = errors.New("application form has invalid fields")

// applyCmd 用命令行参数依次填写三个步骤再提交
func (c *cli) applyCmd() *cobra.Command {
	var (
		form       wizard.Form
		resumePath string
		maxSize    int64
	)
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Submit an application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if resumePath != "" {
				f, err := os.Open(resumePath)
				if err != nil {
					return errors.Wrap(err, "打开简历失败")
				}
				defer f.Close()
				info, err := f.Stat()
				if err != nil {
					return errors.Wrap(err, "读取简历失败")
				}
				form.Resume = &client.Resume{
					Filename: filepath.Base(resumePath),
					Size:     info.Size(),
					Content:  f,
				}
			}
			form.HasReferral = form.ReferralName != "" || form.ReferralEmail != ""

			w := wizard.New(form.Position, wizard.WithMaxResumeSize(maxSize))
			if err := w.Update(func(f *wizard.Form) { *f = form }); err != nil {
				return err
			}
			for w.Step() < wizard.StepResume {
				if !w.Next() {
					return c.printFormErrors(w)
				}
			}
			app, err := w.Submit(cmd.Context(), c.c.Apps)
			switch {
			case errors.Is(err, wizard.ErrInvalid):
				return c.printFormErrors(w)
			case err != nil:
				return err
			}
			fmt.Fprintf(c.out, "Application %d submitted for %s\n", app.ID, app.Position)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&form.Position, "position", "", "投递的职位")
	flags.StringVar(&form.Name, "name", "", "姓名")
	flags.StringVar(&form.Email, "email", "", "邮箱")
	flags.StringVar(&form.Phone, "phone", "", "手机号")
	flags.StringVar(&form.College, "college", "", "学校")
	flags.StringVar(&form.Degree, "degree", "", "学位")
	flags.StringVar(&form.Year, "year", "", "毕业年份")
	flags.StringVar(&form.Skills, "skills", "", "技能")
	flags.StringVar(&form.ReferralName, "referral-name", "", "推荐人姓名")
	flags.StringVar(&form.ReferralEmail, "referral-email", "", "推荐人邮箱")
	flags.StringVar(&resumePath, "resume", "", "简历文件，支持 pdf、doc、docx")
	flags.Int64Var(&maxSize, "max-resume-size", wizard.DefaultMaxResumeSize, "简历大小上限")
	_ = cmd.MarkFlagRequired("position")
	return cmd
}

func (c *cli) printFormErrors(w *wizard.Wizard) error {
	errs := w.Errors()
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	fmt.Fprintf(c.out, "Step %d has errors:\n", w.Step())
	for _, f := range fields {
		fmt.Fprintf(c.out, "  %s: %s\n", f, errs[f])
	}
	return errInvalidForm
}
