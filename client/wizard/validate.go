package wizard

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ecodeclub/jobportal/client"
)

// DefaultMaxResumeSize 简历大小上限，和后端保持一致
const DefaultMaxResumeSize int64 = 5 << 20

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	yearRegexp  = regexp.MustCompile(`^\d{4}$`)
	nonDigit    = regexp.MustCompile(`\D`)
	resumeExts  = []string{".pdf", ".doc", ".docx"}
	minYear     = 2000
	maxYear     = 2030
)

// Errors 字段名到错误信息
type Errors map[string]string

// Form 三个步骤的所有输入
type Form struct {
	Name          string
	Email         string
	Phone         string
	College       string
	Degree        string
	Year          string
	Skills        string
	Position      string
	HasReferral   bool
	ReferralName  string
	ReferralEmail string
	Resume        *client.Resume
}

func (f Form) submission() client.Submission {
	return client.Submission{
		Name:          strings.TrimSpace(f.Name),
		Email:         strings.TrimSpace(f.Email),
		Phone:         strings.TrimSpace(f.Phone),
		College:       strings.TrimSpace(f.College),
		Degree:        strings.TrimSpace(f.Degree),
		Year:          strings.TrimSpace(f.Year),
		Skills:        strings.TrimSpace(f.Skills),
		Position:      f.Position,
		HasReferral:   f.HasReferral,
		ReferralName:  strings.TrimSpace(f.ReferralName),
		ReferralEmail: strings.TrimSpace(f.ReferralEmail),
		Resume:        f.Resume,
	}
}

// ValidateStep 返回 step 这一步的错误，没有错误时返回空 map
func ValidateStep(step Step, f Form, maxResumeSize int64) Errors {
	errs := Errors{}
	switch step {
	case StepPersonal:
		if blank(f.Name) {
			errs["name"] = "Name is required"
		}
		validateEmail(errs, "email", "Email is required", f.Email)
		switch {
		case blank(f.Phone):
			errs["phone"] = "Phone is required"
		case len(nonDigit.ReplaceAllString(f.Phone, "")) != 10:
			errs["phone"] = "Phone must be 10 digits"
		}
	case StepEducation:
		if blank(f.College) {
			errs["college"] = "College is required"
		}
		if blank(f.Degree) {
			errs["degree"] = "Degree is required"
		}
		switch {
		case blank(f.Year):
			errs["year"] = "Passout year is required"
		case !validYear(f.Year):
			errs["year"] = fmt.Sprintf("Enter valid year (%d-%d)", minYear, maxYear)
		}
		if blank(f.Skills) {
			errs["skills"] = "Skills are required"
		}
	case StepResume:
		if f.HasReferral {
			if blank(f.ReferralName) {
				errs["referralName"] = "Referral name is required"
			}
			validateEmail(errs, "referralEmail", "Referral email is required", f.ReferralEmail)
		}
		if msg := validateResume(f.Resume, maxResumeSize); msg != "" {
			errs["resume"] = msg
		}
	}
	return errs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateEmail(errs Errors, field, requiredMsg, val string) {
	switch {
	case blank(val):
		errs[field] = requiredMsg
	case !emailRegexp.MatchString(val):
		errs[field] = "Invalid email format"
	}
}

func validYear(year string) bool {
	if !yearRegexp.MatchString(year) {
		return false
	}
	y, err := strconv.Atoi(year)
	return err == nil && y >= minYear && y <= maxYear
}

func validateResume(r *client.Resume, maxSize int64) string {
	switch {
	case r == nil || r.Content == nil:
		return "Resume is required"
	case !hasResumeExt(r.Filename):
		return "Only PDF, DOC, DOCX allowed"
	case r.Size == 0:
		return "Resume file is empty"
	case r.Size > maxSize:
		return "File size must be under " + sizeLabel(maxSize)
	}
	return ""
}

// sizeLabel 不足 1MB 的上限用 KB 表示
func sizeLabel(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%dMB", n>>20)
	case n >= 1<<10:
		return fmt.Sprintf("%dKB", n>>10)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}

func hasResumeExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range resumeExts {
		if ext == e {
			return true
		}
	}
	return false
}
