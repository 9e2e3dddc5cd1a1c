package service

import (
	_ "embed"

	"github.com/ecodeclub/jobportal/internal/job/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed seed_jobs.yaml
var seedJobs []byte

type seedJob struct {
	Title            string   `yaml:"title"`
	Company          string   `yaml:"company"`
	Location         string   `yaml:"location"`
	Type             string   `yaml:"type"`
	Experience       string   `yaml:"experience"`
	Salary           string   `yaml:"salary"`
	Description      string   `yaml:"description"`
	Responsibilities []string `yaml:"responsibilities"`
	Requirements     []string `yaml:"requirements"`
	Skills           []string `yaml:"skills"`
	Benefits         []string `yaml:"benefits"`
}

// SampleJobs 内置的应届生职位
func SampleJobs() ([]domain.Job, error) {
	var raw []seedJob
	if err := yaml.Unmarshal(seedJobs, &raw); err != nil {
		return nil, err
	}
	res := make([]domain.Job, 0, len(raw))
	for _, r := range raw {
		res = append(res, domain.Job{
			Title:            r.Title,
			Company:          r.Company,
			Location:         r.Location,
			Type:             domain.Type(r.Type),
			Experience:       r.Experience,
			Salary:           r.Salary,
			Description:      r.Description,
			Responsibilities: r.Responsibilities,
			Requirements:     r.Requirements,
			Skills:           r.Skills,
			Benefits:         r.Benefits,
			Status:           domain.StatusActive,
		})
	}
	return res, nil
}
