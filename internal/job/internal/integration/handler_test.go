//go:build e2e

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobportal/internal/job/internal/integration/startup"
	jobdao "github.com/ecodeclub/jobportal/internal/job/internal/repository/dao"
	"github.com/ecodeclub/jobportal/internal/job/internal/web"
	"github.com/ecodeclub/jobportal/internal/test"
	testioc "github.com/ecodeclub/jobportal/internal/test/ioc"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type JobTestSuite struct {
	suite.Suite
	server *gin.Engine
	db     *gorm.DB
	rdb    redis.Cmdable
	dao    jobdao.JobDAO
}

func (s *JobTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server.Engine
	s.db = testioc.InitDB()
	s.rdb = testioc.InitRedis()
	s.dao = jobdao.NewGORMJobDAO(s.db)
}

func (s *JobTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `jobs`").Error)
	require.NoError(s.T(), s.rdb.FlushDB(context.Background()).Err())
}

func (s *JobTestSuite) Test_CreateThenList() {
	t := s.T()
	body, err := json.Marshal(web.JobReq{
		Title:      "Backend Engineer",
		Company:    "Acme",
		Location:   "Remote",
		Type:       "Full-time",
		Experience: "Fresher",
		Salary:     "₹5 LPA",
		Skills:     []string{"Go", ""},
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/admin/jobs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.JobVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusCreated, recorder.Code)
	created := recorder.MustScan().Data
	assert.Equal(t, "Active", created.Status)
	assert.Equal(t, []string{"Go"}, created.Skills)

	listRecorder := test.NewJSONResponseRecorder[[]web.JobVO]()
	s.server.ServeHTTP(listRecorder, httptest.NewRequest(http.MethodGet, "/jobs", nil))
	require.Equal(t, http.StatusOK, listRecorder.Code)
	jobs := listRecorder.MustScan().Data
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
	assert.Equal(t, "Active", jobs[0].Status)
}

func (s *JobTestSuite) Test_List() {
	ctx := context.Background()
	for _, j := range []jobdao.Job{
		{Title: "Go Intern", Company: "Acme", Type: "Internship", Experience: "Fresher", Status: "Active"},
		{Title: "Java Dev", Company: "Beta", Type: "Full-time", Experience: "1-3 years", Status: "Active"},
		{Title: "QA", Company: "Gamma", Type: "Full-time", Experience: "Fresher (Batch 2025)", Status: "Inactive"},
	} {
		j.Skills = sqlx.JsonColumn[[]string]{Val: []string{}, Valid: true}
		_, err := s.dao.Create(ctx, j)
		require.NoError(s.T(), err)
	}
	testCases := []struct {
		name      string
		query     string
		wantTitle []string
	}{
		{name: "全部", query: "", wantTitle: []string{"QA", "Java Dev", "Go Intern"}},
		{name: "哨兵值", query: "?type=All%20Types&status=all", wantTitle: []string{"QA", "Java Dev", "Go Intern"}},
		{name: "按类型", query: "?type=Full-time", wantTitle: []string{"QA", "Java Dev"}},
		{name: "按经验模糊匹配", query: "?experience=fresher", wantTitle: []string{"QA", "Go Intern"}},
		{name: "按状态", query: "?status=Inactive", wantTitle: []string{"QA"}},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			recorder := test.NewJSONResponseRecorder[[]web.JobVO]()
			s.server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/jobs"+tc.query, nil))
			require.Equal(t, http.StatusOK, recorder.Code)
			var titles []string
			for _, j := range recorder.MustScan().Data {
				titles = append(titles, j.Title)
			}
			assert.Equal(t, tc.wantTitle, titles)
		})
	}
}

func (s *JobTestSuite) Test_ToggleAndDelete() {
	t := s.T()
	id, err := s.dao.Create(context.Background(), jobdao.Job{Title: "SRE", Company: "Acme", Status: "Active"})
	require.NoError(t, err)

	// 先读一次让详情进入缓存
	recorder := test.NewJSONResponseRecorder[web.JobVO]()
	s.server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/jobs/%d", id), nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = test.NewJSONResponseRecorder[web.JobVO]()
	s.server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/admin/jobs/%d/toggle-status", id), nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Inactive", recorder.MustScan().Data.Status)

	recorder = test.NewJSONResponseRecorder[web.JobVO]()
	s.server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/jobs/%d", id), nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Inactive", recorder.MustScan().Data.Status)

	recorder = test.NewJSONResponseRecorder[web.JobVO]()
	s.server.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/admin/jobs/%d", id), nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = test.NewJSONResponseRecorder[web.JobVO]()
	s.server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/jobs/%d", id), nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestJobModule(t *testing.T) {
	suite.Run(t, new(JobTestSuite))
}
