package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const testToken = "token-123"

// fakeBackend 内存版的后端，响应格式和真实后端一致
type fakeBackend struct {
	mu     sync.Mutex
	jobs   []Job
	apps   []Application
	nextID int64
	hits   atomic.Int64
	// paths 记录收到的请求
	paths []string
	// lastForm 最近一次投递的表单
	lastForm map[string]string
	// resumes 每次投递收到的简历内容，包括失败的
	resumes []string
	// applyFailures 前几次投递直接返回 500
	applyFailures int
	gates         map[string]*gate
}

// gate 挂起某个路径上的下一个请求，直到 release 被关闭
type gate struct {
	arrived chan struct{}
	release chan struct{}
}

// hold 只对 path 上的下一个请求生效
func (fb *fakeBackend) hold(path string) *gate {
	g := &gate{arrived: make(chan struct{}), release: make(chan struct{})}
	fb.mu.Lock()
	fb.gates[path] = g
	fb.mu.Unlock()
	return g
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	gin.SetMode(gin.TestMode)
	fb := &fakeBackend{nextID: 100, gates: map[string]*gate{}}
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		fb.hits.Add(1)
		fb.mu.Lock()
		fb.paths = append(fb.paths, ctx.Request.Method+" "+ctx.Request.URL.Path)
		g := fb.gates[ctx.Request.URL.Path]
		delete(fb.gates, ctx.Request.URL.Path)
		fb.mu.Unlock()
		if g != nil {
			close(g.arrived)
			<-g.release
		}
	})
	server.POST("/admin/login", fb.login)
	server.GET("/jobs", fb.listJobs)
	server.GET("/jobs/:id", fb.getJob)
	server.POST("/apply", fb.apply)
	server.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Backend is running",
			"database": "connected", "applications_count": len(fb.apps)})
	})
	admin := server.Group("/admin", fb.checkLogin)
	admin.POST("/jobs", fb.createJob)
	admin.PATCH("/jobs/:id/toggle-status", fb.toggleJob)
	admin.DELETE("/jobs/:id", fb.deleteJob)
	admin.GET("/applications", fb.listApps)
	admin.GET("/statistics", fb.statistics)
	admin.PUT("/application/:id/status", fb.updateStatus)
	admin.DELETE("/application/:id", fb.deleteApp)
	admin.GET("/download-excel", func(ctx *gin.Context) {
		ctx.Data(http.StatusOK, "application/octet-stream", []byte("xlsx:"+ctx.Query("position")))
	})
	srv := httptest.NewServer(server)
	t.Cleanup(srv.Close)
	return fb, srv
}

func ok(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, gin.H{"code": 0, "msg": "OK", "data": data})
}

func fail(ctx *gin.Context, status int, msg string) {
	ctx.AbortWithStatusJSON(status, gin.H{"code": status, "msg": msg})
}

func (fb *fakeBackend) checkLogin(ctx *gin.Context) {
	if ctx.GetHeader("Authorization") != "Bearer "+testToken {
		fail(ctx, http.StatusUnauthorized, "Token is invalid or expired")
	}
}

func (fb *fakeBackend) login(ctx *gin.Context) {
	var req loginReq
	_ = ctx.ShouldBindJSON(&req)
	if req.Username == "" || req.Password == "" {
		fail(ctx, http.StatusBadRequest, "Username and password required")
		return
	}
	if req.Username != "admin" || req.Password != "admin123" {
		fail(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	ok(ctx, http.StatusOK, Session{Token: testToken, Username: req.Username})
}

func (fb *fakeBackend) listJobs(ctx *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	res := []Job{}
	for _, j := range slices.Backward(fb.jobs) {
		if tp := ctx.Query("type"); tp != "" && j.Type != tp {
			continue
		}
		if st := ctx.Query("status"); st != "" && j.Status != st {
			continue
		}
		if exp := ctx.Query("experience"); exp != "" &&
			!strings.Contains(strings.ToLower(j.Experience), strings.ToLower(exp)) {
			continue
		}
		res = append(res, j)
	}
	ok(ctx, http.StatusOK, res)
}

func (fb *fakeBackend) findJob(ctx *gin.Context) int {
	id, _ := strconv.ParseInt(ctx.Param("id"), 10, 64)
	return slices.IndexFunc(fb.jobs, func(j Job) bool { return j.ID == id })
}

func (fb *fakeBackend) getJob(ctx *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	idx := fb.findJob(ctx)
	if idx < 0 {
		fail(ctx, http.StatusNotFound, "Job not found")
		return
	}
	ok(ctx, http.StatusOK, fb.jobs[idx])
}

func (fb *fakeBackend) createJob(ctx *gin.Context) {
	var d JobDraft
	if err := ctx.ShouldBindJSON(&d); err != nil || d.Title == "" || d.Company == "" {
		fail(ctx, http.StatusBadRequest, "Title and company are required")
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.nextID++
	job := Job{ID: fb.nextID, Title: d.Title, Company: d.Company, Location: d.Location,
		Type: d.Type, Experience: d.Experience, Salary: d.Salary, Skills: d.Skills,
		Responsibilities: d.Responsibilities, Requirements: d.Requirements, Benefits: d.Benefits,
		Status: d.Status}
	if job.Status == "" {
		job.Status = JobStatusActive
	}
	fb.jobs = append(fb.jobs, job)
	ok(ctx, http.StatusCreated, job)
}

func (fb *fakeBackend) toggleJob(ctx *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	idx := fb.findJob(ctx)
	if idx < 0 {
		fail(ctx, http.StatusNotFound, "Job not found")
		return
	}
	if fb.jobs[idx].Status == JobStatusActive {
		fb.jobs[idx].Status = JobStatusInactive
	} else {
		fb.jobs[idx].Status = JobStatusActive
	}
	ok(ctx, http.StatusOK, fb.jobs[idx])
}

func (fb *fakeBackend) deleteJob(ctx *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	idx := fb.findJob(ctx)
	if idx < 0 {
		fail(ctx, http.StatusNotFound, "Job not found")
		return
	}
	fb.jobs = slices.Delete(fb.jobs, idx, idx+1)
	ok(ctx, http.StatusOK, nil)
}

func (fb *fakeBackend) apply(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil || len(form.File["resume"]) == 0 {
		fail(ctx, http.StatusBadRequest, "Resume file is required")
		return
	}
	resume, err := form.File["resume"][0].Open()
	if err != nil {
		fail(ctx, http.StatusBadRequest, "Resume file is required")
		return
	}
	defer resume.Close()
	content, _ := io.ReadAll(resume)
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.resumes = append(fb.resumes, string(content))
	if fb.applyFailures > 0 {
		fb.applyFailures--
		fail(ctx, http.StatusInternalServerError, "Failed to save application")
		return
	}
	fb.lastForm = map[string]string{}
	for k, v := range form.Value {
		fb.lastForm[k] = v[0]
	}
	fb.nextID++
	app := Application{ID: fb.nextID, Name: ctx.PostForm("name"), Email: ctx.PostForm("email"),
		Position: ctx.PostForm("position"), ResumeFile: form.File["resume"][0].Filename,
		Status: StatusPending, AppliedDate: time.Now().UTC()}
	fb.apps = append(fb.apps, app)
	ok(ctx, http.StatusCreated, app)
}

func (fb *fakeBackend) listApps(ctx *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	res := []Application{}
	for _, a := range slices.Backward(fb.apps) {
		if p := ctx.Query("position"); p != "" && a.Position != p {
			continue
		}
		if st := ctx.Query("status"); st != "" && a.EffectiveStatus() != st {
			continue
		}
		res = append(res, a)
	}
	ok(ctx, http.StatusOK, res)
}

func (fb *fakeBackend) statistics(ctx *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	stats := Statistics{Total: int64(len(fb.apps)), ByStatus: map[string]int64{}, ByPosition: map[string]int64{}}
	for _, s := range Statuses {
		stats.ByStatus[s] = 0
	}
	for _, a := range fb.apps {
		stats.ByStatus[a.EffectiveStatus()]++
		stats.ByPosition[a.Position]++
	}
	ok(ctx, http.StatusOK, stats)
}

func (fb *fakeBackend) findApp(ctx *gin.Context) int {
	id, _ := strconv.ParseInt(ctx.Param("id"), 10, 64)
	return slices.IndexFunc(fb.apps, func(a Application) bool { return a.ID == id })
}

func (fb *fakeBackend) updateStatus(ctx *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	_ = ctx.ShouldBindJSON(&req)
	if !slices.Contains(Statuses, req.Status) {
		fail(ctx, http.StatusBadRequest, "Invalid status")
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	idx := fb.findApp(ctx)
	if idx < 0 {
		fail(ctx, http.StatusNotFound, "Application not found")
		return
	}
	fb.apps[idx].Status = req.Status
	ok(ctx, http.StatusOK, fb.apps[idx])
}

func (fb *fakeBackend) deleteApp(ctx *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	idx := fb.findApp(ctx)
	if idx < 0 {
		fail(ctx, http.StatusNotFound, "Application not found")
		return
	}
	fb.apps = slices.Delete(fb.apps, idx, idx+1)
	ok(ctx, http.StatusOK, nil)
}

func (fb *fakeBackend) receivedResumes() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return slices.Clone(fb.resumes)
}

func (fb *fakeBackend) addApps(apps ...Application) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.apps = append(fb.apps, apps...)
}
