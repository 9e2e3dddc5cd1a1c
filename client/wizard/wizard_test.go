package wizard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/jobportal/client"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	mu    sync.Mutex
	calls int
	last  client.Submission
	err   error
	// 不为 nil 时 Submit 会阻塞到关闭
	block chan struct{}
}

func (f *fakeSubmitter) Submit(ctx context.Context, sub client.Submission) (client.Application, error) {
	f.mu.Lock()
	f.calls++
	f.last = sub
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return client.Application{}, f.err
	}
	return client.Application{ID: 7, Name: sub.Name, Position: sub.Position, Status: client.StatusPending}, nil
}

func pdfResume(size int64) *client.Resume {
	return &client.Resume{Filename: "cv.pdf", Size: size, Content: strings.NewReader("%PDF")}
}

func validForm() Form {
	return Form{
		Name:     "Asha",
		Email:    "asha@x.io",
		Phone:    "(987) 654-3210",
		College:  "IIT",
		Degree:   "B.Tech",
		Year:     "2024",
		Skills:   "Go, SQL",
		Position: "Backend Intern",
		Resume:   pdfResume(1024),
	}
}

func TestValidateStep(t *testing.T) {
	testCases := []struct {
		name    string
		step    Step
		form    func() Form
		wantErr Errors
	}{
		{
			name:    "个人信息为空",
			step:    StepPersonal,
			form:    func() Form { return Form{} },
			wantErr: Errors{"name": "Name is required", "email": "Email is required", "phone": "Phone is required"},
		},
		{
			name: "邮箱和手机号格式错误",
			step: StepPersonal,
			form: func() Form {
				f := validForm()
				f.Email = "asha@"
				f.Phone = "98765"
				return f
			},
			wantErr: Errors{"email": "Invalid email format", "phone": "Phone must be 10 digits"},
		},
		{
			name:    "个人信息通过",
			step:    StepPersonal,
			form:    validForm,
			wantErr: Errors{},
		},
		{
			name: "教育为空",
			step: StepEducation,
			form: func() Form { return Form{} },
			wantErr: Errors{"college": "College is required", "degree": "Degree is required",
				"year": "Passout year is required", "skills": "Skills are required"},
		},
		{
			name: "1999 年不合法",
			step: StepEducation,
			form: func() Form {
				f := validForm()
				f.Year = "1999"
				return f
			},
			wantErr: Errors{"year": "Enter valid year (2000-2030)"},
		},
		{
			name: "2031 年不合法",
			step: StepEducation,
			form: func() Form {
				f := validForm()
				f.Year = "2031"
				return f
			},
			wantErr: Errors{"year": "Enter valid year (2000-2030)"},
		},
		{
			name: "年份不是数字",
			step: StepEducation,
			form: func() Form {
				f := validForm()
				f.Year = "20x4"
				return f
			},
			wantErr: Errors{"year": "Enter valid year (2000-2030)"},
		},
		{
			name:    "2024 年通过",
			step:    StepEducation,
			form:    validForm,
			wantErr: Errors{},
		},
		{
			name: "没有简历",
			step: StepResume,
			form: func() Form {
				f := validForm()
				f.Resume = nil
				return f
			},
			wantErr: Errors{"resume": "Resume is required"},
		},
		{
			name: "png 简历",
			step: StepResume,
			form: func() Form {
				f := validForm()
				f.Resume = &client.Resume{Filename: "cv.png", Size: 10, Content: strings.NewReader("x")}
				return f
			},
			wantErr: Errors{"resume": "Only PDF, DOC, DOCX allowed"},
		},
		{
			name: "大写扩展名",
			step: StepResume,
			form: func() Form {
				f := validForm()
				f.Resume = &client.Resume{Filename: "CV.DOCX", Size: 10, Content: strings.NewReader("x")}
				return f
			},
			wantErr: Errors{},
		},
		{
			name: "简历太大",
			step: StepResume,
			form: func() Form {
				f := validForm()
				f.Resume = pdfResume(DefaultMaxResumeSize + 1)
				return f
			},
			wantErr: Errors{"resume": "File size must be under 5MB"},
		},
		{
			name: "空简历",
			step: StepResume,
			form: func() Form {
				f := validForm()
				f.Resume = pdfResume(0)
				return f
			},
			wantErr: Errors{"resume": "Resume file is empty"},
		},
		{
			name: "推荐人缺失",
			step: StepResume,
			form: func() Form {
				f := validForm()
				f.HasReferral = true
				f.ReferralEmail = "bad"
				return f
			},
			wantErr: Errors{"referralName": "Referral name is required", "referralEmail": "Invalid email format"},
		},
		{
			name: "不勾选推荐人时忽略推荐人字段",
			step: StepResume,
			form: func() Form {
				f := validForm()
				f.ReferralEmail = "bad"
				return f
			},
			wantErr: Errors{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateStep(tc.step, tc.form(), DefaultMaxResumeSize)
			assert.Equal(t, tc.wantErr, errs)
		})
	}
}

func TestValidateStep_SmallLimit(t *testing.T) {
	testCases := []struct {
		limit int64
		want  string
	}{
		{limit: 2 << 20, want: "File size must be under 2MB"},
		{limit: 512 << 10, want: "File size must be under 512KB"},
		{limit: 100, want: "File size must be under 100 bytes"},
	}
	for _, tc := range testCases {
		f := validForm()
		f.Resume = pdfResume(tc.limit + 1)
		errs := ValidateStep(StepResume, f, tc.limit)
		assert.Equal(t, Errors{"resume": tc.want}, errs)
	}
}

func TestWizard_Navigation(t *testing.T) {
	w := New("Backend Intern")
	assert.Equal(t, StepPersonal, w.Step())
	assert.False(t, w.Back())

	// 第一步没填不能前进
	assert.False(t, w.Next())
	assert.Equal(t, StepPersonal, w.Step())
	assert.Equal(t, "Name is required", w.Errors()["name"])

	// 修改过的字段错误被清掉
	require.NoError(t, w.Update(func(f *Form) { f.Name = "Asha" }))
	_, ok := w.Errors()["name"]
	assert.False(t, ok)
	assert.Equal(t, "Email is required", w.Errors()["email"])

	require.NoError(t, w.Update(func(f *Form) {
		f.Email = "asha@x.io"
		f.Phone = "9876543210"
	}))
	assert.True(t, w.Next())
	assert.Equal(t, StepEducation, w.Step())
	assert.Empty(t, w.Errors())

	// 返回不校验，数据保留
	assert.True(t, w.Back())
	assert.Equal(t, StepPersonal, w.Step())
	assert.Equal(t, "Asha", w.Form().Name)
	assert.True(t, w.Next())

	require.NoError(t, w.Update(func(f *Form) {
		f.College = "IIT"
		f.Degree = "B.Tech"
		f.Year = "2024"
		f.Skills = "Go"
	}))
	assert.True(t, w.Next())
	assert.Equal(t, StepResume, w.Step())
	// 最后一步没有 Next
	assert.False(t, w.Next())
	assert.Equal(t, "Backend Intern", w.Form().Position)
}

func TestWizard_Submit(t *testing.T) {
	t.Run("不在最后一步", func(t *testing.T) {
		w := New("Backend Intern")
		s := &fakeSubmitter{}
		_, err := w.Submit(context.Background(), s)
		assert.ErrorIs(t, err, ErrNotFinalStep)
		assert.Equal(t, 0, s.calls)
	})

	t.Run("成功", func(t *testing.T) {
		w := walkToLast(t, validForm())
		s := &fakeSubmitter{}
		app, err := w.Submit(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, int64(7), app.ID)
		assert.Equal(t, PhaseSucceeded, w.Phase())
		assert.Equal(t, app, w.Result())
		assert.Equal(t, "Asha", s.last.Name)
		assert.Equal(t, "Backend Intern", s.last.Position)
		assert.NotNil(t, s.last.Resume)

		// 成功之后不能再改也不能再提交
		assert.ErrorIs(t, w.Update(func(f *Form) { f.Name = "x" }), ErrBusy)
		_, err = w.Submit(context.Background(), s)
		assert.ErrorIs(t, err, ErrBusy)
		assert.Equal(t, 1, s.calls)

		w.Reset()
		assert.Equal(t, PhaseEditing, w.Phase())
		assert.Equal(t, StepPersonal, w.Step())
		assert.Equal(t, "", w.Form().Name)
		assert.Equal(t, "Backend Intern", w.Form().Position)
	})

	t.Run("失败保留数据", func(t *testing.T) {
		w := walkToLast(t, validForm())
		boom := errors.New("boom")
		s := &fakeSubmitter{err: boom}
		_, err := w.Submit(context.Background(), s)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, PhaseEditing, w.Phase())
		assert.Equal(t, StepResume, w.Step())
		assert.ErrorIs(t, w.Err(), boom)
		assert.Equal(t, "Submission failed. Please try again.", w.Errors()["submit"])
		assert.Equal(t, validForm().Email, w.Form().Email)
		assert.Equal(t, "2024", w.Form().Year)

		// 可以重试
		s.err = nil
		_, err = w.Submit(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, 2, s.calls)
		assert.Nil(t, w.Err())
	})

	t.Run("简历不合法停在第三步", func(t *testing.T) {
		w := walkToLast(t, validForm())
		require.NoError(t, w.Update(func(f *Form) {
			f.Resume = &client.Resume{Filename: "cv.png", Size: 10, Content: strings.NewReader("x")}
		}))
		s := &fakeSubmitter{}
		_, err := w.Submit(context.Background(), s)
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Equal(t, StepResume, w.Step())
		assert.Equal(t, "Only PDF, DOC, DOCX allowed", w.Errors()["resume"])
		assert.Equal(t, 0, s.calls)
	})

	t.Run("前面的步骤被改坏", func(t *testing.T) {
		w := walkToLast(t, validForm())
		require.NoError(t, w.Update(func(f *Form) { f.Year = "1999" }))
		s := &fakeSubmitter{}
		_, err := w.Submit(context.Background(), s)
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Equal(t, StepEducation, w.Step())
		assert.Equal(t, Errors{"year": "Enter valid year (2000-2030)"}, w.Errors())
		assert.Equal(t, 0, s.calls)
	})

	t.Run("自定义大小上限", func(t *testing.T) {
		f := validForm()
		f.Resume = pdfResume(2 << 20)
		w := walkToLast(t, f, WithMaxResumeSize(1<<20))
		_, err := w.Submit(context.Background(), &fakeSubmitter{})
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Equal(t, "File size must be under 1MB", w.Errors()["resume"])
	})
}

func TestWizard_ConcurrentSubmit(t *testing.T) {
	w := walkToLast(t, validForm())
	s := &fakeSubmitter{block: make(chan struct{})}
	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background(), s)
		done <- err
	}()
	require.Eventually(t, func() bool { return w.Phase() == PhaseSubmitting }, time.Second, 10*time.Millisecond)

	_, err := w.Submit(context.Background(), s)
	assert.ErrorIs(t, err, ErrBusy)
	assert.False(t, w.Back())
	close(s.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, s.calls)
	assert.Equal(t, PhaseSucceeded, w.Phase())
}

// 失败之后重试要重新上传完整的简历
func TestWizard_RetryWithLedger(t *testing.T) {
	var (
		mu      sync.Mutex
		resumes []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, _, err := r.FormFile("resume")
		require.NoError(t, err)
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		mu.Lock()
		resumes = append(resumes, string(data))
		attempt := len(resumes)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if attempt == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"code":503001,"msg":"Failed to save application"}`)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"code":0,"msg":"OK","data":{"id":9,"position":"Backend Intern","status":"Pending"}}`)
	}))
	defer srv.Close()
	c, err := client.New(srv.URL)
	require.NoError(t, err)

	f := validForm()
	f.Resume = &client.Resume{Filename: "cv.pdf", Size: 4, Content: io.MultiReader(strings.NewReader("%PDF"))}
	w := walkToLast(t, f)
	_, err = w.Submit(context.Background(), c.Apps)
	assert.ErrorIs(t, err, client.ErrRequest)
	assert.Equal(t, "Submission failed. Please try again.", w.Errors()["submit"])

	app, err := w.Submit(context.Background(), c.Apps)
	require.NoError(t, err)
	assert.Equal(t, int64(9), app.ID)
	assert.Equal(t, PhaseSucceeded, w.Phase())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"%PDF", "%PDF"}, resumes)
}

func walkToLast(t *testing.T, f Form, opts ...Option) *Wizard {
	t.Helper()
	w := New(f.Position, opts...)
	require.NoError(t, w.Update(func(form *Form) { *form = f }))
	require.True(t, w.Next())
	require.True(t, w.Next())
	require.Equal(t, StepResume, w.Step())
	return w
}
