// Package wizard 是分三步的投递表单：个人信息、教育和技能、简历和推荐人
package wizard

import (
	"context"
	"sync"

	"github.com/ecodeclub/jobportal/client"
	"github.com/pkg/errors"
)

type Step int

const (
	StepPersonal Step = iota + 1
	StepEducation
	StepResume
)

const finalStep = StepResume

type Phase uint8

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseSucceeded
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	default:
		return "editing"
	}
}

const submitFailed = "Submission failed. Please try again."

var (
	ErrInvalid      = errors.New("form has invalid fields")
	ErrNotFinalStep = errors.New("submit is only allowed from the last step")
	ErrBusy         = errors.New("wizard is not editable now")
)

// Submitter 一般是 *client.Ledger
type Submitter interface {
	Submit(ctx context.Context, sub client.Submission) (client.Application, error)
}

type Wizard struct {
	mu            sync.Mutex
	form          Form
	step          Step
	phase         Phase
	errs          Errors
	err           error
	result        client.Application
	maxResumeSize int64
}

type Option func(w *Wizard)

func WithMaxResumeSize(size int64) Option {
	return func(w *Wizard) {
		if size > 0 {
			w.maxResumeSize = size
		}
	}
}

// New position 是投递的职位名称
func New(position string, opts ...Option) *Wizard {
	w := &Wizard{
		form:          Form{Position: position},
		step:          StepPersonal,
		errs:          Errors{},
		maxResumeSize: DefaultMaxResumeSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Update 修改表单，只有编辑中才能修改。被修改字段的错误会被清掉
func (w *Wizard) Update(fn func(f *Form)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase != PhaseEditing {
		return ErrBusy
	}
	before := w.form
	fn(&w.form)
	w.clearChanged(before)
	return nil
}

func (w *Wizard) clearChanged(before Form) {
	after := w.form
	changed := map[string]bool{
		"name":          before.Name != after.Name,
		"email":         before.Email != after.Email,
		"phone":         before.Phone != after.Phone,
		"college":       before.College != after.College,
		"degree":        before.Degree != after.Degree,
		"year":          before.Year != after.Year,
		"skills":        before.Skills != after.Skills,
		"referralName":  before.ReferralName != after.ReferralName,
		"referralEmail": before.ReferralEmail != after.ReferralEmail,
		"resume":        before.Resume != after.Resume,
	}
	for field, ok := range changed {
		if ok {
			delete(w.errs, field)
		}
	}
}

// Next 当前步骤校验通过才前进
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase != PhaseEditing || w.step == finalStep {
		return false
	}
	w.errs = ValidateStep(w.step, w.form, w.maxResumeSize)
	if len(w.errs) > 0 {
		return false
	}
	w.step++
	return true
}

// Back 不做校验
func (w *Wizard) Back() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase != PhaseEditing || w.step == StepPersonal {
		return false
	}
	w.step--
	w.errs = Errors{}
	return true
}

// Submit 只能在最后一步调用。前面某一步校验不通过时会回到那一步。
// 提交失败回到最后一步，已经填的内容都保留
func (w *Wizard) Submit(ctx context.Context, s Submitter) (client.Application, error) {
	w.mu.Lock()
	if w.phase != PhaseEditing {
		w.mu.Unlock()
		return client.Application{}, ErrBusy
	}
	if w.step != finalStep {
		w.mu.Unlock()
		return client.Application{}, ErrNotFinalStep
	}
	for step := StepPersonal; step <= finalStep; step++ {
		if errs := ValidateStep(step, w.form, w.maxResumeSize); len(errs) > 0 {
			w.step = step
			w.errs = errs
			w.mu.Unlock()
			return client.Application{}, ErrInvalid
		}
	}
	w.phase = PhaseSubmitting
	w.errs = Errors{}
	w.err = nil
	sub := w.form.submission()
	w.mu.Unlock()

	app, err := s.Submit(ctx, sub)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.phase = PhaseEditing
		w.step = finalStep
		w.err = err
		w.errs = Errors{"submit": submitFailed}
		return client.Application{}, err
	}
	w.phase = PhaseSucceeded
	w.result = app
	return app, nil
}

// Reset 提交成功之后重新开始
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form = Form{Position: w.form.Position}
	w.step = StepPersonal
	w.phase = PhaseEditing
	w.errs = Errors{}
	w.err = nil
	w.result = client.Application{}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

func (w *Wizard) Form() Form {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// Errors 当前步骤的字段错误
func (w *Wizard) Errors() Errors {
	w.mu.Lock()
	defer w.mu.Unlock()
	res := make(Errors, len(w.errs))
	for k, v := range w.errs {
		res[k] = v
	}
	return res
}

// Err 最近一次提交失败的原因
func (w *Wizard) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *Wizard) Result() client.Application {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}
