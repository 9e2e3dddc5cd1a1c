package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=./resume.go -destination=../mocks/resume.mock.go -package=repomocks ResumeStorage
type ResumeStorage interface {
	// Save 保存简历，返回存储用的文件名
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
	// List 返回所有已保存的文件名以及修改时间
	List(ctx context.Context) (map[string]time.Time, error)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// LocalResumeStorage 把简历存在本地目录下
type LocalResumeStorage struct {
	dir     string
	nowFunc func() time.Time
}

func NewLocalResumeStorage(dir string) (*LocalResumeStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "创建简历目录 %s 失败", dir)
	}
	return &LocalResumeStorage{
		dir:     dir,
		nowFunc: time.Now,
	}, nil
}

func (s *LocalResumeStorage) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	name := s.objectName(filename)
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", errors.Wrap(err, "创建简历文件失败")
	}
	_, err = io.Copy(f, content)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", errors.Wrap(err, "写入简历文件失败")
	}
	return name, nil
}

func (s *LocalResumeStorage) Delete(ctx context.Context, name string) error {
	if name == "" || name != filepath.Base(name) {
		return errors.Errorf("非法的简历文件名 %q", name)
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalResumeStorage) List(ctx context.Context) (map[string]time.Time, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	res := make(map[string]time.Time, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		res[e.Name()] = info.ModTime()
	}
	return res, nil
}

// objectName 形如 20250101_120000_<shortuuid>_resume.pdf
func (s *LocalResumeStorage) objectName(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Trim(unsafeChars.ReplaceAllString(base, "_"), "._")
	if base == "" {
		base = "resume"
	}
	return s.nowFunc().Format("20060102_150405") + "_" + shortuuid.New() + "_" + base
}
