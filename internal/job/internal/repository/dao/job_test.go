package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDAO(t *testing.T, mock func(mock sqlmock.Sqlmock)) JobDAO {
	mockDB, m, err := sqlmock.New()
	require.NoError(t, err)
	mock(m)
	t.Cleanup(func() {
		assert.NoError(t, m.ExpectationsWereMet())
		_ = mockDB.Close()
	})
	return NewGORMJobDAO(openGORM(t, mockDB))
}

func openGORM(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: conn,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestGORMJobDAO_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantId  int64
		wantErr error
	}{
		{
			name: "插入成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO `jobs` .*").
					WillReturnResult(sqlmock.NewResult(5, 1))
			},
			wantId: 5,
		},
		{
			name: "数据库错误",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO `jobs` .*").
					WillReturnError(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newMockDAO(t, tc.mock)
			id, err := d.Create(context.Background(), Job{Title: "SRE", Company: "Acme"})
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestGORMJobDAO_Find(t *testing.T) {
	d := newMockDAO(t, func(mock sqlmock.Sqlmock) {
		rows := sqlmock.NewRows([]string{"id", "title", "company", "type", "experience", "skills", "benefits", "status"}).
			AddRow(2, "Go Intern", "Globex", "Full-time", "0-1 years (Freshers welcome)", []byte(`["Go","SQL"]`), nil, "Active").
			AddRow(1, "SRE", "Acme", "Full-time", "Fresher", []byte(`[]`), []byte(`["Remote"]`), "Active")
		mock.ExpectQuery("SELECT \\* FROM `jobs` WHERE type = \\? AND INSTR\\(LOWER\\(experience\\), \\?\\) > 0 AND status = \\? ORDER BY id DESC").
			WithArgs("Full-time", "fresher", "Active").
			WillReturnRows(rows)
	})
	jobs, err := d.Find(context.Background(), JobFilter{Type: "Full-time", Experience: "Fresher", Status: "Active"})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, int64(2), jobs[0].Id)
	assert.Equal(t, []string{"Go", "SQL"}, jobs[0].Skills.Val)
	assert.False(t, jobs[0].Benefits.Valid)
	assert.Equal(t, []string{"Remote"}, jobs[1].Benefits.Val)
}

func TestGORMJobDAO_FindExperienceLiteral(t *testing.T) {
	// % 和 _ 不能当成通配符
	d := newMockDAO(t, func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery("SELECT \\* FROM `jobs` WHERE INSTR\\(LOWER\\(experience\\), \\?\\) > 0 ORDER BY id DESC").
			WithArgs("100%_remote").
			WillReturnRows(sqlmock.NewRows([]string{"id", "experience"}).AddRow(9, "100%_Remote"))
	})
	jobs, err := d.Find(context.Background(), JobFilter{Experience: "100%_Remote"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, int64(9), jobs[0].Id)
}

func TestGORMJobDAO_FindByID(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantJob Job
		wantErr error
	}{
		{
			name: "找到了",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "company", "status"}).
					AddRow(3, "SRE", "Acme", "Inactive")
				mock.ExpectQuery("SELECT \\* FROM `jobs` WHERE id = \\?.*").WillReturnRows(rows)
			},
			wantJob: Job{Id: 3, Title: "SRE", Company: "Acme", Status: "Inactive"},
		},
		{
			name: "没找到",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `jobs` WHERE id = \\?.*").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: gorm.ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newMockDAO(t, tc.mock)
			job, err := d.FindByID(context.Background(), 3)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantJob, job)
		})
	}
}

func TestGORMJobDAO_Delete(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(mock sqlmock.Sqlmock)
		wantRows int64
	}{
		{
			name: "删除成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM `jobs` WHERE id = \\?").
					WithArgs(int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantRows: 1,
		},
		{
			name: "不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM `jobs` WHERE id = \\?").
					WithArgs(int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newMockDAO(t, tc.mock)
			n, err := d.Delete(context.Background(), 7)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRows, n)
		})
	}
}

func TestGORMJobDAO_UpdateStatus(t *testing.T) {
	d := newMockDAO(t, func(mock sqlmock.Sqlmock) {
		mock.ExpectExec("UPDATE `jobs` SET .*`status`=\\?.*WHERE id = \\?").
			WillReturnResult(sqlmock.NewResult(0, 1))
	})
	require.NoError(t, d.UpdateStatus(context.Background(), 7, "Inactive"))
}
