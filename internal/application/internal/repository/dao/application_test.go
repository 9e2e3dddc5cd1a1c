package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDAO(t *testing.T, mock func(mock sqlmock.Sqlmock)) ApplicationDAO {
	mockDB, m, err := sqlmock.New()
	require.NoError(t, err)
	mock(m)
	t.Cleanup(func() {
		assert.NoError(t, m.ExpectationsWereMet())
		_ = mockDB.Close()
	})
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return NewGORMApplicationDAO(db)
}

func TestGORMApplicationDAO_Find(t *testing.T) {
	testCases := []struct {
		name    string
		filter  ApplicationFilter
		mock    func(mock sqlmock.Sqlmock)
		wantIds []int64
	}{
		{
			name: "没有条件",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `applications` ORDER BY id DESC").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Meera").AddRow(1, "Asha"))
			},
			wantIds: []int64{2, 1},
		},
		{
			name:   "Pending 包含没有状态的记录",
			filter: ApplicationFilter{Position: "Backend Intern", Status: "Pending"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `applications` WHERE position = \\? AND .*status = \\? OR status = ''.* ORDER BY id DESC").
					WithArgs("Backend Intern", "Pending").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(3, "").AddRow(1, "Pending"))
			},
			wantIds: []int64{3, 1},
		},
		{
			name:   "其他状态",
			filter: ApplicationFilter{Status: "Shortlisted"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `applications` WHERE status = \\? ORDER BY id DESC").
					WithArgs("Shortlisted").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))
			},
			wantIds: []int64{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newMockDAO(t, tc.mock)
			apps, err := d.Find(context.Background(), tc.filter)
			require.NoError(t, err)
			ids := make([]int64, 0, len(apps))
			for _, a := range apps {
				ids = append(ids, a.Id)
			}
			assert.Equal(t, tc.wantIds, ids)
		})
	}
}

func TestGORMApplicationDAO_CountByStatus(t *testing.T) {
	d := newMockDAO(t, func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery("SELECT status AS name, COUNT\\(\\*\\) AS cnt FROM `applications` GROUP BY .*status").
			WillReturnRows(sqlmock.NewRows([]string{"name", "cnt"}).
				AddRow("", 2).
				AddRow("Shortlisted", 1))
	})
	res, err := d.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []GroupCount{{Name: "", Cnt: 2}, {Name: "Shortlisted", Cnt: 1}}, res)
}

func TestGORMApplicationDAO_UpdateStatus(t *testing.T) {
	d := newMockDAO(t, func(mock sqlmock.Sqlmock) {
		mock.ExpectExec("UPDATE `applications` SET .*WHERE id = \\?").
			WillReturnResult(sqlmock.NewResult(0, 0))
	})
	n, err := d.UpdateStatus(context.Background(), 42, "Shortlisted", 1700000000000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestGORMApplicationDAO_ResumeFiles(t *testing.T) {
	d := newMockDAO(t, func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery("SELECT `resume_file` FROM `applications`").
			WillReturnRows(sqlmock.NewRows([]string{"resume_file"}).
				AddRow("20240101_120000_abc_cv.pdf").
				AddRow(""))
	})
	files, err := d.ResumeFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"20240101_120000_abc_cv.pdf", ""}, files)
}
