package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type Job struct {
	ID    int64
	Title string
}

func TestTracingPlugin(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	// DryRun 只生成 SQL，不需要真的连上数据库
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "root:root@tcp(localhost:13316)/jobportal",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	require.NoError(t, db.Use(NewTracingPluginWith(tp)))

	ctx, root := tp.Tracer("test").Start(context.Background(), "root")
	db.WithContext(ctx).Create(&Job{Title: "SRE"})
	var job Job
	db.WithContext(ctx).Where("id = ?", 1).First(&job)
	err = db.WithContext(ctx).Delete(&Job{}).Error
	assert.ErrorIs(t, err, gorm.ErrMissingWhereClause)
	root.End()

	spans := rec.Ended()
	require.Len(t, spans, 4)
	names := make([]string, 0, len(spans))
	for _, s := range spans[:3] {
		names = append(names, s.Name())
		assert.Equal(t, root.SpanContext().SpanID(), s.Parent().SpanID())
	}
	assert.Equal(t, []string{"jobs INSERT", "jobs SELECT", "jobs DELETE"}, names)
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[2].Status().Code)

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "mysql", attrs["db.system"])
	assert.Equal(t, "jobs", attrs["db.table"])
	assert.Equal(t, "INSERT", attrs["db.operation"])
	assert.Contains(t, attrs["db.statement"], "INSERT INTO `jobs`")
}
