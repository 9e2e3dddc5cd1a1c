package event

import (
	"context"

	"github.com/ecodeclub/jobportal/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -destination=../../mocks/producer.mock.go -package=applicationmocks ApplicationEventProducer
type ApplicationEventProducer interface {
	Produce(ctx context.Context, evt ApplicationEvent) error
}

func NewApplicationEventProducer(q mq.MQ) (ApplicationEventProducer, error) {
	return mqx.NewGeneralProducer[ApplicationEvent](q, ApplicationEventsTopic)
}
