package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/shop-feed/internal/core/domain"
	"github.com/niksmo/shop-feed/internal/core/port"
	"github.com/niksmo/shop-feed/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.FeedRunNotifier = (*FeedRunProducer)(nil)

// FeedRunProducer publishes one record per completed feed generation,
// keyed by feed name.
type FeedRunProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewFeedRunProducer(opts ...ProducerOpt) (FeedRunProducer, error) {
	const op = "NewFeedRunProducer"

	if len(opts) != 2 {
		panic(fmt.Errorf("%s: %w", op, ErrTooFewOpts)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return FeedRunProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return FeedRunProducer{options.cl, options.encoder}, nil
}

func (p FeedRunProducer) Close() {
	const op = "FeedRunProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p FeedRunProducer) NotifyRun(
	ctx context.Context, run domain.FeedRun,
) error {
	const op = "FeedRunProducer.NotifyRun"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r, err := p.createRecord(run)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p FeedRunProducer) createRecord(
	run domain.FeedRun,
) (*kgo.Record, error) {
	const op = "FeedRunProducer.createRecord"

	s := p.toSchema(run)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &kgo.Record{Key: []byte(s.Feed), Value: v}, nil
}

func (FeedRunProducer) toSchema(run domain.FeedRun) (s schema.FeedRunV1) {
	s.Feed = run.Feed
	s.Pages = run.Pages
	s.Products = run.Products
	s.Items = run.Items
	s.DurationMs = run.Duration.Milliseconds()
	s.GeneratedAt = run.GeneratedAt.UnixMilli()
	return s
}
