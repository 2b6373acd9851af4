package schema_test

import (
	"context"
	"testing"

	"github.com/niksmo/shop-feed/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

func TestSerdeFeedRunV1(t *testing.T) {

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeFeedRunV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeFeedRunV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("IdentifierAndSubjectOpts", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.FeedRunSchemaTextV1,
		).Return(schemaID, nil)

		_, err := schema.NewSerdeFeedRunV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.FeedRunSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeFeedRunV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		runValue1 := schema.FeedRunV1{
			Feed:        "google",
			Pages:       3,
			Products:    120,
			Items:       180,
			DurationMs:  1500,
			GeneratedAt: 1735689600000,
		}

		encodedData, err := serde.Encode(runValue1)
		require.NoError(t, err)

		var runValue2 schema.FeedRunV1
		err = serde.Decode(encodedData, &runValue2)
		require.NoError(t, err)

		assert.Equal(t, runValue1, runValue2)
	})
}
