package schema

import (
	"testing"

	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedRunSchemaTextV1(t *testing.T) {
	runSchema, err := avro.Parse(FeedRunSchemaTextV1)
	require.NoError(t, err)

	vMarshal := FeedRunV1{
		Feed:        "google",
		Pages:       2,
		Products:    73,
		Items:       110,
		DurationMs:  840,
		GeneratedAt: 1735689600000,
	}

	data, err := avro.Marshal(runSchema, vMarshal)
	require.NoError(t, err)

	var vUnmarshal FeedRunV1
	require.NoError(t, avro.Unmarshal(runSchema, data, &vUnmarshal))
	assert.Equal(t, vMarshal, vUnmarshal)
}
