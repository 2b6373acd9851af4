package schema

const FeedRunSchemaTextV1 = `{
	"type": "record",
	"namespace": "shopfeed",
	"name": "feed_run",
	"fields" : [
		{"name": "feed", "type": "string"},
		{"name": "pages", "type": "int"},
		{"name": "products", "type": "int"},
		{"name": "items", "type": "int"},
		{"name": "duration_ms", "type": "long"},
		{"name": "generated_at", "type": "long"}
	]
}`

// FeedRunV1 is the wire representation of one completed feed
// generation. GeneratedAt is unix milliseconds.
type FeedRunV1 struct {
	Feed        string `avro:"feed"`
	Pages       int    `avro:"pages"`
	Products    int    `avro:"products"`
	Items       int    `avro:"items"`
	DurationMs  int64  `avro:"duration_ms"`
	GeneratedAt int64  `avro:"generated_at"`
}
