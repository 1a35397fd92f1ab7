package content

// bundleSchema is the JSON Schema for an external lesson bundle file.
// Structural shape is enforced here; semantic rules (index ranges, scoring
// modes) are enforced by Validate after decoding.
var bundleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"lessons": map[string]any{
			"type":  "array",
			"items": lessonSchema,
		},
	},
	"required":             []any{"lessons"},
	"additionalProperties": false,
}

var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":                map[string]any{"type": "string", "minLength": 1},
		"title":             map[string]any{"type": "string"},
		"introduction":      map[string]any{"type": "string"},
		"pre_test_intro":    map[string]any{"type": "string"},
		"pre_test":          map[string]any{"type": "array", "items": preTestItemSchema},
		"pre_test_complete": map[string]any{"type": "string"},
		"topics":            map[string]any{"type": "array", "items": topicSchema},
		"post_test_intro":   map[string]any{"type": "string"},
		"post_test":         map[string]any{"type": "array", "items": postTestItemSchema},
		"completion":        map[string]any{"type": "string"},
	},
	"required":             []any{"id", "title", "introduction", "post_test"},
	"additionalProperties": false,
}

// correct_answer may be the literal answer text or an index into options.
var correctAnswerSchema = map[string]any{
	"oneOf": []any{
		map[string]any{"type": "string"},
		map[string]any{"type": "integer", "minimum": 0},
	},
}

var preTestItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":             map[string]any{"type": "string"},
		"question":       map[string]any{"type": "string", "minLength": 1},
		"options":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"correct_answer": correctAnswerSchema,
		"mentor_answer":  map[string]any{"type": "string"},
	},
	"required":             []any{"question"},
	"additionalProperties": false,
}

var postTestItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":             map[string]any{"type": "string"},
		"question":       map[string]any{"type": "string", "minLength": 1},
		"options":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 2},
		"correct_answer": correctAnswerSchema,
		"explanation":    map[string]any{"type": "string"},
	},
	"required":             []any{"question", "options", "correct_answer"},
	"additionalProperties": false,
}

var topicSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":                  map[string]any{"type": "string"},
		"title":               map[string]any{"type": "string"},
		"body":                map[string]any{"type": "string", "minLength": 1},
		"analogy":             map[string]any{"type": "string"},
		"scenario":            map[string]any{"type": "string"},
		"discussion_question": map[string]any{"type": "string"},
	},
	"required":             []any{"body"},
	"additionalProperties": false,
}
