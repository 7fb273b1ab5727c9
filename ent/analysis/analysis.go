// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the analysis type in the database.
	Label = "analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "analysis_id"
	// FieldPostID holds the string denoting the post_id field in the database.
	FieldPostID = "post_id"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldPromptSnapshot holds the string denoting the prompt_snapshot field in the database.
	FieldPromptSnapshot = "prompt_snapshot"
	// FieldParamsSnapshot holds the string denoting the params_snapshot field in the database.
	FieldParamsSnapshot = "params_snapshot"
	// FieldOutputText holds the string denoting the output_text field in the database.
	FieldOutputText = "output_text"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldCostEstimate holds the string denoting the cost_estimate field in the database.
	FieldCostEstimate = "cost_estimate"
	// FieldElapsedMs holds the string denoting the elapsed_ms field in the database.
	FieldElapsedMs = "elapsed_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePost holds the string denoting the post edge name in mutations.
	EdgePost = "post"
	// PostFieldID holds the string denoting the ID field of the Post.
	PostFieldID = "post_id"
	// Table holds the table name of the analysis in the database.
	Table = "analyses"
	// PostTable is the table that holds the post relation/edge.
	PostTable = "analyses"
	// PostInverseTable is the table name for the Post entity.
	// It exists in this package in order to avoid circular dependency with the "post" package.
	PostInverseTable = "posts"
	// PostColumn is the table column denoting the post relation/edge.
	PostColumn = "post_id"
)

// Columns holds all SQL columns for analysis fields.
var Columns = []string{
	FieldID,
	FieldPostID,
	FieldModel,
	FieldPromptSnapshot,
	FieldParamsSnapshot,
	FieldOutputText,
	FieldTokensUsed,
	FieldCostEstimate,
	FieldElapsedMs,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int
	// DefaultCostEstimate holds the default value on creation for the "cost_estimate" field.
	DefaultCostEstimate float64
	// DefaultElapsedMs holds the default value on creation for the "elapsed_ms" field.
	DefaultElapsedMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Analysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPostID orders the results by the post_id field.
func ByPostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostID, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByPromptSnapshot orders the results by the prompt_snapshot field.
func ByPromptSnapshot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptSnapshot, opts...).ToFunc()
}

// ByOutputText orders the results by the output_text field.
func ByOutputText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputText, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByCostEstimate orders the results by the cost_estimate field.
func ByCostEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostEstimate, opts...).ToFunc()
}

// ByElapsedMs orders the results by the elapsed_ms field.
func ByElapsedMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPostField orders the results by post field.
func ByPostField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPostStep(), sql.OrderByField(field, opts...))
	}
}
func newPostStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PostInverseTable, PostFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, PostTable, PostColumn),
	)
}
