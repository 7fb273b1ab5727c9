// Code generated by ent, DO NOT EDIT.

package post

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the post type in the database.
	Label = "post"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "post_id"
	// FieldAccountUsername holds the string denoting the account_username field in the database.
	FieldAccountUsername = "account_username"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldIngestedAt holds the string denoting the ingested_at field in the database.
	FieldIngestedAt = "ingested_at"
	// FieldLikes holds the string denoting the likes field in the database.
	FieldLikes = "likes"
	// FieldReshares holds the string denoting the reshares field in the database.
	FieldReshares = "reshares"
	// FieldReplies holds the string denoting the replies field in the database.
	FieldReplies = "replies"
	// FieldMedia holds the string denoting the media field in the database.
	FieldMedia = "media"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFailReason holds the string denoting the fail_reason field in the database.
	FieldFailReason = "fail_reason"
	// FieldRetryAfter holds the string denoting the retry_after field in the database.
	FieldRetryAfter = "retry_after"
	// FieldAnalysisAttempts holds the string denoting the analysis_attempts field in the database.
	FieldAnalysisAttempts = "analysis_attempts"
	// FieldDispatchAttempts holds the string denoting the dispatch_attempts field in the database.
	FieldDispatchAttempts = "dispatch_attempts"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// EdgeAccount holds the string denoting the account edge name in mutations.
	EdgeAccount = "account"
	// EdgeAnalysis holds the string denoting the analysis edge name in mutations.
	EdgeAnalysis = "analysis"
	// EdgeDispatchRecords holds the string denoting the dispatch_records edge name in mutations.
	EdgeDispatchRecords = "dispatch_records"
	// AccountFieldID holds the string denoting the ID field of the Account.
	AccountFieldID = "username"
	// AnalysisFieldID holds the string denoting the ID field of the Analysis.
	AnalysisFieldID = "analysis_id"
	// DispatchRecordFieldID holds the string denoting the ID field of the DispatchRecord.
	DispatchRecordFieldID = "record_id"
	// Table holds the table name of the post in the database.
	Table = "posts"
	// AccountTable is the table that holds the account relation/edge.
	AccountTable = "posts"
	// AccountInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	AccountInverseTable = "accounts"
	// AccountColumn is the table column denoting the account relation/edge.
	AccountColumn = "account_username"
	// AnalysisTable is the table that holds the analysis relation/edge.
	AnalysisTable = "analyses"
	// AnalysisInverseTable is the table name for the Analysis entity.
	// It exists in this package in order to avoid circular dependency with the "analysis" package.
	AnalysisInverseTable = "analyses"
	// AnalysisColumn is the table column denoting the analysis relation/edge.
	AnalysisColumn = "post_id"
	// DispatchRecordsTable is the table that holds the dispatch_records relation/edge.
	DispatchRecordsTable = "dispatch_records"
	// DispatchRecordsInverseTable is the table name for the DispatchRecord entity.
	// It exists in this package in order to avoid circular dependency with the "dispatchrecord" package.
	DispatchRecordsInverseTable = "dispatch_records"
	// DispatchRecordsColumn is the table column denoting the dispatch_records relation/edge.
	DispatchRecordsColumn = "post_id"
)

// Columns holds all SQL columns for post fields.
var Columns = []string{
	FieldID,
	FieldAccountUsername,
	FieldText,
	FieldCreatedAt,
	FieldIngestedAt,
	FieldLikes,
	FieldReshares,
	FieldReplies,
	FieldMedia,
	FieldStatus,
	FieldFailReason,
	FieldRetryAfter,
	FieldAnalysisAttempts,
	FieldDispatchAttempts,
	FieldPodID,
	FieldClaimedAt,
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
	// AccountUsernameValidator is a validator for the "account_username" field. It is called by the builders before save.
	AccountUsernameValidator func(string) error
	// DefaultIngestedAt holds the default value on creation for the "ingested_at" field.
	DefaultIngestedAt func() time.Time
	// DefaultLikes holds the default value on creation for the "likes" field.
	DefaultLikes int
	// DefaultReshares holds the default value on creation for the "reshares" field.
	DefaultReshares int
	// DefaultReplies holds the default value on creation for the "replies" field.
	DefaultReplies int
	// DefaultAnalysisAttempts holds the default value on creation for the "analysis_attempts" field.
	DefaultAnalysisAttempts int
	// DefaultDispatchAttempts holds the default value on creation for the "dispatch_attempts" field.
	DefaultDispatchAttempts int
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew         Status = "new"
	StatusAnalyzing   Status = "analyzing"
	StatusAnalyzed    Status = "analyzed"
	StatusDispatching Status = "dispatching"
	StatusDispatched  Status = "dispatched"
	StatusFailed      Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusAnalyzing, StatusAnalyzed, StatusDispatching, StatusDispatched, StatusFailed:
		return nil
	default:
		return fmt.Errorf("post: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Post queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountUsername orders the results by the account_username field.
func ByAccountUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountUsername, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByIngestedAt orders the results by the ingested_at field.
func ByIngestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestedAt, opts...).ToFunc()
}

// ByLikes orders the results by the likes field.
func ByLikes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLikes, opts...).ToFunc()
}

// ByReshares orders the results by the reshares field.
func ByReshares(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReshares, opts...).ToFunc()
}

// ByReplies orders the results by the replies field.
func ByReplies(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplies, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFailReason orders the results by the fail_reason field.
func ByFailReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailReason, opts...).ToFunc()
}

// ByRetryAfter orders the results by the retry_after field.
func ByRetryAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryAfter, opts...).ToFunc()
}

// ByAnalysisAttempts orders the results by the analysis_attempts field.
func ByAnalysisAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisAttempts, opts...).ToFunc()
}

// ByDispatchAttempts orders the results by the dispatch_attempts field.
func ByDispatchAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDispatchAttempts, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}

// ByAccountField orders the results by account field.
func ByAccountField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAccountStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnalysisField orders the results by analysis field.
func ByAnalysisField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysisStep(), sql.OrderByField(field, opts...))
	}
}

// ByDispatchRecordsCount orders the results by dispatch_records count.
func ByDispatchRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDispatchRecordsStep(), opts...)
	}
}

// ByDispatchRecords orders the results by dispatch_records terms.
func ByDispatchRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDispatchRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAccountStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AccountInverseTable, AccountFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
	)
}
func newAnalysisStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysisInverseTable, AnalysisFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, AnalysisTable, AnalysisColumn),
	)
}
func newDispatchRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DispatchRecordsInverseTable, DispatchRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DispatchRecordsTable, DispatchRecordsColumn),
	)
}
