// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/signalhouse/postwatch/ent/account"
	"github.com/signalhouse/postwatch/ent/analysis"
	"github.com/signalhouse/postwatch/ent/post"
	"github.com/signalhouse/postwatch/pkg/models"
)

// Post is the model entity for the Post schema.
type Post struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AccountUsername holds the value of the "account_username" field.
	AccountUsername string `json:"account_username,omitempty"`
	// Canonical textual content, may be empty
	Text string `json:"text,omitempty"`
	// Timestamp at the source
	CreatedAt time.Time `json:"created_at,omitempty"`
	// IngestedAt holds the value of the "ingested_at" field.
	IngestedAt time.Time `json:"ingested_at,omitempty"`
	// Likes holds the value of the "likes" field.
	Likes int `json:"likes,omitempty"`
	// Reshares holds the value of the "reshares" field.
	Reshares int `json:"reshares,omitempty"`
	// Replies holds the value of the "replies" field.
	Replies int `json:"replies,omitempty"`
	// Media holds the value of the "media" field.
	Media []models.Media `json:"media,omitempty"`
	// Status holds the value of the "status" field.
	Status post.Status `json:"status,omitempty"`
	// FailReason holds the value of the "fail_reason" field.
	FailReason string `json:"fail_reason,omitempty"`
	// Post is not claimable before this time
	RetryAfter *time.Time `json:"retry_after,omitempty"`
	// AnalysisAttempts holds the value of the "analysis_attempts" field.
	AnalysisAttempts int `json:"analysis_attempts,omitempty"`
	// DispatchAttempts holds the value of the "dispatch_attempts" field.
	DispatchAttempts int `json:"dispatch_attempts,omitempty"`
	// Pod currently holding the claim
	PodID string `json:"pod_id,omitempty"`
	// For stale-claim recovery
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PostQuery when eager-loading is set.
	Edges        PostEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PostEdges holds the relations/edges for other nodes in the graph.
type PostEdges struct {
	// Account holds the value of the account edge.
	Account *Account `json:"account,omitempty"`
	// Analysis holds the value of the analysis edge.
	Analysis *Analysis `json:"analysis,omitempty"`
	// DispatchRecords holds the value of the dispatch_records edge.
	DispatchRecords []*DispatchRecord `json:"dispatch_records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PostEdges) AccountOrErr() (*Account, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// AnalysisOrErr returns the Analysis value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PostEdges) AnalysisOrErr() (*Analysis, error) {
	if e.Analysis != nil {
		return e.Analysis, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: analysis.Label}
	}
	return nil, &NotLoadedError{edge: "analysis"}
}

// DispatchRecordsOrErr returns the DispatchRecords value or an error if the edge
// was not loaded in eager-loading.
func (e PostEdges) DispatchRecordsOrErr() ([]*DispatchRecord, error) {
	if e.loadedTypes[2] {
		return e.DispatchRecords, nil
	}
	return nil, &NotLoadedError{edge: "dispatch_records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Post) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case post.FieldMedia:
			values[i] = new([]byte)
		case post.FieldLikes, post.FieldReshares, post.FieldReplies, post.FieldAnalysisAttempts, post.FieldDispatchAttempts:
			values[i] = new(sql.NullInt64)
		case post.FieldID, post.FieldAccountUsername, post.FieldText, post.FieldStatus, post.FieldFailReason, post.FieldPodID:
			values[i] = new(sql.NullString)
		case post.FieldCreatedAt, post.FieldIngestedAt, post.FieldRetryAfter, post.FieldClaimedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Post fields.
func (_m *Post) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case post.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case post.FieldAccountUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_username", values[i])
			} else if value.Valid {
				_m.AccountUsername = value.String
			}
		case post.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case post.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case post.FieldIngestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ingested_at", values[i])
			} else if value.Valid {
				_m.IngestedAt = value.Time
			}
		case post.FieldLikes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field likes", values[i])
			} else if value.Valid {
				_m.Likes = int(value.Int64)
			}
		case post.FieldReshares:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reshares", values[i])
			} else if value.Valid {
				_m.Reshares = int(value.Int64)
			}
		case post.FieldReplies:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field replies", values[i])
			} else if value.Valid {
				_m.Replies = int(value.Int64)
			}
		case post.FieldMedia:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field media", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Media); err != nil {
					return fmt.Errorf("unmarshal field media: %w", err)
				}
			}
		case post.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = post.Status(value.String)
			}
		case post.FieldFailReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fail_reason", values[i])
			} else if value.Valid {
				_m.FailReason = value.String
			}
		case post.FieldRetryAfter:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field retry_after", values[i])
			} else if value.Valid {
				_m.RetryAfter = new(time.Time)
				*_m.RetryAfter = value.Time
			}
		case post.FieldAnalysisAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_attempts", values[i])
			} else if value.Valid {
				_m.AnalysisAttempts = int(value.Int64)
			}
		case post.FieldDispatchAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dispatch_attempts", values[i])
			} else if value.Valid {
				_m.DispatchAttempts = int(value.Int64)
			}
		case post.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = value.String
			}
		case post.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = new(time.Time)
				*_m.ClaimedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Post.
// This includes values selected through modifiers, order, etc.
func (_m *Post) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the Post entity.
func (_m *Post) QueryAccount() *AccountQuery {
	return NewPostClient(_m.config).QueryAccount(_m)
}

// QueryAnalysis queries the "analysis" edge of the Post entity.
func (_m *Post) QueryAnalysis() *AnalysisQuery {
	return NewPostClient(_m.config).QueryAnalysis(_m)
}

// QueryDispatchRecords queries the "dispatch_records" edge of the Post entity.
func (_m *Post) QueryDispatchRecords() *DispatchRecordQuery {
	return NewPostClient(_m.config).QueryDispatchRecords(_m)
}

// Update returns a builder for updating this Post.
// Note that you need to call Post.Unwrap() before calling this method if this Post
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Post) Update() *PostUpdateOne {
	return NewPostClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Post entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Post) Unwrap() *Post {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Post is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Post) String() string {
	var builder strings.Builder
	builder.WriteString("Post(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_username=")
	builder.WriteString(_m.AccountUsername)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ingested_at=")
	builder.WriteString(_m.IngestedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("likes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Likes))
	builder.WriteString(", ")
	builder.WriteString("reshares=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reshares))
	builder.WriteString(", ")
	builder.WriteString("replies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Replies))
	builder.WriteString(", ")
	builder.WriteString("media=")
	builder.WriteString(fmt.Sprintf("%v", _m.Media))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("fail_reason=")
	builder.WriteString(_m.FailReason)
	builder.WriteString(", ")
	if v := _m.RetryAfter; v != nil {
		builder.WriteString("retry_after=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("analysis_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisAttempts))
	builder.WriteString(", ")
	builder.WriteString("dispatch_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.DispatchAttempts))
	builder.WriteString(", ")
	builder.WriteString("pod_id=")
	builder.WriteString(_m.PodID)
	builder.WriteString(", ")
	if v := _m.ClaimedAt; v != nil {
		builder.WriteString("claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Posts is a parsable slice of Post.
type Posts []*Post
