// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/signalhouse/postwatch/ent/dispatchrecord"
	"github.com/signalhouse/postwatch/ent/post"
)

// DispatchRecord is the model entity for the DispatchRecord schema.
type DispatchRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PostID holds the value of the "post_id" field.
	PostID string `json:"post_id,omitempty"`
	// Destination holds the value of the "destination" field.
	Destination string `json:"destination,omitempty"`
	// AttemptNumber holds the value of the "attempt_number" field.
	AttemptNumber int `json:"attempt_number,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome dispatchrecord.Outcome `json:"outcome,omitempty"`
	// ErrorDetail holds the value of the "error_detail" field.
	ErrorDetail string `json:"error_detail,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt time.Time `json:"sent_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DispatchRecordQuery when eager-loading is set.
	Edges        DispatchRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DispatchRecordEdges holds the relations/edges for other nodes in the graph.
type DispatchRecordEdges struct {
	// Post holds the value of the post edge.
	Post *Post `json:"post,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PostOrErr returns the Post value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DispatchRecordEdges) PostOrErr() (*Post, error) {
	if e.Post != nil {
		return e.Post, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: post.Label}
	}
	return nil, &NotLoadedError{edge: "post"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DispatchRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dispatchrecord.FieldAttemptNumber:
			values[i] = new(sql.NullInt64)
		case dispatchrecord.FieldID, dispatchrecord.FieldPostID, dispatchrecord.FieldDestination, dispatchrecord.FieldOutcome, dispatchrecord.FieldErrorDetail:
			values[i] = new(sql.NullString)
		case dispatchrecord.FieldSentAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DispatchRecord fields.
func (_m *DispatchRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dispatchrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dispatchrecord.FieldPostID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_id", values[i])
			} else if value.Valid {
				_m.PostID = value.String
			}
		case dispatchrecord.FieldDestination:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field destination", values[i])
			} else if value.Valid {
				_m.Destination = value.String
			}
		case dispatchrecord.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case dispatchrecord.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = dispatchrecord.Outcome(value.String)
			}
		case dispatchrecord.FieldErrorDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_detail", values[i])
			} else if value.Valid {
				_m.ErrorDetail = value.String
			}
		case dispatchrecord.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DispatchRecord.
// This includes values selected through modifiers, order, etc.
func (_m *DispatchRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPost queries the "post" edge of the DispatchRecord entity.
func (_m *DispatchRecord) QueryPost() *PostQuery {
	return NewDispatchRecordClient(_m.config).QueryPost(_m)
}

// Update returns a builder for updating this DispatchRecord.
// Note that you need to call DispatchRecord.Unwrap() before calling this method if this DispatchRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DispatchRecord) Update() *DispatchRecordUpdateOne {
	return NewDispatchRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DispatchRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DispatchRecord) Unwrap() *DispatchRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DispatchRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DispatchRecord) String() string {
	var builder strings.Builder
	builder.WriteString("DispatchRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("post_id=")
	builder.WriteString(_m.PostID)
	builder.WriteString(", ")
	builder.WriteString("destination=")
	builder.WriteString(_m.Destination)
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outcome))
	builder.WriteString(", ")
	builder.WriteString("error_detail=")
	builder.WriteString(_m.ErrorDetail)
	builder.WriteString(", ")
	builder.WriteString("sent_at=")
	builder.WriteString(_m.SentAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DispatchRecords is a parsable slice of DispatchRecord.
type DispatchRecords []*DispatchRecord
