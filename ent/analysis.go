// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/signalhouse/postwatch/ent/analysis"
	"github.com/signalhouse/postwatch/ent/post"
)

// Analysis is the model entity for the Analysis schema.
type Analysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PostID holds the value of the "post_id" field.
	PostID string `json:"post_id,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Rendered prompt as sent to the model
	PromptSnapshot string `json:"prompt_snapshot,omitempty"`
	// ParamsSnapshot holds the value of the "params_snapshot" field.
	ParamsSnapshot map[string]interface{} `json:"params_snapshot,omitempty"`
	// OutputText holds the value of the "output_text" field.
	OutputText string `json:"output_text,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int `json:"tokens_used,omitempty"`
	// CostEstimate holds the value of the "cost_estimate" field.
	CostEstimate float64 `json:"cost_estimate,omitempty"`
	// ElapsedMs holds the value of the "elapsed_ms" field.
	ElapsedMs int64 `json:"elapsed_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisQuery when eager-loading is set.
	Edges        AnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisEdges holds the relations/edges for other nodes in the graph.
type AnalysisEdges struct {
	// Post holds the value of the post edge.
	Post *Post `json:"post,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PostOrErr returns the Post value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisEdges) PostOrErr() (*Post, error) {
	if e.Post != nil {
		return e.Post, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: post.Label}
	}
	return nil, &NotLoadedError{edge: "post"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Analysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysis.FieldParamsSnapshot:
			values[i] = new([]byte)
		case analysis.FieldCostEstimate:
			values[i] = new(sql.NullFloat64)
		case analysis.FieldTokensUsed, analysis.FieldElapsedMs:
			values[i] = new(sql.NullInt64)
		case analysis.FieldID, analysis.FieldPostID, analysis.FieldModel, analysis.FieldPromptSnapshot, analysis.FieldOutputText:
			values[i] = new(sql.NullString)
		case analysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Analysis fields.
func (_m *Analysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analysis.FieldPostID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_id", values[i])
			} else if value.Valid {
				_m.PostID = value.String
			}
		case analysis.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case analysis.FieldPromptSnapshot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_snapshot", values[i])
			} else if value.Valid {
				_m.PromptSnapshot = value.String
			}
		case analysis.FieldParamsSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field params_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParamsSnapshot); err != nil {
					return fmt.Errorf("unmarshal field params_snapshot: %w", err)
				}
			}
		case analysis.FieldOutputText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_text", values[i])
			} else if value.Valid {
				_m.OutputText = value.String
			}
		case analysis.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = int(value.Int64)
			}
		case analysis.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = value.Float64
			}
		case analysis.FieldElapsedMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed_ms", values[i])
			} else if value.Valid {
				_m.ElapsedMs = value.Int64
			}
		case analysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Analysis.
// This includes values selected through modifiers, order, etc.
func (_m *Analysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPost queries the "post" edge of the Analysis entity.
func (_m *Analysis) QueryPost() *PostQuery {
	return NewAnalysisClient(_m.config).QueryPost(_m)
}

// Update returns a builder for updating this Analysis.
// Note that you need to call Analysis.Unwrap() before calling this method if this Analysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Analysis) Update() *AnalysisUpdateOne {
	return NewAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Analysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Analysis) Unwrap() *Analysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Analysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Analysis) String() string {
	var builder strings.Builder
	builder.WriteString("Analysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("post_id=")
	builder.WriteString(_m.PostID)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("prompt_snapshot=")
	builder.WriteString(_m.PromptSnapshot)
	builder.WriteString(", ")
	builder.WriteString("params_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParamsSnapshot))
	builder.WriteString(", ")
	builder.WriteString("output_text=")
	builder.WriteString(_m.OutputText)
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("cost_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostEstimate))
	builder.WriteString(", ")
	builder.WriteString("elapsed_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ElapsedMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Analyses is a parsable slice of Analysis.
type Analyses []*Analysis
