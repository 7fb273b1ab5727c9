// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_polled_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_seen_post_id", Type: field.TypeString, Nullable: true},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_enabled",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[1]},
			},
		},
	}
	// AnalysesColumns holds the columns for the "analyses" table.
	AnalysesColumns = []*schema.Column{
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "model", Type: field.TypeString},
		{Name: "prompt_snapshot", Type: field.TypeString, Size: 2147483647},
		{Name: "params_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "output_text", Type: field.TypeString, Size: 2147483647},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "cost_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "elapsed_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "post_id", Type: field.TypeString, Unique: true},
	}
	// AnalysesTable holds the schema information for the "analyses" table.
	AnalysesTable = &schema.Table{
		Name:       "analyses",
		Columns:    AnalysesColumns,
		PrimaryKey: []*schema.Column{AnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analyses_posts_analysis",
				Columns:    []*schema.Column{AnalysesColumns[9]},
				RefColumns: []*schema.Column{PostsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysis_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[8]},
			},
		},
	}
	// DispatchRecordsColumns holds the columns for the "dispatch_records" table.
	DispatchRecordsColumns = []*schema.Column{
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "destination", Type: field.TypeString},
		{Name: "attempt_number", Type: field.TypeInt, Default: 1},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"ok", "transient_fail", "permanent_fail"}},
		{Name: "error_detail", Type: field.TypeString, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime},
		{Name: "post_id", Type: field.TypeString},
	}
	// DispatchRecordsTable holds the schema information for the "dispatch_records" table.
	DispatchRecordsTable = &schema.Table{
		Name:       "dispatch_records",
		Columns:    DispatchRecordsColumns,
		PrimaryKey: []*schema.Column{DispatchRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dispatch_records_posts_dispatch_records",
				Columns:    []*schema.Column{DispatchRecordsColumns[6]},
				RefColumns: []*schema.Column{PostsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dispatchrecord_post_id_sent_at",
				Unique:  false,
				Columns: []*schema.Column{DispatchRecordsColumns[6], DispatchRecordsColumns[5]},
			},
		},
	}
	// PostsColumns holds the columns for the "posts" table.
	PostsColumns = []*schema.Column{
		{Name: "post_id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ingested_at", Type: field.TypeTime},
		{Name: "likes", Type: field.TypeInt, Default: 0},
		{Name: "reshares", Type: field.TypeInt, Default: 0},
		{Name: "replies", Type: field.TypeInt, Default: 0},
		{Name: "media", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "analyzing", "analyzed", "dispatching", "dispatched", "failed"}, Default: "new"},
		{Name: "fail_reason", Type: field.TypeString, Nullable: true},
		{Name: "retry_after", Type: field.TypeTime, Nullable: true},
		{Name: "analysis_attempts", Type: field.TypeInt, Default: 0},
		{Name: "dispatch_attempts", Type: field.TypeInt, Default: 0},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "account_username", Type: field.TypeString},
	}
	// PostsTable holds the schema information for the "posts" table.
	PostsTable = &schema.Table{
		Name:       "posts",
		Columns:    PostsColumns,
		PrimaryKey: []*schema.Column{PostsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "posts_accounts_posts",
				Columns:    []*schema.Column{PostsColumns[15]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "post_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[8], PostsColumns[2]},
			},
			{
				Name:    "post_account_username_created_at",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[15], PostsColumns[2]},
			},
			{
				Name:    "post_status_claimed_at",
				Unique:  false,
				Columns: []*schema.Column{PostsColumns[8], PostsColumns[14]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		AnalysesTable,
		DispatchRecordsTable,
		PostsTable,
		SettingsTable,
	}
)

func init() {
	AnalysesTable.ForeignKeys[0].RefTable = PostsTable
	DispatchRecordsTable.ForeignKeys[0].RefTable = PostsTable
	PostsTable.ForeignKeys[0].RefTable = AccountsTable
}
