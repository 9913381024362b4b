// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_patients_conversations",
				Columns:    []*schema.Column{ConversationsColumns[6]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_patient_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[6], ConversationsColumns[5]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sender", Type: field.TypeEnum, Enums: []string{"user", "agent"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "detected_emotion", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "emotion_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "risk_level", Type: field.TypeEnum, Nullable: true, Enums: []string{"none", "medium", "high", "critical"}},
		{Name: "risk_keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "intent", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "intent_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "conversation_id", Type: field.TypeUUID},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[10]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[10], MessagesColumns[1]},
			},
		},
	}
	// MoodEntriesColumns holds the columns for the "mood_entries" table.
	MoodEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "mood", Type: field.TypeInt},
		{Name: "energy", Type: field.TypeInt},
		{Name: "sleep_quality", Type: field.TypeInt},
		{Name: "stress", Type: field.TypeInt},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// MoodEntriesTable holds the schema information for the "mood_entries" table.
	MoodEntriesTable = &schema.Table{
		Name:       "mood_entries",
		Columns:    MoodEntriesColumns,
		PrimaryKey: []*schema.Column{MoodEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mood_entries_patients_mood_entries",
				Columns:    []*schema.Column{MoodEntriesColumns[7]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "moodentry_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MoodEntriesColumns[7], MoodEntriesColumns[1]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "phone_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "emergency_contact", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "emergency_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_user",
				Columns:    []*schema.Column{PatientsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[8]},
			},
		},
	}
	// ScreeningAlertsColumns holds the columns for the "screening_alerts" table.
	ScreeningAlertsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "alert_type", Type: field.TypeEnum, Enums: []string{"score_increase", "suicidal_ideation", "crisis"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "delta_score", Type: field.TypeInt, Nullable: true},
		{Name: "window_days", Type: field.TypeInt, Nullable: true},
		{Name: "is_resolved", Type: field.TypeBool, Default: false},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "screening_result_id", Type: field.TypeUUID, Nullable: true},
	}
	// ScreeningAlertsTable holds the schema information for the "screening_alerts" table.
	ScreeningAlertsTable = &schema.Table{
		Name:       "screening_alerts",
		Columns:    ScreeningAlertsColumns,
		PrimaryKey: []*schema.Column{ScreeningAlertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "screening_alerts_patients_alerts",
				Columns:    []*schema.Column{ScreeningAlertsColumns[8]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "screening_alerts_screening_results_alert",
				Columns:    []*schema.Column{ScreeningAlertsColumns[9]},
				RefColumns: []*schema.Column{ScreeningResultsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "screeningalert_screening_result_id",
				Unique:  true,
				Columns: []*schema.Column{ScreeningAlertsColumns[9]},
			},
			{
				Name:    "screeningalert_patient_id_is_resolved_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScreeningAlertsColumns[8], ScreeningAlertsColumns[6], ScreeningAlertsColumns[1]},
			},
		},
	}
	// ScreeningResultsColumns holds the columns for the "screening_results" table.
	ScreeningResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "instrument", Type: field.TypeEnum, Enums: []string{"phq9", "gad7"}},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "total_score", Type: field.TypeInt},
		{Name: "severity_band", Type: field.TypeEnum, Enums: []string{"minimal", "mild", "moderate", "moderately_severe", "severe"}},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}},
		{Name: "triage_action", Type: field.TypeEnum, Enums: []string{"trigger_referral", "clinician_alert", "recommend_self_care"}},
		{Name: "recommended_module", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// ScreeningResultsTable holds the schema information for the "screening_results" table.
	ScreeningResultsTable = &schema.Table{
		Name:       "screening_results",
		Columns:    ScreeningResultsColumns,
		PrimaryKey: []*schema.Column{ScreeningResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "screening_results_patients_screenings",
				Columns:    []*schema.Column{ScreeningResultsColumns[9]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "screeningresult_patient_id_instrument_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScreeningResultsColumns[9], ScreeningResultsColumns[2], ScreeningResultsColumns[1]},
			},
		},
	}
	// SelfCareExercisesColumns holds the columns for the "self_care_exercises" table.
	SelfCareExercisesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "exercise_type", Type: field.TypeEnum, Enums: []string{"breathing", "meditation", "journaling", "relaxation", "physical"}},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"beginner", "intermediate", "advanced"}, Default: "beginner"},
		{Name: "instructions", Type: field.TypeString, Size: 2147483647},
		{Name: "benefits", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// SelfCareExercisesTable holds the schema information for the "self_care_exercises" table.
	SelfCareExercisesTable = &schema.Table{
		Name:       "self_care_exercises",
		Columns:    SelfCareExercisesColumns,
		PrimaryKey: []*schema.Column{SelfCareExercisesColumns[0]},
	}
	// TeleconsultReferralsColumns holds the columns for the "teleconsult_referrals" table.
	TeleconsultReferralsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "reason", Type: field.TypeString, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "urgent"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "scheduled", "completed", "cancelled"}, Default: "pending"},
		{Name: "scheduled_date", Type: field.TypeTime, Nullable: true},
		{Name: "clinician_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "screening_result_id", Type: field.TypeUUID},
	}
	// TeleconsultReferralsTable holds the schema information for the "teleconsult_referrals" table.
	TeleconsultReferralsTable = &schema.Table{
		Name:       "teleconsult_referrals",
		Columns:    TeleconsultReferralsColumns,
		PrimaryKey: []*schema.Column{TeleconsultReferralsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "teleconsult_referrals_patients_referrals",
				Columns:    []*schema.Column{TeleconsultReferralsColumns[8]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "teleconsult_referrals_screening_results_referral",
				Columns:    []*schema.Column{TeleconsultReferralsColumns[9]},
				RefColumns: []*schema.Column{ScreeningResultsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "teleconsultreferral_screening_result_id",
				Unique:  true,
				Columns: []*schema.Column{TeleconsultReferralsColumns[9]},
			},
			{
				Name:    "teleconsultreferral_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{TeleconsultReferralsColumns[8], TeleconsultReferralsColumns[5]},
			},
			{
				Name:    "teleconsultreferral_status_priority",
				Unique:  false,
				Columns: []*schema.Column{TeleconsultReferralsColumns[5], TeleconsultReferralsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "full_name", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "clinician", "admin"}, Default: "patient"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConversationsTable,
		MessagesTable,
		MoodEntriesTable,
		NotificationsTable,
		PatientsTable,
		ScreeningAlertsTable,
		ScreeningResultsTable,
		SelfCareExercisesTable,
		TeleconsultReferralsTable,
		UsersTable,
		UserSessionsTable,
	}
)

func init() {
	ConversationsTable.ForeignKeys[0].RefTable = PatientsTable
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	MoodEntriesTable.ForeignKeys[0].RefTable = PatientsTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	ScreeningAlertsTable.ForeignKeys[0].RefTable = PatientsTable
	ScreeningAlertsTable.ForeignKeys[1].RefTable = ScreeningResultsTable
	ScreeningResultsTable.ForeignKeys[0].RefTable = PatientsTable
	TeleconsultReferralsTable.ForeignKeys[0].RefTable = PatientsTable
	TeleconsultReferralsTable.ForeignKeys[1].RefTable = ScreeningResultsTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}
