package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"jumatrek/shared/model"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "custom_trip_requests"
	EntityName = "custom_trip_request"

	FieldID                  = "id"
	FieldUserID              = "user_id"
	FieldDestination         = "destination"
	FieldCustomDestination   = "custom_destination"
	FieldStartDate           = "start_date"
	FieldEndDate             = "end_date"
	FieldDuration            = "duration"
	FieldGroupSize           = "group_size"
	FieldGroupType           = "group_type"
	FieldStatus              = "status"
	FieldAdminNotes          = "admin_notes"
	FieldLastReplyText       = "last_reply_text"
	FieldLastReplySentAt     = "last_reply_sent_at"
	FieldLastReplyAdminEmail = "last_reply_admin_email"
	FieldLastReplyAdminName  = "last_reply_admin_name"
)

const (
	StatusPending   = "pending"
	StatusReviewed  = "reviewed"
	StatusReplied   = "replied"
	StatusConfirmed = "confirmed"
	StatusArchived  = "archived"
)

// Statuses is the full status enum, in workflow order.
var Statuses = []string{StatusPending, StatusReviewed, StatusReplied, StatusConfirmed, StatusArchived}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}

	return false
}

// EmergencyContact is stored as a jsonb column.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

func (e EmergencyContact) Value() (driver.Value, error) {
	val, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal emergency contact: %w", err)
	}

	return val, nil
}

func (e *EmergencyContact) Scan(src any) error {
	if src == nil {
		return nil
	}

	raw, ok := src.([]byte)
	if !ok {
		return errors.New("emergency contact: unsupported scan source")
	}

	if err := json.Unmarshal(raw, e); err != nil {
		return fmt.Errorf("failed to unmarshal emergency contact: %w", err)
	}

	return nil
}

// CustomTrip is a bespoke itinerary request tracked through the admin
// review and reply workflow. The last reply columns are set together and
// only after an outbound email has actually been delivered.
type CustomTrip struct {
	ID                  string           `db:"id"`
	UserID              string           `db:"user_id"`
	Destination         string           `db:"destination"`
	CustomDestination   string           `db:"custom_destination"`
	StartDate           *time.Time       `db:"start_date"`
	EndDate             *time.Time       `db:"end_date"`
	Duration            *int             `db:"duration"`
	GroupSize           int              `db:"group_size"`
	GroupType           string           `db:"group_type"`
	MinAge              *int             `db:"min_age"`
	MaxAge              *int             `db:"max_age"`
	ExperienceLevel     string           `db:"experience_level"`
	FitnessLevel        string           `db:"fitness_level"`
	Accommodation       string           `db:"accommodation"`
	MealPreferences     pq.StringArray   `db:"meal_preferences"`
	DietaryRequirements string           `db:"dietary_requirements"`
	NeedsGuide          bool             `db:"needs_guide"`
	NeedsPorter         bool             `db:"needs_porter"`
	Transportation      pq.StringArray   `db:"transportation"`
	TravelInsurance     bool             `db:"travel_insurance"`
	EquipmentRental     bool             `db:"equipment_rental"`
	BudgetRange         string           `db:"budget_range"`
	BudgetAmount        *float64         `db:"budget_amount"`
	SpecialRequests     string           `db:"special_requests"`
	ContactName         string           `db:"contact_name"`
	ContactEmail        string           `db:"contact_email"`
	ContactPhone        string           `db:"contact_phone"`
	ContactCountry      string           `db:"contact_country"`
	EmergencyContact    EmergencyContact `db:"emergency_contact"`
	TermsAgreed         bool             `db:"terms_agreed"`
	Status              string           `db:"status"`
	AdminNotes          string           `db:"admin_notes"`
	LastReplyText       *string          `db:"last_reply_text"`
	LastReplySentAt     *time.Time       `db:"last_reply_sent_at"`
	LastReplyAdminEmail *string          `db:"last_reply_admin_email"`
	LastReplyAdminName  *string          `db:"last_reply_admin_name"`
	model.Metadata
}
