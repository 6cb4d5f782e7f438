package dto

import (
	"jumatrek/internal/domains/trip/model"
	"jumatrek/shared"
	"jumatrek/shared/constant"
	gDto "jumatrek/shared/dto"
	gModel "jumatrek/shared/model"
	"jumatrek/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type EmergencyContact struct {
	Name         string `json:"name"         validate:"omitempty,max=100"`
	Phone        string `json:"phone"        validate:"omitempty,max=20"`
	Relationship string `json:"relationship" validate:"omitempty,max=50"`
}

type ContactInfo struct {
	Name             string           `json:"name"              validate:"omitempty,max=100"`
	Email            string           `json:"email"             validate:"omitempty,email,max=100"`
	Phone            string           `json:"phone"             validate:"omitempty,max=20"`
	Country          string           `json:"country"           validate:"omitempty,max=100"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
}

type CreateCustomTripRequest struct {
	Destination         string           `json:"destination"          validate:"required,max=100"`
	CustomDestination   string           `json:"custom_destination"   validate:"omitempty,max=100"`
	StartDate           string           `json:"start_date"           validate:"omitempty"`
	EndDate             string           `json:"end_date"             validate:"omitempty"`
	Duration            *int             `json:"duration"             validate:"omitempty,min=1"`
	GroupSize           int              `json:"group_size"           validate:"required,min=1"`
	GroupType           string           `json:"group_type"           validate:"omitempty,max=50"`
	MinAge              *int             `json:"min_age"              validate:"omitempty,min=0"`
	MaxAge              *int             `json:"max_age"              validate:"omitempty,min=0"`
	ExperienceLevel     string           `json:"experience_level"     validate:"omitempty,max=50"`
	FitnessLevel        string           `json:"fitness_level"        validate:"omitempty,max=50"`
	Accommodation       string           `json:"accommodation"        validate:"omitempty,max=50"`
	MealPreferences     gDto.StringList  `json:"meal_preferences"     validate:"omitempty,dive,max=50"`
	DietaryRequirements string           `json:"dietary_requirements" validate:"omitempty"`
	NeedsGuide          bool             `json:"needs_guide"`
	NeedsPorter         bool             `json:"needs_porter"`
	Transportation      gDto.StringList  `json:"transportation"       validate:"omitempty,dive,max=50"`
	TravelInsurance     bool             `json:"travel_insurance"`
	EquipmentRental     bool             `json:"equipment_rental"`
	BudgetRange         string           `json:"budget_range"         validate:"omitempty,max=50"`
	BudgetAmount        *float64         `json:"budget_amount"        validate:"omitempty,min=0"`
	SpecialRequests     string           `json:"special_requests"     validate:"omitempty"`
	ContactInfo         ContactInfo      `json:"contact_info"`
	TermsAgreed         bool             `json:"terms_agreed"         validate:"required"`
}

// ToModel builds the stored entity. The owner and initial status come
// from here, never from the payload.
func (c *CreateCustomTripRequest) ToModel(userID string) (model.CustomTrip, error) {
	var startDate, endDate *time.Time

	if c.StartDate != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, c.StartDate)
		if err != nil {
			return model.CustomTrip{}, err
		}

		startDate = &parsed
	}

	if c.EndDate != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, c.EndDate)
		if err != nil {
			return model.CustomTrip{}, err
		}

		endDate = &parsed
	}

	return model.CustomTrip{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Destination:         c.Destination,
		CustomDestination:   c.CustomDestination,
		StartDate:           startDate,
		EndDate:             endDate,
		Duration:            c.Duration,
		GroupSize:           c.GroupSize,
		GroupType:           c.GroupType,
		MinAge:              c.MinAge,
		MaxAge:              c.MaxAge,
		ExperienceLevel:     c.ExperienceLevel,
		FitnessLevel:        c.FitnessLevel,
		Accommodation:       c.Accommodation,
		MealPreferences:     []string(c.MealPreferences),
		DietaryRequirements: c.DietaryRequirements,
		NeedsGuide:          c.NeedsGuide,
		NeedsPorter:         c.NeedsPorter,
		Transportation:      []string(c.Transportation),
		TravelInsurance:     c.TravelInsurance,
		EquipmentRental:     c.EquipmentRental,
		BudgetRange:         c.BudgetRange,
		BudgetAmount:        c.BudgetAmount,
		SpecialRequests:     c.SpecialRequests,
		ContactName:         c.ContactInfo.Name,
		ContactEmail:        c.ContactInfo.Email,
		ContactPhone:        c.ContactInfo.Phone,
		ContactCountry:      c.ContactInfo.Country,
		EmergencyContact: model.EmergencyContact{
			Name:         c.ContactInfo.EmergencyContact.Name,
			Phone:        c.ContactInfo.EmergencyContact.Phone,
			Relationship: c.ContactInfo.EmergencyContact.Relationship,
		},
		TermsAgreed: c.TermsAgreed,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}, nil
}

// UpdateStatusRequest carries the admin moderation patch. Both fields are
// presence-checked: a nil pointer means "leave untouched" while an empty
// string in AdminNotes is a deliberate overwrite.
type UpdateStatusRequest struct {
	Status     *string `json:"status"      validate:"omitempty"`
	AdminNotes *string `json:"admin_notes" validate:"omitempty"`
}

type ReplyRequest struct {
	Message string `json:"message" validate:"required"`
}

type LastReplyResponse struct {
	Text       string `json:"text"`
	SentAt     string `json:"sent_at"`
	AdminEmail string `json:"admin_email"`
	AdminName  string `json:"admin_name"`
}

type CustomTripResponse struct {
	ID                  string             `json:"id"`
	UserID              string             `json:"user_id"`
	Destination         string             `json:"destination"`
	DestinationName     string             `json:"destination_name,omitempty"`
	CustomDestination   string             `json:"custom_destination,omitempty"`
	StartDate           string             `json:"start_date,omitempty"`
	EndDate             string             `json:"end_date,omitempty"`
	Duration            *int               `json:"duration,omitempty"`
	GroupSize           int                `json:"group_size"`
	GroupType           string             `json:"group_type,omitempty"`
	MinAge              *int               `json:"min_age,omitempty"`
	MaxAge              *int               `json:"max_age,omitempty"`
	ExperienceLevel     string             `json:"experience_level,omitempty"`
	FitnessLevel        string             `json:"fitness_level,omitempty"`
	Accommodation       string             `json:"accommodation,omitempty"`
	MealPreferences     []string           `json:"meal_preferences,omitempty"`
	DietaryRequirements string             `json:"dietary_requirements,omitempty"`
	NeedsGuide          bool               `json:"needs_guide"`
	NeedsPorter         bool               `json:"needs_porter"`
	Transportation      []string           `json:"transportation,omitempty"`
	TravelInsurance     bool               `json:"travel_insurance"`
	EquipmentRental     bool               `json:"equipment_rental"`
	BudgetRange         string             `json:"budget_range,omitempty"`
	BudgetAmount        *float64           `json:"budget_amount,omitempty"`
	SpecialRequests     string             `json:"special_requests,omitempty"`
	ContactInfo         ContactInfo        `json:"contact_info"`
	TermsAgreed         bool               `json:"terms_agreed"`
	Status              string             `json:"status"`
	AdminNotes          string             `json:"admin_notes,omitempty"`
	LastReply           *LastReplyResponse `json:"last_reply,omitempty"`
	gDto.Metadata
}

func (r *CustomTripResponse) FromModel(model model.CustomTrip) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Destination = model.Destination
	r.CustomDestination = model.CustomDestination

	if model.StartDate != nil {
		r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	}

	if model.EndDate != nil {
		r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	}

	r.Duration = model.Duration
	r.GroupSize = model.GroupSize
	r.GroupType = model.GroupType
	r.MinAge = model.MinAge
	r.MaxAge = model.MaxAge
	r.ExperienceLevel = model.ExperienceLevel
	r.FitnessLevel = model.FitnessLevel
	r.Accommodation = model.Accommodation
	r.MealPreferences = model.MealPreferences
	r.DietaryRequirements = model.DietaryRequirements
	r.NeedsGuide = model.NeedsGuide
	r.NeedsPorter = model.NeedsPorter
	r.Transportation = model.Transportation
	r.TravelInsurance = model.TravelInsurance
	r.EquipmentRental = model.EquipmentRental
	r.BudgetRange = model.BudgetRange
	r.BudgetAmount = model.BudgetAmount
	r.SpecialRequests = model.SpecialRequests
	r.ContactInfo = ContactInfo{
		Name:    model.ContactName,
		Email:   model.ContactEmail,
		Phone:   model.ContactPhone,
		Country: model.ContactCountry,
		EmergencyContact: EmergencyContact{
			Name:         model.EmergencyContact.Name,
			Phone:        model.EmergencyContact.Phone,
			Relationship: model.EmergencyContact.Relationship,
		},
	}
	r.TermsAgreed = model.TermsAgreed
	r.Status = model.Status
	r.AdminNotes = model.AdminNotes

	if model.LastReplyText != nil && model.LastReplySentAt != nil {
		reply := LastReplyResponse{
			Text:   *model.LastReplyText,
			SentAt: model.LastReplySentAt.Format(constant.DateFormat),
		}

		if model.LastReplyAdminEmail != nil {
			reply.AdminEmail = *model.LastReplyAdminEmail
		}

		if model.LastReplyAdminName != nil {
			reply.AdminName = *model.LastReplyAdminName
		}

		r.LastReply = &reply
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetCustomTripsResponse struct {
	Requests  []CustomTripResponse `json:"requests"`
	TotalPage int                  `json:"total_page"`
	TotalData int                  `json:"total_data"`
}

func (r *GetCustomTripsResponse) FromModels(models []model.CustomTrip, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]CustomTripResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
