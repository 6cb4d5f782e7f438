package dto

import (
	"jumatrek/internal/domains/inquiry/model"
	"jumatrek/shared"
	"jumatrek/shared/constant"
	gDto "jumatrek/shared/dto"
	gModel "jumatrek/shared/model"
	"jumatrek/shared/timezone"

	"github.com/google/uuid"
)

// CreateInquiryRequest leaves required-field enforcement to the service:
// blanks may still be back-filled from an authenticated profile before
// the check runs.
type CreateInquiryRequest struct {
	Name    string `json:"name"    validate:"omitempty,max=100"`
	Email   string `json:"email"   validate:"omitempty,email,max=100"`
	Phone   string `json:"phone"   validate:"omitempty,max=20"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"omitempty"`
}

func (c *CreateInquiryRequest) ToModel(userID string) model.Inquiry {
	var owner *string
	if userID != "" {
		owner = &userID
	}

	createdBy := userID
	if createdBy == "" {
		createdBy = "anonymous"
	}

	return model.Inquiry{
		ID:      uuid.NewString(),
		UserID:  owner,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: c.Subject,
		Message: c.Message,
		Status:  model.StatusNew,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateStatusRequest struct {
	Status *string `json:"status" validate:"omitempty"`
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

type InquiryResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id,omitempty"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone,omitempty"`
	Subject   string             `json:"subject"`
	Message   string             `json:"message"`
	Status    string             `json:"status"`
	LastReply *LastReplyResponse `json:"last_reply,omitempty"`
	gDto.Metadata
}

func (r *InquiryResponse) FromModel(model model.Inquiry) {
	r.ID = model.ID

	if model.UserID != nil {
		r.UserID = *model.UserID
	}

	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Subject = model.Subject
	r.Message = model.Message
	r.Status = model.Status

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

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInquiriesResponse) FromModels(models []model.Inquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inquiries = make([]InquiryResponse, len(models))
	for i, mod := range models {
		r.Inquiries[i].FromModel(mod)
	}
}
