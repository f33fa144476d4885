package waitlist

import (
	"github.com/akeren/waitlist-foundry/internal/backend"
	"github.com/akeren/waitlist-foundry/internal/models"
	"github.com/akeren/waitlist-foundry/pkg/constants"
)

type SubmitWaitlistRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// ClientMeta is best-effort request metadata stored by relational backends.
type ClientMeta struct {
	IPAddress string
	UserAgent string
}

type WaitlistEntryResponse struct {
	ID           any    `json:"id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	CreatedAt    string `json:"created_at"`
	IPAddress    string `json:"ip_address,omitempty"`
	UserAgent    string `json:"user_agent,omitempty"`
	UpdatedRange string `json:"updated_range,omitempty"`
}

func ToWaitlistEntryModel(req *SubmitWaitlistRequest, meta ClientMeta) *models.WaitlistEntry {
	if req == nil {
		return nil
	}
	return &models.WaitlistEntry{
		Name:      req.Name,
		Email:     req.Email,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	}
}

func ToWaitlistEntryResponse(result *backend.Result) WaitlistEntryResponse {
	if result == nil {
		return WaitlistEntryResponse{}
	}
	entry := result.Entry
	response := WaitlistEntryResponse{
		Name:         entry.Name,
		Email:        entry.Email,
		CreatedAt:    entry.CreatedAt.UTC().Format(constants.ISO8601MillisFormat),
		IPAddress:    entry.IPAddress,
		UserAgent:    entry.UserAgent,
		UpdatedRange: result.UpdatedRange,
	}

	switch {
	case result.RowID != "":
		response.ID = result.RowID
	case entry.ID != 0:
		response.ID = entry.ID
	}

	return response
}
