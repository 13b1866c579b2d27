package handlers

import (
	"time"

	"github.com/BruksfildServices01/connect-marketplace/internal/models"
	ucAccount "github.com/BruksfildServices01/connect-marketplace/internal/usecase/account"
)

// --------- Catalog ---------

type ServiceResponse struct {
	ID           uint      `json:"id"`
	Category     uint      `json:"category"`
	CategoryName string    `json:"category_name"`
	ServiceName  string    `json:"service_name"`
	Description  *string   `json:"description"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func serviceView(s *models.Service) ServiceResponse {
	return ServiceResponse{
		ID:           s.ID,
		Category:     s.CategoryID,
		CategoryName: s.Category.CategoryName,
		ServiceName:  s.ServiceName,
		Description:  s.Description,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
	}
}

func serviceViews(services []models.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, serviceView(&services[i]))
	}
	return out
}

// --------- Accounts ---------

type ServiceProviderResponse struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	PhoneNumber string  `json:"phone_number"`
	CompanyName *string `json:"company_name"`
}

func serviceProviderView(p *models.ServiceProvider) ServiceProviderResponse {
	return ServiceProviderResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		FirstName:   p.User.FirstName,
		LastName:    p.User.LastName,
		Email:       p.User.Email,
		Role:        p.User.Role,
		PhoneNumber: p.PhoneNumber,
		CompanyName: p.CompanyName,
	}
}

// SystemManagerResponse is keyed by the user id, the identifier the admin
// endpoints take.
type SystemManagerResponse struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Role        string  `json:"role"`
	PhoneNumber *string `json:"phone_number"`
}

func systemManagerView(user *models.User, m *models.SystemManager) SystemManagerResponse {
	resp := SystemManagerResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}
	if m != nil {
		phone := m.PhoneNumber
		resp.PhoneNumber = &phone
	}
	return resp
}

type serviceProfileView struct {
	PhoneNumber string  `json:"phone_number"`
	CompanyName *string `json:"company_name"`
}

type systemProfileView struct {
	PhoneNumber string `json:"phone_number"`
}

type AccountResponse struct {
	ID             uint                `json:"id"`
	Email          string              `json:"email"`
	Username       string              `json:"username"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	Role           string              `json:"role"`
	ServiceProfile *serviceProfileView `json:"service_profile"`
	SystemProfile  *systemProfileView  `json:"system_profile,omitempty"`
}

func accountView(p *ucAccount.Profile) AccountResponse {
	resp := AccountResponse{
		ID:        p.User.ID,
		Email:     p.User.Email,
		Username:  p.User.Username,
		FirstName: p.User.FirstName,
		LastName:  p.User.LastName,
		Role:      p.User.Role,
	}
	if p.Provider != nil {
		resp.ServiceProfile = &serviceProfileView{
			PhoneNumber: p.Provider.PhoneNumber,
			CompanyName: p.Provider.CompanyName,
		}
	}
	if p.Manager != nil {
		resp.SystemProfile = &systemProfileView{PhoneNumber: p.Manager.PhoneNumber}
	}
	return resp
}
