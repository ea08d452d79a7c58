package customer

import (
	"github.com/google/uuid"
	"logistics/internal/entities"
)

// Wire names follow the customer service's Spanish API contract.
type customerDTO struct {
	ID       uuid.UUID `json:"id"`
	Nombre   string    `json:"nombre"`
	Email    string    `json:"email"`
	Telefono string    `json:"telefono"`
	Empresa  string    `json:"empresa"`
}

type createCustomerDTO struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Empresa  string `json:"empresa"`
}

func toDomain(dto *customerDTO) *entities.Customer {
	if dto == nil {
		return nil
	}

	return &entities.Customer{
		ID:      dto.ID,
		Name:    dto.Nombre,
		Email:   dto.Email,
		Phone:   dto.Telefono,
		Company: dto.Empresa,
	}
}

func fromDomainNew(newCustomer entities.NewCustomer) createCustomerDTO {
	return createCustomerDTO{
		Nombre:   newCustomer.Name,
		Email:    newCustomer.Email,
		Telefono: newCustomer.Phone,
		Empresa:  newCustomer.Company,
	}
}
