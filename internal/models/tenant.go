package models

import (
	"time"

	"github.com/rmendes/imobi/internal/br"
)

// Tenant represents a renter (locatario) registered by a user. It carries the
// same personal fields as Landlord plus commercial reference and guarantor
// (fiador) data used for lease vetting.
type Tenant struct {
	ID                  uint      `gorm:"primaryKey;column:id" json:"id"`
	OwnerID             uint      `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	Name                string    `gorm:"column:nome;not null;size:255" json:"nome"`
	CPF                 string    `gorm:"column:cpf;not null;size:14" json:"cpf"`
	RG                  string    `gorm:"column:rg;size:20" json:"rg,omitempty"`
	MaritalState        string    `gorm:"column:estado_civil;size:50" json:"estado_civil,omitempty"`
	Profession          string    `gorm:"column:profissao;size:100" json:"profissao,omitempty"`
	Address             string    `gorm:"column:endereco" json:"endereco,omitempty"`
	Email               string    `gorm:"column:email;size:255" json:"email,omitempty"`
	Phone               string    `gorm:"column:telefone;size:30" json:"telefone,omitempty"`
	BirthDate           string    `gorm:"column:data_nascimento;size:10" json:"data_nascimento,omitempty"`
	Income              string    `gorm:"column:renda;size:50" json:"renda,omitempty"`
	Reference           string    `gorm:"column:referencia" json:"referencia,omitempty"`
	CommercialReference string    `gorm:"column:referencia_comercial" json:"referencia_comercial,omitempty"`
	Guarantor           string    `gorm:"column:fiador;size:255" json:"fiador,omitempty"`
	GuarantorCPF        string    `gorm:"column:fiador_cpf;size:14" json:"fiador_cpf,omitempty"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for Tenant.
func (Tenant) TableName() string {
	return "locatarios"
}

// Owner returns the id of the user the record belongs to.
func (t *Tenant) Owner() uint { return t.OwnerID }

// Validate checks the required fields and document formats.
func (t *Tenant) Validate() error {
	if t.Name == "" {
		return ErrNameRequired
	}
	if !br.ValidCPF(t.CPF) {
		return ErrInvalidCPF
	}
	if t.GuarantorCPF != "" && !br.ValidCPF(t.GuarantorCPF) {
		return ErrInvalidCPF
	}
	return nil
}
