package models

import (
	"time"

	"github.com/rmendes/imobi/internal/br"
)

// Landlord represents a property owner (locador) registered by a user.
//
// Column names keep the Portuguese schema of the production database so the
// API and migrations stay wire-compatible with existing clients.
type Landlord struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	OwnerID      uint      `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	Name         string    `gorm:"column:nome;not null;size:255" json:"nome"`
	CPF          string    `gorm:"column:cpf;not null;size:14" json:"cpf"`
	RG           string    `gorm:"column:rg;size:20" json:"rg,omitempty"`
	MaritalState string    `gorm:"column:estado_civil;size:50" json:"estado_civil,omitempty"`
	Profession   string    `gorm:"column:profissao;size:100" json:"profissao,omitempty"`
	Address      string    `gorm:"column:endereco" json:"endereco,omitempty"`
	BirthDate    string    `gorm:"column:data_nascimento;size:10" json:"data_nascimento,omitempty"`
	Income       string    `gorm:"column:renda;size:50" json:"renda,omitempty"`
	CNH          string    `gorm:"column:cnh;size:20" json:"cnh,omitempty"`
	Email        string    `gorm:"column:email;size:255" json:"email,omitempty"`
	Phone        string    `gorm:"column:telefone;size:30" json:"telefone,omitempty"`
	Reference    string    `gorm:"column:referencia" json:"referencia,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for Landlord.
func (Landlord) TableName() string {
	return "locadores"
}

// Owner returns the id of the user the record belongs to.
func (l *Landlord) Owner() uint { return l.OwnerID }

// Validate checks the required fields and document format.
func (l *Landlord) Validate() error {
	if l.Name == "" {
		return ErrNameRequired
	}
	if !br.ValidCPF(l.CPF) {
		return ErrInvalidCPF
	}
	return nil
}
