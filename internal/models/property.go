package models

import "time"

// Property represents a managed rental unit (imovel). Each property belongs
// to a landlord and may have a current tenant; both references must point at
// rows owned by the same user as the property itself.
//
// The utility triplets (account number, account holder, holder CPF) mirror
// the Brazilian service providers the production system tracks: energy
// ("unidade consumidora"), water/sewage (Saneago) and piped gas.
type Property struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	OwnerID     uint   `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	Address     string `gorm:"column:endereco;not null" json:"endereco"`
	Kind        string `gorm:"column:tipo;not null;size:50" json:"tipo"`
	Description string `gorm:"column:descricao" json:"descricao,omitempty"`
	IPTUNumber  string `gorm:"column:cadastro_iptu;size:50" json:"cadastro_iptu,omitempty"`

	EnergyAccountNumber string `gorm:"column:unidade_consumidora_numero;size:50" json:"unidade_consumidora_numero,omitempty"`
	EnergyAccountHolder string `gorm:"column:unidade_consumidora_titular;size:255" json:"unidade_consumidora_titular,omitempty"`
	EnergyHolderCPF     string `gorm:"column:unidade_consumidora_cpf;size:14" json:"unidade_consumidora_cpf,omitempty"`

	WaterAccountNumber string `gorm:"column:saneago_numero_conta;size:50" json:"saneago_numero_conta,omitempty"`
	WaterAccountHolder string `gorm:"column:saneago_titular;size:255" json:"saneago_titular,omitempty"`
	WaterHolderCPF     string `gorm:"column:saneago_cpf;size:14" json:"saneago_cpf,omitempty"`

	GasAccountNumber string `gorm:"column:gas_numero_conta;size:50" json:"gas_numero_conta,omitempty"`
	GasAccountHolder string `gorm:"column:gas_titular;size:255" json:"gas_titular,omitempty"`
	GasHolderCPF     string `gorm:"column:gas_cpf;size:14" json:"gas_cpf,omitempty"`

	CondoHolder         string  `gorm:"column:condominio_titular;size:255" json:"condominio_titular,omitempty"`
	CondoEstimatedValue float64 `gorm:"column:condominio_valor_estimado" json:"condominio_valor_estimado,omitempty"`

	LandlordID uint  `gorm:"column:id_locador;not null;index" json:"id_locador"`
	TenantID   *uint `gorm:"column:id_locatario;index" json:"id_locatario,omitempty"`

	// Joined in from locadores/locatarios on reads so listings can show
	// names without extra requests. Not columns of the imoveis table.
	LandlordName string `gorm:"column:locador_nome;->;-:migration" json:"locador_nome,omitempty"`
	TenantName   string `gorm:"column:locatario_nome;->;-:migration" json:"locatario_nome,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for Property.
func (Property) TableName() string {
	return "imoveis"
}

// Owner returns the id of the user the record belongs to.
func (p *Property) Owner() uint { return p.OwnerID }

// Validate checks the required fields: address, kind and a landlord
// reference, matching the legacy API contract.
func (p *Property) Validate() error {
	if p.Address == "" {
		return ErrAddressRequired
	}
	if p.Kind == "" {
		return ErrPropertyKindRequired
	}
	if p.LandlordID == 0 {
		return ErrLandlordRequired
	}
	return nil
}
