package dto

// AgendaItemDTO é a visão consolidada da agenda: o agendamento já com os
// nomes do profissional e do serviço resolvidos.
type AgendaItemDTO struct {
	ID string `json:"id"`

	Date      string `json:"data"`
	StartTime string `json:"hora_inicio"`
	EndTime   string `json:"hora_fim"`
	Status    string `json:"status"`

	ClientName  string `json:"cliente_nome"`
	ClientPhone string `json:"cliente_telefone"`

	ProfessionalID   string `json:"profissional_id"`
	ProfessionalName string `json:"profissional_nome"`

	ServiceID   string `json:"servico_id"`
	ServiceName string `json:"servico_nome"`

	PriceCharged float64 `json:"valor_cobrado"`
	Notes        string  `json:"notas"`
}
