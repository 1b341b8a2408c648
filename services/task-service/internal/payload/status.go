package payload

type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}
