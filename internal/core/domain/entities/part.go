package entities

type Part struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
