package entity

// Notification carries an already-validated order's fields to the email
// side-channel. EmailCliente is collected independently by the form and is
// never persisted. Field names follow the form's Portuguese payload.
type Notification struct {
	Nome         string `json:"nome"`
	Telefone     string `json:"telefone"`
	Morada       string `json:"morada"`
	CodigoPostal string `json:"codigoPostal"`
	Quantidade   int    `json:"quantidade"`
	EmailCliente string `json:"emailCliente"`
}
