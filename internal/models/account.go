package models

// Account is an operator authenticated by the identity provider
type Account struct {
	// ID is subject of identity token
	ID       string   `json:"id"`
	UserID   int64    `json:"usuario_id"`
	Name     string   `json:"nombre"`
	Username string   `json:"usuario"`
	Roles    []string `json:"roles,omitempty"`
}

// DisplayName returns name shown as order requester
func (a Account) DisplayName() string {
	switch {
	case a.Name != "":
		return a.Name
	case a.Username != "":
		return a.Username
	}
	return "Usuario"
}
