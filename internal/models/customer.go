package models

import "strings"

// Customer is the contact block captured by the checkout form.
type Customer struct {
	Name    string `json:"customer_name"`
	Contact string `json:"contact"`
}

func (c Customer) Complete() bool {
	return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.Contact) != ""
}
