// internal/customer/customer.go
package customer

import (
	"fmt"
	"time"
)

// Customer is a hotel guest record. Identity is the customer id; everything
// else is contact and loyalty bookkeeping.
type Customer struct {
	ID               string
	FullName         string
	Email            string
	PhoneNumber      string
	IDCard           string
	Address          string
	RegistrationDate time.Time
	VIP              bool
	LoyaltyPoints    float64
}

func New(id, fullName, email, phoneNumber, idCard, address string, registrationDate time.Time, vip bool) *Customer {
	return &Customer{
		ID:               id,
		FullName:         fullName,
		Email:            email,
		PhoneNumber:      phoneNumber,
		IDCard:           idCard,
		Address:          address,
		RegistrationDate: registrationDate,
		VIP:              vip,
	}
}

func (c *Customer) AddLoyaltyPoints(points float64) {
	c.LoyaltyPoints += points
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer{id=%s, name=%s, email=%s, vip=%t}", c.ID, c.FullName, c.Email, c.VIP)
}
