package model

// MaritalStatus is customer marital status
type MaritalStatus string

const (
	// MaritalStatusSingle means customer is single
	MaritalStatusSingle MaritalStatus = "Single"
	// MaritalStatusMarried means customer is married
	MaritalStatusMarried MaritalStatus = "Married"
	// MaritalStatusDivorced means customer is divorced
	MaritalStatusDivorced MaritalStatus = "Divorced"
	// MaritalStatusWidowed means customer is widowed
	MaritalStatusWidowed MaritalStatus = "Widowed"
)

// AddressType is kind of customer address
type AddressType string

const (
	AddressTypeHome     AddressType = "Home"
	AddressTypeBusiness AddressType = "Business"
	AddressTypeMailing  AddressType = "Mailing"
)

// PhoneType is kind of customer phone number
type PhoneType string

const (
	PhoneTypeMobile PhoneType = "Mobile"
	PhoneTypeHome   PhoneType = "Home"
	PhoneTypeWork   PhoneType = "Work"
)

// EmailType is kind of customer email
type EmailType string

const (
	EmailTypePersonal EmailType = "Personal"
	EmailTypeWork     EmailType = "Work"
)

// Address is customer postal address
type Address struct {
	ID      string      `json:"id" bson:"id"`
	Type    AddressType `json:"type" bson:"type"`
	Street  string      `json:"street" bson:"street"`
	City    string      `json:"city" bson:"city"`
	State   string      `json:"state" bson:"state"`
	ZipCode string      `json:"zipCode" bson:"zipCode"`
}

// Phone is customer phone number
type Phone struct {
	ID        string    `json:"id" bson:"id"`
	Type      PhoneType `json:"type" bson:"type"`
	Number    string    `json:"number" bson:"number"`
	IsPrimary bool      `json:"isPrimary" bson:"isPrimary"`
}

// Email is customer email address
type Email struct {
	ID        string    `json:"id" bson:"id"`
	Type      EmailType `json:"type" bson:"type"`
	Address   string    `json:"address" bson:"address"`
	IsPrimary bool      `json:"isPrimary" bson:"isPrimary"`
}

// Customer is customer model entity as served by customers directory.
// DateOfBirth is ISO-8601 date (YYYY-MM-DD).
type Customer struct {
	ID            string        `json:"id" bson:"_id"`
	FirstName     string        `json:"firstName" bson:"firstName"`
	LastName      string        `json:"lastName" bson:"lastName"`
	DateOfBirth   string        `json:"dateOfBirth" bson:"dateOfBirth"`
	MaritalStatus MaritalStatus `json:"maritalStatus" bson:"maritalStatus"`
	SecureID      string        `json:"secureId" bson:"secureId"`
	Addresses     []Address     `json:"addresses" bson:"addresses"`
	Phones        []Phone       `json:"phones" bson:"phones"`
	Emails        []Email       `json:"emails" bson:"emails"`
}

// PrimaryPhone returns first phone flagged as primary
func (c *Customer) PrimaryPhone() (Phone, bool) {
	for _, p := range c.Phones {
		if p.IsPrimary {
			return p, true
		}
	}
	return Phone{}, false
}

// PrimaryEmail returns first email flagged as primary
func (c *Customer) PrimaryEmail() (Email, bool) {
	for _, e := range c.Emails {
		if e.IsPrimary {
			return e, true
		}
	}
	return Email{}, false
}
