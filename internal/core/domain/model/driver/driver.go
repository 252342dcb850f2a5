// Package driver models the read-only driver reference data served by the
// staff directory collaborator.
package driver

import "routeadmin/internal/pkg/errs"

// UnassignedID is the driver id meaning "no driver chosen yet" on a segment.
const UnassignedID = 0

// Driver is a delivery driver known to the staff directory. Reference data
// only: this service never creates or mutates drivers.
type Driver struct {
	id        int
	firstName string
	surname   string
}

// NewDriver creates a validated Driver. The id must be positive;
// UnassignedID is reserved for segments without a driver.
func NewDriver(id int, firstName string, surname string) (Driver, error) {
	if id <= UnassignedID {
		return Driver{}, errs.NewValueIsInvalidError("id")
	}
	if firstName == "" {
		return Driver{}, errs.NewValueIsRequiredError("firstName")
	}

	return Driver{
		id:        id,
		firstName: firstName,
		surname:   surname,
	}, nil
}

// ID returns the directory identifier for the driver.
func (d Driver) ID() int {
	return d.id
}

// FirstName returns the driver's first name.
func (d Driver) FirstName() string {
	return d.firstName
}

// Surname returns the driver's surname.
func (d Driver) Surname() string {
	return d.surname
}

// FullName returns "FirstName Surname" for display.
func (d Driver) FullName() string {
	if d.surname == "" {
		return d.firstName
	}
	return d.firstName + " " + d.surname
}
