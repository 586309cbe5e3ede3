package appointment

import (
	"fmt"
	"strings"
)

// Department is the clinic a visit is booked with.
type Department string

const (
	DepartmentCardiology  Department = "Cardiology"
	DepartmentNeurology   Department = "Neurology"
	DepartmentDermatology Department = "Dermatology"
	DepartmentGeneral     Department = "General"
)

// AllDepartments returns the closed set of departments.
func AllDepartments() []Department {
	return []Department{
		DepartmentCardiology,
		DepartmentNeurology,
		DepartmentDermatology,
		DepartmentGeneral,
	}
}

// Valid reports whether d is one of AllDepartments.
func (d Department) Valid() bool {
	for _, candidate := range AllDepartments() {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDepartment matches raw against the closed set, case-insensitively.
func ParseDepartment(raw string) (Department, error) {
	for _, candidate := range AllDepartments() {
		if strings.EqualFold(string(candidate), strings.TrimSpace(raw)) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("appointment: unknown department %q", raw)
}

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// AllStatuses returns the closed set of statuses.
func AllStatuses() []Status {
	return []Status{
		StatusScheduled,
		StatusCompleted,
		StatusCancelled,
	}
}

// Valid reports whether s is one of AllStatuses.
func (s Status) Valid() bool {
	for _, candidate := range AllStatuses() {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStatus matches raw against the closed set, case-insensitively.
func ParseStatus(raw string) (Status, error) {
	for _, candidate := range AllStatuses() {
		if strings.EqualFold(string(candidate), strings.TrimSpace(raw)) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("appointment: unknown status %q", raw)
}
