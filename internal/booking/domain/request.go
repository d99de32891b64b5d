package domain

import (
	"net/mail"
	"strconv"
	"strings"
	"time"
)

// DropOffTimeLayout is the timestamp format MechanicDesk expects
// (dd/mm/yyyy HH:MM).
const DropOffTimeLayout = "02/01/2006 15:04"

// CreateBookingRequest is the untrusted client submission. Field names
// follow the gateway's payload contract.
type CreateBookingRequest struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`

	StreetLine string `json:"street_line"`
	Suburb     string `json:"suburb"`
	State      string `json:"state"`
	Postcode   string `json:"postcode"`

	RegistrationNumber string `json:"registration_number"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               *int   `json:"year"`
	Color              string `json:"color"`
	Transmission       string `json:"transmission"`
	VIN                string `json:"vin"`
	FuelType           string `json:"fuel_type"`
	DriveType          string `json:"drive_type"`
	EngineSize         string `json:"engine_size"`
	Body               string `json:"body"`
	Odometer           *int   `json:"odometer"`

	DropOffTime              string   `json:"drop_off_time"`
	PickupTime               string   `json:"pickup_time"`
	JobTypeNames             []string `json:"job_type_names"`
	CourtesyVehicleRequested *bool    `json:"courtesy_vehicle_requested"`
	Note                     string   `json:"note"`
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrors accumulates every invalid field so the caller can fix the
// whole submission in one round trip.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	return "validation error"
}

// Normalize validates the submission and produces the exact payload the
// gateway accepts. The gateway is string-typed for most fields: numbers
// are stringified and the courtesy flag becomes the literal "true" or
// "false". Validation failure short-circuits before any gateway call or
// audit write.
func (r CreateBookingRequest) Normalize() (map[string]any, FieldErrors) {
	var errs FieldErrors

	required := []struct {
		field string
		value string
	}{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"phone", r.Phone},
		{"email", r.Email},
		{"registration_number", r.RegistrationNumber},
		{"make", r.Make},
		{"model", r.Model},
		{"drop_off_time", r.DropOffTime},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, FieldError{Field: f.field, Code: "required", Message: "this field is required"})
		}
	}

	if email := strings.TrimSpace(r.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, FieldError{Field: "email", Code: "invalid_email", Message: "enter a valid email address"})
		}
	}

	if dropOff := strings.TrimSpace(r.DropOffTime); dropOff != "" {
		if _, err := time.Parse(DropOffTimeLayout, dropOff); err != nil {
			errs = append(errs, FieldError{Field: "drop_off_time", Code: "invalid_format", Message: "expected format dd/mm/yyyy HH:MM"})
		}
	}
	if pickup := strings.TrimSpace(r.PickupTime); pickup != "" {
		if _, err := time.Parse(DropOffTimeLayout, pickup); err != nil {
			errs = append(errs, FieldError{Field: "pickup_time", Code: "invalid_format", Message: "expected format dd/mm/yyyy HH:MM"})
		}
	}

	jobTypes := make([]string, 0, len(r.JobTypeNames))
	for _, name := range r.JobTypeNames {
		if strings.TrimSpace(name) != "" {
			jobTypes = append(jobTypes, name)
		}
	}
	if len(jobTypes) == 0 {
		errs = append(errs, FieldError{Field: "job_type_names", Code: "required", Message: "at least one job type is required"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
	}

	payload := map[string]any{
		"name":                name,
		"first_name":          r.FirstName,
		"last_name":           r.LastName,
		"phone":               r.Phone,
		"email":               r.Email,
		"registration_number": r.RegistrationNumber,
		"make":                r.Make,
		"model":               r.Model,
		"drop_off_time":       r.DropOffTime,
		"job_type_names":      jobTypes,
	}

	optional := map[string]string{
		"street_line":  r.StreetLine,
		"suburb":       r.Suburb,
		"state":        r.State,
		"postcode":     r.Postcode,
		"color":        r.Color,
		"transmission": r.Transmission,
		"vin":          r.VIN,
		"fuel_type":    r.FuelType,
		"drive_type":   r.DriveType,
		"engine_size":  r.EngineSize,
		"body":         r.Body,
		"pickup_time":  r.PickupTime,
		"note":         r.Note,
	}
	for key, value := range optional {
		if strings.TrimSpace(value) != "" {
			payload[key] = value
		}
	}

	if r.Year != nil {
		payload["year"] = strconv.Itoa(*r.Year)
	}
	if r.Odometer != nil {
		payload["odometer"] = strconv.Itoa(*r.Odometer)
	}

	courtesy := false
	if r.CourtesyVehicleRequested != nil {
		courtesy = *r.CourtesyVehicleRequested
	}
	payload["courtesy_vehicle_requested"] = strconv.FormatBool(courtesy)

	return payload, nil
}
