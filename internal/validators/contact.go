// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-validation/internal/form"
	"github.com/MKhiriev/go-form-validation/models"
)

const (
	FieldName      = "name"
	FieldTelephone = "telephone"
)

// contactFields lists the contact form fields in display order.
var contactFields = []string{FieldName, FieldTelephone}

func fieldValidator(name string) (form.Validator, error) {
	switch name {
	case FieldName:
		return form.Name(), nil
	case FieldTelephone:
		return form.Telephone(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
}

// NewContactForm builds the contact form with its name and telephone
// fields. Per-field controller options can be passed through fieldOpts,
// keyed by field name.
func NewContactForm(fieldOpts map[string][]form.ControllerOption, opts ...form.FormOption) *form.Form {
	f, err := newContactForm(contactFields, fieldOpts, opts...)
	if err != nil {
		// contactFields are constant and distinct
		panic(err)
	}
	return f
}

func newContactForm(fields []string, fieldOpts map[string][]form.ControllerOption, opts ...form.FormOption) (*form.Form, error) {
	f := form.NewForm(opts...)
	for _, name := range fields {
		v, err := fieldValidator(name)
		if err != nil {
			return nil, err
		}
		if _, err = f.AddField(name, v, fieldOpts[name]...); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Report validates contact and describes every checked field. When fields is
// empty all contact fields are checked; otherwise only the named ones, and
// the aggregate covers only those.
func Report(contact models.Contact, fields ...string) (models.ValidationReport, error) {
	if len(fields) == 0 {
		fields = contactFields
	}

	f, err := newContactForm(fields, nil)
	if err != nil {
		return models.ValidationReport{}, err
	}

	values := contactValues(contact)
	report := models.ValidationReport{Fields: make(map[string]models.FieldReport, len(fields))}
	for _, name := range f.Names() {
		verr := f.Edit(name, values[name])
		c, _ := f.Field(name)
		fv := c.Value()

		fr := models.FieldReport{Value: fv.Text, Valid: fv.Valid}
		if verr != nil {
			fr.Message = form.Present(verr).Message
			fr.Kind = form.Kind(verr).String()
		}
		report.Fields[name] = fr
	}
	report.Valid = f.Valid()

	return report, nil
}

// Normalize returns contact with every field normalized the way the form
// stores it.
func Normalize(contact models.Contact) models.Contact {
	contact.Name = form.Name().Normalize(contact.Name)
	contact.Telephone = strings.TrimSpace(contact.Telephone)
	return contact
}

func contactValues(c models.Contact) map[string]string {
	return map[string]string{
		FieldName:      c.Name,
		FieldTelephone: c.Telephone,
	}
}
