package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	in := ContactInquiryInput{Phone: "+1 555"}
	verr := validateStruct(in)
	assert.Equal(t, []string{"name", "message", "inquiryType"}, verr.MissingFields)
	assert.Empty(t, verr.InvalidFields)
	assert.Equal(t, "missing required fields: name, message, inquiryType", verr.Error())

	ok := validateStruct(ContactInquiryInput{Name: "a", Phone: "b", Message: "c", InquiryType: "d"})
	assert.NoError(t, ok.orNil())
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{MissingFields: []string{"date"}, InvalidFields: []string{"amountPaid"}}
	assert.Equal(t, "missing required fields: date; invalid fields: amountPaid", err.Error())
}

func TestRequireStatus(t *testing.T) {
	_, err := requireStatus("   ")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"status"}, verr.MissingFields)

	status, err := requireStatus(" completed ")
	assert.NoError(t, err)
	assert.Equal(t, "completed", status)
}
